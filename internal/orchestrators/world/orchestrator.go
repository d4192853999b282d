// Package world implements the world orchestrator: map zone persistence,
// validation, server-side generation, and the chunk-based infinite world.
package world

//go:generate mockgen -destination=mock/mock_service.go -package=worldmock github.com/emberfall/campaign-api/internal/orchestrators/world Service

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/pkg/clock"
	"github.com/emberfall/campaign-api/internal/pkg/idgen"
	"github.com/emberfall/campaign-api/internal/repositories/maps"
)

const (
	// Zone dimension bounds to avoid pathological payload sizes
	MaxZoneWidth  = 1024
	MaxZoneHeight = 1024
	MaxZoneTiles  = MaxZoneWidth * MaxZoneHeight

	// Default dimensions for server-generated maps
	defaultGeneratedWidth  = 64
	defaultGeneratedHeight = 64
)

// Alphanumeric plus "-", "_", "/", ":". Slashes let zone IDs nest
// (dungeon/floor-1), colons namespace them.
var zoneIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-/:]+$`)

// Service defines the interface for world map operations
type Service interface {
	// LoadMap retrieves a zone. A missing zone is not an error: the output
	// carries a nil Zone so callers can fall back to generation.
	LoadMap(ctx context.Context, input *LoadMapInput) (*LoadMapOutput, error)

	// SaveMap validates and persists a new zone
	SaveMap(ctx context.Context, input *SaveMapInput) (*SaveMapOutput, error)

	// UpdateMapByID applies a patch to an existing zone
	UpdateMapByID(ctx context.Context, input *UpdateMapInput) (*UpdateMapOutput, error)

	// ListCampaignMaps lists a campaign's zones without tile grids
	ListCampaignMaps(ctx context.Context, input *ListCampaignMapsInput) (*ListCampaignMapsOutput, error)

	// GenerateAndSaveMap generates a zone if missing, then returns it
	GenerateAndSaveMap(ctx context.Context, input *GenerateMapInput) (*GenerateMapOutput, error)

	// GetOrCreateChunk loads a chunk, generating it deterministically if missing
	GetOrCreateChunk(ctx context.Context, input *GetOrCreateChunkInput) (*GetOrCreateChunkOutput, error)

	// LoadActiveChunks loads the 3x3 chunk window around a center chunk
	LoadActiveChunks(ctx context.Context, input *LoadActiveChunksInput) (*LoadActiveChunksOutput, error)
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	MapRepo     maps.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// SeedFunc supplies seeds for generated maps when the caller provides
	// none. Defaults to math/rand.
	SeedFunc func() int64

	// DeepTileValidation checks every cell of incoming tile grids instead of
	// sampling two cells per row.
	DeepTileValidation bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MapRepo == nil {
		vb.RequiredField("MapRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	mapRepo  maps.Repository
	idGen    idgen.Generator
	clock    clock.Clock
	seedFunc func() int64
	deep     bool
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	seedFunc := cfg.SeedFunc
	if seedFunc == nil {
		seedFunc = func() int64 { return rand.Int63n(2147483647) }
	}

	return &orchestrator{
		mapRepo:  cfg.MapRepo,
		idGen:    cfg.IDGenerator,
		clock:    c,
		seedFunc: seedFunc,
		deep:     cfg.DeepTileValidation,
	}, nil
}

func (o *orchestrator) LoadMap(ctx context.Context, input *LoadMapInput) (*LoadMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument("campaign seed is required")
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument("zone ID is required")
	}

	out, err := o.mapRepo.Get(ctx, maps.GetInput{
		CampaignSeed: input.CampaignSeed,
		ZoneID:       input.ZoneID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return &LoadMapOutput{Zone: nil}, nil
		}
		return nil, err
	}

	return &LoadMapOutput{Zone: out.Zone}, nil
}

func (o *orchestrator) SaveMap(ctx context.Context, input *SaveMapInput) (*SaveMapOutput, error) {
	if input == nil || input.Zone == nil {
		return nil, errors.InvalidArgument("zone is required")
	}

	zone := *input.Zone
	zone.CampaignSeed = strings.TrimSpace(zone.CampaignSeed)
	zone.ZoneID = strings.TrimSpace(zone.ZoneID)

	if err := o.validateNewZone(&zone); err != nil {
		return nil, err
	}

	zone.ID = o.idGen.Generate()

	created, err := o.mapRepo.Create(ctx, maps.CreateInput{Zone: &zone})
	if err != nil {
		return nil, err
	}

	return &SaveMapOutput{Zone: created.Zone}, nil
}

func (o *orchestrator) UpdateMapByID(ctx context.Context, input *UpdateMapInput) (*UpdateMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	existing, err := o.mapRepo.GetByID(ctx, maps.GetByIDInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	zone := existing.Zone

	if input.Tiles != nil {
		if err := o.validateTiles(input.Tiles, zone.Width, zone.Height); err != nil {
			return nil, err
		}
		zone.Tiles = input.Tiles
	}
	if input.SpawnPoint != nil {
		if err := validateSpawnPoint(*input.SpawnPoint, zone.Width, zone.Height); err != nil {
			return nil, err
		}
		zone.SpawnPoint = *input.SpawnPoint
	}
	if input.ClearMetadata {
		zone.Metadata = nil
	} else if input.Metadata != nil {
		zone.Metadata = input.Metadata
	}
	if input.ClearSeed {
		zone.Seed = nil
	} else if input.Seed != nil {
		seed := *input.Seed
		zone.Seed = &seed
	}

	updated, err := o.mapRepo.Update(ctx, maps.UpdateInput{Zone: zone})
	if err != nil {
		return nil, err
	}

	return &UpdateMapOutput{Zone: updated.Zone}, nil
}

func (o *orchestrator) ListCampaignMaps(ctx context.Context, input *ListCampaignMapsInput) (*ListCampaignMapsOutput, error) {
	if input == nil || input.CampaignSeed == "" {
		return nil, errors.InvalidArgument("campaign seed is required")
	}

	out, err := o.mapRepo.ListByCampaign(ctx, maps.ListByCampaignInput{
		CampaignSeed: input.CampaignSeed,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]*world.ZoneSummary, 0, len(out.Zones))
	for _, zone := range out.Zones {
		summaries = append(summaries, zone.Summary())
	}

	return &ListCampaignMapsOutput{Maps: summaries}, nil
}

func (o *orchestrator) GenerateAndSaveMap(ctx context.Context, input *GenerateMapInput) (*GenerateMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument("campaign seed is required")
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument("zone ID is required")
	}
	if !input.ZoneType.IsValid() {
		return nil, errors.InvalidArgumentf("zone type must be one of: %s", allowedZoneTypes())
	}

	loaded, err := o.LoadMap(ctx, &LoadMapInput{
		CampaignSeed: input.CampaignSeed,
		ZoneID:       input.ZoneID,
	})
	if err != nil {
		return nil, err
	}
	if loaded.Zone != nil {
		return &GenerateMapOutput{Zone: loaded.Zone}, nil
	}

	opts := input.Options
	if opts == nil {
		opts = &GenerateOptions{}
	}

	width := opts.Width
	if width <= 0 {
		width = defaultGeneratedWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultGeneratedHeight
	}

	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = o.seedFunc()
	}

	tiles := opts.Tiles
	if tiles == nil {
		tiles = blankGrid(width, height, string(input.ZoneType))
	}

	spawnPoint := world.SpawnPoint{X: width / 2, Y: height / 2}
	if opts.SpawnPoint != nil {
		spawnPoint = *opts.SpawnPoint
	}

	metadata := opts.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{"generator": "basic", "version": 1}
	}

	saved, err := o.SaveMap(ctx, &SaveMapInput{Zone: &world.Zone{
		CampaignSeed: input.CampaignSeed,
		ZoneID:       input.ZoneID,
		ZoneType:     input.ZoneType,
		Width:        width,
		Height:       height,
		Tiles:        tiles,
		SpawnPoint:   spawnPoint,
		Seed:         &seed,
		Metadata:     metadata,
	}})
	if err != nil {
		// Lost a race with a concurrent generator; the winner's zone is
		// just as good.
		if errors.IsAlreadyExists(err) {
			return o.reloadExisting(ctx, input.CampaignSeed, input.ZoneID)
		}
		return nil, err
	}

	return &GenerateMapOutput{Zone: saved.Zone}, nil
}

func (o *orchestrator) reloadExisting(ctx context.Context, campaignSeed, zoneID string) (*GenerateMapOutput, error) {
	out, err := o.mapRepo.Get(ctx, maps.GetInput{CampaignSeed: campaignSeed, ZoneID: zoneID})
	if err != nil {
		return nil, err
	}
	return &GenerateMapOutput{Zone: out.Zone}, nil
}

// blankGrid builds a fully traversable, unexplored grid of the given biome
func blankGrid(width, height int, biome string) [][]world.Tile {
	tiles := make([][]world.Tile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]world.Tile, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = world.Tile{
				X:           x,
				Y:           y,
				Biome:       biome,
				Traversable: true,
			}
		}
	}
	return tiles
}

func allowedZoneTypes() string {
	return strings.Join([]string{
		string(world.ZoneTypeDungeon),
		string(world.ZoneTypeForest),
		string(world.ZoneTypePlains),
		string(world.ZoneTypeTown),
	}, ", ")
}

func (o *orchestrator) validateNewZone(zone *world.Zone) error {
	vb := errors.NewValidationBuilder()

	if zone.CampaignSeed == "" {
		vb.RequiredField("campaignSeed")
	}
	if zone.ZoneID == "" {
		vb.RequiredField("zoneId")
	} else if !zoneIDPattern.MatchString(zone.ZoneID) {
		vb.InvalidField("zoneId", `must be alphanumeric with "-", "_", "/", ":" allowed`)
	}
	if !zone.ZoneType.IsValid() {
		vb.InvalidField("zoneType", "must be one of: "+allowedZoneTypes())
	}
	if zone.Width <= 0 || zone.Height <= 0 {
		vb.InvalidField("width/height", "must be > 0")
	} else {
		if zone.Width > MaxZoneWidth || zone.Height > MaxZoneHeight {
			vb.Fieldf("width/height", "must be <= %dx%d", MaxZoneWidth, MaxZoneHeight)
		}
		if zone.Width*zone.Height > MaxZoneTiles {
			vb.Fieldf("tiles", "tile count exceeds maximum %d", MaxZoneTiles)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if err := validateSpawnPoint(zone.SpawnPoint, zone.Width, zone.Height); err != nil {
		return err
	}
	return o.validateTiles(zone.Tiles, zone.Width, zone.Height)
}

func validateSpawnPoint(sp world.SpawnPoint, width, height int) error {
	if sp.X < 0 || sp.Y < 0 || sp.X >= width || sp.Y >= height {
		return errors.InvalidArgument("spawn point must be within map bounds")
	}
	return nil
}

// validateTiles checks grid dimensions. Cell contents are sampled (first and
// middle of each row) rather than fully scanned, to keep validation cheap on
// large grids; DeepTileValidation switches to a full scan.
func (o *orchestrator) validateTiles(tiles [][]world.Tile, width, height int) error {
	if tiles == nil {
		return errors.InvalidArgument("tiles must be provided as a 2D array")
	}
	if len(tiles) != height {
		return errors.InvalidArgumentf("tiles row count %d does not match height %d", len(tiles), height)
	}
	for y, row := range tiles {
		if len(row) != width {
			return errors.InvalidArgumentf("tiles[%d] column count %d does not match width %d", y, len(row), width)
		}
		if o.deep {
			for x := range row {
				if err := checkTileCoords(row[x], x, y); err != nil {
					return err
				}
			}
			continue
		}
		if len(row) > 0 {
			for _, x := range []int{0, len(row) / 2} {
				if err := checkTileCoords(row[x], x, y); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkTileCoords(tile world.Tile, x, y int) error {
	if tile.X != x || tile.Y != y {
		return errors.InvalidArgumentf("tile at [%d][%d] carries coordinates (%d,%d)", y, x, tile.X, tile.Y)
	}
	return nil
}

// timestamp returns the current time in RFC3339 for generated metadata
func (o *orchestrator) timestamp() string {
	return o.clock.Now().UTC().Format(time.RFC3339)
}
