package world

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
)

// Chunk grid dimensions. Every chunk is the same size so chunk coordinates
// map directly onto world coordinates.
const (
	ChunkWidth  = 100
	ChunkHeight = 80
)

var chunkIDPattern = regexp.MustCompile(`^chunk_(-?\d+)_(-?\d+)$`)

// ChunkSeed derives a deterministic seed for a chunk from the campaign seed
// and chunk coordinates. The same inputs always yield the same seed, so a
// chunk regenerates identically after a wipe.
func ChunkSeed(campaignSeed string, chunkX, chunkY int) int64 {
	str := fmt.Sprintf("%s:%d:%d", campaignSeed, chunkX, chunkY)
	var hash int32
	for _, c := range str {
		hash = hash*31 + int32(c)
	}
	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// ChunkType determines a chunk's terrain from its coordinates. The origin is
// always the starting town, ringed by plains, then forest out to Manhattan
// distance 3.
func ChunkType(chunkX, chunkY int) world.ZoneType {
	if chunkX == 0 && chunkY == 0 {
		return world.ZoneTypeTown
	}

	distance := absInt(chunkX) + absInt(chunkY)
	if distance == 1 {
		return world.ZoneTypePlains
	}
	if distance <= 3 {
		return world.ZoneTypeForest
	}
	return world.ZoneTypePlains
}

// ChunkID converts chunk coordinates to a zone ID
func ChunkID(chunkX, chunkY int) string {
	return fmt.Sprintf("chunk_%d_%d", chunkX, chunkY)
}

// ParseChunkID parses a chunk zone ID back into coordinates. Returns false
// for zone IDs that are not chunks.
func ParseChunkID(zoneID string) (x, y int, ok bool) {
	match := chunkIDPattern.FindStringSubmatch(zoneID)
	if match == nil {
		return 0, 0, false
	}
	x, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	y, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// generateChunkTiles builds a chunk's tile grid from its seed. Roughly 70%
// of cells are traversable.
func generateChunkTiles(chunkType world.ZoneType, seed int64) [][]world.Tile {
	tiles := make([][]world.Tile, ChunkHeight)
	for y := 0; y < ChunkHeight; y++ {
		tiles[y] = make([]world.Tile, ChunkWidth)
		for x := 0; x < ChunkWidth; x++ {
			value := (int64(x) + int64(y) + seed) % 100
			tiles[y][x] = world.Tile{
				X:           x,
				Y:           y,
				Biome:       string(chunkType),
				Traversable: value > 30,
			}
		}
	}
	return tiles
}

func (o *orchestrator) GetOrCreateChunk(ctx context.Context, input *GetOrCreateChunkInput) (*GetOrCreateChunkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument("campaign seed is required")
	}

	zoneID := ChunkID(input.ChunkX, input.ChunkY)

	loaded, err := o.LoadMap(ctx, &LoadMapInput{
		CampaignSeed: input.CampaignSeed,
		ZoneID:       zoneID,
	})
	if err != nil {
		return nil, err
	}
	if loaded.Zone != nil {
		return &GetOrCreateChunkOutput{Zone: loaded.Zone}, nil
	}

	chunkType := ChunkType(input.ChunkX, input.ChunkY)
	seed := ChunkSeed(input.CampaignSeed, input.ChunkX, input.ChunkY)

	saved, err := o.SaveMap(ctx, &SaveMapInput{Zone: &world.Zone{
		CampaignSeed: input.CampaignSeed,
		ZoneID:       zoneID,
		ZoneType:     chunkType,
		Width:        ChunkWidth,
		Height:       ChunkHeight,
		Tiles:        generateChunkTiles(chunkType, seed),
		SpawnPoint:   world.SpawnPoint{X: ChunkWidth / 2, Y: ChunkHeight / 2},
		Seed:         &seed,
		Metadata: map[string]interface{}{
			"chunkType":   string(chunkType),
			"chunkCoords": map[string]interface{}{"x": input.ChunkX, "y": input.ChunkY},
			"generated":   o.timestamp(),
		},
	}})
	if err != nil {
		// Another caller generated the same chunk first. Both generated the
		// same content, so return theirs.
		if errors.IsAlreadyExists(err) {
			reloaded, reloadErr := o.reloadExisting(ctx, input.CampaignSeed, zoneID)
			if reloadErr != nil {
				return nil, reloadErr
			}
			return &GetOrCreateChunkOutput{Zone: reloaded.Zone}, nil
		}
		return nil, err
	}

	return &GetOrCreateChunkOutput{Zone: saved.Zone}, nil
}

func (o *orchestrator) LoadActiveChunks(ctx context.Context, input *LoadActiveChunksInput) (*LoadActiveChunksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument("campaign seed is required")
	}

	chunks := make([]*world.Zone, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			chunkX := input.CenterX + dx
			chunkY := input.CenterY + dy

			out, err := o.GetOrCreateChunk(ctx, &GetOrCreateChunkInput{
				CampaignSeed: input.CampaignSeed,
				ChunkX:       chunkX,
				ChunkY:       chunkY,
			})
			if err != nil {
				slog.ErrorContext(ctx, "failed to load chunk",
					"campaign_seed", input.CampaignSeed,
					"chunk_x", chunkX,
					"chunk_y", chunkY,
					"error", err)
				continue
			}
			chunks = append(chunks, out.Zone)
		}
	}

	return &LoadActiveChunksOutput{Chunks: chunks}, nil
}
