package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/pkg/clock"
	redisclient "github.com/emberfall/campaign-api/internal/redis"
)

const (
	zoneKeyPrefix       = "map:zone:"
	idKeyPrefix         = "map:id:"
	campaignIndexPrefix = "map:campaign:"

	// Error messages
	errZoneNil           = "zone cannot be nil"
	errZoneIDEmpty       = "zone ID cannot be empty"
	errRecordIDEmpty     = "record ID cannot be empty"
	errCampaignSeedEmpty = "campaign seed cannot be empty"
)

// storedTile is the persisted form of a tile
type storedTile struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Biome       string  `json:"biome"`
	Elevation   float64 `json:"elevation,omitempty"`
	Traversable bool    `json:"traversable"`
	Explored    bool    `json:"explored,omitempty"`
}

// storedZone is the persisted form of a zone. The storage layout uses
// snake_case keys and stays stable independently of the API types.
type storedZone struct {
	ID           string                 `json:"id"`
	CampaignSeed string                 `json:"campaign_seed"`
	ZoneID       string                 `json:"zone_id"`
	ZoneType     string                 `json:"zone_type"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	Tiles        [][]storedTile         `json:"tiles"`
	SpawnPoint   struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"spawn_point"`
	Seed      *int64                 `json:"seed,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt int64                  `json:"created_at"`
	UpdatedAt int64                  `json:"updated_at"`
}

func toStored(zone *world.Zone) *storedZone {
	stored := &storedZone{
		ID:           zone.ID,
		CampaignSeed: zone.CampaignSeed,
		ZoneID:       zone.ZoneID,
		ZoneType:     string(zone.ZoneType),
		Width:        zone.Width,
		Height:       zone.Height,
		Seed:         zone.Seed,
		Metadata:     zone.Metadata,
		CreatedAt:    zone.CreatedAt,
		UpdatedAt:    zone.UpdatedAt,
	}
	stored.SpawnPoint.X = zone.SpawnPoint.X
	stored.SpawnPoint.Y = zone.SpawnPoint.Y

	stored.Tiles = make([][]storedTile, len(zone.Tiles))
	for y, row := range zone.Tiles {
		stored.Tiles[y] = make([]storedTile, len(row))
		for x, tile := range row {
			stored.Tiles[y][x] = storedTile(tile)
		}
	}
	return stored
}

func fromStored(stored *storedZone) *world.Zone {
	zone := &world.Zone{
		ID:           stored.ID,
		CampaignSeed: stored.CampaignSeed,
		ZoneID:       stored.ZoneID,
		ZoneType:     world.ZoneType(stored.ZoneType),
		Width:        stored.Width,
		Height:       stored.Height,
		SpawnPoint:   world.SpawnPoint{X: stored.SpawnPoint.X, Y: stored.SpawnPoint.Y},
		Seed:         stored.Seed,
		Metadata:     stored.Metadata,
		CreatedAt:    stored.CreatedAt,
		UpdatedAt:    stored.UpdatedAt,
	}

	zone.Tiles = make([][]world.Tile, len(stored.Tiles))
	for y, row := range stored.Tiles {
		zone.Tiles[y] = make([]world.Tile, len(row))
		for x, tile := range row {
			zone.Tiles[y][x] = world.Tile(tile)
		}
	}
	return zone
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis map repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed map repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// zoneKey joins the identity pair unambiguously. Zone IDs may contain ":"
// and campaign seeds are unrestricted, so a plain join would let distinct
// pairs collide; length-prefixing the seed keeps the split unique.
func zoneKey(campaignSeed, zoneID string) string {
	return fmt.Sprintf("%s%d:%s:%s", zoneKeyPrefix, len(campaignSeed), campaignSeed, zoneID)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Zone == nil {
		return nil, errors.InvalidArgument(errZoneNil)
	}
	if input.Zone.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}
	if input.Zone.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}
	if input.Zone.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	now := r.clock.Now().UnixMilli()
	zone := *input.Zone
	zone.CreatedAt = now
	zone.UpdatedAt = now

	data, err := json.Marshal(toStored(&zone))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal zone")
	}

	// SetNX enforces (campaignSeed, zoneId) uniqueness atomically
	key := zoneKey(zone.CampaignSeed, zone.ZoneID)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create zone")
	}
	if !created {
		return nil, errors.AlreadyExistsf("zone %s already exists in campaign %s", zone.ZoneID, zone.CampaignSeed)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, idKeyPrefix+zone.ID, key, 0)
	pipe.SAdd(ctx, campaignIndexPrefix+zone.CampaignSeed, zone.ZoneID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to index zone")
	}

	return &CreateOutput{Zone: &zone}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	zone, err := r.getByKey(ctx, zoneKey(input.CampaignSeed, input.ZoneID))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("zone %s not found in campaign %s", input.ZoneID, input.CampaignSeed)
		}
		return nil, err
	}

	return &GetOutput{Zone: zone}, nil
}

func (r *redisRepository) GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key, err := r.client.Get(ctx, idKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("zone with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to resolve zone ID")
	}

	zone, err := r.getByKey(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("zone with ID %s not found", input.ID)
		}
		return nil, err
	}

	return &GetByIDOutput{Zone: zone}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Zone == nil {
		return nil, errors.InvalidArgument(errZoneNil)
	}
	if input.Zone.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}
	if input.Zone.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	key := zoneKey(input.Zone.CampaignSeed, input.Zone.ZoneID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("zone %s not found in campaign %s", input.Zone.ZoneID, input.Zone.CampaignSeed)
	}

	zone := *input.Zone
	zone.UpdatedAt = r.clock.Now().UnixMilli()

	data, err := json.Marshal(toStored(&zone))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal zone")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update zone")
	}

	return &UpdateOutput{Zone: &zone}, nil
}

func (r *redisRepository) ListByCampaign(ctx context.Context, input ListByCampaignInput) (*ListByCampaignOutput, error) {
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}

	indexKey := campaignIndexPrefix + input.CampaignSeed
	zoneIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list campaign zones")
	}

	zones := make([]*world.Zone, 0, len(zoneIDs))
	for _, zoneID := range zoneIDs {
		zone, err := r.getByKey(ctx, zoneKey(input.CampaignSeed, zoneID))
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, prune it
				r.client.SRem(ctx, indexKey, zoneID)
				slog.WarnContext(ctx, "pruned stale campaign index entry",
					"campaign_seed", input.CampaignSeed,
					"zone_id", zoneID)
				continue
			}
			return nil, err
		}
		zones = append(zones, zone)
	}

	sort.Slice(zones, func(i, j int) bool {
		return zones[i].ZoneID < zones[j].ZoneID
	})

	return &ListByCampaignOutput{Zones: zones}, nil
}

func (r *redisRepository) getByKey(ctx context.Context, key string) (*world.Zone, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("zone not found")
		}
		return nil, errors.Wrapf(err, "failed to get zone")
	}

	var stored storedZone
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal zone")
	}

	return fromStored(&stored), nil
}
