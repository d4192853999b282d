package maps

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	byKey map[string]*world.Zone
	byID  map[string]string
	clock clock.Clock
}

// NewInMemory creates a new in-memory map repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		byKey: make(map[string]*world.Zone),
		byID:  make(map[string]string),
		clock: clock.New(),
	}
}

// inMemoryKey length-prefixes the seed so colon-bearing seeds or zone IDs
// cannot collide across distinct identity pairs.
func inMemoryKey(campaignSeed, zoneID string) string {
	return fmt.Sprintf("%d:%s:%s", len(campaignSeed), campaignSeed, zoneID)
}

func copyZone(zone *world.Zone) *world.Zone {
	cp := *zone
	cp.Tiles = make([][]world.Tile, len(zone.Tiles))
	for y, row := range zone.Tiles {
		cp.Tiles[y] = make([]world.Tile, len(row))
		copy(cp.Tiles[y], row)
	}
	if zone.Metadata != nil {
		cp.Metadata = make(map[string]interface{}, len(zone.Metadata))
		for k, v := range zone.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}

// Create stores a new zone
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()

	key := inMemoryKey(input.Zone.CampaignSeed, input.Zone.ZoneID)
	if _, exists := r.byKey[key]; exists {
		return nil, errors.AlreadyExistsf("zone %s already exists in campaign %s", input.Zone.ZoneID, input.Zone.CampaignSeed)
	}

	now := r.now()
	zone := copyZone(input.Zone)
	zone.CreatedAt = now
	zone.UpdatedAt = now

	r.byKey[key] = zone
	r.byID[zone.ID] = key

	return &CreateOutput{Zone: copyZone(zone)}, nil
}

// Get retrieves a zone by campaign seed and zone ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	zone, exists := r.byKey[inMemoryKey(input.CampaignSeed, input.ZoneID)]
	if !exists {
		return nil, errors.NotFoundf("zone %s not found in campaign %s", input.ZoneID, input.CampaignSeed)
	}

	return &GetOutput{Zone: copyZone(zone)}, nil
}

// GetByID retrieves a zone by its record ID
func (r *InMemoryRepository) GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	key, exists := r.byID[input.ID]
	if !exists {
		return nil, errors.NotFoundf("zone with ID %s not found", input.ID)
	}
	zone, exists := r.byKey[key]
	if !exists {
		return nil, errors.NotFoundf("zone with ID %s not found", input.ID)
	}

	return &GetByIDOutput{Zone: copyZone(zone)}, nil
}

// Update replaces an existing zone record
func (r *InMemoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Zone == nil {
		return nil, errors.InvalidArgument(errZoneNil)
	}
	if input.Zone.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}
	if input.Zone.ZoneID == "" {
		return nil, errors.InvalidArgument(errZoneIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := inMemoryKey(input.Zone.CampaignSeed, input.Zone.ZoneID)
	if _, exists := r.byKey[key]; !exists {
		return nil, errors.NotFoundf("zone %s not found in campaign %s", input.Zone.ZoneID, input.Zone.CampaignSeed)
	}

	zone := copyZone(input.Zone)
	zone.UpdatedAt = r.now()
	r.byKey[key] = zone

	return &UpdateOutput{Zone: copyZone(zone)}, nil
}

// ListByCampaign retrieves all zones of a campaign, sorted by zone ID
func (r *InMemoryRepository) ListByCampaign(ctx context.Context, input ListByCampaignInput) (*ListByCampaignOutput, error) {
	if input.CampaignSeed == "" {
		return nil, errors.InvalidArgument(errCampaignSeedEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var zones []*world.Zone
	for _, zone := range r.byKey {
		if zone.CampaignSeed == input.CampaignSeed {
			zones = append(zones, copyZone(zone))
		}
	}

	sort.Slice(zones, func(i, j int) bool {
		return zones[i].ZoneID < zones[j].ZoneID
	})

	return &ListByCampaignOutput{Zones: zones}, nil
}

func (r *InMemoryRepository) now() int64 {
	if r.clock != nil {
		return r.clock.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}
