package world

import (
	"github.com/emberfall/campaign-api/internal/entities/world"
)

// LoadMapInput identifies a zone to load
type LoadMapInput struct {
	CampaignSeed string
	ZoneID       string
}

// LoadMapOutput contains the loaded zone. Zone is nil when no zone exists
// for the given keys.
type LoadMapOutput struct {
	Zone *world.Zone
}

// SaveMapInput contains a new zone to persist. The record ID is assigned by
// the orchestrator; any caller-supplied ID is ignored.
type SaveMapInput struct {
	Zone *world.Zone
}

// SaveMapOutput contains the persisted zone
type SaveMapOutput struct {
	Zone *world.Zone
}

// UpdateMapInput contains a patch for an existing zone. Only tiles, spawn
// point, metadata, and seed can change; identity fields (campaign seed,
// zone ID, dimensions, zone type) are immutable. Nil fields are left
// untouched; the Clear flags distinguish "unset" from "absent".
type UpdateMapInput struct {
	ID            string
	Tiles         [][]world.Tile
	SpawnPoint    *world.SpawnPoint
	Metadata      map[string]interface{}
	ClearMetadata bool
	Seed          *int64
	ClearSeed     bool
}

// UpdateMapOutput contains the updated zone
type UpdateMapOutput struct {
	Zone *world.Zone
}

// ListCampaignMapsInput identifies the campaign to list
type ListCampaignMapsInput struct {
	CampaignSeed string
}

// ListCampaignMapsOutput contains the campaign's zones without tile grids,
// sorted by zone ID ascending
type ListCampaignMapsOutput struct {
	Maps []*world.ZoneSummary
}

// GenerateOptions overrides the defaults for generated maps
type GenerateOptions struct {
	Width      int
	Height     int
	Seed       *int64
	Tiles      [][]world.Tile
	SpawnPoint *world.SpawnPoint
	Metadata   map[string]interface{}
}

// GenerateMapInput requests server-side generation of a zone. Generation is
// idempotent: if the zone already exists it is returned unchanged.
type GenerateMapInput struct {
	CampaignSeed string
	ZoneID       string
	ZoneType     world.ZoneType
	Options      *GenerateOptions
}

// GenerateMapOutput contains the generated (or pre-existing) zone
type GenerateMapOutput struct {
	Zone *world.Zone
}

// GetOrCreateChunkInput identifies a chunk by campaign and chunk coordinates
type GetOrCreateChunkInput struct {
	CampaignSeed string
	ChunkX       int
	ChunkY       int
}

// GetOrCreateChunkOutput contains the chunk's zone
type GetOrCreateChunkOutput struct {
	Zone *world.Zone
}

// LoadActiveChunksInput identifies the center of a 3x3 chunk window
type LoadActiveChunksInput struct {
	CampaignSeed string
	CenterX      int
	CenterY      int
}

// LoadActiveChunksOutput contains the chunks that could be loaded or
// generated, row-major from (centerX-1, centerY-1). Chunks that failed are
// skipped rather than failing the whole window.
type LoadActiveChunksOutput struct {
	Chunks []*world.Zone
}
