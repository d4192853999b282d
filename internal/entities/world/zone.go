// Package world implements the campaign world entities: persisted map zones
// and their tile grids.
package world

// ZoneType classifies a map zone's terrain
type ZoneType string

// Zone types
const (
	ZoneTypeDungeon ZoneType = "dungeon"
	ZoneTypeForest  ZoneType = "forest"
	ZoneTypePlains  ZoneType = "plains"
	ZoneTypeTown    ZoneType = "town"
)

// IsValid reports whether the zone type is one of the known values
func (z ZoneType) IsValid() bool {
	switch z {
	case ZoneTypeDungeon, ZoneTypeForest, ZoneTypePlains, ZoneTypeTown:
		return true
	}
	return false
}

// Tile is a single cell of a zone's grid
type Tile struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Biome       string  `json:"biome"`
	Elevation   float64 `json:"elevation,omitempty"`
	Traversable bool    `json:"traversable"`
	Explored    bool    `json:"explored,omitempty"`
}

// SpawnPoint is where characters enter a zone
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Zone represents a persisted map zone: a rectangular tile grid unique per
// (CampaignSeed, ZoneID) within a campaign world.
// NOTE: This is a data-only struct. Validation and generation live in the
// world orchestrator.
type Zone struct {
	ID           string                 `json:"id"`
	CampaignSeed string                 `json:"campaignSeed"`
	ZoneID       string                 `json:"zoneId"`
	ZoneType     ZoneType               `json:"zoneType"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	Tiles        [][]Tile               `json:"tiles"`
	SpawnPoint   SpawnPoint             `json:"spawnPoint"`
	Seed         *int64                 `json:"seed,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    int64                  `json:"createdAt"`
	UpdatedAt    int64                  `json:"updatedAt"`
}

// Summary returns the zone without its tile grid
func (z *Zone) Summary() *ZoneSummary {
	return &ZoneSummary{
		ID:           z.ID,
		CampaignSeed: z.CampaignSeed,
		ZoneID:       z.ZoneID,
		ZoneType:     z.ZoneType,
		Width:        z.Width,
		Height:       z.Height,
		SpawnPoint:   z.SpawnPoint,
		Seed:         z.Seed,
		Metadata:     z.Metadata,
		CreatedAt:    z.CreatedAt,
		UpdatedAt:    z.UpdatedAt,
	}
}

// ZoneSummary is a zone listing entry. Tiles are omitted to keep campaign
// listings small.
type ZoneSummary struct {
	ID           string                 `json:"id"`
	CampaignSeed string                 `json:"campaignSeed"`
	ZoneID       string                 `json:"zoneId"`
	ZoneType     ZoneType               `json:"zoneType"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	SpawnPoint   SpawnPoint             `json:"spawnPoint"`
	Seed         *int64                 `json:"seed,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    int64                  `json:"createdAt"`
	UpdatedAt    int64                  `json:"updatedAt"`
}
