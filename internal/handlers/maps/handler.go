// Package maps exposes the campaign map zones and world chunks over HTTP
package maps

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	worldorch "github.com/emberfall/campaign-api/internal/orchestrators/world"
)

// HandlerConfig holds dependencies for the maps handler
type HandlerConfig struct {
	WorldService worldorch.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.WorldService == nil {
		return errors.InvalidArgument("world service is required")
	}
	return nil
}

// Handler serves the /api/maps routes
type Handler struct {
	worldService worldorch.Service
}

// NewHandler creates a new maps handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{worldService: cfg.WorldService}, nil
}

// Register mounts the map routes. Literal segments (campaign, chunks) take
// precedence over the zone wildcard, so registration order doesn't matter.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/maps/campaign/{campaignSeed}", h.listCampaignMaps)
	mux.HandleFunc("GET /api/maps/chunks/{campaignSeed}/active", h.loadActiveChunks)
	mux.HandleFunc("GET /api/maps/chunks/{campaignSeed}/{x}/{y}", h.getChunk)
	mux.HandleFunc("GET /api/maps/{campaignSeed}/{zoneId...}", h.loadMap)
	mux.HandleFunc("POST /api/maps", h.saveMap)
	mux.HandleFunc("PUT /api/maps/{id}", h.updateMap)
}

// saveMapRequest accepts both camelCase and snake_case key forms
type saveMapRequest struct {
	CampaignSeed      string                 `json:"campaignSeed"`
	CampaignSeedSnake string                 `json:"campaign_seed"`
	ZoneID            string                 `json:"zoneId"`
	ZoneIDSnake       string                 `json:"zone_id"`
	ZoneType          string                 `json:"zoneType"`
	ZoneTypeSnake     string                 `json:"zone_type"`
	Width             int                    `json:"width"`
	Height            int                    `json:"height"`
	Tiles             [][]world.Tile         `json:"tiles"`
	SpawnPoint        *world.SpawnPoint      `json:"spawnPoint"`
	SpawnPointSnake   *world.SpawnPoint      `json:"spawn_point"`
	Seed              *float64               `json:"seed"`
	Metadata          map[string]interface{} `json:"metadata"`
}

type updateMapRequest struct {
	Tiles           [][]world.Tile    `json:"tiles"`
	SpawnPoint      *world.SpawnPoint `json:"spawnPoint"`
	SpawnPointSnake *world.SpawnPoint `json:"spawn_point"`
	Metadata        json.RawMessage   `json:"metadata"`
	Seed            json.RawMessage   `json:"seed"`
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstSpawnPoint(a, b *world.SpawnPoint) *world.SpawnPoint {
	if a != nil {
		return a
	}
	return b
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func (h *Handler) listCampaignMaps(w http.ResponseWriter, r *http.Request) {
	out, err := h.worldService.ListCampaignMaps(r.Context(), &worldorch.ListCampaignMapsInput{
		CampaignSeed: r.PathValue("campaignSeed"),
	})
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Maps)
}

func (h *Handler) loadMap(w http.ResponseWriter, r *http.Request) {
	campaignSeed := r.PathValue("campaignSeed")
	zoneID := r.PathValue("zoneId")

	out, err := h.worldService.LoadMap(r.Context(), &worldorch.LoadMapInput{
		CampaignSeed: campaignSeed,
		ZoneID:       zoneID,
	})
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}
	if out.Zone == nil {
		errors.WriteHTTP(r.Context(), w, errors.NotFoundf("zone %s not found in campaign %s", zoneID, campaignSeed))
		return
	}

	writeJSON(w, http.StatusOK, out.Zone)
}

func (h *Handler) saveMap(w http.ResponseWriter, r *http.Request) {
	var req saveMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("request body must be valid JSON"))
		return
	}

	zone := &world.Zone{
		CampaignSeed: firstNonEmpty(req.CampaignSeed, req.CampaignSeedSnake),
		ZoneID:       firstNonEmpty(req.ZoneID, req.ZoneIDSnake),
		ZoneType:     world.ZoneType(firstNonEmpty(req.ZoneType, req.ZoneTypeSnake)),
		Width:        req.Width,
		Height:       req.Height,
		Tiles:        req.Tiles,
		Metadata:     req.Metadata,
	}
	sp := firstSpawnPoint(req.SpawnPoint, req.SpawnPointSnake)
	if sp == nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("spawnPoint is required"))
		return
	}
	zone.SpawnPoint = *sp
	if req.Seed != nil {
		seed := int64(math.Floor(*req.Seed))
		zone.Seed = &seed
	}

	out, err := h.worldService.SaveMap(r.Context(), &worldorch.SaveMapInput{Zone: zone})
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Zone)
}

func (h *Handler) updateMap(w http.ResponseWriter, r *http.Request) {
	var req updateMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("request body must be valid JSON"))
		return
	}

	input := &worldorch.UpdateMapInput{
		ID:         r.PathValue("id"),
		Tiles:      req.Tiles,
		SpawnPoint: firstSpawnPoint(req.SpawnPoint, req.SpawnPointSnake),
	}

	if req.Metadata != nil {
		if isJSONNull(req.Metadata) {
			input.ClearMetadata = true
		} else {
			var metadata map[string]interface{}
			if err := json.Unmarshal(req.Metadata, &metadata); err != nil {
				errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("metadata must be an object or null"))
				return
			}
			input.Metadata = metadata
		}
	}

	if req.Seed != nil {
		if isJSONNull(req.Seed) {
			input.ClearSeed = true
		} else {
			var raw float64
			if err := json.Unmarshal(req.Seed, &raw); err != nil {
				errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("seed must be a number or null"))
				return
			}
			seed := int64(math.Floor(raw))
			input.Seed = &seed
		}
	}

	out, err := h.worldService.UpdateMapByID(r.Context(), input)
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Zone)
}

func (h *Handler) getChunk(w http.ResponseWriter, r *http.Request) {
	chunkX, err := strconv.Atoi(r.PathValue("x"))
	if err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("chunk x must be an integer"))
		return
	}
	chunkY, err := strconv.Atoi(r.PathValue("y"))
	if err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("chunk y must be an integer"))
		return
	}

	out, err := h.worldService.GetOrCreateChunk(r.Context(), &worldorch.GetOrCreateChunkInput{
		CampaignSeed: r.PathValue("campaignSeed"),
		ChunkX:       chunkX,
		ChunkY:       chunkY,
	})
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Zone)
}

func (h *Handler) loadActiveChunks(w http.ResponseWriter, r *http.Request) {
	centerX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("query parameter x must be an integer"))
		return
	}
	centerY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		errors.WriteHTTP(r.Context(), w, errors.InvalidArgument("query parameter y must be an integer"))
		return
	}

	out, err := h.worldService.LoadActiveChunks(r.Context(), &worldorch.LoadActiveChunksInput{
		CampaignSeed: r.PathValue("campaignSeed"),
		CenterX:      centerX,
		CenterY:      centerY,
	})
	if err != nil {
		errors.WriteHTTP(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Chunks)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding a value we just built; a failure here means the connection
	// is gone and there is nothing useful to write.
	_ = json.NewEncoder(w).Encode(body)
}
