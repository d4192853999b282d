package world_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entities "github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/orchestrators/world"
	"github.com/emberfall/campaign-api/internal/pkg/idgen"
	"github.com/emberfall/campaign-api/internal/repositories/maps"
	mapsmock "github.com/emberfall/campaign-api/internal/repositories/maps/mock"
)

type WorldOrchestratorTestSuite struct {
	suite.Suite
	svc  world.Service
	repo *maps.InMemoryRepository
	ctx  context.Context
}

func (s *WorldOrchestratorTestSuite) SetupTest() {
	s.repo = maps.NewInMemory()
	svc, err := world.NewOrchestrator(&world.Config{
		MapRepo:     s.repo,
		IDGenerator: idgen.NewSequential("map"),
		SeedFunc:    func() int64 { return 12345 },
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *WorldOrchestratorTestSuite) newZone(campaignSeed, zoneID string, width, height int) *entities.Zone {
	tiles := make([][]entities.Tile, height)
	for y := range tiles {
		tiles[y] = make([]entities.Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = entities.Tile{X: x, Y: y, Biome: "plains", Traversable: true}
		}
	}
	return &entities.Zone{
		CampaignSeed: campaignSeed,
		ZoneID:       zoneID,
		ZoneType:     entities.ZoneTypePlains,
		Width:        width,
		Height:       height,
		Tiles:        tiles,
		SpawnPoint:   entities.SpawnPoint{X: 0, Y: 0},
	}
}

func (s *WorldOrchestratorTestSuite) TestConfigValidation() {
	_, err := world.NewOrchestrator(&world.Config{})
	s.Error(err)

	_, err = world.NewOrchestrator(&world.Config{MapRepo: s.repo})
	s.Error(err)
}

func (s *WorldOrchestratorTestSuite) TestLoadMapMissingReturnsNil() {
	out, err := s.svc.LoadMap(s.ctx, &world.LoadMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "nowhere",
	})
	s.Require().NoError(err)
	s.Nil(out.Zone)
}

func (s *WorldOrchestratorTestSuite) TestSaveAndLoadMap() {
	saved, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", "overworld", 4, 3)})
	s.Require().NoError(err)
	s.Equal("map_1", saved.Zone.ID)
	s.NotZero(saved.Zone.CreatedAt)

	loaded, err := s.svc.LoadMap(s.ctx, &world.LoadMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "overworld",
	})
	s.Require().NoError(err)
	s.Require().NotNil(loaded.Zone)
	s.Equal("map_1", loaded.Zone.ID)
	s.Len(loaded.Zone.Tiles, 3)
	s.Len(loaded.Zone.Tiles[0], 4)
}

func (s *WorldOrchestratorTestSuite) TestSaveMapDuplicate() {
	_, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", "overworld", 2, 2)})
	s.Require().NoError(err)

	_, err = s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", "overworld", 2, 2)})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *WorldOrchestratorTestSuite) TestSaveMapValidation() {
	cases := []struct {
		name   string
		mutate func(z *entities.Zone)
	}{
		{"empty campaign seed", func(z *entities.Zone) { z.CampaignSeed = "" }},
		{"empty zone ID", func(z *entities.Zone) { z.ZoneID = "" }},
		{"bad zone ID characters", func(z *entities.Zone) { z.ZoneID = "over world!" }},
		{"unknown zone type", func(z *entities.Zone) { z.ZoneType = "swamp" }},
		{"zero width", func(z *entities.Zone) { z.Width = 0 }},
		{"oversized height", func(z *entities.Zone) { z.Height = 2000 }},
		{"row count mismatch", func(z *entities.Zone) { z.Tiles = z.Tiles[:1] }},
		{"column count mismatch", func(z *entities.Zone) { z.Tiles[1] = z.Tiles[1][:1] }},
		{"spawn out of bounds", func(z *entities.Zone) { z.SpawnPoint = entities.SpawnPoint{X: 99, Y: 0} }},
		{"tile coordinate mismatch", func(z *entities.Zone) { z.Tiles[0][0] = entities.Tile{X: 5, Y: 5} }},
		{"nil tiles", func(z *entities.Zone) { z.Tiles = nil }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			zone := s.newZone("seed-1", "zone-"+tc.name, 3, 2)
			tc.mutate(zone)
			_, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: zone})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *WorldOrchestratorTestSuite) TestSaveMapTrimsKeys() {
	zone := s.newZone("seed-1", "overworld", 2, 2)
	zone.CampaignSeed = "  seed-1  "
	zone.ZoneID = " overworld "

	saved, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: zone})
	s.Require().NoError(err)
	s.Equal("seed-1", saved.Zone.CampaignSeed)
	s.Equal("overworld", saved.Zone.ZoneID)
}

func (s *WorldOrchestratorTestSuite) TestUpdateMapByID() {
	saved, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", "overworld", 3, 2)})
	s.Require().NoError(err)

	tiles := make([][]entities.Tile, 2)
	for y := range tiles {
		tiles[y] = make([]entities.Tile, 3)
		for x := range tiles[y] {
			tiles[y][x] = entities.Tile{X: x, Y: y, Biome: "forest", Traversable: false, Explored: true}
		}
	}
	seed := int64(777)

	updated, err := s.svc.UpdateMapByID(s.ctx, &world.UpdateMapInput{
		ID:         saved.Zone.ID,
		Tiles:      tiles,
		SpawnPoint: &entities.SpawnPoint{X: 2, Y: 1},
		Metadata:   map[string]interface{}{"revision": 2},
		Seed:       &seed,
	})
	s.Require().NoError(err)
	s.Equal("forest", updated.Zone.Tiles[0][0].Biome)
	s.Equal(entities.SpawnPoint{X: 2, Y: 1}, updated.Zone.SpawnPoint)
	s.Equal(map[string]interface{}{"revision": 2}, updated.Zone.Metadata)
	s.Require().NotNil(updated.Zone.Seed)
	s.Equal(int64(777), *updated.Zone.Seed)

	// Identity fields never change
	s.Equal("seed-1", updated.Zone.CampaignSeed)
	s.Equal("overworld", updated.Zone.ZoneID)
	s.Equal(3, updated.Zone.Width)
	s.Equal(2, updated.Zone.Height)
}

func (s *WorldOrchestratorTestSuite) TestUpdateMapClearFlags() {
	zone := s.newZone("seed-1", "overworld", 2, 2)
	seed := int64(42)
	zone.Seed = &seed
	zone.Metadata = map[string]interface{}{"generator": "basic"}

	saved, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: zone})
	s.Require().NoError(err)

	updated, err := s.svc.UpdateMapByID(s.ctx, &world.UpdateMapInput{
		ID:            saved.Zone.ID,
		ClearMetadata: true,
		ClearSeed:     true,
	})
	s.Require().NoError(err)
	s.Nil(updated.Zone.Metadata)
	s.Nil(updated.Zone.Seed)
}

func (s *WorldOrchestratorTestSuite) TestUpdateMapValidatesAgainstExistingBounds() {
	saved, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", "overworld", 3, 2)})
	s.Require().NoError(err)

	_, err = s.svc.UpdateMapByID(s.ctx, &world.UpdateMapInput{
		ID:         saved.Zone.ID,
		SpawnPoint: &entities.SpawnPoint{X: 3, Y: 0},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.UpdateMapByID(s.ctx, &world.UpdateMapInput{
		ID:    saved.Zone.ID,
		Tiles: make([][]entities.Tile, 5),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *WorldOrchestratorTestSuite) TestUpdateMapMissing() {
	_, err := s.svc.UpdateMapByID(s.ctx, &world.UpdateMapInput{ID: "map_404"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *WorldOrchestratorTestSuite) TestListCampaignMaps() {
	for _, zoneID := range []string{"swamp", "dungeon/floor-1", "overworld"} {
		_, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-1", zoneID, 2, 2)})
		s.Require().NoError(err)
	}
	_, err := s.svc.SaveMap(s.ctx, &world.SaveMapInput{Zone: s.newZone("seed-2", "elsewhere", 2, 2)})
	s.Require().NoError(err)

	out, err := s.svc.ListCampaignMaps(s.ctx, &world.ListCampaignMapsInput{CampaignSeed: "seed-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Maps, 3)
	s.Equal("dungeon/floor-1", out.Maps[0].ZoneID)
	s.Equal("overworld", out.Maps[1].ZoneID)
	s.Equal("swamp", out.Maps[2].ZoneID)
}

func (s *WorldOrchestratorTestSuite) TestGenerateAndSaveMapDefaults() {
	out, err := s.svc.GenerateAndSaveMap(s.ctx, &world.GenerateMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "overworld",
		ZoneType:     entities.ZoneTypeForest,
	})
	s.Require().NoError(err)

	zone := out.Zone
	s.Equal(64, zone.Width)
	s.Equal(64, zone.Height)
	s.Equal(entities.SpawnPoint{X: 32, Y: 32}, zone.SpawnPoint)
	s.Require().NotNil(zone.Seed)
	s.Equal(int64(12345), *zone.Seed)
	s.Equal("basic", zone.Metadata["generator"])
	s.Equal("forest", zone.Tiles[10][20].Biome)
	s.True(zone.Tiles[10][20].Traversable)
}

func (s *WorldOrchestratorTestSuite) TestGenerateAndSaveMapIsIdempotent() {
	first, err := s.svc.GenerateAndSaveMap(s.ctx, &world.GenerateMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "overworld",
		ZoneType:     entities.ZoneTypeTown,
	})
	s.Require().NoError(err)

	second, err := s.svc.GenerateAndSaveMap(s.ctx, &world.GenerateMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "overworld",
		ZoneType:     entities.ZoneTypePlains,
	})
	s.Require().NoError(err)
	s.Equal(first.Zone.ID, second.Zone.ID)
	s.Equal(entities.ZoneTypeTown, second.Zone.ZoneType)
}

func (s *WorldOrchestratorTestSuite) TestGenerateAndSaveMapWithOptions() {
	seed := int64(99)
	out, err := s.svc.GenerateAndSaveMap(s.ctx, &world.GenerateMapInput{
		CampaignSeed: "seed-1",
		ZoneID:       "arena",
		ZoneType:     entities.ZoneTypeDungeon,
		Options: &world.GenerateOptions{
			Width:      10,
			Height:     8,
			Seed:       &seed,
			SpawnPoint: &entities.SpawnPoint{X: 1, Y: 1},
			Metadata:   map[string]interface{}{"generator": "arena"},
		},
	})
	s.Require().NoError(err)
	s.Equal(10, out.Zone.Width)
	s.Equal(8, out.Zone.Height)
	s.Equal(int64(99), *out.Zone.Seed)
	s.Equal(entities.SpawnPoint{X: 1, Y: 1}, out.Zone.SpawnPoint)
	s.Equal("arena", out.Zone.Metadata["generator"])
}

func (s *WorldOrchestratorTestSuite) TestGetOrCreateChunk() {
	out, err := s.svc.GetOrCreateChunk(s.ctx, &world.GetOrCreateChunkInput{
		CampaignSeed: "seed-1",
		ChunkX:       0,
		ChunkY:       0,
	})
	s.Require().NoError(err)

	zone := out.Zone
	s.Equal("chunk_0_0", zone.ZoneID)
	s.Equal(entities.ZoneTypeTown, zone.ZoneType)
	s.Equal(world.ChunkWidth, zone.Width)
	s.Equal(world.ChunkHeight, zone.Height)
	s.Equal(entities.SpawnPoint{X: 50, Y: 40}, zone.SpawnPoint)
	s.Require().NotNil(zone.Seed)
	s.Equal(world.ChunkSeed("seed-1", 0, 0), *zone.Seed)
	s.Equal("town", zone.Metadata["chunkType"])

	// Second call returns the stored chunk, not a regeneration
	again, err := s.svc.GetOrCreateChunk(s.ctx, &world.GetOrCreateChunkInput{
		CampaignSeed: "seed-1",
		ChunkX:       0,
		ChunkY:       0,
	})
	s.Require().NoError(err)
	s.Equal(zone.ID, again.Zone.ID)
}

func (s *WorldOrchestratorTestSuite) TestChunkGenerationIsDeterministic() {
	first, err := s.svc.GetOrCreateChunk(s.ctx, &world.GetOrCreateChunkInput{
		CampaignSeed: "seed-1", ChunkX: 2, ChunkY: -1,
	})
	s.Require().NoError(err)

	// A fresh store regenerates identical terrain from the same seed
	other, err := world.NewOrchestrator(&world.Config{
		MapRepo:     maps.NewInMemory(),
		IDGenerator: idgen.NewSequential("map"),
	})
	s.Require().NoError(err)

	second, err := other.GetOrCreateChunk(s.ctx, &world.GetOrCreateChunkInput{
		CampaignSeed: "seed-1", ChunkX: 2, ChunkY: -1,
	})
	s.Require().NoError(err)
	s.Equal(first.Zone.Tiles, second.Zone.Tiles)
	s.Equal(*first.Zone.Seed, *second.Zone.Seed)
}

func (s *WorldOrchestratorTestSuite) TestLoadActiveChunks() {
	out, err := s.svc.LoadActiveChunks(s.ctx, &world.LoadActiveChunksInput{
		CampaignSeed: "seed-1",
		CenterX:      0,
		CenterY:      0,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Chunks, 9)

	types := make(map[entities.ZoneType]int)
	for _, chunk := range out.Chunks {
		types[chunk.ZoneType]++
	}
	s.Equal(1, types[entities.ZoneTypeTown])
	s.Equal(4, types[entities.ZoneTypePlains])
	s.Equal(4, types[entities.ZoneTypeForest])
}

func (s *WorldOrchestratorTestSuite) TestGetOrCreateChunkLostRaceReturnsWinner() {
	ctrl := gomock.NewController(s.T())
	repo := mapsmock.NewMockRepository(ctrl)

	winner := &entities.Zone{
		ID:           "map_winner",
		CampaignSeed: "seed-1",
		ZoneID:       "chunk_0_0",
		ZoneType:     entities.ZoneTypeTown,
		Width:        world.ChunkWidth,
		Height:       world.ChunkHeight,
	}

	key := maps.GetInput{CampaignSeed: "seed-1", ZoneID: "chunk_0_0"}
	gomock.InOrder(
		repo.EXPECT().
			Get(gomock.Any(), key).
			Return(nil, errors.NotFoundf("zone %s not found in campaign %s", key.ZoneID, key.CampaignSeed)),
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.AlreadyExistsf("zone %s already exists in campaign %s", key.ZoneID, key.CampaignSeed)),
		repo.EXPECT().
			Get(gomock.Any(), key).
			Return(&maps.GetOutput{Zone: winner}, nil),
	)

	svc, err := world.NewOrchestrator(&world.Config{
		MapRepo:     repo,
		IDGenerator: idgen.NewSequential("map"),
	})
	s.Require().NoError(err)

	out, err := svc.GetOrCreateChunk(s.ctx, &world.GetOrCreateChunkInput{
		CampaignSeed: "seed-1",
		ChunkX:       0,
		ChunkY:       0,
	})
	s.Require().NoError(err)
	s.Equal("map_winner", out.Zone.ID)
	s.Equal(entities.ZoneTypeTown, out.Zone.ZoneType)
}

func (s *WorldOrchestratorTestSuite) TestLoadActiveChunksSkipsFailures() {
	ctrl := gomock.NewController(s.T())
	repo := mapsmock.NewMockRepository(ctrl)
	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis unavailable")).
		Times(9)

	svc, err := world.NewOrchestrator(&world.Config{
		MapRepo:     repo,
		IDGenerator: idgen.NewSequential("map"),
	})
	s.Require().NoError(err)

	out, err := svc.LoadActiveChunks(s.ctx, &world.LoadActiveChunksInput{
		CampaignSeed: "seed-1",
		CenterX:      0,
		CenterY:      0,
	})
	s.Require().NoError(err)
	s.Empty(out.Chunks)
}

func TestWorldOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(WorldOrchestratorTestSuite))
}
