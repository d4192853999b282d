package maps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/entities/world"
	"github.com/emberfall/campaign-api/internal/errors"
	maps "github.com/emberfall/campaign-api/internal/repositories/maps"
	"github.com/emberfall/campaign-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    maps.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := maps.NewRedis(&maps.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testZone(id, campaignSeed, zoneID string) *world.Zone {
	tiles := make([][]world.Tile, 2)
	for y := range tiles {
		tiles[y] = make([]world.Tile, 3)
		for x := range tiles[y] {
			tiles[y][x] = world.Tile{X: x, Y: y, Biome: "plains", Traversable: true}
		}
	}
	return &world.Zone{
		ID:           id,
		CampaignSeed: campaignSeed,
		ZoneID:       zoneID,
		ZoneType:     world.ZoneTypePlains,
		Width:        3,
		Height:       2,
		Tiles:        tiles,
		SpawnPoint:   world.SpawnPoint{X: 1, Y: 1},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	zone := s.testZone("map_1", "seed-1", "overworld")

	created, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
	s.Require().NoError(err)
	s.NotZero(created.Zone.CreatedAt)
	s.Equal(created.Zone.CreatedAt, created.Zone.UpdatedAt)

	got, err := s.repo.Get(s.ctx, maps.GetInput{CampaignSeed: "seed-1", ZoneID: "overworld"})
	s.Require().NoError(err)
	s.Equal("map_1", got.Zone.ID)
	s.Equal("overworld", got.Zone.ZoneID)
	s.Equal(world.ZoneTypePlains, got.Zone.ZoneType)
	s.Len(got.Zone.Tiles, 2)
	s.Len(got.Zone.Tiles[0], 3)
	s.True(got.Zone.Tiles[1][2].Traversable)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	zone := s.testZone("map_1", "seed-1", "overworld")
	_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
	s.Require().NoError(err)

	dup := s.testZone("map_2", "seed-1", "overworld")
	_, err = s.repo.Create(s.ctx, maps.CreateInput{Zone: dup})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestSameZoneIDAcrossCampaigns() {
	_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: s.testZone("map_1", "seed-1", "overworld")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, maps.CreateInput{Zone: s.testZone("map_2", "seed-2", "overworld")})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestColonBearingIdentitiesStayDistinct() {
	// ("alpha", "beta:gamma") and ("alpha:beta", "gamma") are different
	// zones and must not share a storage key
	_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: s.testZone("map_1", "alpha", "beta:gamma")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, maps.CreateInput{Zone: s.testZone("map_2", "alpha:beta", "gamma")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, maps.GetInput{CampaignSeed: "alpha", ZoneID: "beta:gamma"})
	s.Require().NoError(err)
	s.Equal("map_1", got.Zone.ID)

	got, err = s.repo.Get(s.ctx, maps.GetInput{CampaignSeed: "alpha:beta", ZoneID: "gamma"})
	s.Require().NoError(err)
	s.Equal("map_2", got.Zone.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, maps.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	zone := s.testZone("map_1", "", "overworld")
	_, err = s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissingZone() {
	_, err := s.repo.Get(s.ctx, maps.GetInput{CampaignSeed: "seed-1", ZoneID: "nowhere"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByID() {
	zone := s.testZone("map_1", "seed-1", "dungeon/floor-1")
	_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
	s.Require().NoError(err)

	got, err := s.repo.GetByID(s.ctx, maps.GetByIDInput{ID: "map_1"})
	s.Require().NoError(err)
	s.Equal("dungeon/floor-1", got.Zone.ZoneID)

	_, err = s.repo.GetByID(s.ctx, maps.GetByIDInput{ID: "map_404"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	zone := s.testZone("map_1", "seed-1", "overworld")
	created, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
	s.Require().NoError(err)

	updated := *created.Zone
	updated.Tiles[0][0].Explored = true
	updated.SpawnPoint = world.SpawnPoint{X: 0, Y: 0}

	out, err := s.repo.Update(s.ctx, maps.UpdateInput{Zone: &updated})
	s.Require().NoError(err)
	s.GreaterOrEqual(out.Zone.UpdatedAt, created.Zone.CreatedAt)

	got, err := s.repo.Get(s.ctx, maps.GetInput{CampaignSeed: "seed-1", ZoneID: "overworld"})
	s.Require().NoError(err)
	s.True(got.Zone.Tiles[0][0].Explored)
	s.Equal(world.SpawnPoint{X: 0, Y: 0}, got.Zone.SpawnPoint)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingZone() {
	zone := s.testZone("map_1", "seed-1", "overworld")
	_, err := s.repo.Update(s.ctx, maps.UpdateInput{Zone: zone})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByCampaign() {
	for i, zoneID := range []string{"swamp", "overworld", "dungeon"} {
		zone := s.testZone("map_"+zoneID, "seed-1", zoneID)
		_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: zone})
		s.Require().NoError(err, "zone %d", i)
	}
	_, err := s.repo.Create(s.ctx, maps.CreateInput{Zone: s.testZone("map_x", "seed-2", "elsewhere")})
	s.Require().NoError(err)

	out, err := s.repo.ListByCampaign(s.ctx, maps.ListByCampaignInput{CampaignSeed: "seed-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Zones, 3)
	s.Equal("dungeon", out.Zones[0].ZoneID)
	s.Equal("overworld", out.Zones[1].ZoneID)
	s.Equal("swamp", out.Zones[2].ZoneID)
}

func (s *RedisRepositoryTestSuite) TestListEmptyCampaign() {
	out, err := s.repo.ListByCampaign(s.ctx, maps.ListByCampaignInput{CampaignSeed: "seed-99"})
	s.Require().NoError(err)
	s.Empty(out.Zones)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
