package data_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/data"
)

type MagicItemsTestSuite struct {
	suite.Suite
}

func (s *MagicItemsTestSuite) TestDatabaseSize() {
	s.Len(data.MagicItems(), 239)
}

func (s *MagicItemsTestSuite) TestRarityDistribution() {
	byRarity := map[data.Rarity]int{
		data.RarityCommon:    12,
		data.RarityUncommon:  69,
		data.RarityRare:      79,
		data.RarityVeryRare:  51,
		data.RarityLegendary: 27,
		data.RarityArtifact:  1,
	}
	for rarity, want := range byRarity {
		s.Len(data.MagicItemsByRarity(rarity), want, "rarity %s", rarity)
	}
}

func (s *MagicItemsTestSuite) TestAttunementCount() {
	s.Len(data.AttunementItems(), 126)
}

func (s *MagicItemsTestSuite) TestEveryItemIsComplete() {
	seen := make(map[string]bool)
	for _, item := range data.MagicItems() {
		s.NotEmpty(item.Name)
		s.NotEmpty(item.Rarity)
		s.NotEmpty(item.Type)
		s.NotEmpty(item.Description, "item %s", item.Name)
		s.False(seen[item.Name], "duplicate item %s", item.Name)
		seen[item.Name] = true
	}
}

func (s *MagicItemsTestSuite) TestLookupByName() {
	item := data.MagicItemByName("staff of the magi")
	s.Require().NotNil(item)
	s.Equal("Staff of the Magi", item.Name)
	s.Equal(data.RarityLegendary, item.Rarity)
	s.True(item.RequiresAttunement)

	s.Nil(data.MagicItemByName("Sword of Nonexistence"))
}

func (s *MagicItemsTestSuite) TestLookupByType() {
	for _, item := range data.MagicItemsByType("Potion") {
		s.Equal("Potion", item.Type)
	}
	s.NotEmpty(data.MagicItemsByType("Potion"))
}

func (s *MagicItemsTestSuite) TestSearch() {
	results := data.SearchMagicItems("belt of")
	s.NotEmpty(results)
	for _, item := range results {
		s.Contains(item.Name, "Belt of")
	}
}

func (s *MagicItemsTestSuite) TestRandomItemIsDeterministic() {
	first := data.RandomMagicItem(rand.New(rand.NewSource(42)), data.RarityRare)
	second := data.RandomMagicItem(rand.New(rand.NewSource(42)), data.RarityRare)
	s.Require().NotNil(first)
	s.Require().NotNil(second)
	s.Equal(first.Name, second.Name)
	s.Equal(data.RarityRare, first.Rarity)
}

func (s *MagicItemsTestSuite) TestRandomItemsRespectFilter() {
	attuned := true
	rng := rand.New(rand.NewSource(7))
	items := data.RandomMagicItems(rng, 5, data.RandomItemFilter{
		Rarity:             data.RarityUncommon,
		RequiresAttunement: &attuned,
	})
	s.Len(items, 5)
	for _, item := range items {
		s.Equal(data.RarityUncommon, item.Rarity)
		s.True(item.RequiresAttunement)
	}
}

func (s *MagicItemsTestSuite) TestRandomItemsClampsCount() {
	rng := rand.New(rand.NewSource(7))
	items := data.RandomMagicItems(rng, 500, data.RandomItemFilter{Rarity: data.RarityArtifact})
	s.Len(items, 1)
}

func (s *MagicItemsTestSuite) TestStats() {
	stats := data.Stats()
	s.Equal(239, stats.Total)
	s.Equal(126, stats.RequiresAttunement)
	s.Equal(12, stats.ByRarity[data.RarityCommon])
	s.Equal(1, stats.ByRarity[data.RarityArtifact])
	s.NotEmpty(stats.Types)
}

func TestMagicItemsSuite(t *testing.T) {
	suite.Run(t, new(MagicItemsTestSuite))
}
