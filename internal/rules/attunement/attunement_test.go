package attunement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/data"
	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/rules/attunement"
)

type AttunementTestSuite struct {
	suite.Suite

	now time.Time
}

func (s *AttunementTestSuite) SetupTest() {
	s.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func (s *AttunementTestSuite) item(name string) *data.MagicItem {
	item := data.MagicItemByName(name)
	s.Require().NotNil(item, "missing item %s", name)
	return item
}

func (s *AttunementTestSuite) TestNewRecordDefaults() {
	rec := attunement.NewRecord("char-1", 0)
	s.Equal("char-1", rec.CharacterID)
	s.Equal(attunement.DefaultMaxSlots, rec.MaxSlots)
	s.Empty(rec.AttunedItems)
	s.True(attunement.HasAvailableSlot(rec))
	s.Equal(3, attunement.AvailableSlots(rec))
}

func (s *AttunementTestSuite) TestAttuneSucceeds() {
	rec := attunement.NewRecord("char-1", 3)

	updated, err := attunement.Attune(rec, s.item("Amulet of Health"), s.now)
	s.Require().NoError(err)
	s.True(attunement.IsAttunedTo(updated, "Amulet of Health"))
	s.Equal(2, attunement.AvailableSlots(updated))
	s.Equal(s.now, updated.AttunedItems[0].AttunedAt)
}

func (s *AttunementTestSuite) TestAttuneLeavesInputUntouched() {
	rec := attunement.NewRecord("char-1", 3)

	updated, err := attunement.Attune(rec, s.item("Ring of Protection"), s.now)
	s.Require().NoError(err)

	s.Empty(rec.AttunedItems)
	s.Len(updated.AttunedItems, 1)
}

func (s *AttunementTestSuite) TestAttuneRejectsNonAttunementItem() {
	rec := attunement.NewRecord("char-1", 3)

	_, err := attunement.Attune(rec, s.item("Potion of Healing"), s.now)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "does not require attunement")
}

func (s *AttunementTestSuite) TestAttuneRejectsDuplicate() {
	rec := attunement.NewRecord("char-1", 3)
	rec, err := attunement.Attune(rec, s.item("Amulet of Health"), s.now)
	s.Require().NoError(err)

	_, err = attunement.Attune(rec, s.item("Amulet of Health"), s.now)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Contains(err.Error(), "Already attuned to Amulet of Health")
}

func (s *AttunementTestSuite) TestFourthAttunementFails() {
	rec := attunement.NewRecord("char-1", 3)
	var err error
	for _, name := range []string{"Amulet of Health", "Ring of Protection", "Boots of Speed"} {
		rec, err = attunement.Attune(rec, s.item(name), s.now)
		s.Require().NoError(err)
	}
	s.False(attunement.HasAvailableSlot(rec))

	_, err = attunement.Attune(rec, s.item("Flame Tongue"), s.now)
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Contains(err.Error(), "No available attunement slots (3/3)")
}

func (s *AttunementTestSuite) TestBreakThenReattune() {
	rec := attunement.NewRecord("char-1", 3)
	var err error
	for _, name := range []string{"Amulet of Health", "Ring of Protection", "Boots of Speed"} {
		rec, err = attunement.Attune(rec, s.item(name), s.now)
		s.Require().NoError(err)
	}

	rec, err = attunement.Break(rec, "Ring of Protection")
	s.Require().NoError(err)
	s.Equal([]string{"Amulet of Health", "Boots of Speed"}, attunement.AttunedItemNames(rec))

	rec, err = attunement.Attune(rec, s.item("Flame Tongue"), s.now)
	s.Require().NoError(err)
	s.Equal([]string{"Amulet of Health", "Boots of Speed", "Flame Tongue"}, attunement.AttunedItemNames(rec))
}

func (s *AttunementTestSuite) TestBreakUnattunedItemFails() {
	rec := attunement.NewRecord("char-1", 3)

	_, err := attunement.Break(rec, "Amulet of Health")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "Not attuned to Amulet of Health")
}

func (s *AttunementTestSuite) TestReplaceSwapsOnFullRecord() {
	rec := attunement.NewRecord("char-1", 3)
	var err error
	for _, name := range []string{"Amulet of Health", "Ring of Protection", "Boots of Speed"} {
		rec, err = attunement.Attune(rec, s.item(name), s.now)
		s.Require().NoError(err)
	}

	rec, err = attunement.Replace(rec, "Boots of Speed", s.item("Sun Blade"), s.now)
	s.Require().NoError(err)
	s.False(attunement.IsAttunedTo(rec, "Boots of Speed"))
	s.True(attunement.IsAttunedTo(rec, "Sun Blade"))
	s.Len(rec.AttunedItems, 3)
}

func (s *AttunementTestSuite) TestCanAttuneClassRestriction() {
	staff := s.item("Staff of the Magi")

	wizard := attunement.CanAttune(staff, "Wizard", "Elf", "NG")
	s.True(wizard.CanAttune)

	fighter := attunement.CanAttune(staff, "Fighter", "Human", "LG")
	s.False(fighter.CanAttune)
	s.Contains(fighter.Reason, "Requires attunement by a sorcerer, warlock, or wizard")
}

func (s *AttunementTestSuite) TestCanAttuneUnrestrictedItem() {
	amulet := s.item("Amulet of Health")

	result := attunement.CanAttune(amulet, "Fighter", "Human", "CE")
	s.True(result.CanAttune)
}

func (s *AttunementTestSuite) TestCanAttuneWithoutAttunementRequirement() {
	potion := s.item("Potion of Healing")

	result := attunement.CanAttune(potion, "", "", "")
	s.True(result.CanAttune)
}

func (s *AttunementTestSuite) TestCanAttuneAlignmentRestriction() {
	talisman := s.item("Talisman of Pure Good")

	good := attunement.CanAttune(talisman, "Cleric", "Human", "Lawful Good")
	s.True(good.CanAttune)

	evil := attunement.CanAttune(talisman, "Cleric", "Human", "Lawful Evil")
	s.False(evil.CanAttune)
	s.Contains(evil.Reason, "Requires good alignment")
}

func (s *AttunementTestSuite) TestSummary() {
	rec := attunement.NewRecord("char-1", 3)
	rec, err := attunement.Attune(rec, s.item("Amulet of Health"), s.now.AddDate(0, 0, -2))
	s.Require().NoError(err)

	summary := attunement.Summary(rec, s.now)
	s.Contains(summary, "Attunement Slots: 1/3 used, 2 available")
	s.Contains(summary, "1. Amulet of Health (2d ago)")

	empty := attunement.Summary(attunement.NewRecord("char-2", 3), s.now)
	s.Contains(empty, "No attuned items")
}

func TestAttunementSuite(t *testing.T) {
	suite.Run(t, new(AttunementTestSuite))
}
