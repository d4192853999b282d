package spellslots_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/rules/spellslots"
)

type LevelingTestSuite struct {
	suite.Suite
}

func TestLevelingSuite(t *testing.T) {
	suite.Run(t, new(LevelingTestSuite))
}

func (s *LevelingTestSuite) TestToDBFormatStandardCaster() {
	slots := spellslots.ForLevel(spellslots.ClassWizard, 5)
	s.Require().NotNil(slots)

	s.Assert().Equal(map[string]int{"1": 4, "2": 3, "3": 2}, spellslots.ToDBFormat(slots))
}

func (s *LevelingTestSuite) TestToDBFormatPactMagic() {
	slots := spellslots.ForLevel(spellslots.ClassWarlock, 5)
	s.Require().NotNil(slots)

	s.Assert().Equal(map[string]int{"3": 2, "pact_magic": 1}, spellslots.ToDBFormat(slots))
}

func (s *LevelingTestSuite) TestToDBFormatOmitsZeroLevels() {
	db := spellslots.ToDBFormat(spellslots.SpellSlots{Level1: 2})
	s.Assert().Equal(map[string]int{"1": 2}, db)
	s.Assert().NotContains(db, "2")
}

func (s *LevelingTestSuite) TestUpdatedSlotsForLevel() {
	s.Assert().Nil(spellslots.UpdatedSlotsForLevel("Fighter", 5))
	s.Assert().Nil(spellslots.UpdatedSlotsForLevel(spellslots.ClassWizard, 0))

	// Paladin at level 1 is a spellcaster with zero slots
	paladin := spellslots.UpdatedSlotsForLevel(spellslots.ClassPaladin, 1)
	s.Require().NotNil(paladin)
	s.Assert().Empty(paladin)

	wizard := spellslots.UpdatedSlotsForLevel(spellslots.ClassWizard, 3)
	s.Assert().Equal(map[string]int{"1": 4, "2": 2}, wizard)
}

func (s *LevelingTestSuite) TestLevelUpMessage() {
	testCases := []struct {
		name     string
		class    string
		oldLevel int
		newLevel int
		contains []string
		exact    string
		empty    bool
	}{
		{
			name:     "non-caster",
			class:    "Fighter",
			oldLevel: 4,
			newLevel: 5,
			empty:    true,
		},
		{
			name:     "wizard unlocks 2nd level",
			class:    spellslots.ClassWizard,
			oldLevel: 2,
			newLevel: 3,
			contains: []string{"You unlock 2 2nd-level spell slots!", "You gain 1 additional 1st-level spell slot!"},
		},
		{
			name:     "paladin first spells",
			class:    spellslots.ClassPaladin,
			oldLevel: 1,
			newLevel: 2,
			exact:    "You gain the ability to cast spells! You unlock 2 1st-level spell slots!",
		},
		{
			name:     "eldritch knight first spells",
			class:    spellslots.ClassEldritchKnight,
			oldLevel: 2,
			newLevel: 3,
			contains: []string{"You gain the ability to cast spells!", "You unlock 2 1st-level spell slots!", "You can learn 2 new cantrips!", "You can learn 3 new spells!"},
		},
		{
			name:     "warlock slot level upgrade",
			class:    spellslots.ClassWarlock,
			oldLevel: 2,
			newLevel: 3,
			contains: []string{"Your spell slots upgrade to 2nd level!"},
		},
		{
			name:     "warlock extra slot",
			class:    spellslots.ClassWarlock,
			oldLevel: 10,
			newLevel: 11,
			contains: []string{"You gain an additional spell slot (now 3 total)!"},
		},
		{
			name:     "sorcerer learns a spell",
			class:    spellslots.ClassSorcerer,
			oldLevel: 1,
			newLevel: 2,
			contains: []string{"You can learn 1 new spell!"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			msg := spellslots.LevelUpMessage(tc.class, tc.oldLevel, tc.newLevel)
			if tc.empty {
				s.Assert().Empty(msg)
				return
			}
			if tc.exact != "" {
				s.Assert().Equal(tc.exact, msg)
				return
			}
			for _, fragment := range tc.contains {
				s.Assert().Contains(msg, fragment)
			}
		})
	}
}

func (s *LevelingTestSuite) TestNeedsSpellSelection() {
	// Wizard level 4: one new cantrip, no known-list spells
	wizard := spellslots.NeedsSpellSelection(spellslots.ClassWizard, 4)
	s.Assert().True(wizard.NeedsSelection)
	s.Assert().Equal(1, wizard.CantripsNeeded)
	s.Assert().Equal(0, wizard.SpellsNeeded)

	// Sorcerer level 3: one new spell, no new cantrips
	sorcerer := spellslots.NeedsSpellSelection(spellslots.ClassSorcerer, 3)
	s.Assert().True(sorcerer.NeedsSelection)
	s.Assert().Equal(1, sorcerer.SpellsNeeded)
	s.Assert().Equal(0, sorcerer.CantripsNeeded)

	// Ranger level 2 unlocks 1st-level spells
	ranger := spellslots.NeedsSpellSelection(spellslots.ClassRanger, 2)
	s.Assert().True(ranger.NeedsSelection)
	s.Assert().Equal(2, ranger.SpellsNeeded)
	s.Assert().Equal(1, ranger.NewSpellLevel)

	fighter := spellslots.NeedsSpellSelection("Fighter", 5)
	s.Assert().False(fighter.NeedsSelection)
	s.Assert().Zero(fighter.CantripsNeeded)
	s.Assert().Zero(fighter.SpellsNeeded)
}
