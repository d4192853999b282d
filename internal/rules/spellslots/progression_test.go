package spellslots_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/rules/spellslots"
)

type ProgressionTestSuite struct {
	suite.Suite
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) TestFullCasterProgression() {
	fullCasters := []string{
		spellslots.ClassBard,
		spellslots.ClassCleric,
		spellslots.ClassDruid,
		spellslots.ClassSorcerer,
		spellslots.ClassWizard,
	}

	for _, class := range fullCasters {
		s.Run(class, func() {
			level1 := s.standardSlots(class, 1)
			s.Assert().Equal(2, level1.Level1)
			s.Assert().Equal(0, level1.Level2)

			level3 := s.standardSlots(class, 3)
			s.Assert().Equal(4, level3.Level1)
			s.Assert().Equal(2, level3.Level2)
			s.Assert().Equal(0, level3.Level3)

			level20 := s.standardSlots(class, 20)
			s.Assert().Equal(4, level20.Level1)
			s.Assert().Equal(3, level20.Level5)
			s.Assert().Equal(1, level20.Level9)
		})
	}
}

func (s *ProgressionTestSuite) TestHalfCasterProgression() {
	for _, class := range []string{spellslots.ClassPaladin, spellslots.ClassRanger} {
		s.Run(class, func() {
			s.Assert().Equal(0, s.standardSlots(class, 1).Level1)
			s.Assert().Equal(2, s.standardSlots(class, 2).Level1)

			level20 := s.standardSlots(class, 20)
			s.Assert().Equal(2, level20.Level5)
			s.Assert().Equal(0, level20.Level6)
		})
	}
}

func (s *ProgressionTestSuite) TestThirdCasterProgression() {
	for _, class := range []string{spellslots.ClassEldritchKnight, spellslots.ClassArcaneTrickster} {
		s.Run(class, func() {
			s.Assert().Equal(0, s.standardSlots(class, 1).Level1)
			s.Assert().Equal(0, s.standardSlots(class, 2).Level1)
			s.Assert().Equal(2, s.standardSlots(class, 3).Level1)

			level20 := s.standardSlots(class, 20)
			s.Assert().Equal(1, level20.Level4)
			s.Assert().Equal(0, level20.Level5)
		})
	}
}

func (s *ProgressionTestSuite) TestWarlockPactMagic() {
	testCases := []struct {
		level     int
		slots     int
		slotLevel int
	}{
		{level: 1, slots: 1, slotLevel: 1},
		{level: 2, slots: 2, slotLevel: 1},
		{level: 3, slots: 2, slotLevel: 2},
		{level: 11, slots: 3, slotLevel: 5},
		{level: 17, slots: 4, slotLevel: 5},
		{level: 20, slots: 4, slotLevel: 5},
	}

	for _, tc := range testCases {
		slots := spellslots.ForLevel(spellslots.ClassWarlock, tc.level)
		pact, ok := slots.(spellslots.WarlockSlots)
		s.Require().True(ok, "warlock level %d should use pact magic", tc.level)
		s.Assert().Equal(tc.slots, pact.Slots)
		s.Assert().Equal(tc.slotLevel, pact.SlotLevel)
	}
}

func (s *ProgressionTestSuite) TestNonCastersAndInvalidLevels() {
	s.Assert().Nil(spellslots.ForLevel("Fighter", 5))
	s.Assert().Nil(spellslots.ForLevel("Barbarian", 10))
	s.Assert().Nil(spellslots.ForLevel(spellslots.ClassWizard, 0))
	s.Assert().Nil(spellslots.ForLevel(spellslots.ClassWizard, 21))
	s.Assert().Nil(spellslots.ForLevel(spellslots.ClassWizard, -3))
}

func (s *ProgressionTestSuite) TestIsSpellcaster() {
	s.Assert().True(spellslots.IsSpellcaster(spellslots.ClassWizard))
	s.Assert().True(spellslots.IsSpellcaster(spellslots.ClassPaladin))
	s.Assert().True(spellslots.IsSpellcaster(spellslots.ClassEldritchKnight))
	s.Assert().True(spellslots.IsSpellcaster(spellslots.ClassWarlock))
	s.Assert().False(spellslots.IsSpellcaster("Fighter"))
	s.Assert().False(spellslots.IsSpellcaster("Monk"))
	s.Assert().False(spellslots.IsSpellcaster(""))
}

func (s *ProgressionTestSuite) TestSpellLevelUnlocked() {
	testCases := []struct {
		name     string
		class    string
		level    int
		expected int
	}{
		{name: "wizard first slots", class: spellslots.ClassWizard, level: 1, expected: 1},
		{name: "wizard no new level at 2", class: spellslots.ClassWizard, level: 2, expected: 0},
		{name: "wizard unlocks 2nd at 3", class: spellslots.ClassWizard, level: 3, expected: 2},
		{name: "wizard unlocks 9th at 17", class: spellslots.ClassWizard, level: 17, expected: 9},
		{name: "paladin nothing at 1", class: spellslots.ClassPaladin, level: 1, expected: 0},
		{name: "paladin unlocks 1st at 2", class: spellslots.ClassPaladin, level: 2, expected: 1},
		{name: "warlock upgrade at 3", class: spellslots.ClassWarlock, level: 3, expected: 2},
		{name: "warlock no upgrade at 4", class: spellslots.ClassWarlock, level: 4, expected: 0},
		{name: "non-caster", class: "Fighter", level: 5, expected: 0},
		{name: "invalid level", class: spellslots.ClassWizard, level: 25, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, spellslots.SpellLevelUnlocked(tc.class, tc.level))
		})
	}
}

func (s *ProgressionTestSuite) TestNewSpellsAndCantrips() {
	// Sorcerer knows 2 spells at 1, 3 at 2
	s.Assert().Equal(2, spellslots.NewSpellsLearned(spellslots.ClassSorcerer, 1))
	s.Assert().Equal(1, spellslots.NewSpellsLearned(spellslots.ClassSorcerer, 2))

	// Wizards prepare spells, never "learn" from a known list
	s.Assert().Equal(0, spellslots.NewSpellsLearned(spellslots.ClassWizard, 2))

	// Wizard cantrips go 3 -> 4 at level 4
	s.Assert().Equal(3, spellslots.NewCantrips(spellslots.ClassWizard, 1))
	s.Assert().Equal(1, spellslots.NewCantrips(spellslots.ClassWizard, 4))
	s.Assert().Equal(0, spellslots.NewCantrips(spellslots.ClassWizard, 5))

	// Paladins get no cantrips
	s.Assert().Equal(0, spellslots.NewCantrips(spellslots.ClassPaladin, 2))

	// Total functions: invalid input returns 0
	s.Assert().Equal(0, spellslots.NewSpellsLearned("Fighter", 5))
	s.Assert().Equal(0, spellslots.NewSpellsLearned(spellslots.ClassBard, 0))
	s.Assert().Equal(0, spellslots.NewCantrips(spellslots.ClassBard, 21))
}

func (s *ProgressionTestSuite) TestInfoPopulatesKnownCastersOnly() {
	bard := spellslots.Info(spellslots.ClassBard, 1)
	s.Require().NotNil(bard)
	s.Assert().Equal(4, bard.SpellsKnown)
	s.Assert().Equal(2, bard.CantripsKnown)

	wizard := spellslots.Info(spellslots.ClassWizard, 5)
	s.Require().NotNil(wizard)
	s.Assert().Equal(0, wizard.SpellsKnown, "prepared casters never report known spells")
	s.Assert().Equal(4, wizard.CantripsKnown)

	cleric := spellslots.Info(spellslots.ClassCleric, 10)
	s.Require().NotNil(cleric)
	s.Assert().Equal(0, cleric.SpellsKnown)

	s.Assert().Nil(spellslots.Info("Fighter", 5))
	s.Assert().Nil(spellslots.Info(spellslots.ClassWizard, 0))
}

func (s *ProgressionTestSuite) TestAbility() {
	testCases := []struct {
		class    string
		expected string
	}{
		{spellslots.ClassBard, "CHA"},
		{spellslots.ClassSorcerer, "CHA"},
		{spellslots.ClassPaladin, "CHA"},
		{spellslots.ClassWarlock, "CHA"},
		{spellslots.ClassCleric, "WIS"},
		{spellslots.ClassDruid, "WIS"},
		{spellslots.ClassRanger, "WIS"},
		{spellslots.ClassWizard, "INT"},
		{spellslots.ClassEldritchKnight, "INT"},
		{spellslots.ClassArcaneTrickster, "INT"},
		{"Fighter", ""},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, spellslots.Ability(tc.class), tc.class)
	}
}

func (s *ProgressionTestSuite) standardSlots(class string, level int) spellslots.SpellSlots {
	slots := spellslots.ForLevel(class, level)
	s.Require().NotNil(slots, "%s level %d", class, level)
	standard, ok := slots.(spellslots.SpellSlots)
	s.Require().True(ok, "%s should use standard slots", class)
	return standard
}
