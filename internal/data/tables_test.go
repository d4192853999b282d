package data_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberfall/campaign-api/internal/data"
)

type RulesTablesTestSuite struct {
	suite.Suite
}

func (s *RulesTablesTestSuite) TestRaceCount() {
	s.Len(data.Races(), 10)
}

func (s *RulesTablesTestSuite) TestRaceLookup() {
	dwarf := data.RaceByName("DWARF")
	s.Require().NotNil(dwarf)
	s.Equal("Dwarf", dwarf.Name)
	s.Equal(25, dwarf.Speed)
	s.Equal(2, dwarf.AbilityBonuses["CON"])

	s.Nil(data.RaceByName("Warforged"))
}

func (s *RulesTablesTestSuite) TestHumanGetsAllAbilityBonuses() {
	human := data.RaceByName("Human")
	s.Require().NotNil(human)
	s.Len(human.AbilityBonuses, 6)
	for _, ability := range []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"} {
		s.Equal(1, human.AbilityBonuses[ability])
	}
}

func (s *RulesTablesTestSuite) TestClassCount() {
	s.Len(data.Classes(), 12)
}

func (s *RulesTablesTestSuite) TestClassLookup() {
	wizard := data.ClassByName("wizard")
	s.Require().NotNil(wizard)
	s.Equal(6, wizard.HitDie)
	s.True(wizard.Spellcasting.Enabled)
	s.Equal("INT", wizard.Spellcasting.Ability)
	s.Equal(data.CasterTypeFull, wizard.Spellcasting.Type)

	barbarian := data.ClassByName("Barbarian")
	s.Require().NotNil(barbarian)
	s.Equal(12, barbarian.HitDie)
	s.False(barbarian.Spellcasting.Enabled)
	s.Equal(data.CasterTypeNone, barbarian.Spellcasting.Type)
}

func (s *RulesTablesTestSuite) TestIsSpellcaster() {
	s.True(data.IsSpellcaster("Warlock"))
	s.True(data.IsSpellcaster("paladin"))
	s.False(data.IsSpellcaster("Fighter"))
	s.False(data.IsSpellcaster("Artificer"))
}

func (s *RulesTablesTestSuite) TestAlignmentCount() {
	s.Len(data.Alignments(), 9)
}

func (s *RulesTablesTestSuite) TestAlignmentLookup() {
	lg := data.AlignmentByCode("lg")
	s.Require().NotNil(lg)
	s.Equal("Lawful Good", lg.Name)

	cn := data.AlignmentByName("chaotic neutral")
	s.Require().NotNil(cn)
	s.Equal("CN", cn.Code)

	s.Nil(data.AlignmentByCode("XX"))
}

func (s *RulesTablesTestSuite) TestAlignmentAxes() {
	s.True(data.IsGoodAligned("NG"))
	s.False(data.IsGoodAligned("NE"))
	s.True(data.IsEvilAligned("ce"))
	s.True(data.IsLawful("LE"))
	s.False(data.IsLawful("N"))
	s.True(data.IsChaotic("CG"))
	s.False(data.IsChaotic("LG"))
}

func (s *RulesTablesTestSuite) TestBackgroundCount() {
	s.Len(data.Backgrounds(), 6)
}

func (s *RulesTablesTestSuite) TestBackgroundSkills() {
	s.True(data.BackgroundGrantsSkill("Acolyte", "Religion"))
	s.True(data.BackgroundGrantsSkill("sage", "arcana"))
	s.False(data.BackgroundGrantsSkill("Soldier", "Stealth"))
	s.False(data.BackgroundGrantsSkill("Hermit", "Medicine"))
}

func (s *RulesTablesTestSuite) TestSkillCount() {
	s.Len(data.Skills(), 18)
}

func (s *RulesTablesTestSuite) TestSkillAbilities() {
	stealth := data.SkillByName("stealth")
	s.Require().NotNil(stealth)
	s.Equal("DEX", stealth.Ability)

	s.Len(data.SkillsByAbility("INT"), 5)
	s.Len(data.SkillsByAbility("wis"), 5)
	s.Len(data.SkillsByAbility("STR"), 1)
	s.Len(data.SkillsByAbility("CON"), 0)
}

func (s *RulesTablesTestSuite) TestClassSkillLists() {
	s.True(data.IsClassSkill("Arcana", "Wizard"))
	s.True(data.IsClassSkill("stealth", "rogue"))
	s.False(data.IsClassSkill("Arcana", "Fighter"))

	// Bards choose from every skill
	bard := data.ClassByName("Bard")
	s.Require().NotNil(bard)
	s.Len(bard.Skills, 18)
}

func (s *RulesTablesTestSuite) TestSkillModifier() {
	s.Equal(2, data.SkillModifier(14, 2, false, false))
	s.Equal(4, data.SkillModifier(14, 2, true, false))
	s.Equal(6, data.SkillModifier(14, 2, true, true))
	s.Equal(-1, data.SkillModifier(8, 2, false, false))
	s.Equal(1, data.SkillModifier(8, 2, true, false))
}

func TestRulesTablesSuite(t *testing.T) {
	suite.Run(t, new(RulesTablesTestSuite))
}
