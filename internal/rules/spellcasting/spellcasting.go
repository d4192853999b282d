// Package spellcasting implements the D&D 5e casting math: save DCs,
// attack bonuses, proficiency, concentration checks, and the dice mechanics
// around them.
package spellcasting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/emberfall/campaign-api/internal/errors"
	"github.com/emberfall/campaign-api/internal/rules/spellslots"
)

// AbilityScores holds a character's six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// AbilityModifier converts an ability score to its modifier, rounding
// toward negative infinity (a score of 8 gives -1).
func AbilityModifier(score int) int {
	n := score - 10
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}

// ProficiencyBonus returns the proficiency bonus for a character level
func ProficiencyBonus(level int) int {
	switch {
	case level >= 17:
		return 6
	case level >= 13:
		return 5
	case level >= 9:
		return 4
	case level >= 5:
		return 3
	default:
		return 2
	}
}

// SpellSaveDC is 8 + proficiency bonus + spellcasting ability modifier
func SpellSaveDC(proficiencyBonus, abilityModifier int) int {
	return 8 + proficiencyBonus + abilityModifier
}

// SpellAttackBonus is proficiency bonus + spellcasting ability modifier
func SpellAttackBonus(proficiencyBonus, abilityModifier int) int {
	return proficiencyBonus + abilityModifier
}

// MaxSpellLevel returns the highest spell level the class has slots for at
// the given character level. Non-casters and invalid levels return 0.
func MaxSpellLevel(class string, level int) int {
	slots := spellslots.ForLevel(class, level)
	switch s := slots.(type) {
	case spellslots.WarlockSlots:
		return s.SlotLevel
	case spellslots.SpellSlots:
		for spellLevel := 9; spellLevel >= 1; spellLevel-- {
			if s.AtLevel(spellLevel) > 0 {
				return spellLevel
			}
		}
	}
	return 0
}

// Stats bundles a character's derived spellcasting numbers
type Stats struct {
	Ability          string `json:"ability"`
	AbilityModifier  int    `json:"abilityModifier"`
	SpellSaveDC      int    `json:"spellSaveDc"`
	SpellAttackBonus int    `json:"spellAttackBonus"`
	ProficiencyBonus int    `json:"proficiencyBonus"`
	MaxSpellLevel    int    `json:"maxSpellLevel"`
}

// ComputeStats derives all spellcasting numbers for a class and level.
// Unknown classes fall back to Intelligence as the casting ability.
func ComputeStats(class string, level int, scores AbilityScores) Stats {
	ability := spellslots.Ability(class)
	if ability == "" {
		ability = "INT"
	}

	var score int
	switch ability {
	case "INT":
		score = scores.Intelligence
	case "WIS":
		score = scores.Wisdom
	case "CHA":
		score = scores.Charisma
	}

	modifier := AbilityModifier(score)
	prof := ProficiencyBonus(level)

	return Stats{
		Ability:          ability,
		AbilityModifier:  modifier,
		SpellSaveDC:      SpellSaveDC(prof, modifier),
		SpellAttackBonus: SpellAttackBonus(prof, modifier),
		ProficiencyBonus: prof,
		MaxSpellLevel:    MaxSpellLevel(class, level),
	}
}

// KnownSpellsCount returns how many spells the class knows at the given
// level. Prepared casters (cleric, druid, paladin) choose from their whole
// list instead, reported via the prepared flag.
func KnownSpellsCount(class string, level int) (count int, prepared bool) {
	if level < 1 {
		return 0, false
	}
	if level > 20 {
		level = 20
	}

	switch strings.ToLower(class) {
	case "cleric", "druid", "paladin":
		return 0, true
	case "wizard":
		// spellbook: 6 at level 1, +2 per level after
		return 6 + (level-1)*2, false
	case "bard":
		table := []int{0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 13, 14, 14, 15, 15, 15, 15, 15, 15}
		return table[level], false
	case "sorcerer":
		table := []int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 13, 14, 14, 15, 15, 15, 15}
		return table[level], false
	case "warlock":
		table := []int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15}
		return table[level], false
	case "ranger":
		table := []int{0, 0, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 11}
		return table[level], false
	}
	return 0, false
}

// SaveResult is the outcome of a saving throw
type SaveResult struct {
	Success bool `json:"success"`
	Roll    int  `json:"roll"`
	Total   int  `json:"total"`
}

// RollSavingThrow rolls a d20 save against a spell save DC
func RollSavingThrow(targetModifier, spellSaveDC int) (SaveResult, error) {
	roll, err := dice.NewRoll(1, 20)
	if err != nil {
		return SaveResult{}, errors.Wrap(err, "failed to roll saving throw")
	}

	d20 := roll.GetValue()
	total := d20 + targetModifier
	return SaveResult{
		Success: total >= spellSaveDC,
		Roll:    d20,
		Total:   total,
	}, nil
}

// AttackResult is the outcome of a spell attack roll
type AttackResult struct {
	Hit      bool `json:"hit"`
	Critical bool `json:"critical"`
	Roll     int  `json:"roll"`
	Total    int  `json:"total"`
}

// RollSpellAttack rolls a d20 spell attack against a target AC. A natural
// 20 always hits and a natural 1 always misses.
func RollSpellAttack(attackBonus, targetAC int) (AttackResult, error) {
	roll, err := dice.NewRoll(1, 20)
	if err != nil {
		return AttackResult{}, errors.Wrap(err, "failed to roll spell attack")
	}

	d20 := roll.GetValue()
	total := d20 + attackBonus

	switch d20 {
	case 20:
		return AttackResult{Hit: true, Critical: true, Roll: d20, Total: total}, nil
	case 1:
		return AttackResult{Hit: false, Roll: d20, Total: total}, nil
	}

	return AttackResult{Hit: total >= targetAC, Roll: d20, Total: total}, nil
}

var damageNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// RollDamage rolls damage notation like "2d6" or "1d8+3". The result never
// goes below zero.
func RollDamage(notation string) (int, error) {
	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return 0, errors.InvalidArgumentf("invalid damage notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	if count <= 0 || size <= 0 {
		return 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", notation)
	}

	total := roll.GetValue() + modifier
	if total < 0 {
		total = 0
	}
	return total, nil
}

// ConcentrationResult is the outcome of a concentration check
type ConcentrationResult struct {
	Success bool `json:"success"`
	Roll    int  `json:"roll"`
	Total   int  `json:"total"`
	DC      int  `json:"dc"`
}

// RollConcentrationCheck rolls the Constitution save a concentrating caster
// makes after taking damage. The DC is half the damage taken, minimum 10.
func RollConcentrationCheck(constitutionModifier, damageTaken int) (ConcentrationResult, error) {
	dc := damageTaken / 2
	if dc < 10 {
		dc = 10
	}

	roll, err := dice.NewRoll(1, 20)
	if err != nil {
		return ConcentrationResult{}, errors.Wrap(err, "failed to roll concentration check")
	}

	d20 := roll.GetValue()
	total := d20 + constitutionModifier
	return ConcentrationResult{
		Success: total >= dc,
		Roll:    d20,
		Total:   total,
		DC:      dc,
	}, nil
}

// UpcastDamage scales damage notation when a spell is cast with a higher
// level slot, adding dicePerLevel dice per slot level above the spell's
// base level. Notation that doesn't parse is returned unchanged.
func UpcastDamage(baseDamage string, spellLevel, castAtLevel, dicePerLevel int) string {
	levelDifference := castAtLevel - spellLevel
	if levelDifference <= 0 {
		return baseDamage
	}

	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(baseDamage)))
	if matches == nil {
		return baseDamage
	}

	baseDice, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseDamage
	}

	newCount := baseDice + levelDifference*dicePerLevel
	return strconv.Itoa(newCount) + "d" + matches[2] + matches[3]
}
