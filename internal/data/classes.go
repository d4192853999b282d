package data

import "strings"

// Caster types, matching the spell slot progression groups
const (
	CasterTypeFull = "full"
	CasterTypeHalf = "half"
	CasterTypePact = "pact"
	CasterTypeNone = "none"
)

// Spellcasting describes a class's casting capability. Ability is the
// three-letter ability code (INT, WIS, CHA) and is empty for non-casters.
type Spellcasting struct {
	Enabled bool   `json:"enabled"`
	Ability string `json:"ability,omitempty"`
	Type    string `json:"type"`
}

// Class describes a playable class: hit die, spellcasting capability, and
// the skill list it picks proficiencies from.
type Class struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	HitDie       int          `json:"hitDie"`
	Spellcasting Spellcasting `json:"spellcasting"`
	Skills       []string     `json:"skills"`
	SkillCount   int          `json:"skillCount"`
}

var classes = []Class{
	{
		Name:         "Barbarian",
		Description:  "A fierce warrior of primitive background who can enter a battle rage. Barbarians excel in melee combat and can take tremendous punishment while dishing out devastating attacks.",
		HitDie:       12,
		Spellcasting: Spellcasting{Type: CasterTypeNone},
		Skills:       []string{"Animal Handling", "Athletics", "Intimidation", "Nature", "Perception", "Survival"},
		SkillCount:   2,
	},
	{
		Name:         "Bard",
		Description:  "An inspiring magician whose power echoes the music of creation. Bards are versatile spellcasters and skilled performers who can support allies and debilitate foes.",
		HitDie:       8,
		Spellcasting: Spellcasting{Enabled: true, Ability: "CHA", Type: CasterTypeFull},
		Skills:       []string{"Acrobatics", "Animal Handling", "Arcana", "Athletics", "Deception", "History", "Insight", "Intimidation", "Investigation", "Medicine", "Nature", "Perception", "Performance", "Persuasion", "Religion", "Sleight of Hand", "Stealth", "Survival"},
		SkillCount:   3,
	},
	{
		Name:         "Cleric",
		Description:  "A priestly champion who wields divine magic in service of a higher power. Clerics combine the helpful magic of healing and inspiring their allies with spells that harm and hinder foes.",
		HitDie:       8,
		Spellcasting: Spellcasting{Enabled: true, Ability: "WIS", Type: CasterTypeFull},
		Skills:       []string{"History", "Insight", "Medicine", "Persuasion", "Religion"},
		SkillCount:   2,
	},
	{
		Name:         "Druid",
		Description:  "A priest of the Old Faith, wielding the powers of nature and adopting animal forms. Druids are guardians of the wilderness who can call upon elemental forces and transform into beasts.",
		HitDie:       8,
		Spellcasting: Spellcasting{Enabled: true, Ability: "WIS", Type: CasterTypeFull},
		Skills:       []string{"Arcana", "Animal Handling", "Insight", "Medicine", "Nature", "Perception", "Religion", "Survival"},
		SkillCount:   2,
	},
	{
		Name:         "Fighter",
		Description:  "A master of martial combat, skilled with a variety of weapons and armor. Fighters can be archers, duelists, or heavily armored warriors, and are the most versatile combatants.",
		HitDie:       10,
		Spellcasting: Spellcasting{Type: CasterTypeNone},
		Skills:       []string{"Acrobatics", "Animal Handling", "Athletics", "History", "Insight", "Intimidation", "Perception", "Survival"},
		SkillCount:   2,
	},
	{
		Name:         "Monk",
		Description:  "A master of martial arts, harnessing the power of the body in pursuit of physical and spiritual perfection. Monks are lightning-fast warriors who strike with devastating precision.",
		HitDie:       8,
		Spellcasting: Spellcasting{Type: CasterTypeNone},
		Skills:       []string{"Acrobatics", "Athletics", "History", "Insight", "Religion", "Stealth"},
		SkillCount:   2,
	},
	{
		Name:         "Paladin",
		Description:  "A holy warrior bound to a sacred oath. Paladins combine martial prowess with divine magic, smiting evil and protecting the innocent through strength of arms and conviction.",
		HitDie:       10,
		Spellcasting: Spellcasting{Enabled: true, Ability: "CHA", Type: CasterTypeHalf},
		Skills:       []string{"Athletics", "Insight", "Intimidation", "Medicine", "Persuasion", "Religion"},
		SkillCount:   2,
	},
	{
		Name:         "Ranger",
		Description:  "A warrior who uses martial prowess and nature magic to combat threats on the edges of civilization. Rangers are skilled hunters and trackers who protect borders and hunt down monsters.",
		HitDie:       10,
		Spellcasting: Spellcasting{Enabled: true, Ability: "WIS", Type: CasterTypeHalf},
		Skills:       []string{"Animal Handling", "Athletics", "Insight", "Investigation", "Nature", "Perception", "Stealth", "Survival"},
		SkillCount:   3,
	},
	{
		Name:         "Rogue",
		Description:  "A scoundrel who uses stealth and trickery to overcome obstacles and enemies. Rogues are skilled at finding and exploiting weaknesses, dealing devastating sneak attacks.",
		HitDie:       8,
		Spellcasting: Spellcasting{Type: CasterTypeNone},
		Skills:       []string{"Acrobatics", "Athletics", "Deception", "Insight", "Intimidation", "Investigation", "Perception", "Performance", "Persuasion", "Sleight of Hand", "Stealth"},
		SkillCount:   4,
	},
	{
		Name:         "Sorcerer",
		Description:  "A spellcaster who draws on inherent magic from a gift or bloodline. Sorcerers can manipulate their spells with metamagic, making them uniquely versatile and unpredictable.",
		HitDie:       6,
		Spellcasting: Spellcasting{Enabled: true, Ability: "CHA", Type: CasterTypeFull},
		Skills:       []string{"Arcana", "Deception", "Insight", "Intimidation", "Persuasion", "Religion"},
		SkillCount:   2,
	},
	{
		Name:         "Warlock",
		Description:  "A wielder of magic derived from a bargain with an extraplanar entity. Warlocks gain unique abilities and a small but powerful set of spells that recharge on short rests.",
		HitDie:       8,
		Spellcasting: Spellcasting{Enabled: true, Ability: "CHA", Type: CasterTypePact},
		Skills:       []string{"Arcana", "Deception", "History", "Intimidation", "Investigation", "Nature", "Religion"},
		SkillCount:   2,
	},
	{
		Name:         "Wizard",
		Description:  "A scholarly magic-user capable of manipulating the structures of reality. Wizards are the ultimate masters of arcane magic, with vast spellbooks and unparalleled versatility.",
		HitDie:       6,
		Spellcasting: Spellcasting{Enabled: true, Ability: "INT", Type: CasterTypeFull},
		Skills:       []string{"Arcana", "History", "Insight", "Investigation", "Medicine", "Religion"},
		SkillCount:   2,
	},
}

// Classes returns all playable classes. Callers must not modify the
// returned slice.
func Classes() []Class {
	return classes
}

// ClassByName finds a class by name, case-insensitive. Returns nil when no
// class matches.
func ClassByName(name string) *Class {
	lower := strings.ToLower(name)
	for i := range classes {
		if strings.ToLower(classes[i].Name) == lower {
			return &classes[i]
		}
	}
	return nil
}

// ClassNames returns all class names in definition order
func ClassNames() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	return names
}

// IsSpellcaster reports whether the named class has spellcasting enabled.
// Unknown classes report false.
func IsSpellcaster(className string) bool {
	c := ClassByName(className)
	return c != nil && c.Spellcasting.Enabled
}
