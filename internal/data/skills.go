package data

import "strings"

// Skill describes one of the 18 skills and the ability score it keys off
type Skill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ability     string   `json:"ability"`
	Examples    []string `json:"examples"`
}

var skills = []Skill{
	{
		Name:        "Acrobatics",
		Description: "Your Dexterity (Acrobatics) check covers your attempt to stay on your feet in a tricky situation, such as when you're trying to run across a sheet of ice, balance on a tightrope, or stay upright on a rocking ship's deck.",
		Ability:     "DEX",
		Examples:    []string{"Staying balanced on a narrow ledge", "Performing flips and tumbles", "Escaping from bonds or grapples", "Landing safely after a fall"},
	},
	{
		Name:        "Animal Handling",
		Description: "When there is any question whether you can calm down a domesticated animal, keep a mount from getting spooked, or intuit an animal's intentions, the DM might call for a Wisdom (Animal Handling) check.",
		Ability:     "WIS",
		Examples:    []string{"Calming a frightened horse", "Sensing an animal's mood", "Training an animal to perform tricks", "Controlling a mount in combat"},
	},
	{
		Name:        "Arcana",
		Description: "Your Intelligence (Arcana) check measures your ability to recall lore about spells, magic items, eldritch symbols, magical traditions, the planes of existence, and the inhabitants of those planes.",
		Ability:     "INT",
		Examples:    []string{"Identifying a spell being cast", "Recognizing magical symbols or runes", "Recalling lore about magical creatures", "Understanding planar phenomena"},
	},
	{
		Name:        "Athletics",
		Description: "Your Strength (Athletics) check covers difficult situations you encounter while climbing, jumping, or swimming.",
		Ability:     "STR",
		Examples:    []string{"Climbing a cliff or wall", "Swimming across a raging river", "Jumping across a chasm", "Grappling or shoving an opponent"},
	},
	{
		Name:        "Deception",
		Description: "Your Charisma (Deception) check determines whether you can convincingly hide the truth, either verbally or through your actions.",
		Ability:     "CHA",
		Examples:    []string{"Telling a convincing lie", "Disguising yourself", "Bluffing in a card game", "Maintaining a false identity"},
	},
	{
		Name:        "History",
		Description: "Your Intelligence (History) check measures your ability to recall lore about historical events, legendary people, ancient kingdoms, past disputes, recent wars, and lost civilizations.",
		Ability:     "INT",
		Examples:    []string{"Recalling information about past events", "Identifying historical artifacts", "Knowing legends and lore", "Understanding cultural traditions"},
	},
	{
		Name:        "Insight",
		Description: "Your Wisdom (Insight) check decides whether you can determine the true intentions of a creature, such as when searching out a lie or predicting someone's next move.",
		Ability:     "WIS",
		Examples:    []string{"Detecting a lie", "Reading body language", "Sensing someone's true mood", "Predicting another's intentions"},
	},
	{
		Name:        "Intimidation",
		Description: "When you attempt to influence someone through overt threats, hostile actions, and physical violence, the DM might ask you to make a Charisma (Intimidation) check.",
		Ability:     "CHA",
		Examples:    []string{"Threatening information out of a prisoner", "Using menacing presence in negotiation", "Frightening an enemy into surrender", "Displaying strength to cow opponents"},
	},
	{
		Name:        "Investigation",
		Description: "When you look around for clues and make deductions based on those clues, you make an Intelligence (Investigation) check.",
		Ability:     "INT",
		Examples:    []string{"Searching a room for hidden items", "Deducing the location of a hidden object", "Following complex clues", "Determining how a mechanism works"},
	},
	{
		Name:        "Medicine",
		Description: "A Wisdom (Medicine) check lets you try to stabilize a dying companion or diagnose an illness.",
		Ability:     "WIS",
		Examples:    []string{"Stabilizing a dying creature", "Diagnosing a disease", "Treating poison", "Determining cause of death"},
	},
	{
		Name:        "Nature",
		Description: "Your Intelligence (Nature) check measures your ability to recall lore about terrain, plants and animals, the weather, and natural cycles.",
		Ability:     "INT",
		Examples:    []string{"Identifying plants and their properties", "Predicting weather patterns", "Recognizing animal tracks", "Understanding natural phenomena"},
	},
	{
		Name:        "Perception",
		Description: "Your Wisdom (Perception) check lets you spot, hear, or otherwise detect the presence of something. It measures your general awareness of your surroundings and the keenness of your senses.",
		Ability:     "WIS",
		Examples:    []string{"Spotting a hidden creature", "Hearing a distant sound", "Noticing something unusual", "Keeping watch during a rest"},
	},
	{
		Name:        "Performance",
		Description: "Your Charisma (Performance) check determines how well you can delight an audience with music, dance, acting, storytelling, or some other form of entertainment.",
		Ability:     "CHA",
		Examples:    []string{"Playing a musical instrument", "Acting in a play", "Telling an engaging story", "Performing a dance"},
	},
	{
		Name:        "Persuasion",
		Description: "When you attempt to influence someone or a group of people with tact, social graces, or good nature, the DM might ask you to make a Charisma (Persuasion) check.",
		Ability:     "CHA",
		Examples:    []string{"Convincing a guard to let you pass", "Negotiating a trade deal", "Inspiring a crowd", "Settling a dispute diplomatically"},
	},
	{
		Name:        "Religion",
		Description: "Your Intelligence (Religion) check measures your ability to recall lore about deities, rites and prayers, religious hierarchies, holy symbols, and the practices of secret cults.",
		Ability:     "INT",
		Examples:    []string{"Identifying religious symbols", "Recalling information about deities", "Performing religious rituals", "Understanding religious practices"},
	},
	{
		Name:        "Sleight of Hand",
		Description: "Whenever you attempt an act of legerdemain or manual trickery, such as planting something on someone else or concealing an object on your person, make a Dexterity (Sleight of Hand) check.",
		Ability:     "DEX",
		Examples:    []string{"Pickpocketing", "Concealing a small object", "Performing magic tricks", "Planting evidence"},
	},
	{
		Name:        "Stealth",
		Description: "Make a Dexterity (Stealth) check when you attempt to conceal yourself from enemies, slink past guards, slip away without being noticed, or sneak up on someone without being seen or heard.",
		Ability:     "DEX",
		Examples:    []string{"Hiding from enemies", "Moving silently", "Sneaking past guards", "Following someone without being noticed"},
	},
	{
		Name:        "Survival",
		Description: "The DM might ask you to make a Wisdom (Survival) check to follow tracks, hunt wild game, guide your group through frozen wastelands, identify signs that owlbears live nearby, predict the weather, or avoid quicksand and other natural hazards.",
		Ability:     "WIS",
		Examples:    []string{"Tracking creatures", "Finding food and water", "Navigating wilderness", "Predicting weather"},
	},
}

// Skills returns all 18 skills. Callers must not modify the returned slice.
func Skills() []Skill {
	return skills
}

// SkillByName finds a skill by name, case-insensitive. Returns nil when no
// skill matches.
func SkillByName(name string) *Skill {
	lower := strings.ToLower(name)
	for i := range skills {
		if strings.ToLower(skills[i].Name) == lower {
			return &skills[i]
		}
	}
	return nil
}

// SkillNames returns all skill names in definition order
func SkillNames() []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// SkillsByAbility returns all skills keyed to the given three-letter
// ability code.
func SkillsByAbility(ability string) []Skill {
	upper := strings.ToUpper(ability)
	var result []Skill
	for _, s := range skills {
		if s.Ability == upper {
			result = append(result, s)
		}
	}
	return result
}

// IsClassSkill reports whether the skill is on the named class's
// proficiency list. Unknown classes report false.
func IsClassSkill(skillName, className string) bool {
	c := ClassByName(className)
	if c == nil {
		return false
	}
	lower := strings.ToLower(skillName)
	for _, skill := range c.Skills {
		if strings.ToLower(skill) == lower {
			return true
		}
	}
	return false
}

// IsBackgroundSkill reports whether the skill is granted by the named
// background. Unknown backgrounds report false.
func IsBackgroundSkill(skillName, backgroundName string) bool {
	return BackgroundGrantsSkill(backgroundName, skillName)
}

// SkillModifier computes the d20 modifier for a skill check. Expertise
// doubles the proficiency bonus and implies proficiency.
func SkillModifier(abilityScore, proficiencyBonus int, proficient, expertise bool) int {
	abilityModifier := floorDiv(abilityScore-10, 2)

	switch {
	case expertise:
		return abilityModifier + proficiencyBonus*2
	case proficient:
		return abilityModifier + proficiencyBonus
	default:
		return abilityModifier
	}
}

// floorDiv rounds toward negative infinity, so ability scores below 10
// produce negative modifiers (8 gives -1, not 0).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
