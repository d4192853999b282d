// Package spellslots implements D&D 5e spell slot progression: the PHB slot
// tables for full, half, and third casters plus the Warlock's Pact Magic,
// with lookups keyed by class name and character level.
//
// Every function here is total: an unrecognized class name or a level outside
// 1-20 yields a nil/zero result, never a panic or an error. Callers can probe
// any class unconditionally.
package spellslots

// Canonical spellcasting class names
const (
	ClassBard            = "Bard"
	ClassCleric          = "Cleric"
	ClassDruid           = "Druid"
	ClassSorcerer        = "Sorcerer"
	ClassWizard          = "Wizard"
	ClassPaladin         = "Paladin"
	ClassRanger          = "Ranger"
	ClassEldritchKnight  = "Eldritch Knight"
	ClassArcaneTrickster = "Arcane Trickster"
	ClassWarlock         = "Warlock"
)

// MinLevel and MaxLevel bound character levels
const (
	MinLevel = 1
	MaxLevel = 20
)

// Slots is the slot table entry for a class at a level. It is either
// SpellSlots (standard casters) or WarlockSlots (Pact Magic).
type Slots interface {
	isSlots()
}

// SpellSlots holds per-spell-level slot counts for standard casters
type SpellSlots struct {
	Level1 int
	Level2 int
	Level3 int
	Level4 int
	Level5 int
	Level6 int
	Level7 int
	Level8 int
	Level9 int
}

func (SpellSlots) isSlots() {}

// AtLevel returns the slot count for a spell level (1-9), 0 otherwise
func (s SpellSlots) AtLevel(spellLevel int) int {
	switch spellLevel {
	case 1:
		return s.Level1
	case 2:
		return s.Level2
	case 3:
		return s.Level3
	case 4:
		return s.Level4
	case 5:
		return s.Level5
	case 6:
		return s.Level6
	case 7:
		return s.Level7
	case 8:
		return s.Level8
	case 9:
		return s.Level9
	}
	return 0
}

// WarlockSlots is the Pact Magic shape: a handful of slots that all share
// one slot level
type WarlockSlots struct {
	Slots     int
	SlotLevel int
}

func (WarlockSlots) isSlots() {}

// SpellcastingInfo aggregates everything a level-up flow needs to know about
// a class at a level. SpellsKnown is populated only for classes that learn a
// fixed spell list; prepared casters (Wizard, Cleric, Druid, Paladin) always
// report 0. NewSpellLevel is 0 except at the level where a strictly higher
// spell level first becomes available.
type SpellcastingInfo struct {
	Slots           Slots
	CantripsKnown   int
	SpellsKnown     int
	SpellsLearned   int
	CantripsLearned int
	NewSpellLevel   int
}

// ForLevel returns the slot table entry for a class at a character level.
// Returns nil for non-spellcasting classes and for levels outside 1-20.
func ForLevel(class string, level int) Slots {
	if level < MinLevel || level > MaxLevel {
		return nil
	}

	switch class {
	case ClassWarlock:
		return warlockSlots[level]
	case ClassBard, ClassCleric, ClassDruid, ClassSorcerer, ClassWizard:
		return fullCasterSlots[level]
	case ClassPaladin, ClassRanger:
		return halfCasterSlots[level]
	case ClassEldritchKnight, ClassArcaneTrickster:
		return thirdCasterSlots[level]
	}

	return nil
}

// NewSpellsLearned returns how many new spells a known-list caster picks up
// at this level versus the previous one. 0 for prepared casters, non-casters,
// and out-of-range levels.
func NewSpellsLearned(class string, level int) int {
	if level < MinLevel || level > MaxLevel {
		return 0
	}

	table, ok := spellsKnown[class]
	if !ok {
		return 0
	}

	current := table[level]
	previous := 0
	if level > 1 {
		previous = table[level-1]
	}

	if current < previous {
		return 0
	}
	return current - previous
}

// NewCantrips returns how many new cantrips are learned at this level versus
// the previous one. 0 for classes without cantrips and out-of-range levels.
func NewCantrips(class string, level int) int {
	if level < MinLevel || level > MaxLevel {
		return 0
	}

	table, ok := cantripsKnown[class]
	if !ok {
		return 0
	}

	current := table[level]
	previous := 0
	if level > 1 {
		previous = table[level-1]
	}

	if current < previous {
		return 0
	}
	return current - previous
}

// SpellLevelUnlocked returns the highest spell level that first becomes
// available at exactly this character level, or 0 if none.
func SpellLevelUnlocked(class string, level int) int {
	if level < MinLevel || level > MaxLevel {
		return 0
	}

	current := ForLevel(class, level)
	if current == nil {
		return 0
	}

	if pact, ok := current.(WarlockSlots); ok {
		if level == 1 {
			return pact.SlotLevel
		}
		previous, ok := ForLevel(class, level-1).(WarlockSlots)
		if !ok {
			return pact.SlotLevel
		}
		if pact.SlotLevel > previous.SlotLevel {
			return pact.SlotLevel
		}
		return 0
	}

	standard := current.(SpellSlots)
	var previous SpellSlots
	if level > 1 {
		previous, _ = ForLevel(class, level-1).(SpellSlots)
	}

	for spellLevel := 9; spellLevel >= 1; spellLevel-- {
		if standard.AtLevel(spellLevel) > 0 && previous.AtLevel(spellLevel) == 0 {
			return spellLevel
		}
	}

	return 0
}

// IsSpellcaster reports whether the class casts spells at any level. Half and
// third casters count even though they have no slots at level 1.
func IsSpellcaster(class string) bool {
	if ForLevel(class, 1) != nil {
		return true
	}
	switch class {
	case ClassPaladin, ClassRanger, ClassEldritchKnight, ClassArcaneTrickster:
		return true
	}
	return false
}

// Info returns the complete spellcasting picture for a class at a level, or
// nil for non-casters and out-of-range levels.
func Info(class string, level int) *SpellcastingInfo {
	if !IsSpellcaster(class) {
		return nil
	}

	slots := ForLevel(class, level)
	if slots == nil {
		return nil
	}

	return &SpellcastingInfo{
		Slots:           slots,
		CantripsKnown:   cantripsKnown[class][level],
		SpellsKnown:     spellsKnown[class][level],
		SpellsLearned:   NewSpellsLearned(class, level),
		CantripsLearned: NewCantrips(class, level),
		NewSpellLevel:   SpellLevelUnlocked(class, level),
	}
}

// Ability returns the spellcasting ability abbreviation for a class
// ("INT", "WIS", or "CHA"), or "" for non-casters.
func Ability(class string) string {
	switch class {
	case ClassBard, ClassSorcerer, ClassPaladin, ClassWarlock:
		return "CHA"
	case ClassCleric, ClassDruid, ClassRanger:
		return "WIS"
	case ClassWizard, ClassEldritchKnight, ClassArcaneTrickster:
		return "INT"
	}
	return ""
}
