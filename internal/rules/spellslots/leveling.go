package spellslots

import (
	"fmt"
	"strconv"
	"strings"
)

// PactMagicKey flags a stored slot map as Pact Magic rather than standard
// slots, so downstream refresh logic can tell them apart.
const PactMagicKey = "pact_magic"

// ToDBFormat flattens a slot table entry into the persisted map shape.
// Standard casters map spell level to count, omitting zero levels
// (Wizard 5 becomes {"1": 4, "2": 3, "3": 2}). Pact Magic emits the shared
// slot level plus the pact_magic flag (Warlock 5 becomes {"3": 2, "pact_magic": 1}).
func ToDBFormat(slots Slots) map[string]int {
	if pact, ok := slots.(WarlockSlots); ok {
		return map[string]int{
			strconv.Itoa(pact.SlotLevel): pact.Slots,
			PactMagicKey:                 1,
		}
	}

	standard, ok := slots.(SpellSlots)
	if !ok {
		return nil
	}

	dbSlots := make(map[string]int)
	for spellLevel := 1; spellLevel <= 9; spellLevel++ {
		if count := standard.AtLevel(spellLevel); count > 0 {
			dbSlots[strconv.Itoa(spellLevel)] = count
		}
	}

	return dbSlots
}

// UpdatedSlotsForLevel returns the persisted slot map for a class at a new
// level. Returns nil for non-casters; an empty map means "spellcaster with no
// slots yet" (Paladin at level 1).
func UpdatedSlotsForLevel(class string, newLevel int) map[string]int {
	if !IsSpellcaster(class) {
		return nil
	}

	slots := ForLevel(class, newLevel)
	if slots == nil {
		return nil
	}

	return ToDBFormat(slots)
}

// LevelUpMessage composes the spell slot narration for a level-up, comparing
// the old and new levels slot by slot. Returns "" when there is nothing to
// announce, including for non-spellcasters.
func LevelUpMessage(class string, oldLevel, newLevel int) string {
	if !IsSpellcaster(class) {
		return ""
	}

	oldInfo := Info(class, oldLevel)
	newInfo := Info(class, newLevel)
	if newInfo == nil {
		return ""
	}

	var messages []string

	if newPact, ok := newInfo.Slots.(WarlockSlots); ok {
		var oldPact *WarlockSlots
		if oldInfo != nil {
			if p, ok := oldInfo.Slots.(WarlockSlots); ok {
				oldPact = &p
			}
		}

		switch {
		case oldPact == nil:
			messages = append(messages, fmt.Sprintf("You gain %d spell slot%s of %d%s level (Pact Magic)!",
				newPact.Slots, plural(newPact.Slots), newPact.SlotLevel, ordinalSuffix(newPact.SlotLevel)))
		case newPact.Slots > oldPact.Slots:
			messages = append(messages, fmt.Sprintf("You gain an additional spell slot (now %d total)!", newPact.Slots))
		case newPact.SlotLevel > oldPact.SlotLevel:
			messages = append(messages, fmt.Sprintf("Your spell slots upgrade to %d%s level!",
				newPact.SlotLevel, ordinalSuffix(newPact.SlotLevel)))
		}
	} else {
		newSlots, _ := newInfo.Slots.(SpellSlots)
		var oldSlots SpellSlots
		if oldInfo != nil {
			oldSlots, _ = oldInfo.Slots.(SpellSlots)
		}

		for spellLevel := 1; spellLevel <= 9; spellLevel++ {
			oldCount := oldSlots.AtLevel(spellLevel)
			newCount := newSlots.AtLevel(spellLevel)
			if newCount <= oldCount {
				continue
			}

			if oldCount == 0 {
				messages = append(messages, fmt.Sprintf("You unlock %d %d%s-level spell slot%s!",
					newCount, spellLevel, ordinalSuffix(spellLevel), plural(newCount)))
			} else {
				gained := newCount - oldCount
				messages = append(messages, fmt.Sprintf("You gain %d additional %d%s-level spell slot%s!",
					gained, spellLevel, ordinalSuffix(spellLevel), plural(gained)))
			}
		}
	}

	if newInfo.CantripsLearned > 0 {
		messages = append(messages, fmt.Sprintf("You can learn %d new cantrip%s!",
			newInfo.CantripsLearned, plural(newInfo.CantripsLearned)))
	}

	if newInfo.SpellsLearned > 0 {
		messages = append(messages, fmt.Sprintf("You can learn %d new spell%s!",
			newInfo.SpellsLearned, plural(newInfo.SpellsLearned)))
	}

	firstCast := (oldLevel == 1 && newLevel == 2 && (class == ClassPaladin || class == ClassRanger)) ||
		(oldLevel == 2 && newLevel == 3 && (class == ClassEldritchKnight || class == ClassArcaneTrickster))
	if firstCast {
		messages = append([]string{"You gain the ability to cast spells!"}, messages...)
	}

	return strings.Join(messages, " ")
}

// SpellSelection describes what a character must pick after leveling up
type SpellSelection struct {
	NeedsSelection bool
	CantripsNeeded int
	SpellsNeeded   int
	NewSpellLevel  int
}

// NeedsSpellSelection reports whether leveling into newLevel requires the
// player to choose new cantrips or spells.
func NeedsSpellSelection(class string, newLevel int) SpellSelection {
	info := Info(class, newLevel)
	if info == nil {
		return SpellSelection{}
	}

	return SpellSelection{
		NeedsSelection: info.CantripsLearned > 0 || info.SpellsLearned > 0,
		CantripsNeeded: info.CantripsLearned,
		SpellsNeeded:   info.SpellsLearned,
		NewSpellLevel:  info.NewSpellLevel,
	}
}

func ordinalSuffix(num int) string {
	j := num % 10
	k := num % 100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	}
	return "th"
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
