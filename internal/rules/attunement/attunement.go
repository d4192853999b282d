// Package attunement implements the D&D 5e attunement rules.
//
// Rules:
//   - Characters can attune to a maximum of 3 magic items simultaneously
//   - Attunement requires a short rest (1 hour) spent focusing on the item
//   - Breaking attunement is instant but requires the character's consent
//   - Attuning a 4th item requires breaking attunement to another first
//   - Some items require attunement by a specific class or alignment
//
// Records are immutable: every mutation returns a new Record and leaves the
// input untouched. Callers thread the returned value forward and own
// persistence.
package attunement

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/emberfall/campaign-api/internal/data"
	"github.com/emberfall/campaign-api/internal/errors"
)

// DefaultMaxSlots is the D&D 5e standard attunement limit
const DefaultMaxSlots = 3

// AttunementTimeHours is the short rest required to attune (informational)
const AttunementTimeHours = 1

// AttunedItem records one active attunement
type AttunedItem struct {
	ItemName  string    `json:"itemName"`
	AttunedAt time.Time `json:"attunedAt"`
}

// Record tracks a character's active attunements. Treat as immutable; use
// the package functions to derive updated records.
type Record struct {
	CharacterID  string        `json:"characterId"`
	AttunedItems []AttunedItem `json:"attunedItems"`
	MaxSlots     int           `json:"maxSlots"`
}

// NewRecord creates an empty attunement record. A maxSlots of zero or less
// falls back to DefaultMaxSlots.
func NewRecord(characterID string, maxSlots int) Record {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}
	return Record{
		CharacterID:  characterID,
		AttunedItems: []AttunedItem{},
		MaxSlots:     maxSlots,
	}
}

// HasAvailableSlot reports whether the record has a free attunement slot
func HasAvailableSlot(rec Record) bool {
	return len(rec.AttunedItems) < rec.MaxSlots
}

// AvailableSlots returns the number of free slots, never negative
func AvailableSlots(rec Record) int {
	available := rec.MaxSlots - len(rec.AttunedItems)
	if available < 0 {
		return 0
	}
	return available
}

// IsAttunedTo reports whether the record holds an attunement to itemName
func IsAttunedTo(rec Record, itemName string) bool {
	for _, item := range rec.AttunedItems {
		if item.ItemName == itemName {
			return true
		}
	}
	return false
}

// AttunedItemNames returns the attuned item names in attunement order
func AttunedItemNames(rec Record) []string {
	names := make([]string, 0, len(rec.AttunedItems))
	for _, item := range rec.AttunedItems {
		names = append(names, item.ItemName)
	}
	return names
}

// Attune returns a new record with the item attuned at now. Fails when the
// item does not require attunement, is already attuned, or no slot is free.
func Attune(rec Record, item *data.MagicItem, now time.Time) (Record, error) {
	if !item.RequiresAttunement {
		return Record{}, errors.InvalidArgumentf("%s does not require attunement", item.Name)
	}

	if IsAttunedTo(rec, item.Name) {
		return Record{}, errors.AlreadyExistsf("Already attuned to %s", item.Name)
	}

	if !HasAvailableSlot(rec) {
		return Record{}, errors.ResourceExhaustedf(
			"No available attunement slots (%d/%d). Break attunement to another item first.",
			len(rec.AttunedItems), rec.MaxSlots)
	}

	items := make([]AttunedItem, len(rec.AttunedItems), len(rec.AttunedItems)+1)
	copy(items, rec.AttunedItems)
	items = append(items, AttunedItem{ItemName: item.Name, AttunedAt: now})

	rec.AttunedItems = items
	return rec, nil
}

// Break returns a new record with the named attunement removed, preserving
// the order of the remainder. Fails if the item is not attuned.
func Break(rec Record, itemName string) (Record, error) {
	if !IsAttunedTo(rec, itemName) {
		return Record{}, errors.NotFoundf("Not attuned to %s", itemName)
	}

	items := make([]AttunedItem, 0, len(rec.AttunedItems)-1)
	for _, item := range rec.AttunedItems {
		if item.ItemName != itemName {
			items = append(items, item)
		}
	}

	rec.AttunedItems = items
	return rec, nil
}

// Replace breaks attunement to removeItemName and attunes newItem in one
// step, freeing a slot first so a full record can swap items.
func Replace(rec Record, removeItemName string, newItem *data.MagicItem, now time.Time) (Record, error) {
	afterBreak, err := Break(rec, removeItemName)
	if err != nil {
		return Record{}, err
	}
	return Attune(afterBreak, newItem, now)
}

// Eligibility is the result of a CanAttune check
type Eligibility struct {
	CanAttune bool
	Reason    string
}

var classRequirementPattern = regexp.MustCompile(`by a ([\w\s,]+?)[.)]`)
var classListSeparator = regexp.MustCompile(`,|\sor\s`)

// CanAttune checks whether a character may attune to an item, parsing class
// and alignment restrictions out of the item's description text (items state
// them as prose, e.g. "requires attunement by a sorcerer, warlock, or
// wizard"). The race parameter is accepted for future use; no race
// restrictions are currently enforced. Items whose text matches no known
// restriction phrasing are allowed by default.
func CanAttune(item *data.MagicItem, characterClass, characterRace, characterAlignment string) Eligibility {
	if !item.RequiresAttunement {
		return Eligibility{CanAttune: true}
	}

	desc := strings.ToLower(item.Description)

	if characterClass != "" {
		if match := classRequirementPattern.FindStringSubmatch(desc); match != nil {
			requirements := match[1]
			classLower := strings.ToLower(characterClass)

			allowed := false
			for _, reqClass := range classListSeparator.Split(requirements, -1) {
				reqClass = strings.TrimSpace(reqClass)
				if reqClass == "" {
					continue
				}
				if reqClass == classLower || strings.Contains(classLower, reqClass) {
					allowed = true
					break
				}
			}

			if !allowed {
				return Eligibility{
					CanAttune: false,
					Reason:    fmt.Sprintf("Requires attunement by a %s", requirements),
				}
			}
		}
	}

	if characterAlignment != "" && strings.Contains(desc, "alignment") {
		alignmentLower := strings.ToLower(characterAlignment)
		for _, alignment := range []string{"good", "evil", "lawful", "chaotic", "neutral"} {
			if strings.Contains(desc, alignment+" creature") || strings.Contains(desc, alignment+" alignment") {
				if !strings.Contains(alignmentLower, alignment) {
					return Eligibility{
						CanAttune: false,
						Reason:    fmt.Sprintf("Requires %s alignment", alignment),
					}
				}
			}
		}
	}

	return Eligibility{CanAttune: true}
}

// Summary renders the record for display, with item age relative to now
func Summary(rec Record, now time.Time) string {
	used := len(rec.AttunedItems)
	available := rec.MaxSlots - used

	lines := []string{
		fmt.Sprintf("Attunement Slots: %d/%d used, %d available", used, rec.MaxSlots, available),
		"",
	}

	if used > 0 {
		lines = append(lines, "Attuned Items:")
		for i, item := range rec.AttunedItems {
			daysSince := int(now.Sub(item.AttunedAt).Hours() / 24)
			lines = append(lines, fmt.Sprintf("  %d. %s (%dd ago)", i+1, item.ItemName, daysSince))
		}
	} else {
		lines = append(lines, "No attuned items")
	}

	return strings.Join(lines, "\n")
}
