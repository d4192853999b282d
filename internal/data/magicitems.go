// Package data holds the static D&D 5e rules tables: magic items, races,
// classes, alignments, backgrounds, and skills, with lookup helpers. All
// tables are immutable reference data bundled with the binary.
package data

import (
	"math/rand"
	"sort"
	"strings"
)

// Rarity classifies magic items
type Rarity string

// Magic item rarities
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "very-rare"
	RarityLegendary Rarity = "legendary"
	RarityArtifact  Rarity = "artifact"
)

// ItemProperties holds the mechanical numbers an item carries, when any
type ItemProperties struct {
	Bonus   int      `json:"bonus,omitempty"`
	Charges int      `json:"charges,omitempty"`
	Damage  string   `json:"damage,omitempty"`
	AC      int      `json:"ac,omitempty"`
	Effects []string `json:"effects,omitempty"`
}

// MagicItem is one entry of the magic item database. Attunement
// restrictions (class, alignment) are stated in the description prose, the
// way the SRD phrases them; the attunement rules parse them from there.
type MagicItem struct {
	Name               string          `json:"name"`
	Rarity             Rarity          `json:"rarity"`
	Type               string          `json:"type"`
	RequiresAttunement bool            `json:"requiresAttunement"`
	Description        string          `json:"description"`
	Properties         *ItemProperties `json:"properties,omitempty"`
}

var magicItems = buildMagicItems()

func buildMagicItems() []MagicItem {
	var items []MagicItem
	items = append(items, commonItems...)
	items = append(items, uncommonItems...)
	items = append(items, rareItems...)
	items = append(items, veryRareItems...)
	items = append(items, legendaryItems...)
	items = append(items, artifactItems...)
	return items
}

// MagicItems returns the full item database. Callers must not modify the
// returned slice.
func MagicItems() []MagicItem {
	return magicItems
}

// MagicItemsByRarity returns all items of the given rarity
func MagicItemsByRarity(rarity Rarity) []MagicItem {
	var result []MagicItem
	for _, item := range magicItems {
		if item.Rarity == rarity {
			result = append(result, item)
		}
	}
	return result
}

// MagicItemsByType returns all items of the given type
func MagicItemsByType(itemType string) []MagicItem {
	var result []MagicItem
	for _, item := range magicItems {
		if item.Type == itemType {
			result = append(result, item)
		}
	}
	return result
}

// MagicItemByName finds an item by name, case-insensitive. Returns nil when
// no item matches.
func MagicItemByName(name string) *MagicItem {
	lower := strings.ToLower(name)
	for i := range magicItems {
		if strings.ToLower(magicItems[i].Name) == lower {
			return &magicItems[i]
		}
	}
	return nil
}

// AttunementItems returns all items that require attunement
func AttunementItems() []MagicItem {
	var result []MagicItem
	for _, item := range magicItems {
		if item.RequiresAttunement {
			result = append(result, item)
		}
	}
	return result
}

// RandomMagicItem picks one random item, optionally restricted to a rarity
// (empty string means any). The random source is injected so callers control
// determinism. Returns nil if the pool is empty.
func RandomMagicItem(rng *rand.Rand, rarity Rarity) *MagicItem {
	pool := magicItems
	if rarity != "" {
		pool = MagicItemsByRarity(rarity)
	}
	if len(pool) == 0 {
		return nil
	}
	item := pool[rng.Intn(len(pool))]
	return &item
}

// RandomItemFilter narrows the pool for RandomMagicItems. Zero values mean
// no restriction; RequiresAttunement is a tri-state pointer.
type RandomItemFilter struct {
	Rarity             Rarity
	Type               string
	RequiresAttunement *bool
}

// RandomMagicItems picks up to count distinct random items matching the
// filter, shuffled with the injected random source.
func RandomMagicItems(rng *rand.Rand, count int, filter RandomItemFilter) []MagicItem {
	var pool []MagicItem
	for _, item := range magicItems {
		if filter.Rarity != "" && item.Rarity != filter.Rarity {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.RequiresAttunement != nil && item.RequiresAttunement != *filter.RequiresAttunement {
			continue
		}
		pool = append(pool, item)
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	if count < 0 {
		count = 0
	}
	return pool[:count]
}

// SearchMagicItems returns items whose name contains the query,
// case-insensitive.
func SearchMagicItems(query string) []MagicItem {
	lower := strings.ToLower(query)
	var result []MagicItem
	for _, item := range magicItems {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			result = append(result, item)
		}
	}
	return result
}

// ItemTypes returns the sorted set of distinct item types
func ItemTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, item := range magicItems {
		if !seen[item.Type] {
			seen[item.Type] = true
			types = append(types, item.Type)
		}
	}
	sort.Strings(types)
	return types
}

// MagicItemsStats summarizes the item database
type MagicItemsStats struct {
	Total              int            `json:"total"`
	ByRarity           map[Rarity]int `json:"byRarity"`
	ByType             map[string]int `json:"byType"`
	RequiresAttunement int            `json:"requiresAttunement"`
	Types              []string       `json:"types"`
}

// Stats computes counts over the item database
func Stats() MagicItemsStats {
	stats := MagicItemsStats{
		Total:    len(magicItems),
		ByRarity: make(map[Rarity]int),
		ByType:   make(map[string]int),
		Types:    ItemTypes(),
	}

	for _, item := range magicItems {
		stats.ByRarity[item.Rarity]++
		stats.ByType[item.Type]++
		if item.RequiresAttunement {
			stats.RequiresAttunement++
		}
	}

	return stats
}
