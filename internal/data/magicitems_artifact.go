package data

var artifactItems = []MagicItem{
	{
		Name:               "Orb of Dragonkind",
		Rarity:             RarityArtifact,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "Ages past, elves and humans crafted five orbs to defeat the dragon hordes, each infused with the essence of an evil dragon. While attuned to the orb, you can use an action to peer into its depths and call dragons to you from within 40 miles. The orb houses a hostile will that seeks to dominate its bearer, who must succeed on a DC 20 Charisma saving throw whenever its powers are used. It requires attunement.",
		Properties:         &ItemProperties{Charges: 7, Effects: []string{"call dragons", "cure wounds", "daylight", "death ward", "scrying"}},
	},
}
