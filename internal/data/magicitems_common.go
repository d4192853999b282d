package data

var commonItems = []MagicItem{
	{
		Name:        "Potion of Climbing",
		Rarity:      RarityCommon,
		Type:        "Potion",
		Description: "When you drink this potion, you gain a climbing speed equal to your walking speed for 1 hour. During this time, you have advantage on Strength (Athletics) checks you make to climb.",
	},
	{
		Name:        "Potion of Healing",
		Rarity:      RarityCommon,
		Type:        "Potion",
		Description: "You regain 2d4 + 2 hit points when you drink this potion. The potion's red liquid glimmers when agitated.",
		Properties:  &ItemProperties{Damage: "2d4+2", Effects: []string{"healing"}},
	},
	{
		Name:        "Cloak of Billowing",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "While wearing this cloak, you can use a bonus action to make it billow dramatically.",
	},
	{
		Name:        "Clothes of Mending",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "This elegant outfit of traveler's clothes magically mends itself to counteract daily wear and tear. Pieces of the outfit that are destroyed cannot be repaired in this way.",
	},
	{
		Name:        "Candle of the Deep",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "The flame of this candle is not extinguished when immersed in water. It gives off light and heat like a normal candle.",
	},
	{
		Name:        "Dread Helm",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "This fearsome steel helm makes your eyes glow red while you wear it.",
	},
	{
		Name:        "Horn of Silent Alarm",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "This horn has 4 charges. When you use an action to blow it, one creature of your choice can hear the horn's blare, provided the creature is within 600 feet of the horn and not deafened. No other creature hears sound coming from the horn. The horn regains 1d4 expended charges daily at dawn.",
		Properties:  &ItemProperties{Charges: 4},
	},
	{
		Name:        "Moon-Touched Sword",
		Rarity:      RarityCommon,
		Type:        "Weapon",
		Description: "In darkness, the unsheathed blade of this sword sheds moonlight, creating bright light in a 15-foot radius and dim light for an additional 15 feet.",
	},
	{
		Name:        "Orb of Direction",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "While holding this orb, you can use an action to determine which way is north. This property functions only on the Material Plane.",
	},
	{
		Name:        "Rope of Mending",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "You can cut this 50-foot length of hempen rope into any number of smaller pieces, and then use an action to speak a command word and cause the pieces to knit back together. The rope is destroyed only if the entire length is burned or shredded.",
	},
	{
		Name:        "Tankard of Sobriety",
		Rarity:      RarityCommon,
		Type:        "Wondrous item",
		Description: "This tankard has a stern face sculpted into one side. You can drink ale, wine, or any other nonmagical alcoholic beverage poured into it without becoming inebriated. The tankard has no effect on magical liquids or harmful substances such as poison.",
	},
	{
		Name:        "Wand of Smiles",
		Rarity:      RarityCommon,
		Type:        "Wand",
		Description: "This wand has 3 charges. While holding it, you can use an action to expend 1 of its charges and target a humanoid you can see within 30 feet of you. The target must succeed on a DC 10 Charisma saving throw or be forced to smile for 1 minute. The wand regains all expended charges daily at dawn.",
		Properties:  &ItemProperties{Charges: 3},
	},
}
