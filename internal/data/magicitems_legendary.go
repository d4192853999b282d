package data

var legendaryItems = []MagicItem{
	{
		Name:        "Apparatus of Kwalish",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "This item first appears to be a Large sealed iron barrel weighing 500 pounds. Hidden catches open a hatch to a compartment for two Medium creatures, with levers that operate the apparatus as a crablike vehicle able to walk and swim.",
	},
	{
		Name:        "Armor +3",
		Rarity:      RarityLegendary,
		Type:        "Armor",
		Description: "You have a +3 bonus to AC while wearing this armor.",
		Properties:  &ItemProperties{Bonus: 3},
	},
	{
		Name:               "Armor of Invulnerability",
		Rarity:             RarityLegendary,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "You have resistance to nonmagical damage while you wear this armor. Additionally, you can use an action to make yourself immune to nonmagical damage for 10 minutes or until you remove the armor. Once used, this property cannot be used again until the next dawn. It requires attunement.",
	},
	{
		Name:               "Belt of Cloud Giant Strength",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this belt, your Strength score changes to 27. The item has no effect on you if your Strength is already equal to or greater than 27. It requires attunement.",
	},
	{
		Name:               "Belt of Storm Giant Strength",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this belt, your Strength score changes to 29. The item has no effect on you if your Strength is already equal to or greater than 29. It requires attunement.",
	},
	{
		Name:               "Cloak of Invisibility",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this cloak, you can pull its hood over your head to cause yourself to become invisible. The cloak holds 2 hours of invisibility, expended in 1-minute increments, and regains 1 hour of duration for every 12 hours it goes unused. It requires attunement.",
	},
	{
		Name:        "Cubic Gate",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "This cube is 3 inches across and radiates palpable magical energy. The six sides of the cube are each keyed to a different plane of existence. The cube has 3 charges, which can open gates or transport creatures to the keyed planes.",
		Properties:  &ItemProperties{Charges: 3},
	},
	{
		Name:        "Deck of Many Things",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "Usually found in a box or pouch, this deck contains a number of cards made of ivory or vellum. Before you draw a card, you must declare how many cards you intend to draw. Each card drawn takes effect immediately, for weal or woe.",
	},
	{
		Name:               "Defender",
		Rarity:             RarityLegendary,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You gain a +3 bonus to attack and damage rolls made with this magic sword. The first time you attack with the sword on each of your turns, you can transfer some or all of the sword's bonus to your Armor Class instead. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:               "Efreeti Chain",
		Rarity:             RarityLegendary,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While wearing this armor, you gain a +3 bonus to AC, you are immune to fire damage, and you can understand and speak Primordial. In addition, you can stand on and walk across molten rock as if it were solid ground. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:               "Holy Avenger",
		Rarity:             RarityLegendary,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "This sword answers only to the oath-sworn; it requires attunement by a paladin. You gain a +3 bonus to attack and damage rolls made with it. When you hit a fiend or an undead with it, that creature takes an extra 2d10 radiant damage.",
		Properties:         &ItemProperties{Bonus: 3, Damage: "2d10"},
	},
	{
		Name:        "Horn of Valhalla (Iron)",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "You can use an action to blow this horn. In response, 5d4 + 5 berserker spirits appear within 60 feet of you. They are friendly to you and your companions and fight for 1 hour. Once the horn is blown, it cannot be used again until 7 days have passed.",
	},
	{
		Name:        "Iron Flask",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "This iron bottle has a brass stopper. You can use an action to speak the flask's command word, targeting a creature that you can see within 60 feet of you. If the target is native to a plane of existence other than the one you are on, it must succeed on a DC 17 Wisdom saving throw or be trapped in the flask.",
	},
	{
		Name:               "Luck Blade",
		Rarity:             RarityLegendary,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You gain a +1 bonus to attack and damage rolls made with this magic sword. While the sword is on your person, you also gain a +1 bonus to saving throws, and you can reroll one attack roll, ability check, or saving throw per dawn. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Plate Armor of Etherealness",
		Rarity:             RarityLegendary,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While you are wearing this armor, you can speak its command word as an action to gain the effect of the etherealness spell, which lasts for 10 minutes or until you remove the armor. Once used, it cannot be used again until the next dawn. It requires attunement.",
	},
	{
		Name:               "Ring of Djinni Summoning",
		Rarity:             RarityLegendary,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you can speak its command word as an action to summon a particular djinni from the Elemental Plane of Air. The djinni obeys your commands for 1 hour, after which it returns to its home plane. It requires attunement.",
	},
	{
		Name:               "Ring of Invisibility",
		Rarity:             RarityLegendary,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you can turn invisible as an action. Anything you are wearing or carrying is invisible with you. You remain invisible until the ring is removed, until you attack or cast a spell, or until you use a bonus action to become visible again. It requires attunement.",
	},
	{
		Name:               "Ring of Spell Turning",
		Rarity:             RarityLegendary,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you have advantage on saving throws against any spell that targets only you. If you roll a 20 for the save and the spell is 7th level or lower, the spell has no effect on you and instead targets the caster. It requires attunement.",
	},
	{
		Name:               "Robe of the Archmagi",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This elegant garment is made from exquisite cloth and adorned with silvery runes; it requires attunement by a sorcerer, warlock, or wizard. You gain a +2 bonus to your spell save DC and spell attack rolls, advantage on saving throws against spells, and a base AC of 15 while unarmored.",
		Properties:         &ItemProperties{Bonus: 2, AC: 15},
	},
	{
		Name:               "Rod of Lordly Might",
		Rarity:             RarityLegendary,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod has a flanged head, and it functions as a magic mace that grants a +3 bonus to attack and damage rolls made with it. The rod has six buttons along its haft that transform it into other weapons and tools. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:               "Rod of Resurrection",
		Rarity:             RarityLegendary,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod channels divine restoration; it requires attunement by a cleric, druid, or paladin. The rod has 5 charges. While you hold it, you can expend 1 charge to cast heal or 5 charges to cast resurrection.",
		Properties:         &ItemProperties{Charges: 5},
	},
	{
		Name:               "Scarab of Protection",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "If you hold this beetle-shaped medallion for 1 round, an inscription appears on its surface. While the scarab is on your person, you have advantage on saving throws against spells, and it holds 12 charges that cancel necromancy spells targeting you. It requires attunement.",
		Properties:         &ItemProperties{Charges: 12},
	},
	{
		Name:        "Sphere of Annihilation",
		Rarity:      RarityLegendary,
		Type:        "Wondrous item",
		Description: "This 2-foot-diameter black sphere is a hole in the multiverse, hovering in space and stabilized with a magical field. Any matter that touches the sphere is instantly obliterated. A creature can attempt to control the sphere with an Intelligence (Arcana) check.",
	},
	{
		Name:               "Staff of the Magi",
		Rarity:             RarityLegendary,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff is among the most coveted arcane instruments ever made; it requires attunement by a sorcerer, warlock, or wizard. The staff has 50 charges and can be wielded as a magic quarterstaff with a +2 bonus. While you hold it, you gain a +2 bonus to spell attack rolls, you have advantage on saving throws against spells, and you can absorb incoming spells to regain charges.",
		Properties:         &ItemProperties{Bonus: 2, Charges: 50},
	},
	{
		Name:               "Talisman of Pure Good",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This talisman is a mighty symbol of goodness. Only creatures of good alignment can attune to it without harm; any other bearer takes 8d6 radiant damage when touching it. The talisman has 7 charges that can open a flaming fissure beneath a fiend or an undead.",
		Properties:         &ItemProperties{Charges: 7, Damage: "8d6"},
	},
	{
		Name:               "Talisman of Ultimate Evil",
		Rarity:             RarityLegendary,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This talisman is a theurgic relic of sinister power. Only creatures of evil alignment can attune to it without harm; any other bearer takes 8d6 necrotic damage when touching it. The talisman has 6 charges that can open a reeking fissure beneath a celestial.",
		Properties:         &ItemProperties{Charges: 6, Damage: "8d6"},
	},
	{
		Name:               "Vorpal Sword",
		Rarity:             RarityLegendary,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You gain a +3 bonus to attack and damage rolls made with this magic sword. The weapon ignores resistance to slashing damage. When you roll a 20 on an attack roll made with this sword against a creature that has a head, you cut the head off. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 3},
	},
}
