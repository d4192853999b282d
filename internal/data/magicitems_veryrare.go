package data

var veryRareItems = []MagicItem{
	{
		Name:               "Amulet of the Planes",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this amulet, you can use an action to name a location that you are familiar with on another plane of existence. Then make a DC 15 Intelligence check. On a successful check, you cast the plane shift spell. It requires attunement.",
	},
	{
		Name:               "Animated Shield",
		Rarity:             RarityVeryRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While holding this shield, you can speak its command word as a bonus action to cause it to animate. The shield leaps into the air and hovers in your space to protect you as if you were wielding it, leaving your hands free. It requires attunement.",
	},
	{
		Name:        "Armor +2",
		Rarity:      RarityVeryRare,
		Type:        "Armor",
		Description: "You have a +2 bonus to AC while wearing this armor.",
		Properties:  &ItemProperties{Bonus: 2},
	},
	{
		Name:        "Arrow of Slaying",
		Rarity:      RarityVeryRare,
		Type:        "Weapon",
		Description: "An arrow of slaying is a magic weapon meant to slay a particular kind of creature. If a creature of that kind takes damage from the arrow, it must make a DC 17 Constitution saving throw, taking an extra 6d10 piercing damage on a failed save.",
		Properties:  &ItemProperties{Damage: "6d10"},
	},
	{
		Name:        "Bag of Devouring",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This bag superficially resembles a bag of holding but is a feeding orifice for a gigantic extradimensional creature. Any matter placed in the bag is devoured and lost forever at the end of each day.",
	},
	{
		Name:               "Belt of Fire Giant Strength",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this belt, your Strength score changes to 25. The item has no effect on you if your Strength is already equal to or greater than 25. It requires attunement.",
	},
	{
		Name:               "Candle of Invocation",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This slender taper is dedicated to a deity. The candle's magic is activated when the candle is lit, which requires an action. After burning for 4 hours, the candle is destroyed. While it burns, it sheds dim light in a 30-foot radius. It requires attunement.",
	},
	{
		Name:        "Carpet of Flying",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "You can speak the carpet's command word as an action to make the carpet hover and fly. It moves according to your spoken directions, provided that you are within 30 feet of it. A carpet can carry up to twice its rated weight at half its flying speed.",
	},
	{
		Name:               "Cloak of Arachnida",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this cloak, you have resistance to poison damage, a climbing speed equal to your walking speed, and you can move across vertical surfaces and ceilings while leaving your hands free. You can also cast web once per day. It requires attunement.",
	},
	{
		Name:               "Crystal Ball",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While touching this crystal orb, you can cast the scrying spell (save DC 17) with it. It requires attunement.",
	},
	{
		Name:               "Dancing Sword",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You can use a bonus action to toss this magic sword into the air and speak the command word. When you do so, the sword begins to hover, flies up to 30 feet, and attacks one creature of your choice within 5 feet of it. It requires attunement.",
	},
	{
		Name:               "Demon Armor",
		Rarity:             RarityVeryRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While wearing this armor, you gain a +1 bonus to AC, and you can understand and speak Abyssal. In addition, the armor's clawed gauntlets turn your unarmed strikes into magic weapons that deal 1d8 slashing damage. The armor is cursed. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1, Damage: "1d8"},
	},
	{
		Name:               "Dragon Scale Mail",
		Rarity:             RarityVeryRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While wearing this armor, you gain a +1 bonus to AC, you have advantage on saving throws against the Frightful Presence and breath weapons of dragons, and you have resistance to one damage type determined by the kind of dragon that provided the scales. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:        "Dwarven Plate",
		Rarity:      RarityVeryRare,
		Type:        "Armor",
		Description: "While wearing this armor, you gain a +2 bonus to AC. In addition, if an effect moves you against your will along the ground, you can use your reaction to reduce the distance you are moved by up to 10 feet.",
		Properties:  &ItemProperties{Bonus: 2},
	},
	{
		Name:               "Dwarven Thrower",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "This warhammer answers only to dwarven hands; it requires attunement by a dwarf. You gain a +3 bonus to attack and damage rolls made with it, and it has the thrown property with a normal range of 20 feet and a long range of 60 feet.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:        "Efreeti Bottle",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This painted brass bottle weighs 1 pound. When you use an action to remove the stopper, a cloud of thick smoke flows out of the bottle and an efreeti appears in an unoccupied space within 30 feet of you.",
	},
	{
		Name:        "Figurine of Wondrous Power (Obsidian Steed)",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This polished obsidian horse can become a nightmare for up to 24 hours. The nightmare fights only to defend itself. Once it has been used, it can't be used again until 5 days have passed.",
	},
	{
		Name:               "Frost Brand",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "When you hit with an attack using this magic sword, the target takes an extra 1d6 cold damage. In addition, while you hold the sword, you have resistance to fire damage. It requires attunement.",
		Properties:         &ItemProperties{Damage: "1d6"},
	},
	{
		Name:               "Helm of Brilliance",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This dazzling helm is set with 1d10 diamonds, 2d10 rubies, 3d10 fire opals, and 4d10 opals. Any gem pried from the helm crumbles to dust. You can expend gems to cast daylight, fireball, prismatic spray, or wall of fire. It requires attunement.",
	},
	{
		Name:               "Wand of the War Mage +3",
		Rarity:             RarityVeryRare,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand hums when battle is joined; it requires attunement by a spellcaster. While holding it, you gain a +3 bonus to spell attack rolls, and you ignore half cover when making a spell attack.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:        "Horseshoes of a Zephyr",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "These iron horseshoes come in a set of four. While all four shoes are affixed to the hooves of a horse or similar creature, they allow the creature to move normally while floating 4 inches above the ground.",
	},
	{
		Name:               "Ioun Stone (Absorption)",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While this pale lavender ellipsoid orbits your head, you can use your reaction to cancel a spell of 4th level or lower that targets only you, provided you can see its caster. It requires attunement.",
	},
	{
		Name:        "Manual of Bodily Health",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This book contains health and diet tips. If you spend 48 hours over a period of 6 days or fewer studying the book's contents and practicing its guidelines, your Constitution score increases by 2, as does your maximum for that score.",
	},
	{
		Name:        "Manual of Gainful Exercise",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This book describes fitness exercises. If you spend 48 hours over a period of 6 days or fewer studying the book's contents and practicing its guidelines, your Strength score increases by 2, as does your maximum for that score.",
	},
	{
		Name:        "Manual of Golems",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This tome contains information and incantations necessary to make a particular type of golem. To decipher and use the manual, you must be a spellcaster with at least two 5th-level spell slots.",
	},
	{
		Name:        "Manual of Quickness of Action",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This book contains coordination and balance exercises. If you spend 48 hours over a period of 6 days or fewer studying the book's contents and practicing its guidelines, your Dexterity score increases by 2, as does your maximum for that score.",
	},
	{
		Name:        "Mirror of Life Trapping",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "When this 4-foot-tall mirror is viewed indirectly, its surface shows faint images of creatures. While the mirror is activated, any creature that sees its reflection must succeed on a DC 15 Charisma saving throw or be trapped inside one of the mirror's twelve extradimensional cells.",
	},
	{
		Name:               "Nine Lives Stealer",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You gain a +2 bonus to attack and damage rolls made with this magic sword. The sword has 1d8 + 1 charges. If you score a critical hit against a creature that has fewer than 100 hit points, it must succeed on a DC 15 Constitution saving throw or be slain instantly. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:        "Nolzur's Marvelous Pigments",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "These pigments allow you to create three-dimensional objects by painting them in two dimensions. The paint flows from the brush to form the desired object as you concentrate on its image.",
	},
	{
		Name:               "Oathbow",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "When you nock an arrow on this bow, it whispers in Elvish. When you use it to make a ranged attack against your sworn enemy, you have advantage on the roll, and your target gains no benefit from cover other than total cover. It requires attunement.",
	},
	{
		Name:        "Potion of Giant Strength (Cloud)",
		Rarity:      RarityVeryRare,
		Type:        "Potion",
		Description: "When you drink this potion, your Strength score changes to 27 for 1 hour. The potion has no effect on you if your Strength is equal to or greater than that score.",
	},
	{
		Name:        "Potion of Invisibility",
		Rarity:      RarityVeryRare,
		Type:        "Potion",
		Description: "This potion's container looks empty but feels as though it holds liquid. When you drink it, you become invisible for 1 hour. Anything you wear or carry is invisible with you. The effect ends early if you attack or cast a spell.",
	},
	{
		Name:        "Potion of Longevity",
		Rarity:      RarityVeryRare,
		Type:        "Potion",
		Description: "When you drink this potion, your physical age is reduced by 1d6 + 6 years, to a minimum of 13 years. Each time you subsequently drink a potion of longevity, there is a 10 percent cumulative chance that you instead age by 1d6 + 6 years.",
	},
	{
		Name:        "Potion of Speed",
		Rarity:      RarityVeryRare,
		Type:        "Potion",
		Description: "When you drink this potion, you gain the effect of the haste spell for 1 minute (no concentration required). The potion's yellow fluid is streaked with black and swirls on its own.",
	},
	{
		Name:        "Potion of Vitality",
		Rarity:      RarityVeryRare,
		Type:        "Potion",
		Description: "When you drink this potion, it removes any exhaustion you are suffering and cures any disease or poison affecting you. For the next 24 hours, you regain the maximum number of hit points for any Hit Die you spend.",
	},
	{
		Name:               "Ring of Regeneration",
		Rarity:             RarityVeryRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you regain 1d6 hit points every 10 minutes, provided that you have at least 1 hit point. If you lose a body part, the ring causes the missing part to regrow after 1d6 + 1 days. It requires attunement.",
	},
	{
		Name:               "Ring of Telekinesis",
		Rarity:             RarityVeryRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you can cast the telekinesis spell at will, but you can target only objects that aren't being worn or carried. It requires attunement.",
	},
	{
		Name:               "Robe of Scintillating Colors",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This robe has 3 charges. While you wear it, you can use an action and expend 1 charge to cause the garment to display a shifting pattern of dazzling hues until the end of your next turn, shedding bright light and dazing attackers. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:               "Robe of Stars",
		Rarity:             RarityVeryRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This black or dark blue robe is embroidered with small white or silver stars. You gain a +1 bonus to saving throws while you wear it, and you can pull stars from the robe to hurl as magic missiles. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Rod of Absorption",
		Rarity:             RarityVeryRare,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "While holding this rod, you can use your reaction to absorb a spell that is targeting only you and not with an area of effect. The absorbed spell's energy is stored in the rod, up to 50 levels worth over its lifetime. It requires attunement.",
	},
	{
		Name:               "Rod of Alertness",
		Rarity:             RarityVeryRare,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod has a flanged head. While holding it, you have advantage on Wisdom (Perception) checks and on rolls for initiative. You can also use the rod to cast detect evil and good, detect magic, detect poison and disease, and see invisibility. It requires attunement.",
	},
	{
		Name:        "Rod of Security",
		Rarity:      RarityVeryRare,
		Type:        "Rod",
		Description: "While holding this rod, you can use an action to activate it. The rod then instantly transports you and up to 199 other willing creatures you can see to a paradise that exists in an extraplanar space for up to 200 days divided by the number of creatures transported.",
	},
	{
		Name:               "Rod of the Pact Keeper +3",
		Rarity:             RarityVeryRare,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod answers only to those sworn to an otherworldly patron; it requires attunement by a warlock. While holding it, you gain a +3 bonus to spell attack rolls and to the saving throw DCs of your warlock spells.",
		Properties:         &ItemProperties{Bonus: 3},
	},
	{
		Name:               "Spellguard Shield",
		Rarity:             RarityVeryRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While holding this shield, you have advantage on saving throws against spells and other magical effects, and spell attacks have disadvantage against you. It requires attunement.",
	},
	{
		Name:               "Staff of Fire",
		Rarity:             RarityVeryRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff smolders with inner flame; it requires attunement by a druid, sorcerer, warlock, or wizard. You have resistance to fire damage while you hold it. The staff has 10 charges for casting burning hands, fireball, or wall of fire.",
		Properties:         &ItemProperties{Charges: 10, Damage: "8d6"},
	},
	{
		Name:               "Staff of Frost",
		Rarity:             RarityVeryRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff is rimed with ice; it requires attunement by a druid, sorcerer, warlock, or wizard. You have resistance to cold damage while you hold it. The staff has 10 charges for casting cone of cold, fog cloud, ice storm, or wall of ice.",
		Properties:         &ItemProperties{Charges: 10},
	},
	{
		Name:               "Staff of Power",
		Rarity:             RarityVeryRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff crackles with raw arcane force; it requires attunement by a sorcerer, warlock, or wizard. The staff has 20 charges and can be wielded as a magic quarterstaff with a +2 bonus. You can expend charges to cast cone of cold, fireball, globe of invulnerability, hold monster, levitate, lightning bolt, magic missile, ray of enfeeblement, or wall of force.",
		Properties:         &ItemProperties{Bonus: 2, Charges: 20},
	},
	{
		Name:               "Staff of Thunder and Lightning",
		Rarity:             RarityVeryRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff can be wielded as a magic quarterstaff that grants a +2 bonus to attack and damage rolls made with it. It also has the Lightning, Thunder, Lightning Strike, Thunderclap, and Thunder and Lightning properties, each usable once per dawn. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:               "Sword of Sharpness",
		Rarity:             RarityVeryRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "When you attack an object with this magic sword and hit, maximize your weapon damage dice against the target. When you attack a creature and roll a 20 on the attack roll, that target takes an extra 4d6 slashing damage. It requires attunement.",
		Properties:         &ItemProperties{Damage: "4d6"},
	},
	{
		Name:        "Tome of Clear Thought",
		Rarity:      RarityVeryRare,
		Type:        "Wondrous item",
		Description: "This book contains memory and logic exercises. If you spend 48 hours over a period of 6 days or fewer studying the book's contents and practicing its guidelines, your Intelligence score increases by 2, as does your maximum for that score.",
	},
	{
		Name:               "Wand of Lightning Bolts",
		Rarity:             RarityVeryRare,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand carries the tang of ozone; it requires attunement by a spellcaster. The wand has 7 charges. While holding it, you can use an action to expend 1 or more of its charges to cast the lightning bolt spell (save DC 15) from it.",
		Properties:         &ItemProperties{Charges: 7, Damage: "8d6"},
	},
}
