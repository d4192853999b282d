package data

var rareItems = []MagicItem{
	{
		Name:               "Amulet of Health",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "Your Constitution score is 19 while you wear this amulet. It has no effect on you if your Constitution is already 19 or higher. It requires attunement.",
	},
	{
		Name:               "Armor of Resistance",
		Rarity:             RarityRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "You have resistance to one type of damage while you wear this armor. The armor's creation determines the type. It requires attunement.",
	},
	{
		Name:        "Armor +1",
		Rarity:      RarityRare,
		Type:        "Armor",
		Description: "You have a +1 bonus to AC while wearing this armor.",
		Properties:  &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Ioun Stone (Reserve)",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This vibrant purple prism stores spells cast into it, holding them until you use them. The stone can store up to 3 levels worth of spells at a time. It requires attunement.",
	},
	{
		Name:        "Bag of Beans",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "Inside this heavy cloth bag are 3d4 dry beans. If you dump the bag's contents out on the ground, they explode in a 10-foot radius. If you remove a bean from the bag and plant it in dirt or sand and then water it, an unpredictable effect occurs.",
	},
	{
		Name:        "Bead of Force",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This small black sphere measures 3/4 of an inch in diameter. You can use an action to throw the bead up to 60 feet. It explodes on impact, and each creature within a 10-foot radius must succeed on a DC 15 Dexterity saving throw or take 5d4 force damage and be trapped in a sphere of force.",
		Properties:  &ItemProperties{Damage: "5d4"},
	},
	{
		Name:               "Belt of Dwarvenkind",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this belt, your Constitution score increases by 2, you have advantage on Charisma (Persuasion) checks made to interact with dwarves, and you have darkvision out to 60 feet. It requires attunement.",
	},
	{
		Name:               "Belt of Hill Giant Strength",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this belt, your Strength score changes to 21. The item has no effect on you if your Strength is already equal to or greater than 21. It requires attunement.",
	},
	{
		Name:               "Boots of Levitation",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear these boots, you can use an action to cast the levitate spell on yourself at will. It requires attunement.",
	},
	{
		Name:               "Boots of Speed",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear these boots, you can use a bonus action to click the heels together, doubling your walking speed. When you click your heels together again, you end the effect. It requires attunement.",
	},
	{
		Name:        "Bowl of Commanding Water Elementals",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "While this bowl is filled with water, you can use an action to speak the bowl's command word and summon a water elemental, as if you had cast the conjure elemental spell.",
	},
	{
		Name:               "Bracers of Defense",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing these bracers, you gain a +2 bonus to AC if you are wearing no armor and using no shield. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:        "Brazier of Commanding Fire Elementals",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "While a fire burns in this brass brazier, you can use an action to speak the brazier's command word and summon a fire elemental, as if you had cast the conjure elemental spell.",
	},
	{
		Name:        "Cape of the Mountebank",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This cape smells faintly of brimstone. While wearing it, you can use it to cast the dimension door spell as an action. When you disappear, you leave behind a cloud of smoke.",
	},
	{
		Name:        "Censer of Controlling Air Elementals",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "While incense is burning in this censer, you can use an action to speak the censer's command word and summon an air elemental, as if you had cast the conjure elemental spell.",
	},
	{
		Name:        "Chime of Opening",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This hollow metal tube measures about 1 foot long and weighs 1 pound. You can strike it as an action, pointing it at an object within 120 feet that can be opened, such as a door, lid, or lock. One lock or latch on the object opens.",
		Properties:  &ItemProperties{Charges: 10},
	},
	{
		Name:               "Cloak of Displacement",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear this cloak, it projects an illusion that makes you appear to be standing in a place near your actual location, causing any creature to have disadvantage on attack rolls against you. It requires attunement.",
	},
	{
		Name:               "Cloak of the Bat",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this cloak, you have advantage on Dexterity (Stealth) checks. In an area of dim light or darkness, you can grip the edges of the cloak with both hands and use it to fly at a speed of 40 feet. It requires attunement.",
	},
	{
		Name:               "Cube of Force",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This cube is about an inch across. Each face has a distinct marking on it that can be pressed. The cube starts with 36 charges. Pressing a face creates a barrier of invisible force around you. It requires attunement.",
		Properties:         &ItemProperties{Charges: 36},
	},
	{
		Name:        "Daern's Instant Fortress",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "You can use an action to place this 1-inch metal cube on the ground and speak its command word. The cube rapidly grows into a fortress that remains until you use an action to speak the command word that dismisses it.",
	},
	{
		Name:        "Dagger of Venom",
		Rarity:      RarityRare,
		Type:        "Weapon",
		Description: "You gain a +1 bonus to attack and damage rolls made with this magic weapon. You can use an action to cause thick, black poison to coat the blade. The poison remains for 1 minute or until an attack using this weapon hits a creature.",
		Properties:  &ItemProperties{Bonus: 1, Damage: "2d10"},
	},
	{
		Name:        "Dimensional Shackles",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "You can use an action to place these shackles on an incapacitated creature. The shackles adjust to fit a creature of Small to Large size. In addition to serving as mundane manacles, the shackles prevent a creature bound in them from using any method of extradimensional movement.",
	},
	{
		Name:        "Dragon Slayer",
		Rarity:      RarityRare,
		Type:        "Weapon",
		Description: "You gain a +1 bonus to attack and damage rolls made with this magic weapon. When you hit a dragon with this weapon, the dragon takes an extra 3d6 damage of the weapon's type.",
		Properties:  &ItemProperties{Bonus: 1, Damage: "3d6"},
	},
	{
		Name:               "Staff of the Woodlands",
		Rarity:             RarityRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff can be wielded as a magic quarterstaff that grants a +2 bonus to attack and damage rolls made with it. It holds the quiet power of the wild; it requires attunement by a druid. The staff has 10 charges for casting nature spells.",
		Properties:         &ItemProperties{Bonus: 2, Charges: 10},
	},
	{
		Name:        "Elven Chain",
		Rarity:      RarityRare,
		Type:        "Armor",
		Description: "You gain a +1 bonus to AC while you wear this armor. You are considered proficient with this armor even if you lack proficiency with medium armor.",
		Properties:  &ItemProperties{Bonus: 1},
	},
	{
		Name:        "Figurine of Wondrous Power (Bronze Griffon)",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This bronze statuette is of a griffon rampant. It can become a griffon for up to 6 hours. Once it has been used, it can't be used again until 5 days have passed.",
	},
	{
		Name:               "Flame Tongue",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You can use a bonus action to speak this magic sword's command word, causing flames to erupt from the blade. While the sword is ablaze, it deals an extra 2d6 fire damage to any target it hits. It requires attunement.",
		Properties:         &ItemProperties{Damage: "2d6"},
	},
	{
		Name:        "Folding Boat",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This object appears as a wooden box that measures 12 inches long, 6 inches wide, and 6 inches deep. It has three command words, each requiring you to use an action to speak it: one unfolds the box into a boat, one into a ship, and one folds it back into a box.",
	},
	{
		Name:               "Gem of Seeing",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This gem has 3 charges. As an action, you can speak the gem's command word and expend 1 charge. For the next 10 minutes, you have truesight out to 120 feet when you peer through the gem. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:        "Giant Slayer",
		Rarity:      RarityRare,
		Type:        "Weapon",
		Description: "You gain a +1 bonus to attack and damage rolls made with this magic weapon. When you hit a giant with it, the giant takes an extra 2d6 damage of the weapon's type and must succeed on a DC 15 Strength saving throw or fall prone.",
		Properties:  &ItemProperties{Bonus: 1, Damage: "2d6"},
	},
	{
		Name:        "Glamoured Studded Leather",
		Rarity:      RarityRare,
		Type:        "Armor",
		Description: "While wearing this armor, you gain a +1 bonus to AC. You can also use a bonus action to speak the armor's command word and cause the armor to assume the appearance of a normal set of clothing or some other kind of armor.",
		Properties:  &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Helm of Teleportation",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This helm has 3 charges. While wearing it, you can use an action and expend 1 charge to cast the teleport spell from it. The helm regains 1d3 expended charges daily at dawn. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:        "Heward's Handy Haversack",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This backpack has a central pouch and two side pouches, each of which is an extradimensional space. Each side pouch can hold up to 20 pounds of material. The large central pouch can hold up to 8 cubic feet or 80 pounds of material.",
	},
	{
		Name:        "Horn of Blasting",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "You can use an action to speak the horn's command word and then blow the horn, which emits a thunderous blast in a 30-foot cone. Each creature in the cone must make a DC 15 Constitution saving throw, taking 5d6 thunder damage on a failed save.",
		Properties:  &ItemProperties{Damage: "5d6"},
	},
	{
		Name:               "Wand of Binding",
		Rarity:             RarityRare,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand channels binding magic; it requires attunement by a spellcaster. The wand has 7 charges. You can expend charges to cast hold monster or hold person from it.",
		Properties:         &ItemProperties{Charges: 7},
	},
	{
		Name:               "Ioun Stone (Awareness)",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This dark blue rhomboid orbits your head. You can't be surprised while it does so. It requires attunement.",
	},
	{
		Name:               "Ioun Stone (Protection)",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This dusty rose prism orbits your head, granting you a +1 bonus to AC. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:        "Iron Bands of Bilarro",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This rusty iron sphere measures 3 inches in diameter. You can use an action to speak the command word and throw the sphere at a Huge or smaller creature within 60 feet. As the sphere moves, it unfolds into a tangle of metal bands that contract around the target on a hit.",
	},
	{
		Name:               "Mace of Disruption",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "When you hit a fiend or an undead with this magic weapon, that creature takes an extra 2d6 radiant damage. If the target has 25 hit points or fewer after taking this damage, it must succeed on a DC 15 Wisdom saving throw or be destroyed. It requires attunement.",
		Properties:         &ItemProperties{Damage: "2d6"},
	},
	{
		Name:        "Mace of Smiting",
		Rarity:      RarityRare,
		Type:        "Weapon",
		Description: "You gain a +1 bonus to attack and damage rolls made with this magic weapon. The bonus increases to +3 when you use the mace to attack a construct.",
		Properties:  &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Mace of Terror",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "This magic weapon has 3 charges. While holding it, you can use an action and expend 1 charge to release a wave of terror. Each creature of your choice within 30 feet must succeed on a DC 15 Wisdom saving throw or become frightened of you for 1 minute. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:               "Mantle of Spell Resistance",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "You have advantage on saving throws against spells while you wear this cloak. It requires attunement.",
	},
	{
		Name:        "Necklace of Fireballs",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This necklace has 1d6 + 3 beads hanging from it. You can use an action to detach a bead and throw it up to 60 feet away. When it reaches the end of its trajectory, the bead detonates as a 3rd-level fireball spell (save DC 15).",
		Properties:  &ItemProperties{Damage: "8d6"},
	},
	{
		Name:               "Necklace of Prayer Beads",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This necklace of blessed beads answers only to the faithful; it requires attunement by a cleric, druid, or paladin. It has 1d4 + 2 magic beads, each of which can be used to cast a spell such as bless, cure wounds, or greater restoration.",
	},
	{
		Name:        "Oil of Etherealness",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "Beads of this cloudy gray oil form on the outside of its container and quickly evaporate. The oil can cover a Medium or smaller creature. The affected creature gains the effect of the etherealness spell for 1 hour.",
	},
	{
		Name:        "Periapt of Proof against Poison",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This delicate silver chain has a brilliant-cut black gem pendant. While you wear it, poisons have no effect on you. You are immune to the poisoned condition and have immunity to poison damage.",
	},
	{
		Name:        "Portable Hole",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This fine black cloth, soft as silk, is folded up to the dimensions of a handkerchief. It unfolds into a circular sheet 6 feet in diameter. You can use an action to unfold the portable hole and place it on or against a solid surface, whereupon it creates an extradimensional hole 10 feet deep.",
	},
	{
		Name:        "Potion of Clairvoyance",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "When you drink this potion, you gain the effect of the clairvoyance spell. An eyeball bobs in this yellowish liquid but vanishes when the potion is opened.",
	},
	{
		Name:               "Wand of Polymorph",
		Rarity:             RarityRare,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand reshapes flesh at a word; it requires attunement by a spellcaster. The wand has 7 charges. While holding it, you can use an action to expend 1 charge to cast the polymorph spell (save DC 15) from it.",
		Properties:         &ItemProperties{Charges: 7},
	},
	{
		Name:        "Potion of Gaseous Form",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "When you drink this potion, you gain the effect of the gaseous form spell for 1 hour (no concentration required) or until you end the effect as a bonus action.",
	},
	{
		Name:        "Potion of Giant Strength (Frost)",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "When you drink this potion, your Strength score changes to 23 for 1 hour. The potion has no effect on you if your Strength is equal to or greater than that score.",
	},
	{
		Name:        "Potion of Heroism",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "For 1 hour after drinking it, you gain 10 temporary hit points that last for 1 hour. For the same duration, you are under the effect of the bless spell (no concentration required).",
	},
	{
		Name:        "Potion of Invulnerability",
		Rarity:      RarityRare,
		Type:        "Potion",
		Description: "For 1 minute after you drink this potion, you have resistance to all damage. The potion's syrupy liquid looks like liquefied iron.",
	},
	{
		Name:               "Ring of Shooting Stars",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring in dim light or darkness, you can cast dancing lights and light from the ring at will. The ring has 6 charges for other properties, including hurling glowing motes that explode like miniature stars. It requires attunement.",
		Properties:         &ItemProperties{Charges: 6},
	},
	{
		Name:        "Quaal's Feather Token",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This tiny object looks like a feather. Different types of feather tokens exist, each with a different single-use effect, such as an anchor, a bird, a fan, a swan boat, a tree, or a whip.",
	},
	{
		Name:        "Ring of Animal Influence",
		Rarity:      RarityRare,
		Type:        "Ring",
		Description: "This ring has 3 charges, and it regains 1d3 expended charges daily at dawn. While wearing the ring, you can expend charges to cast animal friendship, fear (targeting beasts only), or speak with animals.",
		Properties:  &ItemProperties{Charges: 3},
	},
	{
		Name:               "Ring of Evasion",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "This ring has 3 charges. When you fail a Dexterity saving throw while wearing it, you can use your reaction to expend 1 of its charges to succeed on that saving throw instead. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:               "Ring of Feather Falling",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "When you fall while wearing this ring, you descend 60 feet per round and take no damage from falling. It requires attunement.",
	},
	{
		Name:               "Ring of Free Action",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While you wear this ring, difficult terrain doesn't cost you extra movement. In addition, magic can neither reduce your speed nor cause you to be paralyzed or restrained. It requires attunement.",
	},
	{
		Name:               "Ring of Protection",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "You gain a +1 bonus to AC and saving throws while wearing this ring. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Ring of Resistance",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "You have resistance to one damage type while wearing this ring. The gem in the ring indicates the type. It requires attunement.",
	},
	{
		Name:               "Ring of Spell Storing",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "This ring stores spells cast into it, holding them until the attuned wearer uses them. The ring can store up to 5 levels worth of spells at a time. It requires attunement.",
	},
	{
		Name:               "Ring of the Ram",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "This ring has 3 charges. While wearing the ring, you can use an action to expend 1 to 3 of its charges to make a ranged spell attack against one creature within 60 feet, hurling a spectral ram's head that deals 2d10 force damage per charge. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3, Damage: "2d10"},
	},
	{
		Name:               "Ring of X-ray Vision",
		Rarity:             RarityRare,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you can use an action to speak its command word. When you do so, you can see into and through solid matter for 1 minute. It requires attunement.",
	},
	{
		Name:               "Robe of Eyes",
		Rarity:             RarityRare,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This robe is adorned with eyelike patterns. While you wear the robe, you can see in all directions, you have advantage on Wisdom (Perception) checks that rely on sight, and you have darkvision out to 120 feet. It requires attunement.",
	},
	{
		Name:               "Rod of Rulership",
		Rarity:             RarityRare,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "You can use an action to present the rod and command obedience from each creature of your choice that you can see within 120 feet. Each target must succeed on a DC 15 Wisdom saving throw or be charmed by you for 8 hours. It requires attunement.",
	},
	{
		Name:               "Rod of the Pact Keeper +2",
		Rarity:             RarityRare,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod answers only to those sworn to an otherworldly patron; it requires attunement by a warlock. While holding it, you gain a +2 bonus to spell attack rolls and to the saving throw DCs of your warlock spells.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:        "Rope of Entanglement",
		Rarity:      RarityRare,
		Type:        "Wondrous item",
		Description: "This rope is 30 feet long and weighs 3 pounds. If you hold one end of the rope and use an action to speak its command word, the other end darts forward to entangle a creature you can see within 20 feet of you.",
	},
	{
		Name:               "Scimitar of Speed",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "You gain a +2 bonus to attack and damage rolls made with this magic weapon. In addition, you can make one attack with it as a bonus action on each of your turns. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:        "Shield +2",
		Rarity:      RarityRare,
		Type:        "Armor",
		Description: "While holding this shield, you have a +2 bonus to AC. This bonus is in addition to the shield's normal bonus to AC.",
		Properties:  &ItemProperties{Bonus: 2},
	},
	{
		Name:               "Shield of Missile Attraction",
		Rarity:             RarityRare,
		Type:               "Armor",
		RequiresAttunement: true,
		Description:        "While holding this shield, you have resistance to damage from ranged weapon attacks. This shield is cursed: whenever a ranged weapon attack is made against a target within 10 feet of you, the curse causes you to become the target instead. It requires attunement.",
	},
	{
		Name:               "Staff of Charming",
		Rarity:             RarityRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff sways minds with a whisper; it requires attunement by a bard, cleric, druid, sorcerer, warlock, or wizard. The staff has 10 charges for casting charm person, command, or comprehend languages.",
		Properties:         &ItemProperties{Charges: 10},
	},
	{
		Name:               "Staff of Healing",
		Rarity:             RarityRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This staff mends wounds with a touch; it requires attunement by a bard, cleric, or druid. The staff has 10 charges for casting cure wounds, lesser restoration, or mass cure wounds.",
		Properties:         &ItemProperties{Charges: 10},
	},
	{
		Name:               "Staff of Swarming Insects",
		Rarity:             RarityRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This gnarled staff hums with chitinous life; it requires attunement by a bard, cleric, druid, sorcerer, warlock, or wizard. The staff has 10 charges for casting giant insect or insect plague.",
		Properties:         &ItemProperties{Charges: 10},
	},
	{
		Name:               "Staff of Withering",
		Rarity:             RarityRare,
		Type:               "Staff",
		RequiresAttunement: true,
		Description:        "This blackened staff saps the body; it requires attunement by a cleric, druid, or warlock. The staff has 3 charges. On a hit as a magic quarterstaff, you can expend 1 charge to deal an extra 2d10 necrotic damage and wither one of the target's ability scores.",
		Properties:         &ItemProperties{Charges: 3, Damage: "2d10"},
	},
	{
		Name:               "Sun Blade",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "This item appears to be a longsword hilt. While grasping the hilt, you can use a bonus action to cause a blade of pure radiance to spring into existence. You gain a +2 bonus to attack and damage rolls, and the weapon deals radiant damage instead of slashing. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:               "Sword of Life Stealing",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "When you attack a creature with this magic weapon and roll a 20 on the attack roll, that target takes an extra 10 necrotic damage. You then gain 10 temporary hit points. It requires attunement.",
	},
	{
		Name:               "Sword of Wounding",
		Rarity:             RarityRare,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "Hit points lost to this weapon's damage can be regained only through a short or long rest, rather than regeneration, magic, or any other means. At the start of each of the wounded creature's turns, it takes 1d4 necrotic damage for each wound. It requires attunement.",
		Properties:         &ItemProperties{Damage: "1d4"},
	},
	{
		Name:               "Wand of Fireballs",
		Rarity:             RarityRare,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand smells faintly of ash; it requires attunement by a spellcaster. The wand has 7 charges. While holding it, you can use an action to expend 1 or more of its charges to cast the fireball spell (save DC 15) from it.",
		Properties:         &ItemProperties{Charges: 7, Damage: "8d6"},
	},
}
