package data

var uncommonItems = []MagicItem{
	{
		Name:        "Adamantine Armor",
		Rarity:      RarityUncommon,
		Type:        "Armor",
		Description: "This suit of armor is reinforced with adamantine, one of the hardest substances in existence. While you're wearing it, any critical hit against you becomes a normal hit.",
	},
	{
		Name:        "Alchemy Jug",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This ceramic jug appears to be able to hold a gallon of liquid and weighs 12 pounds whether full or empty. You can use an action to name one liquid, causing the jug to produce it.",
	},
	{
		Name:        "Ammunition +1",
		Rarity:      RarityUncommon,
		Type:        "Ammunition",
		Description: "You have a +1 bonus to attack and damage rolls made with this piece of magic ammunition. Once it hits a target, the ammunition is no longer magical.",
		Properties:  &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Amulet of Proof against Detection and Location",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this amulet, you are hidden from divination magic. You can't be targeted by such magic or perceived through magical scrying sensors. It requires attunement.",
	},
	{
		Name:        "Bag of Holding",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This bag has an interior space considerably larger than its outside dimensions, roughly 2 feet in diameter at the mouth and 4 feet deep. The bag can hold up to 500 pounds, not exceeding a volume of 64 cubic feet.",
	},
	{
		Name:        "Bag of Tricks",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This ordinary bag, made from gray, rust, or tan cloth, appears empty. Reaching inside the bag, however, reveals the presence of a small, fuzzy object that transforms into an animal when thrown.",
	},
	{
		Name:        "Boots of Elvenkind",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While you wear these boots, your steps make no sound, regardless of the surface you are moving across. You also have advantage on Dexterity (Stealth) checks that rely on moving silently.",
	},
	{
		Name:               "Boots of Striding and Springing",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear these boots, your walking speed becomes 30 feet, unless your walking speed is higher. In addition, you can jump three times the normal distance. It requires attunement.",
	},
	{
		Name:               "Boots of the Winterlands",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "These furred boots are snug and feel quite warm. While you wear them, you gain resistance to cold damage and ignore difficult terrain created by ice or snow. It requires attunement.",
	},
	{
		Name:               "Bracers of Archery",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing these bracers, you have proficiency with the longbow and shortbow, and you gain a +2 bonus to damage rolls on ranged attacks made with such weapons. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 2},
	},
	{
		Name:               "Brooch of Shielding",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this brooch, you have resistance to force damage, and you have immunity to damage from the magic missile spell. It requires attunement.",
	},
	{
		Name:        "Broom of Flying",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This wooden broom, which weighs 3 pounds, functions like a mundane broom until you stand astride it and speak its command word. It then hovers beneath you and can be ridden in the air, with a flying speed of 50 feet.",
	},
	{
		Name:        "Cap of Water Breathing",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While wearing this cap underwater, you can speak its command word as an action to create a bubble of air around your head, allowing you to breathe normally underwater.",
	},
	{
		Name:        "Circlet of Blasting",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While wearing this circlet, you can use an action to cast the scorching ray spell with it. When you make the spell's attacks, you do so with an attack bonus of +5. The circlet can't be used this way again until the next dawn.",
	},
	{
		Name:               "Cloak of Elvenkind",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear this cloak with its hood up, Wisdom (Perception) checks made to see you have disadvantage, and you have advantage on Dexterity (Stealth) checks made to hide. It requires attunement.",
	},
	{
		Name:               "Cloak of Protection",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "You gain a +1 bonus to AC and saving throws while you wear this cloak. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:        "Cloak of the Manta Ray",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While wearing this cloak with its hood up, you can breathe underwater, and you have a swimming speed of 60 feet.",
	},
	{
		Name:        "Decanter of Endless Water",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This stoppered flask sloshes when shaken, as if it contains water. You can use an action to speak one of three command words, causing fresh or salt water to pour out of the flask.",
	},
	{
		Name:        "Deck of Illusions",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This box contains a set of parchment cards. When a card is drawn at random and thrown to the ground, an illusion of the creature depicted forms over the card and remains until dispelled.",
	},
	{
		Name:        "Driftglobe",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This small sphere of thick glass weighs 1 pound. If you are within 60 feet of it, you can speak its command word and cause it to emanate the light or daylight spell.",
	},
	{
		Name:        "Dust of Disappearance",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "Found in a small packet, this powder resembles very fine sand. When you use an action to throw the dust into the air, you and each creature and object within 10 feet of you become invisible for 2d4 minutes.",
	},
	{
		Name:        "Dust of Dryness",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This small packet contains 1d6 + 4 pinches of dust. You can use an action to sprinkle a pinch of it over water, turning up to a 15-foot cube of water into one marble-sized pellet.",
	},
	{
		Name:        "Dust of Sneezing and Choking",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "Found in a small container, this powder resembles very fine sand. When you use an action to throw a handful of the dust into the air, each creature that needs to breathe within 30 feet of you must succeed on a DC 15 Constitution saving throw or become unable to breathe while sneezing uncontrollably.",
	},
	{
		Name:        "Elemental Gem",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This gem contains a mote of elemental energy. When you use an action to break the gem, an elemental is summoned as if you had cast the conjure elemental spell, and the gem's magic is lost.",
	},
	{
		Name:        "Eversmoking Bottle",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "Smoke leaks from the lead-stoppered mouth of this brass bottle. When you use an action to remove the stopper, a cloud of thick smoke pours out in a 60-foot radius from the bottle.",
	},
	{
		Name:               "Eyes of Charming",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "These crystal lenses fit over the eyes. They have 3 charges. While wearing them, you can expend 1 charge as an action to cast the charm person spell (save DC 13) on a humanoid within 30 feet of you. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:        "Eyes of Minute Seeing",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "These crystal lenses fit over the eyes. While wearing them, you can see much better than normal out to a range of 1 foot. You have advantage on Intelligence (Investigation) checks that rely on sight while searching an area or studying an object within that range.",
	},
	{
		Name:               "Eyes of the Eagle",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "These crystal lenses fit over the eyes. While wearing them, you have advantage on Wisdom (Perception) checks that rely on sight. It requires attunement.",
	},
	{
		Name:        "Figurine of Wondrous Power (Silver Raven)",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This silver statuette of a raven can become a raven for up to 12 hours. Once it has been used, it can't be used again until 2 days have passed. While in raven form, the figurine allows you to cast the animal messenger spell on it at will.",
	},
	{
		Name:               "Gauntlets of Ogre Power",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "Your Strength score is 19 while you wear these gauntlets. They have no effect on you if your Strength is already 19 or higher. It requires attunement.",
	},
	{
		Name:        "Gem of Brightness",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This prism has 50 charges. While you are holding it, you can use an action to speak one of three command words to cause light to flare from the gem.",
		Properties:  &ItemProperties{Charges: 50},
	},
	{
		Name:               "Gloves of Missile Snaring",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "These gloves seem to almost meld into your hands when you don them. When a ranged weapon attack hits you while you're wearing them, you can use your reaction to reduce the damage by 1d10 + your Dexterity modifier. It requires attunement.",
	},
	{
		Name:               "Gloves of Swimming and Climbing",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing these gloves, climbing and swimming don't cost you extra movement, and you gain a +5 bonus to Strength (Athletics) checks made to climb or swim. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 5},
	},
	{
		Name:        "Gloves of Thievery",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "These gloves are invisible while worn. While wearing them, you gain a +5 bonus to Dexterity (Sleight of Hand) checks and Dexterity checks made to pick locks.",
		Properties:  &ItemProperties{Bonus: 5},
	},
	{
		Name:        "Goggles of Night",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While wearing these dark lenses, you have darkvision out to a range of 60 feet. If you already have darkvision, wearing the goggles increases its range by 60 feet.",
	},
	{
		Name:               "Hat of Disguise",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this hat, you can use an action to cast the disguise self spell from it at will. The spell ends if the hat is removed. It requires attunement.",
	},
	{
		Name:               "Headband of Intellect",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "Your Intelligence score is 19 while you wear this headband. It has no effect on you if your Intelligence is already 19 or higher. It requires attunement.",
	},
	{
		Name:        "Helm of Comprehending Languages",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While wearing this helm, you can use an action to cast the comprehend languages spell from it at will.",
	},
	{
		Name:               "Helm of Telepathy",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this helm, you can use an action to cast the detect thoughts spell (save DC 13) from it. As long as you maintain concentration on the spell, you can use a bonus action to send a telepathic message to a creature you are focused on. It requires attunement.",
	},
	{
		Name:        "Immovable Rod",
		Rarity:      RarityUncommon,
		Type:        "Rod",
		Description: "This flat iron rod has a button on one end. You can use an action to press the button, which causes the rod to become magically fixed in place. Until you or another creature uses an action to push the button again, the rod doesn't move, even if it is defying gravity.",
	},
	{
		Name:               "Instrument of the Bards (Doss Lute)",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This lute can be used only by someone who attunes to it; it requires attunement by a bard. You can use an action to play it and cast one of several spells stored within it.",
	},
	{
		Name:        "Javelin of Lightning",
		Rarity:      RarityUncommon,
		Type:        "Weapon",
		Description: "This javelin is a magic weapon. When you hurl it and speak its command word, it transforms into a bolt of lightning, forming a line 5 feet wide that extends out from you to a target within 120 feet. Each creature in the line excluding you and the target must make a DC 13 Dexterity saving throw, taking 4d6 lightning damage on a failed save.",
		Properties:  &ItemProperties{Damage: "4d6"},
	},
	{
		Name:        "Keoghtom's Ointment",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This glass jar contains 1d4 + 1 doses of a thick mixture that smells faintly of aloe. As an action, one dose of the ointment can be swallowed or applied to the skin. The creature that receives it regains 2d8 + 2 hit points, ceases to be poisoned, and is cured of any disease.",
		Properties:  &ItemProperties{Damage: "2d8+2", Effects: []string{"healing", "cure disease"}},
	},
	{
		Name:        "Lantern of Revealing",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "While lit, this hooded lantern burns for 6 hours on 1 pint of oil, shedding bright light in a 30-foot radius and dim light for an additional 30 feet. Invisible creatures and objects are visible as long as they are in the lantern's bright light.",
	},
	{
		Name:               "Medallion of Thoughts",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "The medallion has 3 charges. While wearing it, you can use an action and expend 1 charge to cast the detect thoughts spell (save DC 13) from it. The medallion regains 1d3 expended charges daily at dawn. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:        "Mithral Armor",
		Rarity:      RarityUncommon,
		Type:        "Armor",
		Description: "Mithral is a light, flexible metal. A mithral chain shirt or breastplate can be worn under normal clothes. If the armor normally imposes disadvantage on Dexterity (Stealth) checks or has a Strength requirement, the mithral version of the armor doesn't.",
	},
	{
		Name:               "Necklace of Adaptation",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While wearing this necklace, you can breathe normally in any environment, and you have advantage on saving throws made against harmful gases and vapors. It requires attunement.",
	},
	{
		Name:        "Oil of Slipperiness",
		Rarity:      RarityUncommon,
		Type:        "Potion",
		Description: "This sticky black unguent is thick and heavy in the container, but it flows quickly when poured. The oil can cover a Medium or smaller creature. The affected creature gains the effect of a freedom of movement spell for 8 hours.",
	},
	{
		Name:               "Pearl of Power",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "This pearl can be used only by someone who can cast spells; it requires attunement by a spellcaster. While it is on your person, you can use an action to regain one expended spell slot of 3rd level or lower.",
	},
	{
		Name:        "Periapt of Health",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "You are immune to contracting any disease while you wear this pendant. If you are already infected with a disease, the effects of the disease are suppressed while you wear the pendant.",
	},
	{
		Name:               "Periapt of Wound Closure",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear this pendant, you stabilize whenever you are dying at the start of your turn. In addition, whenever you roll a Hit Die to regain hit points, double the number of hit points it restores. It requires attunement.",
	},
	{
		Name:        "Philter of Love",
		Rarity:      RarityUncommon,
		Type:        "Potion",
		Description: "The next time you see a creature within 10 minutes after drinking this philter, you become charmed by that creature for 1 hour.",
	},
	{
		Name:        "Pipes of Haunting",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "You must be proficient with wind instruments to use these pipes. They have 3 charges. You can use an action to play them and expend 1 charge to create an eerie, spellbinding tune. Each creature within 30 feet of you that hears you play must succeed on a DC 15 Wisdom saving throw or become frightened of you for 1 minute.",
		Properties:  &ItemProperties{Charges: 3},
	},
	{
		Name:               "Pipes of the Sewers",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "You must be proficient with wind instruments to use these pipes. While you are attuned to the pipes, ordinary rats and giant rats are indifferent toward you and will not attack you unless you threaten or harm them. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:        "Potion of Fire Breath",
		Rarity:      RarityUncommon,
		Type:        "Potion",
		Description: "After drinking this potion, you can use a bonus action to exhale fire at a target within 30 feet of you. The target must make a DC 13 Dexterity saving throw, taking 4d6 fire damage on a failed save, or half as much damage on a successful one.",
		Properties:  &ItemProperties{Damage: "4d6"},
	},
	{
		Name:               "Winged Boots",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear these boots, you have a flying speed equal to your walking speed. You can use the boots to fly for up to 4 hours, all at once or in several shorter flights. It requires attunement.",
	},
	{
		Name:        "Potion of Water Breathing",
		Rarity:      RarityUncommon,
		Type:        "Potion",
		Description: "You can breathe underwater for 1 hour after drinking this potion. Its cloudy green fluid smells of the sea and has a jellyfish-like bubble floating in it.",
	},
	{
		Name:        "Quiver of Ehlonna",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "Each of the quiver's three compartments connects to an extradimensional space that allows the quiver to hold numerous items while never weighing more than 2 pounds.",
	},
	{
		Name:               "Ring of Jumping",
		Rarity:             RarityUncommon,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you can cast the jump spell from it as a bonus action at will, but can target only yourself when you do so. It requires attunement.",
	},
	{
		Name:               "Ring of Mind Shielding",
		Rarity:             RarityUncommon,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you are immune to magic that allows other creatures to read your thoughts, determine whether you are lying, know if you are telling the truth, or know your creature type. It requires attunement.",
	},
	{
		Name:        "Ring of Swimming",
		Rarity:      RarityUncommon,
		Type:        "Ring",
		Description: "You have a swimming speed of 40 feet while wearing this ring.",
	},
	{
		Name:               "Ring of Warmth",
		Rarity:             RarityUncommon,
		Type:               "Ring",
		RequiresAttunement: true,
		Description:        "While wearing this ring, you have resistance to cold damage. In addition, you and everything you wear and carry are unharmed by temperatures as low as -50 degrees Fahrenheit. It requires attunement.",
	},
	{
		Name:        "Ring of Water Walking",
		Rarity:      RarityUncommon,
		Type:        "Ring",
		Description: "While wearing this ring, you can stand on and move across any liquid surface as if it were solid ground.",
	},
	{
		Name:        "Robe of Useful Items",
		Rarity:      RarityUncommon,
		Type:        "Wondrous item",
		Description: "This robe has cloth patches of various shapes and colors covering it. While wearing the robe, you can use an action to detach one of the patches, causing it to become the object or creature it represents.",
	},
	{
		Name:               "Rod of the Pact Keeper +1",
		Rarity:             RarityUncommon,
		Type:               "Rod",
		RequiresAttunement: true,
		Description:        "This rod can be wielded only by those sworn to an otherworldly patron; it requires attunement by a warlock. While holding it, you gain a +1 bonus to spell attack rolls and to the saving throw DCs of your warlock spells.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Slippers of Spider Climbing",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While you wear these light shoes, you can move up, down, and across vertical surfaces and upside down along ceilings, while leaving your hands free. You have a climbing speed equal to your walking speed. It requires attunement.",
	},
	{
		Name:               "Stone of Good Luck",
		Rarity:             RarityUncommon,
		Type:               "Wondrous item",
		RequiresAttunement: true,
		Description:        "While this polished agate is on your person, you gain a +1 bonus to ability checks and saving throws. It requires attunement.",
		Properties:         &ItemProperties{Bonus: 1},
	},
	{
		Name:               "Trident of Fish Command",
		Rarity:             RarityUncommon,
		Type:               "Weapon",
		RequiresAttunement: true,
		Description:        "This trident is a magic weapon. It has 3 charges. While you carry it, you can use an action and expend 1 charge to cast dominate beast (save DC 15) from it on a beast that has an innate swimming speed. It requires attunement.",
		Properties:         &ItemProperties{Charges: 3},
	},
	{
		Name:               "Wand of the War Mage +1",
		Rarity:             RarityUncommon,
		Type:               "Wand",
		RequiresAttunement: true,
		Description:        "This wand hums with arcane potential; it requires attunement by a spellcaster. While holding it, you gain a +1 bonus to spell attack rolls and ignore half cover when making a spell attack.",
		Properties:         &ItemProperties{Bonus: 1},
	},
}
