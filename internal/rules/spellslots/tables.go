package spellslots

// PHB spell slot tables, indexed by character level (1-20).

var fullCasterSlots = map[int]SpellSlots{
	1:  {Level1: 2},
	2:  {Level1: 3},
	3:  {Level1: 4, Level2: 2},
	4:  {Level1: 4, Level2: 3},
	5:  {Level1: 4, Level2: 3, Level3: 2},
	6:  {Level1: 4, Level2: 3, Level3: 3},
	7:  {Level1: 4, Level2: 3, Level3: 3, Level4: 1},
	8:  {Level1: 4, Level2: 3, Level3: 3, Level4: 2},
	9:  {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 1},
	10: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2},
	11: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1},
	12: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1},
	13: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1, Level7: 1},
	14: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1, Level7: 1},
	15: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1, Level7: 1, Level8: 1},
	16: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1, Level7: 1, Level8: 1},
	17: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2, Level6: 1, Level7: 1, Level8: 1, Level9: 1},
	18: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 3, Level6: 1, Level7: 1, Level8: 1, Level9: 1},
	19: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 3, Level6: 2, Level7: 1, Level8: 1, Level9: 1},
	20: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 3, Level6: 2, Level7: 2, Level8: 1, Level9: 1},
}

var halfCasterSlots = map[int]SpellSlots{
	1:  {},
	2:  {Level1: 2},
	3:  {Level1: 3},
	4:  {Level1: 3},
	5:  {Level1: 4, Level2: 2},
	6:  {Level1: 4, Level2: 2},
	7:  {Level1: 4, Level2: 3},
	8:  {Level1: 4, Level2: 3},
	9:  {Level1: 4, Level2: 3, Level3: 2},
	10: {Level1: 4, Level2: 3, Level3: 2},
	11: {Level1: 4, Level2: 3, Level3: 3},
	12: {Level1: 4, Level2: 3, Level3: 3},
	13: {Level1: 4, Level2: 3, Level3: 3, Level4: 1},
	14: {Level1: 4, Level2: 3, Level3: 3, Level4: 1},
	15: {Level1: 4, Level2: 3, Level3: 3, Level4: 2},
	16: {Level1: 4, Level2: 3, Level3: 3, Level4: 2},
	17: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 1},
	18: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 1},
	19: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2},
	20: {Level1: 4, Level2: 3, Level3: 3, Level4: 3, Level5: 2},
}

var thirdCasterSlots = map[int]SpellSlots{
	1:  {},
	2:  {},
	3:  {Level1: 2},
	4:  {Level1: 3},
	5:  {Level1: 3},
	6:  {Level1: 3},
	7:  {Level1: 4, Level2: 2},
	8:  {Level1: 4, Level2: 2},
	9:  {Level1: 4, Level2: 2},
	10: {Level1: 4, Level2: 3},
	11: {Level1: 4, Level2: 3},
	12: {Level1: 4, Level2: 3},
	13: {Level1: 4, Level2: 3, Level3: 2},
	14: {Level1: 4, Level2: 3, Level3: 2},
	15: {Level1: 4, Level2: 3, Level3: 2},
	16: {Level1: 4, Level2: 3, Level3: 3},
	17: {Level1: 4, Level2: 3, Level3: 3},
	18: {Level1: 4, Level2: 3, Level3: 3},
	19: {Level1: 4, Level2: 3, Level3: 3, Level4: 1},
	20: {Level1: 4, Level2: 3, Level3: 3, Level4: 1},
}

var warlockSlots = map[int]WarlockSlots{
	1:  {Slots: 1, SlotLevel: 1},
	2:  {Slots: 2, SlotLevel: 1},
	3:  {Slots: 2, SlotLevel: 2},
	4:  {Slots: 2, SlotLevel: 2},
	5:  {Slots: 2, SlotLevel: 3},
	6:  {Slots: 2, SlotLevel: 3},
	7:  {Slots: 2, SlotLevel: 4},
	8:  {Slots: 2, SlotLevel: 4},
	9:  {Slots: 2, SlotLevel: 5},
	10: {Slots: 2, SlotLevel: 5},
	11: {Slots: 3, SlotLevel: 5},
	12: {Slots: 3, SlotLevel: 5},
	13: {Slots: 3, SlotLevel: 5},
	14: {Slots: 3, SlotLevel: 5},
	15: {Slots: 3, SlotLevel: 5},
	16: {Slots: 3, SlotLevel: 5},
	17: {Slots: 4, SlotLevel: 5},
	18: {Slots: 4, SlotLevel: 5},
	19: {Slots: 4, SlotLevel: 5},
	20: {Slots: 4, SlotLevel: 5},
}

var cantripsKnown = map[string]map[int]int{
	ClassBard: {
		1: 2, 2: 2, 3: 2, 4: 3, 5: 3, 6: 3, 7: 3, 8: 3, 9: 3, 10: 4,
		11: 4, 12: 4, 13: 4, 14: 4, 15: 4, 16: 4, 17: 4, 18: 4, 19: 4, 20: 4,
	},
	ClassCleric: {
		1: 3, 2: 3, 3: 3, 4: 4, 5: 4, 6: 4, 7: 4, 8: 4, 9: 4, 10: 5,
		11: 5, 12: 5, 13: 5, 14: 5, 15: 5, 16: 5, 17: 5, 18: 5, 19: 5, 20: 5,
	},
	ClassDruid: {
		1: 2, 2: 2, 3: 2, 4: 3, 5: 3, 6: 3, 7: 3, 8: 3, 9: 3, 10: 4,
		11: 4, 12: 4, 13: 4, 14: 4, 15: 4, 16: 4, 17: 4, 18: 4, 19: 4, 20: 4,
	},
	ClassSorcerer: {
		1: 4, 2: 4, 3: 4, 4: 5, 5: 5, 6: 5, 7: 5, 8: 5, 9: 5, 10: 6,
		11: 6, 12: 6, 13: 6, 14: 6, 15: 6, 16: 6, 17: 6, 18: 6, 19: 6, 20: 6,
	},
	ClassWizard: {
		1: 3, 2: 3, 3: 3, 4: 4, 5: 4, 6: 4, 7: 4, 8: 4, 9: 4, 10: 5,
		11: 5, 12: 5, 13: 5, 14: 5, 15: 5, 16: 5, 17: 5, 18: 5, 19: 5, 20: 5,
	},
	ClassEldritchKnight: {
		3: 2, 4: 2, 5: 2, 6: 2, 7: 2, 8: 2, 9: 2, 10: 3,
		11: 3, 12: 3, 13: 3, 14: 3, 15: 3, 16: 3, 17: 3, 18: 3, 19: 3, 20: 3,
	},
	ClassArcaneTrickster: {
		3: 3, 4: 3, 5: 3, 6: 3, 7: 3, 8: 3, 9: 3, 10: 4,
		11: 4, 12: 4, 13: 4, 14: 4, 15: 4, 16: 4, 17: 4, 18: 4, 19: 4, 20: 4,
	},
	ClassWarlock: {
		1: 2, 2: 2, 3: 2, 4: 3, 5: 3, 6: 3, 7: 3, 8: 3, 9: 3, 10: 4,
		11: 4, 12: 4, 13: 4, 14: 4, 15: 4, 16: 4, 17: 4, 18: 4, 19: 4, 20: 4,
	},
	// Paladins and Rangers do not get cantrips
	ClassPaladin: {},
	ClassRanger:  {},
}

// spellsKnown covers classes that learn a fixed list instead of preparing
// from the full class list. Clerics, Druids, Wizards, and Paladins prepare.
var spellsKnown = map[string]map[int]int{
	ClassBard: {
		1: 4, 2: 5, 3: 6, 4: 7, 5: 8, 6: 9, 7: 10, 8: 11, 9: 12, 10: 14,
		11: 15, 12: 15, 13: 16, 14: 18, 15: 19, 16: 19, 17: 20, 18: 22, 19: 22, 20: 22,
	},
	ClassSorcerer: {
		1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 10, 10: 11,
		11: 12, 12: 12, 13: 13, 14: 13, 15: 14, 16: 14, 17: 15, 18: 15, 19: 15, 20: 15,
	},
	ClassRanger: {
		2: 2, 3: 3, 4: 3, 5: 4, 6: 4, 7: 5, 8: 5, 9: 6, 10: 6,
		11: 7, 12: 7, 13: 8, 14: 8, 15: 9, 16: 9, 17: 10, 18: 10, 19: 11, 20: 11,
	},
	ClassEldritchKnight: {
		3: 3, 4: 4, 5: 4, 6: 4, 7: 5, 8: 6, 9: 6, 10: 7,
		11: 8, 12: 8, 13: 9, 14: 10, 15: 10, 16: 11, 17: 11, 18: 11, 19: 12, 20: 13,
	},
	ClassArcaneTrickster: {
		3: 3, 4: 4, 5: 4, 6: 4, 7: 5, 8: 6, 9: 6, 10: 7,
		11: 8, 12: 8, 13: 9, 14: 10, 15: 10, 16: 11, 17: 11, 18: 11, 19: 12, 20: 13,
	},
	ClassWarlock: {
		1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 6: 7, 7: 8, 8: 9, 9: 10, 10: 10,
		11: 11, 12: 11, 13: 12, 14: 12, 15: 13, 16: 13, 17: 14, 18: 14, 19: 15, 20: 15,
	},
}
