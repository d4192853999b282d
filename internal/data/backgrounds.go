package data

import "strings"

// BackgroundFeature is the named special benefit each background grants
type BackgroundFeature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Background describes a character background: skill proficiencies, tool
// proficiencies, bonus languages, and its feature.
type Background struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	SkillBonuses      []string          `json:"skillBonuses"`
	ToolProficiencies []string          `json:"toolProficiencies,omitempty"`
	Languages         int               `json:"languages,omitempty"`
	OtherBenefits     []string          `json:"otherBenefits"`
	Feature           BackgroundFeature `json:"feature"`
}

var backgrounds = []Background{
	{
		Name:         "Acolyte",
		Description:  "You have spent your life in the service of a temple to a specific god or pantheon of gods. You act as an intermediary between the realm of the holy and the mortal world, performing sacred rites and offering sacrifices to conduct worshippers into the presence of the divine.",
		SkillBonuses: []string{"Insight", "Religion"},
		Languages:    2,
		OtherBenefits: []string{
			"Equipment: Holy symbol, prayer book or wheel, 5 sticks of incense, vestments, common clothes, belt pouch with 15 gp",
		},
		Feature: BackgroundFeature{
			Name:        "Shelter of the Faithful",
			Description: "As an acolyte, you command the respect of those who share your faith, and you can perform religious ceremonies. You and your companions can expect free healing and care at temples, shrines, and other religious establishments of your faith. Those who share your religion will support you (but only you) at a modest lifestyle.",
		},
	},
	{
		Name:              "Criminal",
		Description:       "You are an experienced criminal with a history of breaking the law. You have spent a lot of time among other criminals and still have contacts within the criminal underworld. You're far closer than most people to the world of murder, theft, and violence that pervades the underbelly of civilization.",
		SkillBonuses:      []string{"Deception", "Stealth"},
		ToolProficiencies: []string{"Thieves' tools", "One type of gaming set"},
		OtherBenefits: []string{
			"Equipment: Crowbar, dark common clothes with hood, belt pouch with 15 gp",
			"Criminal Specialty: Choose or roll specialty (blackmailer, burglar, fence, highway robber, hired killer, pickpocket, smuggler)",
		},
		Feature: BackgroundFeature{
			Name:        "Criminal Contact",
			Description: "You have a reliable and trustworthy contact who acts as your liaison to a network of other criminals. You know how to get messages to and from your contact, even over great distances. You know local messengers, corrupt caravan masters, and seedy sailors who can deliver messages for you.",
		},
	},
	{
		Name:              "Folk Hero",
		Description:       "You come from a humble social rank, but you are destined for so much more. Already the people of your home village regard you as their champion, and your destiny calls you to stand against the tyrants and monsters that threaten the common folk everywhere.",
		SkillBonuses:      []string{"Animal Handling", "Survival"},
		ToolProficiencies: []string{"One type of artisan's tools", "Vehicles (land)"},
		OtherBenefits: []string{
			"Equipment: Set of artisan's tools, shovel, iron pot, common clothes, belt pouch with 10 gp",
			"Defining Event: Roll or choose how you became a folk hero",
		},
		Feature: BackgroundFeature{
			Name:        "Rustic Hospitality",
			Description: "Since you come from the ranks of the common folk, you fit in among them with ease. You can find a place to hide, rest, or recuperate among other commoners, unless you have shown yourself to be a danger to them. They will shield you from the law or anyone searching for you, though they will not risk their lives for you.",
		},
	},
	{
		Name:              "Noble",
		Description:       "You understand wealth, power, and privilege. You carry a noble title, and your family owns land, collects taxes, and wields significant political influence. You might be a pampered aristocrat unfamiliar with work or discomfort, a former merchant just elevated to the nobility, or a disinherited scoundrel with a chip on your shoulder.",
		SkillBonuses:      []string{"History", "Persuasion"},
		ToolProficiencies: []string{"One type of gaming set"},
		Languages:         1,
		OtherBenefits: []string{
			"Equipment: Fine clothes, signet ring, scroll of pedigree, purse with 25 gp",
			"Position of Privilege: Hereditary title (discuss with DM)",
		},
		Feature: BackgroundFeature{
			Name:        "Position of Privilege",
			Description: "Thanks to your noble birth, people are inclined to think the best of you. You are welcome in high society, and people assume you have the right to be wherever you are. The common folk make every effort to accommodate you and avoid your displeasure, and other nobles treat you as a member of the same social sphere.",
		},
	},
	{
		Name:         "Sage",
		Description:  "You spent years learning the lore of the multiverse. You scoured manuscripts, studied scrolls, and listened to the greatest experts on subjects that interest you. Your efforts have made you a master in your field of study.",
		SkillBonuses: []string{"Arcana", "History"},
		Languages:    2,
		OtherBenefits: []string{
			"Equipment: Bottle of black ink, quill, small knife, letter from dead colleague with unanswered question, common clothes, belt pouch with 10 gp",
			"Specialty: Choose field of study (alchemist, astronomer, researcher, wizard's apprentice, etc.)",
		},
		Feature: BackgroundFeature{
			Name:        "Researcher",
			Description: "When you attempt to learn or recall a piece of lore, if you do not know that information, you often know where and from whom you can obtain it. Usually, this comes from a library, scriptorium, university, or sage. Your DM might rule that the knowledge you seek is secreted away in an almost inaccessible place, or that it simply cannot be found.",
		},
	},
	{
		Name:              "Soldier",
		Description:       "War has been your life for as long as you care to remember. You trained as a youth, studied the use of weapons and armor, learned basic survival techniques, including how to stay alive on the battlefield. You might have been part of a national army or a mercenary company, or perhaps a member of a local militia who rose to prominence during a recent war.",
		SkillBonuses:      []string{"Athletics", "Intimidation"},
		ToolProficiencies: []string{"One type of gaming set", "Vehicles (land)"},
		OtherBenefits: []string{
			"Equipment: Insignia of rank, trophy from fallen enemy, bone dice or deck of cards, common clothes, belt pouch with 10 gp",
			"Specialty: Officer, scout, infantry, cavalry, healer, quartermaster, standard bearer, support staff",
		},
		Feature: BackgroundFeature{
			Name:        "Military Rank",
			Description: "You have a military rank from your career as a soldier. Soldiers loyal to your former military organization still recognize your authority and influence, and they defer to you if they are of lower rank. You can invoke your rank to exert influence over other soldiers and requisition simple equipment or horses. You can also usually gain access to friendly military encampments and fortresses where your rank is recognized.",
		},
	},
}

// Backgrounds returns all character backgrounds. Callers must not modify
// the returned slice.
func Backgrounds() []Background {
	return backgrounds
}

// BackgroundByName finds a background by name, case-insensitive. Returns
// nil when no background matches.
func BackgroundByName(name string) *Background {
	lower := strings.ToLower(name)
	for i := range backgrounds {
		if strings.ToLower(backgrounds[i].Name) == lower {
			return &backgrounds[i]
		}
	}
	return nil
}

// BackgroundNames returns all background names in definition order
func BackgroundNames() []string {
	names := make([]string, len(backgrounds))
	for i, b := range backgrounds {
		names[i] = b.Name
	}
	return names
}

// BackgroundGrantsSkill reports whether the named background grants
// proficiency in the named skill. Unknown backgrounds report false.
func BackgroundGrantsSkill(backgroundName, skillName string) bool {
	bg := BackgroundByName(backgroundName)
	if bg == nil {
		return false
	}
	lower := strings.ToLower(skillName)
	for _, skill := range bg.SkillBonuses {
		if strings.ToLower(skill) == lower {
			return true
		}
	}
	return false
}
