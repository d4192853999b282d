package data

import "strings"

// Alignment describes one of the nine moral and ethical stances
type Alignment struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Philosophy  string `json:"philosophy"`
	Example     string `json:"example"`
}

var alignments = []Alignment{
	{
		Code:        "LG",
		Name:        "Lawful Good",
		Description: "Creatures that act with compassion and honor within a structured code. They combine a commitment to oppose evil with discipline and belief that order helps others.",
		Philosophy:  "Society and order protect all. The needs of the many outweigh the needs of the few, but individuals matter. Honor, truth, and justice guide all actions.",
		Example:     "A paladin sworn to protect the innocent, a judge who upholds fair law, or a knight defending their kingdom with unwavering honor.",
	},
	{
		Code:        "NG",
		Name:        "Neutral Good",
		Description: "Folk who do the best they can to help others according to their needs. They are committed to helping others but don't feel strongly about order or chaos.",
		Philosophy:  "Do good without being bound by law or tradition. Help those in need regardless of society's rules. The right thing matters more than the method.",
		Example:     "A traveling healer who aids everyone regardless of status, a charitable merchant, or a hero who helps villages without seeking reward.",
	},
	{
		Code:        "CG",
		Name:        "Chaotic Good",
		Description: "Creatures that act as their conscience directs, with little regard for what others expect. They make their own way, but are kind and benevolent.",
		Philosophy:  "Freedom is essential to goodness. Rigid rules and hierarchy create oppression. Follow your heart to do what's right, even if it breaks unjust laws.",
		Example:     "A rebel who fights against tyranny, a vigilante protecting the weak from corrupt officials, or a free spirit helping outcasts and misfits.",
	},
	{
		Code:        "LN",
		Name:        "Lawful Neutral",
		Description: "Individuals who act in accordance with law, tradition, or personal codes. They believe in order and organization above all else.",
		Philosophy:  "Order and reliability are paramount. Law provides structure that prevents chaos. Follow the rules without bias toward good or evil.",
		Example:     "A city guard following orders regardless of personal feelings, a monk adhering strictly to monastic discipline, or a judge applying law impartially.",
	},
	{
		Code:        "N",
		Name:        "True Neutral",
		Description: "Those who prefer to steer clear of moral questions and don't take sides, doing what seems best at the time. They believe in balance and nature's way.",
		Philosophy:  "Balance is essential. Extremism in any direction is dangerous. The natural order should be maintained. Personal survival and comfort matter most.",
		Example:     "A druid maintaining nature's balance, a mercenary who works for coin without ideological commitment, or a hermit avoiding societal conflicts.",
	},
	{
		Code:        "CN",
		Name:        "Chaotic Neutral",
		Description: "Creatures that follow their whims, holding personal freedom above all else. They resent authority and restrictions, acting on impulse.",
		Philosophy:  "Total freedom is the only truth. Do what you want, when you want. Authority and rules are chains to be broken. Live in the moment.",
		Example:     "A wandering barbarian following their desires, a thief stealing for thrills rather than need, or an unpredictable trickster causing chaos for fun.",
	},
	{
		Code:        "LE",
		Name:        "Lawful Evil",
		Description: "Creatures that methodically take what they want within the limits of a code of tradition, loyalty, or order. They care about tradition and order, but not freedom or life.",
		Philosophy:  "Power and order should serve the strong. Use laws and systems to control others. Honor agreements, but twist them to your advantage. Domination through structure.",
		Example:     "A tyrannical ruler maintaining iron-fisted control, a corrupt official using their position for gain, or a devil binding souls through contracts.",
	},
	{
		Code:        "NE",
		Name:        "Neutral Evil",
		Description: "Those who do whatever they can get away with, without compassion or qualms. They are purely self-interested and show no remorse.",
		Philosophy:  "Self-interest above all. Take what you want however you can. No loyalty, no code, just personal gain. Use any means necessary to get ahead.",
		Example:     "A ruthless mercenary who kills without hesitation, a crime boss eliminating rivals, or a power-hungry mage sacrificing others for knowledge.",
	},
	{
		Code:        "CE",
		Name:        "Chaotic Evil",
		Description: "Creatures that act with arbitrary violence, spurred by greed, hatred, or bloodlust. They are utterly self-centered and recognize no authority.",
		Philosophy:  "Strength and destruction prove superiority. Take what you want through violence. Rules and mercy are weakness. Chaos and suffering bring power.",
		Example:     "A demon reveling in destruction, a raiding warlord burning villages, or a serial killer acting on dark impulses without pattern or reason.",
	},
}

// Alignments returns all nine alignments. Callers must not modify the
// returned slice.
func Alignments() []Alignment {
	return alignments
}

// AlignmentByCode finds an alignment by its two-letter code,
// case-insensitive. Returns nil when no alignment matches.
func AlignmentByCode(code string) *Alignment {
	upper := strings.ToUpper(code)
	for i := range alignments {
		if alignments[i].Code == upper {
			return &alignments[i]
		}
	}
	return nil
}

// AlignmentByName finds an alignment by full name, case-insensitive.
// Returns nil when no alignment matches.
func AlignmentByName(name string) *Alignment {
	lower := strings.ToLower(name)
	for i := range alignments {
		if strings.ToLower(alignments[i].Name) == lower {
			return &alignments[i]
		}
	}
	return nil
}

// AlignmentCodes returns all alignment codes in definition order
func AlignmentCodes() []string {
	codes := make([]string, len(alignments))
	for i, a := range alignments {
		codes[i] = a.Code
	}
	return codes
}

// IsGoodAligned reports whether the code is on the good axis
func IsGoodAligned(code string) bool {
	switch strings.ToUpper(code) {
	case "LG", "NG", "CG":
		return true
	}
	return false
}

// IsEvilAligned reports whether the code is on the evil axis
func IsEvilAligned(code string) bool {
	switch strings.ToUpper(code) {
	case "LE", "NE", "CE":
		return true
	}
	return false
}

// IsLawful reports whether the code is on the lawful axis
func IsLawful(code string) bool {
	switch strings.ToUpper(code) {
	case "LG", "LN", "LE":
		return true
	}
	return false
}

// IsChaotic reports whether the code is on the chaotic axis
func IsChaotic(code string) bool {
	switch strings.ToUpper(code) {
	case "CG", "CN", "CE":
		return true
	}
	return false
}
