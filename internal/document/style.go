package document

// Palette holds the two colors every renderer derives its scheme from.
// Values are hex strings of the form #RRGGBB.
type Palette struct {
	Primary string `json:"primary_color"`
	Text    string `json:"text_color"`
}

// FontSet groups the font family with the point sizes for each text role.
type FontSet struct {
	Family      string  `json:"font_family"`
	SizeTitle   float64 `json:"size_title"`
	SizeHeading float64 `json:"size_heading"`
	SizeBody    float64 `json:"size_body"`
	SizeFooter  float64 `json:"size_footer"`
}

// Margins are page margins in millimetres.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Style is the full set of visual parameters a renderer works from. It is
// a plain comparable value so resolved styles can be memoized by key;
// callers patch copies instead of mutating a shared instance.
type Style struct {
	Colors  Palette `json:"colors"`
	Fonts   FontSet `json:"fonts"`
	Margins Margins `json:"margins"`
}

// DefaultStyle is the institutional look used when no override is given.
func DefaultStyle() Style {
	return Style{
		Colors: Palette{
			Primary: "#1A73E8",
			Text:    "#333333",
		},
		Fonts: FontSet{
			Family:      "Helvetica",
			SizeTitle:   18,
			SizeHeading: 12,
			SizeBody:    10,
			SizeFooter:  9,
		},
		Margins: Margins{Top: 20, Bottom: 20, Left: 20, Right: 20},
	}
}

// ProfessionalStyle is a serif preset for formal print documents.
func ProfessionalStyle() Style {
	return Style{
		Colors: Palette{
			Primary: "#1F3864",
			Text:    "#222222",
		},
		Fonts: FontSet{
			Family:      "Times-Roman",
			SizeTitle:   18,
			SizeHeading: 12,
			SizeBody:    10,
			SizeFooter:  9,
		},
		Margins: Margins{Top: 20, Bottom: 20, Left: 20, Right: 20},
	}
}
