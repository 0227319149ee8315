package export

import (
	"fmt"
	"strconv"
	"strings"

	"internship-portal/pdf-export/pdf-export-backend/internal/document"
)

// DefaultStyleCacheCapacity bounds how many resolved styles the PDF
// renderer keeps memoized.
const DefaultStyleCacheCapacity = 16

// rgb holds one color as 0-255 channels.
type rgb struct {
	R, G, B int
}

var (
	colorBlack      = rgb{0, 0, 0}
	colorGrey       = rgb{128, 128, 128}
	colorLightGrey  = rgb{211, 211, 211}
	colorWhiteSmoke = rgb{245, 245, 245}
)

// parseHexColor converts a #RRGGBB string to channels.
func parseHexColor(s string) (rgb, error) {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("invalid hex color %q", s)
	}
	return rgb{R: int(v >> 16), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}, nil
}

// fontSpec is one text role resolved to gofpdf font arguments.
type fontSpec struct {
	Family string
	Style  string
	Size   float64
}

// resolvedStyle is a document.Style converted to the units and names the
// PDF renderer consumes. It is a plain value so it can live in the
// memoization cache.
type resolvedStyle struct {
	Primary rgb
	Text    rgb

	Title    fontSpec
	Heading  fontSpec
	Body     fontSpec
	Subtitle fontSpec
	Footer   fontSpec

	Margins document.Margins
}

// coreFontName maps the wire font families onto the PDF core fonts.
func coreFontName(family string) string {
	switch strings.ToLower(family) {
	case "times-roman", "times":
		return "Times"
	case "courier":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// resolveStyle computes the render-ready form of a style. Color parsing
// fails open to the default palette so resolution stays total and can be
// memoized without an error channel.
func resolveStyle(style document.Style) resolvedStyle {
	def := document.DefaultStyle()

	primary, err := parseHexColor(style.Colors.Primary)
	if err != nil {
		primary, _ = parseHexColor(def.Colors.Primary)
	}
	text, err := parseHexColor(style.Colors.Text)
	if err != nil {
		text, _ = parseHexColor(def.Colors.Text)
	}

	family := coreFontName(style.Fonts.Family)
	return resolvedStyle{
		Primary:  primary,
		Text:     text,
		Title:    fontSpec{Family: family, Style: "B", Size: style.Fonts.SizeTitle},
		Heading:  fontSpec{Family: family, Style: "B", Size: style.Fonts.SizeHeading},
		Body:     fontSpec{Family: family, Size: style.Fonts.SizeBody},
		Subtitle: fontSpec{Family: family, Size: style.Fonts.SizeBody},
		Footer:   fontSpec{Family: family, Size: style.Fonts.SizeFooter},
		Margins:  style.Margins,
	}
}
