package theme

import (
	"github.com/muesli/termenv"
)

// Adapt snaps every color of t to what the terminal profile can show. On
// ANSI256 and ANSI profiles each color is replaced by the hex value of the
// nearest palette entry, so the theme stays in "#rrggbb" form and blends
// computed from it land on colors the terminal really draws. TrueColor and
// Ascii return t unchanged.
func Adapt(t Theme, p termenv.Profile) Theme {
	if p == termenv.TrueColor || p == termenv.Ascii {
		return t
	}
	for _, f := range thColorFields(&t) {
		*f.value = thSnap(*f.value, p)
	}
	return t
}

// thSnap converts one hex color to the hex value of the nearest color in
// profile p. Unparseable colors are returned unchanged.
func thSnap(hex string, p termenv.Profile) string {
	if !thHexColorRegex.MatchString(hex) {
		return hex
	}
	c := p.Color(hex)
	if c == nil {
		return hex
	}
	if _, ok := c.(termenv.RGBColor); ok {
		return hex
	}
	return termenv.ConvertToRGB(c).Hex()
}

// DetectProfile returns the color profile of stdout, or Ascii when
// noColor is set.
func DetectProfile(noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
