package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name     string         `toml:"name"`
	Base     thTOMLBase     `toml:"base"`
	Card     thTOMLCard     `toml:"card"`
	Face     thTOMLFace     `toml:"face"`
	Controls thTOMLControls `toml:"controls"`
	Help     thTOMLHelp     `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLCard struct {
	Fill   string `toml:"fill"`
	Border string `toml:"border"`
}

type thTOMLFace struct {
	Ring   string `toml:"ring"`
	Sclera string `toml:"sclera"`
	Pupil  string `toml:"pupil"`
	Lid    string `toml:"lid"`
	Wave   string `toml:"wave"`
}

type thTOMLControls struct {
	Button           string `toml:"button"`
	ButtonText       string `toml:"button_text"`
	ButtonActive     string `toml:"button_active"`
	ButtonActiveText string `toml:"button_active_text"`
	BadgeOn          string `toml:"badge_on"`
	BadgeOff         string `toml:"badge_off"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Card:   tt.Card.Fill,
		Border: tt.Card.Border,

		Ring:   tt.Face.Ring,
		Sclera: tt.Face.Sclera,
		Pupil:  tt.Face.Pupil,
		Lid:    tt.Face.Lid,
		Wave:   tt.Face.Wave,

		Button:           tt.Controls.Button,
		ButtonText:       tt.Controls.ButtonText,
		ButtonActive:     tt.Controls.ButtonActive,
		ButtonActiveText: tt.Controls.ButtonActiveText,
		BadgeOn:          tt.Controls.BadgeOn,
		BadgeOff:         tt.Controls.BadgeOff,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme file and registers it. The returned theme is
// also available through Get under its own name.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %s: %w", path, err)
	}
	thRegister(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Card: thTOMLCard{Fill: t.Card, Border: t.Border},
		Face: thTOMLFace{
			Ring:   t.Ring,
			Sclera: t.Sclera,
			Pupil:  t.Pupil,
			Lid:    t.Lid,
			Wave:   t.Wave,
		},
		Controls: thTOMLControls{
			Button:           t.Button,
			ButtonText:       t.ButtonText,
			ButtonActive:     t.ButtonActive,
			ButtonActiveText: t.ButtonActiveText,
			BadgeOn:          t.BadgeOn,
			BadgeOff:         t.BadgeOff,
		},
		Help: thTOMLHelp{Key: t.HelpKey, Desc: t.HelpDesc},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

type thField struct {
	name  string
	value *string
}

// thColorFields lists every color of t in a fixed order, by TOML key.
func thColorFields(t *Theme) []thField {
	return []thField{
		{"base.background", &t.Background},
		{"base.foreground", &t.Foreground},
		{"base.dim", &t.Dim},
		{"base.accent", &t.Accent},
		{"card.fill", &t.Card},
		{"card.border", &t.Border},
		{"face.ring", &t.Ring},
		{"face.sclera", &t.Sclera},
		{"face.pupil", &t.Pupil},
		{"face.lid", &t.Lid},
		{"face.wave", &t.Wave},
		{"controls.button", &t.Button},
		{"controls.button_text", &t.ButtonText},
		{"controls.button_active", &t.ButtonActive},
		{"controls.button_active_text", &t.ButtonActiveText},
		{"controls.badge_on", &t.BadgeOn},
		{"controls.badge_off", &t.BadgeOff},
		{"help.key", &t.HelpKey},
		{"help.desc", &t.HelpDesc},
	}
}

// thValidateTheme checks that the name and all color fields are present and
// that every color is "#rrggbb".
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range thColorFields(&t) {
		if *f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.name)
		}
		if !thHexColorRegex.MatchString(*f.value) {
			return fmt.Errorf("theme: field %q has invalid hex color %q", f.name, *f.value)
		}
	}
	return nil
}
