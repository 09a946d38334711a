// Package theme holds the named color palettes the face, the control panel
// and the page chrome are drawn with.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/copilot-face/pkg/face"
)

// Theme defines every color used on screen. All values are "#rrggbb".
type Theme struct {
	Name string

	// Page
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Cards
	Card   string // card fill behind the face and the panel
	Border string

	// Face
	Ring   string // thin ring around each eye
	Sclera string
	Pupil  string
	Lid    string
	Wave   string

	// Control panel
	Button           string
	ButtonText       string
	ButtonActive     string
	ButtonActiveText string
	BadgeOn          string // dot on the state badge while auto cycle runs
	BadgeOff         string

	// Help line
	HelpKey  string
	HelpDesc string
}

// FacePalette returns the subset of t the face renderer needs. The eye
// background is the card fill so the eyes sit on the card.
func (t Theme) FacePalette() face.Palette {
	return face.Palette{
		Background: t.Card,
		Ring:       t.Ring,
		Sclera:     t.Sclera,
		Pupil:      t.Pupil,
		Lid:        t.Lid,
		Wave:       t.Wave,
		Dim:        t.Dim,
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to "default" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return registry["default"]
}

// Lookup is Get without the fallback.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates t and adds it to the registry, replacing any theme
// with the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
