// Package skin parses controller skin profiles.
//
// A skin profile is a YAML document describing the buttons of a virtual
// controller layout: their identifiers, label glyphs, hit-area shape and
// default relative geometry. User edits (position, scale, alpha) are stored
// separately by pkg/config; the profile only carries factory defaults.
package skin

// Shape identifies the hit-area geometry of a button variant.
type Shape string

const (
	// ShapeCircle is a circular hit area inscribed in the button bounds.
	ShapeCircle Shape = "circle"
	// ShapeRect is a rectangular hit area equal to the button bounds.
	ShapeRect Shape = "rect"
)

// ButtonSpec describes one button of a skin profile.
type ButtonSpec struct {
	// ID is the unique button identifier, e.g. "a", "dpad_up", "l1".
	ID string `yaml:"id"`
	// Label is the short glyph drawn centered on the button, e.g. "A", "L1".
	Label string `yaml:"label"`
	// Shape selects the hit-area geometry ("circle" or "rect").
	Shape Shape `yaml:"shape"`
	// RelativeX, RelativeY is the default anchor position in normalized
	// layout space.
	RelativeX float64 `yaml:"relativeX"`
	RelativeY float64 `yaml:"relativeY"`
	// RelativeWidth, RelativeHeight is the default size in normalized layout
	// space at scale factor 1.
	RelativeWidth  float64 `yaml:"relativeWidth"`
	RelativeHeight float64 `yaml:"relativeHeight"`
	// Enabled is the default enabled state.
	Enabled bool `yaml:"enabled"`
	// Partner optionally names another button that shares combined/diagonal
	// presses with this one (e.g. two d-pad directions).
	Partner string `yaml:"partner,omitempty"`
}

// Profile is a complete skin profile.
type Profile struct {
	// Name is the human-readable profile name.
	Name string `yaml:"name"`
	// Buttons lists the buttons of the layout.
	Buttons []ButtonSpec `yaml:"buttons"`
}

// Button returns the spec with the given ID, or nil if absent.
func (p *Profile) Button(id string) *ButtonSpec {
	for i := range p.Buttons {
		if p.Buttons[i].ID == id {
			return &p.Buttons[i]
		}
	}
	return nil
}
