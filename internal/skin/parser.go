package skin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseProfile parses a skin profile from YAML data and validates it.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - *Profile: the parsed profile
//   - error: parse or validation error, or nil if successful
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse skin profile: %w", err)
	}
	if err := validateProfile(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProfileFile reads and parses a skin profile from a YAML file.
//
// Parameters:
//   - path: path to the profile file, e.g. "assets/skins/default.yaml"
//
// Returns:
//   - *Profile: the parsed profile
//   - error: read, parse or validation error, or nil if successful
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skin profile '%s': %w", path, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("skin profile '%s': %w", path, err)
	}
	return p, nil
}

// validateProfile checks structural constraints of a parsed profile.
func validateProfile(p *Profile) error {
	if len(p.Buttons) == 0 {
		return fmt.Errorf("skin profile has no buttons")
	}

	seen := make(map[string]bool, len(p.Buttons))
	for i := range p.Buttons {
		b := &p.Buttons[i]
		if b.ID == "" {
			return fmt.Errorf("button #%d has an empty id", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate button id '%s'", b.ID)
		}
		seen[b.ID] = true

		switch b.Shape {
		case ShapeCircle, ShapeRect:
		case "":
			// 缺省为圆形
			b.Shape = ShapeCircle
		default:
			return fmt.Errorf("button '%s' has unknown shape '%s'", b.ID, b.Shape)
		}

		if b.RelativeWidth <= 0 || b.RelativeHeight <= 0 {
			return fmt.Errorf("button '%s' has non-positive default size (%g x %g)",
				b.ID, b.RelativeWidth, b.RelativeHeight)
		}
		if b.RelativeX < 0 || b.RelativeX > 1 || b.RelativeY < 0 || b.RelativeY > 1 {
			return fmt.Errorf("button '%s' default anchor (%g, %g) is outside [0,1]",
				b.ID, b.RelativeX, b.RelativeY)
		}
	}

	// Partner references must resolve to declared buttons.
	for i := range p.Buttons {
		b := &p.Buttons[i]
		if b.Partner != "" && !seen[b.Partner] {
			return fmt.Errorf("button '%s' references unknown partner '%s'", b.ID, b.Partner)
		}
	}

	return nil
}

// DefaultProfile returns the built-in layout used when no profile file is
// given: face buttons on the right, d-pad on the left, start/select centered.
func DefaultProfile() *Profile {
	return &Profile{
		Name: "default",
		Buttons: []ButtonSpec{
			{ID: "a", Label: "A", Shape: ShapeCircle, RelativeX: 0.90, RelativeY: 0.73, RelativeWidth: 0.050, RelativeHeight: 0.119, Enabled: true},
			{ID: "b", Label: "B", Shape: ShapeCircle, RelativeX: 0.95, RelativeY: 0.57, RelativeWidth: 0.050, RelativeHeight: 0.119, Enabled: true},
			{ID: "x", Label: "X", Shape: ShapeCircle, RelativeX: 0.85, RelativeY: 0.57, RelativeWidth: 0.050, RelativeHeight: 0.119, Enabled: true},
			{ID: "y", Label: "Y", Shape: ShapeCircle, RelativeX: 0.90, RelativeY: 0.41, RelativeWidth: 0.050, RelativeHeight: 0.119, Enabled: true},
			{ID: "dpad_up", Label: "▲", Shape: ShapeRect, RelativeX: 0.10, RelativeY: 0.41, RelativeWidth: 0.045, RelativeHeight: 0.107, Enabled: true, Partner: "dpad_left"},
			{ID: "dpad_down", Label: "▼", Shape: ShapeRect, RelativeX: 0.10, RelativeY: 0.73, RelativeWidth: 0.045, RelativeHeight: 0.107, Enabled: true, Partner: "dpad_right"},
			{ID: "dpad_left", Label: "◀", Shape: ShapeRect, RelativeX: 0.05, RelativeY: 0.57, RelativeWidth: 0.045, RelativeHeight: 0.107, Enabled: true, Partner: "dpad_up"},
			{ID: "dpad_right", Label: "▶", Shape: ShapeRect, RelativeX: 0.15, RelativeY: 0.57, RelativeWidth: 0.045, RelativeHeight: 0.107, Enabled: true, Partner: "dpad_down"},
			{ID: "l1", Label: "L1", Shape: ShapeRect, RelativeX: 0.07, RelativeY: 0.12, RelativeWidth: 0.070, RelativeHeight: 0.095, Enabled: true},
			{ID: "r1", Label: "R1", Shape: ShapeRect, RelativeX: 0.93, RelativeY: 0.12, RelativeWidth: 0.070, RelativeHeight: 0.095, Enabled: true},
			{ID: "select", Label: "SE", Shape: ShapeRect, RelativeX: 0.43, RelativeY: 0.92, RelativeWidth: 0.050, RelativeHeight: 0.083, Enabled: true},
			{ID: "start", Label: "ST", Shape: ShapeRect, RelativeX: 0.57, RelativeY: 0.92, RelativeWidth: 0.050, RelativeHeight: 0.083, Enabled: true},
		},
	}
}
