package skin

import (
	"strings"
	"testing"
)

const validProfileYAML = `
name: test
buttons:
  - id: a
    label: A
    shape: circle
    relativeX: 0.9
    relativeY: 0.7
    relativeWidth: 0.05
    relativeHeight: 0.12
    enabled: true
  - id: dpad_up
    label: "▲"
    shape: rect
    relativeX: 0.1
    relativeY: 0.4
    relativeWidth: 0.045
    relativeHeight: 0.1
    enabled: true
    partner: a
`

// TestParseProfile tests parsing a valid profile.
func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(validProfileYAML))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if p.Name != "test" {
		t.Errorf("Name = %q, want %q", p.Name, "test")
	}
	if len(p.Buttons) != 2 {
		t.Fatalf("len(Buttons) = %d, want 2", len(p.Buttons))
	}

	a := p.Button("a")
	if a == nil {
		t.Fatal("Button(a) returned nil")
	}
	if a.Shape != ShapeCircle {
		t.Errorf("a.Shape = %q, want %q", a.Shape, ShapeCircle)
	}
	if a.RelativeX != 0.9 || a.RelativeY != 0.7 {
		t.Errorf("a anchor = (%v, %v), want (0.9, 0.7)", a.RelativeX, a.RelativeY)
	}

	up := p.Button("dpad_up")
	if up == nil {
		t.Fatal("Button(dpad_up) returned nil")
	}
	if up.Partner != "a" {
		t.Errorf("dpad_up.Partner = %q, want %q", up.Partner, "a")
	}
}

// TestParseProfileValidation tests rejection of malformed profiles.
func TestParseProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "No buttons",
			yaml:    "name: empty\nbuttons: []",
			errPart: "no buttons",
		},
		{
			name: "Empty id",
			yaml: `
buttons:
  - label: A
    relativeX: 0.5
    relativeY: 0.5
    relativeWidth: 0.05
    relativeHeight: 0.1
`,
			errPart: "empty id",
		},
		{
			name: "Duplicate id",
			yaml: `
buttons:
  - {id: a, relativeX: 0.5, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1}
  - {id: a, relativeX: 0.6, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1}
`,
			errPart: "duplicate button id",
		},
		{
			name: "Unknown shape",
			yaml: `
buttons:
  - {id: a, shape: hexagon, relativeX: 0.5, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1}
`,
			errPart: "unknown shape",
		},
		{
			name: "Non-positive size",
			yaml: `
buttons:
  - {id: a, relativeX: 0.5, relativeY: 0.5, relativeWidth: 0, relativeHeight: 0.1}
`,
			errPart: "non-positive default size",
		},
		{
			name: "Anchor outside range",
			yaml: `
buttons:
  - {id: a, relativeX: 1.5, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1}
`,
			errPart: "outside [0,1]",
		},
		{
			name: "Unknown partner",
			yaml: `
buttons:
  - {id: a, relativeX: 0.5, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1, partner: ghost}
`,
			errPart: "unknown partner",
		},
		{
			name:    "Invalid YAML",
			yaml:    "buttons: [unclosed",
			errPart: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseProfile() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errPart)
			}
		})
	}
}

// TestParseProfileDefaultShape tests that a missing shape defaults to circle.
func TestParseProfileDefaultShape(t *testing.T) {
	p, err := ParseProfile([]byte(`
buttons:
  - {id: a, relativeX: 0.5, relativeY: 0.5, relativeWidth: 0.05, relativeHeight: 0.1}
`))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}
	if got := p.Button("a").Shape; got != ShapeCircle {
		t.Errorf("default shape = %q, want %q", got, ShapeCircle)
	}
}

// TestDefaultProfile tests that the built-in profile is itself valid.
func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if err := validateProfile(p); err != nil {
		t.Fatalf("DefaultProfile() is invalid: %v", err)
	}
	if p.Button("a") == nil || p.Button("dpad_up") == nil {
		t.Error("DefaultProfile() is missing expected buttons")
	}

	// D-pad directions pair up for diagonal presses.
	if got := p.Button("dpad_up").Partner; got == "" {
		t.Error("dpad_up has no partner")
	}
}
