package overlay

import (
	"image/color"
	"testing"
)

// TestRenderAlpha 测试按下状态的不透明度计算
func TestRenderAlpha(t *testing.T) {
	tests := []struct {
		name        string
		configAlpha int
		pressed     bool
		expected    int
	}{
		{"Full alpha not pressed", 255, false, 255},
		{"Full alpha pressed", 255, true, 125},
		{"Low alpha pressed clamps to floor", 100, true, 30},
		{"Floor alpha pressed", 30, true, 30},
		{"Zero alpha pressed clamps to floor", 0, true, 30},
		{"Mid alpha not pressed", 180, false, 180},
		{"Mid alpha pressed", 180, true, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderAlpha(tt.configAlpha, tt.pressed)
			if got != tt.expected {
				t.Errorf("renderAlpha(%d, %v) = %d, want %d",
					tt.configAlpha, tt.pressed, got, tt.expected)
			}
		})
	}
}

// TestLabelSize 测试标签字号为包围盒短边的 40%
func TestLabelSize(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected float64
	}{
		{"Wide box", 100, 50, 20},
		{"Tall box", 40, 200, 16},
		{"Square box", 80, 80, 32},
		{"Zero box", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labelSize(tt.width, tt.height)
			if got != tt.expected {
				t.Errorf("labelSize(%d, %d) = %f, want %f", tt.width, tt.height, got, tt.expected)
			}
		})
	}
}

// TestLayerDrawableTintRecursion 测试组合资源把同一着色递归下发到所有图层
func TestLayerDrawableTintRecursion(t *testing.T) {
	inner1 := NewImageDrawable(nil)
	inner2 := NewImageDrawable(nil)
	nested := NewLayerDrawable(inner2)
	outer := NewLayerDrawable(inner1, nested)

	tint := color.NRGBA{R: 200, G: 100, B: 50, A: 125}
	outer.SetTint(tint)

	if inner1.Tint() != tint {
		t.Errorf("inner1 tint = %v, want %v", inner1.Tint(), tint)
	}
	if inner2.Tint() != tint {
		t.Errorf("nested inner2 tint = %v, want %v (tint must recurse through layers)", inner2.Tint(), tint)
	}
}
