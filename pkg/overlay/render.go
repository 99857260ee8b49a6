package overlay

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染常量
const (
	// PressedAlphaReduction 按下状态的不透明度降低量
	PressedAlphaReduction = 130
	// MinRenderAlpha 按下状态不透明度的下限
	MinRenderAlpha = 30
	// labelSizeRatio 标签字号占包围盒短边的比例
	labelSizeRatio = 0.4
)

// renderAlpha 计算渲染用的不透明度
//
// 按下时在配置值基础上降低固定量，并截断到 [MinRenderAlpha, 255]；
// 未按下时直接使用配置值。
func renderAlpha(configAlpha int, pressed bool) int {
	if !pressed {
		return configAlpha
	}
	a := configAlpha - PressedAlphaReduction
	if a < MinRenderAlpha {
		a = MinRenderAlpha
	}
	if a > 255 {
		a = 255
	}
	return a
}

// labelSize 计算标签字号：包围盒宽高中较小者的 40%
func labelSize(boundsWidth, boundsHeight int) float64 {
	return math.Min(float64(boundsWidth), float64(boundsHeight)) * labelSizeRatio
}

// Render 绘制按键
//
// 绘制内容：背景（纯色或 Drawable 资源）、居中的标签字形。
// 不透明度按按下状态调整；禁用的按键不绘制。
// face 为 nil 时跳过标签。
func (b *Button) Render(screen *ebiten.Image, face *text.GoTextFace) {
	c := b.cfg.Button(b.id)
	if !c.Enabled {
		return
	}

	bounds := b.CurrentBounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}

	alpha := uint8(renderAlpha(c.Alpha, b.pressed))

	if b.drawable != nil {
		b.drawable.SetTint(color.NRGBA{
			R: c.BackgroundColor.R,
			G: c.BackgroundColor.G,
			B: c.BackgroundColor.B,
			A: alpha,
		})
		b.drawable.Draw(screen, bounds)
	} else {
		bg := color.NRGBA{
			R: c.BackgroundColor.R,
			G: c.BackgroundColor.G,
			B: c.BackgroundColor.B,
			A: alpha,
		}
		switch b.shape.(type) {
		case CircleShape:
			cx := float32(bounds.Min.X+bounds.Max.X) / 2
			cy := float32(bounds.Min.Y+bounds.Max.Y) / 2
			r := float32(math.Min(float64(bounds.Dx()), float64(bounds.Dy()))) / 2
			vector.DrawFilledCircle(screen, cx, cy, r, bg, true)
		default:
			vector.DrawFilledRect(screen,
				float32(bounds.Min.X), float32(bounds.Min.Y),
				float32(bounds.Dx()), float32(bounds.Dy()), bg, true)
		}
	}

	if face == nil || b.label == "" {
		return
	}

	labelFace := &text.GoTextFace{
		Source: face.Source,
		Size:   labelSize(bounds.Dx(), bounds.Dy()),
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(bounds.Min.X+bounds.Max.X)/2,
		float64(bounds.Min.Y+bounds.Max.Y)/2,
	)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.NRGBA{
		R: c.TextColor.R,
		G: c.TextColor.G,
		B: c.TextColor.B,
		A: alpha,
	})
	text.Draw(screen, b.label, labelFace, op)
}
