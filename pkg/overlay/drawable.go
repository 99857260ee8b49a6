package overlay

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable 按键的视觉资源
//
// 资源可能是单张图片，也可能是多层图片的组合。
// SetTint 必须对整个资源生效：组合资源要把同一颜色
// 递归下发到所有图层。
type Drawable interface {
	// Draw 将资源绘制到 bounds 指定的区域
	Draw(screen *ebiten.Image, bounds image.Rectangle)
	// SetTint 设置统一的着色
	SetTint(c color.Color)
}

// ImageDrawable 单张图片资源
type ImageDrawable struct {
	image *ebiten.Image
	tint  color.Color
}

// NewImageDrawable 创建单张图片资源
func NewImageDrawable(img *ebiten.Image) *ImageDrawable {
	return &ImageDrawable{image: img, tint: color.White}
}

// Draw 将图片缩放绘制到目标区域
func (d *ImageDrawable) Draw(screen *ebiten.Image, bounds image.Rectangle) {
	if d.image == nil || bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}
	w := d.image.Bounds().Dx()
	h := d.image.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx())/float64(w), float64(bounds.Dy())/float64(h))
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	op.ColorScale.ScaleWithColor(d.tint)
	screen.DrawImage(d.image, op)
}

// SetTint 设置图片着色
func (d *ImageDrawable) SetTint(c color.Color) {
	d.tint = c
}

// Tint 返回当前着色
func (d *ImageDrawable) Tint() color.Color { return d.tint }

// LayerDrawable 多层组合资源
// 图层按切片顺序从底到顶绘制
type LayerDrawable struct {
	layers []Drawable
}

// NewLayerDrawable 创建多层组合资源
func NewLayerDrawable(layers ...Drawable) *LayerDrawable {
	return &LayerDrawable{layers: layers}
}

// Draw 依次绘制所有图层
func (d *LayerDrawable) Draw(screen *ebiten.Image, bounds image.Rectangle) {
	for _, layer := range d.layers {
		layer.Draw(screen, bounds)
	}
}

// SetTint 将同一着色递归下发到所有图层
// 组合资源的各层需要同一颜色，逐层递归是结构上的要求
func (d *LayerDrawable) SetTint(c color.Color) {
	for _, layer := range d.layers {
		layer.SetTint(c)
	}
}

// Layers 返回图层切片（用于测试和调试）
func (d *LayerDrawable) Layers() []Drawable { return d.layers }
