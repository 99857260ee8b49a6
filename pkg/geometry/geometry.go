// Package geometry 提供虚拟按键布局的纯几何计算
//
// 核心是一个固定参考宽高比的坐标变换：按键位置以相对坐标（0~1）持久化，
// 渲染时根据当前容器尺寸换算为绝对像素坐标。垂直轴按参考宽高比折算，
// 多出的高度作为底部偏移吸收，保证不同宽高比的设备上布局视觉一致，
// 且整体锚定在屏幕底部。
package geometry

import (
	"image"
	"math"
)

// ReferenceAspectRatio 固定的参考宽高比
// 所有设备上的垂直布局都按此比例折算，而不是使用真实容器高度
const ReferenceAspectRatio = 2074.0 / 874.0

// Frame 表示当前容器的尺寸
// 由外部容器在每次布局/绘制前更新，同一帧内先写后读
type Frame struct {
	// Width 容器宽度（像素）
	Width int
	// Height 容器高度（像素）
	Height int
}

// AdjustedHeight 返回按参考宽高比折算后的布局高度
//
// 布局的垂直轴始终针对此高度计算，而不是真实的 Height，
// 这样相同的相对坐标在任何设备上渲染出的布局视觉一致。
func (f Frame) AdjustedHeight() float64 {
	return float64(f.Width) / ReferenceAspectRatio
}

// HeightDiff 返回真实高度超出折算高度的部分
//
// 当真实容器比折算布局更高时，多出的高度作为垂直偏移
// 施加到所有锚点上，使整个布局锚定在屏幕底部。
// 容器不足折算高度时返回 0。
func (f Frame) HeightDiff() float64 {
	return math.Max(0, float64(f.Height)-f.AdjustedHeight())
}

// AnchorX 将相对 X 坐标换算为绝对像素坐标
func (f Frame) AnchorX(relativeX float64) float64 {
	return float64(f.Width) * relativeX
}

// AnchorY 将相对 Y 坐标换算为绝对像素坐标
// 针对折算高度计算，再加上底部锚定偏移
func (f Frame) AnchorY(relativeY float64) float64 {
	return f.AdjustedHeight()*relativeY + f.HeightDiff()
}

// RelativeX 将绝对 X 坐标反算为相对坐标
//
// 是 AnchorX 的精确代数逆变换。宽度为 0 时返回 0（退化输入不报错）。
func (f Frame) RelativeX(x float64) float64 {
	if f.Width <= 0 {
		return 0
	}
	return x / float64(f.Width)
}

// RelativeY 将绝对 Y 坐标反算为相对坐标
//
// 是 AnchorY 的精确代数逆变换：先去掉底部偏移，再针对折算高度归一化。
// 宽度为 0 时折算高度为 0，返回 0。
func (f Frame) RelativeY(y float64) float64 {
	adjusted := f.AdjustedHeight()
	if adjusted <= 0 {
		return 0
	}
	return (y - f.HeightDiff()) / adjusted
}

// Bounds 计算按键的绝对包围盒
//
// 包围盒以锚点 (AnchorX, AnchorY) 为中心，
// 尺寸为 (Width*relativeWidth, AdjustedHeight()*relativeHeight)，
// 四个边取整到整数像素。
//
// 参数：
//   - relativeX, relativeY: 锚点相对坐标
//   - relativeWidth, relativeHeight: 相对尺寸（已含缩放因子）
//
// 返回：
//   - image.Rectangle: 整数像素包围盒；容器尺寸为 0 时退化为零尺寸
func (f Frame) Bounds(relativeX, relativeY, relativeWidth, relativeHeight float64) image.Rectangle {
	itemWidth := float64(f.Width) * relativeWidth
	itemHeight := f.AdjustedHeight() * relativeHeight
	cx := f.AnchorX(relativeX)
	cy := f.AnchorY(relativeY)

	return image.Rect(
		int(math.Round(cx-itemWidth/2)),
		int(math.Round(cy-itemHeight/2)),
		int(math.Round(cx+itemWidth/2)),
		int(math.Round(cy+itemHeight/2)),
	)
}
