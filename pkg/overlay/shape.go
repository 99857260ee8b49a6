// Package overlay 实现虚拟按键核心：
// 触摸指针跟踪、移动/缩放编辑会话和渲染适配。
//
// 按键的位置与尺寸以相对坐标持久化（pkg/config），
// 每帧由容器提供的 Frame（pkg/geometry）换算为绝对包围盒。
package overlay

import (
	"image"
	"math"
)

// Shape 按键命中区域的几何形状
//
// 不同形状的按键变体实现各自的命中测试，
// 测试始终针对当前包围盒进行。
type Shape interface {
	// Contains 判断点 (x, y) 是否落在 bounds 内的命中区域中
	Contains(bounds image.Rectangle, x, y float64) bool
}

// RectShape 矩形命中区域，与包围盒完全一致
type RectShape struct{}

// Contains 判断点是否在矩形包围盒内
func (RectShape) Contains(bounds image.Rectangle, x, y float64) bool {
	return x >= float64(bounds.Min.X) && x < float64(bounds.Max.X) &&
		y >= float64(bounds.Min.Y) && y < float64(bounds.Max.Y)
}

// CircleShape 圆形命中区域，内切于包围盒
// 半径取宽高中较小者的一半
type CircleShape struct{}

// Contains 判断点是否在内切圆内
func (CircleShape) Contains(bounds image.Rectangle, x, y float64) bool {
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	r := math.Min(float64(bounds.Dx()), float64(bounds.Dy())) / 2
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}
