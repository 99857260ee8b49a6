package overlay

import (
	"image"

	"github.com/decker502/vpad/internal/skin"
	"github.com/decker502/vpad/pkg/config"
	"github.com/decker502/vpad/pkg/geometry"
)

// NoPointer 表示指针槽位为空的哨兵值
const NoPointer = -1

// Button 一个屏上虚拟按键
//
// 持有触摸指针状态、编辑会话和当前帧的容器尺寸。
// 所有操作都在单一 UI/渲染线程上执行，不做内部加锁；
// 多线程环境下需要对单个按键的修改做外部串行化。
type Button struct {
	id      string
	label   string
	shape   Shape
	partner string // 组合/斜向输入的搭档按键 ID，可为空

	defaults config.ButtonDefaults
	cfg      *config.OverlayConfigManager

	frame geometry.Frame

	// 渲染用的实时相对坐标。移动编辑时先更新这里（暂存），
	// EndEdit 时才提交进持久化配置。
	relativeX float64
	relativeY float64

	// 触摸指针状态
	touchPointerID   int
	partnerPointerID int
	pressed          bool

	session editSession

	// 可选的分层视觉资源；为 nil 时按形状绘制纯色底
	drawable Drawable
}

// NewButton 按皮肤规格创建按键并加载已持久化的配置值
func NewButton(spec skin.ButtonSpec, cfg *config.OverlayConfigManager) *Button {
	var shape Shape
	switch spec.Shape {
	case skin.ShapeRect:
		shape = RectShape{}
	default:
		shape = CircleShape{}
	}

	b := &Button{
		id:      spec.ID,
		label:   spec.Label,
		shape:   shape,
		partner: spec.Partner,
		defaults: config.ButtonDefaults{
			RelativeX:      spec.RelativeX,
			RelativeY:      spec.RelativeY,
			RelativeWidth:  spec.RelativeWidth,
			RelativeHeight: spec.RelativeHeight,
			Enabled:        spec.Enabled,
		},
		cfg:              cfg,
		touchPointerID:   NoPointer,
		partnerPointerID: NoPointer,
	}
	b.LoadConfigValues()
	return b
}

// ID 返回按键标识
func (b *Button) ID() string { return b.id }

// Label 返回按键标签字形
func (b *Button) Label() string { return b.label }

// Partner 返回搭档按键 ID，无搭档时为空字符串
func (b *Button) Partner() string { return b.partner }

// Enabled 返回按键是否启用
func (b *Button) Enabled() bool { return b.cfg.Button(b.id).Enabled }

// LoadConfigValues 从配置访问器读取相对坐标到实时状态
func (b *Button) LoadConfigValues() {
	c := b.cfg.Button(b.id)
	b.relativeX = c.RelativeX
	b.relativeY = c.RelativeY
}

// ResetRelativeValues 将按键恢复为出厂默认值
//
// 复位后调用 LoadConfigValues 得到的相对坐标与默认值精确相等。
func (b *Button) ResetRelativeValues() {
	b.cfg.ResetButton(b.id)
}

// SetFrame 更新容器尺寸
// 容器在每次布局/绘制前调用，同一帧内先写后读
func (b *Button) SetFrame(width, height int) {
	b.frame = geometry.Frame{Width: width, Height: height}
}

// Frame 返回当前容器尺寸
func (b *Button) Frame() geometry.Frame { return b.frame }

// RelativePosition 返回实时相对坐标（含未提交的编辑）
func (b *Button) RelativePosition() (float64, float64) {
	return b.relativeX, b.relativeY
}

// scaleFactor 有效尺寸因子 = 全局缩放 + 单键缩放
func (b *Button) scaleFactor() float64 {
	return b.cfg.GlobalScale() + b.cfg.Button(b.id).Scale
}

// RelativeWidth 返回应用缩放后的相对宽度（派生值，不持久化）
func (b *Button) RelativeWidth() float64 {
	return b.defaults.RelativeWidth * b.scaleFactor()
}

// RelativeHeight 返回应用缩放后的相对高度（派生值，不持久化）
func (b *Button) RelativeHeight() float64 {
	return b.defaults.RelativeHeight * b.scaleFactor()
}

// CurrentBounds 计算当前绝对包围盒
//
// 包围盒始终从 (相对坐标, 容器尺寸) 现算，从不缓存，
// 相同输入下结果幂等且确定。
func (b *Button) CurrentBounds() image.Rectangle {
	return b.frame.Bounds(b.relativeX, b.relativeY, b.RelativeWidth(), b.RelativeHeight())
}

// IsTouched 判断点 (x, y) 是否命中按键
// 具体几何由按键变体的形状决定
func (b *Button) IsTouched(x, y float64) bool {
	return b.shape.Contains(b.CurrentBounds(), x, y)
}

// OnFingerDown 手指按下回调，置位按下状态
// 与编辑模式无关
func (b *Button) OnFingerDown(x, y float64) {
	b.pressed = true
}

// OnFingerUp 手指抬起回调，清除按下状态
func (b *Button) OnFingerUp(x, y float64) {
	b.pressed = false
}

// IsPressed 返回按下状态
func (b *Button) IsPressed() bool { return b.pressed }

// TouchPointerID 返回主指针 ID，未占用时为 NoPointer
func (b *Button) TouchPointerID() int { return b.touchPointerID }

// SetTouchPointerID 记录主指针 ID
// 指针的分配与释放由外部容器驱动，这里只暴露槽位
func (b *Button) SetTouchPointerID(id int) { b.touchPointerID = id }

// PartnerPointerID 返回搭档指针 ID，未占用时为 NoPointer
func (b *Button) PartnerPointerID() int { return b.partnerPointerID }

// SetPartnerPointerID 记录搭档指针 ID
func (b *Button) SetPartnerPointerID(id int) { b.partnerPointerID = id }

// OwnsPointer 判断指针 ID 是否被本按键占用（主槽位或搭档槽位）
func (b *Button) OwnsPointer(id int) bool {
	if id == NoPointer {
		return false
	}
	return b.touchPointerID == id || b.partnerPointerID == id
}

// ReleasePointer 释放指针槽位
// 指针未被占用时为空操作
func (b *Button) ReleasePointer(id int) {
	if b.touchPointerID == id {
		b.touchPointerID = NoPointer
	}
	if b.partnerPointerID == id {
		b.partnerPointerID = NoPointer
	}
}

// SetDrawable 设置按键的视觉资源（可选）
func (b *Button) SetDrawable(d Drawable) { b.drawable = d }
