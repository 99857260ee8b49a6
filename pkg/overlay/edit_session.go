package overlay

import (
	"github.com/decker502/vpad/pkg/config"
	"github.com/decker502/vpad/pkg/geometry"
)

// ResizeSensitivity 缩放编辑的灵敏度：手指纵向移动多少像素对应 1 个缩放单位
const ResizeSensitivity = 200.0

// editSession 一次编辑会话的临时状态
//
// StartEdit 时捕获，会话期间不再修改，EndEdit 时丢弃。
type editSession struct {
	// initialX, initialY 会话起点的触摸坐标，作为增量计算的基准
	initialX float64
	initialY float64
	// initialScale 会话起点的单键缩放
	initialScale float64
}

// StartEdit 开始编辑会话，捕获初始触摸点和初始缩放
//
// 会话期间重复调用会覆盖之前的捕获（接受的行为，不视为错误）。
// 编辑模式本身由共享的 EditContext 决定，按键不自行切换模式。
func (b *Button) StartEdit(x, y float64) {
	b.session = editSession{
		initialX:     x,
		initialY:     y,
		initialScale: b.cfg.Button(b.id).Scale,
	}
}

// Edit 处理一次编辑中的触摸移动
//
// 移动模式：坐标（可选地先做网格吸附）经逆变换更新实时相对坐标，
// 只写暂存值，EndEdit 时才提交进持久化配置。
// 缩放模式：手指相对起点向上移动增大缩放（纵向距离取反），
// 新缩放 = 初始缩放 + 纵向距离/ResizeSensitivity，立即写入配置
// （与位置的暂存提交不同，这是有意的不对称）。
// 其他模式：空操作。
func (b *Button) Edit(x, y float64, ctx config.EditContext) {
	switch ctx.Mode {
	case config.EditMove:
		if ctx.SnapToGrid {
			centerX := float64(b.frame.Width) / 2
			centerY := float64(b.frame.Height) / 2
			x, y = geometry.SnapPoint(x, y, centerX, centerY, ctx.GridSize)
		}
		b.relativeX = b.frame.RelativeX(x)
		b.relativeY = b.frame.RelativeY(y)

	case config.EditResize:
		// 手指上移应当放大，因此距离取 initialY - y
		verticalDistance := b.session.initialY - y
		b.cfg.SetScale(b.id, b.session.initialScale+verticalDistance/ResizeSensitivity)
	}
}

// EndEdit 结束编辑会话，将实时相对坐标提交进持久化配置
//
// 缩放不在这里提交：缩放在 Edit 中已实时写入配置。
func (b *Button) EndEdit() {
	b.cfg.SetRelative(b.id, b.relativeX, b.relativeY)
	b.session = editSession{}
}
