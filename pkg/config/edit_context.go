package config

// EditMode 编辑会话的模式
type EditMode int

const (
	// EditNone 非编辑状态
	EditNone EditMode = iota
	// EditMove 移动按键
	EditMove
	// EditResize 调整按键大小
	EditResize
)

// String 返回模式名称（用于日志和调试显示）
func (m EditMode) String() string {
	switch m {
	case EditNone:
		return "none"
	case EditMove:
		return "move"
	case EditResize:
		return "resize"
	default:
		return "unknown"
	}
}

// EditContext 编辑会话期间所有按键共享的上下文
//
// 由容器持有并在每次编辑操作时显式传入，
// 按键核心不反向引用容器。
type EditContext struct {
	// Mode 当前编辑模式
	Mode EditMode
	// SnapToGrid 是否启用网格吸附
	SnapToGrid bool
	// GridSize 网格间距（像素）；<= 0 视为禁用吸附
	GridSize float64
}
