// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MousePointerID 鼠标事件使用的指针 ID
// 取一个远离触摸 ID 取值范围的常量，避免与触摸指针冲突
const MousePointerID = 1 << 30

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerDown 指针按下
	PointerDown PointerEventKind = iota
	// PointerMove 指针移动（按住状态）
	PointerMove
	// PointerUp 指针抬起
	PointerUp
)

// PointerEvent 一次指针事件
// 统一封装触摸和鼠标输入，多点触摸时每个触摸点独立成流
type PointerEvent struct {
	// Kind 事件类型
	Kind PointerEventKind
	// ID 指针 ID：触摸为 ebiten 的 TouchID，鼠标为 MousePointerID
	ID int
	// X, Y 事件位置（屏幕坐标）
	X, Y int
}

// PointerSource 指针事件源
//
// 每帧调用一次 AppendEvents，把当前帧的触摸/鼠标变化
// 展开为按指针 ID 区分的事件流。
// 触摸抬起时 ebiten 不再提供位置，因此缓存每个触摸点
// 最后一次的位置用于 Up 事件。
type PointerSource struct {
	lastTouchPos map[ebiten.TouchID][2]int
	mousePressed bool

	// 复用的临时切片，避免每帧分配
	touchIDs    []ebiten.TouchID
	justPressed []ebiten.TouchID
	justRelease []ebiten.TouchID
}

// NewPointerSource 创建指针事件源
func NewPointerSource() *PointerSource {
	return &PointerSource{
		lastTouchPos: make(map[ebiten.TouchID][2]int),
	}
}

// AppendEvents 收集当前帧的指针事件并追加到 events
//
// 事件顺序：先触摸后鼠标；每个指针按 Down → Move → Up 的生命周期产生事件，
// Down 和 Move 不会在同一帧对同一指针同时出现。
func (s *PointerSource) AppendEvents(events []PointerEvent) []PointerEvent {
	// 触摸按下
	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	for _, id := range s.justPressed {
		x, y := ebiten.TouchPosition(id)
		s.lastTouchPos[id] = [2]int{x, y}
		events = append(events, PointerEvent{Kind: PointerDown, ID: int(id), X: x, Y: y})
	}

	// 活动触摸的移动
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		if justPressedTouch(s.justPressed, id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		s.lastTouchPos[id] = [2]int{x, y}
		events = append(events, PointerEvent{Kind: PointerMove, ID: int(id), X: x, Y: y})
	}

	// 触摸抬起：位置取缓存的最后位置
	s.justRelease = inpututil.AppendJustReleasedTouchIDs(s.justRelease[:0])
	for _, id := range s.justRelease {
		pos := s.lastTouchPos[id]
		delete(s.lastTouchPos, id)
		events = append(events, PointerEvent{Kind: PointerUp, ID: int(id), X: pos[0], Y: pos[1]})
	}

	// 鼠标（桌面端调试）
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.mousePressed = true
		events = append(events, PointerEvent{Kind: PointerDown, ID: MousePointerID, X: x, Y: y})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.mousePressed = false
		events = append(events, PointerEvent{Kind: PointerUp, ID: MousePointerID, X: x, Y: y})
	case s.mousePressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{Kind: PointerMove, ID: MousePointerID, X: x, Y: y})
	}

	return events
}

// justPressedTouch 判断触摸 ID 是否在本帧刚按下的列表中
func justPressedTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
