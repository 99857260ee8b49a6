// Package app 提供虚拟手柄覆盖层演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
//
// App 同时扮演按键核心的"容器"角色：每帧向按键提供容器尺寸，
// 并把指针事件派发给命中的按键。
package app

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/vpad/internal/skin"
	"github.com/decker502/vpad/pkg/config"
	"github.com/decker502/vpad/pkg/overlay"
	"github.com/decker502/vpad/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkinPath 皮肤配置文件路径，为空则使用内置默认布局
	SkinPath string
}

// DefaultGridSize 编辑模式下的默认网格间距（像素）
const DefaultGridSize = 50.0

// App 演示应用，实现 ebiten.Game 接口
type App struct {
	cfgManager *config.OverlayConfigManager
	buttons    []*overlay.Button
	byID       map[string]*overlay.Button

	editCtx  config.EditContext
	pointers *utils.PointerSource
	events   []utils.PointerEvent

	face *text.GoTextFace

	// 容器尺寸，Layout 每帧更新，Update/Draw 读取
	width  int
	height int

	verbose bool
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// Android 上需要先保证存储目录可写
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}

	// 打开 gdata 存储；失败时降级为纯内存配置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "vpad"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (config will not persist)", err)
		gdataManager = nil
	}

	// 加载皮肤配置
	profile := skin.DefaultProfile()
	if cfg.SkinPath != "" {
		profile, err = skin.LoadProfileFile(cfg.SkinPath)
		if err != nil {
			return nil, fmt.Errorf("皮肤配置加载失败: %w", err)
		}
	}
	log.Printf("[App] Loaded skin profile %q with %d buttons", profile.Name, len(profile.Buttons))

	// 按皮肤构建出厂默认值表
	defaults := make(map[string]config.ButtonDefaults, len(profile.Buttons))
	for _, spec := range profile.Buttons {
		defaults[spec.ID] = config.ButtonDefaults{
			RelativeX:      spec.RelativeX,
			RelativeY:      spec.RelativeY,
			RelativeWidth:  spec.RelativeWidth,
			RelativeHeight: spec.RelativeHeight,
			Enabled:        spec.Enabled,
		}
	}

	cfgManager, err := config.NewOverlayConfigManager(gdataManager, defaults)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 标签字体
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		cfgManager: cfgManager,
		byID:       make(map[string]*overlay.Button, len(profile.Buttons)),
		editCtx:    config.EditContext{GridSize: DefaultGridSize},
		pointers:   utils.NewPointerSource(),
		face:       &text.GoTextFace{Source: source, Size: 16},
		verbose:    cfg.Verbose,
	}

	for _, spec := range profile.Buttons {
		b := overlay.NewButton(spec, cfgManager)
		a.buttons = append(a.buttons, b)
		a.byID[spec.ID] = b
	}

	return a, nil
}

// Update 更新一帧：先提供容器尺寸，再派发指针事件
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleKeys()

	for _, b := range a.buttons {
		b.SetFrame(a.width, a.height)
	}

	a.events = a.pointers.AppendEvents(a.events[:0])
	for _, ev := range a.events {
		a.dispatch(ev)
	}

	return nil
}

// handleKeys 编辑会话的键盘控制（桌面端调试用）
//
//	E: 循环切换编辑模式 none → move → resize
//	G: 开关网格吸附
//	-/=: 调整网格间距
//	R: 全部按键恢复默认
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		switch a.editCtx.Mode {
		case config.EditNone:
			a.editCtx.Mode = config.EditMove
		case config.EditMove:
			a.editCtx.Mode = config.EditResize
		default:
			a.editCtx.Mode = config.EditNone
		}
		log.Printf("[App] Edit mode: %s", a.editCtx.Mode)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.editCtx.SnapToGrid = !a.editCtx.SnapToGrid
		log.Printf("[App] Snap to grid: %v", a.editCtx.SnapToGrid)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && a.editCtx.GridSize > 10 {
		a.editCtx.GridSize -= 10
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.editCtx.GridSize += 10
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.cfgManager.ResetAll()
		for _, b := range a.buttons {
			b.LoadConfigValues()
		}
		if err := a.cfgManager.Save(); err != nil {
			log.Printf("[App] Save after reset failed: %v", err)
		}
		log.Printf("[App] All buttons reset to defaults")
	}
}

// dispatch 把一次指针事件派发给对应的按键
func (a *App) dispatch(ev utils.PointerEvent) {
	x, y := float64(ev.X), float64(ev.Y)

	switch ev.Kind {
	case utils.PointerDown:
		// 从上往下找第一个命中的按键
		for i := len(a.buttons) - 1; i >= 0; i-- {
			b := a.buttons[i]
			if !b.Enabled() || !b.IsTouched(x, y) {
				continue
			}
			// 主槽位空闲则占用，否则作为搭档指针（组合/斜向输入）
			if b.TouchPointerID() == overlay.NoPointer {
				b.SetTouchPointerID(ev.ID)
			} else if b.PartnerPointerID() == overlay.NoPointer {
				b.SetPartnerPointerID(ev.ID)
			} else {
				continue
			}
			b.OnFingerDown(x, y)
			if a.editCtx.Mode != config.EditNone {
				b.StartEdit(x, y)
			}
			return
		}

	case utils.PointerMove:
		if b := a.ownerOf(ev.ID); b != nil && a.editCtx.Mode != config.EditNone {
			b.Edit(x, y, a.editCtx)
		}

	case utils.PointerUp:
		b := a.ownerOf(ev.ID)
		if b == nil {
			return
		}
		b.OnFingerUp(x, y)
		if a.editCtx.Mode != config.EditNone {
			b.EndEdit()
			if err := a.cfgManager.Save(); err != nil {
				log.Printf("[App] Save failed: %v", err)
			}
		}
		b.ReleasePointer(ev.ID)
	}
}

// ownerOf 返回占用指定指针的按键，没有则返回 nil
func (a *App) ownerOf(id int) *overlay.Button {
	for _, b := range a.buttons {
		if b.OwnsPointer(id) {
			return b
		}
	}
	return nil
}

// Draw 绘制覆盖层
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 24, G: 24, B: 32, A: 255})

	if a.editCtx.Mode != config.EditNone && a.editCtx.SnapToGrid {
		a.drawGrid(screen)
	}

	for _, b := range a.buttons {
		b.Render(screen, a.face)
	}
}

// drawGrid 绘制编辑模式下的吸附网格
// 网格相位与 geometry.Snap 一致：以容器中心为基准
func (a *App) drawGrid(screen *ebiten.Image) {
	grid := a.editCtx.GridSize
	if grid <= 0 {
		return
	}

	lineColor := color.NRGBA{R: 80, G: 80, B: 96, A: 128}
	w := float64(a.width)
	h := float64(a.height)

	for x := math.Mod(w/2, grid); x < w; x += grid {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, lineColor, false)
	}
	for y := math.Mod(h/2, grid); y < h; y += grid {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, lineColor, false)
	}
}

// Layout 返回逻辑屏幕尺寸
// 覆盖层跟随真实窗口尺寸，按键布局自己处理宽高比归一化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width = outsideWidth
	a.height = outsideHeight
	return outsideWidth, outsideHeight
}

// EditContext 返回当前编辑上下文（用于调试显示）
func (a *App) EditContext() config.EditContext {
	return a.editCtx
}

// Button 返回指定 ID 的按键，不存在时返回 nil
func (a *App) Button(id string) *overlay.Button {
	return a.byID[id]
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
