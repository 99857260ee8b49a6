package overlay

import (
	"image"
	"testing"

	"github.com/decker502/vpad/internal/skin"
	"github.com/decker502/vpad/pkg/config"
)

// newTestButton 创建一个降级模式（纯内存）配置下的测试按键
func newTestButton(t *testing.T, spec skin.ButtonSpec) (*Button, *config.OverlayConfigManager) {
	t.Helper()
	cfg, err := config.NewOverlayConfigManager(nil, map[string]config.ButtonDefaults{
		spec.ID: {
			RelativeX:      spec.RelativeX,
			RelativeY:      spec.RelativeY,
			RelativeWidth:  spec.RelativeWidth,
			RelativeHeight: spec.RelativeHeight,
			Enabled:        spec.Enabled,
		},
	})
	if err != nil {
		t.Fatalf("NewOverlayConfigManager() error: %v", err)
	}
	return NewButton(spec, cfg), cfg
}

func circleSpec() skin.ButtonSpec {
	return skin.ButtonSpec{
		ID: "a", Label: "A", Shape: skin.ShapeCircle,
		RelativeX: 0.5, RelativeY: 0.5,
		RelativeWidth: 0.1, RelativeHeight: 0.2,
		Enabled: true,
	}
}

// TestCurrentBoundsDeterministic 测试包围盒计算的幂等性：
// 相同输入重复计算结果完全一致
func TestCurrentBoundsDeterministic(t *testing.T) {
	b, _ := newTestButton(t, circleSpec())
	b.SetFrame(1000, 600)

	first := b.CurrentBounds()
	for i := 0; i < 5; i++ {
		if got := b.CurrentBounds(); got != first {
			t.Fatalf("CurrentBounds() iteration %d = %v, want %v", i, got, first)
		}
	}
}

// TestCurrentBoundsScale 测试有效尺寸因子 = 全局缩放 + 单键缩放
func TestCurrentBoundsScale(t *testing.T) {
	b, cfg := newTestButton(t, circleSpec())
	b.SetFrame(1000, 600)

	base := b.CurrentBounds()

	cfg.SetScale("a", 1.0) // 因子从 1.0 变为 2.0
	doubled := b.CurrentBounds()

	if got, want := doubled.Dx(), base.Dx()*2; abs(got-want) > 1 {
		t.Errorf("doubled width = %d, want ~%d", got, want)
	}

	cfg.SetScale("a", 0)
	cfg.SetGlobalScale(3.0)
	tripled := b.CurrentBounds()
	if got, want := tripled.Dx(), base.Dx()*3; abs(got-want) > 1 {
		t.Errorf("tripled width = %d, want ~%d", got, want)
	}
}

// TestIsTouchedCircle 测试圆形按键的命中测试：
// 包围盒四角在内切圆外，不应命中
func TestIsTouchedCircle(t *testing.T) {
	b, _ := newTestButton(t, circleSpec())
	b.SetFrame(1000, 1000)

	bounds := b.CurrentBounds()
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2

	if !b.IsTouched(cx, cy) {
		t.Error("center not touched")
	}
	// 包围盒角落在内切圆之外
	if b.IsTouched(float64(bounds.Min.X)+1, float64(bounds.Min.Y)+1) {
		t.Error("corner touched, want outside the inscribed circle")
	}
	if b.IsTouched(cx+float64(bounds.Dx()), cy) {
		t.Error("far point touched")
	}
}

// TestIsTouchedRect 测试矩形按键的命中测试
func TestIsTouchedRect(t *testing.T) {
	spec := circleSpec()
	spec.Shape = skin.ShapeRect
	b, _ := newTestButton(t, spec)
	b.SetFrame(1000, 1000)

	bounds := b.CurrentBounds()
	if !b.IsTouched(float64(bounds.Min.X)+1, float64(bounds.Min.Y)+1) {
		t.Error("corner not touched, rect shape covers the whole bounds")
	}
	if b.IsTouched(float64(bounds.Max.X)+1, float64(bounds.Min.Y)) {
		t.Error("point right of bounds touched")
	}
}

// TestFingerDownUp 测试按下状态的切换独立于编辑模式
func TestFingerDownUp(t *testing.T) {
	b, _ := newTestButton(t, circleSpec())

	if b.IsPressed() {
		t.Error("new button is pressed")
	}
	b.OnFingerDown(10, 10)
	if !b.IsPressed() {
		t.Error("not pressed after OnFingerDown")
	}
	b.OnFingerUp(10, 10)
	if b.IsPressed() {
		t.Error("still pressed after OnFingerUp")
	}
}

// TestPointerSlots 测试主/搭档指针槽位的占用与释放
func TestPointerSlots(t *testing.T) {
	b, _ := newTestButton(t, circleSpec())

	if b.TouchPointerID() != NoPointer || b.PartnerPointerID() != NoPointer {
		t.Fatal("new button owns pointers")
	}
	if b.OwnsPointer(NoPointer) {
		t.Error("OwnsPointer(NoPointer) = true, want false")
	}

	b.SetTouchPointerID(3)
	b.SetPartnerPointerID(7)
	if !b.OwnsPointer(3) || !b.OwnsPointer(7) {
		t.Error("button does not own claimed pointers")
	}
	if b.OwnsPointer(5) {
		t.Error("button owns unclaimed pointer 5")
	}

	b.ReleasePointer(3)
	if b.TouchPointerID() != NoPointer {
		t.Error("primary slot not released")
	}
	if !b.OwnsPointer(7) {
		t.Error("partner slot released by mistake")
	}

	// 释放未占用的指针是空操作
	b.ReleasePointer(99)
	if !b.OwnsPointer(7) {
		t.Error("ReleasePointer(99) affected partner slot")
	}
}

// TestResetThenLoadIsExact 测试复位 + 重新加载后相对坐标与默认值精确相等
func TestResetThenLoadIsExact(t *testing.T) {
	b, cfg := newTestButton(t, circleSpec())
	b.SetFrame(1000, 600)

	// 编辑并提交一个偏移位置
	b.StartEdit(500, 300)
	b.Edit(700, 450, config.EditContext{Mode: config.EditMove})
	b.EndEdit()
	if cfg.Button("a").RelativeX == 0.5 {
		t.Fatal("edit did not change persisted RelativeX")
	}

	b.ResetRelativeValues()
	b.LoadConfigValues()

	x, y := b.RelativePosition()
	if x != 0.5 || y != 0.5 {
		t.Errorf("after reset+load: got (%v, %v), want exactly (0.5, 0.5)", x, y)
	}
}

// TestZeroFrameDegenerates 测试容器尺寸为零时退化为零尺寸包围盒
func TestZeroFrameDegenerates(t *testing.T) {
	b, _ := newTestButton(t, circleSpec())
	b.SetFrame(0, 0)

	if got := b.CurrentBounds(); got != (image.Rectangle{}) && got.Dx() != 0 {
		t.Errorf("CurrentBounds() on zero frame = %v, want zero-size", got)
	}
	if b.IsTouched(10, 10) {
		t.Error("zero-size button reports touch")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
