// Package config 提供虚拟按键的配置数据模型与持久化访问器
//
// 按键位置和尺寸以相对坐标持久化，渲染时由 geometry 包换算为绝对坐标。
// 持久化通过 gdata 跨平台存储完成，序列化格式为 YAML。
package config

// Color RGBA 颜色（YAML 友好的结构形式）
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// ButtonConfig 单个按键的持久化配置
//
// RelativeX/RelativeY 为归一化布局空间中的锚点位置（正常范围 0~1，
// 拖拽过程中允许瞬时越界，不做强制截断）。
// 有效尺寸因子 = GlobalScale + Scale，其中 GlobalScale 是全局共享的，
// 不保存在单个按键配置里。
type ButtonConfig struct {
	// RelativeX 锚点 X 相对坐标
	RelativeX float64 `yaml:"relativeX"`
	// RelativeY 锚点 Y 相对坐标
	RelativeY float64 `yaml:"relativeY"`
	// Scale 按键自身的附加缩放（与全局缩放相加）
	Scale float64 `yaml:"scale"`
	// Enabled 是否启用该按键
	Enabled bool `yaml:"enabled"`
	// Alpha 不透明度 0~255
	Alpha int `yaml:"alpha"`
	// TextColor 标签文字颜色
	TextColor Color `yaml:"textColor"`
	// BackgroundColor 按键背景颜色
	BackgroundColor Color `yaml:"backgroundColor"`
}

// ButtonDefaults 按键的出厂默认值
// 来自皮肤配置文件（internal/skin），不随用户编辑变化
type ButtonDefaults struct {
	// RelativeX, RelativeY 默认锚点位置
	RelativeX float64
	RelativeY float64
	// RelativeWidth, RelativeHeight 默认相对尺寸（缩放因子为 1 时）
	RelativeWidth  float64
	RelativeHeight float64
	// Enabled 默认是否启用
	Enabled bool
}

// 按键外观的默认值
const (
	// DefaultAlpha 默认不透明度
	DefaultAlpha = 255
	// DefaultScale 默认附加缩放
	DefaultScale = 0.0
	// DefaultGlobalScale 默认全局缩放
	DefaultGlobalScale = 1.0
)

// DefaultTextColor 默认标签颜色
var DefaultTextColor = Color{R: 255, G: 255, B: 255, A: 255}

// DefaultBackgroundColor 默认背景颜色
var DefaultBackgroundColor = Color{R: 128, G: 128, B: 128, A: 255}

// NewButtonConfig 按出厂默认值创建按键配置
func NewButtonConfig(d ButtonDefaults) *ButtonConfig {
	return &ButtonConfig{
		RelativeX:       d.RelativeX,
		RelativeY:       d.RelativeY,
		Scale:           DefaultScale,
		Enabled:         d.Enabled,
		Alpha:           DefaultAlpha,
		TextColor:       DefaultTextColor,
		BackgroundColor: DefaultBackgroundColor,
	}
}

// ClampAlpha 将不透明度限制在 0~255 范围内
func ClampAlpha(alpha int) int {
	if alpha < 0 {
		return 0
	}
	if alpha > 255 {
		return 255
	}
	return alpha
}
