package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OverlayConfig 整个覆盖层的持久化配置
type OverlayConfig struct {
	// GlobalScale 全局缩放，对所有按键生效（与单键 Scale 相加）
	GlobalScale float64 `yaml:"globalScale"`
	// Buttons 按键 ID → 单键配置
	Buttons map[string]*ButtonConfig `yaml:"buttons"`
}

// OverlayConfigManager 按键配置的持久化访问器
//
// 负责配置的加载、保存和内存管理。编辑会话中的修改只写内存，
// 需显式调用 Save() 持久化。
type OverlayConfigManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	config       *OverlayConfig
	defaults     map[string]ButtonDefaults // 按键出厂默认值，来自皮肤配置
}

// 存储路径常量
const (
	overlayObject   = "overlay"
	overlayProperty = "buttons"
)

// NewOverlayConfigManager 创建配置访问器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，配置不持久化）
//   - defaults: 按键 ID → 出厂默认值
//
// 返回：
//   - *OverlayConfigManager: 访问器实例
//   - error: 加载已保存配置失败时返回错误（不影响创建，使用默认值）
func NewOverlayConfigManager(gdataManager *gdata.Manager, defaults map[string]ButtonDefaults) (*OverlayConfigManager, error) {
	m := &OverlayConfigManager{
		gdataManager: gdataManager,
		config:       defaultOverlayConfig(defaults),
		defaults:     defaults,
	}

	if err := m.Load(); err != nil {
		// 加载失败不是致命错误，使用默认配置
		log.Printf("[OverlayConfig] Warning: Failed to load config: %v (using defaults)", err)
	}

	return m, nil
}

// defaultOverlayConfig 按出厂默认值构建完整配置
func defaultOverlayConfig(defaults map[string]ButtonDefaults) *OverlayConfig {
	cfg := &OverlayConfig{
		GlobalScale: DefaultGlobalScale,
		Buttons:     make(map[string]*ButtonConfig, len(defaults)),
	}
	for id, d := range defaults {
		cfg.Buttons[id] = NewButtonConfig(d)
	}
	return cfg
}

// Load 从 gdata 加载配置
//
// gdataManager 为 nil 或配置不存在时使用出厂默认值。
// 已保存配置中缺失的按键（例如皮肤新增的按键）按默认值补齐。
func (m *OverlayConfigManager) Load() error {
	if m.gdataManager == nil {
		m.config = defaultOverlayConfig(m.defaults)
		return nil
	}

	if !m.gdataManager.ObjectPropExists(overlayObject, overlayProperty) {
		m.config = defaultOverlayConfig(m.defaults)
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(overlayObject, overlayProperty)
	if err != nil {
		m.config = defaultOverlayConfig(m.defaults)
		return fmt.Errorf("failed to load overlay config: %w", err)
	}

	var loaded OverlayConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.config = defaultOverlayConfig(m.defaults)
		return fmt.Errorf("failed to unmarshal overlay config: %w", err)
	}

	if loaded.Buttons == nil {
		loaded.Buttons = make(map[string]*ButtonConfig)
	}
	// 旧存档可能缺少 globalScale 字段，0 会使所有按键尺寸为零
	if loaded.GlobalScale == 0 {
		loaded.GlobalScale = DefaultGlobalScale
	}
	// 补齐皮肤中新增、存档中缺失的按键
	for id, d := range m.defaults {
		if _, ok := loaded.Buttons[id]; !ok {
			loaded.Buttons[id] = NewButtonConfig(d)
		}
	}

	m.config = &loaded
	log.Printf("[OverlayConfig] Loaded %d button configs", len(loaded.Buttons))
	return nil
}

// Save 保存配置到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）。
func (m *OverlayConfigManager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal overlay config: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(overlayObject, overlayProperty, data); err != nil {
		return fmt.Errorf("failed to save overlay config: %w", err)
	}

	log.Printf("[OverlayConfig] Saved %d button configs", len(m.config.Buttons))
	return nil
}

// Button 返回指定按键的配置
//
// 按键不存在时按出厂默认值创建（皮肤中未声明的按键按零值默认）。
// 返回的指针直接指向内存配置，修改后需调用 Save() 持久化。
func (m *OverlayConfigManager) Button(id string) *ButtonConfig {
	if cfg, ok := m.config.Buttons[id]; ok {
		return cfg
	}
	cfg := NewButtonConfig(m.defaults[id])
	m.config.Buttons[id] = cfg
	return cfg
}

// Defaults 返回指定按键的出厂默认值
func (m *OverlayConfigManager) Defaults(id string) ButtonDefaults {
	return m.defaults[id]
}

// GlobalScale 返回全局缩放
func (m *OverlayConfigManager) GlobalScale() float64 {
	return m.config.GlobalScale
}

// SetGlobalScale 设置全局缩放
// 注意：仅修改内存中的配置，需调用 Save() 持久化
func (m *OverlayConfigManager) SetGlobalScale(scale float64) {
	m.config.GlobalScale = scale
}

// SetRelative 设置按键锚点的相对坐标
// 注意：仅修改内存中的配置，需调用 Save() 持久化
func (m *OverlayConfigManager) SetRelative(id string, x, y float64) {
	cfg := m.Button(id)
	cfg.RelativeX = x
	cfg.RelativeY = y
}

// SetScale 设置按键的附加缩放
// 注意：仅修改内存中的配置，需调用 Save() 持久化
func (m *OverlayConfigManager) SetScale(id string, scale float64) {
	m.Button(id).Scale = scale
}

// SetEnabled 设置按键启用状态
// 注意：仅修改内存中的配置，需调用 Save() 持久化
func (m *OverlayConfigManager) SetEnabled(id string, enabled bool) {
	m.Button(id).Enabled = enabled
}

// SetAlpha 设置按键不透明度
// 数值会被限制在 0~255 范围内
// 注意：仅修改内存中的配置，需调用 Save() 持久化
func (m *OverlayConfigManager) SetAlpha(id string, alpha int) {
	m.Button(id).Alpha = ClampAlpha(alpha)
}

// ResetButton 将指定按键恢复为出厂默认值
//
// 恢复后紧接 Load（或重新读取）得到的 RelativeX/RelativeY
// 与默认值精确相等（幂等复位）。
func (m *OverlayConfigManager) ResetButton(id string) {
	m.config.Buttons[id] = NewButtonConfig(m.defaults[id])
}

// ResetAll 将所有按键和全局缩放恢复为出厂默认值
func (m *OverlayConfigManager) ResetAll() {
	m.config = defaultOverlayConfig(m.defaults)
}
