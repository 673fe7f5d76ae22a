package game

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 显示设置
	Fullscreen      bool `yaml:"fullscreen"`      // 启动时是否全屏
	ShowLeaderboard bool `yaml:"showLeaderboard"` // 游戏中是否显示排行榜面板

	// PlayerName 上一次提交成绩时使用的名字，用于预填名字输入框
	PlayerName string `yaml:"playerName"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:      false,
		ShowLeaderboard: true,
		PlayerName:      DefaultPlayerName,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	store    PropStore     // 跨平台存储，可为 nil（降级模式）
	settings *GameSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - store: 键值存储（通常是 *gdata.Manager），可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认设置
func NewSettingsManager(store PropStore) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从存储加载设置
//
// 如果 store 为 nil 或数据不存在，使用默认设置。
// 已保存数据中缺失的字段保留默认值。
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.store == nil {
		return nil
	}

	if !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.PlayerName = NormalizeName(loaded.PlayerName)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置
//
// 如果 store 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowLeaderboard 设置是否在游戏中显示排行榜面板
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowLeaderboard(enabled bool) {
	sm.settings.ShowLeaderboard = enabled
}

// SetPlayerName 记住玩家名，名字会按排行榜规则规范化
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPlayerName(name string) {
	sm.settings.PlayerName = NormalizeName(name)
}
