package game

import (
	"log"
	"math/rand"

	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "echoorbit"

// GameState 存储跨场景共享的应用级服务
//
// 包含持久化存储、设置、排行榜和调参配置。
// 不包含任何一局游戏的模拟状态，那部分由 RunController 持有。
// 由 app 包创建并注入各个场景，不是全局单例。
type GameState struct {
	store           PropStore
	settingsManager *SettingsManager
	leaderboard     *Leaderboard
	tuning          *config.TuningConfig
}

// OpenStore 打开 gdata 存储
//
// 打开失败时返回 nil（降级模式，设置和排行榜仅保存在内存中）。
//
// 参数：
//   - appName: 应用名，决定存储目录
func OpenStore(appName string) PropStore {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[GameState] Warning: Failed to open gdata storage: %v (scores will not be saved)", err)
		// 必须返回无类型的 nil，否则接口值不为 nil
		return nil
	}

	log.Printf("[GameState] gdata storage opened for %s", appName)
	return manager
}

// NewGameState 创建应用级服务
//
// 参数：
//   - store: 持久化存储，可为 nil（降级模式）
//   - tuning: 调参配置，nil 时使用默认配置
func NewGameState(store PropStore, tuning *config.TuningConfig) *GameState {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}

	return &GameState{
		store:           store,
		settingsManager: NewSettingsManager(store),
		leaderboard:     NewLeaderboard(store),
		tuning:          tuning,
	}
}

// NewRunController 创建一个以竞技场中心为圆心的模拟上下文
//
// 参数：
//   - rng: 随机源，nil 时使用当前时间作为种子
func (gs *GameState) NewRunController(rng *rand.Rand) *RunController {
	cx, cy := config.GetArenaCenter()
	return NewRunController(gs.tuning, cx, cy, rng)
}

// GetStore 返回持久化存储（可能为 nil）
func (gs *GameState) GetStore() PropStore {
	return gs.store
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// GetLeaderboard 返回排行榜
func (gs *GameState) GetLeaderboard() *Leaderboard {
	return gs.leaderboard
}

// GetTuning 返回调参配置
func (gs *GameState) GetTuning() *config.TuningConfig {
	return gs.tuning
}
