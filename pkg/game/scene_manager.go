package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

// 场景标识常量
const (
	SceneStart    SceneID = "start"
	SceneGame     SceneID = "game"
	SceneGameOver SceneID = "gameover"
)

// SceneFactory 场景工厂函数类型
// 用于按标识创建场景，避免 game 包与 scenes 包循环依赖
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Goto to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentID = ""
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回通过 Goto 切换到的场景标识，SwitchTo 切换的场景返回空字符串
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Goto 通过工厂函数创建并切换到指定场景
// 工厂未设置或返回 nil 时保持当前场景不变
func (sm *SceneManager) Goto(id SceneID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory not set (requested %s)", id)
		return
	}

	newScene := sm.sceneFactory(id)
	if newScene == nil {
		log.Printf("[SceneManager] Error: cannot create scene %s", id)
		return
	}

	sm.SwitchTo(newScene)
	sm.currentID = id
	log.Printf("[SceneManager] Switched to scene: %s", id)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
