package game

import (
	"errors"
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowLeaderboard {
		t.Error("ShowLeaderboard: got false, want true")
	}
	if settings.PlayerName != "anon" {
		t.Errorf("PlayerName: got %q, want %q", settings.PlayerName, "anon")
	}
}

// TestNewSettingsManagerNilStore 测试 store 为 nil 时的降级场景
func TestNewSettingsManagerNilStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("settings should still change in memory")
	}
}

// TestSettingsLoadSave 使用真实的 gdata 存储测试 Load() 和 Save()
func TestSettingsLoadSave(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_echoorbit_settings",
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetFullscreen(true)
	sm1.SetShowLeaderboard(false)
	sm1.SetPlayerName("  carol  ")
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Fullscreen not persisted")
	}
	if settings.ShowLeaderboard {
		t.Error("ShowLeaderboard not persisted")
	}
	if settings.PlayerName != "carol" {
		t.Errorf("PlayerName: got %q, want %q", settings.PlayerName, "carol")
	}
}

func TestSettingsLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		loadErr error
		wantErr bool
		want    GameSettings
	}{
		{
			name: "部分字段",
			raw:  "fullscreen: true\n",
			want: GameSettings{Fullscreen: true, ShowLeaderboard: true, PlayerName: "anon"},
		},
		{
			name: "空名字",
			raw:  "playerName: \"\"\n",
			want: GameSettings{ShowLeaderboard: true, PlayerName: "anon"},
		},
		{
			name:    "损坏的 YAML",
			raw:     "fullscreen: [oops",
			wantErr: true,
			want:    *DefaultSettings(),
		},
		{
			name:    "读取失败",
			raw:     "fullscreen: true\n",
			loadErr: errors.New("io error"),
			wantErr: true,
			want:    *DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			store.data[store.key(settingsObject, settingsProperty)] = []byte(tt.raw)
			store.loadErr = tt.loadErr

			sm := &SettingsManager{store: store, settings: DefaultSettings()}
			err := sm.Load()

			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := *sm.GetSettings(); got != tt.want {
				t.Errorf("settings: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetPlayerNameNormalizes(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetPlayerName("abcdefghijklmnopq")
	if got := sm.GetSettings().PlayerName; got != "abcdefghijkl" {
		t.Errorf("PlayerName: got %q, want %q", got, "abcdefghijkl")
	}

	sm.SetPlayerName("   ")
	if got := sm.GetSettings().PlayerName; got != "anon" {
		t.Errorf("PlayerName: got %q, want %q", got, "anon")
	}
}
