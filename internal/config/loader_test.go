package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultQuestConfig()) {
		t.Errorf("embedded defaults differ from DefaultQuestConfig():\n%+v\n%+v", cfg, DefaultQuestConfig())
	}
}

func TestLoadQuestCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.yaml")
	data := []byte("physics:\n  gravity: 0.5\nrules:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuest(path)
	if err != nil {
		t.Fatalf("LoadQuest() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Rules.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Rules.Lives)
	}
	// Untouched fields keep their defaults
	if cfg.Player.SpawnX != 50 || cfg.World.Width != 800 {
		t.Errorf("partial file should keep defaults, got spawn_x=%v width=%v", cfg.Player.SpawnX, cfg.World.Width)
	}
}

func TestLoadQuestMissingCustomPath(t *testing.T) {
	_, err := LoadQuest(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadQuestUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "quest.yaml"), []byte("player:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuest("")
	if err != nil {
		t.Fatalf("LoadQuest() failed: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Speed = %v, expected 9 from user config", cfg.Player.Speed)
	}
}

func TestLoadQuestFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadQuest("")
	if err != nil {
		t.Fatalf("LoadQuest() failed: %v", err)
	}
	if cfg.Rules.CrystalsNeeded != 3 {
		t.Errorf("CrystalsNeeded = %d, expected 3", cfg.Rules.CrystalsNeeded)
	}
}

func TestWatchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	user := filepath.Join(home, AppDir, "configs", "quest.yaml")

	if got := WatchPath("/tmp/custom.yaml"); got != "/tmp/custom.yaml" {
		t.Errorf("WatchPath(custom) = %q", got)
	}
	if got := WatchPath(""); got != user {
		t.Errorf("WatchPath(\"\") with no files = %q, expected %q", got, user)
	}

	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := WatchPath(""); got != user {
		t.Errorf("WatchPath(\"\") = %q, expected existing user file %q", got, user)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuestConfig)
	}{
		{"zero world", func(c *QuestConfig) { c.World.Width = 0 }},
		{"negative player", func(c *QuestConfig) { c.Player.Height = -1 }},
		{"friction above one", func(c *QuestConfig) { c.Physics.Friction = 1.5 }},
		{"no lives", func(c *QuestConfig) { c.Rules.Lives = 0 }},
		{"no crystals", func(c *QuestConfig) { c.Rules.CrystalsNeeded = 0 }},
		{"zero speed scale", func(c *QuestConfig) { c.Rules.EnemySpeedScale = 0 }},
		{"negative tolerance", func(c *QuestConfig) { c.Enemies.PatrolTolerance = -1 }},
	}

	if err := DefaultQuestConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuestConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		scale  float64
	}{
		{DifficultyEasy, 5, 1.1},
		{DifficultyNormal, 3, 1.2},
		{DifficultyHard, 2, 1.35},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultQuestConfig()
			ApplyQuestPreset(&cfg, tc.preset)
			if cfg.Rules.Lives != tc.lives || cfg.Rules.EnemySpeedScale != tc.scale {
				t.Errorf("preset %s: lives=%d scale=%v, expected %d %v",
					tc.preset, cfg.Rules.Lives, cfg.Rules.EnemySpeedScale, tc.lives, tc.scale)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  lives: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("rules:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Rules.Lives != 9 {
			t.Errorf("reloaded Lives = %d, expected 9", cfg.Rules.Lives)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
