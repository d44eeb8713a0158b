package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Fish.DetectionRadius != 200 {
		t.Errorf("detection radius = %v, want 200", cfg.Fish.DetectionRadius)
	}
	if cfg.Derived.TankW != 640 || cfg.Derived.TankH != 400 {
		t.Errorf("tank = %vx%v, want 640x400", cfg.Derived.TankW, cfg.Derived.TankH)
	}
	if cfg.Derived.MouthRight.X != 90 || cfg.Derived.MouthLeft.X != 10 {
		t.Errorf("mouth offsets = %v / %v", cfg.Derived.MouthRight, cfg.Derived.MouthLeft)
	}
	if len(cfg.Buttons) != 2 {
		t.Errorf("got %d buttons, want 2", len(cfg.Buttons))
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("fish:\n  speed: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Fish.Speed != 3 {
		t.Errorf("speed = %v, want 3", cfg.Fish.Speed)
	}
	if cfg.Fish.FeedSpeed != 2 {
		t.Errorf("feed speed = %v, want default 2", cfg.Fish.FeedSpeed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	body := "fish:\n  speed: 0\nbuttons:\n  - label: x\n    action: explode\n    rect: [0, 0, 1, 1]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"fish speeds", "explode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Fish.BubblePeriod != cfg.Fish.BubblePeriod || back.Screen.Title != cfg.Screen.Title {
		t.Error("written config did not load back")
	}
}
