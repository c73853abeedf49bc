package config

import (
	"flag"
	"testing"
	"time"

	"github.com/lixenwraith/phonk-racer/constants"
)

func TestDefaultMatchesConstants(t *testing.T) {
	cfg := Default()

	if cfg.ScreenWidth != constants.ScreenWidth || cfg.ScreenHeight != constants.ScreenHeight {
		t.Errorf("screen = %dx%d, want %dx%d", cfg.ScreenWidth, cfg.ScreenHeight, constants.ScreenWidth, constants.ScreenHeight)
	}
	if cfg.NCars != constants.NCars || cfg.NTrees != constants.NTrees || cfg.NCracks != constants.NCracks {
		t.Errorf("populations = %d/%d/%d", cfg.NCars, cfg.NTrees, cfg.NCracks)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestPlayerStart(t *testing.T) {
	cfg := Default()
	x, y := cfg.PlayerStart()

	// 500/2 - 70/2 = 215, 700 - 2*80 = 540
	if x != 215 || y != 540 {
		t.Errorf("PlayerStart() = (%d, %d), want (215, 540)", x, y)
	}
}

func TestLoadFlags(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-assets", "/tmp/skins", "-seed", "42", "-hold", "250ms", "-debug", "-mute"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AssetRoot != "/tmp/skins" {
		t.Errorf("AssetRoot = %q", cfg.AssetRoot)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.KeyHold != 250*time.Millisecond {
		t.Errorf("KeyHold = %s", cfg.KeyHold)
	}
	if !cfg.Debug {
		t.Error("Debug should be set")
	}
	if cfg.Audio.Enabled {
		t.Error("-mute should disable audio")
	}
}

func TestLoadTimeSeed(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("zero seed should be replaced by a time based seed")
	}
}

func TestAudioEnvOverrides(t *testing.T) {
	tests := []struct {
		name        string
		enabled     string
		volume      string
		wantEnabled bool
		wantVolume  float64
	}{
		{"defaults", "", "", true, 1.0},
		{"disabled", "false", "", false, 1.0},
		{"half volume", "", "50", true, 0.5},
		{"clamped high", "", "150", true, 1.0},
		{"clamped low", "", "-20", true, 0.0},
		{"malformed ignored", "nope", "loud", true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tt.enabled)
			t.Setenv(EnvMasterVolume, tt.volume)

			a := Default().Audio
			applyAudioEnv(&a)

			if a.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", a.Enabled, tt.wantEnabled)
			}
			if a.MasterVolume != tt.wantVolume {
				t.Errorf("MasterVolume = %v, want %v", a.MasterVolume, tt.wantVolume)
			}
		})
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cfg := Default()
	cfg.CarWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero car width")
	}

	cfg = Default()
	cfg.EnemyMinSpeed, cfg.EnemyMaxSpeed = 10, 6
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty speed range")
	}

	cfg = Default()
	cfg.AssetRoot = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty asset root")
	}
}
