// Package config builds the immutable game configuration once at startup.
// Every component receives the same *Config; nothing reads ambient globals.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/constants"
)

// Environment overrides for audio
const (
	EnvAudioEnabled = "PHONK_RACER_AUDIO_ENABLED"
	EnvMasterVolume = "PHONK_RACER_MASTER_VOLUME"
)

// DefaultKeyHold is how long a key press counts as held without a repeat
const DefaultKeyHold = 180 * time.Millisecond

// Config holds screen geometry, gameplay constants and process options
type Config struct {
	ScreenWidth, ScreenHeight int
	ObjWidth, ObjHeight       int
	CarWidth, CarHeight       int

	PlayerSpeed   int
	ObjSpeed      int
	CracksSpeed   int
	EnemyMinSpeed int
	EnemyMaxSpeed int

	NCars   int
	NTrees  int
	NCracks int

	AssetRoot string
	Debug     bool
	Seed      int64
	KeyHold   time.Duration

	Audio AudioConfig
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
}

// Default returns the configuration built from the fixed game constants
func Default() *Config {
	return &Config{
		ScreenWidth:   constants.ScreenWidth,
		ScreenHeight:  constants.ScreenHeight,
		ObjWidth:      constants.ObjWidth,
		ObjHeight:     constants.ObjHeight,
		CarWidth:      constants.CarWidth,
		CarHeight:     constants.CarHeight,
		PlayerSpeed:   constants.PlayerSpeed,
		ObjSpeed:      constants.ObjSpeed,
		CracksSpeed:   constants.CracksSpeed,
		EnemyMinSpeed: constants.EnemyMinSpeed,
		EnemyMaxSpeed: constants.EnemyMaxSpeed,
		NCars:         constants.NCars,
		NTrees:        constants.NTrees,
		NCracks:       constants.NCracks,
		AssetRoot:     constants.DefaultAssetRoot,
		KeyHold:       DefaultKeyHold,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
		},
	}
}

// Load parses command-line flags and audio environment overrides on top of Default.
// A zero -seed selects a time-based seed.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	fs.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Asset root directory (cars, trees, cracks, road, sounds)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Write debug log to logs/")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed, 0 = time based")
	fs.DurationVar(&cfg.KeyHold, "hold", cfg.KeyHold, "How long a key press steers without a repeat")
	mute := fs.Bool("mute", false, "Disable audio")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	applyAudioEnv(&cfg.Audio)
	if *mute {
		cfg.Audio.Enabled = false
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyAudioEnv reads audio overrides from the environment, ignoring malformed values
func applyAudioEnv(a *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			a.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			a.MasterVolume = float64(val) / 100.0
			if a.MasterVolume < 0 {
				a.MasterVolume = 0
			}
			if a.MasterVolume > 1 {
				a.MasterVolume = 1
			}
		}
	}
}

// Validate rejects geometry the spawner cannot work with
func (c *Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.CarWidth <= 0 || c.CarHeight <= 0:
		return errors.Errorf("invalid car size %dx%d", c.CarWidth, c.CarHeight)
	case c.ObjWidth <= 0 || c.ObjHeight <= 0:
		return errors.Errorf("invalid object size %dx%d", c.ObjWidth, c.ObjHeight)
	case c.EnemyMinSpeed > c.EnemyMaxSpeed:
		return errors.Errorf("enemy speed range [%d, %d] is empty", c.EnemyMinSpeed, c.EnemyMaxSpeed)
	case c.AssetRoot == "":
		return errors.New("asset root is empty")
	case c.KeyHold <= 0:
		return errors.Errorf("key hold window must be positive, got %s", c.KeyHold)
	}
	return nil
}

// PlayerStart returns the fixed start position of the player car
func (c *Config) PlayerStart() (x, y int) {
	return c.ScreenWidth/2 - c.CarWidth/2, c.ScreenHeight - 2*c.CarHeight
}
