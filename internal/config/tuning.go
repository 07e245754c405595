// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is looked up in the directory passed to Load.
const ConfigFileName = "arena.cfg.json"

// Tuning holds every numeric input of the rules engine.
type Tuning struct {
	LogLevel     string          `mapstructure:"logLevel"`
	Seed         int64           `mapstructure:"seed"`
	PowerUpsFile string          `mapstructure:"powerUpsFile"`
	Tank         TankTuning      `mapstructure:"tank"`
	Bullet       BulletTuning    `mapstructure:"bullet"`
	Explosion    ExplosionTuning `mapstructure:"explosion"`
	Shield       ShieldTuning    `mapstructure:"shield"`
	Spread       SpreadTuning    `mapstructure:"spread"`
	Match        MatchTuning     `mapstructure:"match"`
	Spawner      SpawnerTuning   `mapstructure:"spawner"`
	History      HistoryConfig   `mapstructure:"history"`
	Spectator    SpectatorConfig `mapstructure:"spectator"`
	Audio        AudioConfig     `mapstructure:"audio"`
	Telemetry    TelemetryConfig `mapstructure:"telemetry"`
}

type TankTuning struct {
	MoveSpeed       float64 `mapstructure:"moveSpeed"`
	ReverseFactor   float64 `mapstructure:"reverseFactor"`
	RotationSpeed   float64 `mapstructure:"rotationSpeed"`
	FireRate        float64 `mapstructure:"fireRate"`
	BulletSpeed     float64 `mapstructure:"bulletSpeed"`
	SpinDuration    float64 `mapstructure:"spinDuration"`
	SpinRotations   int     `mapstructure:"spinRotations"`
	Radius          float64 `mapstructure:"radius"`
	FirePointOffset float64 `mapstructure:"firePointOffset"`
}

type BulletTuning struct {
	Lifetime       float64 `mapstructure:"lifetime"`
	ControlForce   float64 `mapstructure:"controlForce"`
	MaxSpeedFactor float64 `mapstructure:"maxSpeedFactor"`
	// ForceStep converts ControlForce into acceleration: a = ControlForce * ForceStep.
	ForceStep float64 `mapstructure:"forceStep"`
	Radius    float64 `mapstructure:"radius"`
}

type ExplosionTuning struct {
	EffectLifetime float64 `mapstructure:"effectLifetime"`
	DefaultRadius  float64 `mapstructure:"defaultRadius"`
}

type ShieldTuning struct {
	Radius float64 `mapstructure:"radius"`
}

type SpreadTuning struct {
	AnglePerBullet float64 `mapstructure:"anglePerBullet"`
	MinSpread      float64 `mapstructure:"minSpread"`
	MaxSpread      float64 `mapstructure:"maxSpread"`
	MinBullets     int     `mapstructure:"minBullets"`
	MaxBullets     int     `mapstructure:"maxBullets"`
}

type MatchTuning struct {
	ScoreToWin    int     `mapstructure:"scoreToWin"`
	GameOverDelay float64 `mapstructure:"gameOverDelay"`
}

type SpawnerTuning struct {
	Enabled          bool    `mapstructure:"enabled"`
	MaxPowerUps      int     `mapstructure:"maxPowerUps"`
	SpawnInterval    float64 `mapstructure:"spawnInterval"`
	PowerUpLifetime  float64 `mapstructure:"powerUpLifetime"`
	SpawnCheckRadius float64 `mapstructure:"spawnCheckRadius"`
	MaxAttempts      int     `mapstructure:"maxAttempts"`
	AreaMinX         float64 `mapstructure:"areaMinX"`
	AreaMinY         float64 `mapstructure:"areaMinY"`
	AreaMaxX         float64 `mapstructure:"areaMaxX"`
	AreaMaxY         float64 `mapstructure:"areaMaxY"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type SpectatorConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// TelemetryConfig: counters are exported as JSON to Path (stdout when empty)
// every Interval seconds.
type TelemetryConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	Path     string  `mapstructure:"path"`
	Interval float64 `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("powerUpsFile", "")

	v.SetDefault("tank.moveSpeed", 5.0)
	v.SetDefault("tank.reverseFactor", 0.5)
	v.SetDefault("tank.rotationSpeed", 100.0)
	v.SetDefault("tank.fireRate", 0.5)
	v.SetDefault("tank.bulletSpeed", 5.0)
	v.SetDefault("tank.spinDuration", 1.0)
	v.SetDefault("tank.spinRotations", 3)
	v.SetDefault("tank.radius", 0.45)
	v.SetDefault("tank.firePointOffset", 1.0)

	v.SetDefault("bullet.lifetime", 5.0)
	v.SetDefault("bullet.controlForce", 200.0)
	v.SetDefault("bullet.maxSpeedFactor", 1.5)
	v.SetDefault("bullet.forceStep", 0.02)
	v.SetDefault("bullet.radius", 0.15)

	v.SetDefault("explosion.effectLifetime", 3.0)
	v.SetDefault("explosion.defaultRadius", 3.0)

	v.SetDefault("shield.radius", 0.8)

	v.SetDefault("spread.anglePerBullet", 15.0)
	v.SetDefault("spread.minSpread", 30.0)
	v.SetDefault("spread.maxSpread", 90.0)
	v.SetDefault("spread.minBullets", 3)
	v.SetDefault("spread.maxBullets", 7)

	v.SetDefault("match.scoreToWin", 5)
	v.SetDefault("match.gameOverDelay", 2.0)

	v.SetDefault("spawner.enabled", true)
	v.SetDefault("spawner.maxPowerUps", 3)
	v.SetDefault("spawner.spawnInterval", 10.0)
	v.SetDefault("spawner.powerUpLifetime", 15.0)
	v.SetDefault("spawner.spawnCheckRadius", 1.0)
	v.SetDefault("spawner.maxAttempts", 20)
	v.SetDefault("spawner.areaMinX", -8.0)
	v.SetDefault("spawner.areaMinY", -4.0)
	v.SetDefault("spawner.areaMaxX", 8.0)
	v.SetDefault("spawner.areaMaxY", 4.0)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "./arena_history.db")

	v.SetDefault("spectator.enabled", false)
	v.SetDefault("spectator.addr", "localhost:8787")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.path", "./arena_metrics.jsonl")
	v.SetDefault("telemetry.interval", 30.0)
}

// Default returns the built-in tuning without touching the filesystem.
func Default() *Tuning {
	v := viper.New()
	setDefaults(v)
	t := &Tuning{}
	if err := v.Unmarshal(t); err != nil {
		panic(fmt.Sprintf("config: default tuning does not decode: %v", err))
	}
	return t
}

// Load reads arena.cfg.json from dir on top of the defaults. A missing file is
// not an error. TANKS_* environment variables override both, e.g.
// TANKS_MATCH_SCORETOWIN=3.
func Load(dir string) (*Tuning, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("TANKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	t := &Tuning{}
	if err := v.Unmarshal(t); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects tunings the rules engine cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	if t.Tank.SpinDuration <= 0 {
		errs = append(errs, fmt.Errorf("tank.spinDuration must be > 0, got %v", t.Tank.SpinDuration))
	}
	if t.Tank.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("tank.bulletSpeed must be > 0, got %v", t.Tank.BulletSpeed))
	}
	if t.Bullet.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("bullet.lifetime must be > 0, got %v", t.Bullet.Lifetime))
	}
	if t.Spread.MinBullets < 2 || t.Spread.MaxBullets < t.Spread.MinBullets {
		errs = append(errs, fmt.Errorf("spread bullets range [%d,%d] is invalid", t.Spread.MinBullets, t.Spread.MaxBullets))
	}
	if t.Telemetry.Enabled && t.Telemetry.Interval <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.interval must be > 0, got %v", t.Telemetry.Interval))
	}
	if t.Match.ScoreToWin <= 0 {
		errs = append(errs, fmt.Errorf("match.scoreToWin must be > 0, got %d", t.Match.ScoreToWin))
	}
	return errors.Join(errs...)
}
