// Package config loads tuning overrides from TOML on top of the defaults in package parameter
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/parameter"
)

var (
	// ErrInvalid wraps every validation failure
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned when a file sets keys no section declares
	ErrUnknownKey = errors.New("config: unknown key")
)

// Duration is a time.Duration written as a Go duration string ("5s", "500ms")
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete set of tunables consumed by the simulation
type Config struct {
	// Seed drives all level and spawn randomness, 0 picks a time-based seed
	Seed uint64 `toml:"seed"`

	Player   PlayerConfig   `toml:"player"`
	Weapon   WeaponConfig   `toml:"weapon"`
	Enemy    EnemyConfig    `toml:"enemy"`
	Spawn    SpawnConfig    `toml:"spawn"`
	Travel   TravelConfig   `toml:"travel"`
	Scanner  ScannerConfig  `toml:"scanner"`
	Fuel     FuelConfig     `toml:"fuel"`
	Level    LevelConfig    `toml:"level"`
	Viewport ViewportConfig `toml:"viewport"`
}

type PlayerConfig struct {
	TurnRate float64 `toml:"turn_rate"`
	Thrust   float64 `toml:"thrust"`
	MaxSpeed float64 `toml:"max_speed"`
	FuelMax  int     `toml:"fuel_max"`
}

type WeaponConfig struct {
	Cooldown  Duration `toml:"cooldown"`
	Damage    float64  `toml:"damage"`
	Speed     float64  `toml:"speed"`
	Range     float64  `toml:"range"`
	Offset    float64  `toml:"offset"`
	Piercing  bool     `toml:"piercing"`
	HitRadius float64  `toml:"hit_radius"`
}

type EnemyConfig struct {
	Health           float64 `toml:"health"`
	MaxSpeed         float64 `toml:"max_speed"`
	SeparationRadius float64 `toml:"separation_radius"`
	SeparationWeight float64 `toml:"separation_weight"`
	CullDistance     float64 `toml:"cull_distance"`
}

type SpawnConfig struct {
	InitialPeriod Duration `toml:"initial_period"`
	MinPeriod     Duration `toml:"min_period"`
	RampInterval  Duration `toml:"ramp_interval"`
	Cap           int      `toml:"cap"`
	BoundsX       float64  `toml:"bounds_x"`
	BoundsY       float64  `toml:"bounds_y"`
}

type TravelConfig struct {
	Approach         Duration `toml:"approach"`
	FadeOut          Duration `toml:"fade_out"`
	Dwell            Duration `toml:"dwell"`
	FadeIn           Duration `toml:"fade_in"`
	ActivationRadius float64  `toml:"activation_radius"`
	TimeDivisor      float64  `toml:"time_divisor"`
}

type ScannerConfig struct {
	Period Duration `toml:"period"`
}

type FuelConfig struct {
	MaxSpeed      float64 `toml:"max_speed"`
	HomingSpeed   float64 `toml:"homing_speed"`
	AttractRadius float64 `toml:"attract_radius"`
	CollectRadius float64 `toml:"collect_radius"`
}

type LevelConfig struct {
	CommodityCount       int     `toml:"commodity_count"`
	CommodityMinDistance float64 `toml:"commodity_min_distance"`
	CommodityMaxDistance float64 `toml:"commodity_max_distance"`
	CommodityTotal       int     `toml:"commodity_total"`
	CommodityMinAmount   int     `toml:"commodity_min_amount"`
	CommodityRadius      float64 `toml:"commodity_radius"`
	DestinationCount     int     `toml:"destination_count"`
	DestinationMin       float64 `toml:"destination_min_distance"`
	DestinationMax       float64 `toml:"destination_max_distance"`
	MinSeparationDeg     float64 `toml:"min_separation_deg"`
}

type ViewportConfig struct {
	HalfWidth  float64 `toml:"half_width"`
	HalfHeight float64 `toml:"half_height"`
	InsetX     float64 `toml:"inset_x"`
	InsetY     float64 `toml:"inset_y"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			TurnRate: parameter.PlayerTurnRate,
			Thrust:   parameter.PlayerThrust,
			MaxSpeed: parameter.PlayerMaxSpeed,
			FuelMax:  parameter.PlayerFuelMax,
		},
		Weapon: WeaponConfig{
			Cooldown:  Duration{parameter.WeaponCooldown},
			Damage:    parameter.WeaponDamage,
			Speed:     parameter.WeaponProjectileSpeed,
			Range:     parameter.WeaponProjectileRange,
			Offset:    parameter.WeaponSpawnOffset,
			HitRadius: parameter.ProjectileHitRadius,
		},
		Enemy: EnemyConfig{
			Health:           parameter.EnemyHealth,
			MaxSpeed:         parameter.EnemyMaxSpeed,
			SeparationRadius: parameter.EnemySeparationRadius,
			SeparationWeight: parameter.EnemySeparationWeight,
			CullDistance:     parameter.EnemyCullDistance,
		},
		Spawn: SpawnConfig{
			InitialPeriod: Duration{parameter.SpawnInitialPeriod},
			MinPeriod:     Duration{parameter.SpawnMinPeriod},
			RampInterval:  Duration{parameter.SpawnRampInterval},
			Cap:           parameter.SpawnCap,
			BoundsX:       parameter.SpawnBoundsX,
			BoundsY:       parameter.SpawnBoundsY,
		},
		Travel: TravelConfig{
			Approach:         Duration{parameter.TravelApproachDuration},
			FadeOut:          Duration{parameter.TravelFadeOutDuration},
			Dwell:            Duration{parameter.TravelDwellDuration},
			FadeIn:           Duration{parameter.TravelFadeInDuration},
			ActivationRadius: parameter.TravelActivationRadius,
			TimeDivisor:      parameter.WarpTimeDivisor,
		},
		Scanner: ScannerConfig{
			Period: Duration{parameter.ScannerPeriod},
		},
		Fuel: FuelConfig{
			MaxSpeed:      parameter.FuelPelletMaxSpeed,
			HomingSpeed:   parameter.FuelPelletHomingSpeed,
			AttractRadius: parameter.FuelPelletAttractRadius,
			CollectRadius: parameter.FuelPelletCollectRadius,
		},
		Level: LevelConfig{
			CommodityCount:       parameter.LevelCommodityCount,
			CommodityMinDistance: parameter.LevelCommodityMinDistance,
			CommodityMaxDistance: parameter.LevelCommodityMaxDistance,
			CommodityTotal:       parameter.LevelCommodityTotal,
			CommodityMinAmount:   parameter.LevelCommodityMinAmount,
			CommodityRadius:      parameter.CommodityCollectRadius,
			DestinationCount:     parameter.LevelDestinationCount,
			DestinationMin:       parameter.LevelDestinationMinDistance,
			DestinationMax:       parameter.LevelDestinationMaxDistance,
			MinSeparationDeg:     parameter.LevelMinSeparationDeg,
		},
		Viewport: ViewportConfig{
			HalfWidth:  parameter.ViewHalfWidth,
			HalfHeight: parameter.ViewHalfHeight,
			InsetX:     parameter.IndicatorInsetX,
			InsetY:     parameter.IndicatorInsetY,
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player.thrust", c.Player.Thrust},
		{"player.max_speed", c.Player.MaxSpeed},
		{"player.fuel_max", float64(c.Player.FuelMax)},
		{"weapon.cooldown", c.Weapon.Cooldown.Seconds()},
		{"weapon.speed", c.Weapon.Speed},
		{"weapon.range", c.Weapon.Range},
		{"weapon.hit_radius", c.Weapon.HitRadius},
		{"enemy.health", c.Enemy.Health},
		{"enemy.cull_distance", c.Enemy.CullDistance},
		{"spawn.initial_period", c.Spawn.InitialPeriod.Seconds()},
		{"spawn.min_period", c.Spawn.MinPeriod.Seconds()},
		{"spawn.ramp_interval", c.Spawn.RampInterval.Seconds()},
		{"spawn.cap", float64(c.Spawn.Cap)},
		{"spawn.bounds_x", c.Spawn.BoundsX},
		{"spawn.bounds_y", c.Spawn.BoundsY},
		{"travel.approach", c.Travel.Approach.Seconds()},
		{"travel.fade_out", c.Travel.FadeOut.Seconds()},
		{"travel.dwell", c.Travel.Dwell.Seconds()},
		{"travel.fade_in", c.Travel.FadeIn.Seconds()},
		{"travel.activation_radius", c.Travel.ActivationRadius},
		{"travel.time_divisor", c.Travel.TimeDivisor},
		{"scanner.period", c.Scanner.Period.Seconds()},
		{"fuel.collect_radius", c.Fuel.CollectRadius},
		{"viewport.half_width", c.Viewport.HalfWidth},
		{"viewport.half_height", c.Viewport.HalfHeight},
		{"viewport.inset_x", c.Viewport.InsetX},
		{"viewport.inset_y", c.Viewport.InsetY},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, p.name)
		}
	}

	if c.Spawn.MinPeriod.Duration > c.Spawn.InitialPeriod.Duration {
		return fmt.Errorf("%w: spawn.min_period exceeds spawn.initial_period", ErrInvalid)
	}
	if c.Level.CommodityMinDistance > c.Level.CommodityMaxDistance {
		return fmt.Errorf("%w: level commodity distance range is inverted", ErrInvalid)
	}
	if c.Level.DestinationMin > c.Level.DestinationMax {
		return fmt.Errorf("%w: level destination distance range is inverted", ErrInvalid)
	}
	if c.Level.CommodityCount < 0 || c.Level.DestinationCount < 0 {
		return fmt.Errorf("%w: level counts must not be negative", ErrInvalid)
	}
	if c.Level.CommodityCount > int(component.CommodityKindCount) {
		return fmt.Errorf("%w: level.commodity_count exceeds %d kinds", ErrInvalid, component.CommodityKindCount)
	}
	if c.Level.DestinationCount > 26 {
		return fmt.Errorf("%w: level.destination_count exceeds label range", ErrInvalid)
	}
	if c.Level.CommodityCount*c.Level.CommodityMinAmount > c.Level.CommodityTotal {
		return fmt.Errorf("%w: level.commodity_total cannot cover minimum amounts", ErrInvalid)
	}
	for _, n := range []int{c.Level.CommodityCount, c.Level.DestinationCount} {
		if float64(n)*c.Level.MinSeparationDeg > 360 {
			return fmt.Errorf("%w: level.min_separation_deg too large for object count", ErrInvalid)
		}
	}
	if c.Viewport.InsetX > c.Viewport.HalfWidth || c.Viewport.InsetY > c.Viewport.HalfHeight {
		return fmt.Errorf("%w: viewport inset exceeds half extents", ErrInvalid)
	}
	return nil
}
