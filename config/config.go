// Package config holds the tunables of the game and the front ends. Values
// come from defaults, LIGHTCYCLES_* environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"math"
	"strings"
	"time"

	"github.com/battlesnakeio/lightcycles/setup"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "LIGHTCYCLES"

// Keys shared by viper, flags and the environment.
const (
	KeyPlayers      = "players"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyMargin       = "margin"
	KeySpeed        = "speed"
	KeyTurnRate     = "turn-rate"
	KeyHitThreshold = "hit-threshold"
	KeyGrowthTicks  = "growth-ticks"
	KeyTickInterval = "tick-interval"
	KeyKeyHold      = "key-hold"
	KeyInputRPS     = "input-rps"
	KeyInputBurst   = "input-burst"
)

// Config is the resolved configuration.
type Config struct {
	Players      int
	Width        float64
	Height       float64
	Margin       float64
	Speed        float64
	TurnRate     float64
	HitThreshold float64
	GrowthTicks  int
	TickInterval time.Duration
	// KeyHold is how long a terminal key press counts as held.
	KeyHold    time.Duration
	InputRate  rate.Limit
	InputBurst int
}

// Default returns the built in configuration.
func Default() Config {
	return Config{
		Players:      6,
		Width:        800,
		Height:       600,
		Margin:       100,
		Speed:        3,
		TurnRate:     0.06,
		HitThreshold: 2,
		GrowthTicks:  1,
		TickInterval: 16 * time.Millisecond,
		KeyHold:      150 * time.Millisecond,
		InputRate:    rate.Limit(200),
		InputBurst:   50,
	}
}

// New returns a viper instance with the defaults registered and environment
// lookup enabled.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPlayers, d.Players)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyMargin, d.Margin)
	v.SetDefault(KeySpeed, d.Speed)
	v.SetDefault(KeyTurnRate, d.TurnRate)
	v.SetDefault(KeyHitThreshold, d.HitThreshold)
	v.SetDefault(KeyGrowthTicks, d.GrowthTicks)
	v.SetDefault(KeyTickInterval, d.TickInterval)
	v.SetDefault(KeyKeyHold, d.KeyHold)
	v.SetDefault(KeyInputRPS, float64(d.InputRate))
	v.SetDefault(KeyInputBurst, d.InputBurst)
	return v
}

// AddFlags registers the game flags on fs and binds them to v.
func AddFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	d := Default()
	fs.Int(KeyPlayers, d.Players, "number of player slots on the setup screen")
	fs.Float64(KeyWidth, d.Width, "canvas width in pixels")
	fs.Float64(KeyHeight, d.Height, "canvas height in pixels")
	fs.Float64(KeyMargin, d.Margin, "distance from the edges where agents never spawn")
	fs.Float64(KeySpeed, d.Speed, "agent speed in pixels per tick")
	fs.Float64(KeyTurnRate, d.TurnRate, "heading change in radians per tick while a turn key is held")
	fs.Float64(KeyHitThreshold, d.HitThreshold, "collision hit box half size in pixels")
	fs.Int(KeyGrowthTicks, d.GrowthTicks, "ticks during which a new trail is not truncated")
	fs.Duration(KeyTickInterval, d.TickInterval, "game tick interval")
	fs.Duration(KeyKeyHold, d.KeyHold, "how long a terminal key press is held")
	fs.Float64(KeyInputRPS, float64(d.InputRate), "input events accepted per second per connection")
	fs.Int(KeyInputBurst, d.InputBurst, "input event burst per connection")

	return errors.Wrap(v.BindPFlags(fs), "unable to bind flags")
}

// Load resolves the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Players:      v.GetInt(KeyPlayers),
		Width:        v.GetFloat64(KeyWidth),
		Height:       v.GetFloat64(KeyHeight),
		Margin:       v.GetFloat64(KeyMargin),
		Speed:        v.GetFloat64(KeySpeed),
		TurnRate:     v.GetFloat64(KeyTurnRate),
		HitThreshold: v.GetFloat64(KeyHitThreshold),
		GrowthTicks:  v.GetInt(KeyGrowthTicks),
		TickInterval: v.GetDuration(KeyTickInterval),
		KeyHold:      v.GetDuration(KeyKeyHold),
		InputRate:    rate.Limit(v.GetFloat64(KeyInputRPS)),
		InputBurst:   v.GetInt(KeyInputBurst),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Players < 1 {
		return errors.Errorf("config: at least one player slot is required, got %d", c.Players)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: invalid canvas size %vx%v", c.Width, c.Height)
	}
	if !setup.Fits(c.Players, c.Width, c.Height) {
		return errors.Errorf("config: %d player slots and the start button do not fit on a %vx%v canvas", c.Players, c.Width, c.Height)
	}
	if c.Margin < 0 || 2*c.Margin >= c.Width || 2*c.Margin >= c.Height {
		return errors.Errorf("config: margin %v leaves no room to spawn on a %vx%v canvas", c.Margin, c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return errors.Errorf("config: speed must be positive, got %v", c.Speed)
	}
	if c.HitThreshold <= 0 {
		return errors.Errorf("config: hit threshold must be positive, got %v", c.HitThreshold)
	}
	// a diagonal step covers speed/sqrt(2) on each axis, anything less and an
	// agent collides with the point it just left
	if c.HitThreshold > c.Speed/math.Sqrt2 {
		return errors.Errorf("config: hit threshold %v is too large for speed %v", c.HitThreshold, c.Speed)
	}
	if c.GrowthTicks < 0 {
		return errors.Errorf("config: growth ticks must not be negative, got %d", c.GrowthTicks)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("config: tick interval must be positive, got %v", c.TickInterval)
	}
	return nil
}
