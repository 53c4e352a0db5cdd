package sim

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultBallColor is used when a ball spec gives no colour.
var defaultBallColor = color.RGBA{R: 0xcf, G: 0x53, B: 0x53, A: 0xff}

// Config is the YAML world description supplied at startup. There is no
// runtime reconfiguration: the file is read once and the world is built
// from it.
type Config struct {
	World WorldConfig  `yaml:"world"`
	Balls []BallConfig `yaml:"balls"`
}

// WorldConfig holds the playfield and the global physics constants.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // units per second squared
	EpsilonRest float64 `yaml:"epsilon_rest"` // damping floor speed
}

// BallConfig holds one ball's initial state and material constants.
type BallConfig struct {
	Label         string  `yaml:"label"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	VX            float64 `yaml:"vx"`
	VY            float64 `yaml:"vy"`
	Radius        float64 `yaml:"radius"`
	Color         string  `yaml:"color"` // "#rrggbb"
	Weight        float64 `yaml:"weight"`
	Bounciness    float64 `yaml:"bounciness"`
	GroundDrag    float64 `yaml:"ground_drag"`
	AirResistance float64 `yaml:"air_resistance"`
}

// Material extracts the material constants. Validation happens at ball
// construction.
func (bc BallConfig) Material() Material {
	return Material{
		Weight:        bc.Weight,
		Bounciness:    bc.Bounciness,
		GroundDrag:    bc.GroundDrag,
		AirResistance: bc.AirResistance,
	}
}

// DefaultConfig is the built-in world used when no file is given: one ball
// dropped from the centre of a 640x360 playfield.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:       640,
			Height:      360,
			Gravity:     600,
			EpsilonRest: 20,
		},
		Balls: []BallConfig{
			{
				Label:         "B0",
				X:             320,
				Y:             180,
				Radius:        24,
				Color:         "#cf5353",
				Weight:        0.8,
				Bounciness:    0.6,
				GroundDrag:    0.98,
				AirResistance: 0.3,
			},
		},
	}
}

// ParseConfig decodes a YAML world description and fills in the defaults
// for omitted world fields and ball labels.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{World: DefaultConfig().World}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return Config{}, fmt.Errorf("config: world bounds must be positive, got %gx%g",
			cfg.World.Width, cfg.World.Height)
	}
	for i := range cfg.Balls {
		if cfg.Balls[i].Label == "" {
			cfg.Balls[i].Label = fmt.Sprintf("B%d", i)
		}
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML world file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(data)
}

// Build constructs the world and its balls. Invalid material constants or
// radii surface here as construction errors.
func (c Config) Build(log *SimLog) (*World, error) {
	world := NewWorld(
		Bounds{Width: c.World.Width, Height: c.World.Height},
		c.World.Gravity, c.World.EpsilonRest, log,
	)
	for _, bc := range c.Balls {
		col := defaultBallColor
		if bc.Color != "" {
			parsed, err := ParseHexColor(bc.Color)
			if err != nil {
				return nil, fmt.Errorf("ball %s: %w", bc.Label, err)
			}
			col = parsed
		}
		ball, err := NewBall(bc.Label,
			Vec{X: bc.X, Y: bc.Y}, Vec{X: bc.VX, Y: bc.VY},
			bc.Radius, bc.Material(), col)
		if err != nil {
			return nil, err
		}
		world.AddEntity(ball)
	}
	return world, nil
}

// ParseHexColor decodes a "#rrggbb" colour string.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
