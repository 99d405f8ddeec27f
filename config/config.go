package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid value")

// Config is the editor's user-tunable state.
type Config struct {
	Keys    KeyBindings `yaml:"keys"`
	Colors  Colors      `yaml:"colors"`
	Palette Palette     `yaml:"palette"`
	Pane    Pane        `yaml:"pane"`
}

// KeyBindings names keys by ebiten's key names ("H", "Shift", "Escape").
type KeyBindings struct {
	FlipX          ebiten.Key `yaml:"flip_x"`
	FlipY          ebiten.Key `yaml:"flip_y"`
	FlipD          ebiten.Key `yaml:"flip_d"`
	Rotate         ebiten.Key `yaml:"rotate"`
	RotateModifier ebiten.Key `yaml:"rotate_modifier"`
	Brush          ebiten.Key `yaml:"brush"`
	Eraser         ebiten.Key `yaml:"eraser"`
	Picker         ebiten.Key `yaml:"picker"`
	Whois          ebiten.Key `yaml:"whois"`
	CopyWhois      ebiten.Key `yaml:"copy_whois"`
	Exit           ebiten.Key `yaml:"exit"`
}

type Colors struct {
	MapOutline      Color   `yaml:"map_outline"`
	TileOutline     Color   `yaml:"tile_outline"`
	PaletteHover    Color   `yaml:"palette_hover"`
	PaletteSelected Color   `yaml:"palette_selected"`
	Text            Color   `yaml:"text"`
	Tints           []Color `yaml:"tints"`
}

// Palette sizes the tile palette view, in screen pixels.
type Palette struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

type Pane struct {
	Width    int     `yaml:"width"`
	FontSize float64 `yaml:"font_size"`
}

// Color decodes either "#rrggbb", "#rrggbbaa" or an SVG color name.
type Color color.NRGBA

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// ParseColor parses a hex color or a name from colornames.
func ParseColor(v string) (Color, error) {
	s := strings.TrimSpace(v)
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalid, v)
		}
		return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("%w: invalid color format %q", ErrInvalid, v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	var out Color
	var err error
	if out.R, err = parse(0); err != nil {
		return Color{}, fmt.Errorf("%w: parse red component: %v", ErrInvalid, err)
	}
	if out.G, err = parse(2); err != nil {
		return Color{}, fmt.Errorf("%w: parse green component: %v", ErrInvalid, err)
	}
	if out.B, err = parse(4); err != nil {
		return Color{}, fmt.Errorf("%w: parse blue component: %v", ErrInvalid, err)
	}
	out.A = 0xff
	if len(s) == 8 {
		if out.A, err = parse(6); err != nil {
			return Color{}, fmt.Errorf("%w: parse alpha component: %v", ErrInvalid, err)
		}
	}
	return out, nil
}

var defaultConfig = func() Config {
	cfg, err := parse(Config{}, defaultYAML)
	if err != nil {
		panic("config: embedded defaults: " + err.Error())
	}
	return cfg
}()

// Default returns the embedded defaults.
func Default() Config {
	cfg := defaultConfig
	cfg.Colors.Tints = append([]Color(nil), defaultConfig.Colors.Tints...)
	return cfg
}

// Parse decodes data on top of the defaults.
func Parse(data []byte) (Config, error) {
	return parse(Default(), data)
}

// Load reads and parses a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes the palette and pane cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.Palette.Width <= 0 || c.Palette.Height <= 0:
		return fmt.Errorf("%w: palette size %vx%v", ErrInvalid, c.Palette.Width, c.Palette.Height)
	case c.Palette.ScrollSpeed <= 0:
		return fmt.Errorf("%w: palette scroll speed %v", ErrInvalid, c.Palette.ScrollSpeed)
	case c.Pane.Width <= 0:
		return fmt.Errorf("%w: pane width %d", ErrInvalid, c.Pane.Width)
	case c.Pane.FontSize <= 0:
		return fmt.Errorf("%w: pane font size %v", ErrInvalid, c.Pane.FontSize)
	}
	return nil
}
