// Package config loads dirline settings from defaults, an optional config
// file, DIRLINE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/dirline/render"
)

// EnvPrefix prefixes environment overrides, e.g. DIRLINE_BOARD_ROWS
const EnvPrefix = "DIRLINE"

// Config is the complete program configuration
type Config struct {
	Board BoardConfig `mapstructure:"board"`
	Theme ThemeConfig `mapstructure:"theme"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

// BoardConfig sizes the board
type BoardConfig struct {
	// Rows is the board height in terminal rows; 0 fits the terminal
	Rows int `mapstructure:"rows"`
}

// ThemeConfig holds color names or #rrggbb values
type ThemeConfig struct {
	Border    string `mapstructure:"border"`
	Line      string `mapstructure:"line"`
	Direction string `mapstructure:"direction"`
	Marker    string `mapstructure:"marker"`
	Active    string `mapstructure:"active"`
	Button    string `mapstructure:"button"`
	Status    string `mapstructure:"status"`
}

// AudioConfig toggles interaction cues
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug   bool   `mapstructure:"debug"`
	Dir     string `mapstructure:"dir"`
	MaxSize int64  `mapstructure:"max_size"`
}

// Flag names bound to configuration keys
var flagKeys = map[string]string{
	"rows":    "board.rows",
	"audio":   "audio.enabled",
	"debug":   "log.debug",
	"log-dir": "log.dir",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.rows", 0)

	v.SetDefault("theme.border", "gray")
	v.SetDefault("theme.line", "#3376ff")
	v.SetDefault("theme.direction", "#2222ff")
	v.SetDefault("theme.marker", "#3376ff")
	v.SetDefault("theme.active", "#ffd75f")
	v.SetDefault("theme.button", "silver")
	v.SetDefault("theme.status", "gray")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.max_size", 10*1024*1024)
}

// Load builds a Config. path may be empty or start with ~; flags may be nil.
// Only flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "expand config path %s", path)
		}
		path = expanded
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and color names
func (c *Config) Validate() error {
	if c.Board.Rows < 0 {
		return errors.Errorf("board.rows must be >= 0, got %d", c.Board.Rows)
	}
	if c.Board.Rows > 0 && c.Board.Rows < render.MinBoardRows {
		return errors.Errorf("board.rows must be 0 or at least %d, got %d", render.MinBoardRows, c.Board.Rows)
	}
	if c.Log.MaxSize <= 0 {
		return errors.Errorf("log.max_size must be positive, got %d", c.Log.MaxSize)
	}
	if c.Log.Debug && c.Log.Dir == "" {
		return errors.New("log.dir is required when log.debug is set")
	}

	_, err := c.Theme.Palette()
	return err
}

// ParseColor resolves a W3C color name or #rrggbb value
func ParseColor(name string) (tcell.Color, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault && !strings.EqualFold(name, "default") {
		return tcell.ColorDefault, errors.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Palette resolves the theme colors for the renderer
func (t ThemeConfig) Palette() (render.Palette, error) {
	var p render.Palette
	fields := []struct {
		key  string
		name string
		dst  *tcell.Color
	}{
		{"border", t.Border, &p.Border},
		{"line", t.Line, &p.Line},
		{"direction", t.Direction, &p.Direction},
		{"marker", t.Marker, &p.Marker},
		{"active", t.Active, &p.Active},
		{"button", t.Button, &p.Button},
		{"status", t.Status, &p.Status},
	}
	for _, f := range fields {
		c, err := ParseColor(f.name)
		if err != nil {
			return render.Palette{}, errors.Wrapf(err, "theme.%s", f.key)
		}
		*f.dst = c
	}
	return p, nil
}
