package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"termpix/device"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultFile    = "termpix.toml"
	DefaultEnvFile = ".env"
	EnvConfigFile  = "TERMPIX_CONFIG"
)

const (
	EnvRefresh       = "TERMPIX_REFRESH"
	EnvMouse         = "TERMPIX_MOUSE"
	EnvLogFile       = "TERMPIX_LOG"
	EnvRestoreColors = "TERMPIX_RESTORE_COLORS"
)

// NoColor keeps the terminal's default color.
const NoColor = -1

type Config struct {
	RefreshInterval time.Duration `toml:"refresh_interval"`
	Mouse           bool          `toml:"mouse"`
	LogFile         string        `toml:"log_file"`
	RestoreColors   bool          `toml:"restore_colors"`
	// Foreground and Background are palette indices of the clear pixel.
	Foreground int `toml:"foreground"`
	Background int `toml:"background"`
}

var ErrInvalid = errors.New("invalid configuration")

func Default() Config {
	return Config{
		RefreshInterval: 30 * time.Millisecond,
		Mouse:           true,
		RestoreColors:   true,
		Foreground:      NoColor,
		Background:      NoColor,
	}
}

// Load starts from the defaults and applies, in order, the TOML file at
// path, the dotenv file at envFile and the process environment. Missing
// files are skipped; an empty path skips the file.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return cfg, fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("env file %s: %w", envFile, err)
		}
		if values != nil {
			dotenv = values
		}
	}
	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvRefresh); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRefresh, err)
		}
		c.RefreshInterval = d
	}
	if value, ok := lookup(EnvMouse); ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMouse, err)
		}
		c.Mouse = b
	}
	if value, ok := lookup(EnvLogFile); ok {
		c.LogFile = value
	}
	if value, ok := lookup(EnvRestoreColors); ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRestoreColors, err)
		}
		c.RestoreColors = b
	}
	return nil
}

// Parse loads the configuration for a command: the file named by
// TERMPIX_CONFIG or DefaultFile, DefaultEnvFile, the environment and then
// the command line flags in args.
func Parse(name string, args []string) (Config, error) {
	path := DefaultFile
	if value, ok := os.LookupEnv(EnvConfigFile); ok {
		path = value
	}
	cfg, err := Load(path, DefaultEnvFile)
	if err != nil {
		return cfg, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// BindFlags registers command line overrides for every field.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.RefreshInterval, "refresh", c.RefreshInterval, "pause between frames")
	fs.BoolVar(&c.Mouse, "mouse", c.Mouse, "report mouse events")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append logs to this file")
	fs.BoolVar(&c.RestoreColors, "restore-colors", c.RestoreColors, "restore terminal colors on exit")
	fs.IntVar(&c.Foreground, "fg", c.Foreground, "palette index of the foreground, -1 for default")
	fs.IntVar(&c.Background, "bg", c.Background, "palette index of the background, -1 for default")
}

func (c Config) Validate() error {
	if c.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval %s", ErrInvalid, c.RefreshInterval)
	}
	for _, color := range []int{c.Foreground, c.Background} {
		if color < NoColor || color > 255 {
			return fmt.Errorf("%w: color %d is not a palette index", ErrInvalid, color)
		}
	}
	return nil
}

// ClearStyle is the style painted where widgets have no content.
func (c Config) ClearStyle() device.Style {
	return device.Style{FG: color(c.Foreground), BG: color(c.Background)}
}

func color(index int) device.Color {
	if index < 0 || index > 255 {
		return device.ColorDefault
	}
	return device.PaletteColor(uint8(index))
}

func (c Config) String() string {
	return fmt.Sprintf("Config{RefreshInterval: %s, Mouse: %v, LogFile: %q, RestoreColors: %v, Foreground: %d, Background: %d}",
		c.RefreshInterval, c.Mouse, c.LogFile, c.RestoreColors, c.Foreground, c.Background)
}
