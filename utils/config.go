package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// FallbackWidth and FallbackHeight size the board when no display size is available
	FallbackWidth  = 60
	FallbackHeight = 30
)

var (
	ErrMissingPattern = errors.New("pattern path is required")
	ErrNegativeValue  = errors.New("value must not be negative")
)

// Config holds the configuration for the game
type Config struct {
	Height         int           `json:"height"`
	Width          int           `json:"width"`
	Wrap           bool          `json:"wrap"`
	PatternPath    string        `json:"pattern"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
	UseFrontier    bool          `json:"use_frontier"`
	DetectCycles   bool          `json:"detect_cycles"`
	Plain          bool          `json:"plain"`

	ConfigPath string `json:"-"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:         0, // size of the display
		Width:          0,
		Wrap:           false,
		FrameRate:      100 * time.Millisecond,
		MaxGenerations: 0, // run until quit
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "height of the map (default is height of terminal)")
	fs.IntVar(&c.Width, "width", c.Width, "width of the map (default is width of terminal)")
	fs.BoolVar(&c.Wrap, "around", c.Wrap, "wrap cells around edges")
	fs.DurationVar(&c.FrameRate, "interval", c.FrameRate, "delay between ticks")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until quit)")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "scan the board with one worker per CPU")
	fs.BoolVar(&c.UseFrontier, "frontier", c.UseFrontier, "only rescan cells around the last flips")
	fs.BoolVar(&c.DetectCycles, "cycles", c.DetectCycles, "track recent boards to report oscillation on exit")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print frames to stdout instead of drawing a full-screen display")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON configuration file")
}

// ParseArgs builds a Config from defaults, an optional JSON file named by
// -config, and the command-line flags, in increasing precedence. The first
// positional argument is the pattern path.
func ParseArgs(name string, args []string) (Config, error) {
	config := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	if config.ConfigPath != "" {
		loaded, err := LoadConfig(config.ConfigPath)
		if err != nil {
			return config, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		loaded.Bind(fs)
		if err = fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[ParseArgs] failed to parse flags")
		}
		config = loaded
	}

	if fs.NArg() > 0 {
		config.PatternPath = fs.Arg(0)
	}

	return config, config.Validate()
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.PatternPath == "" {
		return errors.WithStack(ErrMissingPattern)
	}
	if c.Height < 0 {
		return errors.Wrapf(ErrNegativeValue, "[Validate] height %d", c.Height)
	}
	if c.Width < 0 {
		return errors.Wrapf(ErrNegativeValue, "[Validate] width %d", c.Width)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrNegativeValue, "[Validate] interval %s", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrNegativeValue, "[Validate] generations %d", c.MaxGenerations)
	}
	return nil
}

// WithDimensions fills unset dimensions from the display size, or the fallback size
func (c Config) WithDimensions(displayHeight, displayWidth int) Config {
	if c.Height == 0 {
		c.Height = displayHeight
	}
	if c.Width == 0 {
		c.Width = displayWidth
	}
	if c.Height <= 0 {
		c.Height = FallbackHeight
	}
	if c.Width <= 0 {
		c.Width = FallbackWidth
	}
	return c
}
