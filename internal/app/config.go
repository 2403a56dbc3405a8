package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config holds every startup constant of a session. Values are fixed once the
// session is built.
type Config struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
	GridWidth    int `json:"grid_width"`
	GridHeight   int `json:"grid_height"`

	Zoom            float64 `json:"zoom"`
	ZoomMin         float64 `json:"zoom_min"`
	ZoomMax         float64 `json:"zoom_max"`
	ZoomSensitivity float64 `json:"zoom_sensitivity"`
	PanSpeed        float64 `json:"pan_speed"`

	// Interval is the time between generations in seconds.
	Interval float64 `json:"interval"`
	TPS      int     `json:"tps"`
	Workers  int     `json:"workers"`

	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ScreenWidth:     1100,
		ScreenHeight:    1000,
		GridWidth:       1000,
		GridHeight:      1000,
		Zoom:            50,
		ZoomMin:         10,
		ZoomMax:         200,
		ZoomSensitivity: 0.1,
		PanSpeed:        10,
		Interval:        0.5,
		TPS:             60,
		Workers:         1,
		Seed:            42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file; explicit flags win")
	fs.IntVar(&c.ScreenWidth, "screen-w", c.ScreenWidth, "window width in pixels")
	fs.IntVar(&c.ScreenHeight, "screen-h", c.ScreenHeight, "window height in pixels")
	fs.IntVar(&c.GridWidth, "grid-w", c.GridWidth, "grid width in cells")
	fs.IntVar(&c.GridHeight, "grid-h", c.GridHeight, "grid height in cells")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial zoom")
	fs.Float64Var(&c.ZoomMin, "zoom-min", c.ZoomMin, "minimum zoom")
	fs.Float64Var(&c.ZoomMax, "zoom-max", c.ZoomMax, "maximum zoom")
	fs.Float64Var(&c.ZoomSensitivity, "zoom-speed", c.ZoomSensitivity, "relative zoom change per wheel notch")
	fs.Float64Var(&c.PanSpeed, "pan-speed", c.PanSpeed, "keyboard pan in pixels per frame")
	fs.Float64Var(&c.Interval, "interval", c.Interval, "seconds between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation sweep")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial fill")
	fs.Float64Var(&c.Density, "density", c.Density, "initial fill density in [0,1]; 0 starts empty")
}

// Resolve loads ConfigPath, if set, and then re-applies any flags that were
// given explicitly on the command line.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return c.Validate()
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	path := c.ConfigPath
	if err := c.LoadFile(path); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Resolve] failed to reapply flag -%s", name)
		}
	}
	c.ConfigPath = path
	return c.Validate()
}

// LoadFile overlays the JSON document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate rejects configurations no session can be built from.
func (c *Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return errors.Errorf("grid size %dx%d must be positive", c.GridWidth, c.GridHeight)
	case c.ZoomMin <= 0 || c.ZoomMax <= 0:
		return errors.Errorf("zoom bounds [%v,%v] must be positive", c.ZoomMin, c.ZoomMax)
	case c.ZoomMin > c.ZoomMax:
		return errors.Errorf("zoom-min %v exceeds zoom-max %v", c.ZoomMin, c.ZoomMax)
	case c.Interval <= 0:
		return errors.Errorf("interval %v must be positive", c.Interval)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v outside [0,1]", c.Density)
	}
	return nil
}
