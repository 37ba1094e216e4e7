// Package config holds the resolved configuration of the gomeph command.
package config

import (
	"fmt"
	"strings"

	meph "github.com/trimeph/gomeph"
	"github.com/trimeph/gomeph/store"
)

// Defaults.
const (
	DefaultWorkDir    = "."
	DefaultOutDir     = "."
	DefaultPlotFormat = "png"
	DefaultStrategy   = "bucket"
	DefaultStore      = "none"
	DefaultColor      = "auto"
)

// Config is the configuration of a processing run, as resolved from the
// configuration file, the environment and the command line flags. If it is
// built by hand, please use the Check method to check it.
type Config struct {
	// Metadata are the files with the primitive cell (e.g. phonopy.yaml)
	Metadata []string `mapstructure:"metadata"`

	// Displacements are the thermal displacement files, one per volume
	Displacements []string `mapstructure:"displacements"`

	// VT are the volume-temperature files
	VT []string `mapstructure:"vt"`

	// EV are the energy-volume files
	EV []string `mapstructure:"ev"`

	// Experimental are the reference (temperature, f) files
	Experimental []string `mapstructure:"experimental"`

	// WorkDir is where the cleaned files are written while a run lasts
	WorkDir string `mapstructure:"workdir"`

	// Out is the directory for the results files and plots
	Out string `mapstructure:"out"`

	// Strategy is the interpolation strategy for single volume runs
	Strategy string `mapstructure:"strategy"`

	// NoFilter disables the removal of volumes below the first volume-temperature one
	NoFilter bool `mapstructure:"no-filter"`

	// Plot enables the figures
	Plot bool `mapstructure:"plot"`

	// PlotFormat is the image format of the figures
	PlotFormat string `mapstructure:"plot-format"`

	// Parquet is the file to export the results to, none if empty
	Parquet string `mapstructure:"parquet"`

	// Store is the database backend to archive the run in
	Store string `mapstructure:"store"`

	// DSN is the connection string (or file, for sqlite) of the database
	DSN string `mapstructure:"dsn"`

	// Color is "yes", "no" or "auto"
	Color string `mapstructure:"color"`
}

var plotFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Check checks if the Config is correct and normalizes its enumerated fields.
// It returns an error if a field doesn't meet the requirements.
func (c *Config) Check() error {
	if len(c.Metadata) == 0 {
		return fmt.Errorf("at least one metadata file is needed")
	}
	if len(c.Displacements) == 0 {
		return fmt.Errorf("at least one displacement file is needed")
	}
	if (len(c.VT) == 0) != (len(c.EV) == 0) {
		return fmt.Errorf("volume-temperature and energy-volume files must be given together")
	}
	if len(c.VT) == 0 && len(c.Displacements) > 1 {
		return fmt.Errorf("%d displacement files given without volume-temperature and energy-volume files", len(c.Displacements))
	}
	s, err := meph.ParseStrategy(strings.ToLower(c.Strategy))
	if err != nil {
		return err
	}
	c.Strategy = string(s)
	if c.Store == "" {
		c.Store = DefaultStore
	}
	b, err := store.ParseBackend(c.Store)
	if err != nil {
		return err
	}
	c.Store = string(b)
	if c.Plot {
		c.PlotFormat = strings.TrimPrefix(strings.ToLower(c.PlotFormat), ".")
		if c.PlotFormat == "" {
			c.PlotFormat = DefaultPlotFormat
		}
		if !isIn(plotFormats, c.PlotFormat) {
			return fmt.Errorf("plot format %q not supported, use one of %s", c.PlotFormat, strings.Join(plotFormats, ", "))
		}
	}
	switch strings.ToLower(c.Color) {
	case "", "auto":
		c.Color = "auto"
	case "yes", "no":
		c.Color = strings.ToLower(c.Color)
	default:
		return fmt.Errorf("color must be yes, no or auto, not %q", c.Color)
	}
	if c.WorkDir == "" {
		c.WorkDir = DefaultWorkDir
	}
	if c.Out == "" {
		c.Out = DefaultOutDir
	}
	return nil
}

// Input returns the files and options of a processing run.
func (c *Config) Input() *meph.Input {
	return &meph.Input{
		Metadata:          c.Metadata,
		Displacements:     c.Displacements,
		VolumeTemperature: c.VT,
		VolumeEnergy:      c.EV,
		Experimental:      c.Experimental,
		WorkDir:           c.WorkDir,
		Strategy:          meph.Strategy(c.Strategy),
		SkipFilter:        c.NoFilter,
	}
}

func isIn(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
