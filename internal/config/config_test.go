package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	meph "github.com/trimeph/gomeph"
)

func valid() Config {
	return Config{
		Metadata:      []string{"phonopy.yaml"},
		Displacements: []string{"thermal_displacements.yaml"},
	}
}

func TestCheckDefaults(t *testing.T) {
	c := valid()
	require.NoError(t, c.Check())
	assert.Equal(t, "bucket", c.Strategy)
	assert.Equal(t, "none", c.Store)
	assert.Equal(t, "auto", c.Color)
	assert.Equal(t, DefaultWorkDir, c.WorkDir)
	assert.Equal(t, DefaultOutDir, c.Out)

	in := c.Input()
	assert.Equal(t, meph.Bucket, in.Strategy)
	assert.Equal(t, c.Metadata, in.Metadata)
}

func TestCheckNormalizes(t *testing.T) {
	c := valid()
	c.Strategy = "Linear"
	c.Store = "postgres"
	c.Plot = true
	c.PlotFormat = ".SVG"
	c.Color = "YES"
	require.NoError(t, c.Check())
	assert.Equal(t, "linear", c.Strategy)
	assert.Equal(t, "postgresql", c.Store)
	assert.Equal(t, "svg", c.PlotFormat)
	assert.Equal(t, "yes", c.Color)
}

func TestCheckRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no metadata", func(c *Config) { c.Metadata = nil }},
		{"no displacements", func(c *Config) { c.Displacements = nil }},
		{"vt without ev", func(c *Config) { c.VT = []string{"vt.dat"} }},
		{"ev without vt", func(c *Config) { c.EV = []string{"e-v.dat"} }},
		{"several files, single volume", func(c *Config) { c.Displacements = append(c.Displacements, "td2.yaml") }},
		{"strategy", func(c *Config) { c.Strategy = "spline" }},
		{"store", func(c *Config) { c.Store = "oracle" }},
		{"plot format", func(c *Config) { c.Plot = true; c.PlotFormat = "bmp" }},
		{"color", func(c *Config) { c.Color = "maybe" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			assert.Error(t, c.Check())
		})
	}
}

func TestCheckQuasiHarmonic(t *testing.T) {
	c := valid()
	c.Displacements = []string{"td.yaml-1", "td.yaml-2", "td.yaml-3"}
	c.VT = []string{"volume-temperature.dat"}
	c.EV = []string{"e-v.dat"}
	require.NoError(t, c.Check())
	in := c.Input()
	assert.Equal(t, c.VT, in.VolumeTemperature)
	assert.Equal(t, c.EV, in.VolumeEnergy)
}
