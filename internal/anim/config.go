package anim

import "fmt"

// Config lays out the animation window and the subplots in it.
type Config struct {
	SubplotWidth   float64         `yaml:"subplot_width"`
	SubplotHeight  float64         `yaml:"subplot_height"`
	MaxSubplotCols int             `yaml:"max_subplot_cols"`
	GIFDelay       int             `yaml:"gif_delay"`
	Generator      GeneratorConfig `yaml:"generator"`
	Plots          []PlotConfig    `yaml:"plots"`
}

type GeneratorConfig struct {
	// Step is the number of samples between frames.
	Step int `yaml:"step"`
}

// PlotConfig binds a data function to a plot type under Key. String values
// in DataParams name probes of the recording.
type PlotConfig struct {
	Key        string `yaml:"key"`
	DataFunc   string `yaml:"data_func"`
	DataParams Params `yaml:"data_params"`
	PlotType   string `yaml:"plot_type"`
	PlotParams Params `yaml:"plot_params"`
}

func DefaultConfig() Config {
	return Config{
		SubplotWidth:   5,
		SubplotHeight:  5,
		MaxSubplotCols: 4,
		GIFDelay:       2,
		Generator:      GeneratorConfig{Step: 10},
	}
}

// Validate checks the plot list without a recording: function and plot type
// names, and the plot parameters.
func (c Config) Validate() error {
	for i, pc := range c.Plots {
		if _, ok := dataFuncs[pc.DataFunc]; !ok {
			return fmt.Errorf("plot %d: %w: %s", i, ErrUnknownDataFunc, pc.DataFunc)
		}
		if _, err := newPlotter(pc.PlotType, pc.PlotParams); err != nil {
			return fmt.Errorf("plot %d: %w", i, err)
		}
	}
	return nil
}
