package iofig

// Config names the probes of the input/output figure and its filters.
type Config struct {
	StimulusProbe string `yaml:"stimulus_probe"`
	PathProbe     string `yaml:"path_probe"`
	PenProbe      string `yaml:"pen_probe"`
	ImageShape    []int  `yaml:"image_shape"`
	// ResetImage is the flattened stimulus that starts a new row. Empty
	// keeps everything on one row.
	ResetImage []float64 `yaml:"reset_image"`
	// ImageFilter keeps only these column positions of each row's images.
	// Empty keeps all of them.
	ImageFilter []int   `yaml:"image_filter"`
	MinPathLen  int     `yaml:"min_path_len"`
	Threshold   float64 `yaml:"threshold"`
	Scale       float64 `yaml:"scale"`
	CellSize    float64 `yaml:"cell_size"`
}

func DefaultConfig() Config {
	return Config{
		ImageShape: []int{28, 28},
		MinPathLen: 200,
		Threshold:  0.1,
		Scale:      1,
		CellSize:   2,
	}
}
