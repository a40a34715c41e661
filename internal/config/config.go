package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/probeviz/internal/anim"
	"github.com/san-kum/probeviz/internal/iofig"
	"github.com/san-kum/probeviz/internal/probe"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema this build reads.
const SupportedVersion = 5

const (
	DefaultDt              = 0.001
	DefaultPresentInterval = 0.5
	DefaultLegendPos       = "best"
)

var (
	// ErrVersionMismatch indicates a configuration written for another schema.
	ErrVersionMismatch = errors.New("config: unsupported data version")
	ErrInvalid         = errors.New("config: invalid value")
)

type VersionMismatchError struct {
	Want, Got int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("unsupported data version number: expected %d, got %d", e.Want, e.Got)
}

func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }

// Config is the companion configuration of a recording.
type Config struct {
	Version         int                        `yaml:"version"`
	Dt              float64                    `yaml:"dt"`
	PresentInterval float64                    `yaml:"present_interval"`
	Vocab           map[string]VocabConfig     `yaml:"vocab"`
	NeuronCounts    map[string]int             `yaml:"ncount"`
	ImageShapes     map[string][]int           `yaml:"image_shapes"`
	PathLimits      map[string]PathLimitConfig `yaml:"path_limits"`
	Labels          map[string]string          `yaml:"labels"`
	GraphList       []string                   `yaml:"graph_list"`
	Animation       anim.Config                `yaml:"animation"`
	IO              iofig.Config               `yaml:"io"`
}

type VocabConfig struct {
	Keys    []string    `yaml:"keys"`
	Vectors [][]float64 `yaml:"vectors"`
}

type PathLimitConfig struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Version:         SupportedVersion,
		Dt:              DefaultDt,
		PresentInterval: DefaultPresentInterval,
		Animation:       anim.DefaultConfig(),
		IO:              iofig.DefaultConfig(),
	}
}

// Load reads a configuration and rejects other schema versions. A file
// without a version field counts as version 0.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Version = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Version != SupportedVersion {
		return nil, &VersionMismatchError{Want: SupportedVersion, Got: cfg.Version}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would break rendering later: a non-positive
// time step or an empty path range.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt %v must be positive", ErrInvalid, c.Dt)
	}
	for id, l := range c.PathLimits {
		if len(l.X) != 2 || len(l.Y) != 2 {
			return fmt.Errorf("%w: path limits %q: expected x and y pairs", ErrInvalid, id)
		}
		if l.X[0] >= l.X[1] || l.Y[0] >= l.Y[1] {
			return fmt.Errorf("%w: path limits %q: x=%v y=%v are empty", ErrInvalid, id, l.X, l.Y)
		}
	}
	if err := c.Animation.Validate(); err != nil {
		return fmt.Errorf("%w: animation: %w", ErrInvalid, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Settings converts the per-probe maps into renderer settings.
func (c *Config) Settings(legendPos string) (probe.Settings, error) {
	if err := c.Validate(); err != nil {
		return probe.Settings{}, err
	}
	if legendPos == "" {
		legendPos = DefaultLegendPos
	}
	s := probe.Settings{
		Vocab:        make(map[string]probe.Vocabulary, len(c.Vocab)),
		NeuronCounts: c.NeuronCounts,
		ImageShapes:  make(map[string]probe.ImageShape, len(c.ImageShapes)),
		PathLimits:   make(map[string]probe.PathLimits, len(c.PathLimits)),
		Labels:       c.Labels,
		Dt:           c.Dt,
		LegendPos:    legendPos,
	}
	for id, v := range c.Vocab {
		vocab, err := probe.NewVocabulary(v.Keys, v.Vectors)
		if err != nil {
			return probe.Settings{}, fmt.Errorf("vocabulary %q: %w", id, err)
		}
		s.Vocab[id] = vocab
	}
	for id, shape := range c.ImageShapes {
		if len(shape) != 2 {
			return probe.Settings{}, fmt.Errorf("image shape %q: expected [rows, cols], got %v", id, shape)
		}
		s.ImageShapes[id] = probe.ImageShape{shape[0], shape[1]}
	}
	for id, l := range c.PathLimits {
		s.PathLimits[id] = probe.PathLimits{X: [2]float64{l.X[0], l.X[1]}, Y: [2]float64{l.Y[0], l.Y[1]}}
	}
	return s, nil
}
