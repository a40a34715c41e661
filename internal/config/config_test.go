package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/probeviz/internal/anim"
	"github.com/san-kum/probeviz/internal/probe"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != SupportedVersion {
		t.Errorf("expected version %d, got %d", SupportedVersion, cfg.Version)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.PresentInterval <= 0 {
		t.Error("present interval should be positive")
	}
}

const sample = `
version: 5
dt: 0.001
graph_list: ["Vision", "0i0", "..", "1V*"]
vocab:
  "1":
    keys: [ONE, TWO]
    vectors: [[1, 0], [0, 1]]
ncount:
  "2": 20
image_shapes:
  "0": [28, 28]
path_limits:
  "3": {x: [-1, 1], y: [-1, 1]}
labels:
  "1": state
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_cfg.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(cfg.GraphList) != 4 || cfg.NeuronCounts["2"] != 20 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.PresentInterval != DefaultPresentInterval {
		t.Errorf("expected default interval, got %v", cfg.PresentInterval)
	}

	s, err := cfg.Settings("")
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if s.LegendPos != DefaultLegendPos {
		t.Errorf("expected legend position %q, got %q", DefaultLegendPos, s.LegendPos)
	}
	if v := s.Vocab["1"]; len(v.Keys) != 2 || v.Dim() != 2 {
		t.Errorf("unexpected vocabulary %+v", v)
	}
	if s.ImageShapes["0"] != (probe.ImageShape{28, 28}) {
		t.Errorf("unexpected image shape %v", s.ImageShapes["0"])
	}
	if s.PathLimits["3"].X != [2]float64{-1, 1} {
		t.Errorf("unexpected path limits %+v", s.PathLimits["3"])
	}
}

func TestLoad_VersionMismatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		got     int
	}{
		{"older", "version: 4\n", 4},
		{"missing", "dt: 0.001\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			var typed *VersionMismatchError
			if !errors.As(err, &typed) || typed.Got != tt.got {
				t.Fatalf("expected VersionMismatchError got=%d, got %v", tt.got, err)
			}
			if !errors.Is(err, ErrVersionMismatch) {
				t.Error("expected errors.Is to match ErrVersionMismatch")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.GraphList = []string{"0v0"}
	cfg.Labels = map[string]string{"0": "input"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.GraphList[0] != "0v0" || loaded.Labels["0"] != "input" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestSettings_BadShapes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageShapes = map[string][]int{"0": {28}}
	if _, err := cfg.Settings(""); err == nil {
		t.Error("expected an error for a one element image shape")
	}

	cfg = DefaultConfig()
	cfg.Vocab = map[string]VocabConfig{"1": {Keys: []string{"A", "B"}, Vectors: [][]float64{{1}}}}
	if _, err := cfg.Settings(""); err == nil {
		t.Error("expected an error for a vocabulary with missing vectors")
	}
}

const animSample = `
version: 5
animation:
  max_subplot_cols: 2
  generator: {step: 5}
  plots:
    - key: vis
      data_func: image
      data_params: {data: "0"}
      plot_type: image
    - key: arm
      data_func: arm_path
      data_params: {ee_path_data: "3", pen_status_data: "4"}
      plot_type: path
      plot_params: {xlim: [-1, 1], ylim: [-1, 1]}
io:
  stimulus_probe: "0"
  path_probe: "3"
  pen_probe: "4"
  min_path_len: 50
`

func TestLoad_AnimationAndIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_cfg.yaml")
	if err := os.WriteFile(path, []byte(animSample), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	a := cfg.Animation
	if a.MaxSubplotCols != 2 || a.Generator.Step != 5 || len(a.Plots) != 2 {
		t.Fatalf("unexpected animation config %+v", a)
	}
	if a.SubplotWidth != 5 {
		t.Errorf("default subplot width lost, got %v", a.SubplotWidth)
	}
	if a.Plots[1].DataParams["pen_status_data"] != "4" {
		t.Errorf("unexpected data params %v", a.Plots[1].DataParams)
	}
	if lim, ok := a.Plots[1].PlotParams.Pair("xlim"); !ok || lim != [2]float64{-1, 1} {
		t.Errorf("unexpected xlim %v", lim)
	}

	if cfg.IO.MinPathLen != 50 || cfg.IO.Threshold != 0.1 || cfg.IO.PathProbe != "3" {
		t.Errorf("unexpected io config %+v", cfg.IO)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative dt", func(c *Config) { c.Dt = -0.001 }},
		{"short path limits", func(c *Config) {
			c.PathLimits = map[string]PathLimitConfig{"3": {X: []float64{-1}, Y: []float64{-1, 1}}}
		}},
		{"empty x range", func(c *Config) {
			c.PathLimits = map[string]PathLimitConfig{"3": {X: []float64{0.5, 0.5}, Y: []float64{-1, 1}}}
		}},
		{"negative history", func(c *Config) {
			c.Animation.Plots = []anim.PlotConfig{{Key: "v", DataFunc: "value", PlotType: "trace",
				PlotParams: anim.Params{"history": -5}}}
		}},
		{"unknown plot type", func(c *Config) {
			c.Animation.Plots = []anim.PlotConfig{{Key: "v", DataFunc: "value", PlotType: "bar"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if _, err := cfg.Settings(""); err == nil {
				t.Error("expected Settings to fail")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestLoad_RejectsZeroDt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("version: 5\ndt: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
