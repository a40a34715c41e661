package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/probeviz/internal/probe"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOpenJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.json", `{
  "trange": [0.0, 0.1],
  "present_interval": 0.5,
  "probes": {"0": [[0, 1], [2, 3]], "pen": [0.2, 0.9]}
}`)

	rec, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rec.Close()

	if len(rec.Trange()) != 2 || rec.PresentInterval() != 0.5 {
		t.Errorf("unexpected trange %v / interval %v", rec.Trange(), rec.PresentInterval())
	}
	m, err := rec.Probe("0")
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if r, c := m.Dims(); r != 2 || c != 2 || m.At(1, 0) != 2 {
		t.Errorf("unexpected probe 0: %dx%d", r, c)
	}
	pen, err := rec.Probe("pen")
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if r, c := pen.Dims(); r != 2 || c != 1 || pen.At(1, 0) != 0.9 {
		t.Errorf("expected a flat probe as one column, got %dx%d", r, c)
	}
	if _, err := rec.Probe("missing"); !errors.Is(err, probe.ErrUnknownProbe) {
		t.Errorf("expected ErrUnknownProbe, got %v", err)
	}
}

func TestOpenYAML_GeneratedTrange(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.yaml", `
probes:
  "3": [1, 2, 3, 4]
`)
	rec, err := Open(path, Options{Dt: 0.5, PresentInterval: 0.2})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rec.Close()

	want := []float64{0, 0.5, 1, 1.5}
	got := rec.Trange()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trange[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if rec.PresentInterval() != 0.2 {
		t.Errorf("expected fallback interval 0.2, got %v", rec.PresentInterval())
	}
}

func TestOpenYAML_NoTimeStep(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.yml", "probes:\n  a: [1]\n")
	if _, err := Open(path, Options{}); !errors.Is(err, ErrNoTimeStep) {
		t.Errorf("expected ErrNoTimeStep, got %v", err)
	}
}

func TestOpenCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spaun+seed1+part2.csv",
		"0[0],0[1],5,present_interval\n1,2,0.1,0.3\n3,4,0.2,0.3\n5,6,0.3,0.3\n")

	rec, err := Open(path, Options{Dt: 0.001})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rec.Close()

	if ids := rec.ProbeIDs(); len(ids) != 2 || ids[0] != "0" || ids[1] != "5" {
		t.Errorf("unexpected probes %v", ids)
	}
	m, _ := rec.Probe("0")
	if r, c := m.Dims(); r != 3 || c != 2 || m.At(2, 1) != 6 {
		t.Errorf("unexpected probe 0: %dx%d", r, c)
	}
	if rec.PresentInterval() != 0.3 {
		t.Errorf("expected interval 0.3, got %v", rec.PresentInterval())
	}
	if len(rec.Trange()) != 3 {
		t.Errorf("expected a generated 3 sample time axis, got %v", rec.Trange())
	}
}

func TestOpenUnsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.npz", "")
	_, err := Open(path, Options{})
	var typed *UnsupportedFileFormatError
	if !errors.As(err, &typed) || !errors.Is(err, ErrUnsupportedFileFormat) {
		t.Errorf("expected UnsupportedFileFormatError, got %v", err)
	}
}

func TestRecordingClose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.json", `{"trange": [0], "probes": {"0": [1]}}`)
	rec, err := Open(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Probe("0"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{filepath.Join("data", "run.json"), filepath.Join("data", "run_cfg.yaml")},
		{filepath.Join("data", "run.yaml"), filepath.Join("data", "run_cfg.yaml")},
		{filepath.Join("data", "a+b+c.csv"), filepath.Join("data", "a+b_cfg.yaml")},
		{"a.csv", "a_cfg.yaml"},
	}
	for _, tt := range tests {
		if got := ConfigPath(tt.in); got != tt.want {
			t.Errorf("ConfigPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
