package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func testFigure() *figure.Figure {
	h := figure.NewHost()
	f := h.NewFigure("test")

	ax := f.AddAxes()
	ax.Plot([]float64{0, 1, 2}, []float64{0, 1, 0}, nil)
	ax.Plot([]float64{0, 0, math.NaN(), 1, 1}, []float64{0, 1, math.NaN(), 0, 1}, figure.Black)
	ax.Legend = &figure.Legend{Labels: []string{"A", "B"}, Columns: 1, Position: "upper left"}
	ax.SetXLim(0, 2)
	ax.YLabel = "state"
	ax.HideXTickLabels = true

	img := f.AddAxes()
	img.Image(figure.ImageBlock{Rows: 2, Cols: 2, Pixels: []float64{0, 1, 1, 0}, X: figure.Limits{Max: 1}, Y: figure.Limits{Max: 1}})
	img.HideYTicks = true
	img.Background = figure.Black
	return f
}

func TestAxesPlot(t *testing.T) {
	f := testFigure()
	p, err := AxesPlot(f.Axes[0])
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 2 {
		t.Errorf("x range = [%v, %v]", p.X.Min, p.X.Max)
	}
	if !p.Legend.Top || !p.Legend.Left {
		t.Error("legend not placed upper left")
	}
	for _, tick := range p.X.Tick.Marker.Ticks(0, 2) {
		if tick.Label != "" {
			t.Errorf("tick label %q not hidden", tick.Label)
		}
	}

	p, err = AxesPlot(f.Axes[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Y.Tick.Marker.Ticks(0, 1)) != 0 {
		t.Error("y ticks not hidden")
	}
}

func TestWriteGridPNG(t *testing.T) {
	plots, err := FigurePlots(testFigure())
	if err != nil {
		t.Fatal(err)
	}
	if len(plots) != 2 || plots[0][0].Title.Text != "test" {
		t.Fatalf("unexpected plot grid")
	}

	var buf bytes.Buffer
	if err := WriteGrid(&buf, FormatPNG, plots, 4*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a png: %v", err)
	}
}

func TestWriteGridSVG(t *testing.T) {
	var buf bytes.Buffer
	plots := [][]*plot.Plot{{plot.New()}}
	if err := WriteGrid(&buf, FormatSVG, plots, 2*vg.Inch, 2*vg.Inch); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not svg")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGrid(&buf, "bmp", [][]*plot.Plot{{plot.New()}}, vg.Inch, vg.Inch)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}

	_, err = SaveFigures(nil, t.TempDir(), "tiff")
	var fe *UnsupportedFormatError
	if !errors.As(err, &fe) || fe.Format != "tiff" {
		t.Errorf("err = %v", err)
	}
}

func TestWriteJSONNullsGaps(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*figure.Figure{testFigure()}); err != nil {
		t.Fatal(err)
	}

	var out []struct {
		Title string `json:"title"`
		Axes  []struct {
			Lines []struct {
				Y []*float64 `json:"y"`
			} `json:"lines"`
		} `json:"axes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Title != "test" {
		t.Errorf("title = %q", out[0].Title)
	}
	if y := out[0].Axes[0].Lines[1].Y; y[2] != nil || y[3] == nil {
		t.Errorf("gap not encoded as null: %v", y)
	}
}

func TestSaveFigures(t *testing.T) {
	dir := t.TempDir()
	paths, err := SaveFigures([]*figure.Figure{testFigure()}, dir, FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != filepath.Join(dir, "figure1.png") {
		t.Fatalf("paths = %v", paths)
	}
	if fi, err := os.Stat(paths[0]); err != nil || fi.Size() == 0 {
		t.Errorf("figure not written: %v", err)
	}
}
