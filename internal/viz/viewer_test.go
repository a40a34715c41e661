package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/probeviz/internal/figure"
)

func TestGraphSeries(t *testing.T) {
	tests := []struct {
		name string
		ax   *figure.Axes
		want bool
	}{
		{"traces", &figure.Axes{Lines: []figure.Line{{X: []float64{0, 1}, Y: []float64{1, 2}}}}, true},
		{"nan gap", &figure.Axes{Lines: []figure.Line{{X: []float64{0, 1}, Y: []float64{1, math.NaN()}}}}, false},
		{"image", &figure.Axes{Images: []figure.ImageBlock{{Rows: 1, Cols: 1, Pixels: []float64{1}}}}, false},
		{"equal aspect", &figure.Axes{Lines: []figure.Line{{X: []float64{0}, Y: []float64{0}}}, AspectEqual: true}, false},
		{"empty", &figure.Axes{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := graphSeries(tt.ax); ok != tt.want {
				t.Errorf("graphSeries = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestBoundsPrefersLimits(t *testing.T) {
	ax := &figure.Axes{}
	ax.Plot([]float64{1, 2, math.NaN()}, []float64{-3, 5, math.NaN()}, nil)

	xmin, xmax, ymin, ymax := Bounds(ax)
	if xmin != 1 || xmax != 2 || ymin != -3 || ymax != 5 {
		t.Errorf("data bounds = %v %v %v %v", xmin, xmax, ymin, ymax)
	}

	ax.SetYLim(0, 10)
	_, _, ymin, ymax = Bounds(ax)
	if ymin != 0 || ymax != 10 {
		t.Errorf("limit bounds = %v %v", ymin, ymax)
	}
}

func TestRenderAxesLegend(t *testing.T) {
	ax := &figure.Axes{YLabel: "state"}
	ax.Plot([]float64{0, 1, 2}, []float64{0, 1, 0}, nil)
	ax.Plot([]float64{0, 1, 2}, []float64{1, 0, 1}, nil)
	ax.Legend = &figure.Legend{Labels: []string{"A", "B"}, Columns: 1}

	out := RenderAxes(ax, 30, 5)
	for _, want := range []string{"state", "A", "B"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestViewerCloseCascades(t *testing.T) {
	h := figure.NewHost()
	h.NewFigure("a").AddAxes()
	h.NewFigure("b").AddAxes()

	var m tea.Model = NewViewer(h)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.(Viewer).page != 1 {
		t.Fatalf("page = %d, want 1", m.(Viewer).page)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !h.Done() {
		t.Errorf("%d figures still open", len(h.Open()))
	}
}

func TestViewerPagingWraps(t *testing.T) {
	h := figure.NewHost()
	h.NewFigure("")
	h.NewFigure("")

	var m tea.Model = NewViewer(h)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if m.(Viewer).page != 1 {
		t.Errorf("page = %d, want 1", m.(Viewer).page)
	}
	if f := m.(Viewer).current(); f.Index != 2 {
		t.Errorf("current figure = %d, want 2", f.Index)
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}
