package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/probeviz/internal/figure"
)

// imageThreshold is the normalized intensity at which a raster pixel lights.
const imageThreshold = 0.5

// RenderAxes draws one subplot into a block of w x h terminal cells. Plain
// traces go through asciigraph; rasters, pen strokes and NaN-masked spike
// ticks are drawn on a Braille canvas.
func RenderAxes(ax *figure.Axes, w, h int) string {
	w, h = max(w, 4), max(h, 2)

	var body string
	if series, ok := graphSeries(ax); ok {
		opts := []asciigraph.Option{asciigraph.Height(h), asciigraph.Width(w)}
		if ax.YLim != nil {
			opts = append(opts, asciigraph.LowerBound(ax.YLim.Min), asciigraph.UpperBound(ax.YLim.Max))
		}
		body = lipgloss.NewStyle().Foreground(CurrentTheme.Trace).Render(asciigraph.PlotMany(series, opts...))
	} else {
		body = lipgloss.NewStyle().Foreground(CurrentTheme.Image).Render(BrailleAxes(ax, w, h).String())
	}

	var b strings.Builder
	if ax.YLabel != "" {
		b.WriteString(ylabelStyle.Render(ax.YLabel) + "\n")
	}
	b.WriteString(strings.TrimRight(body, "\n"))
	if ax.Legend != nil && len(ax.Legend.Labels) > 0 {
		b.WriteString("\n" + renderLegend(ax.Legend))
	}
	return b.String()
}

// graphSeries returns the Y data of ax when every line is a gap-free trace
// and nothing else is drawn.
func graphSeries(ax *figure.Axes) ([][]float64, bool) {
	if len(ax.Images) > 0 || len(ax.Lines) == 0 || ax.AspectEqual {
		return nil, false
	}
	series := make([][]float64, 0, len(ax.Lines))
	for _, l := range ax.Lines {
		if len(l.Y) == 0 {
			return nil, false
		}
		for _, v := range l.Y {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, false
			}
		}
		series = append(series, l.Y)
	}
	return series, true
}

// BrailleAxes draws every line and image of ax onto a fresh canvas.
func BrailleAxes(ax *figure.Axes, w, h int) *Canvas {
	c := NewCanvas(w, h)
	xmin, xmax, ymin, ymax := Bounds(ax)
	if ax.AspectEqual {
		xmin, xmax, ymin, ymax = equalAspect(xmin, xmax, ymin, ymax, c.PixelsX(), c.PixelsY())
	}
	vp := c.Full(xmin, xmax, ymin, ymax)
	for _, im := range ax.Images {
		vp.Raster(im.Rows, im.Cols, im.At, im.X.Min, im.X.Max, im.Y.Min, im.Y.Max, imageThreshold)
	}
	for _, l := range ax.Lines {
		vp.Polyline(l.X, l.Y)
	}
	return c
}

// Bounds returns the axis limits of ax, taking explicit limits first and the
// extent of its data otherwise.
func Bounds(ax *figure.Axes) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		if !math.IsNaN(x) {
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		}
		if !math.IsNaN(y) {
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	for _, l := range ax.Lines {
		for i := range l.X {
			grow(l.X[i], l.Y[i])
		}
	}
	for _, im := range ax.Images {
		grow(im.X.Min, im.Y.Min)
		grow(im.X.Max, im.Y.Max)
	}
	if ax.XLim != nil {
		xmin, xmax = ax.XLim.Min, ax.XLim.Max
	}
	if ax.YLim != nil {
		ymin, ymax = ax.YLim.Min, ax.YLim.Max
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax = 0, 1
	}
	if math.IsInf(ymin, 1) {
		ymin, ymax = 0, 1
	}
	return xmin, xmax, ymin, ymax
}

// equalAspect widens the tighter range so one data unit spans the same
// number of pixels on both axes.
func equalAspect(xmin, xmax, ymin, ymax float64, pw, ph int) (float64, float64, float64, float64) {
	xr, yr := xmax-xmin, ymax-ymin
	if xr <= 0 || yr <= 0 {
		return xmin, xmax, ymin, ymax
	}
	sx, sy := xr/float64(pw), yr/float64(ph)
	if sx > sy {
		pad := (sx*float64(ph) - yr) / 2
		return xmin, xmax, ymin - pad, ymax + pad
	}
	pad := (sy*float64(pw) - xr) / 2
	return xmin - pad, xmax + pad, ymin, ymax
}

func renderLegend(l *figure.Legend) string {
	cols := max(l.Columns, 1)
	mark := lipgloss.NewStyle().Foreground(CurrentTheme.Legend).Render("─")
	var rows []string
	for i := 0; i < len(l.Labels); i += cols {
		end := min(i+cols, len(l.Labels))
		cells := make([]string, 0, end-i)
		for _, label := range l.Labels[i:end] {
			cells = append(cells, mark+" "+label)
		}
		rows = append(rows, strings.Join(cells, "  "))
	}
	return Subtle.Render(strings.Join(rows, "\n"))
}
