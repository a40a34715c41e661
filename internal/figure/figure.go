package figure

import (
	"encoding/json"
	"image/color"
	"math"
)

// Limits is a closed [Min, Max] data range.
type Limits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Line struct {
	X     []float64   `json:"x"`
	Y     []float64   `json:"y"`
	Color *color.RGBA `json:"color,omitempty"`
}

// MarshalJSON writes NaN gaps as null.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     []*float64  `json:"x"`
		Y     []*float64  `json:"y"`
		Color *color.RGBA `json:"color,omitempty"`
	}{nullable(l.X), nullable(l.Y), l.Color})
}

func nullable(vs []float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		if !math.IsNaN(vs[i]) {
			out[i] = &vs[i]
		}
	}
	return out
}

// Segments splits the line at NaN samples. Runs shorter than two points are
// kept so single spike samples still reach the output.
func (l Line) Segments() [][2][]float64 {
	var out [][2][]float64
	start := -1
	for i := range l.X {
		gap := math.IsNaN(l.X[i]) || math.IsNaN(l.Y[i])
		if gap {
			if start >= 0 {
				out = append(out, [2][]float64{l.X[start:i], l.Y[start:i]})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, [2][]float64{l.X[start:], l.Y[start:]})
	}
	return out
}

// ImageBlock is a row-major grayscale raster drawn over Extent.
// Pixel values are unscaled; the output stage maps min..max to black..white.
type ImageBlock struct {
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Pixels []float64 `json:"pixels"`
	X      Limits    `json:"x"`
	Y      Limits    `json:"y"`
}

func (b ImageBlock) At(r, c int) float64 {
	return b.Pixels[r*b.Cols+c]
}

// Legend labels the first len(Labels) lines of its axes.
type Legend struct {
	Labels   []string `json:"labels"`
	Columns  int      `json:"columns"`
	Position string   `json:"position"`
}

type Axes struct {
	Lines           []Line       `json:"lines,omitempty"`
	Images          []ImageBlock `json:"images,omitempty"`
	Legend          *Legend      `json:"legend,omitempty"`
	XLim            *Limits      `json:"xlim,omitempty"`
	YLim            *Limits      `json:"ylim,omitempty"`
	YLabel          string       `json:"ylabel"`
	HideYTicks      bool         `json:"hide_yticks,omitempty"`
	HideXTickLabels bool         `json:"hide_xticklabels,omitempty"`
	Background      *color.RGBA  `json:"background,omitempty"`
	AspectEqual     bool         `json:"aspect_equal,omitempty"`
}

func (a *Axes) Plot(x, y []float64, c *color.RGBA) {
	a.Lines = append(a.Lines, Line{X: x, Y: y, Color: c})
}

func (a *Axes) Image(b ImageBlock) {
	a.Images = append(a.Images, b)
}

func (a *Axes) SetXLim(min, max float64) { a.XLim = &Limits{Min: min, Max: max} }
func (a *Axes) SetYLim(min, max float64) { a.YLim = &Limits{Min: min, Max: max} }

// Figure is one window: a column of subplots sharing the time axis.
type Figure struct {
	Index  int     `json:"index"`
	Title  string  `json:"title,omitempty"`
	Axes   []*Axes `json:"axes"`
	closed bool
}

func (f *Figure) Closed() bool { return f.closed }

// AddAxes appends a subplot row to the figure.
func (f *Figure) AddAxes() *Axes {
	ax := &Axes{}
	f.Axes = append(f.Axes, ax)
	return ax
}

var (
	White = &color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = &color.RGBA{A: 0xff}
	Blue  = &color.RGBA{B: 0xff, A: 0xff}
)

// Gray returns the gray level v in [0,1] as an opaque color.
func Gray(v float64) *color.RGBA {
	g := uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	return &color.RGBA{R: g, G: g, B: g, A: 0xff}
}
