package anim

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/probeviz/internal/viz"
)

// plotter draws one subplot of a frame into the pixel rectangle of vp.
type plotter interface {
	draw(vp viz.Viewport, s Sample)
	reset()
}

var plotTypes = map[string]func(Params) (plotter, error){
	"image": func(Params) (plotter, error) { return &imagePlot{}, nil },
	"path":  newPathPlot,
	"trace": newTracePlot,
}

// PlotTypeNames lists the registered plot types.
func PlotTypeNames() []string {
	names := make([]string, 0, len(plotTypes))
	for name := range plotTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newPlotter(name string, p Params) (plotter, error) {
	ctor, ok := plotTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlotType, name)
	}
	return ctor(p)
}

type imagePlot struct{}

func (imagePlot) draw(vp viz.Viewport, s Sample) {
	if s.Rows == 0 || s.Cols == 0 {
		return
	}
	rows, cols := float64(s.Rows), float64(s.Cols)
	vp.XMin, vp.XMax, vp.YMin, vp.YMax = 0, cols, 0, rows
	vp.Raster(s.Rows, s.Cols, func(r, c int) float64 { return s.Values[r*s.Cols+c] }, 0, cols, 0, rows, 0.5)
}

func (imagePlot) reset() {}

type pathPlot struct {
	xlim, ylim [2]float64
}

func newPathPlot(p Params) (plotter, error) {
	pp := &pathPlot{xlim: [2]float64{-1, 1}, ylim: [2]float64{-1, 1}}
	if lim, ok := p.Pair("xlim"); ok {
		pp.xlim = lim
	}
	if lim, ok := p.Pair("ylim"); ok {
		pp.ylim = lim
	}
	if pp.xlim[0] >= pp.xlim[1] || pp.ylim[0] >= pp.ylim[1] {
		return nil, fmt.Errorf("%w: path limits x=%v y=%v are empty", ErrBadParam, pp.xlim, pp.ylim)
	}
	return pp, nil
}

func (pp *pathPlot) draw(vp viz.Viewport, s Sample) {
	vp.XMin, vp.XMax = pp.xlim[0], pp.xlim[1]
	vp.YMin, vp.YMax = pp.ylim[0], pp.ylim[1]
	vp.Polyline(s.X, s.Y)
}

func (pp *pathPlot) reset() {}

// tracePlot scrolls the last history values of every channel.
type tracePlot struct {
	history int
	ylim    *[2]float64
	buf     [][]float64
}

func newTracePlot(p Params) (plotter, error) {
	tp := &tracePlot{history: p.Int("history", 100)}
	if tp.history < 1 {
		return nil, fmt.Errorf("%w: history %d must be positive", ErrBadParam, tp.history)
	}
	if lim, ok := p.Pair("ylim"); ok {
		if lim[0] >= lim[1] {
			return nil, fmt.Errorf("%w: ylim %v is empty", ErrBadParam, lim)
		}
		tp.ylim = &lim
	}
	return tp, nil
}

func (tp *tracePlot) draw(vp viz.Viewport, s Sample) {
	tp.buf = append(tp.buf, s.Values)
	if len(tp.buf) > tp.history {
		tp.buf = tp.buf[len(tp.buf)-tp.history:]
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vals := range tp.buf {
		for _, v := range vals {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if tp.ylim != nil {
		lo, hi = tp.ylim[0], tp.ylim[1]
	}
	if math.IsInf(lo, 0) {
		return
	}
	vp.XMin, vp.XMax, vp.YMin, vp.YMax = 0, float64(max(tp.history-1, 1)), lo, hi

	xs := make([]float64, len(tp.buf))
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := make([]float64, len(tp.buf))
	for ch := range s.Values {
		for i, vals := range tp.buf {
			ys[i] = math.NaN()
			if ch < len(vals) {
				ys[i] = vals[ch]
			}
		}
		vp.Polyline(xs, ys)
	}
}

func (tp *tracePlot) reset() { tp.buf = nil }
