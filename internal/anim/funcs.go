package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/probeviz/internal/probe"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUnknownDataFunc = errors.New("unknown data function")
	ErrUnknownPlotType = errors.New("unknown plot type")
	ErrMissingParam    = errors.New("missing parameter")
	ErrNoPlots         = errors.New("animation has no plots")
	ErrBadParam        = errors.New("bad parameter")
)

// Source is the slice of a recording the animation reads from.
type Source interface {
	Probe(id string) (*mat.Dense, error)
	Trange() []float64
}

// Sample is what a data function yields for one time index.
type Sample struct {
	Values     []float64
	Rows, Cols int
	X, Y       []float64
}

type DataFunc func(i int) Sample

type dataFuncFactory func(src Source, p Params) (DataFunc, error)

var dataFuncs = map[string]dataFuncFactory{
	"image":    imageFunc,
	"value":    valueFunc,
	"arm_path": armPathFunc,
}

// DataFuncNames lists the registered data functions.
func DataFuncNames() []string {
	names := make([]string, 0, len(dataFuncs))
	for name := range dataFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDataFunc(name string, src Source, p Params) (DataFunc, error) {
	factory, ok := dataFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataFunc, name)
	}
	return factory(src, p)
}

// imageFunc reshapes the sample at i into an image. Without a shape
// parameter the image is assumed square.
func imageFunc(src Source, p Params) (DataFunc, error) {
	m, err := p.Probe(src, "data")
	if err != nil {
		return nil, err
	}
	_, n := m.Dims()
	rows, cols := 0, 0
	if list, ok := p["shape"].([]any); ok && len(list) == 2 {
		r, _ := toFloat(list[0])
		c, _ := toFloat(list[1])
		rows, cols = int(r), int(c)
	} else {
		side := int(math.Round(math.Sqrt(float64(n))))
		rows, cols = side, side
	}
	if rows*cols != n {
		return nil, fmt.Errorf("image shape %dx%d does not cover %d values", rows, cols, n)
	}
	return func(i int) Sample {
		return Sample{Values: mat.Row(nil, i, m), Rows: rows, Cols: cols}
	}, nil
}

func valueFunc(src Source, p Params) (DataFunc, error) {
	m, err := p.Probe(src, "data")
	if err != nil {
		return nil, err
	}
	return func(i int) Sample {
		return Sample{Values: mat.Row(nil, i, m)}
	}, nil
}

// armPathFunc yields the end-effector trail drawn so far. Only samples with
// the pen down are part of the trail; strokes are separated by NaN.
func armPathFunc(src Source, p Params) (DataFunc, error) {
	ee, err := p.Probe(src, "ee_path_data")
	if err != nil {
		return nil, err
	}
	n, dims := ee.Dims()
	if dims < 2 {
		return nil, fmt.Errorf("ee_path_data: want 2 columns, got %d", dims)
	}

	states := make([]probe.PenState, n)
	for i := range states {
		states[i] = probe.PenDown
	}
	if p.Has("pen_status_data") {
		pen, err := p.Probe(src, "pen_status_data")
		if err != nil {
			return nil, err
		}
		states = probe.PenStates(mat.Col(nil, 0, pen))
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	ends := make([]int, n)
	for i := 0; i < n; i++ {
		if states[i] == probe.PenDown {
			xs = append(xs, ee.At(i, 0))
			ys = append(ys, ee.At(i, 1))
		} else if len(xs) > 0 && !math.IsNaN(xs[len(xs)-1]) {
			xs = append(xs, math.NaN())
			ys = append(ys, math.NaN())
		}
		ends[i] = len(xs)
	}
	return func(i int) Sample {
		return Sample{X: xs[:ends[i]], Y: ys[:ends[i]]}
	}, nil
}
