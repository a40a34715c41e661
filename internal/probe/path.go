package probe

import (
	"fmt"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/gonum/mat"
)

const (
	PenDownThreshold = 0.5
	PenUpThreshold   = 0.25
)

type PenState int

const (
	PenUp PenState = iota
	PenDown
)

func (s PenState) String() string {
	if s == PenDown {
		return "down"
	}
	return "up"
}

// PenMachine debounces a pen signal with two thresholds: readings at or
// above Down put the pen down, readings at or below Up lift it, anything in
// between keeps the current state. The zero value starts Up but has no
// thresholds; use NewPenMachine.
type PenMachine struct {
	Down, Up float64
	state    PenState
}

func NewPenMachine() *PenMachine {
	return &PenMachine{Down: PenDownThreshold, Up: PenUpThreshold}
}

func (m *PenMachine) Next(v float64) PenState {
	switch {
	case v >= m.Down:
		m.state = PenDown
	case v <= m.Up:
		m.state = PenUp
	}
	return m.state
}

// PenStates runs a fresh machine over signal.
func PenStates(signal []float64) []PenState {
	m := NewPenMachine()
	states := make([]PenState, len(signal))
	for i, v := range signal {
		states[i] = m.Next(v)
	}
	return states
}

// Segment is the half-open sample range [Start, End) of one pen state.
type Segment struct {
	Start, End int
	State      PenState
}

// Segments splits states at every transition.
func Segments(states []PenState) []Segment {
	var segs []Segment
	for i, s := range states {
		if i == 0 || s != states[i-1] {
			segs = append(segs, Segment{Start: i, State: s})
		}
		segs[len(segs)-1].End = i + 1
	}
	return segs
}

// Remap maps v affinely from the range from onto the range to.
func Remap(v float64, from, to [2]float64) float64 {
	return (v-from[0])*((to[1]-to[0])/(from[1]-from[0])) + to[0]
}

// PathRenderer draws a 2-D path probe for the stretches where its pen probe
// is down. Each stroke is squeezed into the present interval that ends when
// the stroke ends.
type PathRenderer struct {
	Limits          map[string]PathLimits
	PresentInterval float64
}

func (r *PathRenderer) Render(ax *figure.Axes, req Request) error {
	pathID, penID := req.Row.PathProbes()
	limits, ok := r.Limits[pathID]
	if !ok {
		return fmt.Errorf("%w: no path limits for %q", ErrUnknownProbe, pathID)
	}
	raw, err := loadProbe(req.Source, pathID)
	if err != nil {
		return err
	}
	if _, c := raw.Dims(); c < 2 {
		return &DimensionMismatchError{Probe: pathID, What: "path coordinates", Want: 2, Got: c}
	}
	path := req.Window.Rows(raw)
	n := req.Window.Len()

	segs := []Segment{{Start: 0, End: n, State: PenDown}}
	if penID != "" {
		pen, err := loadProbe(req.Source, penID)
		if err != nil {
			return err
		}
		segs = Segments(PenStates(mat.Col(nil, 0, req.Window.Rows(pen))))
	}

	pi := r.PresentInterval
	times := req.Times()
	for _, seg := range segs {
		if seg.State != PenDown {
			continue
		}
		tEnd := times[seg.End-1]
		xs := make([]float64, 0, seg.End-seg.Start)
		ys := make([]float64, 0, seg.End-seg.Start)
		for i := seg.Start; i < seg.End; i++ {
			xs = append(xs, Remap(path.At(i, 0), limits.X, [2]float64{tEnd - pi, tEnd}))
			ys = append(ys, Remap(path.At(i, 1), limits.Y, [2]float64{0, pi}))
		}
		ax.Plot(xs, ys, figure.Blue)
	}

	margin := pi * frameMargin
	ax.AspectEqual = true
	ax.HideYTicks = true
	ax.SetYLim(-margin, pi+margin)
	return nil
}
