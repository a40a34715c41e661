package probe

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TimeRange is a requested [Min, Max] display interval in seconds.
type TimeRange struct {
	Min, Max float64
}

// Window is the set of time-axis sample indices selected for display.
type Window struct {
	indices []int
	times   []float64
}

// NewWindow selects the samples of trange inside tr, or all of them when tr
// is nil.
func NewWindow(trange []float64, tr *TimeRange) (Window, error) {
	var w Window
	for i, t := range trange {
		if tr != nil && (t < tr.Min || t > tr.Max) {
			continue
		}
		w.indices = append(w.indices, i)
		w.times = append(w.times, t)
	}
	if len(w.indices) == 0 {
		if tr != nil {
			return Window{}, fmt.Errorf("%w: [%g, %g]", ErrEmptyWindow, tr.Min, tr.Max)
		}
		return Window{}, ErrEmptyWindow
	}
	return w, nil
}

func (w Window) Len() int { return len(w.indices) }

// Times returns the filtered time axis.
func (w Window) Times() []float64 { return w.times }

func (w Window) First() float64 { return w.times[0] }

func (w Window) Last() float64 { return w.times[len(w.times)-1] }

// Rows gathers the selected rows of m into a new matrix.
func (w Window) Rows(m *mat.Dense) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(w.indices), c, nil)
	for i, idx := range w.indices {
		out.SetRow(i, m.RawRowView(idx))
	}
	return out
}
