package probe

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type memDataset struct {
	trange []float64
	pi     float64
	probes map[string]*mat.Dense
}

func (d *memDataset) Probe(id string) (*mat.Dense, error) {
	m, ok := d.probes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProbe, id)
	}
	return m, nil
}

func (d *memDataset) Trange() []float64        { return d.trange }
func (d *memDataset) PresentInterval() float64 { return d.pi }

func timeAxis(n int, dt float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}

func column(vals ...float64) *mat.Dense {
	return mat.NewDense(len(vals), 1, vals)
}
