package probe

import (
	"fmt"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// ChangeThreshold is the root-sum-square difference above which two
	// consecutive image samples count as different images.
	ChangeThreshold = 0.1
	// frameMargin is the share of the present interval added above and
	// below image and path rows.
	frameMargin = 0.25
)

// ChangePoints returns the sample indices at which the image content
// changes. Index 0 is always included.
func ChangePoints(data mat.Matrix, threshold float64) []int {
	r, c := data.Dims()
	if r == 0 {
		return nil
	}
	inds := []int{0}
	prev := mat.Row(nil, 0, data)
	cur := make([]float64, c)
	for i := 1; i < r; i++ {
		mat.Row(cur, i, data)
		if floats.Distance(cur, prev, 2) > threshold {
			inds = append(inds, i)
		}
		prev, cur = cur, prev
	}
	return inds
}

// ImageRenderer draws a flattened image probe as a timeline of the distinct
// images it shows.
type ImageRenderer struct {
	Shapes          map[string]ImageShape
	PresentInterval float64
	Cache           *ChangeCache
}

func (r *ImageRenderer) Render(ax *figure.Axes, req Request) error {
	id := req.Row.ProbeID
	shape, ok := r.Shapes[id]
	if !ok {
		return fmt.Errorf("%w: no image shape for %q", ErrUnknownProbe, id)
	}
	_, width := req.Data.Dims()
	if shape[0]*shape[1] != width {
		return &DimensionMismatchError{Probe: id, What: "image pixels", Want: shape[0] * shape[1], Got: width}
	}

	timeline := r.Cache.Get(id, func() []int {
		return ChangePoints(req.Data, ChangeThreshold)
	})

	pi := r.PresentInterval
	margin := pi * frameMargin
	times := req.Times()
	for _, ind := range timeline {
		if ind >= len(times) {
			continue
		}
		t := times[ind]
		ax.Image(figure.ImageBlock{
			Rows:   shape[0],
			Cols:   shape[1],
			Pixels: mat.Row(nil, ind, req.Data),
			X:      figure.Limits{Min: t, Max: t + pi},
			Y:      figure.Limits{Min: 0, Max: pi},
		})
		ax.Plot([]float64{t, t}, []float64{-margin, pi + margin}, figure.White)
	}

	ax.HideYTicks = true
	ax.Background = figure.Black
	ax.SetYLim(-margin, pi+margin)
	return nil
}
