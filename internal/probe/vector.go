package probe

import (
	"fmt"
	"strconv"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/gonum/mat"
)

// maxColoredChannels is the channel count from which raw vectors are drawn
// as one uncolored bundle.
const maxColoredChannels = 30

// VocabRenderer draws a vector probe projected onto its vocabulary.
type VocabRenderer struct {
	Vocab     map[string]Vocabulary
	LegendPos string
}

func (r *VocabRenderer) Render(ax *figure.Axes, req Request) error {
	id := req.Row.ProbeID
	vocab, ok := r.Vocab[id]
	if !ok {
		return fmt.Errorf("%w: no vocabulary for %q", ErrUnknownProbe, id)
	}
	if len(vocab.Keys) == 0 {
		return nil
	}
	_, width := req.Data.Dims()
	if width != vocab.Dim() {
		return &DimensionMismatchError{Probe: id, What: "vector width vs vocabulary", Want: vocab.Dim(), Got: width}
	}

	var proj mat.Dense
	proj.Mul(req.Data, vocab.Vectors.T())

	colors := colorCycle(len(vocab.Keys))
	for i := range vocab.Keys {
		ax.Plot(req.Times(), mat.Col(nil, i, &proj), colors[i])
	}
	if req.Row.Options.Legend {
		ax.Legend = newLegend(vocab.Keys, r.LegendPos)
	}
	return nil
}

// VectorRenderer draws every channel of a raw vector probe.
type VectorRenderer struct {
	LegendPos string
}

func (r *VectorRenderer) Render(ax *figure.Axes, req Request) error {
	_, n := req.Data.Dims()
	if n >= maxColoredChannels {
		for i := 0; i < n; i++ {
			ax.Plot(req.Times(), mat.Col(nil, i, req.Data), nil)
		}
		return nil
	}

	colors := colorCycle(n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		ax.Plot(req.Times(), mat.Col(nil, i, req.Data), colors[i])
		labels[i] = strconv.Itoa(i)
	}
	if req.Row.Options.Legend {
		ax.Legend = newLegend(labels, r.LegendPos)
	}
	return nil
}
