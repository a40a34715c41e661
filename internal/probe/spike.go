package probe

import (
	"math"
	"strconv"

	"github.com/san-kum/probeviz/internal/figure"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// spikeHeight is the share of a raster row one spike tick covers.
	spikeHeight = 0.75
	// topFiringShare is the fraction of neurons eligible for display before
	// the random pick.
	topFiringShare = 0.35
)

// SpikeRenderer draws a raster for a random subset of the busiest neurons.
type SpikeRenderer struct {
	Counts    map[string]int
	Dt        float64
	Rand      *rand.Rand
	LegendPos string
}

// Selection is the outcome of the neuron pick.
type Selection struct {
	// Top holds the indices eligible for display, lowest spike total first.
	Top []int
	// Neurons holds the displayed neuron indices in raster order.
	Neurons []int
}

// SelectNeurons picks min(configured, total) neurons at random among the
// max(35% of total, displayed) neurons with the highest spike totals. A
// non-positive configured count displays every neuron.
func SelectNeurons(data mat.Matrix, configured int, rng *rand.Rand) Selection {
	_, total := data.Dims()
	totals := make([]float64, total)
	for j := range totals {
		totals[j] = floats.Sum(mat.Col(nil, j, data))
	}

	display := total
	if configured > 0 && configured < total {
		display = configured
	}
	top := int(math.Max(float64(total)*topFiringShare, float64(display)))

	order := make([]int, total)
	floats.Argsort(totals, order)
	sel := Selection{Top: order[total-top:]}

	perm := rng.Perm(len(sel.Top))
	sel.Neurons = make([]int, display)
	for i := range sel.Neurons {
		sel.Neurons[i] = sel.Top[perm[i]]
	}
	return sel
}

func (r *SpikeRenderer) Render(ax *figure.Axes, req Request) error {
	sel := SelectNeurons(req.Data, r.Counts[req.Row.ProbeID], r.Rand)
	spikeValue := 1.0 / r.Dt

	times := req.Times()
	strange := make([]float64, 3*len(times))
	for i, t := range times {
		strange[3*i], strange[3*i+1], strange[3*i+2] = t, t, t
	}

	colors := grayCycle(len(sel.Neurons))
	labels := make([]string, len(sel.Neurons))
	for nn, neuron := range sel.Neurons {
		lo := (1 + float64(nn) - spikeHeight/2) / spikeValue
		hi := (1 + float64(nn) + spikeHeight/2) / spikeValue
		sdata := make([]float64, 3*len(times))
		for i := range times {
			s := req.Data.At(i, neuron)
			sdata[3*i] = s * lo
			sdata[3*i+1] = s * hi
			sdata[3*i+2] = math.NaN()
		}
		ax.Plot(strange, sdata, colors[nn])
		labels[nn] = strconv.Itoa(neuron + 1)
	}

	if req.Row.Options.Legend {
		ax.Legend = newLegend(labels, r.LegendPos)
	}
	ax.SetYLim(0, float64(len(sel.Neurons)+1))
	return nil
}
