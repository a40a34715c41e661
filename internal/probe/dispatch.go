package probe

import (
	"fmt"
	"log"
	"sort"

	"github.com/san-kum/probeviz/internal/figure"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Dataset is the recording as the renderers see it.
type Dataset interface {
	Probe(id string) (*mat.Dense, error)
	Trange() []float64
	PresentInterval() float64
}

// Request is one subplot to render.
type Request struct {
	Row    Row
	Source Dataset
	Window Window
	// Data is the probe sliced to Window; nil for path rows, which slice their
	// own inputs.
	Data *mat.Dense
}

// Times is the filtered time axis.
func (r Request) Times() []float64 { return r.Window.Times() }

type Renderer interface {
	Render(ax *figure.Axes, req Request) error
}

type Dispatcher struct {
	source    Dataset
	settings  Settings
	window    Window
	renderers map[byte]Renderer
	cache     *ChangeCache
}

// NewDispatcher wires the five renderers for a run. rng drives the spike
// neuron selection; pass a seeded source for reproducible figures.
func NewDispatcher(src Dataset, s Settings, w Window, rng *rand.Rand) *Dispatcher {
	d := &Dispatcher{
		source:    src,
		settings:  s,
		window:    w,
		renderers: make(map[byte]Renderer),
		cache:     NewChangeCache(),
	}
	pi := src.PresentInterval()
	d.renderers[TypeVocabVector] = &VocabRenderer{Vocab: s.Vocab, LegendPos: s.LegendPos}
	d.renderers[TypeVector] = &VectorRenderer{LegendPos: s.LegendPos}
	d.renderers[TypeSpike] = &SpikeRenderer{Counts: s.NeuronCounts, Dt: s.Dt, Rand: rng, LegendPos: s.LegendPos}
	d.renderers[TypeImage] = &ImageRenderer{Shapes: s.ImageShapes, PresentInterval: pi, Cache: d.cache}
	d.renderers[TypePath] = &PathRenderer{Limits: s.PathLimits, PresentInterval: pi}
	return d
}

// Register installs or replaces the renderer for a type code.
func (d *Dispatcher) Register(code byte, r Renderer) {
	d.renderers[code] = r
}

func (d *Dispatcher) Codes() []byte {
	codes := make([]byte, 0, len(d.renderers))
	for c := range d.renderers {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func (d *Dispatcher) Cache() *ChangeCache { return d.cache }

// Dispatch renders one layout row into ax. fig and pos are the 1-based figure
// and row numbers used for the fallback y label.
func (d *Dispatcher) Dispatch(ax *figure.Axes, raw string, fig, pos int) error {
	row, err := ParseRow(raw)
	if err != nil {
		return err
	}
	r, ok := d.renderers[row.Options.TypeCode]
	if !ok {
		return &UnsupportedProbeTypeError{Code: row.Options.TypeCode, Row: raw}
	}

	req := Request{Row: row, Source: d.source, Window: d.window}
	if row.Options.TypeCode != TypePath {
		data, err := loadProbe(d.source, row.ProbeID)
		if err != nil {
			return err
		}
		req.Data = d.window.Rows(data)
	}

	if err := r.Render(ax, req); err != nil {
		return fmt.Errorf("row %q: %w", raw, err)
	}

	ax.SetXLim(d.window.First(), d.window.Last())
	if label := d.settings.Labels[row.LabelKey()]; label != "" {
		ax.YLabel = label
	} else {
		ax.YLabel = fmt.Sprintf("%d,%d", fig, pos)
	}
	log.Printf("rendered %q as %c into figure %d row %d", row.ProbeID, row.Options.TypeCode, fig, pos)
	return nil
}

// loadProbe fetches a probe and checks it spans the full time axis.
func loadProbe(src Dataset, id string) (*mat.Dense, error) {
	data, err := src.Probe(id)
	if err != nil {
		return nil, err
	}
	if r, _ := data.Dims(); r != len(src.Trange()) {
		return nil, &DimensionMismatchError{Probe: id, What: "samples vs time axis", Want: len(src.Trange()), Got: r}
	}
	return data, nil
}

// Render builds one figure per layout on host. The first failing row aborts
// the run.
func Render(host *figure.Host, layouts []Layout, d *Dispatcher) ([]*figure.Figure, error) {
	figs := make([]*figure.Figure, 0, len(layouts))
	for n, l := range layouts {
		f := host.NewFigure(l.Title())
		for r, raw := range l.Rows {
			ax := f.AddAxes()
			if err := d.Dispatch(ax, raw, n+1, r+1); err != nil {
				return figs, err
			}
		}
		for i, ax := range f.Axes {
			ax.HideXTickLabels = i < len(f.Axes)-1
		}
		figs = append(figs, f)
	}
	return figs, nil
}
