package iofig

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	penDown = 0.5
	penUp   = 0.25
)

var ErrEmptyGrid = errors.New("iofig: nothing to show")

type Source interface {
	Probe(id string) (*mat.Dense, error)
}

type CellKind int

const (
	ImageCell CellKind = iota
	PathCell
)

// Cell is one tile of the figure: a stimulus image or a pen stroke.
type Cell struct {
	Kind   CellKind
	Pixels []float64
	X, Y   []float64
}

// Grid holds the tiles row by row. Rows can differ in length.
type Grid struct {
	Rows [][]Cell
}

// Cols is the length of the longest row.
func (g *Grid) Cols() int {
	n := 0
	for _, row := range g.Rows {
		n = max(n, len(row))
	}
	return n
}

func (g *Grid) add(c Cell) {
	if len(g.Rows) == 0 {
		g.Rows = append(g.Rows, nil)
	}
	last := len(g.Rows) - 1
	g.Rows[last] = append(g.Rows[last], c)
}

// Build loads the probes named in cfg and segments them.
func Build(cfg Config, src Source) (*Grid, error) {
	stim, err := src.Probe(cfg.StimulusProbe)
	if err != nil {
		return nil, fmt.Errorf("stimulus: %w", err)
	}
	ee, err := src.Probe(cfg.PathProbe)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	pen, err := src.Probe(cfg.PenProbe)
	if err != nil {
		return nil, fmt.Errorf("pen: %w", err)
	}

	n, _ := stim.Dims()
	if r, c := ee.Dims(); r != n || c < 2 {
		return nil, fmt.Errorf("path probe %q is %dx%d, want %dx2", cfg.PathProbe, r, c, n)
	}
	if r, _ := pen.Dims(); r != n {
		return nil, fmt.Errorf("pen probe %q has %d samples, want %d", cfg.PenProbe, r, n)
	}
	if len(cfg.ResetImage) > 0 {
		if _, c := stim.Dims(); c != len(cfg.ResetImage) {
			return nil, fmt.Errorf("reset image has %d pixels, stimulus has %d", len(cfg.ResetImage), c)
		}
	}

	g := Segment(cfg, stim, ee, mat.Col(nil, 0, pen))
	if len(g.Rows) == 0 {
		return nil, ErrEmptyGrid
	}
	log.Printf("iofig: %d rows, %d cols", len(g.Rows), g.Cols())
	return g, nil
}

// Segment walks the stimulus and pen signals once. A stroke starts when the
// pen rises above the down threshold while no image is shown and ends when
// the pen drops below the up threshold, an image appears or the data ends;
// strokes longer than MinPathLen samples become path tiles. Each distinct
// stimulus becomes an image tile, and a stimulus matching ResetImage starts
// a new row first.
func Segment(cfg Config, stim, ee *mat.Dense, pen []float64) *Grid {
	g := &Grid{}
	n, width := stim.Dims()

	down := false
	start := -1
	col := 0
	prev := make([]float64, width)
	img := make([]float64, width)
	for i := 0; i < n; i++ {
		mat.Row(img, i, stim)
		shown := floats.Sum(img) > 0

		switch {
		case !down && pen[i] > penDown && !shown:
			down, start = true, i
		case down && (pen[i] < penUp || shown || i == n-1):
			down = false
			if i-start > cfg.MinPathLen {
				g.add(pathCell(ee, start, i))
			}
		}

		if floats.Distance(prev, img, 2) <= cfg.Threshold {
			continue
		}
		if len(cfg.ResetImage) > 0 && floats.Distance(img, cfg.ResetImage, 2) < cfg.Threshold {
			g.Rows = append(g.Rows, nil)
			col = 0
		}
		if len(cfg.ImageFilter) == 0 || slices.Contains(cfg.ImageFilter, col) {
			g.add(Cell{Kind: ImageCell, Pixels: slices.Clone(img)})
		}
		copy(prev, img)
		col++
	}
	return g
}

// pathCell copies samples [start, end) of the end-effector trace.
func pathCell(ee *mat.Dense, start, end int) Cell {
	c := Cell{Kind: PathCell, X: make([]float64, end-start), Y: make([]float64, end-start)}
	for i := start; i < end; i++ {
		c.X[i-start] = ee.At(i, 0)
		c.Y[i-start] = ee.At(i, 1)
	}
	return c
}
