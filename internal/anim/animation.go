package anim

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"log"
	"math"
	"os"

	"github.com/san-kum/probeviz/internal/viz"
)

const (
	// terminal cells per subplot size unit
	cellsPerUnitX = 8
	cellsPerUnitY = 3

	// pixel size of one terminal cell in GIF output
	charW = 8
	charH = 16
)

type subplot struct {
	key      string
	plot     plotter
	row, col int
}

// Animation draws generator frames onto a grid of subplots sharing one
// Braille canvas.
type Animation struct {
	cfg      Config
	gen      *Generator
	subplots []subplot
	canvas   *viz.Canvas
	cellW    int
	cellH    int
}

// New builds the subplots of cfg over the probes of src.
func New(cfg Config, src Source) (*Animation, error) {
	if len(cfg.Plots) == 0 {
		return nil, ErrNoPlots
	}
	maxCols := max(cfg.MaxSubplotCols, 1)

	a := &Animation{cfg: cfg}
	funcs := make(map[string]DataFunc, len(cfg.Plots))
	for i, pc := range cfg.Plots {
		if _, dup := funcs[pc.Key]; dup {
			return nil, fmt.Errorf("plot %d: duplicate key %q", i, pc.Key)
		}
		fn, err := newDataFunc(pc.DataFunc, src, pc.DataParams)
		if err != nil {
			return nil, fmt.Errorf("plot %q: %w", pc.Key, err)
		}
		pl, err := newPlotter(pc.PlotType, pc.PlotParams)
		if err != nil {
			return nil, fmt.Errorf("plot %q: %w", pc.Key, err)
		}
		funcs[pc.Key] = fn
		a.subplots = append(a.subplots, subplot{key: pc.Key, plot: pl, row: i / maxCols, col: i % maxCols})
	}

	rows, cols := a.Grid()
	a.cellW = max(int(math.Round(cfg.SubplotWidth*cellsPerUnitX)), 4)
	a.cellH = max(int(math.Round(cfg.SubplotHeight*cellsPerUnitY)), 2)
	a.canvas = viz.NewCanvas(cols*a.cellW, rows*a.cellH)
	a.gen = NewGenerator(src.Trange(), cfg.Generator.Step, funcs)
	log.Printf("animation: %d plots in %dx%d grid, %d frames", len(a.subplots), rows, cols, a.gen.Len())
	return a, nil
}

// Grid returns the number of subplot rows and columns.
func (a *Animation) Grid() (rows, cols int) {
	n := len(a.cfg.Plots)
	maxCols := max(a.cfg.MaxSubplotCols, 1)
	cols = min(n, maxCols)
	rows = (n + maxCols - 1) / maxCols
	return rows, cols
}

func (a *Animation) Generator() *Generator { return a.gen }

func (a *Animation) Canvas() *viz.Canvas { return a.canvas }

// Draw clears the canvas and draws f into every subplot.
func (a *Animation) Draw(f Frame) *viz.Canvas {
	a.canvas.Clear()
	pw, ph := a.cellW*2, a.cellH*4
	for _, sp := range a.subplots {
		vp := viz.Viewport{
			Canvas: a.canvas,
			X0:     sp.col*pw + 1,
			Y0:     sp.row*ph + 1,
			W:      pw - 2,
			H:      ph - 2,
		}
		sp.plot.draw(vp, f.Data[sp.key])
	}
	return a.canvas
}

// Reset rewinds the generator and clears plot history.
func (a *Animation) Reset() {
	a.gen.Reset()
	for _, sp := range a.subplots {
		sp.plot.reset()
	}
}

// WriteGIF renders every frame from the start and encodes them to w.
func (a *Animation) WriteGIF(w io.Writer) error {
	a.Reset()
	var frames []*image.Paletted
	for {
		f, ok := a.gen.Next()
		if !ok {
			break
		}
		frames = append(frames, a.Draw(f).Image(charW, charH))
	}
	return encodeGIF(w, frames, a.cfg.GIFDelay)
}

func (a *Animation) SaveGIF(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.WriteGIF(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gif: no frames")
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, &out)
}
