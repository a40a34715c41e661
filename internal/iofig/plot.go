package iofig

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plots lays the grid out as gonum plots, one per tile. Short rows are
// padded with empty plots.
func Plots(g *Grid, cfg Config) ([][]*plot.Plot, error) {
	if len(cfg.ImageShape) != 2 || cfg.ImageShape[0] <= 0 || cfg.ImageShape[1] <= 0 {
		return nil, fmt.Errorf("iofig: image shape %v must have 2 entries", cfg.ImageShape)
	}
	rows, cols := cfg.ImageShape[0], cfg.ImageShape[1]
	s := cfg.Scale

	cols0 := g.Cols()
	out := make([][]*plot.Plot, len(g.Rows))
	for i, row := range g.Rows {
		out[i] = make([]*plot.Plot, cols0)
		for j := range out[i] {
			p := plot.New()
			p.HideAxes()
			p.X.Min, p.X.Max = -s, s
			p.Y.Min, p.Y.Max = -s, s
			out[i][j] = p
			if j >= len(row) {
				continue
			}

			cell := row[j]
			switch cell.Kind {
			case ImageCell:
				if len(cell.Pixels) != rows*cols {
					return nil, fmt.Errorf("iofig: image has %d pixels, shape %dx%d", len(cell.Pixels), rows, cols)
				}
				p.Add(plotter.NewImage(grayImage(cell.Pixels, rows, cols), -s, -s, s, s))
			case PathCell:
				xys := make(plotter.XYs, len(cell.X))
				for k := range xys {
					xys[k].X, xys[k].Y = cell.X[k], cell.Y[k]
				}
				l, err := plotter.NewLine(xys)
				if err != nil {
					return nil, err
				}
				l.LineStyle.Width = vg.Points(1)
				p.Add(l)
			}
		}
	}
	return out, nil
}

// Size is the canvas size of the figure: CellSize inches per tile, capped
// at 18x12 inches.
func Size(g *Grid, cfg Config) (vg.Length, vg.Length) {
	w := min(cfg.CellSize*float64(g.Cols()), 18)
	h := min(cfg.CellSize*float64(len(g.Rows)), 12)
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// grayImage maps min..max of pixels onto black..white.
func grayImage(pixels []float64, rows, cols int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	lo, hi := floats.Min(pixels), floats.Max(pixels)
	span := hi - lo
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := 0.0
			if span > 0 {
				v = (pixels[r*cols+c] - lo) / span
			}
			img.SetGray(c, r, color.Gray{Y: uint8(v * 255)})
		}
	}
	return img
}
