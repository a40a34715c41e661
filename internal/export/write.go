package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"

	figureWidth = 10 * vg.Inch
	axesHeight  = 2 * vg.Inch
)

// WriteGrid aligns plots into a grid and writes it to w as png or svg.
func WriteGrid(w io.Writer, format string, plots [][]*plot.Plot, width, height vg.Length) error {
	var c vg.CanvasWriterTo
	switch format {
	case FormatPNG:
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	case FormatSVG:
		c = vgsvg.New(width, height)
	default:
		return &UnsupportedFormatError{Format: format}
	}

	cols := 0
	for _, row := range plots {
		cols = max(cols, len(row))
	}
	if len(plots) == 0 || cols == 0 {
		return fmt.Errorf("export: empty grid")
	}

	t := draw.Tiles{
		Rows:      len(plots),
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align(plots, t, draw.New(c))
	for j, row := range plots {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
	_, err := c.WriteTo(w)
	return err
}

// SaveGrid writes plots to path, taking the format from its extension.
func SaveGrid(path string, plots [][]*plot.Plot, width, height vg.Length) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != FormatPNG && format != FormatSVG {
		return &UnsupportedFormatError{Format: format}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGrid(f, format, plots, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FigureSize is the canvas size used for a figure.
func FigureSize(f *figure.Figure) (vg.Length, vg.Length) {
	return figureWidth, axesHeight * vg.Length(max(len(f.Axes), 1))
}

// SaveFigures writes every figure into dir as figure<N>.<format>, or all of
// them into figures.json. It returns the written paths.
func SaveFigures(figs []*figure.Figure, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	if format == FormatJSON {
		path := filepath.Join(dir, "figures.json")
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if err := WriteJSON(f, figs); err != nil {
			f.Close()
			return nil, err
		}
		return []string{path}, f.Close()
	}
	if format != FormatPNG && format != FormatSVG {
		return nil, &UnsupportedFormatError{Format: format}
	}

	var paths []string
	for _, fig := range figs {
		if len(fig.Axes) == 0 {
			continue
		}
		plots, err := FigurePlots(fig)
		if err != nil {
			return paths, fmt.Errorf("figure %d: %w", fig.Index, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("figure%d.%s", fig.Index, format))
		w, h := FigureSize(fig)
		if err := SaveGrid(path, plots, w, h); err != nil {
			return paths, fmt.Errorf("figure %d: %w", fig.Index, err)
		}
		log.Printf("wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func WriteJSON(w io.Writer, figs []*figure.Figure) error {
	data, err := json.MarshalIndent(figs, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
