package export

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// FigurePlots converts a figure into a single column of gonum plots, one per
// axes, ready for plot.Align.
func FigurePlots(f *figure.Figure) ([][]*plot.Plot, error) {
	out := make([][]*plot.Plot, 0, len(f.Axes))
	for i, ax := range f.Axes {
		p, err := AxesPlot(ax)
		if err != nil {
			return nil, err
		}
		if i == 0 && f.Title != "" {
			p.Title.Text = f.Title
		}
		out = append(out, []*plot.Plot{p})
	}
	return out, nil
}

// AxesPlot draws one axes. Lines are split at NaN gaps; lines without a
// color take the plotutil default cycle.
func AxesPlot(ax *figure.Axes) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = ax.YLabel
	if ax.Background != nil {
		p.BackgroundColor = *ax.Background
	}

	for _, im := range ax.Images {
		p.Add(plotter.NewImage(normalized(im), im.X.Min, im.Y.Min, im.X.Max, im.Y.Max))
	}

	var thumbs []*plotter.Line
	for i, l := range ax.Lines {
		c := plotutil.Color(i)
		if l.Color != nil {
			c = *l.Color
		}
		var first *plotter.Line
		for _, seg := range l.Segments() {
			xys := make(plotter.XYs, len(seg[0]))
			for k := range xys {
				xys[k].X, xys[k].Y = seg[0][k], seg[1][k]
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Color = c
			line.LineStyle.Width = vg.Points(1)
			p.Add(line)
			if first == nil {
				first = line
			}
		}
		thumbs = append(thumbs, first)
	}

	if ax.Legend != nil {
		for i, label := range ax.Legend.Labels {
			if i >= len(thumbs) || thumbs[i] == nil {
				break
			}
			p.Legend.Add(label, thumbs[i])
		}
		placeLegend(&p.Legend, ax.Legend.Position)
	}

	if ax.XLim != nil {
		p.X.Min, p.X.Max = ax.XLim.Min, ax.XLim.Max
	}
	if ax.YLim != nil {
		p.Y.Min, p.Y.Max = ax.YLim.Min, ax.YLim.Max
	}
	if ax.AspectEqual {
		equalAspect(p)
	}
	if ax.HideYTicks {
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
	if ax.HideXTickLabels {
		p.X.Tick.Marker = unlabeled{p.X.Tick.Marker}
	}
	return p, nil
}

// unlabeled keeps tick marks but drops their labels.
type unlabeled struct {
	plot.Ticker
}

func (u unlabeled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// placeLegend maps position names such as "upper left" or "best" onto the
// legend corner.
func placeLegend(l *plot.Legend, pos string) {
	pos = strings.ToLower(pos)
	l.Top = !strings.Contains(pos, "lower")
	l.Left = strings.Contains(pos, "left")
}

// equalAspect widens the tighter axis range so both axes span the same
// data length.
func equalAspect(p *plot.Plot) {
	xr, yr := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	switch {
	case xr > yr:
		pad := (xr - yr) / 2
		p.Y.Min, p.Y.Max = p.Y.Min-pad, p.Y.Max+pad
	case yr > xr:
		pad := (yr - xr) / 2
		p.X.Min, p.X.Max = p.X.Min-pad, p.X.Max+pad
	}
}

// normalized maps the block's min..max onto black..white.
func normalized(b figure.ImageBlock) image.Image {
	img := image.NewGray(image.Rect(0, 0, b.Cols, b.Rows))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range b.Pixels {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			v := 0.0
			if hi > lo {
				v = (b.At(r, c) - lo) / (hi - lo)
			}
			img.SetGray(c, r, color.Gray{Y: uint8(math.Round(v * 255))})
		}
	}
	return img
}
