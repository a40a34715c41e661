package probe

import (
	"image/color"
	"math"

	"github.com/san-kum/probeviz/internal/figure"
	"gonum.org/v1/plot/palette/moreland"
)

const (
	colormapSpan = 0.9
	graymapSpan  = 0.8
	legendPerCol = 5.0
)

// linspace matches numpy.linspace: n evenly spaced samples over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// colorCycle samples the line colormap at n evenly spaced points of
// [0, colormapSpan].
func colorCycle(n int) []*color.RGBA {
	cm := moreland.Kindlmann()
	cm.SetMax(1)
	cm.SetMin(0)
	out := make([]*color.RGBA, 0, n)
	for _, v := range linspace(0, colormapSpan, n) {
		c, err := cm.At(v)
		if err != nil {
			c = color.Black
		}
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		out = append(out, &rgba)
	}
	return out
}

func grayCycle(n int) []*color.RGBA {
	out := make([]*color.RGBA, 0, n)
	for _, v := range linspace(0, graymapSpan, n) {
		out = append(out, figure.Gray(v))
	}
	return out
}

func newLegend(labels []string, pos string) *figure.Legend {
	return &figure.Legend{
		Labels:   labels,
		Columns:  int(math.Ceil(float64(len(labels)) / legendPerCol)),
		Position: pos,
	}
}
