package figure_test

import (
	"encoding/json"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/probeviz/internal/figure"
)

var _ = Describe("Host", func() {
	var h *figure.Host

	BeforeEach(func() {
		h = figure.NewHost()
	})

	It("numbers figures from 1 in creation order", func() {
		a := h.NewFigure("a")
		b := h.NewFigure("b")
		Expect(a.Index).To(Equal(1))
		Expect(b.Index).To(Equal(2))
		Expect(h.Figures()).To(Equal([]*figure.Figure{a, b}))
		Expect(h.Open()).To(HaveLen(2))
	})

	It("closes every figure when any one is closed", func() {
		a := h.NewFigure("")
		b := h.NewFigure("")
		c := h.NewFigure("")

		h.Close(b)

		Expect(h.Done()).To(BeTrue())
		for _, f := range []*figure.Figure{a, b, c} {
			Expect(f.Closed()).To(BeTrue())
		}
		Expect(h.Figures()).To(HaveLen(3))
	})

	It("ignores figures that are already closed", func() {
		a := h.NewFigure("")
		h.Close(a)
		Expect(func() { h.Close(a) }).NotTo(Panic())
		Expect(h.Done()).To(BeTrue())
	})

	It("is done with no figures", func() {
		Expect(h.Done()).To(BeTrue())
	})
})

var _ = Describe("Line", func() {
	It("splits at NaN samples", func() {
		nan := math.NaN()
		l := figure.Line{X: []float64{0, 0, nan, 1, 1, nan, 2}, Y: []float64{0, 1, nan, 0, 1, nan, 0}}

		segs := l.Segments()
		Expect(segs).To(HaveLen(3))
		Expect(segs[0][0]).To(Equal([]float64{0, 0}))
		Expect(segs[1][1]).To(Equal([]float64{0, 1}))
		Expect(segs[2][0]).To(Equal([]float64{2}))
	})

	It("encodes NaN as null", func() {
		l := figure.Line{X: []float64{0, math.NaN()}, Y: []float64{1, 2}, Color: figure.Blue}
		data, err := json.Marshal(l)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"x":[0,null]`))
		Expect(string(data)).To(ContainSubstring(`"y":[1,2]`))
	})
})

var _ = Describe("Axes", func() {
	It("collects drawing intents", func() {
		ax := &figure.Axes{}
		ax.Plot([]float64{0, 1}, []float64{1, 2}, figure.Gray(0.5))
		ax.Image(figure.ImageBlock{Rows: 1, Cols: 2, Pixels: []float64{3, 4}})
		ax.SetXLim(0, 1)
		ax.SetYLim(-1, 1)

		Expect(ax.Lines).To(HaveLen(1))
		Expect(ax.Lines[0].Color.R).To(Equal(uint8(128)))
		Expect(ax.Images[0].At(0, 1)).To(Equal(4.0))
		Expect(*ax.XLim).To(Equal(figure.Limits{Min: 0, Max: 1}))
		Expect(*ax.YLim).To(Equal(figure.Limits{Min: -1, Max: 1}))
	})
})
