package probe

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseLayout", func() {
	It("yields one empty figure for an empty stream", func() {
		layouts := ParseLayout(nil)
		Expect(layouts).To(HaveLen(1))
		Expect(layouts[0].Rows).To(BeEmpty())
		Expect(layouts[0].Title()).To(Equal(""))
	})

	It("opens a figure per separator", func() {
		for k := 0; k < 5; k++ {
			var toks []string
			for i := 0; i < k; i++ {
				toks = append(toks, "3v0", "..")
			}
			Expect(ParseLayout(toks)).To(HaveLen(k + 1))
		}
	})

	It("sorts rows, titles and ignored tokens", func() {
		layouts := ParseLayout([]string{
			"**Vision**", "0i0", "1V*", "!2s0", "Motor", "..",
			"3.4p0", "5s*", "Spikes",
		})
		Expect(layouts).To(HaveLen(2))
		Expect(layouts[0].Rows).To(Equal([]string{"0i0", "1V*"}))
		Expect(layouts[0].Titles).To(Equal([]string{"Vision", "Motor"}))
		Expect(layouts[0].Title()).To(Equal("Motor"))
		Expect(layouts[1].Rows).To(Equal([]string{"3.4p0", "5s*"}))
		Expect(layouts[1].Title()).To(Equal("Spikes"))
	})

	It("never keeps the decoration marker in titles", func() {
		layouts := ParseLayout([]string{"**a**b**", "x**", "**"})
		for _, t := range layouts[0].Titles {
			Expect(strings.Contains(t, "**")).To(BeFalse())
		}
	})

	It("accepts letter probe ids with a type code suffix", func() {
		Expect(ParseLayout([]string{"p0v0"})[0].Rows).To(Equal([]string{"p0v0"}))
	})

	It("keeps titles with spaces out of the rows", func() {
		layouts := ParseLayout([]string{"Motor v1", "3v0", "Output v2"})
		Expect(layouts[0].Rows).To(Equal([]string{"3v0"}))
		Expect(layouts[0].Titles).To(Equal([]string{"Motor v1", "Output v2"}))
	})

	DescribeTable("IsRow",
		func(tok string, want bool) {
			Expect(IsRow(tok)).To(Equal(want))
		},
		Entry("numeric id with digit tail", "12v0", true),
		Entry("digit tail through punctuation", "trial.1.2", true),
		Entry("two trailing digits", "Run 42", true),
		Entry("legend flag", "7V*", true),
		Entry("path with pen", "3.4p0", true),
		Entry("named probe with type code", "armp0", true),
		Entry("plain title", "Vision", false),
		Entry("title word ending like a suffix", "Motor v1", false),
		Entry("title word with spike code", "Output v2", false),
		Entry("title with one digit", "Figure 1", false),
		Entry("too short", "v0", false),
	)
})
