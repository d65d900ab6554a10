package extraction

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReconstructLines", func() {
	var (
		words []WordToken
		lines []string
	)

	JustBeforeEach(func() {
		lines = ReconstructLines(words)
	})

	When("tokens arrive out of reading order", func() {
		BeforeEach(func() {
			words = []WordToken{
				token("1,500.00", 0.7, 0.301),
				token("TOTAL", 0.1, 0.299),
				token("UBER", 0.2, 0.1),
			}
		})

		It("should group tokens with close Y into the same line", func() {
			Expect(lines).To(HaveLen(2))
		})

		It("should order lines top to bottom and tokens left to right", func() {
			Expect(lines[0]).To(Equal("UBER"))
			Expect(lines[1]).To(Equal("TOTAL 1,500.00"))
		})
	})

	When("tokens sit on clearly separate rows", func() {
		BeforeEach(func() {
			words = []WordToken{
				token("first", 0.1, 0.10),
				token("second", 0.1, 0.12),
				token("third", 0.1, 0.14),
			}
		})

		It("should produce one line per row", func() {
			Expect(lines).To(Equal([]string{"first", "second", "third"}))
		})
	})

	When("the input order is permuted", func() {
		It("should produce identical lines, even with coincident tokens", func() {
			words := []WordToken{
				token("Grand", 0.1, 0.30),
				token("Total", 0.3, 0.30),
				token("alpha", 0.2, 0.10),
				token("beta", 0.2, 0.10),
				token("120.00", 0.6, 0.30),
			}
			reversed := make([]WordToken, len(words))
			for i, w := range words {
				reversed[len(words)-1-i] = w
			}
			Expect(ReconstructLines(reversed)).To(Equal(ReconstructLines(words)))
		})
	})

	When("a token has no bounding polygon", func() {
		BeforeEach(func() {
			words = []WordToken{
				token("kept", 0.1, 0.1),
				{Text: "dropped"},
			}
		})

		It("should skip the positionless token", func() {
			Expect(lines).To(Equal([]string{"kept"}))
		})
	})

	When("the token list is empty", func() {
		BeforeEach(func() {
			words = nil
		})

		It("should return no lines", func() {
			Expect(lines).To(BeEmpty())
		})
	})
})
