package extraction

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ClassifyCategory", func() {
	var (
		kw      *Keywords
		txTime  time.Time
		hasTime bool
	)

	BeforeEach(func() {
		kw = DefaultKeywords()
		txTime = time.Time{}
		hasTime = false
	})

	When("a vendor keyword matches", func() {
		It("should classify by vendor", func() {
			Expect(ClassifyCategory("UBER TRIP RECEIPT", txTime, hasTime, kw)).To(Equal("Taxi"))
		})

		It("should let vendor keywords beat meal keywords", func() {
			Expect(ClassifyCategory("UBER TRIP BREAKFAST INCLUDED", txTime, hasTime, kw)).To(Equal("Taxi"))
		})

		It("should classify fuel stations", func() {
			Expect(ClassifyCategory("HPCL PETROL PUMP", txTime, hasTime, kw)).To(Equal(CategoryFuel))
		})
	})

	When("only a meal keyword matches", func() {
		It("should classify by meal", func() {
			Expect(ClassifyCategory("MORNING BREAKFAST COMBO", txTime, hasTime, kw)).To(Equal(CategoryBreakfast))
		})

		It("should match Spanish meal words", func() {
			Expect(ClassifyCategory("CENA PARA DOS", txTime, hasTime, kw)).To(Equal(CategoryDinner))
		})
	})

	When("only the transaction time is known", func() {
		BeforeEach(func() {
			hasTime = true
		})

		It("should classify early transactions as Lunch", func() {
			txTime = time.Date(2023, 8, 15, 12, 30, 0, 0, time.UTC)
			Expect(ClassifyCategory("RESTAURANT ORDER 12", txTime, hasTime, kw)).To(Equal(CategoryLunch))
		})

		It("should classify evening transactions as Dinner", func() {
			txTime = time.Date(2023, 8, 15, 20, 0, 0, 0, time.UTC)
			Expect(ClassifyCategory("RESTAURANT ORDER 12", txTime, hasTime, kw)).To(Equal(CategoryDinner))
		})
	})

	When("nothing matches and no time is known", func() {
		It("should fall back to Miscellaneous", func() {
			Expect(ClassifyCategory("RESTAURANT ORDER 12", txTime, hasTime, kw)).To(Equal(CategoryMiscellaneous))
		})
	})
})
