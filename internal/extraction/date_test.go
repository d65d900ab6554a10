package extraction

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractDate", func() {
	var (
		now    time.Time
		labels []string
	)

	BeforeEach(func() {
		now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		labels = DefaultKeywords().DateLabels
	})

	When("the line carries a day-first numeric date", func() {
		It("should read it as day-month-year", func() {
			date, hasTime, found := ExtractDate([]string{"05/08/2023"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(hasTime).To(BeFalse())
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-05"))
		})
	})

	When("the date carries a clock time", func() {
		It("should report the time as usable", func() {
			date, hasTime, found := ExtractDate([]string{"15/08/2023 14:30"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(hasTime).To(BeTrue())
			Expect(date.Hour()).To(Equal(14))
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-15"))
		})
	})

	When("the month is spelled out", func() {
		It("should parse abbreviated month names regardless of case", func() {
			date, _, found := ExtractDate([]string{"15-AUG-2023"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-15"))
		})

		It("should parse full month names", func() {
			date, _, found := ExtractDate([]string{"15 August 2023"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-15"))
		})

		It("should parse month-first forms", func() {
			date, _, found := ExtractDate([]string{"Aug 15, 2023"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-15"))
		})
	})

	When("several dates appear", func() {
		It("should prefer the one on a labeled line", func() {
			lines := []string{
				"Printed 01/03/2024",
				"Invoice Date: 20/01/2023",
			}
			date, _, found := ExtractDate(lines, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2023-01-20"))
		})

		It("should take the first candidate when none is labeled", func() {
			lines := []string{
				"01/03/2024",
				"20/01/2023",
			}
			date, _, found := ExtractDate(lines, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2024-03-01"))
		})
	})

	When("a two-digit year appears", func() {
		It("should place it in the current century", func() {
			date, _, found := ExtractDate([]string{"15/08/23"}, now, labels)
			Expect(found).To(BeTrue())
			Expect(date.Format("2006-01-02")).To(Equal("2023-08-15"))
		})
	})

	When("the only candidate is implausible", func() {
		It("should reject dates before the plausibility window", func() {
			_, _, found := ExtractDate([]string{"15/08/2005"}, now, labels)
			Expect(found).To(BeFalse())
		})

		It("should reject dates far in the future", func() {
			_, _, found := ExtractDate([]string{"15/08/2031"}, now, labels)
			Expect(found).To(BeFalse())
		})

		It("should reject calendar-invalid dates", func() {
			_, _, found := ExtractDate([]string{"31/02/2019"}, now, labels)
			Expect(found).To(BeFalse())
		})
	})

	When("no date appears at all", func() {
		It("should report not found", func() {
			_, _, found := ExtractDate([]string{"Total 45.00"}, now, labels)
			Expect(found).To(BeFalse())
		})
	})
})
