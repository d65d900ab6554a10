package extraction

import "time"

// Categories the classifier can emit. Vendor and meal categories come
// from the keyword table; these are the ones the code itself needs to
// reference.
const (
	CategoryFuel          = "Fuel"
	CategoryBreakfast     = "Breakfast"
	CategoryLunch         = "Lunch"
	CategoryDinner        = "Dinner"
	CategoryMiscellaneous = "Miscellaneous"
)

// dinnerHour splits the meal-time fallback: transactions before 17:00
// classify as Lunch, later ones as Dinner.
const dinnerHour = 17

// ClassifyCategory picks the expense purpose for a document. Vendor
// keywords outrank meal keywords, which outrank the time-of-day rule,
// so "UBER" on a breakfast receipt still classifies as Taxi. fullText
// must be uppercased. The time rule only applies when the document
// carried a usable timestamp.
func ClassifyCategory(fullText string, txTime time.Time, hasTime bool, kw *Keywords) string {
	for _, rule := range kw.Categories {
		if containsAny(fullText, rule.Keywords) {
			return rule.Name
		}
	}
	for _, rule := range kw.Meals {
		if containsAny(fullText, rule.Keywords) {
			return rule.Name
		}
	}
	if hasTime {
		if txTime.Hour() < dinnerHour {
			return CategoryLunch
		}
		return CategoryDinner
	}
	return CategoryMiscellaneous
}
