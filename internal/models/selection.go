package models

import "sort"

// SpendSelection is the transient input to a ranking request: the categories
// the user toggled on and the monthly amount they entered per category.
// Values never outlive the session that produced them.
type SpendSelection struct {
	SelectedCategories []string         `json:"selected_categories"`
	CategorySpends     map[string]int64 `json:"category_spends"`
}

// TotalSpend sums all category spend amounts, including zero entries.
// Negative amounts are clamped to zero; no spend amount is legitimately
// negative here.
func (s *SpendSelection) TotalSpend() int64 {
	var total int64
	for _, amount := range s.CategorySpends {
		if amount > 0 {
			total += amount
		}
	}
	return total
}

// SpendOrder returns the category tags of CategorySpends in a stable order:
// the fixed enumeration order first, then any remaining tags sorted. The
// savings breakdown preserves this order.
func (s *SpendSelection) SpendOrder() []string {
	order := make([]string, 0, len(s.CategorySpends))
	seen := make(map[string]bool, len(s.CategorySpends))

	for _, tag := range AllCategories() {
		if _, ok := s.CategorySpends[tag]; ok {
			order = append(order, tag)
			seen[tag] = true
		}
	}

	var rest []string
	for tag := range s.CategorySpends {
		if !seen[tag] {
			rest = append(rest, tag)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}
