package models

import "strings"

// Spend categories a card can reward. Tags are the wire format; labels are
// derived for display.
const (
	CategoryTravel   = "travel"
	CategoryShopping = "shopping"
	CategoryFood     = "food"
	CategoryFuel     = "fuel"
)

// AllCategories returns all valid category tags in display order
func AllCategories() []string {
	return []string{
		CategoryTravel,
		CategoryShopping,
		CategoryFood,
		CategoryFuel,
	}
}

// IsValidCategory checks if a category tag is part of the fixed enumeration
func IsValidCategory(tag string) bool {
	for _, valid := range AllCategories() {
		if tag == valid {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a tag: the tag with its first
// letter capitalized ("travel" -> "Travel"). Unknown tags get the same
// treatment rather than an error; they simply never match any card.
func CategoryLabel(tag string) string {
	if tag == "" {
		return ""
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}
