package catalog

import "github.com/Arun-Dalakoti/CardGenius/internal/models"

// SpendConfig describes the spend-entry control for one category: the
// slider ceiling and the quick-add increment buttons shown next to it.
type SpendConfig struct {
	Category        string  `json:"category"`
	Label           string  `json:"label"`
	MaxAmount       int64   `json:"max_amount"`
	QuickIncrements []int64 `json:"quick_increments"`
}

var spendConfigs = []SpendConfig{
	{
		Category:        models.CategoryTravel,
		Label:           models.CategoryLabel(models.CategoryTravel),
		MaxAmount:       15000,
		QuickIncrements: []int64{1000, 5000},
	},
	{
		Category:        models.CategoryShopping,
		Label:           models.CategoryLabel(models.CategoryShopping),
		MaxAmount:       20000,
		QuickIncrements: []int64{1000, 5000},
	},
	{
		Category:        models.CategoryFood,
		Label:           models.CategoryLabel(models.CategoryFood),
		MaxAmount:       12000,
		QuickIncrements: []int64{1000, 5000},
	},
	{
		Category:        models.CategoryFuel,
		Label:           models.CategoryLabel(models.CategoryFuel),
		MaxAmount:       10000,
		QuickIncrements: []int64{1000, 5000},
	},
}

// SpendConfigs returns the per-category spend-entry configuration in the
// fixed enumeration order
func SpendConfigs() []SpendConfig {
	out := make([]SpendConfig, len(spendConfigs))
	copy(out, spendConfigs)
	return out
}
