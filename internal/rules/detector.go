package rules

import (
	"strings"

	"github.com/go-one-2/money/internal/model"
)

// DetectSubCategory classifies a free-text memo into a sub-category by
// case-insensitive keyword search. Sub-categories are tried in a fixed
// order and the first one with any keyword present in the memo wins; a
// memo matching nothing (or an empty memo) is general.
func DetectSubCategory(memo string) model.SubCategory {
	if memo == "" {
		return model.SubCategoryGeneral
	}

	lowered := strings.ToLower(memo)
	for _, sub := range subCategoryOrder {
		for _, keyword := range subCategoryKeywords[sub] {
			if strings.Contains(lowered, keyword) {
				return sub
			}
		}
	}
	return model.SubCategoryGeneral
}
