// Package model defines the core data structures for the gavel application.
package model

// Category is one of the fixed top-level spending categories.
// Values are the user-facing Korean labels and double as storage keys.
type Category string

// Top-level spending categories.
const (
	CategoryFood      Category = "식비"
	CategoryTransport Category = "교통"
	CategoryShopping  Category = "쇼핑"
	CategoryCulture   Category = "문화/여가"
	CategoryMedical   Category = "의료"
	CategoryEducation Category = "교육"
	CategoryHousing   Category = "주거"
	CategoryEtc       Category = "기타"
)

// Categories lists every top-level category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryCulture,
	CategoryMedical,
	CategoryEducation,
	CategoryHousing,
	CategoryEtc,
}

// IsValid reports whether c is one of the eight known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SubCategory is a fine-grained classification derived from the expense
// memo. It is used only for monthly frequency limits.
type SubCategory string

// Memo-derived sub-categories. SubCategoryGeneral is the fallback when no
// keyword matches.
const (
	SubCategoryDiningOut SubCategory = "외식"
	SubCategoryCoffee    SubCategory = "커피"
	SubCategoryAlcohol   SubCategory = "술"
	SubCategoryDelivery  SubCategory = "배달음식"
	SubCategoryGeneral   SubCategory = "일반"
)

// SubCategories lists every sub-category. The first four are in keyword
// evaluation order; SubCategoryGeneral is never matched by keyword.
var SubCategories = []SubCategory{
	SubCategoryDiningOut,
	SubCategoryCoffee,
	SubCategoryAlcohol,
	SubCategoryDelivery,
	SubCategoryGeneral,
}

// IsValid reports whether s is one of the five known sub-categories.
func (s SubCategory) IsValid() bool {
	for _, known := range SubCategories {
		if s == known {
			return true
		}
	}
	return false
}
