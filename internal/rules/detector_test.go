package rules

import (
	"testing"

	"github.com/go-one-2/money/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectSubCategory(t *testing.T) {
	tests := []struct {
		name string
		memo string
		want model.SubCategory
	}{
		{
			name: "empty memo falls back to general",
			memo: "",
			want: model.SubCategoryGeneral,
		},
		{
			name: "no keyword falls back to general",
			memo: "주차비",
			want: model.SubCategoryGeneral,
		},
		{
			name: "dining out keyword",
			memo: "동네 맛집 파스타",
			want: model.SubCategoryDiningOut,
		},
		{
			name: "coffee keyword",
			memo: "스타벅스 아메리카노",
			want: model.SubCategoryCoffee,
		},
		{
			name: "alcohol keyword",
			memo: "퇴근 후 맥주 한잔",
			want: model.SubCategoryAlcohol,
		},
		{
			name: "delivery keyword",
			memo: "배민 야식",
			want: model.SubCategoryDelivery,
		},
		{
			name: "case insensitive latin keyword",
			memo: "OTT 구독",
			want: model.SubCategoryGeneral, // OTT is a priority keyword, not a sub-category one
		},
		{
			name: "dining out wins over coffee",
			memo: "식당 갔다가 커피",
			want: model.SubCategoryDiningOut,
		},
		{
			name: "coffee wins over alcohol",
			memo: "카페 갔다가 맥주",
			want: model.SubCategoryCoffee,
		},
		{
			name: "alcohol wins over delivery",
			memo: "소주에 배달 안주",
			want: model.SubCategoryAlcohol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSubCategory(tt.memo))
		})
	}
}

func TestDetectSubCategoryIsTotal(t *testing.T) {
	// Every keyword in the table must resolve to a valid sub-category.
	for sub, keywords := range subCategoryKeywords {
		for _, keyword := range keywords {
			got := DetectSubCategory(keyword)
			assert.True(t, got.IsValid(), "keyword %q of %s", keyword, sub)
		}
	}
}
