// Package rules implements the expense verdict engine: a pure,
// deterministic evaluation of one expense against the user's budgeting
// configuration and month-to-date statistics.
package rules

import "github.com/go-one-2/money/internal/model"

// subCategoryKeywords maps each sub-category to the memo keywords that
// select it. Matching is case-insensitive substring search over the memo,
// in the order of subCategoryOrder; the general sub-category has no
// keywords and is the fallback.
var subCategoryKeywords = map[model.SubCategory][]string{
	model.SubCategoryDiningOut: {
		"외식", "레스토랑", "식당", "맛집", "고기", "회", "초밥", "스시",
		"파스타", "피자", "치킨", "햄버거", "한식", "중식", "일식", "양식",
	},
	model.SubCategoryCoffee: {
		"커피", "카페", "스타벅스", "투썸", "이디야", "빽다방", "메가커피",
		"컴포즈", "아메리카노", "라떼",
	},
	model.SubCategoryAlcohol: {
		"술", "소주", "맥주", "와인", "위스키", "막걸리", "호프", "바",
		"이자카야", "포차", "회식",
	},
	model.SubCategoryDelivery: {
		"배달", "배민", "쿠팡이츠", "요기요", "땡겨요",
	},
}

// subCategoryOrder fixes which sub-category wins when a memo contains
// keywords from more than one.
var subCategoryOrder = []model.SubCategory{
	model.SubCategoryDiningOut,
	model.SubCategoryCoffee,
	model.SubCategoryAlcohol,
	model.SubCategoryDelivery,
}

// frequencyLimits is the base monthly occurrence limit per sub-category.
// The general sub-category is unlimited and absent here.
var frequencyLimits = map[model.SubCategory]int{
	model.SubCategoryDiningOut: 8,
	model.SubCategoryCoffee:    15,
	model.SubCategoryAlcohol:   8,
	model.SubCategoryDelivery:  12,
}

// budgetRatios is the per-category monthly budget as a percentage of
// monthly income. Categories absent here carry no budget and skip the
// category budget check entirely.
var budgetRatios = map[model.Category]int{
	model.CategoryFood:     15,
	model.CategoryShopping: 10,
	model.CategoryCulture:  10,
}

// PriorityRule describes which expenses a priority vouches for: a set of
// eligible categories plus memo keywords.
type PriorityRule struct {
	Description string
	Categories  []model.Category
	Keywords    []string
}

// priorityRules maps each priority to its matching rule. PriorityPractical
// grants no relaxation; it flips the engine into strict mode instead and
// its rule is intentionally empty.
var priorityRules = map[model.Priority]PriorityRule{
	model.PriorityHealth: {
		Categories: []model.Category{model.CategoryMedical, model.CategoryFood, model.CategoryCulture},
		Keywords: []string{
			"헬스", "운동", "필라테스", "요가", "수영", "건강", "영양제",
			"비타민", "샐러드", "건강식", "병원", "검진", "치료",
		},
		Description: "건강 관련 지출",
	},
	model.PriorityGrowth: {
		Categories: []model.Category{model.CategoryEducation, model.CategoryCulture, model.CategoryShopping},
		Keywords: []string{
			"책", "도서", "강의", "수업", "클래스", "학원", "온라인강의",
			"인강", "자격증", "시험", "공부", "세미나", "워크샵",
		},
		Description: "자기계발 관련 지출",
	},
	model.PriorityTogether: {
		Categories: []model.Category{model.CategoryCulture, model.CategoryFood, model.CategoryTransport},
		Keywords: []string{
			"가족", "부모님", "친구", "모임", "데이트", "약속", "선물",
			"카페", "브런치", "여행", "나들이",
		},
		Description: "소중한 사람들과의 시간",
	},
	model.PriorityPractical: {
		Description: "필수 지출만 허용",
	},
	model.PriorityJoy: {
		Categories: []model.Category{model.CategoryCulture, model.CategoryShopping},
		Keywords: []string{
			"영화", "공연", "콘서트", "전시", "게임", "취미", "덕질",
			"굿즈", "앨범", "놀이공원", "ott", "넷플릭스",
		},
		Description: "여가와 취미 활동",
	},
	model.PriorityChildren: {
		Categories: []model.Category{model.CategoryEducation, model.CategoryMedical, model.CategoryShopping},
		Keywords: []string{
			"학원", "과외", "학교", "유치원", "어린이집", "학용품", "교재",
			"아이", "자녀", "육아", "예방접종", "소아과",
		},
		Description: "자녀 관련 지출",
	},
	model.PriorityStability: {
		Categories: []model.Category{model.CategoryHousing, model.CategoryTransport, model.CategoryShopping},
		Keywords: []string{
			"월세", "관리비", "공과금", "가전", "가구", "인테리어", "수리",
			"청소", "생필품", "세탁기", "냉장고", "에어컨",
		},
		Description: "생활 안정을 위한 지출",
	},
}
