package domain

// SmokingStatus 吸烟状态（3 类）
type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "Never"
	SmokingFormer  SmokingStatus = "Former"
	SmokingCurrent SmokingStatus = "Current"
)

var SmokingStatuses = []SmokingStatus{SmokingNever, SmokingFormer, SmokingCurrent}

// BehaviorVector 某受试者某月的 TWA 行为向量（生成后不可变）
// 三组字段：do-more（多做）、do-less（少做）、connection（连接）。
// 所有连续字段在生成时都 clamp 到注释标注的取值域，越界属于建模 bug。
type BehaviorVector struct {
	// do more
	ExerciseDays      float64 `json:"exercise_days"`      // 运动天数/周 [0,7]
	SleepHours        float64 `json:"sleep_hours"`        // 睡眠时长（小时）[4,10]
	SleepQuality      float64 `json:"sleep_quality"`      // 睡眠质量评分 [1,10]
	HydrationCups     float64 `json:"hydration_cups"`     // 饮水杯数/天 [2,12]
	DietQuality       float64 `json:"diet_quality"`       // 饮食质量评分 [1,10]
	RelaxationMinutes float64 `json:"relaxation_minutes"` // 放松练习分钟/周 [0,300]

	// do less
	SmokingStatus         SmokingStatus `json:"smoking_status"`          // 吸烟状态
	AlcoholDrinks         float64       `json:"alcohol_drinks"`          // 饮酒标准杯/周 [0,35]
	AddedSugarGrams       float64       `json:"added_sugar_grams"`       // 添加糖克/天 [10,150]
	SodiumGrams           float64       `json:"sodium_grams"`            // 钠克/天 [1,8]
	ProcessedFoodServings float64       `json:"processed_food_servings"` // 加工食品份数/周 [0,20]

	// connection
	SocialTies    float64 `json:"social_ties"`    // 社会联结数量 [0,10]
	NatureMinutes float64 `json:"nature_minutes"` // 自然接触分钟/周 [0,300]
	CulturalHours float64 `json:"cultural_hours"` // 文化活动小时/周 [0,20]
	PurposeScore  float64 `json:"purpose_score"`  // 人生目标感评分 [1,10]
}
