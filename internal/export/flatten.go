package export

import (
	"time"

	"twa-synth/internal/domain"
)

// RecordHeaders 表格导出的扁平列名（顺序即列序，名称保持稳定，前端/下游按名消费）
// 嵌套的 profile/behaviors/outcomes 组在此处展开为单行。
var RecordHeaders = []string{
	"subject_id", "month_index", "season", "observation_date",

	"age_bracket", "age_midpoint", "gender", "ethnicity", "education",
	"income_bracket", "income_midpoint", "fitness_level", "sleep_pattern",
	"region", "urbanicity", "occupation",

	"exercise_days", "sleep_hours", "sleep_quality", "hydration_cups",
	"diet_quality", "relaxation_minutes", "smoking_status", "alcohol_drinks",
	"added_sugar_grams", "sodium_grams", "processed_food_servings",
	"social_ties", "nature_minutes", "cultural_hours", "purpose_score",

	"biological_age", "bio_age_acceleration", "mortality_risk",
	"crp_level", "il6_level", "tnf_alpha_level", "cortisol_level", "igf1_level",
	"grip_strength", "gait_speed", "balance_score", "frailty_index",
	"memory_score", "processing_speed",
	"life_satisfaction", "stress_level", "depression_risk", "social_support",
	"estimated_lifespan",

	"meets_exercise", "meets_sleep", "meets_hydration", "meets_diet",
	"meets_stress_mgmt", "meets_social",
	"healthy_aging_score", "blue_zone_score",
}

// FlattenRecord 按 RecordHeaders 的顺序把一条记录展开为一行值
func FlattenRecord(r domain.MonthlyRecord) []any {
	p := r.Profile
	b := r.Behaviors
	o := r.Outcomes
	c := r.Compliance
	return []any{
		r.SubjectID, r.MonthIndex, string(r.Season), r.ObservationDate.Format(time.DateOnly),

		string(p.AgeBracket), p.AgeMidpoint, string(p.Gender), string(p.Ethnicity), string(p.Education),
		string(p.IncomeBracket), p.IncomeMidpoint, string(p.FitnessLevel), string(p.SleepPattern),
		string(p.Region), string(p.Urbanicity), p.Occupation,

		b.ExerciseDays, b.SleepHours, b.SleepQuality, b.HydrationCups,
		b.DietQuality, b.RelaxationMinutes, string(b.SmokingStatus), b.AlcoholDrinks,
		b.AddedSugarGrams, b.SodiumGrams, b.ProcessedFoodServings,
		b.SocialTies, b.NatureMinutes, b.CulturalHours, b.PurposeScore,

		o.BiologicalAge, o.BioAgeAcceleration, o.MortalityRisk,
		o.CRPLevel, o.IL6Level, o.TNFAlphaLevel, o.CortisolLevel, o.IGF1Level,
		o.GripStrength, o.GaitSpeed, o.BalanceScore, o.FrailtyIndex,
		o.MemoryScore, o.ProcessingSpeed,
		o.LifeSatisfaction, o.StressLevel, o.DepressionRisk, o.SocialSupport,
		o.EstimatedLifespan,

		c.MeetsExercise, c.MeetsSleep, c.MeetsHydration, c.MeetsDiet,
		c.MeetsStressMgmt, c.MeetsSocial,
		r.HealthyAgingScore, r.BlueZoneScore,
	}
}
