package synth

import (
	"testing"

	"twa-synth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfiles(t *testing.T, n int, seed int64) []domain.SubjectProfile {
	t.Helper()
	s := NewDemographicSampler(DefaultDemographicTables(), NewStream(seed))
	profiles, err := s.Generate(n)
	require.NoError(t, err)
	return profiles
}

// 连续字段越界属于建模 bug：对全部画像 × 12 个月扫一遍取值域
func TestBehaviorSampler_FieldsStayInRange(t *testing.T) {
	profiles := sampleProfiles(t, 300, 42)
	sampler := NewBehaviorSampler(DefaultBehaviorTables(), NewStream(43))

	for _, p := range profiles {
		for month := 0; month < 12; month++ {
			b := sampler.GenerateMonth(p, month, domain.SeasonForMonth(month))

			assert.GreaterOrEqual(t, b.ExerciseDays, 0.0)
			assert.LessOrEqual(t, b.ExerciseDays, 7.0)
			assert.GreaterOrEqual(t, b.SleepHours, 4.0)
			assert.LessOrEqual(t, b.SleepHours, 10.0)
			assert.GreaterOrEqual(t, b.SleepQuality, 1.0)
			assert.LessOrEqual(t, b.SleepQuality, 10.0)
			assert.GreaterOrEqual(t, b.HydrationCups, 2.0)
			assert.LessOrEqual(t, b.HydrationCups, 12.0)
			assert.GreaterOrEqual(t, b.DietQuality, 1.0)
			assert.LessOrEqual(t, b.DietQuality, 10.0)
			assert.GreaterOrEqual(t, b.RelaxationMinutes, 0.0)
			assert.LessOrEqual(t, b.RelaxationMinutes, 300.0)

			assert.Contains(t, domain.SmokingStatuses, b.SmokingStatus)
			assert.GreaterOrEqual(t, b.AlcoholDrinks, 0.0)
			assert.LessOrEqual(t, b.AlcoholDrinks, 35.0)
			assert.GreaterOrEqual(t, b.AddedSugarGrams, 10.0)
			assert.LessOrEqual(t, b.AddedSugarGrams, 150.0)
			assert.GreaterOrEqual(t, b.SodiumGrams, 1.0)
			assert.LessOrEqual(t, b.SodiumGrams, 8.0)
			assert.GreaterOrEqual(t, b.ProcessedFoodServings, 0.0)
			assert.LessOrEqual(t, b.ProcessedFoodServings, 20.0)

			assert.GreaterOrEqual(t, b.SocialTies, 0.0)
			assert.LessOrEqual(t, b.SocialTies, 10.0)
			assert.GreaterOrEqual(t, b.NatureMinutes, 0.0)
			assert.LessOrEqual(t, b.NatureMinutes, 300.0)
			assert.GreaterOrEqual(t, b.CulturalHours, 0.0)
			assert.LessOrEqual(t, b.CulturalHours, 20.0)
			assert.GreaterOrEqual(t, b.PurposeScore, 1.0)
			assert.LessOrEqual(t, b.PurposeScore, 10.0)
		}
	}
}

// 季节因子只作用于运动与自然接触：夏季组均值应高于冬季组均值
func TestBehaviorSampler_SeasonalExerciseVariation(t *testing.T) {
	profiles := sampleProfiles(t, 2000, 7)
	sampler := NewBehaviorSampler(DefaultBehaviorTables(), NewStream(8))

	var winterEx, summerEx, winterNature, summerNature float64
	for _, p := range profiles {
		w := sampler.GenerateMonth(p, 0, domain.SeasonWinter)
		s := sampler.GenerateMonth(p, 6, domain.SeasonSummer)
		winterEx += w.ExerciseDays
		summerEx += s.ExerciseDays
		winterNature += w.NatureMinutes
		summerNature += s.NatureMinutes
	}
	assert.Greater(t, summerEx, winterEx)
	assert.Greater(t, summerNature, winterNature)
}

// 体能档是运动天数的最强驱动因子
func TestBehaviorSampler_FitnessDrivesExercise(t *testing.T) {
	tables := DefaultBehaviorTables()
	sampler := NewBehaviorSampler(tables, NewStream(21))

	base := sampleProfiles(t, 1, 3)[0]
	low := base
	low.FitnessLevel = domain.FitnessLow
	high := base
	high.FitnessLevel = domain.FitnessHigh

	var lowSum, highSum float64
	const n = 3000
	for i := 0; i < n; i++ {
		lowSum += sampler.GenerateMonth(low, 0, domain.SeasonSpring).ExerciseDays
		highSum += sampler.GenerateMonth(high, 0, domain.SeasonSpring).ExerciseDays
	}
	assert.Greater(t, highSum/n, lowSum/n+1.0)
}

// 教育程度越高，现吸烟比例越低（类别链的条件权重表）
func TestBehaviorSampler_SmokingByEducation(t *testing.T) {
	sampler := NewBehaviorSampler(DefaultBehaviorTables(), NewStream(33))
	p := sampleProfiles(t, 1, 5)[0]

	rate := func(edu domain.Education) float64 {
		prof := p
		prof.Education = edu
		var current float64
		const n = 8000
		for i := 0; i < n; i++ {
			if sampler.GenerateMonth(prof, 0, domain.SeasonFall).SmokingStatus == domain.SmokingCurrent {
				current++
			}
		}
		return current / n
	}

	assert.Greater(t, rate(domain.EducationHighSchool), rate(domain.EducationGraduate))
}

func TestBehaviorSampler_DeterministicWithSameStream(t *testing.T) {
	p := sampleProfiles(t, 1, 9)[0]
	a := NewBehaviorSampler(DefaultBehaviorTables(), NewStream(77))
	b := NewBehaviorSampler(DefaultBehaviorTables(), NewStream(77))

	for month := 0; month < 6; month++ {
		season := domain.SeasonForMonth(month)
		require.Equal(t, a.GenerateMonth(p, month, season), b.GenerateMonth(p, month, season))
	}
}
