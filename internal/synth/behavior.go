package synth

import (
	"math/rand"

	"twa-synth/internal/domain"
)

// BehaviorSampler TWA 行为向量采样器
// 每个连续字段按 clamp(base × 人口学因子 × 季节因子 × 先抽字段因子 × 噪声, lo, hi) 计算；
// 字段间相关性通过"后抽字段的乘数由先抽字段取值驱动"产生：
// 运动 → 睡眠 → 睡眠质量 → 饮水 → 饮食 → 放松；饮食负向驱动糖/钠/加工食品/酒精。
// 所有算术结果返回前 clamp 到字段取值域，本组件不产生错误。
type BehaviorSampler struct {
	tables BehaviorTables
	r      *rand.Rand
}

// NewBehaviorSampler 创建采样器（基准表与随机流显式注入）
func NewBehaviorSampler(tables BehaviorTables, r *rand.Rand) *BehaviorSampler {
	return &BehaviorSampler{tables: tables, r: r}
}

// GenerateMonth 生成某受试者某月的行为向量
func (s *BehaviorSampler) GenerateMonth(profile domain.SubjectProfile, monthIndex int, season domain.Season) domain.BehaviorVector {
	t := s.tables
	c := t.Coupling

	// do more：链式依赖
	exercise := clamp(
		t.ExerciseBase*
			t.ExerciseByFitness[profile.FitnessLevel]*
			t.ExerciseByAge[profile.AgeBracket]*
			t.ExerciseBySeason[season]*
			s.noise(t.WideNoise),
		0, 7)

	sleepHours := clamp(
		t.SleepBase*
			t.SleepByPattern[profile.SleepPattern]*
			(1+c.ExerciseToSleep*(exercise-3))*
			s.noise(t.NarrowNoise),
		4, 10)

	sleepQuality := clamp(
		t.SleepQualityBase*
			(1+c.SleepToQuality*(sleepHours-7))*
			(1+c.ExerciseToQuality*(exercise-3))*
			s.noise(t.MidNoise),
		1, 10)

	hydration := clamp(
		t.HydrationBase*
			(1+c.ExerciseToHydration*exercise)*
			s.noise(t.MidNoise),
		2, 12)

	diet := clamp(
		t.DietBase*
			t.DietByIncome[profile.IncomeBracket]*
			t.DietByEdu[profile.Education]*
			(1+c.ExerciseToDiet*(exercise-3))*
			(1+c.QualityToDiet*(sleepQuality-6))*
			s.noise(t.MidNoise),
		1, 10)

	relaxation := clamp(
		t.RelaxationBase*
			t.RelaxationByEdu[profile.Education]*
			(1+c.DietToRelaxation*(diet-5.5))*
			s.noise(t.WideNoise),
		0, 300)

	// do less：吸烟为教育条件化的类别抽取，其余由饮食质量负向驱动
	smoking := domain.SmokingStatuses[weightedIndex(s.r, t.SmokingByEdu[profile.Education])]

	alcohol := clamp(
		t.AlcoholBase*
			t.AlcoholByGender[profile.Gender]*
			(1-c.DietToAlcohol*(diet-5.5))*
			s.noise(t.WideNoise),
		0, 35)

	sugar := clamp(
		t.SugarBase*
			(1-c.DietToSugar*(diet-5.5))*
			s.noise(t.MidNoise),
		10, 150)

	sodium := clamp(
		t.SodiumBase*
			(1-c.DietToSodium*(diet-5.5))*
			s.noise(t.MidNoise),
		1, 8)

	processed := clamp(
		t.ProcessedBase*
			(1-c.DietToProcessed*(diet-5.5))*
			s.noise(t.MidNoise),
		0, 20)

	// connection
	ties := clamp(
		t.SocialBase*
			t.SocialByUrbanicity[profile.Urbanicity]*
			s.noise(t.MidNoise),
		0, 10)

	nature := clamp(
		t.NatureBase*
			t.NatureBySeason[season]*
			t.NatureByUrbanicity[profile.Urbanicity]*
			s.noise(t.WideNoise),
		0, 300)

	cultural := clamp(
		t.CulturalBase*
			t.CulturalByUrbanicity[profile.Urbanicity]*
			t.DietByIncome[profile.IncomeBracket]* // 收入因子与饮食共用（文化消费同样随收入）
			s.noise(t.WideNoise),
		0, 20)

	purpose := clamp(
		t.PurposeBase*
			t.PurposeByAge[profile.AgeBracket]*
			(1+c.TiesToPurpose*(ties-4.5))*
			s.noise(t.NarrowNoise),
		1, 10)

	return domain.BehaviorVector{
		ExerciseDays:      exercise,
		SleepHours:        sleepHours,
		SleepQuality:      sleepQuality,
		HydrationCups:     hydration,
		DietQuality:       diet,
		RelaxationMinutes: relaxation,

		SmokingStatus:         smoking,
		AlcoholDrinks:         alcohol,
		AddedSugarGrams:       sugar,
		SodiumGrams:           sodium,
		ProcessedFoodServings: processed,

		SocialTies:    ties,
		NatureMinutes: nature,
		CulturalHours: cultural,
		PurposeScore:  purpose,
	}
}

func (s *BehaviorSampler) noise(n NoiseRange) float64 {
	return noiseMul(s.r, n.Lo, n.Hi)
}
