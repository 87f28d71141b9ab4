package synth

import "twa-synth/internal/domain"

// NoiseRange 有界均匀乘性噪声区间
type NoiseRange struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// CouplingCoefs 行为链耦合系数：后抽字段的乘数部分由先抽字段的取值驱动
// （运动→睡眠→饮食→少做组），字段间相关性由此产生。
type CouplingCoefs struct {
	ExerciseToSleep     float64 `yaml:"exercise_to_sleep"`     // 每多运动 1 天对睡眠时长的乘数增量
	ExerciseToQuality   float64 `yaml:"exercise_to_quality"`   // 运动对睡眠质量
	SleepToQuality      float64 `yaml:"sleep_to_quality"`      // 睡眠时长对睡眠质量
	ExerciseToHydration float64 `yaml:"exercise_to_hydration"` // 运动对饮水
	ExerciseToDiet      float64 `yaml:"exercise_to_diet"`      // 运动对饮食质量
	QualityToDiet       float64 `yaml:"quality_to_diet"`       // 睡眠质量对饮食质量
	DietToRelaxation    float64 `yaml:"diet_to_relaxation"`    // 饮食质量对放松练习
	DietToAlcohol       float64 `yaml:"diet_to_alcohol"`       // 饮食质量对饮酒（负向）
	DietToSugar         float64 `yaml:"diet_to_sugar"`         // 饮食质量对添加糖（负向）
	DietToSodium        float64 `yaml:"diet_to_sodium"`        // 饮食质量对钠（负向）
	DietToProcessed     float64 `yaml:"diet_to_processed"`     // 饮食质量对加工食品（负向）
	TiesToPurpose       float64 `yaml:"ties_to_purpose"`       // 社会联结对目标感
}

// BehaviorTables 行为采样基准值与因子表（构造时注入，运行期不可变）
type BehaviorTables struct {
	ExerciseBase      float64
	ExerciseByFitness map[domain.FitnessLevel]float64
	ExerciseByAge     map[domain.AgeBracket]float64
	ExerciseBySeason  map[domain.Season]float64

	SleepBase      float64
	SleepByPattern map[domain.SleepPattern]float64

	SleepQualityBase float64
	HydrationBase    float64

	DietBase     float64
	DietByIncome map[domain.IncomeBracket]float64
	DietByEdu    map[domain.Education]float64

	RelaxationBase  float64
	RelaxationByEdu map[domain.Education]float64

	SmokingByEdu map[domain.Education][]float64 // 对齐 domain.SmokingStatuses

	AlcoholBase     float64
	AlcoholByGender map[domain.Gender]float64
	SugarBase       float64
	SodiumBase      float64
	ProcessedBase   float64

	SocialBase           float64
	SocialByUrbanicity   map[domain.Urbanicity]float64
	NatureBase           float64
	NatureBySeason       map[domain.Season]float64
	NatureByUrbanicity   map[domain.Urbanicity]float64
	CulturalBase         float64
	CulturalByUrbanicity map[domain.Urbanicity]float64
	PurposeBase          float64
	PurposeByAge         map[domain.AgeBracket]float64

	Coupling CouplingCoefs

	// 噪声档位：宽（行为波动大的字段）/中/窄（生理约束强的字段）
	WideNoise   NoiseRange
	MidNoise    NoiseRange
	NarrowNoise NoiseRange
}

// DefaultBehaviorTables 默认行为表
func DefaultBehaviorTables() BehaviorTables {
	return BehaviorTables{
		ExerciseBase: 3.2,
		ExerciseByFitness: map[domain.FitnessLevel]float64{
			domain.FitnessLow:      0.55,
			domain.FitnessModerate: 1.00,
			domain.FitnessHigh:     1.50,
		},
		ExerciseByAge: map[domain.AgeBracket]float64{
			domain.Age18to24: 1.10,
			domain.Age25to34: 1.05,
			domain.Age35to44: 1.00,
			domain.Age45to54: 0.95,
			domain.Age55to64: 0.90,
			domain.Age65to74: 0.85,
			domain.Age75to84: 0.75,
		},
		// 季节只作用于有合理机制的字段：户外运动、自然接触
		ExerciseBySeason: map[domain.Season]float64{
			domain.SeasonWinter: 0.85,
			domain.SeasonSpring: 1.05,
			domain.SeasonSummer: 1.15,
			domain.SeasonFall:   0.95,
		},

		SleepBase: 7.0,
		SleepByPattern: map[domain.SleepPattern]float64{
			domain.SleepShort:  0.85,
			domain.SleepNormal: 1.00,
			domain.SleepLong:   1.12,
		},

		SleepQualityBase: 6.3,
		HydrationBase:    6.0,

		DietBase: 5.5,
		DietByIncome: map[domain.IncomeBracket]float64{
			domain.IncomeLow:         0.90,
			domain.IncomeLowerMiddle: 0.97,
			domain.IncomeUpperMiddle: 1.04,
			domain.IncomeHigh:        1.10,
		},
		DietByEdu: map[domain.Education]float64{
			domain.EducationHighSchool:  0.94,
			domain.EducationSomeCollege: 0.98,
			domain.EducationBachelor:    1.04,
			domain.EducationGraduate:    1.08,
		},

		RelaxationBase: 70,
		RelaxationByEdu: map[domain.Education]float64{
			domain.EducationHighSchool:  0.85,
			domain.EducationSomeCollege: 0.95,
			domain.EducationBachelor:    1.08,
			domain.EducationGraduate:    1.18,
		},

		SmokingByEdu: map[domain.Education][]float64{
			domain.EducationHighSchool:  {0.52, 0.26, 0.22},
			domain.EducationSomeCollege: {0.60, 0.25, 0.15},
			domain.EducationBachelor:    {0.70, 0.21, 0.09},
			domain.EducationGraduate:    {0.76, 0.19, 0.05},
		},

		AlcoholBase: 4.5,
		AlcoholByGender: map[domain.Gender]float64{
			domain.GenderMale:   1.30,
			domain.GenderFemale: 0.80,
			domain.GenderOther:  1.00,
		},
		SugarBase:     68,
		SodiumBase:    3.5,
		ProcessedBase: 9.0,

		SocialBase: 4.6,
		SocialByUrbanicity: map[domain.Urbanicity]float64{
			domain.UrbanicityUrban:    0.95,
			domain.UrbanicitySuburban: 1.05,
			domain.UrbanicityRural:    1.00,
		},
		NatureBase: 95,
		NatureBySeason: map[domain.Season]float64{
			domain.SeasonWinter: 0.60,
			domain.SeasonSpring: 1.10,
			domain.SeasonSummer: 1.30,
			domain.SeasonFall:   1.00,
		},
		NatureByUrbanicity: map[domain.Urbanicity]float64{
			domain.UrbanicityUrban:    0.80,
			domain.UrbanicitySuburban: 1.00,
			domain.UrbanicityRural:    1.30,
		},
		CulturalBase: 4.0,
		CulturalByUrbanicity: map[domain.Urbanicity]float64{
			domain.UrbanicityUrban:    1.30,
			domain.UrbanicitySuburban: 1.00,
			domain.UrbanicityRural:    0.75,
		},
		PurposeBase: 6.4,
		PurposeByAge: map[domain.AgeBracket]float64{
			domain.Age18to24: 0.94,
			domain.Age25to34: 0.97,
			domain.Age35to44: 1.00,
			domain.Age45to54: 1.00,
			domain.Age55to64: 1.03,
			domain.Age65to74: 1.06,
			domain.Age75to84: 1.08,
		},

		Coupling: CouplingCoefs{
			ExerciseToSleep:     0.010,
			ExerciseToQuality:   0.030,
			SleepToQuality:      0.080,
			ExerciseToHydration: 0.040,
			ExerciseToDiet:      0.035,
			QualityToDiet:       0.020,
			DietToRelaxation:    0.050,
			DietToAlcohol:       0.045,
			DietToSugar:         0.065,
			DietToSodium:        0.050,
			DietToProcessed:     0.075,
			TiesToPurpose:       0.022,
		},

		WideNoise:   NoiseRange{Lo: 0.60, Hi: 1.40},
		MidNoise:    NoiseRange{Lo: 0.75, Hi: 1.25},
		NarrowNoise: NoiseRange{Lo: 0.90, Hi: 1.10},
	}
}
