package outcome

import "twa-synth/internal/domain"

// NoiseRange 有界均匀乘性噪声区间
type NoiseRange struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// AnnualEffects 生物学年龄的年化效应预算（岁/年）
// 行为越过文档化阈值时触发：保护性为负，风险性为正。
// 这些是固定的示意性效应量，不是标准化统计效应量。
type AnnualEffects struct {
	ExerciseProtect   float64 `yaml:"exercise_protect"`    // 运动 ≥3 天/周
	SleepProtect      float64 `yaml:"sleep_protect"`       // 睡眠 7-9 小时且质量 ≥6
	DietProtect       float64 `yaml:"diet_protect"`        // 饮食质量 ≥7
	RelaxationProtect float64 `yaml:"relaxation_protect"`  // 放松练习 ≥150 分钟/周
	TiesProtect       float64 `yaml:"ties_protect"`        // 社会联结 ≥5
	PurposeProtect    float64 `yaml:"purpose_protect"`     // 目标感 ≥7
	NatureProtect     float64 `yaml:"nature_protect"`      // 自然接触 ≥120 分钟/周
	CurrentSmokerRisk float64 `yaml:"current_smoker_risk"` // 现吸烟
	FormerSmokerRisk  float64 `yaml:"former_smoker_risk"`  // 曾吸烟
	AlcoholRisk       float64 `yaml:"alcohol_risk"`        // 饮酒 >14 杯/周
	SugarRisk         float64 `yaml:"sugar_risk"`          // 添加糖 >100 克/天
	ProcessedRisk     float64 `yaml:"processed_risk"`      // 加工食品 >12 份/周
	ShortSleepRisk    float64 `yaml:"short_sleep_risk"`    // 睡眠 <6 小时
}

// HazardFactors 死亡风险的乘性因子（类风险比）
// 保护性 <1，风险性与社交隔离 >1。
type HazardFactors struct {
	Exercise        float64 `yaml:"exercise"`         // 运动 ≥3 天/周
	Diet            float64 `yaml:"diet"`             // 饮食质量 ≥7
	Purpose         float64 `yaml:"purpose"`          // 目标感 ≥7
	CurrentSmoker   float64 `yaml:"current_smoker"`   // 现吸烟
	FormerSmoker    float64 `yaml:"former_smoker"`    // 曾吸烟
	HeavyAlcohol    float64 `yaml:"heavy_alcohol"`    // 饮酒 >14 杯/周
	SocialIsolation float64 `yaml:"social_isolation"` // 社会联结 <3
	ShortSleep      float64 `yaml:"short_sleep"`      // 睡眠 <6 小时
}

// MarkerBaseline 生物标志物的年龄/性别线性基线
// value = Intercept + AgeSlope × (age − 30) + GenderOffset[gender]，再乘行为因子与共享噪声，最后取下限。
type MarkerBaseline struct {
	Intercept    float64
	AgeSlope     float64
	GenderOffset map[domain.Gender]float64
	Floor        float64
}

// Tables 结局模型的全部数值常数（构造时注入，运行期不可变）
type Tables struct {
	Annual AnnualEffects
	Hazard HazardFactors

	CRP      MarkerBaseline
	IL6      MarkerBaseline
	TNFAlpha MarkerBaseline
	Cortisol MarkerBaseline
	IGF1     MarkerBaseline

	GripBase     map[domain.Gender]float64 // 30 岁基线握力 kg
	GripAgeSlope float64                   // 每岁衰减 kg

	LifespanBase map[domain.Gender]float64 // 性别基线预期寿命（岁）

	EduCognition map[domain.Education]float64 // 认知分的教育缩放因子

	MarkerNoise   NoiseRange // 五个标志物共享同一次噪声抽取
	LifespanNoise NoiseRange
}

// DefaultTables 默认效应量表
func DefaultTables() Tables {
	return Tables{
		Annual: AnnualEffects{
			ExerciseProtect:   -2.5,
			SleepProtect:      -1.5,
			DietProtect:       -2.0,
			RelaxationProtect: -1.0,
			TiesProtect:       -1.2,
			PurposeProtect:    -1.0,
			NatureProtect:     -0.5,
			CurrentSmokerRisk: 4.0,
			FormerSmokerRisk:  1.0,
			AlcoholRisk:       1.5,
			SugarRisk:         1.0,
			ProcessedRisk:     0.8,
			ShortSleepRisk:    1.0,
		},
		Hazard: HazardFactors{
			Exercise:        0.82,
			Diet:            0.85,
			Purpose:         0.88,
			CurrentSmoker:   1.80,
			FormerSmoker:    1.15,
			HeavyAlcohol:    1.25,
			SocialIsolation: 1.35,
			ShortSleep:      1.20,
		},

		CRP: MarkerBaseline{
			Intercept: 1.2, AgeSlope: 0.025, Floor: 0.2,
			GenderOffset: map[domain.Gender]float64{
				domain.GenderMale: 0, domain.GenderFemale: 0.3, domain.GenderOther: 0.15,
			},
		},
		IL6: MarkerBaseline{
			Intercept: 1.5, AgeSlope: 0.04, Floor: 0.5,
			GenderOffset: map[domain.Gender]float64{
				domain.GenderMale: 0, domain.GenderFemale: 0.1, domain.GenderOther: 0.05,
			},
		},
		TNFAlpha: MarkerBaseline{
			Intercept: 1.8, AgeSlope: 0.03, Floor: 0.8,
			GenderOffset: map[domain.Gender]float64{
				domain.GenderMale: 0.1, domain.GenderFemale: 0, domain.GenderOther: 0.05,
			},
		},
		Cortisol: MarkerBaseline{
			Intercept: 12.0, AgeSlope: 0.06, Floor: 5.0,
			GenderOffset: map[domain.Gender]float64{
				domain.GenderMale: 0.5, domain.GenderFemale: 0, domain.GenderOther: 0.25,
			},
		},
		IGF1: MarkerBaseline{
			Intercept: 190.0, AgeSlope: -1.4, Floor: 40.0,
			GenderOffset: map[domain.Gender]float64{
				domain.GenderMale: 12, domain.GenderFemale: 0, domain.GenderOther: 6,
			},
		},

		GripBase: map[domain.Gender]float64{
			domain.GenderMale:   46,
			domain.GenderFemale: 30,
			domain.GenderOther:  38,
		},
		GripAgeSlope: 0.26,

		LifespanBase: map[domain.Gender]float64{
			domain.GenderMale:   76.3,
			domain.GenderFemale: 81.4,
			domain.GenderOther:  78.8,
		},

		EduCognition: map[domain.Education]float64{
			domain.EducationHighSchool:  0.96,
			domain.EducationSomeCollege: 1.00,
			domain.EducationBachelor:    1.03,
			domain.EducationGraduate:    1.06,
		},

		MarkerNoise:   NoiseRange{Lo: 0.85, Hi: 1.15},
		LifespanNoise: NoiseRange{Lo: 0.97, Hi: 1.03},
	}
}
