package generator

import "twa-synth/internal/domain"

// 指南阈值（达标标志与综合分的归一化基准共用）
const (
	exerciseGuideline  = 3.0 // 天/周
	sleepGuidelineLo   = 7.0 // 小时
	sleepGuidelineHi   = 9.0
	hydrationGuideline = 8.0   // 杯/天
	dietGuideline      = 7.0   // 评分
	relaxGuideline     = 150.0 // 分钟/周
	socialGuideline    = 4.0   // 联结数
	moderateAlcoholCap = 7.0   // 杯/周，蓝区口径
)

// ComplianceFor 六个指南达标标志（BehaviorVector 的纯函数，可从存量记录重算）
func ComplianceFor(b domain.BehaviorVector) domain.ComplianceFlags {
	return domain.ComplianceFlags{
		MeetsExercise:   b.ExerciseDays >= exerciseGuideline,
		MeetsSleep:      b.SleepHours >= sleepGuidelineLo && b.SleepHours <= sleepGuidelineHi,
		MeetsHydration:  b.HydrationCups >= hydrationGuideline,
		MeetsDiet:       b.DietQuality >= dietGuideline,
		MeetsStressMgmt: b.RelaxationMinutes >= relaxGuideline,
		MeetsSocial:     b.SocialTies >= socialGuideline,
	}
}

// HealthyAgingScore 健康衰老综合分 [0,100]
// 行为 40% + 生物 40% + 心理社会 20%，各子分为归一化指标的均值。
func HealthyAgingScore(b domain.BehaviorVector, o domain.OutcomeVector) float64 {
	behavioral := mean(
		b.ExerciseDays/7,
		b.SleepQuality/10,
		b.DietQuality/10,
		capRatio(b.RelaxationMinutes, 300),
		1-b.ProcessedFoodServings/20,
		1-b.AlcoholDrinks/35,
	)

	// 生物学年龄加速 −5 岁 → 1.0，+5 岁 → 0.0
	accelNorm := clamp01((5 - o.BioAgeAcceleration) / 10)
	biological := mean(
		1-(o.MortalityRisk-0.1)/9.9,
		1-o.FrailtyIndex,
		accelNorm,
	)

	psychosocial := mean(
		o.LifeSatisfaction/10,
		b.PurposeScore/10,
		o.SocialSupport/10,
	)

	score := 100 * (0.4*behavioral + 0.4*biological + 0.2*psychosocial)
	return clampScore(score)
}

// BlueZoneScore 蓝区相似度 [0,100]：七个封顶比率/指示因子的均值
// 因子：饮食、运动、放松、社会联结、目标感、适度或不饮酒、从不吸烟。
func BlueZoneScore(b domain.BehaviorVector) float64 {
	alcoholFactor := 1.0
	if b.AlcoholDrinks > moderateAlcoholCap {
		alcoholFactor = clamp01(1 - (b.AlcoholDrinks-moderateAlcoholCap)/21)
	}

	var smokingFactor float64
	switch b.SmokingStatus {
	case domain.SmokingNever:
		smokingFactor = 1.0
	case domain.SmokingFormer:
		smokingFactor = 0.5
	default:
		smokingFactor = 0.0
	}

	score := 100 * mean(
		capRatio(b.DietQuality, 8),
		capRatio(b.ExerciseDays, 5),
		capRatio(b.RelaxationMinutes, 180),
		capRatio(b.SocialTies, 6),
		capRatio(b.PurposeScore, 8),
		alcoholFactor,
		smokingFactor,
	)
	return clampScore(score)
}

func mean(vs ...float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func capRatio(v, limit float64) float64 {
	if v >= limit {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v / limit
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
