package outcome

import (
	"math"
	"math/rand"

	"twa-synth/internal/domain"
)

// 功能/认知/心理社会公式的基线常数（30 岁基准，线性随龄变化）
const (
	gaitBase      = 1.35 // m/s
	gaitAgeSlope  = 0.005
	balanceBase   = 8.5
	balanceSlope  = 0.06
	frailtyBase   = 0.04
	frailtySlope  = 0.006 // 每岁（40 岁起）
	memoryBase    = 105.0
	memorySlope   = 0.30
	speedBase     = 107.0
	speedSlope    = 0.45
	ageHazardBase = 1.1 // 每 10 岁的指数底
)

// Model 健康/衰老结局模型
// 生物学年龄由阈值规则构成的年化效应预算驱动；死亡风险由类风险比乘性因子
// 加年龄指数项驱动；标志物/功能/认知为年龄性别基线加乘性行为因子。
// 所有公式 clamp 到字段取值域，本组件不产生错误，只消费随机流。
type Model struct {
	tables Tables
	r      *rand.Rand
}

// NewModel 创建结局模型（效应量表与随机流显式注入）
func NewModel(tables Tables, r *rand.Rand) *Model {
	return &Model{tables: tables, r: r}
}

// GenerateMonth 计算某受试者某月的结局向量
// baselineAge 为入组基线年龄，monthsElapsed 为已过月数；
// 不依赖往月的存储状态，月间唯一的传递量就是 monthsElapsed。
func (m *Model) GenerateMonth(profile domain.SubjectProfile, b domain.BehaviorVector, baselineAge float64, monthsElapsed int) domain.OutcomeVector {
	t := m.tables
	chronoAge := baselineAge + float64(monthsElapsed)/12.0

	// 生物学年龄：年化效应预算 /12 × 已过月数
	annual := m.annualEffect(b)
	bioAge := chronoAge + annual/12.0*float64(monthsElapsed)
	if bioAge < 18 {
		bioAge = 18
	}

	risk := m.mortalityRisk(b, bioAge)

	// 五个标志物共享同一次噪声抽取
	markerNoise := m.noise(t.MarkerNoise)
	crp, il6, tnf, cortisol, igf1 := m.biomarkers(profile, b, chronoAge, markerNoise)

	grip, gait, balance, frailty := m.functional(profile, b, chronoAge)
	memory, speed := m.cognitive(profile, b, chronoAge)
	lifeSat, stress, depression, support := m.psychosocial(b)

	lifespan := clamp(t.LifespanBase[profile.Gender]/risk*m.noise(t.LifespanNoise), 50, 100)

	return domain.OutcomeVector{
		BiologicalAge:      bioAge,
		BioAgeAcceleration: bioAge - chronoAge,
		MortalityRisk:      risk,

		CRPLevel:      crp,
		IL6Level:      il6,
		TNFAlphaLevel: tnf,
		CortisolLevel: cortisol,
		IGF1Level:     igf1,

		GripStrength: grip,
		GaitSpeed:    gait,
		BalanceScore: balance,
		FrailtyIndex: frailty,

		MemoryScore:     memory,
		ProcessingSpeed: speed,

		LifeSatisfaction: lifeSat,
		StressLevel:      stress,
		DepressionRisk:   depression,
		SocialSupport:    support,

		EstimatedLifespan: lifespan,
	}
}

// annualEffect 年化效应预算（岁/年）：保护性行为过阈值减，风险行为过阈值加
func (m *Model) annualEffect(b domain.BehaviorVector) float64 {
	a := m.tables.Annual
	var total float64
	if exerciseOK(b) {
		total += a.ExerciseProtect
	}
	if sleepOK(b) {
		total += a.SleepProtect
	}
	if dietOK(b) {
		total += a.DietProtect
	}
	if relaxationOK(b) {
		total += a.RelaxationProtect
	}
	if tiesOK(b) {
		total += a.TiesProtect
	}
	if purposeOK(b) {
		total += a.PurposeProtect
	}
	if natureOK(b) {
		total += a.NatureProtect
	}

	switch b.SmokingStatus {
	case domain.SmokingCurrent:
		total += a.CurrentSmokerRisk
	case domain.SmokingFormer:
		total += a.FormerSmokerRisk
	}
	if heavyAlcohol(b) {
		total += a.AlcoholRisk
	}
	if b.AddedSugarGrams > 100 {
		total += a.SugarRisk
	}
	if b.ProcessedFoodServings > 12 {
		total += a.ProcessedRisk
	}
	if shortSleep(b) {
		total += a.ShortSleepRisk
	}
	return total
}

// mortalityRisk 起点 1.0，乘性因子叠加，再乘年龄指数项，clamp [0.1,10.0]
func (m *Model) mortalityRisk(b domain.BehaviorVector, bioAge float64) float64 {
	h := m.tables.Hazard
	risk := 1.0
	if exerciseOK(b) {
		risk *= h.Exercise
	}
	if dietOK(b) {
		risk *= h.Diet
	}
	if purposeOK(b) {
		risk *= h.Purpose
	}
	switch b.SmokingStatus {
	case domain.SmokingCurrent:
		risk *= h.CurrentSmoker
	case domain.SmokingFormer:
		risk *= h.FormerSmoker
	}
	if heavyAlcohol(b) {
		risk *= h.HeavyAlcohol
	}
	if b.SocialTies < 3 {
		risk *= h.SocialIsolation
	}
	if shortSleep(b) {
		risk *= h.ShortSleep
	}
	risk *= math.Pow(ageHazardBase, (bioAge-30)/10)
	return clamp(risk, 0.1, 10.0)
}

// biomarkers 年龄/性别线性基线 × 行为因子 × 共享噪声，取下限
// 运动降炎症标志物、升 IGF-1；放松与自然接触降皮质醇和一个炎症标志物；
// 饮食质量降两个炎症标志物。
func (m *Model) biomarkers(profile domain.SubjectProfile, b domain.BehaviorVector, age, noise float64) (crp, il6, tnf, cortisol, igf1 float64) {
	t := m.tables
	crp = t.CRP.value(age, profile.Gender)
	il6 = t.IL6.value(age, profile.Gender)
	tnf = t.TNFAlpha.value(age, profile.Gender)
	cortisol = t.Cortisol.value(age, profile.Gender)
	igf1 = t.IGF1.value(age, profile.Gender)

	if exerciseOK(b) {
		crp *= 0.80
		il6 *= 0.85
		igf1 *= 1.15
	}
	if relaxationOK(b) {
		cortisol *= 0.85
		il6 *= 0.92
	}
	if natureOK(b) {
		cortisol *= 0.92
		crp *= 0.95
	}
	if dietOK(b) {
		crp *= 0.85
		tnf *= 0.90
	}

	crp = math.Max(t.CRP.Floor, crp*noise)
	il6 = math.Max(t.IL6.Floor, il6*noise)
	tnf = math.Max(t.TNFAlpha.Floor, tnf*noise)
	cortisol = math.Max(t.Cortisol.Floor, cortisol*noise)
	igf1 = math.Max(t.IGF1.Floor, igf1*noise)
	return
}

func (bl MarkerBaseline) value(age float64, gender domain.Gender) float64 {
	return bl.Intercept + bl.AgeSlope*(age-30) + bl.GenderOffset[gender]
}

// functional 功能/活动能力：年龄性别基线 × 保护性阈值因子
func (m *Model) functional(profile domain.SubjectProfile, b domain.BehaviorVector, age float64) (grip, gait, balance, frailty float64) {
	t := m.tables

	grip = t.GripBase[profile.Gender] - t.GripAgeSlope*(age-30)
	if exerciseOK(b) {
		grip *= 1.12
	}
	if dietOK(b) {
		grip *= 1.04
	}
	grip = math.Max(10, grip)

	gait = gaitBase - gaitAgeSlope*(age-30)
	if exerciseOK(b) {
		gait *= 1.08
	}
	if sleepOK(b) {
		gait *= 1.02
	}
	gait = math.Max(0.5, gait)

	balance = balanceBase - balanceSlope*(age-30)
	if exerciseOK(b) {
		balance *= 1.10
	}
	if sleepOK(b) {
		balance *= 1.05
	}
	balance = clamp(balance, 1, 10)

	// 衰弱随龄上升，保护性行为使其下降（改善）
	frailty = frailtyBase + frailtySlope*math.Max(0, age-40)
	if exerciseOK(b) {
		frailty *= 0.80
	}
	if dietOK(b) {
		frailty *= 0.85
	}
	if tiesOK(b) {
		frailty *= 0.90
	}
	if sleepOK(b) {
		frailty *= 0.90
	}
	frailty = clamp(frailty, 0, 1)
	return
}

// cognitive 认知：教育缩放的年龄基线，放松/联结/饮水给线性加项
func (m *Model) cognitive(profile domain.SubjectProfile, b domain.BehaviorVector, age float64) (memory, speed float64) {
	edu := m.tables.EduCognition[profile.Education]

	memory = (memoryBase - memorySlope*(age-30)) * edu
	if exerciseOK(b) {
		memory *= 1.05
	}
	memory += 0.01*b.RelaxationMinutes + 0.40*b.SocialTies
	memory = clamp(memory, 50, 150)

	speed = (speedBase - speedSlope*(age-30)) * edu
	if b.SleepQuality >= 6 {
		speed *= 1.04
	}
	speed += 0.50 * b.HydrationCups
	speed = clamp(speed, 50, 150)
	return
}

// psychosocial 心理社会：围绕中性基线的加权线性组合
func (m *Model) psychosocial(b domain.BehaviorVector) (lifeSat, stress, depression, support float64) {
	lifeSat = 6.0 +
		0.35*(b.PurposeScore-6.5) +
		0.25*(b.SocialTies-4.5) +
		0.15*(b.ExerciseDays-3) +
		0.003*(b.RelaxationMinutes-60)
	lifeSat = clamp(lifeSat, 1, 10)

	// 压力为生活满意度与放松练习的反函数
	stress = clamp(10.5-0.70*lifeSat-0.004*b.RelaxationMinutes, 1, 10)

	// 抑郁风险由压力导出，社会联结削减
	depression = clamp(0.5+0.80*stress-0.25*(b.SocialTies-4.5), 1, 10)

	support = clamp(1.5+0.55*b.SocialTies+0.25*b.PurposeScore, 1, 10)
	return
}

func (m *Model) noise(n NoiseRange) float64 {
	return n.Lo + m.r.Float64()*(n.Hi-n.Lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// 阈值谓词：效应预算、风险因子与指南标志共用同一套阈值语义
func exerciseOK(b domain.BehaviorVector) bool { return b.ExerciseDays >= 3 }
func sleepOK(b domain.BehaviorVector) bool {
	return b.SleepHours >= 7 && b.SleepHours <= 9 && b.SleepQuality >= 6
}
func dietOK(b domain.BehaviorVector) bool       { return b.DietQuality >= 7 }
func relaxationOK(b domain.BehaviorVector) bool { return b.RelaxationMinutes >= 150 }
func tiesOK(b domain.BehaviorVector) bool       { return b.SocialTies >= 5 }
func purposeOK(b domain.BehaviorVector) bool    { return b.PurposeScore >= 7 }
func natureOK(b domain.BehaviorVector) bool     { return b.NatureMinutes >= 120 }
func heavyAlcohol(b domain.BehaviorVector) bool { return b.AlcoholDrinks > 14 }
func shortSleep(b domain.BehaviorVector) bool   { return b.SleepHours < 6 }
