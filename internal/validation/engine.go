package validation

import (
	"fmt"

	"twa-synth/internal/domain"

	"go.uber.org/zap"
)

// Engine 数据集验证引擎
// 消费完整记录集合，产出四组描述统计（人口学准确性、行为相关性、结局有效性、
// 纵向一致性）。通过/不通过阈值由消费方应用，引擎不做假设检验。
type Engine struct {
	expectedAge map[domain.AgeBracket]float64
	logger      *zap.Logger
}

// NewEngine 创建验证引擎
// expectedAge 为年龄段期望分布（通常取人口学采样器的权重表）。
func NewEngine(expectedAge map[domain.AgeBracket]float64, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{expectedAge: expectedAge, logger: logger}
}

// Validate 对完整数据集计算验证报告；空集合返回 ErrInsufficientData
func (e *Engine) Validate(records []domain.MonthlyRecord) (*domain.ValidationReport, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: validation requires a non-empty record collection", domain.ErrInsufficientData)
	}

	// 按受试者分组还原画像（每人取其一），人口学统计按受试者而非记录计算
	bySubject := groupBySubject(records)
	profiles := make([]domain.SubjectProfile, 0, len(bySubject))
	for _, rs := range bySubject {
		profiles = append(profiles, rs[0].Profile)
	}

	report := &domain.ValidationReport{
		RecordCount:  len(records),
		SubjectCount: len(profiles),
		Demographics: e.demographicAccuracy(profiles),
		Behaviors:    behaviorCorrelations(records),
		Outcomes:     outcomeValidity(records),
		Longitudinal: longitudinalCoherence(records, bySubject),
	}

	e.logger.Info("dataset validation finished",
		zap.Int("records", report.RecordCount),
		zap.Int("subjects", report.SubjectCount),
	)
	return report, nil
}

func groupBySubject(records []domain.MonthlyRecord) map[string][]domain.MonthlyRecord {
	out := make(map[string][]domain.MonthlyRecord)
	for _, r := range records {
		out[r.SubjectID] = append(out[r.SubjectID], r)
	}
	return out
}

// demographicAccuracy 人口学准确性：年龄分布 KS 距离 + 两组序数相关
func (e *Engine) demographicAccuracy(profiles []domain.SubjectProfile) domain.DemographicAccuracy {
	observed := make(map[string]float64, len(domain.AgeBrackets))
	for _, p := range profiles {
		observed[string(p.AgeBracket)] += 1
	}
	for k := range observed {
		observed[k] /= float64(len(profiles))
	}
	expected := make(map[string]float64, len(e.expectedAge))
	for b, w := range e.expectedAge {
		expected[string(b)] = w
	}

	income := make([]float64, len(profiles))
	eduRank := make([]float64, len(profiles))
	ageMid := make([]float64, len(profiles))
	fitRank := make([]float64, len(profiles))
	for i, p := range profiles {
		income[i] = p.IncomeMidpoint
		eduRank[i] = domain.EducationRank[p.Education]
		ageMid[i] = p.AgeMidpoint
		fitRank[i] = domain.FitnessRank[p.FitnessLevel]
	}

	return domain.DemographicAccuracy{
		AgeDistributionDistance: ksDistance(observed, expected),
		IncomeEducationCorr:     pearson(income, eduRank),
		AgeFitnessCorr:          pearson(ageMid, fitRank),
	}
}

// behaviorCorrelations 行为相关性：对全部记录计算，不按受试者去重
func behaviorCorrelations(records []domain.MonthlyRecord) domain.BehaviorCorrelations {
	n := len(records)
	exercise := make([]float64, n)
	sleepQ := make([]float64, n)
	diet := make([]float64, n)
	relax := make([]float64, n)
	ties := make([]float64, n)
	purpose := make([]float64, n)
	for i, r := range records {
		exercise[i] = r.Behaviors.ExerciseDays
		sleepQ[i] = r.Behaviors.SleepQuality
		diet[i] = r.Behaviors.DietQuality
		relax[i] = r.Behaviors.RelaxationMinutes
		ties[i] = r.Behaviors.SocialTies
		purpose[i] = r.Behaviors.PurposeScore
	}
	return domain.BehaviorCorrelations{
		ExerciseSleepQuality: pearson(exercise, sleepQ),
		DietRelaxation:       pearson(diet, relax),
		SocialPurpose:        pearson(ties, purpose),
	}
}

// outcomeValidity 结局有效性：阈值子群间的原始单位均值差
func outcomeValidity(records []domain.MonthlyRecord) domain.OutcomeValidity {
	var lowEx, highEx []float64           // 生物学年龄
	var smokers, neverSmoked []float64    // 死亡风险
	var highPurpose, lowPurpose []float64 // 预期寿命
	for _, r := range records {
		if r.Behaviors.ExerciseDays >= 4 {
			highEx = append(highEx, r.Outcomes.BiologicalAge)
		} else if r.Behaviors.ExerciseDays < 2 {
			lowEx = append(lowEx, r.Outcomes.BiologicalAge)
		}
		switch r.Behaviors.SmokingStatus {
		case domain.SmokingCurrent:
			smokers = append(smokers, r.Outcomes.MortalityRisk)
		case domain.SmokingNever:
			neverSmoked = append(neverSmoked, r.Outcomes.MortalityRisk)
		}
		if r.Behaviors.PurposeScore >= 8 {
			highPurpose = append(highPurpose, r.Outcomes.EstimatedLifespan)
		} else if r.Behaviors.PurposeScore <= 4 {
			lowPurpose = append(lowPurpose, r.Outcomes.EstimatedLifespan)
		}
	}
	return domain.OutcomeValidity{
		ExerciseBioAgeGap:   meanDiff(lowEx, highEx),
		SmokingMortalityGap: meanDiff(smokers, neverSmoked),
		PurposeLifespanGap:  meanDiff(highPurpose, lowPurpose),
	}
}

// meanDiff a 组均值 − b 组均值；任一组为空时返回 0
func meanDiff(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return mean(a) - mean(b)
}

// longitudinalCoherence 纵向一致性：季节性变异、衰老轨迹斜率、行为稳定比
func longitudinalCoherence(records []domain.MonthlyRecord, bySubject map[string][]domain.MonthlyRecord) domain.LongitudinalCoherence {
	// 四季运动天数组均值的标准差（缺季节的数据集按出现的季节计算）
	bySeason := make(map[domain.Season][]float64)
	for _, r := range records {
		bySeason[r.Season] = append(bySeason[r.Season], r.Behaviors.ExerciseDays)
	}
	seasonMeans := make([]float64, 0, len(bySeason))
	for _, vs := range bySeason {
		seasonMeans = append(seasonMeans, mean(vs))
	}

	// 受试者内统计只对 ≥2 条记录者求均值
	var slopes, stabilities []float64
	for _, rs := range bySubject {
		if len(rs) < 2 {
			continue
		}
		months := make([]float64, len(rs))
		bioAges := make([]float64, len(rs))
		exercise := make([]float64, len(rs))
		for i, r := range rs {
			months[i] = float64(r.MonthIndex)
			bioAges[i] = r.Outcomes.BiologicalAge
			exercise[i] = r.Behaviors.ExerciseDays
		}
		slopes = append(slopes, olsSlope(months, bioAges))
		stabilities = append(stabilities, stabilityRatio(exercise))
	}

	return domain.LongitudinalCoherence{
		SeasonalExerciseSD: stdDev(seasonMeans),
		MeanAgingSlope:     mean(slopes),
		BehaviorStability:  mean(stabilities),
	}
}
