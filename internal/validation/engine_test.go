package validation

import (
	"context"
	"testing"

	"twa-synth/internal/domain"
	"twa-synth/internal/generator"
	"twa-synth/internal/outcome"
	"twa-synth/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(synth.DefaultDemographicTables().ExpectedAgeDistribution(), zap.NewNop())
}

func TestEngine_EmptyDatasetRejected(t *testing.T) {
	_, err := newTestEngine().Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

// 子群均值差的方向约定：手工构造记录验证分组与符号
func TestOutcomeValidity_SignConventions(t *testing.T) {
	mk := func(id string, ex, purpose float64, smoking domain.SmokingStatus, bioAge, risk, lifespan float64) domain.MonthlyRecord {
		return domain.MonthlyRecord{
			SubjectID: id,
			Behaviors: domain.BehaviorVector{ExerciseDays: ex, PurposeScore: purpose, SmokingStatus: smoking},
			Outcomes:  domain.OutcomeVector{BiologicalAge: bioAge, MortalityRisk: risk, EstimatedLifespan: lifespan},
		}
	}
	records := []domain.MonthlyRecord{
		mk("a", 5, 9, domain.SmokingNever, 40, 0.8, 88),
		mk("b", 5, 9, domain.SmokingNever, 42, 0.9, 86),
		mk("c", 1, 3, domain.SmokingCurrent, 50, 2.5, 70),
		mk("d", 1, 3, domain.SmokingCurrent, 52, 2.8, 68),
	}

	v := outcomeValidity(records)
	// 低运动组生物学年龄 − 高运动组：正值代表运动的保护效应
	assert.InDelta(t, 10.0, v.ExerciseBioAgeGap, 1e-9)
	// 现吸烟组死亡风险 − 从不吸烟组
	assert.InDelta(t, 1.8, v.SmokingMortalityGap, 1e-9)
	// 高目标感组预期寿命 − 低目标感组
	assert.InDelta(t, 18.0, v.PurposeLifespanGap, 1e-9)
}

func TestOutcomeValidity_EmptySubgroupYieldsZero(t *testing.T) {
	records := []domain.MonthlyRecord{
		{SubjectID: "a", Behaviors: domain.BehaviorVector{ExerciseDays: 3, PurposeScore: 6, SmokingStatus: domain.SmokingFormer}},
	}
	v := outcomeValidity(records)
	assert.Zero(t, v.ExerciseBioAgeGap)
	assert.Zero(t, v.SmokingMortalityGap)
	assert.Zero(t, v.PurposeLifespanGap)
}

func TestLongitudinalCoherence_SingleRecordSubjectsSkipped(t *testing.T) {
	records := []domain.MonthlyRecord{
		{SubjectID: "a", MonthIndex: 0, Season: domain.SeasonWinter},
		{SubjectID: "b", MonthIndex: 0, Season: domain.SeasonWinter},
	}
	c := longitudinalCoherence(records, groupBySubject(records))
	assert.Zero(t, c.MeanAgingSlope)
	assert.Zero(t, c.BehaviorStability)
}

// 端到端：生成的数据集应通过统计合理性检查
func TestEngine_ValidateGeneratedDataset(t *testing.T) {
	gen := generator.NewGenerator(
		synth.DefaultDemographicTables(),
		synth.DefaultBehaviorTables(),
		outcome.DefaultTables(),
		zap.NewNop(),
	)
	records, err := gen.Generate(context.Background(), domain.GenerationConfig{
		SubjectCount: 400,
		Months:       6,
		Seed:         20240101,
	})
	require.NoError(t, err)

	report, err := newTestEngine().Validate(records)
	require.NoError(t, err)

	assert.Equal(t, 2400, report.RecordCount)
	assert.Equal(t, 400, report.SubjectCount)

	// 人口学：年龄分布接近权重表，收入×教育正相关，年龄×体能负相关
	d := report.Demographics
	assert.GreaterOrEqual(t, d.AgeDistributionDistance, 0.0)
	assert.Less(t, d.AgeDistributionDistance, 0.15)
	assert.Greater(t, d.IncomeEducationCorr, 0.1)
	assert.Less(t, d.AgeFitnessCorr, -0.05)

	// 行为链耦合留下的相关性痕迹
	b := report.Behaviors
	for _, corr := range []float64{b.ExerciseSleepQuality, b.DietRelaxation, b.SocialPurpose} {
		assert.GreaterOrEqual(t, corr, -1.0)
		assert.LessOrEqual(t, corr, 1.0)
	}
	assert.Greater(t, b.ExerciseSleepQuality, 0.05)
	assert.Greater(t, b.DietRelaxation, 0.05)
	assert.Greater(t, b.SocialPurpose, 0.05)

	// 结局有效性：运动与吸烟的效应方向
	o := report.Outcomes
	assert.Greater(t, o.ExerciseBioAgeGap, 0.0)
	assert.Greater(t, o.SmokingMortalityGap, 0.0)

	// 纵向一致性
	l := report.Longitudinal
	assert.Greater(t, l.SeasonalExerciseSD, 0.0)
	assert.Less(t, l.SeasonalExerciseSD, 2.0)
	assert.Greater(t, l.MeanAgingSlope, -1.0)
	assert.Less(t, l.MeanAgingSlope, 1.0)
	assert.Greater(t, l.BehaviorStability, 0.3)
	assert.LessOrEqual(t, l.BehaviorStability, 1.0)
}
