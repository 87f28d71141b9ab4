package generator

import (
	"context"
	"testing"

	"twa-synth/internal/domain"
	"twa-synth/internal/outcome"
	"twa-synth/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGenerator() *Generator {
	return NewGenerator(
		synth.DefaultDemographicTables(),
		synth.DefaultBehaviorTables(),
		outcome.DefaultTables(),
		zap.NewNop(),
	)
}

func TestGenerator_RejectsInvalidConfig(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 0, Months: 12})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 10, Months: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 10, Months: 3, ExportFormat: "xml"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestGenerator_ProducesOrderedCompleteDataset(t *testing.T) {
	g := newTestGenerator()
	cfg := domain.GenerationConfig{SubjectCount: 100, Months: 3, Seed: 42}

	records, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, records, 300)

	// 按受试者分组、组内月份严格升序
	months := make(map[string][]int)
	for _, r := range records {
		months[r.SubjectID] = append(months[r.SubjectID], r.MonthIndex)
		assert.Equal(t, r.Profile.SubjectID, r.SubjectID)
	}
	require.Len(t, months, 100)
	for id, ms := range months {
		require.Equal(t, []int{0, 1, 2}, ms, "subject %s", id)
	}
}

func TestGenerator_SeasonAndDateFollowEpoch(t *testing.T) {
	g := newTestGenerator()
	cfg := domain.GenerationConfig{SubjectCount: 2, Months: 14, Seed: 7}

	records, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)

	for _, r := range records {
		assert.Equal(t, domain.SeasonForMonth(r.MonthIndex), r.Season)
		assert.Equal(t, domain.DatasetEpoch.AddDate(0, r.MonthIndex, 0), r.ObservationDate)
	}
	// month 0 = 2024-01 → Winter；month 13 跨年回到 Winter
	assert.Equal(t, domain.SeasonWinter, records[0].Season)
	assert.Equal(t, domain.SeasonWinter, records[13].Season)
}

// 同种子同配置必须逐字段复现（worker 数不同也一样：每受试者持私有派生流）
func TestGenerator_ReproducibleAcrossWorkerCounts(t *testing.T) {
	g := newTestGenerator()
	a, err := g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 30, Months: 4, Seed: 99, Workers: 1})
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 30, Months: 4, Seed: 99, Workers: 8})
	require.NoError(t, err)

	require.Len(t, b, len(a))
	// UUID 每次生成都不同，但除 ID 外的全部字段序列应一致
	for i := range a {
		ra, rb := a[i], b[i]
		ra.SubjectID, rb.SubjectID = "", ""
		ra.Profile.SubjectID, rb.Profile.SubjectID = "", ""
		require.Equal(t, ra, rb, "record %d", i)
	}
}

func TestGenerator_DerivedFieldsAreRecomputable(t *testing.T) {
	g := newTestGenerator()
	records, err := g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 20, Months: 2, Seed: 11})
	require.NoError(t, err)

	for _, r := range records {
		assert.Equal(t, ComplianceFor(r.Behaviors), r.Compliance)
		assert.Equal(t, HealthyAgingScore(r.Behaviors, r.Outcomes), r.HealthyAgingScore)
		assert.Equal(t, BlueZoneScore(r.Behaviors), r.BlueZoneScore)
		assert.GreaterOrEqual(t, r.HealthyAgingScore, 0.0)
		assert.LessOrEqual(t, r.HealthyAgingScore, 100.0)
		assert.GreaterOrEqual(t, r.BlueZoneScore, 0.0)
		assert.LessOrEqual(t, r.BlueZoneScore, 100.0)
	}
}

// 取消时不返回部分数据集
func TestGenerator_CancellationReturnsNoPartialData(t *testing.T) {
	g := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := g.Generate(ctx, domain.GenerationConfig{SubjectCount: 5000, Months: 12, Seed: 1, Workers: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
}

func TestGenerator_ProgressCallback(t *testing.T) {
	g := newTestGenerator()
	var calls int
	var last int
	g.Progress = func(completed, total int) {
		calls++
		assert.Equal(t, 25, total)
		if completed > last {
			last = completed
		}
	}

	_, err := g.Generate(context.Background(), domain.GenerationConfig{SubjectCount: 25, Months: 2, Seed: 3, Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, 25, calls)
	assert.Equal(t, 25, last)
}
