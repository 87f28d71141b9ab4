package generator

import (
	"context"
	"runtime"
	"sync"
	"time"

	"twa-synth/internal/domain"
	"twa-synth/internal/outcome"
	"twa-synth/internal/synth"

	"go.uber.org/zap"
)

// ProgressFunc 每完成一名受试者回调一次（大规模生成时供 CLI/前端展示进度）
type ProgressFunc func(completed, total int)

// Generator 纵向数据集编排器
// 对每名受试者按月序 0..months-1 依次调用行为采样器与结局模型，派生指南标志
// 与两个综合分后组装 MonthlyRecord。受试者之间彼此独立（尴尬并行）：
// 每个 worker 持有由基础种子派生的私有随机流，跨受试者的随机消费顺序不是契约。
// 受试者内部必须按月升序（monthsElapsed 是结局模型的输入），月间无其它状态传递。
type Generator struct {
	demoTables     synth.DemographicTables
	behaviorTables synth.BehaviorTables
	outcomeTables  outcome.Tables
	logger         *zap.Logger

	// Progress 可选进度回调，在受试者完成边界调用
	Progress ProgressFunc
}

// NewGenerator 创建编排器（三张数值表构造时注入，运行期不可变）
func NewGenerator(demo synth.DemographicTables, behavior synth.BehaviorTables, out outcome.Tables, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		demoTables:     demo,
		behaviorTables: behavior,
		outcomeTables:  out,
		logger:         logger,
	}
}

// Generate 生成完整有序记录集合（按受试者分组、月份升序）
// 配置错误在任何采样之前同步返回；ctx 取消在受试者边界协作式检查，
// 取消时不返回部分数据集。
func (g *Generator) Generate(ctx context.Context, cfg domain.GenerationConfig) ([]domain.MonthlyRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	g.logger.Info("dataset generation started",
		zap.Int("subjects", cfg.SubjectCount),
		zap.Int("months", cfg.Months),
		zap.Int64("seed", seed),
	)

	// 画像在单一流上顺序生成（画像链内部有条件依赖，量小不值得并行）
	demoSampler := synth.NewDemographicSampler(g.demoTables, synth.NewStream(seed))
	profiles, err := demoSampler.Generate(cfg.SubjectCount)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.SubjectCount {
		workers = cfg.SubjectCount
	}

	perSubject := make([][]domain.MonthlyRecord, cfg.SubjectCount)
	jobs := make(chan int)
	var wg sync.WaitGroup
	var completed int64
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				perSubject[idx] = g.generateSubject(profiles[idx], cfg.Months, synth.DeriveSeed(seed, idx))
				if g.Progress != nil {
					mu.Lock()
					completed++
					done := int(completed)
					mu.Unlock()
					g.Progress(done, cfg.SubjectCount)
				}
			}
		}()
	}

	var cancelled error
feed:
	for idx := range profiles {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		g.logger.Warn("dataset generation cancelled", zap.Error(cancelled))
		return nil, cancelled
	}

	records := make([]domain.MonthlyRecord, 0, cfg.SubjectCount*cfg.Months)
	for _, rs := range perSubject {
		records = append(records, rs...)
	}

	g.logger.Info("dataset generation finished",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}

// generateSubject 单受试者的逐月生成（私有随机流，月升序）
func (g *Generator) generateSubject(profile domain.SubjectProfile, months int, seed int64) []domain.MonthlyRecord {
	r := synth.NewStream(seed)
	behaviorSampler := synth.NewBehaviorSampler(g.behaviorTables, r)
	model := outcome.NewModel(g.outcomeTables, r)

	records := make([]domain.MonthlyRecord, 0, months)
	for month := 0; month < months; month++ {
		season := domain.SeasonForMonth(month)
		behaviors := behaviorSampler.GenerateMonth(profile, month, season)
		outcomes := model.GenerateMonth(profile, behaviors, profile.AgeMidpoint, month)

		records = append(records, domain.MonthlyRecord{
			SubjectID:         profile.SubjectID,
			MonthIndex:        month,
			Season:            season,
			ObservationDate:   domain.DatasetEpoch.AddDate(0, month, 0),
			Profile:           profile,
			Behaviors:         behaviors,
			Outcomes:          outcomes,
			Compliance:        ComplianceFor(behaviors),
			HealthyAgingScore: HealthyAgingScore(behaviors, outcomes),
			BlueZoneScore:     BlueZoneScore(behaviors),
		})
	}
	return records
}
