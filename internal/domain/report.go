package domain

// DemographicAccuracy 人口学准确性统计组
type DemographicAccuracy struct {
	AgeDistributionDistance float64 `json:"age_distribution_distance"` // KS 式统计：年龄段观测分布 vs 期望分布 [0,1]
	IncomeEducationCorr     float64 `json:"income_education_corr"`     // 收入中点 × 教育序数 Pearson 相关
	AgeFitnessCorr          float64 `json:"age_fitness_corr"`          // 年龄中点 × 体能序数 Pearson 相关
}

// BehaviorCorrelations 行为相关性统计组（对全部记录计算，不按受试者去重）
type BehaviorCorrelations struct {
	ExerciseSleepQuality float64 `json:"exercise_sleep_quality"` // 运动天数 × 睡眠质量
	DietRelaxation       float64 `json:"diet_relaxation"`        // 饮食质量 × 放松分钟
	SocialPurpose        float64 `json:"social_purpose"`         // 社会联结 × 目标感
}

// OutcomeValidity 结局有效性统计组（原始单位的均值差，非标准化效应量）
type OutcomeValidity struct {
	ExerciseBioAgeGap   float64 `json:"exercise_bioage_gap"`   // 低运动组(<2天) − 高运动组(≥4天) 生物学年龄均值差
	SmokingMortalityGap float64 `json:"smoking_mortality_gap"` // 现吸烟者 − 从不吸烟者 死亡风险均值差
	PurposeLifespanGap  float64 `json:"purpose_lifespan_gap"`  // 高目标感(≥8) − 低目标感(≤4) 预期寿命均值差
}

// LongitudinalCoherence 纵向一致性统计组
type LongitudinalCoherence struct {
	SeasonalExerciseSD float64 `json:"seasonal_exercise_sd"` // 四季运动天数组均值的标准差
	MeanAgingSlope     float64 `json:"mean_aging_slope"`     // 受试者内生物学年龄对月序的 OLS 斜率均值（≥2 条记录者）
	BehaviorStability  float64 `json:"behavior_stability"`   // 受试者内运动天数稳定比 1−var/mean² 的均值（≥2 条记录者）
}

// ValidationReport 验证引擎对完整数据集的结构化报告
// 全部为描述统计；通过/不通过阈值由消费方应用，引擎本身不做假设检验。
type ValidationReport struct {
	RecordCount  int                   `json:"record_count"`  // 参与统计的记录数
	SubjectCount int                   `json:"subject_count"` // 去重后的受试者数
	Demographics DemographicAccuracy   `json:"demographic_accuracy"`
	Behaviors    BehaviorCorrelations  `json:"behavior_correlations"`
	Outcomes     OutcomeValidity       `json:"outcome_validity"`
	Longitudinal LongitudinalCoherence `json:"longitudinal_coherence"`
}
