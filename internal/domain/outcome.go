package domain

// OutcomeVector 某受试者某月的健康/衰老结局向量（生成后不可变）
// 完全由对应的 SubjectProfile、BehaviorVector、基线年龄和已过月数导出。
type OutcomeVector struct {
	// 衰老
	BiologicalAge      float64 `json:"biological_age"`       // 生物学年龄（岁）≥18
	BioAgeAcceleration float64 `json:"bio_age_acceleration"` // 生物学年龄 − 实际年龄
	MortalityRisk      float64 `json:"mortality_risk"`       // 死亡风险得分 [0.1,10.0]

	// 生物标志物（各自有下限）
	CRPLevel      float64 `json:"crp_level"`       // C 反应蛋白 mg/L ≥0.2
	IL6Level      float64 `json:"il6_level"`       // 白介素-6 pg/mL ≥0.5
	TNFAlphaLevel float64 `json:"tnf_alpha_level"` // 肿瘤坏死因子-α pg/mL ≥0.8
	CortisolLevel float64 `json:"cortisol_level"`  // 皮质醇 nmol/L ≥5
	IGF1Level     float64 `json:"igf1_level"`      // IGF-1 ng/mL ≥40

	// 功能/活动能力
	GripStrength float64 `json:"grip_strength"` // 握力 kg ≥10
	GaitSpeed    float64 `json:"gait_speed"`    // 步速 m/s ≥0.5
	BalanceScore float64 `json:"balance_score"` // 平衡评分 [1,10]
	FrailtyIndex float64 `json:"frailty_index"` // 衰弱指数 [0,1]

	// 认知
	MemoryScore     float64 `json:"memory_score"`     // 记忆评分 [50,150]
	ProcessingSpeed float64 `json:"processing_speed"` // 处理速度评分 [50,150]

	// 心理社会
	LifeSatisfaction float64 `json:"life_satisfaction"` // 生活满意度 [1,10]
	StressLevel      float64 `json:"stress_level"`      // 压力水平 [1,10]
	DepressionRisk   float64 `json:"depression_risk"`   // 抑郁风险 [1,10]
	SocialSupport    float64 `json:"social_support"`    // 社会支持 [1,10]

	// 预期
	EstimatedLifespan float64 `json:"estimated_lifespan"` // 预期寿命（岁）[50,100]
}
