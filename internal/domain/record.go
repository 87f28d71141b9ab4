package domain

import (
	"fmt"
	"time"
)

// ExportFormat 导出格式
type ExportFormat string

const (
	ExportJSON  ExportFormat = "json"
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
)

// Valid 是否为支持的导出格式
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportJSON, ExportCSV, ExportExcel:
		return true
	}
	return false
}

// DatasetEpoch 数据集观测起点（month 0 = 2024-01，一月 → Winter，与季节查表对齐）
var DatasetEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// GenerationConfig 数据集生成配置
type GenerationConfig struct {
	SubjectCount      int          `json:"subject_count" yaml:"subject_count"`           // 受试者数 ≥1
	Months            int          `json:"months" yaml:"months"`                         // 每人月数 ≥1
	IncludeValidation bool         `json:"include_validation" yaml:"include_validation"` // 生成后是否运行验证
	ExportFormat      ExportFormat `json:"export_format" yaml:"export_format"`           // json/csv/excel（仅导出协作层消费）
	Seed              int64        `json:"seed" yaml:"seed"`                             // 随机种子（0 = 取当前时间）
	Workers           int          `json:"workers" yaml:"workers"`                       // 并行 worker 数（0 = GOMAXPROCS）
}

// Validate 配置校验：在任何采样之前失败，绝不返回部分数据集
func (c GenerationConfig) Validate() error {
	if c.SubjectCount < 1 {
		return fmt.Errorf("%w: subject_count must be >= 1, got %d", ErrInvalidConfiguration, c.SubjectCount)
	}
	if c.Months < 1 {
		return fmt.Errorf("%w: months must be >= 1, got %d", ErrInvalidConfiguration, c.Months)
	}
	if c.ExportFormat != "" && !c.ExportFormat.Valid() {
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidConfiguration, c.ExportFormat)
	}
	return nil
}

// ComplianceFlags 六个指南达标布尔标志（均为 BehaviorVector 的纯函数）
type ComplianceFlags struct {
	MeetsExercise   bool `json:"meets_exercise"`    // 运动 ≥3 天/周
	MeetsSleep      bool `json:"meets_sleep"`       // 睡眠 7-9 小时
	MeetsHydration  bool `json:"meets_hydration"`   // 饮水 ≥8 杯/天
	MeetsDiet       bool `json:"meets_diet"`        // 饮食质量 ≥7
	MeetsStressMgmt bool `json:"meets_stress_mgmt"` // 放松练习 ≥150 分钟/周
	MeetsSocial     bool `json:"meets_social"`      // 社会联结 ≥4
}

// MonthlyRecord 下游消费的聚合单元：一名受试者一个月的完整记录
// 由编排器生成一次，之后不可变。完整数据集按受试者分组、月份升序排列。
// profile/behaviors/outcomes 保持为命名子结构（导出层再做扁平化），字段名保持稳定。
type MonthlyRecord struct {
	SubjectID         string          `json:"subject_id"`          // 与 Profile.SubjectID 相同
	MonthIndex        int             `json:"month_index"`         // 0 起
	Season            Season          `json:"season"`              // 月→季节查表结果
	ObservationDate   time.Time       `json:"observation_date"`    // DatasetEpoch + MonthIndex 个月
	Profile           SubjectProfile  `json:"profile"`             // 人口学画像
	Behaviors         BehaviorVector  `json:"behaviors"`           // 行为向量
	Outcomes          OutcomeVector   `json:"outcomes"`            // 结局向量
	Compliance        ComplianceFlags `json:"compliance"`          // 指南达标标志
	HealthyAgingScore float64         `json:"healthy_aging_score"` // 健康衰老综合分 [0,100]
	BlueZoneScore     float64         `json:"blue_zone_score"`     // 蓝区相似度 [0,100]
}

// Dataset 一次生成调用的完整产物（HTTP 层内存库的存储单元）
type Dataset struct {
	DatasetID   string            `json:"dataset_id"`           // UUID
	Config      GenerationConfig  `json:"config"`               // 生成配置
	Records     []MonthlyRecord   `json:"records"`              // 有序记录集合
	Validation  *ValidationReport `json:"validation,omitempty"` // IncludeValidation 时存在
	GeneratedAt time.Time         `json:"generated_at"`         // 生成完成时间
}

// BackendPagination 分页元信息（records 列表接口）
type BackendPagination struct {
	Size      int    `json:"size"`
	Page      int    `json:"page"`
	Count     int    `json:"count"`
	Sort      string `json:"sort"`
	Direction int    `json:"direction"`
}
