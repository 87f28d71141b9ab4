package synth

import "twa-synth/internal/domain"

// DemographicTables 人口学采样权重表（构造时注入，运行期不可变）
// 数值为文档化的示意性分布，非普查精确值；保持在数据中而非控制流里，便于校准替换。
type DemographicTables struct {
	AgeWeights         []float64                       // 对齐 domain.AgeBrackets
	GenderWeights      []float64                       // 对齐 domain.Genders
	EthnicityWeights   []float64                       // 对齐 domain.Ethnicities
	EducationByAge     map[domain.AgeBracket][]float64 // 对齐 domain.Educations
	IncomeByEdu        map[domain.Education][]float64  // 对齐 domain.IncomeBrackets
	FitnessByAge       map[domain.AgeBracket][]float64 // 对齐 domain.FitnessLevels
	SleepByFitness     map[domain.FitnessLevel][]float64
	RegionWeights      []float64 // 对齐 domain.Regions
	UrbanicityByRegion map[domain.Region][]float64
	OccupationsByEdu   map[domain.Education][]string
}

// DefaultDemographicTables 默认权重表
func DefaultDemographicTables() DemographicTables {
	return DemographicTables{
		AgeWeights:       []float64{0.12, 0.18, 0.17, 0.16, 0.15, 0.13, 0.09},
		GenderWeights:    []float64{0.48, 0.49, 0.03},
		EthnicityWeights: []float64{0.60, 0.13, 0.14, 0.08, 0.05},

		// 教育权重表按年龄段选取：年轻组大学以上比例更高
		EducationByAge: map[domain.AgeBracket][]float64{
			domain.Age18to24: {0.30, 0.35, 0.28, 0.07},
			domain.Age25to34: {0.22, 0.26, 0.34, 0.18},
			domain.Age35to44: {0.25, 0.27, 0.30, 0.18},
			domain.Age45to54: {0.30, 0.28, 0.27, 0.15},
			domain.Age55to64: {0.35, 0.27, 0.24, 0.14},
			domain.Age65to74: {0.40, 0.26, 0.21, 0.13},
			domain.Age75to84: {0.46, 0.25, 0.18, 0.11},
		},

		// 收入权重表按教育选取；之后还会随年龄向高档倾斜（见 sampleIncome）
		IncomeByEdu: map[domain.Education][]float64{
			domain.EducationHighSchool:  {0.38, 0.36, 0.19, 0.07},
			domain.EducationSomeCollege: {0.26, 0.36, 0.26, 0.12},
			domain.EducationBachelor:    {0.12, 0.26, 0.37, 0.25},
			domain.EducationGraduate:    {0.07, 0.17, 0.34, 0.42},
		},

		FitnessByAge: map[domain.AgeBracket][]float64{
			domain.Age18to24: {0.20, 0.45, 0.35},
			domain.Age25to34: {0.24, 0.46, 0.30},
			domain.Age35to44: {0.28, 0.47, 0.25},
			domain.Age45to54: {0.34, 0.46, 0.20},
			domain.Age55to64: {0.42, 0.42, 0.16},
			domain.Age65to74: {0.50, 0.38, 0.12},
			domain.Age75to84: {0.62, 0.30, 0.08},
		},

		SleepByFitness: map[domain.FitnessLevel][]float64{
			domain.FitnessLow:      {0.40, 0.48, 0.12},
			domain.FitnessModerate: {0.28, 0.58, 0.14},
			domain.FitnessHigh:     {0.18, 0.64, 0.18},
		},

		RegionWeights: []float64{0.17, 0.21, 0.38, 0.24},
		UrbanicityByRegion: map[domain.Region][]float64{
			domain.RegionNortheast: {0.42, 0.44, 0.14},
			domain.RegionMidwest:   {0.26, 0.44, 0.30},
			domain.RegionSouth:     {0.28, 0.42, 0.30},
			domain.RegionWest:      {0.38, 0.42, 0.20},
		},

		OccupationsByEdu: map[domain.Education][]string{
			domain.EducationHighSchool:  {"Retail Associate", "Driver", "Factory Worker", "Food Service", "Construction Worker"},
			domain.EducationSomeCollege: {"Office Clerk", "Technician", "Sales Representative", "Medical Assistant", "Electrician"},
			domain.EducationBachelor:    {"Software Developer", "Teacher", "Accountant", "Registered Nurse", "Marketing Specialist"},
			domain.EducationGraduate:    {"Physician", "Attorney", "Research Scientist", "University Professor", "Data Scientist"},
		},
	}
}

// ExpectedAgeDistribution 期望年龄段分布（验证引擎的 KS 式统计基准）
func (t DemographicTables) ExpectedAgeDistribution() map[domain.AgeBracket]float64 {
	out := make(map[domain.AgeBracket]float64, len(domain.AgeBrackets))
	var total float64
	for _, w := range t.AgeWeights {
		total += w
	}
	for i, b := range domain.AgeBrackets {
		if i < len(t.AgeWeights) && total > 0 {
			out[b] = t.AgeWeights[i] / total
		}
	}
	return out
}
