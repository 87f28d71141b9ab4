package synth

import (
	"fmt"
	"math/rand"

	"twa-synth/internal/domain"

	"github.com/google/uuid"
)

// DemographicSampler 人口学画像采样器
// 通过条件化类别链生成画像：年龄段 → 教育 → 收入 → 体能 → 睡眠类型；地区 → 城乡。
// 后续抽取的权重表由前面结果选定，除消费随机流外无副作用。
type DemographicSampler struct {
	tables DemographicTables
	r      *rand.Rand
}

// NewDemographicSampler 创建采样器（权重表与随机流显式注入）
func NewDemographicSampler(tables DemographicTables, r *rand.Rand) *DemographicSampler {
	return &DemographicSampler{tables: tables, r: r}
}

// Generate 生成 n 份画像；n<1 返回 ErrInvalidConfiguration
func (s *DemographicSampler) Generate(n int) ([]domain.SubjectProfile, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: subject count must be >= 1, got %d", domain.ErrInvalidConfiguration, n)
	}
	profiles := make([]domain.SubjectProfile, 0, n)
	for i := 0; i < n; i++ {
		profiles = append(profiles, s.sampleOne())
	}
	return profiles, nil
}

func (s *DemographicSampler) sampleOne() domain.SubjectProfile {
	age := domain.AgeBrackets[weightedIndex(s.r, s.tables.AgeWeights)]
	gender := domain.Genders[weightedIndex(s.r, s.tables.GenderWeights)]
	ethnicity := domain.Ethnicities[weightedIndex(s.r, s.tables.EthnicityWeights)]
	education := domain.Educations[weightedIndex(s.r, s.tables.EducationByAge[age])]
	income := s.sampleIncome(education, age)
	fitness := s.sampleFitness(age, income)
	sleep := domain.SleepPatterns[weightedIndex(s.r, s.tables.SleepByFitness[fitness])]
	region := domain.Regions[weightedIndex(s.r, s.tables.RegionWeights)]
	urbanicity := domain.Urbanicities[weightedIndex(s.r, s.tables.UrbanicityByRegion[region])]

	return domain.SubjectProfile{
		SubjectID:      uuid.New().String(),
		AgeBracket:     age,
		AgeMidpoint:    domain.AgeMidpoints[age],
		Gender:         gender,
		Ethnicity:      ethnicity,
		Education:      education,
		IncomeBracket:  income,
		IncomeMidpoint: domain.IncomeMidpoints[income],
		FitnessLevel:   fitness,
		SleepPattern:   sleep,
		Region:         region,
		Urbanicity:     urbanicity,
		Occupation:     s.sampleOccupation(education),
	}
}

// sampleIncome 收入：教育选表，再随年龄单调地向高档倾斜（收入随工龄累积）
func (s *DemographicSampler) sampleIncome(education domain.Education, age domain.AgeBracket) domain.IncomeBracket {
	weights := s.tables.IncomeByEdu[education]
	ageMid := domain.AgeMidpoints[age]
	// 21 岁不倾斜，往后每岁 +0.4%，封顶 22%
	frac := (ageMid - 21.0) * 0.004
	if frac > 0.22 {
		frac = 0.22
	}
	if frac > 0 {
		weights = shiftWeights(weights, frac, true)
	}
	return domain.IncomeBrackets[weightedIndex(s.r, weights)]
}

// sampleFitness 体能：年龄选表，高收入组向高档小幅倾斜（运动条件更好）
func (s *DemographicSampler) sampleFitness(age domain.AgeBracket, income domain.IncomeBracket) domain.FitnessLevel {
	weights := s.tables.FitnessByAge[age]
	switch income {
	case domain.IncomeUpperMiddle:
		weights = shiftWeights(weights, 0.08, true)
	case domain.IncomeHigh:
		weights = shiftWeights(weights, 0.15, true)
	case domain.IncomeLow:
		weights = shiftWeights(weights, 0.08, false)
	}
	return domain.FitnessLevels[weightedIndex(s.r, weights)]
}

func (s *DemographicSampler) sampleOccupation(education domain.Education) string {
	jobs := s.tables.OccupationsByEdu[education]
	if len(jobs) == 0 {
		return "Unknown"
	}
	return jobs[s.r.Intn(len(jobs))]
}
