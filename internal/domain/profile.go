package domain

// AgeBracket 年龄段（7 档，低→高有序）
type AgeBracket string

const (
	Age18to24 AgeBracket = "18-24"
	Age25to34 AgeBracket = "25-34"
	Age35to44 AgeBracket = "35-44"
	Age45to54 AgeBracket = "45-54"
	Age55to64 AgeBracket = "55-64"
	Age65to74 AgeBracket = "65-74"
	Age75to84 AgeBracket = "75-84"
)

// AgeBrackets 有序枚举（权重表与 KS 统计都依赖该顺序）
var AgeBrackets = []AgeBracket{
	Age18to24, Age25to34, Age35to44, Age45to54, Age55to64, Age65to74, Age75to84,
}

// AgeMidpoints 年龄段数值中点（由档位唯一确定，不单独随机）
var AgeMidpoints = map[AgeBracket]float64{
	Age18to24: 21.0,
	Age25to34: 29.5,
	Age35to44: 39.5,
	Age45to54: 49.5,
	Age55to64: 59.5,
	Age65to74: 69.5,
	Age75to84: 79.5,
}

// Gender 性别（3 类）
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Ethnicity 族裔（5 类）
type Ethnicity string

const (
	EthnicityWhite    Ethnicity = "White"
	EthnicityBlack    Ethnicity = "Black"
	EthnicityHispanic Ethnicity = "Hispanic"
	EthnicityAsian    Ethnicity = "Asian"
	EthnicityOther    Ethnicity = "Other"
)

var Ethnicities = []Ethnicity{
	EthnicityWhite, EthnicityBlack, EthnicityHispanic, EthnicityAsian, EthnicityOther,
}

// Education 教育程度（4 档，低→高有序）
type Education string

const (
	EducationHighSchool  Education = "HighSchool"
	EducationSomeCollege Education = "SomeCollege"
	EducationBachelor    Education = "Bachelor"
	EducationGraduate    Education = "Graduate"
)

var Educations = []Education{
	EducationHighSchool, EducationSomeCollege, EducationBachelor, EducationGraduate,
}

// EducationRank 教育程度序数编码（验证统计用）
var EducationRank = map[Education]float64{
	EducationHighSchool:  1,
	EducationSomeCollege: 2,
	EducationBachelor:    3,
	EducationGraduate:    4,
}

// IncomeBracket 收入档（4 档，低→高有序）
type IncomeBracket string

const (
	IncomeLow         IncomeBracket = "Low"         // <30k
	IncomeLowerMiddle IncomeBracket = "LowerMiddle" // 30k-60k
	IncomeUpperMiddle IncomeBracket = "UpperMiddle" // 60k-100k
	IncomeHigh        IncomeBracket = "High"        // >100k
)

var IncomeBrackets = []IncomeBracket{
	IncomeLow, IncomeLowerMiddle, IncomeUpperMiddle, IncomeHigh,
}

// IncomeMidpoints 收入档数值中点（美元/年，由档位唯一确定）
var IncomeMidpoints = map[IncomeBracket]float64{
	IncomeLow:         20000,
	IncomeLowerMiddle: 45000,
	IncomeUpperMiddle: 80000,
	IncomeHigh:        130000,
}

// FitnessLevel 体能水平（3 档，低→高有序）
type FitnessLevel string

const (
	FitnessLow      FitnessLevel = "Low"
	FitnessModerate FitnessLevel = "Moderate"
	FitnessHigh     FitnessLevel = "High"
)

var FitnessLevels = []FitnessLevel{FitnessLow, FitnessModerate, FitnessHigh}

// FitnessRank 体能水平序数编码（验证统计用）
var FitnessRank = map[FitnessLevel]float64{
	FitnessLow:      1,
	FitnessModerate: 2,
	FitnessHigh:     3,
}

// SleepPattern 睡眠类型（3 类）
type SleepPattern string

const (
	SleepShort  SleepPattern = "Short"
	SleepNormal SleepPattern = "Normal"
	SleepLong   SleepPattern = "Long"
)

var SleepPatterns = []SleepPattern{SleepShort, SleepNormal, SleepLong}

// Region 地区（4 类）
type Region string

const (
	RegionNortheast Region = "Northeast"
	RegionMidwest   Region = "Midwest"
	RegionSouth     Region = "South"
	RegionWest      Region = "West"
)

var Regions = []Region{RegionNortheast, RegionMidwest, RegionSouth, RegionWest}

// Urbanicity 城乡类别（3 类）
type Urbanicity string

const (
	UrbanicityUrban    Urbanicity = "Urban"
	UrbanicitySuburban Urbanicity = "Suburban"
	UrbanicityRural    Urbanicity = "Rural"
)

var Urbanicities = []Urbanicity{UrbanicityUrban, UrbanicitySuburban, UrbanicityRural}

// SubjectProfile 受试者人口学画像（每个受试者生成一次，之后不可变）
// 数值中点（AgeMidpoint/IncomeMidpoint）由对应档位唯一确定，不单独随机。
type SubjectProfile struct {
	SubjectID      string        `json:"subject_id"`      // UUID
	AgeBracket     AgeBracket    `json:"age_bracket"`     // 年龄段
	AgeMidpoint    float64       `json:"age_midpoint"`    // 年龄段中点（岁）
	Gender         Gender        `json:"gender"`          // 性别
	Ethnicity      Ethnicity     `json:"ethnicity"`       // 族裔
	Education      Education     `json:"education"`       // 教育程度
	IncomeBracket  IncomeBracket `json:"income_bracket"`  // 收入档
	IncomeMidpoint float64       `json:"income_midpoint"` // 收入档中点（美元/年）
	FitnessLevel   FitnessLevel  `json:"fitness_level"`   // 体能水平
	SleepPattern   SleepPattern  `json:"sleep_pattern"`   // 睡眠类型
	Region         Region        `json:"region"`          // 地区
	Urbanicity     Urbanicity    `json:"urbanicity"`      // 城乡类别
	Occupation     string        `json:"occupation"`      // 职业标签
}
