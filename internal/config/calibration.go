package config

import (
	"fmt"
	"os"

	"twa-synth/internal/outcome"
	"twa-synth/internal/synth"

	"gopkg.in/yaml.v3"
)

// Calibration 模型数值常数的 YAML 覆盖
// 研究常数（效应量、风险因子、耦合系数、噪声区间、年龄分布）保持在数据里而非
// 控制流里，按需替换做校准实验；缺省字段保持内置默认值。
type Calibration struct {
	AgeWeights  []float64              `yaml:"age_weights"`
	Coupling    *synth.CouplingCoefs   `yaml:"coupling"`
	WideNoise   *synth.NoiseRange      `yaml:"wide_noise"`
	MidNoise    *synth.NoiseRange      `yaml:"mid_noise"`
	NarrowNoise *synth.NoiseRange      `yaml:"narrow_noise"`
	Annual      *outcome.AnnualEffects `yaml:"annual_effects"`
	Hazard      *outcome.HazardFactors `yaml:"hazard_factors"`
	MarkerNoise *outcome.NoiseRange    `yaml:"marker_noise"`
}

// LoadCalibration 读取 YAML 校准文件；path 为空返回 nil（使用默认表）
func LoadCalibration(path string) (*Calibration, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calibration file: %w", err)
	}
	var cal Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("failed to parse calibration file: %w", err)
	}
	return &cal, nil
}

// ApplyDemographics 把覆盖合并到人口学权重表
func (c *Calibration) ApplyDemographics(t synth.DemographicTables) synth.DemographicTables {
	if c == nil {
		return t
	}
	if len(c.AgeWeights) == len(t.AgeWeights) {
		t.AgeWeights = c.AgeWeights
	}
	return t
}

// ApplyBehavior 把覆盖合并到行为表
func (c *Calibration) ApplyBehavior(t synth.BehaviorTables) synth.BehaviorTables {
	if c == nil {
		return t
	}
	if c.Coupling != nil {
		t.Coupling = *c.Coupling
	}
	if c.WideNoise != nil {
		t.WideNoise = *c.WideNoise
	}
	if c.MidNoise != nil {
		t.MidNoise = *c.MidNoise
	}
	if c.NarrowNoise != nil {
		t.NarrowNoise = *c.NarrowNoise
	}
	return t
}

// ApplyOutcome 把覆盖合并到结局效应量表
func (c *Calibration) ApplyOutcome(t outcome.Tables) outcome.Tables {
	if c == nil {
		return t
	}
	if c.Annual != nil {
		t.Annual = *c.Annual
	}
	if c.Hazard != nil {
		t.Hazard = *c.Hazard
	}
	if c.MarkerNoise != nil {
		t.MarkerNoise = *c.MarkerNoise
	}
	return t
}
