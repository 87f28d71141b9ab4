package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 1.0, pearson(xs, []float64{2, 4, 6, 8, 10}), 1e-12)
	assert.InDelta(t, -1.0, pearson(xs, []float64{10, 8, 6, 4, 2}), 1e-12)
	assert.Equal(t, 0.0, pearson(xs, []float64{3, 3, 3, 3, 3}), "零方差返回 0")
	assert.Equal(t, 0.0, pearson([]float64{1}, []float64{2}), "样本不足返回 0")
	assert.Equal(t, 0.0, pearson(xs, []float64{1, 2}), "长度不等返回 0")
}

func TestKSDistance(t *testing.T) {
	same := map[string]float64{"a": 0.5, "b": 0.5}
	assert.Equal(t, 0.0, ksDistance(same, same))

	observed := map[string]float64{"a": 0.7, "b": 0.3}
	expected := map[string]float64{"a": 0.5, "b": 0.5}
	assert.InDelta(t, 0.2, ksDistance(observed, expected), 1e-12)

	// 键集合取并集：缺失键按占比 0 处理
	onlyObs := map[string]float64{"a": 1.0}
	onlyExp := map[string]float64{"b": 1.0}
	assert.Equal(t, 1.0, ksDistance(onlyObs, onlyExp))
}

func TestOLSSlope(t *testing.T) {
	xs := []float64{0, 1, 2, 3}

	assert.InDelta(t, 2.0, olsSlope(xs, []float64{1, 3, 5, 7}), 1e-12)
	assert.InDelta(t, 0.0, olsSlope(xs, []float64{4, 4, 4, 4}), 1e-12)
	assert.Equal(t, 0.0, olsSlope([]float64{2, 2, 2}, []float64{1, 2, 3}), "x 零方差返回 0")
}

func TestStabilityRatio(t *testing.T) {
	assert.InDelta(t, 1.0, stabilityRatio([]float64{3, 3, 3, 3}), 1e-12, "常数序列稳定比 1")
	assert.Equal(t, 0.0, stabilityRatio([]float64{5}), "样本不足返回 0")
	assert.Equal(t, 0.0, stabilityRatio([]float64{1, -1}), "均值接近 0 返回 0")

	noisy := stabilityRatio([]float64{2, 4, 2, 4})
	steady := stabilityRatio([]float64{3, 3.1, 2.9, 3})
	assert.Greater(t, steady, noisy)
}

func TestMeanVarianceStdDev(t *testing.T) {
	vs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, mean(vs), 1e-12)
	assert.InDelta(t, 4.0, variance(vs), 1e-12)
	assert.InDelta(t, 2.0, stdDev(vs), 1e-12)
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 0.0, variance(nil))
}
