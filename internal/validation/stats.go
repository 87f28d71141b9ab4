package validation

import "math"

// 本文件为从零实现的推断统计原语：Pearson 相关、KS 式分布距离、
// OLS 斜率、方差稳定比。引擎只做描述统计，不算 p 值。

// pearson 皮尔逊相关系数，样本不足或零方差时返回 0
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// ksDistance 简化的两样本分布距离：类别占比绝对差的最大值 ∈[0,1]
// （替代完整 Kolmogorov-Smirnov 检验的 KS 式统计）
func ksDistance(observed, expected map[string]float64) float64 {
	var maxDiff float64
	seen := make(map[string]bool, len(observed)+len(expected))
	for k := range observed {
		seen[k] = true
	}
	for k := range expected {
		seen[k] = true
	}
	for k := range seen {
		diff := math.Abs(observed[k] - expected[k])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	if maxDiff > 1 {
		maxDiff = 1
	}
	return maxDiff
}

// olsSlope 普通最小二乘斜率（y 对 x），x 零方差时返回 0
func olsSlope(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sxy, sxx float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		sxy += dx * (ys[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0
	}
	return sxy / sxx
}

// stabilityRatio 稳定比 1 − var/mean²，均值接近 0 时返回 0
func stabilityRatio(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	m := mean(vs)
	if math.Abs(m) < 1e-9 {
		return 0
	}
	return 1 - variance(vs)/(m*m)
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// variance 总体方差
func variance(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := mean(vs)
	var sum float64
	for _, v := range vs {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vs))
}

func stdDev(vs []float64) float64 {
	return math.Sqrt(variance(vs))
}
