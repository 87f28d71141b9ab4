package synth

import "math/rand"

// weightedIndex 加权随机下标（累计权重游走）
// 权重不要求归一化；全零或空权重时返回 0。
func weightedIndex(r *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	target := r.Float64() * total
	var cum float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}

// shiftWeights 概率再分配启发式："向高/低档倾斜"
// 假设类别列表按 低→高 概念排序：把 frac 比例的总质量从下半段按比例挪到上半段
// （up=false 则反向），然后重新归一化到 1。类别数为奇数时中间一档不动。
func shiftWeights(weights []float64, frac float64, up bool) []float64 {
	n := len(weights)
	out := make([]float64, n)
	copy(out, weights)
	if n < 2 || frac <= 0 {
		return normalize(out)
	}
	if frac > 1 {
		frac = 1
	}

	half := n / 2
	fromLo, fromHi := 0, half     // 下半段 [0,half)
	toLo, toHi := n-half, n       // 上半段 [n-half,n)
	if !up {
		fromLo, fromHi, toLo, toHi = toLo, toHi, fromLo, fromHi
	}

	var fromMass, toMass float64
	for i := fromLo; i < fromHi; i++ {
		fromMass += out[i]
	}
	for i := toLo; i < toHi; i++ {
		toMass += out[i]
	}
	moved := fromMass * frac
	if fromMass > 0 {
		for i := fromLo; i < fromHi; i++ {
			out[i] -= out[i] / fromMass * moved
		}
	}
	if toMass > 0 {
		for i := toLo; i < toHi; i++ {
			out[i] += out[i] / toMass * moved
		}
	} else if toHi > toLo {
		// 目标半段全零：均分接收
		share := moved / float64(toHi-toLo)
		for i := toLo; i < toHi; i++ {
			out[i] += share
		}
	}
	return normalize(out)
}

func normalize(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return weights
	}
	for i, w := range weights {
		if w < 0 {
			weights[i] = 0
			continue
		}
		weights[i] = w / total
	}
	return weights
}
