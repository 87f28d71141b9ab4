package synth

import (
	"math/rand"
	"time"
)

// NewStream 创建独立随机流
// 采样组件不使用全局随机源：显式注入随机流才能做确定性回放与按 worker 隔离。
func NewStream(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed 从基础种子派生第 i 个子流的种子（splitmix64 混合）
// 各受试者 worker 持有私有流，跨受试者的随机消费顺序不构成可观察契约。
func DeriveSeed(base int64, i int) int64 {
	z := uint64(base) + uint64(i+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return int64(z)
}

// noiseMul 有界均匀乘性噪声
func noiseMul(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// clamp 将 v 限制到 [lo,hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
