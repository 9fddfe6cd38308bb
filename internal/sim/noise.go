package sim

import "github.com/betbot/marketsim/pkg/marketmath"

// NextNoise 推进平滑噪声：prev + uniform(-0.5,0.5)*intensity，clamp 到 [-1,1]。
// 本身无状态，调用方把返回值作为下次的 prev 传回。
// 用递推而不是独立采样，得到自相关噪声，轨迹看起来像行情而不是抖动。
func NextNoise(prev, intensity float64, rng Rand) float64 {
	next := prev + (rng.Float64()-0.5)*intensity
	return marketmath.Clamp(next, -1, 1)
}
