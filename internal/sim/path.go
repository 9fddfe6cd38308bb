package sim

import (
	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/pkg/marketmath"
)

// 路径生成常量。模拟时间跨度固定，length 只决定采样密度。
const (
	// Horizon 模拟时间跨度（0..100）。
	Horizon = 100.0

	// ProbFloor / ProbCeil 概率路径的硬边界。
	ProbFloor = 0.04
	ProbCeil  = 0.96

	// NoiseIntensity 噪声递推强度。
	NoiseIntensity = 0.35

	// DriftStepCoeff / NoiseStepCoeff 漂移、噪声对单步变化量的贡献系数。
	DriftStepCoeff = 0.04
	NoiseStepCoeff = 0.02

	startProb = 0.5
)

// GeneratePath 生成基础概率路径（第一遍，只填充 Index/T/Prob/Momentum/RawChange）。
//
// 状态：
// - drift 累计漂移，越过 regime 触发点时一次性加上增量，只增不清零；
// - noise 经 NextNoise 递推；
// - prob 从 0.5 出发，每步加 stepChange 后 clamp 到 [ProbFloor, ProbCeil]。
//
// 边界处 clamp 会吞掉一部分 stepChange，momentum 按 clamp 后的 prob 计算，
// 因此靠近边界时 momentum 可能小于 stepChange/dt，这是有意保留的行为。
//
// 前置条件：length >= 2（由 Generate 校验）。
func GeneratePath(length int, schedule domain.RegimeSchedule, rng Rand) []domain.Point {
	dt := Horizon / float64(length-1)

	points := make([]domain.Point, length)
	fired := make([]bool, len(schedule))

	drift := 0.0
	noise := 0.0
	prob := startProb

	for i := 0; i < length; i++ {
		t := dt * float64(i)

		// regime 触发：每个 shift 至多生效一次
		for j, shift := range schedule {
			if !fired[j] && shift.Crossing(t, dt) {
				drift += shift.DriftDelta
				fired[j] = true
			}
		}

		noise = NextNoise(noise, NoiseIntensity, rng)
		stepChange := drift*DriftStepCoeff + noise*NoiseStepCoeff

		prevProb := prob
		prob = marketmath.Clamp(prob+stepChange, ProbFloor, ProbCeil)

		p := &points[i]
		p.Index = i
		p.T = t
		p.Prob = prob
		p.RawChange = prob - prevProb
		if i > 0 {
			p.Momentum = p.RawChange / dt
		}
	}

	return points
}
