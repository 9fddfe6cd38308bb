package risk

import (
	"math"

	"github.com/betbot/marketsim/pkg/marketmath"
)

// 仓位与风险预算上限。
// 约定：仓位方向用符号表达，+1 满仓做多，-1 满仓做空。
const (
	// MaxPosition 最大仓位（绝对值）。
	MaxPosition = 1.0

	// RiskBudget 风险预算。当前与 MaxPosition 一起构成 utilization 的分母。
	RiskBudget = 1.0
)

// ClampPosition 把仓位限制到 [-MaxPosition, MaxPosition]。
func ClampPosition(size float64) float64 {
	return marketmath.Clamp(size, -MaxPosition, MaxPosition)
}

// Utilization 风险占用百分比：round(|size| / (MaxPosition*RiskBudget) * 100)。
// 仓位合法时结果落在 [0, 100]。
func Utilization(size float64) int {
	return int(math.Round(math.Abs(size) / (MaxPosition * RiskBudget) * 100))
}
