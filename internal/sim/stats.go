package sim

import (
	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/pkg/marketmath"
)

// StdEpsilon 标准差下限：全等序列的总体标准差为 0，用它兜底避免 z-score 除零。
const StdEpsilon = 1e-6

// ComputeMomentumStats 计算全序列动量的均值与总体标准差（第二遍，需要完整路径）。
func ComputeMomentumStats(points []domain.Point) domain.MomentumStats {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Momentum
	}

	mean := marketmath.Mean(values)
	std := marketmath.PopStd(values, mean)
	if std < StdEpsilon {
		std = StdEpsilon
	}

	return domain.MomentumStats{Mean: mean, Std: std}
}
