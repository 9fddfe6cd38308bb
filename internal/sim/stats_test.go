package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/marketsim/internal/domain"
)

func momentumPoints(momenta ...float64) []domain.Point {
	points := make([]domain.Point, len(momenta))
	for i, m := range momenta {
		points[i] = domain.Point{Index: i, T: float64(i), Momentum: m}
	}
	return points
}

func TestComputeMomentumStatsKnownValues(t *testing.T) {
	// 经典例子：均值 5，总体标准差恰好 2
	stats := ComputeMomentumStats(momentumPoints(2, 4, 4, 4, 5, 5, 7, 9))
	assert.InDelta(t, 5.0, stats.Mean, 1e-12)
	assert.InDelta(t, 2.0, stats.Std, 1e-12)
}

func TestComputeMomentumStatsDegenerateSeries(t *testing.T) {
	// 全等序列标准差为 0，用 epsilon 下限兜底
	stats := ComputeMomentumStats(momentumPoints(0.7, 0.7, 0.7, 0.7))
	assert.InDelta(t, 0.7, stats.Mean, 1e-12)
	assert.Equal(t, StdEpsilon, stats.Std)
}

func TestComputeMomentumStatsMatchesDirectFormulas(t *testing.T) {
	points := GeneratePath(200, domain.DefaultRegimeSchedule(), NewRand(11))
	stats := ComputeMomentumStats(points)

	var sum float64
	for _, p := range points {
		sum += p.Momentum
	}
	mean := sum / float64(len(points))

	var sqSum float64
	for _, p := range points {
		d := p.Momentum - mean
		sqSum += d * d
	}
	std := math.Sqrt(sqSum / float64(len(points)))
	require.Greater(t, std, StdEpsilon, "真实路径的动量不应退化")

	assert.InDelta(t, mean, stats.Mean, 1e-9)
	assert.InDelta(t, std, stats.Std, 1e-9)
}
