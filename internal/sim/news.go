package sim

import (
	"math"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/pkg/marketmath"
)

// 新闻合成常量。
const (
	// NewsZThreshold 动量 z-score 的结构性阈值，低于它的点不产生新闻。
	NewsZThreshold = 1.3

	// NewsChance 过阈值后的独立发布概率（硬币翻转）。
	// 新闻密度是结构性波动的有噪声代理：大波动不一定有新闻，小波动一定没有，
	// 这样新闻保持稀疏、有信息量，而不是连续背景噪音。
	NewsChance = 0.5
)

var positiveHeadlines = []string{
	"Breaking poll puts YES side firmly ahead",
	"Large buyer steps into the market",
	"Analysts revise odds sharply upward",
	"Favorable ruling reported by major outlet",
}

var negativeHeadlines = []string{
	"Key backer walks away unexpectedly",
	"Negative headline triggers broad selloff",
	"Analysts revise odds sharply downward",
	"Unfavorable ruling reported by major outlet",
}

// SynthesizeNews 扫描 z-score 化的动量，概率性生成新闻事件。
// 只考察内部点（跳过首尾），输出按 T 升序（跟随点序），生成后不再修改。
func SynthesizeNews(points []domain.Point, stats domain.MomentumStats, rng Rand) []domain.NewsEvent {
	var events []domain.NewsEvent

	for i := 1; i < len(points)-1; i++ {
		p := points[i]
		z := (p.Momentum - stats.Mean) / stats.Std
		absZ := math.Abs(z)

		if absZ <= NewsZThreshold || rng.Float64() >= NewsChance {
			continue
		}

		relevance := marketmath.Clamp(0.4+(absZ-NewsZThreshold)*0.4+rng.Float64()*0.2, 0, 1)

		polarity := domain.PolarityPositive
		pool := positiveHeadlines
		if z <= 0 {
			polarity = domain.PolarityNegative
			pool = negativeHeadlines
		}

		events = append(events, domain.NewsEvent{
			T:         p.T,
			Index:     p.Index,
			Relevance: relevance,
			Polarity:  polarity,
			Headline:  pickHeadline(pool, rng),
		})
	}

	return events
}

// pickHeadline 从标题池中均匀抽取一条。
func pickHeadline(pool []string, rng Rand) string {
	idx := int(rng.Float64() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}
