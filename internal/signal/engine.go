package signal

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/internal/risk"
	"github.com/betbot/marketsim/pkg/marketmath"
)

var log = logrus.WithField("module", "signal")

// 信号分合成常量。
const (
	// RelevanceWindow 新闻生效的时间窗口（模拟时间单位）。
	RelevanceWindow = 6.0

	// momentumDeadZone / momentumSpan 动量分量的死区与归一化跨度：
	// momentumComponent = clamp((|z|-0.4)/2.4, 0, 1)。
	momentumDeadZone = 0.4
	momentumSpan     = 2.4

	// momentumWeight / newsWeight 信号分中动量与新闻的混合权重。
	momentumWeight = 0.6
	newsWeight     = 0.4
)

// Enrich 对整条路径做信号富化与决策（最后一遍，单向前扫）。
//
// 原地写回 points 的派生字段，返回过滤后的决策日志（只含 observe 之外的决策）。
//
// 说明：
// - news 游标只前进不回退，依赖 points 和 news 都按时间升序；
// - hasRecentNews 指“最近一条不晚于当前时间的新闻”落在 |Δt| < RelevanceWindow 内。
func Enrich(points []domain.Point, news []domain.NewsEvent, stats domain.MomentumStats) []domain.DecisionRecord {
	var records []domain.DecisionRecord

	newsIdx := -1
	position := 0.0

	for i := range points {
		p := &points[i]

		z := (p.Momentum - stats.Mean) / stats.Std
		p.Z = z
		p.AbsZ = math.Abs(z)

		// 推进游标到“最近一条不晚于当前时间”的新闻
		for newsIdx+1 < len(news) && news[newsIdx+1].T <= p.T {
			newsIdx++
		}

		relevance := 0.0
		polarity := domain.PolarityNeutral
		if newsIdx >= 0 && math.Abs(news[newsIdx].T-p.T) < RelevanceWindow {
			relevance = news[newsIdx].Relevance
			polarity = news[newsIdx].Polarity
		}

		momentumComponent := marketmath.Clamp((p.AbsZ-momentumDeadZone)/momentumSpan, 0, 1)
		score := marketmath.Clamp(momentumWeight*momentumComponent+newsWeight*relevance, 0, 1)

		decision, newPosition := Transition(score, z, position)
		position = newPosition

		p.NewsRelevance = relevance
		p.NewsPolarity = polarity
		p.SignalScore = score
		p.TradeThreshold = TradeThreshold
		p.PositionSize = position
		p.RiskUtilization = risk.Utilization(position)
		p.Decision = decision

		if decision.IsActionable() {
			records = append(records, domain.DecisionRecord{
				T:             p.T,
				Index:         p.Index,
				Prob:          p.Prob,
				Decision:      decision,
				SignalScore:   score,
				NewsRelevance: relevance,
				Momentum:      p.Momentum,
				PositionSize:  position,
			})
		}
	}

	log.Debugf("信号富化完成: points=%d news=%d decisions=%d", len(points), len(news), len(records))
	return records
}
