package signal

import (
	"math"

	"github.com/betbot/marketsim/internal/domain"
	"github.com/betbot/marketsim/internal/risk"
)

// 决策状态机常量。
const (
	// TradeThreshold 开仓/持仓的信号分阈值。
	// 注意与展示层的动量阈值线区分：那条线是 TradeThreshold 按 MomentumScale
	// 重新缩放后的显示量，不参与决策。
	TradeThreshold = 0.35

	// HighConviction 加仓所需的高确信阈值。
	HighConviction = 0.7

	// ExitRelaxation 离场松弛系数：信号分跌破 TradeThreshold*ExitRelaxation 时强制离场。
	ExitRelaxation = 0.6

	// EntryCoeff / ScaleCoeff 开仓、加仓的仓位步进系数。
	EntryCoeff = 0.35
	ScaleCoeff = EntryCoeff * HighConviction

	// HoldDecay 持仓时仓位向零缓慢衰减；ExitDecay 离场时快速减仓（不是瞬间清零）。
	HoldDecay = 0.995
	ExitDecay = 0.3
)

// Decide 纯转移函数：由当前信号分和仓位得出决策。
// 风控优先：信号分跌破离场线且有仓位时，无条件 exit。
func Decide(signalScore, positionSize float64) domain.Decision {
	if signalScore > TradeThreshold {
		if positionSize == 0 {
			return domain.DecisionEnter
		}
		if signalScore > HighConviction && math.Abs(positionSize) < risk.MaxPosition {
			return domain.DecisionScale
		}
		return domain.DecisionHold
	}
	if signalScore < TradeThreshold*ExitRelaxation && positionSize != 0 {
		return domain.DecisionExit
	}
	return domain.DecisionObserve
}

// Apply 按决策更新仓位。
// direction 取自原始动量 z-score 的符号（z>=0 做多），不是信号分：
// 纯新闻驱动、动量接近零的信号仍会从近乎随意的 z 符号取方向，属已知敏感点。
func Apply(decision domain.Decision, signalScore, z, positionSize float64) float64 {
	direction := 1.0
	if z < 0 {
		direction = -1.0
	}

	switch decision {
	case domain.DecisionEnter:
		return risk.ClampPosition(positionSize + signalScore*EntryCoeff*direction)
	case domain.DecisionScale:
		return risk.ClampPosition(positionSize + signalScore*ScaleCoeff*direction)
	case domain.DecisionHold:
		return positionSize * HoldDecay
	case domain.DecisionExit:
		return positionSize * ExitDecay
	default:
		return positionSize
	}
}

// Transition 组合转移：(signalScore, z, positionSize) -> (decision, newPositionSize)。
func Transition(signalScore, z, positionSize float64) (domain.Decision, float64) {
	decision := Decide(signalScore, positionSize)
	return decision, Apply(decision, signalScore, z, positionSize)
}
