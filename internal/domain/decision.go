package domain

// Decision 交易决策状态
type Decision string

const (
	DecisionObserve Decision = "observe" // 观望（不记录）
	DecisionEnter   Decision = "enter"   // 空仓开仓
	DecisionScale   Decision = "scale"   // 高确信加仓
	DecisionHold    Decision = "hold"    // 持仓（缓慢衰减）
	DecisionExit    Decision = "exit"    // 风控离场（快速减仓）
)

// IsActionable 是否为需要记录的决策（observe 之外都记录）
func (d Decision) IsActionable() bool {
	return d != DecisionObserve && d != ""
}

// DecisionRecord 决策日志条目。
// 只在 decision != observe 时追加，按时间升序，append-only。
// PositionSize 为该决策执行之后的仓位。
type DecisionRecord struct {
	T             float64  `json:"t"`             // 决策时间
	Index         int      `json:"index"`         // 对应采样点下标
	Prob          float64  `json:"prob"`          // 决策时的市场概率
	Decision      Decision `json:"decision"`      // 决策类型
	SignalScore   float64  `json:"signalScore"`   // 触发决策的信号分
	NewsRelevance float64  `json:"newsRelevance"` // 决策时的新闻相关度
	Momentum      float64  `json:"momentum"`      // 决策时的动量
	PositionSize  float64  `json:"positionSize"`  // 决策后的仓位
}
