package domain

// Point 模拟序列中的单个采样点。
//
// 生命周期分两个阶段：
// - 路径生成阶段填充 Index/T/Prob/Momentum/RawChange；
// - 信号富化阶段（全局统计量就绪后）原地补齐其余派生字段。
// 富化完成后该点视为不可变，消费方只读。
type Point struct {
	Index     int     `json:"index"`     // 序列下标
	T         float64 `json:"t"`         // 模拟时间（0..100）
	Prob      float64 `json:"prob"`      // 市场概率，始终在 [0.04, 0.96]
	Momentum  float64 `json:"momentum"`  // 离散动量 = rawChange/dt（index 0 为 0）
	RawChange float64 `json:"rawChange"` // 相邻两点的概率差（clamp 之后）

	// 以下字段由信号富化阶段填充
	Z               float64  `json:"z"`               // 动量 z-score
	AbsZ            float64  `json:"absZ"`            // |z|
	NewsRelevance   float64  `json:"newsRelevance"`   // 附近新闻相关度（无新闻为 0）
	NewsPolarity    Polarity `json:"newsPolarity"`    // 附近新闻极性（无新闻为 neutral）
	SignalScore     float64  `json:"signalScore"`     // 综合信号分，[0,1]
	TradeThreshold  float64  `json:"tradeThreshold"`  // 交易阈值常量（随点记录，供展示层使用）
	PositionSize    float64  `json:"positionSize"`    // 决策后仓位，[-1,1]
	RiskUtilization int      `json:"riskUtilization"` // 风险占用百分比，[0,100]
	Decision        Decision `json:"decision"`        // 该点的决策
}
