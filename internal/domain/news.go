package domain

// Polarity 新闻极性
type Polarity string

const (
	PolarityPositive Polarity = "positive" // 利好
	PolarityNegative Polarity = "negative" // 利空
	PolarityNeutral  Polarity = "neutral"  // 无新闻/中性
)

// NewsEvent 合成新闻事件。
// 只在动量 z-score 异常的内部点上概率性生成，生成后不再修改，按 T 升序排列。
type NewsEvent struct {
	T         float64  `json:"t"`         // 事件时间（等于某个采样点的 T）
	Index     int      `json:"index"`     // 对应采样点下标
	Relevance float64  `json:"relevance"` // 相关度，[0,1]
	Polarity  Polarity `json:"polarity"`  // 极性（positive/negative）
	Headline  string   `json:"headline"`  // 标题（按极性从固定池中抽取）
}
