package domain

// MomentumStats 全序列动量统计量。
// 路径生成完成后做第二遍计算（z-score 归一化需要全局均值）。
type MomentumStats struct {
	Mean float64 `json:"mean"` // 算术平均
	Std  float64 `json:"std"`  // 总体标准差（除以 N），退化序列以 1e-6 下限代替
}
