package domain

import "math"

// RegimeShift 一次性的漂移调整：模拟时间越过 TriggerTime 时给累计 drift 加上 DriftDelta。
type RegimeShift struct {
	TriggerTime float64 `json:"triggerTime"` // 触发时间（模拟时间单位）
	DriftDelta  float64 `json:"driftDelta"`  // 漂移增量（可正可负）
}

// RegimeSchedule 按触发时间排列的 regime 计划，构造后固定。
// 不变式：单次运行中每个 regime 至多触发一次。
type RegimeSchedule []RegimeShift

// DefaultRegimeSchedule 默认的三段 regime 计划。
func DefaultRegimeSchedule() RegimeSchedule {
	return RegimeSchedule{
		{TriggerTime: 20, DriftDelta: 0.02},
		{TriggerTime: 45, DriftDelta: -0.03},
		{TriggerTime: 70, DriftDelta: 0.025},
	}
}

// Crossing 判断时间 t 是否落在触发窗口内（|t - trigger| <= dt/2）。
func (r RegimeShift) Crossing(t, dt float64) bool {
	return math.Abs(t-r.TriggerTime) <= dt/2
}
