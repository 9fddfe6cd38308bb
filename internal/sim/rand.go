package sim

import (
	"math/rand"
	"time"
)

// Rand 模拟用随机源。
//
// 说明：
// - 生成管线只消费 [0,1) 均匀分布，故接口只要求 Float64；
// - 注入固定序列的实现即可得到逐位一致的可复现输出（测试依赖这一点）。
type Rand interface {
	Float64() float64
}

// NewRand 返回给定种子的随机源。
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRand 返回以当前时间为种子的随机源（未显式指定种子时使用）。
func NewTimeRand() Rand {
	return NewRand(time.Now().UnixNano())
}
