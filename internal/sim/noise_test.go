package sim

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

// fixedRand 恒定返回同一个值的随机源（测试用）
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

// seqRand 按固定序列循环返回的随机源（测试用）
type seqRand struct {
	values []float64
	idx    int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.idx%len(r.values)]
	r.idx++
	return v
}

func TestNextNoiseMidpointIsIdentity(t *testing.T) {
	// uniform(-0.5,0.5) 的中点为 0，噪声原地不动
	rng := fixedRand{0.5}
	assert.Equal(t, 0.3, NextNoise(0.3, NoiseIntensity, rng))
	assert.Equal(t, 0.0, NextNoise(0, NoiseIntensity, rng))
	assert.Equal(t, -0.8, NextNoise(-0.8, NoiseIntensity, rng))
}

func TestNextNoiseClampsToBounds(t *testing.T) {
	assert.Equal(t, 1.0, NextNoise(0.95, 1.0, fixedRand{0.99}))
	assert.Equal(t, -1.0, NextNoise(-0.95, 1.0, fixedRand{0.01}))
}

// **Property: 噪声递推始终落在 [-1, 1]**
func TestPropertyNoiseBounded(t *testing.T) {
	rng := NewRand(7)
	property := func(prev float64) bool {
		if prev < -1 || prev > 1 {
			return true // 跳过无效输入
		}
		next := NextNoise(prev, NoiseIntensity, rng)
		return next >= -1 && next <= 1
	}
	if err := quick.Check(property, &quick.Config{MaxCount: 200}); err != nil {
		t.Errorf("属性测试失败: %v", err)
	}
}
