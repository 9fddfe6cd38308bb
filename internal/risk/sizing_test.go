package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPosition(t *testing.T) {
	assert.Equal(t, 1.0, ClampPosition(1.7))
	assert.Equal(t, -1.0, ClampPosition(-2.3))
	assert.Equal(t, 0.42, ClampPosition(0.42))
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, 0, Utilization(0))
	assert.Equal(t, 100, Utilization(1.0))
	assert.Equal(t, 100, Utilization(-1.0))
	assert.Equal(t, 50, Utilization(0.5))
	// round 而不是截断
	assert.Equal(t, 35, Utilization(0.349))
	assert.Equal(t, 34, Utilization(0.344))
}

func TestUtilizationRange(t *testing.T) {
	for size := -1.0; size <= 1.0; size += 0.01 {
		u := Utilization(size)
		assert.GreaterOrEqual(t, u, 0)
		assert.LessOrEqual(t, u, 100)
	}
}
