package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/betbot/marketsim/internal/domain"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		position float64
		want     domain.Decision
	}{
		{"空仓高信号开仓", 0.5, 0, domain.DecisionEnter},
		{"持仓高确信加仓", 0.8, 0.5, domain.DecisionScale},
		{"满仓不再加仓", 0.8, 1.0, domain.DecisionHold},
		{"空头满仓不再加仓", 0.8, -1.0, domain.DecisionHold},
		{"持仓中等信号持有", 0.5, 0.5, domain.DecisionHold},
		{"空头持仓也能加仓", 0.72, -0.6, domain.DecisionScale},
		{"持仓信号崩塌离场", 0.1, 0.5, domain.DecisionExit},
		{"空仓低信号观望", 0.1, 0, domain.DecisionObserve},
		{"持仓信号在离场线上方观望", 0.25, 0.4, domain.DecisionObserve},
		{"持仓信号跌破离场线", 0.2, 0.4, domain.DecisionExit},
		{"阈值本身不触发开仓", 0.35, 0, domain.DecisionObserve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.score, tt.position))
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		decision domain.Decision
		score    float64
		z        float64
		position float64
		want     float64
	}{
		{"开多仓", domain.DecisionEnter, 0.5, 1.0, 0, 0.5 * EntryCoeff},
		{"开空仓", domain.DecisionEnter, 0.5, -2.0, 0, -0.5 * EntryCoeff},
		{"z为零视为做多", domain.DecisionEnter, 0.5, 0, 0, 0.5 * EntryCoeff},
		{"加仓", domain.DecisionScale, 0.8, 1.0, 0.5, 0.5 + 0.8*ScaleCoeff},
		{"加仓触顶截断", domain.DecisionScale, 1.0, 1.0, 0.9, 1.0},
		{"空头加仓触底截断", domain.DecisionScale, 1.0, -1.0, -0.9, -1.0},
		{"持有缓慢衰减", domain.DecisionHold, 0.5, 1.0, 0.5, 0.5 * HoldDecay},
		{"离场快速减仓", domain.DecisionExit, 0.1, 1.0, 0.5, 0.5 * ExitDecay},
		{"观望仓位不变", domain.DecisionObserve, 0.2, 1.0, 0.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Apply(tt.decision, tt.score, tt.z, tt.position), 1e-12)
		})
	}
}

func TestTransition(t *testing.T) {
	decision, position := Transition(0.8, 1.0, 0.5)
	assert.Equal(t, domain.DecisionScale, decision)
	assert.InDelta(t, 0.5+0.8*ScaleCoeff, position, 1e-12)

	// 高确信但已持仓 => 加仓而不是重复开仓
	decision, _ = Transition(0.9, 1.0, 0.5)
	assert.NotEqual(t, domain.DecisionEnter, decision)
}
