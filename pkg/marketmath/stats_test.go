package marketmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, -1, 1); got != 1 {
		t.Fatalf("Clamp(1.5) got=%v want=1", got)
	}
	if got := Clamp(-1.5, -1, 1); got != -1 {
		t.Fatalf("Clamp(-1.5) got=%v want=-1", got)
	}
	if got := Clamp(0.3, -1, 1); got != 0.3 {
		t.Fatalf("Clamp(0.3) got=%v want=0.3", got)
	}
}

func TestMeanAndPopStd(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Mean(values)
	if mean != 5 {
		t.Fatalf("Mean got=%v want=5", mean)
	}
	// 总体标准差（除以 N）：经典例子，恰好为 2
	std := PopStd(values, mean)
	if math.Abs(std-2) > 1e-12 {
		t.Fatalf("PopStd got=%v want=2", std)
	}
}

func TestMeanEmpty(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil) got=%v want=0", got)
	}
	if got := PopStd(nil, 0); got != 0 {
		t.Fatalf("PopStd(nil) got=%v want=0", got)
	}
}

func TestMaxAbs(t *testing.T) {
	values := []float64{0.1, -0.7, 0.3}
	if got := MaxAbs(values); got != 0.7 {
		t.Fatalf("MaxAbs got=%v want=0.7", got)
	}
	if got := MaxAbs(nil); got != 0 {
		t.Fatalf("MaxAbs(nil) got=%v want=0", got)
	}
}
