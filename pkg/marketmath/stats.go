package marketmath

import "math"

// Clamp 把 v 限制到 [lo, hi]。
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mean 算术平均值。空序列返回 0。
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopStd 总体标准差（除以 N，不是 N-1）。空序列返回 0。
func PopStd(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// MaxAbs 序列中绝对值的最大值。空序列返回 0。
func MaxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
