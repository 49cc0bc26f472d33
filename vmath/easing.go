package vmath

// CubicOut eases t in [0, 1] fast then slow
func CubicOut(t float64) float64 {
	f := t - 1
	return f*f*f + 1
}

// QuadraticIn eases t in [0, 1] slow then fast
func QuadraticIn(t float64) float64 {
	return t * t
}

// Clamp01 bounds t to [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
