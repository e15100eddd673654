package utils

import "math"

// Epsilon protege os denominadores das razões contra divisão por zero
const Epsilon = 1e-6

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda metade para longe do zero (2.5 -> 3, -2.5 -> -3)
func RoundToInt(f float64) int {
	return int(math.Round(f))
}

// Ratio divide com o denominador protegido por Epsilon
func Ratio(numerator, denominator float64) float64 {
	return numerator / (denominator + Epsilon)
}

// Finite troca NaN e infinitos por zero
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
