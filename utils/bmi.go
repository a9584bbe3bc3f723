package utils

import "math"

const BMICategoryUnknown = "Insufficient data"

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to one decimal. Returns false when either
// measurement is missing or non-positive.
func CalculateBMI(heightCm, weightKg *float64) (float64, bool) {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 || *weightKg <= 0 {
		return 0, false
	}

	h := *heightCm / 100.0 // to meters
	bmi := *weightKg / (h * h)
	return math.Round(bmi*10) / 10, true
}

func BMICategory(heightCm, weightKg *float64) string {
	bmi, ok := CalculateBMI(heightCm, weightKg)
	if !ok {
		return BMICategoryUnknown
	}
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
