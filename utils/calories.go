package utils

import "math"

const (
	// DefaultDailyTarget is used whenever the profile is missing height or
	// weight. Target computation never fails on an incomplete profile.
	DefaultDailyTarget = 2000

	// The profile carries no age field; the estimate assumes 30 years.
	assumedAge = 30
)

var activityFactors = map[string]float64{
	"Sedentary":   1.2,
	"Light":       1.375,
	"Moderate":    1.55,
	"Active":      1.725,
	"Very Active": 1.9,
}

// DailyCalorieTarget estimates total daily energy expenditure with the
// Harris-Benedict equation, scaled by the activity factor and rounded to the
// nearest kcal. An unknown activity level falls back to Moderate.
func DailyCalorieTarget(weightKg, heightCm *float64, gender, activityLevel string) int {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return DefaultDailyTarget
	}

	var bmr float64
	if gender == "Male" {
		bmr = 88.362 + 13.397*(*weightKg) + 4.799*(*heightCm) - 5.677*assumedAge
	} else {
		bmr = 447.593 + 9.247*(*weightKg) + 3.098*(*heightCm) - 4.330*assumedAge
	}

	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors["Moderate"]
	}

	return int(math.Round(bmr * factor))
}
