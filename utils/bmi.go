package utils

import "math"

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the BMI rounded to two decimals.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*100) / 100
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// activityMultipliers scale BMR to total daily energy expenditure.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// DailyCalories estimates daily calorie need with the Mifflin-St Jeor
// equation scaled by activity level. The result is truncated to whole
// calories. Unknown activity levels fall back to sedentary.
func DailyCalories(weightKg, heightCm float64, age int, gender, activityLevel string) int {
	var bmr float64
	if gender == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.2
	}
	return int(bmr * multiplier)
}
