package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 22.86, CalculateBMI(175, 70), 0.001)
	assert.InDelta(t, 24.49, CalculateBMI(140, 48), 0.001)
	assert.Zero(t, CalculateBMI(0, 70))
	assert.Zero(t, CalculateBMI(175, 0))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class III", BMICategory(42.0))
}

func TestDailyCalories(t *testing.T) {
	// male, 70kg, 175cm, 30y: BMR = 700 + 1093.75 - 150 + 5 = 1648.75
	assert.Equal(t, 2555, DailyCalories(70, 175, 30, "male", "moderate"))
	// female subtracts 161 instead of adding 5
	assert.Equal(t, 2298, DailyCalories(70, 175, 30, "female", "moderate"))
	// result is truncated, not rounded: 1648.75 * 1.9 = 3132.625
	assert.Equal(t, 3132, DailyCalories(70, 175, 30, "male", "very_active"))
	// unknown activity level defaults to sedentary
	assert.Equal(t, DailyCalories(70, 175, 30, "male", "sedentary"),
		DailyCalories(70, 175, 30, "male", "unknown"))
}
