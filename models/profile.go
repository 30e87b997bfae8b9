package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// GenderDisplay maps stored gender values to their display labels.
var GenderDisplay = map[string]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

// ActivityLevelDisplay maps stored activity levels to their display labels.
var ActivityLevelDisplay = map[string]string{
	"sedentary":   "Sedentary (little to no exercise)",
	"light":       "Light (light exercise 1-3 days/week)",
	"moderate":    "Moderate (moderate exercise 3-5 days/week)",
	"active":      "Active (heavy exercise 6-7 days/week)",
	"very_active": "Very Active (very heavy exercise, physical job)",
}

// FitnessGoalDisplay maps stored fitness goals to their display labels.
var FitnessGoalDisplay = map[string]string{
	"weight_loss":     "Weight Loss",
	"muscle_gain":     "Muscle Gain",
	"maintenance":     "Weight Maintenance",
	"endurance":       "Improve Endurance",
	"strength":        "Build Strength",
	"general_fitness": "General Fitness",
}

// UserProfile holds the health and fitness attributes of one user.
// Numeric fields are pointers so an unfilled form field stays NULL
// instead of a misleading zero.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Address string
	DOB     *time.Time `gorm:"type:date"`
	Gender  string

	Height            *float64 // cm
	Weight            *float64 // kg
	BodyFatPercentage *float64

	FitnessGoal   string
	ActivityLevel string
	TargetWeight  *float64 // kg

	MedicalConditions string
	Medications       string
	Allergies         string

	PreferredExerciseTypes string
	AvailableEquipment     string
	WorkoutDuration        *int // minutes per session
	WorkoutFrequency       *int // days per week

	DietaryRestrictions string
	MealPreferences     string
}

// BMI returns weight/height² rounded to two decimals, or nil when either
// measurement is missing.
func (p *UserProfile) BMI() *float64 {
	if p.Height == nil || p.Weight == nil || *p.Height <= 0 {
		return nil
	}
	h := *p.Height / 100.0
	bmi := math.Round(*p.Weight/(h*h)*100) / 100
	return &bmi
}

// Age returns whole years since the date of birth, or nil when it is unset.
func (p *UserProfile) Age() *int {
	if p.DOB == nil {
		return nil
	}
	now := time.Now()
	age := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() ||
		(now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		age--
	}
	return &age
}

func (p *UserProfile) GenderDisplay() string        { return GenderDisplay[p.Gender] }
func (p *UserProfile) FitnessGoalDisplay() string   { return FitnessGoalDisplay[p.FitnessGoal] }
func (p *UserProfile) ActivityLevelDisplay() string { return ActivityLevelDisplay[p.ActivityLevel] }
