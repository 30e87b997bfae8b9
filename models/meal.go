package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack1    = "snack1"
	MealSnack2    = "snack2"
	MealSnack3    = "snack3"
)

// MealTypeDisplay maps stored meal types to their display labels.
var MealTypeDisplay = map[string]string{
	MealBreakfast: "Breakfast",
	MealLunch:     "Lunch",
	MealDinner:    "Dinner",
	MealSnack1:    "Morning Snack",
	MealSnack2:    "Afternoon Snack",
	MealSnack3:    "Evening Snack",
}

// ValidMealType reports whether t is one of the fixed meal types.
func ValidMealType(t string) bool {
	_, ok := MealTypeDisplay[t]
	return ok
}

// MealPlan is one planned meal on a user's calendar.
type MealPlan struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	MealType      string    `gorm:"not null"`
	ScheduledDate time.Time `gorm:"type:date;index;not null"`
	ScheduledTime string    `gorm:"type:varchar(5);not null"`
	MealName      string    `gorm:"not null"`
	Calories      int
	Protein       float64 // grams
	Carbs         float64 // grams
	Fats          float64 // grams
	IsConsumed    bool
	Notes         string
}

func (m *MealPlan) MealTypeDisplay() string { return MealTypeDisplay[m.MealType] }
