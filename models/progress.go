package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress records one day of metrics for one user. The unique index
// is scoped to the user; a global unique date would lock all accounts to a
// single row per calendar day.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_progress_user_date;not null"`
	Date   time.Time `gorm:"type:date;uniqueIndex:idx_progress_user_date;not null"`

	Weight             *float64 // kg
	CaloriesConsumed   int
	CaloriesBurned     int
	WaterIntakeGlasses int
	StepsTaken         int
	MoodRating         *int // 1-10
	Notes              string
}
