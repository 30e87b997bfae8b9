package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutSchedule is one planned workout on a user's calendar.
// ScheduledTime is kept as "HH:MM" so lexical order matches clock order.
type WorkoutSchedule struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	WorkoutName     string    `gorm:"not null"`
	ScheduledDate   time.Time `gorm:"type:date;index;not null"`
	ScheduledTime   string    `gorm:"type:varchar(5);not null"`
	DurationMinutes int
	WorkoutType     string
	IsCompleted     bool
	Notes           string
}
