package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PhoneNumber string `gorm:"uniqueIndex;not null"`
	Email       string
	Password    string `gorm:"not null"`
	FirstName   string
	LastName    string
	IsActive    bool `gorm:"default:true"`
	IsStaff     bool

	Profile  *UserProfile      `gorm:"constraint:OnDelete:CASCADE"`
	Workouts []WorkoutSchedule `gorm:"constraint:OnDelete:CASCADE"`
	Meals    []MealPlan        `gorm:"constraint:OnDelete:CASCADE"`
	Progress []DailyProgress   `gorm:"constraint:OnDelete:CASCADE"`
	Goals    []GoalTracking    `gorm:"constraint:OnDelete:CASCADE"`
}

// DisplayName prefers the first name, falling back to the phone number.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.PhoneNumber
}
