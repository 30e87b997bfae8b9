package models

import (
	"time"

	"gorm.io/gorm"
)

// GoalTypeDisplay maps stored goal types to their display labels.
var GoalTypeDisplay = map[string]string{
	"weight_loss": "Weight Loss",
	"muscle_gain": "Muscle Gain",
	"endurance":   "Endurance",
	"strength":    "Strength",
	"flexibility": "Flexibility",
	"nutrition":   "Nutrition",
}

// ValidGoalType reports whether t is one of the fixed goal types.
func ValidGoalType(t string) bool {
	_, ok := GoalTypeDisplay[t]
	return ok
}

// GoalTracking is a longer-term target a user works toward.
type GoalTracking struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	GoalType     string `gorm:"not null"`
	GoalTitle    string `gorm:"not null"`
	TargetValue  float64
	CurrentValue float64
	TargetDate   time.Time `gorm:"type:date;not null"`
	IsAchieved   bool
}

func (g *GoalTracking) GoalTypeDisplay() string { return GoalTypeDisplay[g.GoalType] }
