package controllers

import (
	"net/http"
	"time"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/models"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
	Goals    *services.GoalService
}

func (pc *ProgressController) ListProgress(c *gin.Context) {
	records, err := pc.Progress.List(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// UpdateProgress upserts today's record, or the record for the given date.
func (pc *ProgressController) UpdateProgress(c *gin.Context) {
	var body struct {
		Date               string   `json:"date"`
		Weight             *float64 `json:"weight"`
		CaloriesConsumed   int      `json:"calories_consumed"`
		CaloriesBurned     int      `json:"calories_burned"`
		WaterIntakeGlasses int      `json:"water_intake_glasses"`
		StepsTaken         int      `json:"steps_taken"`
		MoodRating         *int     `json:"mood_rating"`
		Notes              string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if body.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = parsed
	}

	record, err := pc.Progress.Upsert(middlewares.UserID(c), date, models.DailyProgress{
		Weight:             body.Weight,
		CaloriesConsumed:   body.CaloriesConsumed,
		CaloriesBurned:     body.CaloriesBurned,
		WaterIntakeGlasses: body.WaterIntakeGlasses,
		StepsTaken:         body.StepsTaken,
		MoodRating:         body.MoodRating,
		Notes:              body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type goalBody struct {
	GoalType     string  `json:"goal_type" binding:"required"`
	GoalTitle    string  `json:"goal_title" binding:"required"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	TargetDate   string  `json:"target_date" binding:"required"`
	IsAchieved   bool    `json:"is_achieved"`
}

func (pc *ProgressController) ListGoals(c *gin.Context) {
	userID := middlewares.UserID(c)

	var (
		goals []models.GoalTracking
		err   error
	)
	if c.Query("active") == "true" {
		goals, err = pc.Goals.ListActive(userID)
	} else {
		goals, err = pc.Goals.List(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (pc *ProgressController) CreateGoal(c *gin.Context) {
	var body goalBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.ParseInLocation("2006-01-02", body.TargetDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date"})
		return
	}

	goal := models.GoalTracking{
		UserID:       middlewares.UserID(c),
		GoalType:     body.GoalType,
		GoalTitle:    body.GoalTitle,
		TargetValue:  body.TargetValue,
		CurrentValue: body.CurrentValue,
		TargetDate:   targetDate,
	}
	if err := pc.Goals.Create(&goal); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (pc *ProgressController) UpdateGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body goalBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.ParseInLocation("2006-01-02", body.TargetDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date"})
		return
	}

	goal := models.GoalTracking{
		GoalType:     body.GoalType,
		GoalTitle:    body.GoalTitle,
		TargetValue:  body.TargetValue,
		CurrentValue: body.CurrentValue,
		TargetDate:   targetDate,
		IsAchieved:   body.IsAchieved,
	}
	if err := pc.Goals.Update(middlewares.UserID(c), id, &goal); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal updated"})
}
