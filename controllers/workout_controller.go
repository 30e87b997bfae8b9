package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/models"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Schedule *services.ScheduleService
}

type workoutBody struct {
	WorkoutName     string `json:"workout_name" binding:"required"`
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
	ScheduledTime   string `json:"scheduled_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	WorkoutType     string `json:"workout_type"`
	Notes           string `json:"notes"`
}

func (b *workoutBody) toModel(userID uint) (*models.WorkoutSchedule, error) {
	date, err := time.ParseInLocation("2006-01-02", b.ScheduledDate, time.Local)
	if err != nil {
		return nil, err
	}
	return &models.WorkoutSchedule{
		UserID:          userID,
		WorkoutName:     b.WorkoutName,
		ScheduledDate:   date,
		ScheduledTime:   b.ScheduledTime,
		DurationMinutes: b.DurationMinutes,
		WorkoutType:     b.WorkoutType,
		Notes:           b.Notes,
	}, nil
}

func (wc *WorkoutController) List(c *gin.Context) {
	userID := middlewares.UserID(c)

	if date := c.Query("date"); date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		workouts, err := wc.Schedule.ListWorkoutsByDate(userID, d)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, workouts)
		return
	}

	workouts, err := wc.Schedule.ListWorkouts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (wc *WorkoutController) Create(c *gin.Context) {
	var body workoutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := body.toModel(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err := wc.Schedule.CreateWorkout(workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (wc *WorkoutController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body workoutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := body.toModel(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err := wc.Schedule.UpdateWorkout(middlewares.UserID(c), id, workout); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout updated"})
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := wc.Schedule.DeleteWorkout(middlewares.UserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

func (wc *WorkoutController) MarkComplete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := wc.Schedule.MarkWorkoutCompleted(middlewares.UserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout completed"})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
