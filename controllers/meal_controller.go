package controllers

import (
	"net/http"
	"time"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/models"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Schedule *services.ScheduleService
}

type mealBody struct {
	MealType      string  `json:"meal_type" binding:"required"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	ScheduledTime string  `json:"scheduled_time" binding:"required"`
	MealName      string  `json:"meal_name" binding:"required"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
	Notes         string  `json:"notes"`
}

func (b *mealBody) toModel(userID uint) (*models.MealPlan, error) {
	date, err := time.ParseInLocation("2006-01-02", b.ScheduledDate, time.Local)
	if err != nil {
		return nil, err
	}
	return &models.MealPlan{
		UserID:        userID,
		MealType:      b.MealType,
		ScheduledDate: date,
		ScheduledTime: b.ScheduledTime,
		MealName:      b.MealName,
		Calories:      b.Calories,
		Protein:       b.Protein,
		Carbs:         b.Carbs,
		Fats:          b.Fats,
		Notes:         b.Notes,
	}, nil
}

func (mc *MealController) List(c *gin.Context) {
	userID := middlewares.UserID(c)

	if date := c.Query("date"); date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		meals, err := mc.Schedule.ListMealsByDate(userID, d)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mc.Schedule.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) Create(c *gin.Context) {
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := body.toModel(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err := mc.Schedule.CreateMeal(meal); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := body.toModel(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	if err := mc.Schedule.UpdateMeal(middlewares.UserID(c), id, meal); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal updated"})
}

func (mc *MealController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.Schedule.DeleteMeal(middlewares.UserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func (mc *MealController) MarkConsumed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.Schedule.MarkMealConsumed(middlewares.UserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal consumed"})
}
