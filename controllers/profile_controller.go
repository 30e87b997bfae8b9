package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func (pc *ProfileController) ShowProfile(c *gin.Context) {
	profile, err := pc.Profiles.Get(middlewares.UserID(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{"Profile": profile})
}

func (pc *ProfileController) SaveProfile(c *gin.Context) {
	userID := middlewares.UserID(c)

	form := profileForm{c: c}
	in := services.ProfileInput{
		Address:                c.PostForm("address"),
		DOB:                    form.date("dob"),
		Gender:                 c.PostForm("gender"),
		Height:                 form.float("height"),
		Weight:                 form.float("weight"),
		BodyFatPercentage:      form.float("body_fat_percentage"),
		FitnessGoal:            c.PostForm("fitness_goal"),
		ActivityLevel:          c.PostForm("activity_level"),
		TargetWeight:           form.float("target_weight"),
		MedicalConditions:      c.PostForm("medical_conditions"),
		Medications:            c.PostForm("medications"),
		Allergies:              c.PostForm("allergies"),
		PreferredExerciseTypes: c.PostForm("preferred_exercise_types"),
		AvailableEquipment:     c.PostForm("available_equipment"),
		WorkoutDuration:        form.int("workout_duration"),
		WorkoutFrequency:       form.int("workout_frequency"),
		DietaryRestrictions:    c.PostForm("dietary_restrictions"),
		MealPreferences:        c.PostForm("meal_preferences"),
	}
	if form.err != nil {
		stored, _ := pc.Profiles.Get(userID)
		c.HTML(http.StatusBadRequest, "profile.html", gin.H{"Error": form.err.Error(), "Profile": stored})
		return
	}

	profile, err := pc.Profiles.Upsert(userID, in)
	if err != nil {
		status := http.StatusInternalServerError
		msg := err.Error()
		if errors.Is(err, services.ErrOutOfRange) {
			status = http.StatusBadRequest
			msg = "Height must be 50-300 cm, weight 20-500 kg and body fat 0-100%."
		}
		c.HTML(status, "profile.html", gin.H{"Error": msg, "Profile": profile})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{"Message": "Profile updated successfully!", "Profile": profile})
}

// GetProfileAPI / UpdateProfileAPI serve the mobile client.
func (pc *ProfileController) GetProfileAPI(c *gin.Context) {
	profile, err := pc.Profiles.Get(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateProfileAPI(c *gin.Context) {
	var body struct {
		Address                string   `json:"address"`
		DOB                    string   `json:"dob"`
		Gender                 string   `json:"gender"`
		Height                 *float64 `json:"height"`
		Weight                 *float64 `json:"weight"`
		BodyFatPercentage      *float64 `json:"body_fat_percentage"`
		FitnessGoal            string   `json:"fitness_goal"`
		ActivityLevel          string   `json:"activity_level"`
		TargetWeight           *float64 `json:"target_weight"`
		MedicalConditions      string   `json:"medical_conditions"`
		Medications            string   `json:"medications"`
		Allergies              string   `json:"allergies"`
		PreferredExerciseTypes string   `json:"preferred_exercise_types"`
		AvailableEquipment     string   `json:"available_equipment"`
		WorkoutDuration        *int     `json:"workout_duration"`
		WorkoutFrequency       *int     `json:"workout_frequency"`
		DietaryRestrictions    string   `json:"dietary_restrictions"`
		MealPreferences        string   `json:"meal_preferences"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := parseDate(body.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
		return
	}

	profile, err := pc.Profiles.Upsert(middlewares.UserID(c), services.ProfileInput{
		Address:                body.Address,
		DOB:                    dob,
		Gender:                 body.Gender,
		Height:                 body.Height,
		Weight:                 body.Weight,
		BodyFatPercentage:      body.BodyFatPercentage,
		FitnessGoal:            body.FitnessGoal,
		ActivityLevel:          body.ActivityLevel,
		TargetWeight:           body.TargetWeight,
		MedicalConditions:      body.MedicalConditions,
		Medications:            body.Medications,
		Allergies:              body.Allergies,
		PreferredExerciseTypes: body.PreferredExerciseTypes,
		AvailableEquipment:     body.AvailableEquipment,
		WorkoutDuration:        body.WorkoutDuration,
		WorkoutFrequency:       body.WorkoutFrequency,
		DietaryRestrictions:    body.DietaryRestrictions,
		MealPreferences:        body.MealPreferences,
	})
	if err != nil {
		if errors.Is(err, services.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// profileForm parses optional numeric and date fields from the POSTed
// form, recording the first malformed value instead of dropping it.
type profileForm struct {
	c   *gin.Context
	err error
}

func (f *profileForm) fail(name string) {
	if f.err == nil {
		f.err = fmt.Errorf("Invalid value for %s.", strings.ReplaceAll(name, "_", " "))
	}
}

func (f *profileForm) float(name string) *float64 {
	s := f.c.PostForm(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.fail(name)
		return nil
	}
	return &v
}

func (f *profileForm) int(name string) *int {
	s := f.c.PostForm(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f.fail(name)
		return nil
	}
	return &v
}

func (f *profileForm) date(name string) *time.Time {
	t, err := parseDate(f.c.PostForm(name))
	if err != nil {
		f.fail(name)
		return nil
	}
	return t
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
