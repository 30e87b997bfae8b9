package services

import (
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"

	"gorm.io/gorm"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// DayStart truncates t to local midnight. Dates compare equal when they
// fall on the same local calendar day.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func (s *ScheduleService) CreateWorkout(w *models.WorkoutSchedule) error {
	w.ScheduledDate = DayStart(w.ScheduledDate)
	return s.db.Create(w).Error
}

func (s *ScheduleService) CreateMeal(m *models.MealPlan) error {
	if !models.ValidMealType(m.MealType) {
		return ErrOutOfRange
	}
	m.ScheduledDate = DayStart(m.ScheduledDate)
	return s.db.Create(m).Error
}

func (s *ScheduleService) ListWorkoutsByDate(userID uint, date time.Time) ([]models.WorkoutSchedule, error) {
	var workouts []models.WorkoutSchedule
	err := s.db.
		Where("user_id = ? AND scheduled_date = ?", userID, DayStart(date)).
		Order("scheduled_time asc").
		Find(&workouts).Error
	return workouts, err
}

func (s *ScheduleService) ListWorkoutsByRange(userID uint, start, end time.Time) ([]models.WorkoutSchedule, error) {
	var workouts []models.WorkoutSchedule
	err := s.db.
		Where("user_id = ? AND scheduled_date BETWEEN ? AND ?", userID, DayStart(start), DayStart(end)).
		Order("scheduled_date asc, scheduled_time asc").
		Find(&workouts).Error
	return workouts, err
}

func (s *ScheduleService) ListMealsByDate(userID uint, date time.Time) ([]models.MealPlan, error) {
	var meals []models.MealPlan
	err := s.db.
		Where("user_id = ? AND scheduled_date = ?", userID, DayStart(date)).
		Order("scheduled_time asc").
		Find(&meals).Error
	return meals, err
}

func (s *ScheduleService) ListMealsByRange(userID uint, start, end time.Time) ([]models.MealPlan, error) {
	var meals []models.MealPlan
	err := s.db.
		Where("user_id = ? AND scheduled_date BETWEEN ? AND ?", userID, DayStart(start), DayStart(end)).
		Order("scheduled_date asc, scheduled_time asc").
		Find(&meals).Error
	return meals, err
}

func (s *ScheduleService) ListWorkouts(userID uint) ([]models.WorkoutSchedule, error) {
	var workouts []models.WorkoutSchedule
	err := s.db.
		Where("user_id = ?", userID).
		Order("scheduled_date asc, scheduled_time asc").
		Find(&workouts).Error
	return workouts, err
}

func (s *ScheduleService) ListMeals(userID uint) ([]models.MealPlan, error) {
	var meals []models.MealPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("scheduled_date asc, scheduled_time asc").
		Find(&meals).Error
	return meals, err
}

// MarkWorkoutCompleted flips the completion flag on the user's workout.
func (s *ScheduleService) MarkWorkoutCompleted(userID, workoutID uint) error {
	return s.setWorkoutFields(userID, workoutID, map[string]interface{}{"is_completed": true})
}

// MarkMealConsumed flips the consumed flag on the user's meal.
func (s *ScheduleService) MarkMealConsumed(userID, mealID uint) error {
	res := s.db.Model(&models.MealPlan{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Update("is_consumed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ScheduleService) UpdateWorkout(userID, workoutID uint, w *models.WorkoutSchedule) error {
	return s.setWorkoutFields(userID, workoutID, map[string]interface{}{
		"workout_name":     w.WorkoutName,
		"scheduled_date":   DayStart(w.ScheduledDate),
		"scheduled_time":   w.ScheduledTime,
		"duration_minutes": w.DurationMinutes,
		"workout_type":     w.WorkoutType,
		"notes":            w.Notes,
	})
}

func (s *ScheduleService) UpdateMeal(userID, mealID uint, m *models.MealPlan) error {
	if !models.ValidMealType(m.MealType) {
		return ErrOutOfRange
	}
	res := s.db.Model(&models.MealPlan{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]interface{}{
			"meal_type":      m.MealType,
			"scheduled_date": DayStart(m.ScheduledDate),
			"scheduled_time": m.ScheduledTime,
			"meal_name":      m.MealName,
			"calories":       m.Calories,
			"protein":        m.Protein,
			"carbs":          m.Carbs,
			"fats":           m.Fats,
			"notes":          m.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ScheduleService) DeleteWorkout(userID, workoutID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", workoutID, userID).Delete(&models.WorkoutSchedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ScheduleService) DeleteMeal(userID, mealID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ScheduleService) setWorkoutFields(userID, workoutID uint, fields map[string]interface{}) error {
	res := s.db.Model(&models.WorkoutSchedule{}).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
