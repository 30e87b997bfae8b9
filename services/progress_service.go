package services

import (
	"errors"
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// GetByDate returns the user's progress record for the given day, or nil
// if nothing has been logged yet.
func (s *ProgressService) GetByDate(userID uint, date time.Time) (*models.DailyProgress, error) {
	var progress models.DailyProgress
	err := s.db.
		Where("user_id = ? AND date = ?", userID, DayStart(date)).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// Upsert writes the day's metrics, updating in place when a record for
// (user, date) already exists.
func (s *ProgressService) Upsert(userID uint, date time.Time, in models.DailyProgress) (*models.DailyProgress, error) {
	if in.MoodRating != nil && (*in.MoodRating < 1 || *in.MoodRating > 10) {
		return nil, ErrOutOfRange
	}

	day := DayStart(date)
	progress := models.DailyProgress{UserID: userID, Date: day}

	// Assign with a map so zero values (e.g. steps back to 0) overwrite
	// the stored row; a struct assign would skip them.
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(map[string]interface{}{
			"weight":               in.Weight,
			"calories_consumed":    in.CaloriesConsumed,
			"calories_burned":      in.CaloriesBurned,
			"water_intake_glasses": in.WaterIntakeGlasses,
			"steps_taken":          in.StepsTaken,
			"mood_rating":          in.MoodRating,
			"notes":                in.Notes,
		}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// List returns all progress records, most recent first.
func (s *ProgressService) List(userID uint) ([]models.DailyProgress, error) {
	var records []models.DailyProgress
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&records).Error
	return records, err
}

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Create(g *models.GoalTracking) error {
	if !models.ValidGoalType(g.GoalType) {
		return ErrOutOfRange
	}
	g.TargetDate = DayStart(g.TargetDate)
	return s.db.Create(g).Error
}

func (s *GoalService) Update(userID, goalID uint, g *models.GoalTracking) error {
	if !models.ValidGoalType(g.GoalType) {
		return ErrOutOfRange
	}
	res := s.db.Model(&models.GoalTracking{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(map[string]interface{}{
			"goal_type":     g.GoalType,
			"goal_title":    g.GoalTitle,
			"target_value":  g.TargetValue,
			"current_value": g.CurrentValue,
			"target_date":   DayStart(g.TargetDate),
			"is_achieved":   g.IsAchieved,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GoalService) List(userID uint) ([]models.GoalTracking, error) {
	var goals []models.GoalTracking
	err := s.db.
		Where("user_id = ?", userID).
		Order("target_date asc").
		Find(&goals).Error
	return goals, err
}

// ListActive returns goals not yet achieved whose target date has not
// passed, nearest deadline first.
func (s *GoalService) ListActive(userID uint) ([]models.GoalTracking, error) {
	var goals []models.GoalTracking
	err := s.db.
		Where("user_id = ? AND is_achieved = ? AND target_date >= ?", userID, false, DayStart(time.Now())).
		Order("target_date asc").
		Find(&goals).Error
	return goals, err
}
