package services

import (
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"
	"github.com/Prashant8008/Fitness-Ai/utils"

	"gorm.io/gorm"
)

// TrainerService assembles the dashboard and personal-trainer views from
// the schedule, progress and goal stores.
type TrainerService struct {
	profiles *ProfileService
	schedule *ScheduleService
	progress *ProgressService
	goals    *GoalService
}

func NewTrainerService(db *gorm.DB) *TrainerService {
	return &TrainerService{
		profiles: NewProfileService(db),
		schedule: NewScheduleService(db),
		progress: NewProgressService(db),
		goals:    NewGoalService(db),
	}
}

type DashboardData struct {
	Profile          *models.UserProfile
	TodayWorkouts    []models.WorkoutSchedule
	TodayMeals       []models.MealPlan
	TodayProgress    *models.DailyProgress
	ActiveGoals      []models.GoalTracking
	DailyCalories    int
	UpcomingWorkouts []models.WorkoutSchedule
	Today            time.Time
}

type TrainerData struct {
	Profile       *models.UserProfile
	TodayWorkouts []models.WorkoutSchedule
	TodayMeals    []models.MealPlan
	WeekWorkouts  []models.WorkoutSchedule
	WeekMeals     []models.MealPlan
	WeekDays      []time.Time
	Today         time.Time
	WeekStart     time.Time
	WeekEnd       time.Time
}

// WeekRange returns the Monday-start week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	day := DayStart(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// DailyCalorieNeed estimates the user's daily calorie target from their
// profile, or 0 when weight, height or age is missing.
func DailyCalorieNeed(profile *models.UserProfile) int {
	if profile == nil || profile.Weight == nil || profile.Height == nil {
		return 0
	}
	age := profile.Age()
	if age == nil {
		return 0
	}
	return utils.DailyCalories(*profile.Weight, *profile.Height, *age, profile.Gender, profile.ActivityLevel)
}

// Dashboard gathers today's schedule, progress, active goals, the
// estimated calorie need and a 7-day workout look-ahead.
func (s *TrainerService) Dashboard(userID uint) (*DashboardData, error) {
	today := DayStart(time.Now())

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return nil, err
	}
	todayWorkouts, err := s.schedule.ListWorkoutsByDate(userID, today)
	if err != nil {
		return nil, err
	}
	todayMeals, err := s.schedule.ListMealsByDate(userID, today)
	if err != nil {
		return nil, err
	}
	todayProgress, err := s.progress.GetByDate(userID, today)
	if err != nil {
		return nil, err
	}
	activeGoals, err := s.goals.ListActive(userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.schedule.ListWorkoutsByRange(userID, today, today.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Profile:          profile,
		TodayWorkouts:    todayWorkouts,
		TodayMeals:       todayMeals,
		TodayProgress:    todayProgress,
		ActiveGoals:      activeGoals,
		DailyCalories:    DailyCalorieNeed(profile),
		UpcomingWorkouts: upcoming,
		Today:            today,
	}, nil
}

// Trainer gathers today's and the current week's schedule.
func (s *TrainerService) Trainer(userID uint) (*TrainerData, error) {
	today := DayStart(time.Now())
	weekStart, weekEnd := WeekRange(today)

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return nil, err
	}
	todayWorkouts, err := s.schedule.ListWorkoutsByDate(userID, today)
	if err != nil {
		return nil, err
	}
	todayMeals, err := s.schedule.ListMealsByDate(userID, today)
	if err != nil {
		return nil, err
	}
	weekWorkouts, err := s.schedule.ListWorkoutsByRange(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	weekMeals, err := s.schedule.ListMealsByRange(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	weekDays := make([]time.Time, 7)
	for i := range weekDays {
		weekDays[i] = weekStart.AddDate(0, 0, i)
	}

	return &TrainerData{
		Profile:       profile,
		TodayWorkouts: todayWorkouts,
		TodayMeals:    todayMeals,
		WeekWorkouts:  weekWorkouts,
		WeekMeals:     weekMeals,
		WeekDays:      weekDays,
		Today:         today,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
	}, nil
}
