package services

import (
	"testing"
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRangeStartsMonday(t *testing.T) {
	// Wednesday 2026-01-07
	wed := time.Date(2026, 1, 7, 15, 30, 0, 0, time.Local)
	start, end := WeekRange(wed)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 5, start.Day())
	assert.Equal(t, 11, end.Day())

	// a Monday is its own week start
	mon := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	start, _ = WeekRange(mon)
	assert.Equal(t, 5, start.Day())

	// Sunday belongs to the week that started six days earlier
	sun := time.Date(2026, 1, 11, 23, 0, 0, 0, time.Local)
	start, end = WeekRange(sun)
	assert.Equal(t, 5, start.Day())
	assert.Equal(t, 11, end.Day())
}

func TestDailyCalorieNeed(t *testing.T) {
	dob := time.Now().AddDate(-30, 0, 0)
	h, w := 175.0, 70.0

	profile := &models.UserProfile{
		DOB:           &dob,
		Gender:        models.GenderMale,
		Height:        &h,
		Weight:        &w,
		ActivityLevel: "moderate",
	}

	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; *1.55 truncated
	assert.Equal(t, 2555, DailyCalorieNeed(profile))

	profile.Gender = models.GenderFemale
	// BMR = 1648.75 - 166 = 1482.75; *1.55 truncated
	assert.Equal(t, 2298, DailyCalorieNeed(profile))

	profile.ActivityLevel = ""
	// unset activity level falls back to sedentary 1.2
	assert.Equal(t, 1779, DailyCalorieNeed(profile))
}

func TestDailyCalorieNeedRequiresAllInputs(t *testing.T) {
	h, w := 175.0, 70.0
	dob := time.Now().AddDate(-30, 0, 0)

	assert.Zero(t, DailyCalorieNeed(nil))
	assert.Zero(t, DailyCalorieNeed(&models.UserProfile{Height: &h, Weight: &w}), "missing age")
	assert.Zero(t, DailyCalorieNeed(&models.UserProfile{DOB: &dob, Weight: &w}), "missing height")
	assert.Zero(t, DailyCalorieNeed(&models.UserProfile{DOB: &dob, Height: &h}), "missing weight")
}

func TestDashboardAggregation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewTrainerService(db)
	schedule := NewScheduleService(db)

	today := DayStart(time.Now())
	require.NoError(t, schedule.CreateWorkout(&models.WorkoutSchedule{
		UserID: user.ID, WorkoutName: "Morning Run", ScheduledDate: today, ScheduledTime: "07:00",
	}))
	require.NoError(t, schedule.CreateWorkout(&models.WorkoutSchedule{
		UserID: user.ID, WorkoutName: "Future Lift", ScheduledDate: today.AddDate(0, 0, 3), ScheduledTime: "18:00",
	}))
	require.NoError(t, schedule.CreateWorkout(&models.WorkoutSchedule{
		UserID: user.ID, WorkoutName: "Too Far", ScheduledDate: today.AddDate(0, 0, 14), ScheduledTime: "18:00",
	}))
	require.NoError(t, schedule.CreateMeal(&models.MealPlan{
		UserID: user.ID, MealType: models.MealBreakfast, MealName: "Oats",
		ScheduledDate: today, ScheduledTime: "08:00",
	}))

	data, err := svc.Dashboard(user.ID)
	require.NoError(t, err)

	assert.Len(t, data.TodayWorkouts, 1)
	assert.Len(t, data.TodayMeals, 1)
	assert.Len(t, data.UpcomingWorkouts, 2, "7-day look-ahead excludes entries further out")
	assert.Nil(t, data.TodayProgress)
	assert.Zero(t, data.DailyCalories, "no profile saved")
}

func TestTrainerWeekView(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewTrainerService(db)
	schedule := NewScheduleService(db)

	today := DayStart(time.Now())
	weekStart, weekEnd := WeekRange(today)

	require.NoError(t, schedule.CreateWorkout(&models.WorkoutSchedule{
		UserID: user.ID, WorkoutName: "In Week", ScheduledDate: weekStart, ScheduledTime: "07:00",
	}))
	require.NoError(t, schedule.CreateWorkout(&models.WorkoutSchedule{
		UserID: user.ID, WorkoutName: "Next Week", ScheduledDate: weekEnd.AddDate(0, 0, 1), ScheduledTime: "07:00",
	}))

	data, err := svc.Trainer(user.ID)
	require.NoError(t, err)

	require.Len(t, data.WeekWorkouts, 1)
	assert.Equal(t, "In Week", data.WeekWorkouts[0].WorkoutName)
	require.Len(t, data.WeekDays, 7)
	assert.Equal(t, weekStart, data.WeekDays[0])
	assert.Equal(t, weekEnd, data.WeekDays[6])
}
