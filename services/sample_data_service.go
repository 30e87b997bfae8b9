package services

import (
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"

	"gorm.io/gorm"
)

// SampleDataService seeds a week of demo workouts and meals. Seeding is
// idempotent: (user, date, time) identifies a workout and
// (user, date, time, meal type) identifies a meal, so a second run leaves
// existing rows untouched.
type SampleDataService struct {
	db *gorm.DB
}

func NewSampleDataService(db *gorm.DB) *SampleDataService {
	return &SampleDataService{db: db}
}

type sampleWorkout struct {
	name     string
	kind     string
	time     string
	duration int
}

type sampleMeal struct {
	name     string
	mealType string
	time     string
	calories int
}

var sampleWorkouts = []sampleWorkout{
	{"Morning Cardio", "Cardio", "07:00", 30},
	{"Strength Training", "Strength", "18:00", 45},
	{"Yoga Session", "Flexibility", "19:30", 30},
	{"HIIT Workout", "HIIT", "07:00", 25},
	{"Swimming", "Cardio", "17:00", 40},
}

var sampleMeals = []sampleMeal{
	{"Protein Oatmeal", models.MealBreakfast, "08:00", 350},
	{"Greek Yogurt", models.MealSnack1, "10:30", 150},
	{"Grilled Chicken Salad", models.MealLunch, "13:00", 450},
	{"Apple & Almonds", models.MealSnack2, "15:30", 200},
	{"Salmon & Vegetables", models.MealDinner, "19:00", 500},
}

// Seed creates one workout per day and the full meal set per day for the
// next 7 days starting today. The first two days are marked done.
func (s *SampleDataService) Seed(userID uint) error {
	today := DayStart(time.Now())

	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i)
		w := sampleWorkouts[i%len(sampleWorkouts)]

		workout := models.WorkoutSchedule{
			UserID:        userID,
			ScheduledDate: day,
			ScheduledTime: w.time,
		}
		err := s.db.
			Where("user_id = ? AND scheduled_date = ? AND scheduled_time = ?", userID, day, w.time).
			Attrs(models.WorkoutSchedule{
				WorkoutName:     w.name,
				WorkoutType:     w.kind,
				DurationMinutes: w.duration,
				IsCompleted:     i < 2,
			}).
			FirstOrCreate(&workout).Error
		if err != nil {
			return err
		}
	}

	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i)
		for _, m := range sampleMeals {
			cal := float64(m.calories)
			meal := models.MealPlan{
				UserID:        userID,
				ScheduledDate: day,
				ScheduledTime: m.time,
				MealType:      m.mealType,
			}
			err := s.db.
				Where("user_id = ? AND scheduled_date = ? AND scheduled_time = ? AND meal_type = ?",
					userID, day, m.time, m.mealType).
				Attrs(models.MealPlan{
					MealName:   m.name,
					Calories:   m.calories,
					Protein:    cal * 0.3 / 4,
					Carbs:      cal * 0.4 / 4,
					Fats:       cal * 0.3 / 9,
					IsConsumed: i < 2,
				}).
				FirstOrCreate(&meal).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}
