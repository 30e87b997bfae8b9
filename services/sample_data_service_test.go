package services

import (
	"testing"

	"github.com/Prashant8008/Fitness-Ai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesWeekOfData(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewSampleDataService(db)

	require.NoError(t, svc.Seed(user.ID))

	var workouts, meals int64
	db.Model(&models.WorkoutSchedule{}).Where("user_id = ?", user.ID).Count(&workouts)
	db.Model(&models.MealPlan{}).Where("user_id = ?", user.ID).Count(&meals)
	assert.EqualValues(t, 7, workouts)
	assert.EqualValues(t, 35, meals, "5 meals per day for 7 days")

	var completed int64
	db.Model(&models.WorkoutSchedule{}).
		Where("user_id = ? AND is_completed = ?", user.ID, true).
		Count(&completed)
	assert.EqualValues(t, 2, completed, "first two days are marked done")
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewSampleDataService(db)

	require.NoError(t, svc.Seed(user.ID))
	require.NoError(t, svc.Seed(user.ID))

	var workouts, meals int64
	db.Model(&models.WorkoutSchedule{}).Where("user_id = ?", user.ID).Count(&workouts)
	db.Model(&models.MealPlan{}).Where("user_id = ?", user.ID).Count(&meals)
	assert.EqualValues(t, 7, workouts, "second seed must not duplicate workouts")
	assert.EqualValues(t, 35, meals, "second seed must not duplicate meals")
}

func TestSeedDoesNotTouchOtherUsers(t *testing.T) {
	db := newTestDB(t)
	alice := newTestUser(t, db, "0771111111")
	bob := newTestUser(t, db, "0772222222")
	svc := NewSampleDataService(db)

	require.NoError(t, svc.Seed(alice.ID))

	var bobWorkouts int64
	db.Model(&models.WorkoutSchedule{}).Where("user_id = ?", bob.ID).Count(&bobWorkouts)
	assert.Zero(t, bobWorkouts)
}
