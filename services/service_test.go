package services

import (
	"testing"

	"github.com/Prashant8008/Fitness-Ai/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.WorkoutSchedule{},
		&models.MealPlan{},
		&models.DailyProgress{},
		&models.GoalTracking{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, phone string) *models.User {
	t.Helper()

	user := &models.User{
		PhoneNumber: phone,
		Password:    "x",
		IsActive:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
