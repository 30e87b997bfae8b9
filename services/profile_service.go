package services

import (
	"errors"
	"time"

	"github.com/Prashant8008/Fitness-Ai/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type ProfileInput struct {
	Address string
	DOB     *time.Time
	Gender  string

	Height            *float64
	Weight            *float64
	BodyFatPercentage *float64

	FitnessGoal   string
	ActivityLevel string
	TargetWeight  *float64

	MedicalConditions string
	Medications       string
	Allergies         string

	PreferredExerciseTypes string
	AvailableEquipment     string
	WorkoutDuration        *int
	WorkoutFrequency       *int

	DietaryRestrictions string
	MealPreferences     string
}

// Validate checks the physiological bounds on the measurements that are set.
func (in *ProfileInput) Validate() error {
	if in.Height != nil && (*in.Height < 50 || *in.Height > 300) {
		return ErrOutOfRange
	}
	if in.Weight != nil && (*in.Weight < 20 || *in.Weight > 500) {
		return ErrOutOfRange
	}
	if in.BodyFatPercentage != nil && (*in.BodyFatPercentage < 0 || *in.BodyFatPercentage > 100) {
		return ErrOutOfRange
	}
	return nil
}

// Get returns the user's profile, or nil if they have not saved one yet.
func (s *ProfileService) Get(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert validates the input and creates or updates the user's profile.
func (s *ProfileService) Upsert(userID uint, in ProfileInput) (*models.UserProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.UserProfile{UserID: userID}
	}

	profile.Address = in.Address
	profile.DOB = in.DOB
	profile.Gender = in.Gender
	profile.Height = in.Height
	profile.Weight = in.Weight
	profile.BodyFatPercentage = in.BodyFatPercentage
	profile.FitnessGoal = in.FitnessGoal
	profile.ActivityLevel = in.ActivityLevel
	profile.TargetWeight = in.TargetWeight
	profile.MedicalConditions = in.MedicalConditions
	profile.Medications = in.Medications
	profile.Allergies = in.Allergies
	profile.PreferredExerciseTypes = in.PreferredExerciseTypes
	profile.AvailableEquipment = in.AvailableEquipment
	profile.WorkoutDuration = in.WorkoutDuration
	profile.WorkoutFrequency = in.WorkoutFrequency
	profile.DietaryRestrictions = in.DietaryRestrictions
	profile.MealPreferences = in.MealPreferences

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
