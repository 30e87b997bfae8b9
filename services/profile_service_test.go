package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestProfileUpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewProfileService(db)

	missing, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Nil(t, missing, "no profile before first save")

	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.Local)
	profile, err := svc.Upsert(user.ID, ProfileInput{
		DOB:           &dob,
		Gender:        "male",
		Height:        f(175),
		Weight:        f(70),
		FitnessGoal:   "muscle_gain",
		ActivityLevel: "moderate",
	})
	require.NoError(t, err)
	require.NotNil(t, profile.BMI())
	assert.InDelta(t, 22.86, *profile.BMI(), 0.001)

	// update in place
	updated, err := svc.Upsert(user.ID, ProfileInput{
		DOB:    &dob,
		Gender: "male",
		Height: f(175),
		Weight: f(72.5),
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, 72.5, *updated.Weight)
}

func TestProfileValidationBounds(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "0771234567")
	svc := NewProfileService(db)

	cases := []struct {
		name string
		in   ProfileInput
		ok   bool
	}{
		{"height low bound", ProfileInput{Height: f(50)}, true},
		{"height high bound", ProfileInput{Height: f(300)}, true},
		{"height too low", ProfileInput{Height: f(49.9)}, false},
		{"height too high", ProfileInput{Height: f(300.1)}, false},
		{"weight low bound", ProfileInput{Weight: f(20)}, true},
		{"weight high bound", ProfileInput{Weight: f(500)}, true},
		{"weight too low", ProfileInput{Weight: f(19.9)}, false},
		{"weight too high", ProfileInput{Weight: f(501)}, false},
		{"body fat too high", ProfileInput{BodyFatPercentage: f(100.5)}, false},
		{"body fat negative", ProfileInput{BodyFatPercentage: f(-1)}, false},
		{"all absent", ProfileInput{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upsert(user.ID, tc.in)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOutOfRange)
			}
		})
	}
}
