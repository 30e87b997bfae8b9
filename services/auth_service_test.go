package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Email:           "a@example.com",
		FirstName:       "Asha",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "abcd1234", user.Password, "password must be stored hashed")

	got, token, err := svc.Authenticate("0771234567", "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	first, err := svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "other5678",
		ConfirmPassword: "other5678",
	})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// the first account is unaffected
	_, _, err = svc.Authenticate("0771234567", "abcd1234")
	require.NoError(t, err)
	kept, err := svc.FindUser(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.PhoneNumber, kept.PhoneNumber)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(RegisterInput{
		PhoneNumber:     "0771111111",
		Email:           "same@example.com",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0772222222",
		Email:           "same@example.com",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// empty emails never collide
	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0773333333",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)
	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0774444444",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "12345678",
		ConfirmPassword: "12345678",
	})
	assert.ErrorIs(t, err, ErrWeakPassword, "all-numeric passwords are rejected")

	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "short1",
		ConfirmPassword: "short1",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1235",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestAuthenticateGenericFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(RegisterInput{
		PhoneNumber:     "0771234567",
		Password:        "abcd1234",
		ConfirmPassword: "abcd1234",
	})
	require.NoError(t, err)

	// unknown phone and wrong password return the same error, so a
	// response can't reveal whether the account exists
	_, _, errUnknown := svc.Authenticate("0779999999", "abcd1234")
	_, _, errWrongPass := svc.Authenticate("0771234567", "wrong-pass")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
}
