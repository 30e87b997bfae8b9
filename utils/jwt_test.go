package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("secret", 42)
	require.NoError(t, err)

	userID, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseJWTRejectsBadInput(t *testing.T) {
	token, err := GenerateJWT("secret", 42)
	require.NoError(t, err)

	_, err = ParseJWT("wrong-secret", token)
	assert.Error(t, err)

	_, err = ParseJWT("secret", "not-a-token")
	assert.Error(t, err)

	_, err = ParseJWT("secret", "")
	assert.Error(t, err)
}
