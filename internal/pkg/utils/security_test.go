package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)

	assert.NoError(t, ComparePassword(hashed, "s3cret-password"))
	assert.Error(t, ComparePassword(hashed, "wrong-password"))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateSessionJWT("session-1", secret, 1)
	assert.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestSessionJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "right-secret", 1)
	assert.NoError(t, err)

	_, err = ParseSessionJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestGenerateBuyOrderFitsWebpayLimit(t *testing.T) {
	buyOrder := GenerateBuyOrder("64f1aa8be2c9d1a2b3c4d5e6")

	assert.LessOrEqual(t, len(buyOrder), 26, "Webpay rejects buy orders over 26 characters")
	assert.Contains(t, buyOrder, "nm-64f1aa8b-")
}
