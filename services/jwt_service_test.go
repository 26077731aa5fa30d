package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: time.Hour}

	token, err := svc.GenerateSessionJWT("u-1", "shopper@example.com", "Test Shopper")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifySessionJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "Test Shopper", claims.Name)
	assert.Equal(t, "shoppulse-storefront", claims.Issuer)
}

func TestSessionJWTRejectsWrongSecret(t *testing.T) {
	minter := &JWTService{secretKey: "secret-a", expiry: time.Hour}
	verifier := &JWTService{secretKey: "secret-b", expiry: time.Hour}

	token, err := minter.GenerateSessionJWT("u-1", "shopper@example.com", "")
	require.NoError(t, err)

	_, err = verifier.VerifySessionJWT(token)
	assert.Error(t, err)
}

func TestSessionJWTRejectsExpiredToken(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: -time.Minute}

	token, err := svc.GenerateSessionJWT("u-1", "shopper@example.com", "")
	require.NoError(t, err)

	_, err = svc.VerifySessionJWT(token)
	assert.Error(t, err)
}

func TestSessionJWTRequiresIdentity(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: time.Hour}

	_, err := svc.GenerateSessionJWT("", "shopper@example.com", "")
	assert.Error(t, err)

	_, err = svc.GenerateSessionJWT("u-1", "", "")
	assert.Error(t, err)
}
