package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() TokenConfig {
	return TokenConfig{
		SecretKey: "test-secret-key",
		TTL:       24 * time.Hour,
		Issuer:    "test-issuer",
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := NewTokenManager(testConfig())

	token, expiresAt, err := manager.Issue(7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	identity, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "admin", identity.Username)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	manager := NewTokenManager(testConfig()).WithClock(clock.Now)

	token, _, err := manager.Issue(1, "admin")
	require.NoError(t, err)

	clock.t = issuedAt.Add(time.Hour)
	_, err = manager.Validate(token)
	assert.NoError(t, err, "token must be accepted one hour after issuance")

	clock.t = issuedAt.Add(23*time.Hour + 59*time.Minute)
	_, err = manager.Validate(token)
	assert.NoError(t, err)

	clock.t = issuedAt.Add(25 * time.Hour)
	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsTamperedToken(t *testing.T) {
	manager := NewTokenManager(testConfig())
	token, _, err := manager.Issue(1, "admin")
	require.NoError(t, err)

	other := NewTokenManager(TokenConfig{SecretKey: "another-secret", TTL: time.Hour, Issuer: "test-issuer"})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Validate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsForeignIssuer(t *testing.T) {
	cfg := testConfig()
	manager := NewTokenManager(cfg)

	cfg.Issuer = "someone-else"
	token, _, err := NewTokenManager(cfg).Issue(1, "admin")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsUnsignedAndMissing(t *testing.T) {
	manager := NewTokenManager(testConfig())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:   1,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Validate(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)
}
