package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, 0)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	svc, err := NewTokenService("k", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, svc.TTL())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t, "testsecret")

	for _, role := range []Role{RoleCustomer, RoleSeller, RoleAdmin} {
		token, err := svc.Issue("id-42", "fish@sea.in", role)
		require.NoError(t, err)

		id, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, Identity{SubjectID: "id-42", Email: "fish@sea.in", Role: role}, id)
	}
}

func TestIssue_Validation(t *testing.T) {
	svc := newTestService(t, "testsecret")

	_, err := svc.Issue("", "a@b.co", RoleCustomer)
	assert.Error(t, err)

	_, err = svc.Issue("1", "a@b.co", Role("ROOT"))
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService(t, "testsecret")
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueWithTTL("1", "a@b.co", RoleCustomer, time.Hour)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	id, err := svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, Identity{}, id)
}

func TestVerify_Tampered(t *testing.T) {
	svc := newTestService(t, "testsecret")
	token, err := svc.Issue("1", "a@b.co", RoleCustomer)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Re-sign the payload of an admin token onto the customer header/signature.
	adminToken, err := svc.Issue("1", "a@b.co", RoleAdmin)
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(adminToken, ".")[1] + "." + parts[2]

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	_, err = svc.Verify(parts[0] + "." + parts[1] + "." + string(sig))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := newTestService(t, "secret1").Issue("1", "a@b.co", RoleSeller)
	require.NoError(t, err)

	_, err = newTestService(t, "secret2").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsForeignTokens(t *testing.T) {
	svc := newTestService(t, "testsecret")

	t.Run("Malformed", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"userId": "1", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix(),
		})
		s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoExpiry", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "1", "role": "ADMIN"})
		s, err := tok.SignedString([]byte("testsecret"))
		require.NoError(t, err)

		_, err = svc.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": "1", "role": "ROOT", "exp": time.Now().Add(time.Hour).Unix(),
		})
		s, err := tok.SignedString([]byte("testsecret"))
		require.NoError(t, err)

		_, err = svc.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
