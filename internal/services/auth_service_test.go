package services_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"evcharge-dashboard-server/internal/config"
	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/repo"
	"evcharge-dashboard-server/internal/services"
	"evcharge-dashboard-server/internal/store"
	"evcharge-dashboard-server/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Env:       "test",
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
	}
}

func newAuthEnv(t *testing.T) (*services.AuthService, *store.Store) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	require.NoError(t, store.EnsureSeedUsers(s))

	return services.NewAuthService(repo.NewUserRepo(s), testConfig()), s
}

func requireAppError(t *testing.T, err error, status int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, status, appErr.Status)
	return appErr
}

func TestLoginSeedAccounts(t *testing.T) {
	auth, _ := newAuthEnv(t)
	ctx := context.Background()

	station, err := auth.Login(ctx, "stationUser", "5678")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStation, station.Role)
	assert.Equal(t, "stationUser", station.Username)
	assert.NotEmpty(t, station.Token)

	company, err := auth.Login(ctx, "companyAdmin", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCompany, company.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newAuthEnv(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "stationUser", "0000"},
		{"unknown username", "nobody", "5678"},
		{"wrong username case", "stationuser", "5678"},
		{"wrong password case is exact too", "companyAdmin", "1234 "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Login(ctx, tc.username, tc.password)
			requireAppError(t, err, 401)
		})
	}
}

func TestLoginNeverEchoesPassword(t *testing.T) {
	auth, _ := newAuthEnv(t)

	resp, err := auth.Login(context.Background(), "stationUser", "5678")
	require.NoError(t, err)

	raw, err := json.Marshal(resp.User)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "username": "stationUser", "role": "station", "name": "Station User"}`, string(raw))
}

func TestAuthenticateRoundTrip(t *testing.T) {
	auth, _ := newAuthEnv(t)
	ctx := context.Background()

	resp, err := auth.Login(ctx, "companyAdmin", "1234")
	require.NoError(t, err)

	user, err := auth.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "companyAdmin", user.Username)
	assert.Equal(t, models.RoleCompany, user.Role)
}

func TestAuthenticateMissingToken(t *testing.T) {
	auth, _ := newAuthEnv(t)

	_, err := auth.Authenticate(context.Background(), "")
	appErr := requireAppError(t, err, 401)
	assert.Equal(t, "missing token", appErr.Message)
}

func TestAuthenticateMalformedToken(t *testing.T) {
	auth, _ := newAuthEnv(t)

	_, err := auth.Authenticate(context.Background(), "not-a-jwt")
	appErr := requireAppError(t, err, 401)
	assert.Equal(t, "malformed token", appErr.Message)
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	auth, _ := newAuthEnv(t)

	foreign := mintToken(t, "other-secret", 1, "stationUser")
	_, err := auth.Authenticate(context.Background(), foreign)
	requireAppError(t, err, 401)
}

func TestAuthenticateRejectsUnknownIdentity(t *testing.T) {
	auth, _ := newAuthEnv(t)

	// Well-signed token for a user that does not exist in the store.
	ghost := mintToken(t, testSecret, 99, "ghost")
	_, err := auth.Authenticate(context.Background(), ghost)
	appErr := requireAppError(t, err, 401)
	assert.Equal(t, "invalid token", appErr.Message)
}

func TestAuthenticateRejectsUsernameMismatch(t *testing.T) {
	auth, _ := newAuthEnv(t)

	// Valid user id paired with the wrong username claim.
	mismatched := mintToken(t, testSecret, 1, "companyAdmin")
	_, err := auth.Authenticate(context.Background(), mismatched)
	appErr := requireAppError(t, err, 401)
	assert.Equal(t, "invalid token", appErr.Message)
}

func mintToken(t *testing.T, secret string, userID int64, username string) string {
	t.Helper()

	claims := services.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
