package services

import (
	"context"
	"net/http"
	"time"

	"evcharge-dashboard-server/internal/config"
	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/repo"
	"evcharge-dashboard-server/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users *repo.UserRepo
	cfg   *config.Config
}

// LoginResponse carries the token alongside both the flat role/username
// fields and the sanitized user object the dashboard consumes.
type LoginResponse struct {
	Token    string          `json:"token"`
	Role     string          `json:"role"`
	Username string          `json:"username"`
	User     models.UserView `json:"user"`
}

type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(users *repo.UserRepo, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Login verifies the credentials against the store and mints a signed token.
// Username matching is exact and case-sensitive; any mismatch comes back as
// the same invalid-credentials error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials", nil)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil)
	}

	return &LoginResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
		User:     user.Public(),
	}, nil
}

// Authenticate resolves a bearer token back to a live user. The signature
// only proves the token was minted here; the identity must still exist in the
// store with a matching username, so removed or renamed accounts are locked
// out immediately.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*models.User, error) {
	if tokenStr == "" {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing token", nil)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "malformed token", nil)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "malformed token", nil)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil || user.Username != claims.Username {
		return nil, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil)
	}

	return user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	issuedAt := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.JWTExpiry)),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
