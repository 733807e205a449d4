package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"podium/internal/middleware"
	"podium/internal/models"
	"podium/internal/repositories"
	"podium/internal/utils"
)

const (
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type AuthService struct {
	Users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

// IssueTokens mints an access JWT plus an opaque refresh token and persists
// the refresh token on the user row.
func (s *AuthService) IssueTokens(user *models.User) (access, refresh string, err error) {
	claims := &middleware.Claims{
		UserID: user.ID,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	access, err = token.SignedString(middleware.JWTKey())
	if err != nil {
		return "", "", err
	}

	refresh, err = utils.NewRefreshToken(32)
	if err != nil {
		return "", "", err
	}
	if err := s.Users.SaveRefreshToken(user.ID, refresh, time.Now().Add(refreshTokenTTL)); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh rotates the token pair.
func (s *AuthService) Refresh(refreshToken string) (access, refresh string, err error) {
	user, err := s.Users.GetByRefreshToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if user == nil || user.RefreshExpiresAt == nil || user.RefreshExpiresAt.Before(time.Now()) {
		return "", "", errors.New("invalid or expired refresh token")
	}
	return s.IssueTokens(user)
}
