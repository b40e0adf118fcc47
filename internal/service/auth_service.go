package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/config"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
	// RevokeToken denylists a session token until its natural expiry.
	// Clearing the cookie alone cannot invalidate a long-lived token.
	RevokeToken(ctx context.Context, token string) error
	// Revoked reports whether a token has been logged out.
	Revoked(ctx context.Context, token string) (bool, error)
}

type authService struct {
	users repository.UserRepository
	rdb   *redis.Client
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{users: users, rdb: rdb, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.users.FindByPhone(ctx, req.Phone)
	if err != nil {
		// Unknown phone and wrong password are indistinguishable to the caller.
		return nil, apierror.New(http.StatusBadRequest, "Wrong phone or password")
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		return nil, apierror.New(http.StatusBadRequest, "Wrong phone or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  user.ID.String(),
		"iat": now.Unix(),
		"exp": now.AddDate(s.cfg.JWTExpirationYears, 0, 0).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{Token: token, Role: user.Role}, nil
}

func (s *authService) RevokeToken(ctx context.Context, token string) error {
	ttl := time.Duration(s.cfg.JWTExpirationYears) * 365 * 24 * time.Hour
	return s.rdb.Set(ctx, revocationKey(token), "1", ttl).Err()
}

func (s *authService) Revoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revocationKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}
