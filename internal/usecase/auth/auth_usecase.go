package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	prefsRepo   repository.PreferencesRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	logger      *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	prefsRepo repository.PreferencesRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		prefsRepo:   prefsRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		logger:      logger,
	}
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email        string              `json:"email" binding:"required,email"`
	Password     string              `json:"password" binding:"required,min=8"`
	Name         string              `json:"name" binding:"required,min=2,max=100"`
	Gender       domain.Gender       `json:"gender" binding:"required,gender"`
	Age          int                 `json:"age" binding:"required,min=18,max=100"`
	Denomination domain.Denomination `json:"denomination" binding:"required,denomination"`
	Location     string              `json:"location" binding:"required"`
}

// AuthResponse carries the token pair issued at register/login/refresh.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         *domain.User `json:"user"`
}

// Register creates an account and seeds matching preferences from the
// profile so the discovery feed works before the user opens settings.
func (uc *AuthUseCase) Register(ctx context.Context, in *RegisterInput) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Gender:       in.Gender,
		Age:          in.Age,
		Denomination: in.Denomination,
		Location:     strings.TrimSpace(in.Location),
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.prefsRepo.Create(ctx, domain.DefaultPreferences(user)); err != nil {
		return nil, fmt.Errorf("failed to seed preferences: %w", err)
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return uc.issueTokens(ctx, user)
}

// Login verifies credentials and issues a fresh token pair. Deactivated
// accounts are reactivated on successful login.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		if err := uc.userRepo.SetActive(ctx, user.ID, true); err != nil {
			return nil, err
		}
		user.IsActive = true
	}

	if err := uc.userRepo.SetLastSeen(ctx, user.ID, time.Now()); err != nil {
		uc.logger.Warn("failed to update last_seen", zap.String("user_id", user.ID), zap.Error(err))
	}

	return uc.issueTokens(ctx, user)
}

// Refresh rotates the refresh token and issues a new access token.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	session, err := uc.sessionRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = uc.sessionRepo.DeleteByToken(ctx, refreshToken)
		return nil, domain.ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	if err := uc.sessionRepo.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return uc.issueTokens(ctx, user)
}

// Logout revokes the given refresh token.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	err := uc.sessionRepo.DeleteByToken(ctx, refreshToken)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	return err
}

// ValidateToken parses an access token and returns the subject user id.
func (uc *AuthUseCase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}

func (uc *AuthUseCase) issueTokens(ctx context.Context, user *domain.User) (*AuthResponse, error) {
	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}
	session := &domain.Session{
		UserID:       user.ID,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
