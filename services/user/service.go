package user

import (
	"context"
	"fmt"
	"time"

	"mensa/config"
	userRepo "mensa/database/repository/user"
	"mensa/models"
	"mensa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService is the standard UserService implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account after checking email availability.
func (s *DefaultUserService) Register(name, email, password string) error {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return fmt.Errorf("registration failed, please try again")
	}
	return nil
}

// Authenticate verifies credentials, issues a signed token, and records
// its hash in the auth cache so it can be revoked later.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, ttl)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Record the issued token so the auth middleware can honor revocation.
	// A cache write failure is logged but does not block the login.
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, userRec.ID, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to cache issued token", zap.Error(err))
	}

	return &AuthResponse{
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
	}, nil
}

// ResetPassword replaces the stored hash for the account with the given
// email. The account must already exist.
func (s *DefaultUserService) ResetPassword(email, newPassword string) error {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}
	if userRec == nil {
		return userRepo.ErrNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}

	return s.Repo.UpdatePasswordHash(userRec.ID, string(hashed))
}

// RevokeToken drops the issued-token cache entry, invalidating the token.
func (s *DefaultUserService) RevokeToken(token string) error {
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
}

// GetByID fetches a user record.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}
