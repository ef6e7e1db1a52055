package service

import (
	"context"

	"kinogate/internal/domain"
	"kinogate/internal/repository"
)

// UserService registers users and answers role questions
type UserService struct {
	userRepo   repository.UserRepository
	operatorID int64
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, operatorID int64) *UserService {
	return &UserService{
		userRepo:   userRepo,
		operatorID: operatorID,
	}
}

// IsOperator checks the fixed operator identity
func (s *UserService) IsOperator(userID int64) bool {
	return userID == s.operatorID
}

// EnsureUser creates user record if doesn't exist
func (s *UserService) EnsureUser(ctx context.Context, userID int64) error {
	return s.userRepo.EnsureUser(ctx, domain.User{
		UserID: userID,
		Role:   domain.RoleFor(userID, s.operatorID),
	})
}
