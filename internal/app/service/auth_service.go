package service

import (
	"blogapi/internal/common"
	"blogapi/internal/common/security"
	"blogapi/internal/domain/model"
	"blogapi/internal/domain/repository"
	"context"
	"errors"
	"fmt"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type SignupRequest struct {
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  string  `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if req.Email == "" || req.FirstName == "" || req.Password == "" {
		return nil, common.WithMessage(common.ErrBadRequest, "Email, first name and password are required")
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
	}

	// The store's unique constraint on email is the arbiter of duplicates.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.WithMessage(common.ErrConflict, "User with this email already exists, try logging in")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.PasswordHash = "" // Clear password before returning
	return user, nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password produce the same generic rejection.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", common.WithMessage(common.ErrBadRequest, "Email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.WithMessage(common.ErrUnauthorized, "Invalid email or password")
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", common.WithMessage(common.ErrUnauthorized, "Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
