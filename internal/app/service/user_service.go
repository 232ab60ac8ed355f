package service

import (
	"blogapi/internal/common"
	"blogapi/internal/common/security"
	"blogapi/internal/domain/model"
	"blogapi/internal/domain/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// OptionalString distinguishes a JSON field that was absent from one that was
// provided, including an explicit null. Needed for partial updates where null
// clears a value but absence leaves it alone.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type UpdateProfileRequest struct {
	FirstName *string        `json:"firstName"`
	LastName  OptionalString `json:"lastName"`
	Password  *string        `json:"password"`
}

// Profile returns the user with their posts, newest first.
func (s *UserService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithPosts(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.WithMessage(common.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies partial update semantics: an absent field is left
// unchanged, an empty first name or password is ignored, and last name may be
// cleared with an explicit null. A request that changes nothing is an error.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.WithMessage(common.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var columns []string

	if req.FirstName != nil && *req.FirstName != "" {
		user.FirstName = *req.FirstName
		columns = append(columns, "first_name")
	}

	if req.LastName.Set {
		user.LastName = req.LastName.Value
		columns = append(columns, "last_name")
	}

	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
		columns = append(columns, "password_hash")
	}

	if len(columns) == 0 {
		return nil, common.WithMessage(common.ErrBadRequest, "No fields to update")
	}

	columns = append(columns, "updated_at")

	if err := s.userRepo.Update(ctx, user, columns...); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
