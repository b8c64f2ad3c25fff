package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles business logic for user profiles
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

var _ UserServiceInterface = (*UserService)(nil)

// UpdateProfileRequest represents a partial update of the current user's profile
type UpdateProfileRequest struct {
	FullName          *string `json:"full_name" validate:"omitempty,max=255"`
	Phone             *string `json:"phone" validate:"omitempty,max=20"`
	Avatar            *string `json:"avatar" validate:"omitempty,max=500"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankCode          *string `json:"bank_code" validate:"omitempty,max=20"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                uuid.UUID       `json:"id"`
	Email             string          `json:"email"`
	Phone             *string         `json:"phone"`
	FullName          string          `json:"full_name"`
	Avatar            string          `json:"avatar"`
	Role              models.UserRole `json:"role"`
	IsActive          bool            `json:"is_active"`
	IsSuperuser       bool            `json:"is_superuser"`
	CanAccessWeb      bool            `json:"can_access_web"`
	BankAccountNumber string          `json:"bank_account_number"`
	BankCode          string          `json:"bank_code"`
	LastLogin         *time.Time      `json:"last_login"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// UserQuery holds the filters of the user listing
type UserQuery struct {
	ListParams
	Role     string
	IsActive string
}

// ToUserResponse converts a user model into its API representation
func ToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Phone:             u.Phone,
		FullName:          u.FullName,
		Avatar:            u.Avatar,
		Role:              u.Role,
		IsActive:          u.IsActive,
		IsSuperuser:       u.IsSuperuser,
		CanAccessWeb:      true,
		BankAccountNumber: u.BankAccountNumber,
		BankCode:          u.BankCode,
		LastLogin:         u.LastLogin,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// Me returns the profile of the current user
func (s *UserService) Me(ctx context.Context, actor *models.User) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdateMe applies a partial profile update for the current user
func (s *UserService) UpdateMe(ctx context.Context, actor *models.User, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}

	user, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := validateBankInfo(user, req.BankAccountNumber, req.BankCode); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			user.Phone = nil
		} else {
			taken, err := s.repo.PhoneTaken(ctx, phone, user.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check phone: %w", err)
			}
			if taken {
				return nil, apperrors.ErrPhoneExists
			}
			user.Phone = &phone
		}
	}
	if req.BankAccountNumber != nil {
		user.BankAccountNumber = strings.TrimSpace(*req.BankAccountNumber)
	}
	if req.BankCode != nil {
		user.BankCode = strings.ToUpper(strings.TrimSpace(*req.BankCode))
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return ToUserResponse(user), nil
}

// validateBankInfo allows bank details for landlords only, with a 6-19 digit account number
func validateBankInfo(user *models.User, account, code *string) error {
	setting := (account != nil && strings.TrimSpace(*account) != "") || (code != nil && strings.TrimSpace(*code) != "")
	if setting && !user.IsLandlord() {
		return apperrors.ErrBankInfoLandlordOnly
	}
	if account == nil {
		return nil
	}
	number := strings.TrimSpace(*account)
	if number == "" {
		return nil
	}
	if len(number) < 6 || len(number) > 19 {
		return apperrors.ErrInvalidBankAccount
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return apperrors.NewValidationError("bank_account_number", "account number may only contain digits")
		}
	}
	return nil
}

// List returns users visible to the actor
func (s *UserService) List(ctx context.Context, actor *models.User, q UserQuery) (*ListResponse[UserResponse], error) {
	filter := repository.UserFilter{Role: models.UserRole(q.Role)}
	if q.IsActive != "" {
		active := q.IsActive == "true" || q.IsActive == "1"
		filter.IsActive = &active
	}

	users, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *ToUserResponse(&users[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Get returns a single user visible to the actor
func (s *UserService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*UserResponse, error) {
	if !actor.IsSuperuser && !actor.IsLandlord() && actor.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}
