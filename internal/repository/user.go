package repository

import (
	"context"
	"strings"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows user listings
type UserFilter struct {
	Role     models.UserRole
	IsActive *bool
}

var userOrdering = map[string]string{
	"created_at": "created_at",
	"email":      "email",
	"full_name":  "full_name",
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return translate(r.db.WithContext(ctx).Create(user).Error, nil, apperrors.ErrUserExists)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// GetByPhone retrieves a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "phone = ?", strings.TrimSpace(phone)).Error; err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// List returns the users visible to v; tenants only ever see themselves
func (r *UserRepository) List(ctx context.Context, v Viewer, filter UserFilter, opts ListOptions) ([]models.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if !v.IsSuperuser && !v.IsLandlord() {
		q = q.Where("id = ?", v.UserID)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	q = q.Scopes(searchScope(opts.Search, "email", "full_name", "phone"))

	return paginate[models.User](q, opts, orderBy(opts.Ordering, userOrdering, "created_at DESC"))
}

// Update saves all user fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error, nil, apperrors.ErrUserExists)
}

// EmailTaken reports whether another user already uses email
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(email)), excludeID))
}

// PhoneTaken reports whether another user already uses phone
func (r *UserRepository) PhoneTaken(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&models.User{}).
		Where("phone = ? AND id <> ?", strings.TrimSpace(phone), excludeID))
}
