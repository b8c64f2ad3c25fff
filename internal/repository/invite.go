package repository

import (
	"context"
	"strings"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteFilter narrows invite listings
type InviteFilter struct {
	PropertyID *uuid.UUID
	Status     models.InviteStatus
}

var inviteOrdering = map[string]string{
	"created_at": "created_at",
	"expires_at": "expires_at",
}

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	switch {
	case v.IsSuperuser:
		return db
	case v.IsLandlord():
		return db.Where("property_id IN (?)", ownedPropertyIDs(db, v.UserID))
	case v.IsTenant():
		email := strings.ToLower(strings.TrimSpace(v.Email))
		phone := strings.TrimSpace(v.Phone)
		switch {
		case email != "" && phone != "":
			return db.Where("(LOWER(email) = ? OR phone = ?)", email, phone)
		case email != "":
			return db.Where("LOWER(email) = ?", email)
		case phone != "":
			return db.Where("phone = ?", phone)
		}
	}
	return nothing(db)
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return r.db.WithContext(ctx).Omit("Property", "Room").Create(invite).Error
}

// GetVisible retrieves an invite when it is within v's scope
func (r *InviteRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.Invite, error) {
	var invite models.Invite
	q := r.visible(r.db.WithContext(ctx).Model(&models.Invite{}), v).Preload("Property").Preload("Room")
	if err := q.First(&invite, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrInviteNotFound, nil)
	}
	return &invite, nil
}

// GetByToken retrieves an invite by its token
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.WithContext(ctx).Preload("Property").Preload("Room").First(&invite, "token = ?", token).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrInviteNotFound, nil)
	}
	return &invite, nil
}

// List returns the invites visible to v
func (r *InviteRepository) List(ctx context.Context, v Viewer, filter InviteFilter, opts ListOptions) ([]models.Invite, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.Invite{}), v)
	if filter.PropertyID != nil {
		q = q.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Scopes(searchScope(opts.Search, "email", "phone"))

	return paginate[models.Invite](q, opts, orderBy(opts.Ordering, inviteOrdering, "created_at DESC"), "Property", "Room")
}

// Update saves all invite fields
func (r *InviteRepository) Update(ctx context.Context, invite *models.Invite) error {
	return r.db.WithContext(ctx).Omit("Property", "Room").Save(invite).Error
}

// Delete removes an invite
func (r *InviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Invite{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInviteNotFound
	}
	return nil
}
