package repository

import (
	"context"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileAssetRepository handles database operations for uploaded files
type FileAssetRepository struct {
	db *gorm.DB
}

// NewFileAssetRepository creates a new file asset repository
func NewFileAssetRepository(db *gorm.DB) *FileAssetRepository {
	return &FileAssetRepository{db: db}
}

func (r *FileAssetRepository) visible(db *gorm.DB, v Viewer) *gorm.DB {
	if v.IsSuperuser {
		return db
	}
	return db.Where("uploaded_by_id = ?", v.UserID)
}

// Create stores a file asset row
func (r *FileAssetRepository) Create(ctx context.Context, asset *models.FileAsset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

// GetVisible retrieves a file asset uploaded by v, or any asset for superusers
func (r *FileAssetRepository) GetVisible(ctx context.Context, v Viewer, id uuid.UUID) (*models.FileAsset, error) {
	var asset models.FileAsset
	if err := r.visible(r.db.WithContext(ctx), v).First(&asset, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrFileAssetNotFound, nil)
	}
	return &asset, nil
}

// List returns the file assets visible to v, optionally for one purpose
func (r *FileAssetRepository) List(ctx context.Context, v Viewer, purpose models.FilePurpose, opts ListOptions) ([]models.FileAsset, int64, error) {
	q := r.visible(r.db.WithContext(ctx).Model(&models.FileAsset{}), v)
	if purpose != "" {
		q = q.Where("purpose = ?", purpose)
	}
	q = q.Scopes(searchScope(opts.Search, "path"))
	return paginate[models.FileAsset](q, opts, "created_at DESC")
}

// Delete removes a file asset row
func (r *FileAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.FileAsset{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrFileAssetNotFound
	}
	return nil
}
