package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/storage"

	"github.com/google/uuid"
)

const defaultMimeType = "application/octet-stream"

// FileService stores uploads and tracks them as file assets
type FileService struct {
	repo  repository.FileAssetRepositoryInterface
	store storage.Storage
}

// NewFileService creates a new file service
func NewFileService(repo repository.FileAssetRepositoryInterface, store storage.Storage) *FileService {
	return &FileService{repo: repo, store: store}
}

var _ FileServiceInterface = (*FileService)(nil)

// UploadFileRequest carries one multipart upload
type UploadFileRequest struct {
	Purpose  string
	Filename string
	Size     int64
	Content  io.Reader
}

// FileResponse represents a file asset in API responses
type FileResponse struct {
	ID         uuid.UUID          `json:"id"`
	Path       string             `json:"path"`
	URL        string             `json:"url"`
	MimeType   string             `json:"mime_type"`
	Purpose    models.FilePurpose `json:"purpose"`
	Size       int64              `json:"size"`
	UploadedBy *uuid.UUID         `json:"uploaded_by"`
	CreatedAt  time.Time          `json:"created_at"`
}

// FileQuery holds the filters of the file listing
type FileQuery struct {
	ListParams
	Purpose string
}

// guessMimeType maps the file extension to a MIME type
func guessMimeType(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return defaultMimeType
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		if i := strings.Index(mt, ";"); i >= 0 {
			mt = mt[:i]
		}
		return mt
	}
	return defaultMimeType
}

func baseName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// Upload stores the content and records its asset row
func (s *FileService) Upload(ctx context.Context, actor *models.User, req *UploadFileRequest) (*FileResponse, error) {
	purpose := models.FilePurpose(req.Purpose)
	if purpose == "" {
		purpose = models.FilePurposeContract
	}
	if !purpose.IsValid() {
		return nil, apperrors.ErrInvalidFilePurpose
	}
	name := baseName(req.Filename)
	if name == "" {
		return nil, apperrors.NewValidationError("file", "file is required")
	}
	mimeType := guessMimeType(name)
	if purpose == models.FilePurposeContract && mimeType != "application/pdf" {
		return nil, apperrors.ErrContractMustBePDF
	}

	asset := &models.FileAsset{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		MimeType:     mimeType,
		Purpose:      purpose,
		Size:         req.Size,
		UploadedByID: &actor.ID,
	}
	asset.Path = fmt.Sprintf("%s/%s/%s", purpose, asset.ID, name)

	if err := s.store.Save(ctx, asset.Path, req.Content, req.Size, mimeType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		if rmErr := s.store.Delete(ctx, asset.Path); rmErr != nil {
			logger.WithContext(ctx).WithError(rmErr).WithField("path", asset.Path).Warn("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to record file: %w", err)
	}
	return s.toResponse(asset), nil
}

// Get returns a visible file asset
func (s *FileService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*FileResponse, error) {
	asset, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(asset), nil
}

// List returns the file assets visible to the actor
func (s *FileService) List(ctx context.Context, actor *models.User, q FileQuery) (*ListResponse[FileResponse], error) {
	purpose := models.FilePurpose(q.Purpose)
	if purpose != "" && !purpose.IsValid() {
		return nil, apperrors.ErrInvalidFilePurpose
	}
	assets, total, err := s.repo.List(ctx, viewerOf(actor), purpose, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	items := make([]FileResponse, 0, len(assets))
	for i := range assets {
		items = append(items, *s.toResponse(&assets[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Delete removes the asset row and then its stored object
func (s *FileService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	asset, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, asset.ID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, asset.Path); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", asset.Path).Warn("Failed to delete stored file")
	}
	return nil
}

func (s *FileService) toResponse(a *models.FileAsset) *FileResponse {
	return &FileResponse{
		ID:         a.ID,
		Path:       a.Path,
		URL:        s.store.URL(a.Path),
		MimeType:   a.MimeType,
		Purpose:    a.Purpose,
		Size:       a.Size,
		UploadedBy: a.UploadedByID,
		CreatedAt:  a.CreatedAt,
	}
}
