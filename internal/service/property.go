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

// PropertyService handles business logic for properties
type PropertyService struct {
	repo      repository.PropertyRepositoryInterface
	audit     AuditorInterface
	validator *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepositoryInterface, audit AuditorInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:      repo,
		audit:     audit,
		validator: validator,
	}
}

var _ PropertyServiceInterface = (*PropertyService)(nil)

// CreatePropertyRequest represents the request to create a property
type CreatePropertyRequest struct {
	Owner       *uuid.UUID `json:"owner"`
	Name        string     `json:"name" validate:"required,max=255"`
	Address     string     `json:"address" validate:"max=500"`
	Description string     `json:"description"`
	Image       string     `json:"image" validate:"max=500"`
}

// UpdatePropertyRequest represents a partial property update
type UpdatePropertyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,max=500"`
}

// OwnerSummary is the nested owner of a property
type OwnerSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// PropertyResponse represents a property with its room statistics
type PropertyResponse struct {
	ID               uuid.UUID     `json:"id"`
	Owner            uuid.UUID     `json:"owner"`
	OwnerDetail      *OwnerSummary `json:"owner_detail,omitempty"`
	Name             string        `json:"name"`
	Address          string        `json:"address"`
	Description      string        `json:"description"`
	Image            string        `json:"image"`
	TotalRooms       int64         `json:"total_rooms"`
	VacantRooms      int64         `json:"vacant_rooms"`
	OccupiedRooms    int64         `json:"occupied_rooms"`
	MaintenanceRooms int64         `json:"maintenance_rooms"`
	OccupancyRate    float64       `json:"occupancy_rate"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// PropertyQuery holds the filters of the property listing
type PropertyQuery struct {
	ListParams
	Owner string
}

// requireLandlord rejects tenants; superusers always pass
func requireLandlord(actor *models.User) error {
	if actor.IsSuperuser || actor.IsLandlord() {
		return nil
	}
	return apperrors.ErrOnlyLandlords
}

// Create creates a property owned by the actor
func (s *PropertyService) Create(ctx context.Context, actor *models.User, req *CreatePropertyRequest) (*PropertyResponse, error) {
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}

	ownerID := actor.ID
	if req.Owner != nil && *req.Owner != actor.ID {
		if !actor.IsSuperuser {
			return nil, apperrors.NewAuthorizationError("you can only create properties for yourself")
		}
		ownerID = *req.Owner
	}

	property := &models.Property{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	s.audit.LogCreate(ctx, actor, property)

	return s.toResponse(property, repository.RoomStats{}), nil
}

// Get returns a visible property with its room statistics
func (s *PropertyService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*PropertyResponse, error) {
	property, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.RoomStats(ctx, []uuid.UUID{property.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load room statistics: %w", err)
	}
	return s.toResponse(property, stats[property.ID]), nil
}

// List returns the properties visible to the actor
func (s *PropertyService) List(ctx context.Context, actor *models.User, q PropertyQuery) (*ListResponse[PropertyResponse], error) {
	var filter repository.PropertyFilter
	var err error
	if filter.OwnerID, err = parseUUIDFilter("owner", q.Owner); err != nil {
		return nil, err
	}

	properties, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	stats, err := s.repo.RoomStats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load room statistics: %w", err)
	}

	items := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, *s.toResponse(&properties[i], stats[properties[i].ID]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update to a visible property
func (s *PropertyService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdatePropertyRequest) (*PropertyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	property, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(property)

	if req.Name != nil {
		property.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Image != nil {
		property.Image = *req.Image
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, property)

	return s.Get(ctx, actor, id)
}

// Delete removes a visible property and its rooms
func (s *PropertyService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	property, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, property)
	return nil
}

func (s *PropertyService) toResponse(p *models.Property, stats repository.RoomStats) *PropertyResponse {
	resp := &PropertyResponse{
		ID:               p.ID,
		Owner:            p.OwnerID,
		Name:             p.Name,
		Address:          p.Address,
		Description:      p.Description,
		Image:            p.Image,
		TotalRooms:       stats.Total,
		VacantRooms:      stats.Vacant,
		OccupiedRooms:    stats.Occupied,
		MaintenanceRooms: stats.Maintenance,
		OccupancyRate:    stats.OccupancyRate(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Owner != nil {
		resp.OwnerDetail = &OwnerSummary{ID: p.Owner.ID, FullName: p.Owner.FullName, Email: p.Owner.Email}
	}
	return resp
}
