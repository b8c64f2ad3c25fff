package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RoomService handles business logic for rooms
type RoomService struct {
	repo       repository.RoomRepositoryInterface
	properties repository.PropertyRepositoryInterface
	audit      AuditorInterface
	validator  *validator.Validate
}

// NewRoomService creates a new room service
func NewRoomService(repo repository.RoomRepositoryInterface, properties repository.PropertyRepositoryInterface,
	audit AuditorInterface, validator *validator.Validate) *RoomService {
	return &RoomService{
		repo:       repo,
		properties: properties,
		audit:      audit,
		validator:  validator,
	}
}

var _ RoomServiceInterface = (*RoomService)(nil)

// CreateRoomRequest represents the request to create a room
type CreateRoomRequest struct {
	Building    uuid.UUID         `json:"building" validate:"required"`
	RoomNumber  string            `json:"room_number" validate:"required,max=50"`
	Floor       *int              `json:"floor"`
	Area        *float64          `json:"area" validate:"omitempty,gte=0"`
	BaseRent    float64           `json:"base_rent" validate:"gte=0"`
	Status      models.RoomStatus `json:"status" validate:"omitempty,oneof=vacant occupied maintenance"`
	Description string            `json:"description"`
	Image       string            `json:"image" validate:"max=500"`
}

// UpdateRoomRequest represents a partial room update
type UpdateRoomRequest struct {
	Building    *uuid.UUID         `json:"building"`
	RoomNumber  *string            `json:"room_number" validate:"omitempty,min=1,max=50"`
	Floor       *int               `json:"floor"`
	Area        *float64           `json:"area" validate:"omitempty,gte=0"`
	BaseRent    *float64           `json:"base_rent" validate:"omitempty,gte=0"`
	Status      *models.RoomStatus `json:"status" validate:"omitempty,oneof=vacant occupied maintenance"`
	Description *string            `json:"description"`
	Image       *string            `json:"image" validate:"omitempty,max=500"`
}

// PropertySummary is the nested building of a room
type PropertySummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// RoomResponse represents a room in API responses
type RoomResponse struct {
	ID             uuid.UUID         `json:"id"`
	Building       uuid.UUID         `json:"building"`
	BuildingDetail *PropertySummary  `json:"building_detail,omitempty"`
	RoomNumber     string            `json:"room_number"`
	Floor          int               `json:"floor"`
	Area           *float64          `json:"area"`
	BaseRent       float64           `json:"base_rent"`
	Status         models.RoomStatus `json:"status"`
	Description    string            `json:"description"`
	Image          string            `json:"image"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// RoomQuery holds the filters of the room listing
type RoomQuery struct {
	ListParams
	Building string
	Status   string
	FloorGTE string
	FloorLTE string
}

// ensureOwnsProperty loads a property and checks that actor may manage it
func ensureOwnsProperty(ctx context.Context, properties repository.PropertyRepositoryInterface, actor *models.User, id uuid.UUID) (*models.Property, error) {
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	property, err := properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperuser && property.OwnerID != actor.ID {
		return nil, apperrors.ErrNotPropertyOwner
	}
	return property, nil
}

// Create creates a room in a property owned by the actor
func (s *RoomService) Create(ctx context.Context, actor *models.User, req *CreateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	property, err := ensureOwnsProperty(ctx, s.properties, actor, req.Building)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.RoomNumber)
	taken, err := s.repo.NumberTaken(ctx, property.ID, number, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if taken {
		return nil, apperrors.ErrRoomExists
	}

	room := &models.Room{
		BuildingID:  property.ID,
		Building:    property,
		RoomNumber:  number,
		Floor:       1,
		Area:        req.Area,
		BaseRent:    models.RoundMoney(req.BaseRent),
		Status:      models.RoomStatusVacant,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Status != "" {
		room.Status = req.Status
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	s.audit.LogCreate(ctx, actor, room)

	return toRoomResponse(room), nil
}

// Get returns a visible room
func (s *RoomService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*RoomResponse, error) {
	room, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return toRoomResponse(room), nil
}

// List returns the rooms visible to the actor
func (s *RoomService) List(ctx context.Context, actor *models.User, q RoomQuery) (*ListResponse[RoomResponse], error) {
	var filter repository.RoomFilter
	var err error
	if filter.BuildingID, err = parseUUIDFilter("building", q.Building); err != nil {
		return nil, err
	}
	for _, st := range splitList(q.Status) {
		status := models.RoomStatus(st)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if filter.FloorGTE, err = parseIntFilter("floor_gte", q.FloorGTE); err != nil {
		return nil, err
	}
	if filter.FloorLTE, err = parseIntFilter("floor_lte", q.FloorLTE); err != nil {
		return nil, err
	}

	rooms, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	items := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		items = append(items, *toRoomResponse(&rooms[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update to a room the actor manages
func (s *RoomService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	room, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	if _, err := ensureOwnsProperty(ctx, s.properties, actor, room.BuildingID); err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(room)

	if req.Building != nil && *req.Building != room.BuildingID {
		property, err := ensureOwnsProperty(ctx, s.properties, actor, *req.Building)
		if err != nil {
			return nil, err
		}
		room.BuildingID, room.Building = property.ID, property
	}
	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.Building != nil || req.RoomNumber != nil {
		taken, err := s.repo.NumberTaken(ctx, room.BuildingID, room.RoomNumber, room.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check room number: %w", err)
		}
		if taken {
			return nil, apperrors.ErrRoomExists
		}
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Area != nil {
		room.Area = req.Area
	}
	if req.BaseRent != nil {
		room.BaseRent = models.RoundMoney(*req.BaseRent)
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Image != nil {
		room.Image = *req.Image
	}

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, room)

	return toRoomResponse(room), nil
}

// Delete removes a room the actor manages
func (s *RoomService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	room, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if _, err := ensureOwnsProperty(ctx, s.properties, actor, room.BuildingID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, room)
	return nil
}

func toRoomResponse(r *models.Room) *RoomResponse {
	resp := &RoomResponse{
		ID:          r.ID,
		Building:    r.BuildingID,
		RoomNumber:  r.RoomNumber,
		Floor:       r.Floor,
		Area:        r.Area,
		BaseRent:    r.BaseRent,
		Status:      r.Status,
		Description: r.Description,
		Image:       r.Image,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Building != nil {
		resp.BuildingDetail = &PropertySummary{ID: r.Building.ID, Name: r.Building.Name, Address: r.Building.Address}
	}
	return resp
}

func parseIntFilter(field, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be an integer")
	}
	return &n, nil
}
