package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaintenanceService handles business logic for maintenance requests
type MaintenanceService struct {
	repo      repository.MaintenanceRepositoryInterface
	rooms     repository.RoomRepositoryInterface
	tenancies repository.TenancyRepositoryInterface
	users     repository.UserRepositoryInterface
	audit     AuditorInterface
	notifier  NotifierInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repo repository.MaintenanceRepositoryInterface, rooms repository.RoomRepositoryInterface,
	tenancies repository.TenancyRepositoryInterface, users repository.UserRepositoryInterface,
	audit AuditorInterface, notifier NotifierInterface, validator *validator.Validate) *MaintenanceService {
	return &MaintenanceService{
		repo:      repo,
		rooms:     rooms,
		tenancies: tenancies,
		users:     users,
		audit:     audit,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

var _ MaintenanceServiceInterface = (*MaintenanceService)(nil)

// SetClock overrides the time source
func (s *MaintenanceService) SetClock(now func() time.Time) { s.now = now }

// CreateMaintenanceRequest represents a new repair request
type CreateMaintenanceRequest struct {
	Room                uuid.UUID                  `json:"room" validate:"required"`
	Title               string                     `json:"title" validate:"required,max=200"`
	Description         string                     `json:"description"`
	Category            models.MaintenanceCategory `json:"category" validate:"omitempty,oneof=electricity plumbing appliance furniture internet other"`
	AIPredictedCategory string                     `json:"ai_predicted_category" validate:"omitempty,oneof=electricity plumbing appliance furniture internet other"`
	AIConfidence        *float64                   `json:"ai_confidence" validate:"omitempty,gte=0,lte=1"`
}

// UpdateMaintenanceRequest represents a partial maintenance request update.
// Assignee accepts a user id, or an empty string to unassign.
type UpdateMaintenanceRequest struct {
	Title          *string                     `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string                     `json:"description"`
	Category       *models.MaintenanceCategory `json:"category" validate:"omitempty,oneof=electricity plumbing appliance furniture internet other"`
	Status         *models.MaintenanceStatus   `json:"status" validate:"omitempty,oneof=pending in_progress done rejected"`
	Assignee       *string                     `json:"assignee"`
	ResolutionNote *string                     `json:"resolution_note"`
}

// CreateAttachmentRequest attaches an uploaded file to a request
type CreateAttachmentRequest struct {
	Request uuid.UUID `json:"request" validate:"required"`
	File    string    `json:"file" validate:"required,max=500"`
}

// UserBrief is the minimal user shown on nested objects
type UserBrief struct {
	ID       uuid.UUID       `json:"id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// AttachmentResponse represents a maintenance attachment in API responses
type AttachmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Request   uuid.UUID `json:"request"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

// MaintenanceResponse represents a maintenance request in API responses
type MaintenanceResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	Room                uuid.UUID                  `json:"room"`
	RoomDetail          *RoomSummary               `json:"room_detail,omitempty"`
	Requester           uuid.UUID                  `json:"requester"`
	RequesterDetail     *UserBrief                 `json:"requester_detail,omitempty"`
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	Category            models.MaintenanceCategory `json:"category"`
	AIPredictedCategory string                     `json:"ai_predicted_category"`
	AIConfidence        *float64                   `json:"ai_confidence"`
	Status              models.MaintenanceStatus   `json:"status"`
	Assignee            *uuid.UUID                 `json:"assignee"`
	AssigneeDetail      *UserBrief                 `json:"assignee_detail,omitempty"`
	ResolvedAt          *time.Time                 `json:"resolved_at"`
	ResolutionNote      string                     `json:"resolution_note"`
	Attachments         []AttachmentResponse       `json:"attachments"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

// MaintenanceQuery holds the filters of the maintenance listing
type MaintenanceQuery struct {
	ListParams
	Room     string
	Status   string
	Category string
}

// AttachmentQuery holds the filters of the attachment listing
type AttachmentQuery struct {
	ListParams
	Request string
}

// Create files a request for a room the actor rents or owns
func (s *MaintenanceService) Create(ctx context.Context, actor *models.User, req *CreateMaintenanceRequest) (*MaintenanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	room, err := s.rooms.GetByID(ctx, req.Room)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsSuperuser:
	case actor.IsTenant():
		if _, err := s.tenancies.FindActive(ctx, room.ID, actor.ID); err != nil {
			if errors.Is(err, apperrors.ErrTenancyNotFound) {
				return nil, apperrors.ErrNoActiveTenancy
			}
			return nil, err
		}
	default:
		if room.Building == nil || room.Building.OwnerID != actor.ID {
			return nil, apperrors.ErrNotPropertyOwner
		}
	}

	request := &models.MaintenanceRequest{
		RoomID:              room.ID,
		RequesterID:         actor.ID,
		Title:               strings.TrimSpace(req.Title),
		Description:         req.Description,
		Category:            models.MaintenanceCategoryOther,
		AIPredictedCategory: req.AIPredictedCategory,
		AIConfidence:        req.AIConfidence,
		Status:              models.MaintenanceStatusPending,
	}
	if req.Category != "" {
		request.Category = req.Category
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %w", err)
	}
	request.Room, request.Requester = room, actor

	s.audit.LogCreate(ctx, actor, request)
	s.notifier.MaintenanceCreated(ctx, request)

	return toMaintenanceResponse(request), nil
}

// Get returns a visible request
func (s *MaintenanceService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*MaintenanceResponse, error) {
	request, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(request), nil
}

// List returns the requests visible to the actor
func (s *MaintenanceService) List(ctx context.Context, actor *models.User, q MaintenanceQuery) (*ListResponse[MaintenanceResponse], error) {
	filter := repository.MaintenanceFilter{
		Status:   models.MaintenanceStatus(q.Status),
		Category: models.MaintenanceCategory(q.Category),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	var err error
	if filter.RoomID, err = parseUUIDFilter("room", q.Room); err != nil {
		return nil, err
	}

	requests, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	items := make([]MaintenanceResponse, 0, len(requests))
	for i := range requests {
		items = append(items, *toMaintenanceResponse(&requests[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update. Status, assignee and resolution changes are reserved for landlords.
func (s *MaintenanceService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateMaintenanceRequest) (*MaintenanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	request, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil || req.Assignee != nil || req.ResolutionNote != nil {
		if err := requireLandlord(actor); err != nil {
			return nil, err
		}
	}
	before := s.audit.Snapshot(request)
	oldStatus := request.Status
	oldAssignee := request.AssigneeID

	if req.Title != nil {
		request.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Category != nil {
		request.Category = *req.Category
	}
	if req.ResolutionNote != nil {
		request.ResolutionNote = *req.ResolutionNote
	}
	if req.Assignee != nil {
		if strings.TrimSpace(*req.Assignee) == "" {
			request.AssigneeID, request.Assignee = nil, nil
		} else {
			assigneeID, err := uuid.Parse(strings.TrimSpace(*req.Assignee))
			if err != nil {
				return nil, invalidUUID("assignee")
			}
			assignee, err := s.users.GetByID(ctx, assigneeID)
			if err != nil {
				return nil, err
			}
			request.AssigneeID, request.Assignee = &assignee.ID, assignee
		}
	}
	if req.Status != nil {
		request.Status = *req.Status
		if request.Status == models.MaintenanceStatusDone && request.ResolvedAt == nil {
			resolved := s.now()
			request.ResolvedAt = &resolved
		}
	}

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, request)

	if request.AssigneeID != nil && !sameUUID(oldAssignee, request.AssigneeID) {
		s.notifier.MaintenanceAssigned(ctx, request)
	}
	if request.Status != oldStatus {
		s.notifier.MaintenanceStatusChanged(ctx, request, oldStatus)
	}

	return toMaintenanceResponse(request), nil
}

// Delete removes a visible request
func (s *MaintenanceService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	request, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, request)
	return nil
}

// CreateAttachment attaches a file to a visible request
func (s *MaintenanceService) CreateAttachment(ctx context.Context, actor *models.User, req *CreateAttachmentRequest) (*AttachmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if _, err := s.repo.GetVisible(ctx, viewerOf(actor), req.Request); err != nil {
		return nil, err
	}
	att := &models.MaintenanceAttachment{RequestID: req.Request, File: strings.TrimSpace(req.File)}
	if err := s.repo.CreateAttachment(ctx, att); err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	resp := toAttachmentResponse(att)
	return &resp, nil
}

// GetAttachment returns a visible attachment
func (s *MaintenanceService) GetAttachment(ctx context.Context, actor *models.User, id uuid.UUID) (*AttachmentResponse, error) {
	att, err := s.repo.GetVisibleAttachment(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	resp := toAttachmentResponse(att)
	return &resp, nil
}

// ListAttachments returns the attachments visible to the actor
func (s *MaintenanceService) ListAttachments(ctx context.Context, actor *models.User, q AttachmentQuery) (*ListResponse[AttachmentResponse], error) {
	requestID, err := parseUUIDFilter("request", q.Request)
	if err != nil {
		return nil, err
	}
	atts, total, err := s.repo.ListAttachments(ctx, viewerOf(actor), requestID, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	items := make([]AttachmentResponse, 0, len(atts))
	for i := range atts {
		items = append(items, toAttachmentResponse(&atts[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// DeleteAttachment removes a visible attachment
func (s *MaintenanceService) DeleteAttachment(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if _, err := s.repo.GetVisibleAttachment(ctx, viewerOf(actor), id); err != nil {
		return err
	}
	return s.repo.DeleteAttachment(ctx, id)
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func toUserBrief(u *models.User) *UserBrief {
	if u == nil {
		return nil
	}
	return &UserBrief{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}

func toAttachmentResponse(a *models.MaintenanceAttachment) AttachmentResponse {
	return AttachmentResponse{ID: a.ID, Request: a.RequestID, File: a.File, CreatedAt: a.CreatedAt}
}

func toMaintenanceResponse(m *models.MaintenanceRequest) *MaintenanceResponse {
	resp := &MaintenanceResponse{
		ID:                  m.ID,
		Room:                m.RoomID,
		Requester:           m.RequesterID,
		RequesterDetail:     toUserBrief(m.Requester),
		Title:               m.Title,
		Description:         m.Description,
		Category:            m.Category,
		AIPredictedCategory: m.AIPredictedCategory,
		AIConfidence:        m.AIConfidence,
		Status:              m.Status,
		Assignee:            m.AssigneeID,
		AssigneeDetail:      toUserBrief(m.Assignee),
		ResolvedAt:          m.ResolvedAt,
		ResolutionNote:      m.ResolutionNote,
		Attachments:         make([]AttachmentResponse, 0, len(m.Attachments)),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	for i := range m.Attachments {
		resp.Attachments = append(resp.Attachments, toAttachmentResponse(&m.Attachments[i]))
	}
	if m.Room != nil {
		resp.RoomDetail = toRoomSummary(m.Room)
	}
	return resp
}
