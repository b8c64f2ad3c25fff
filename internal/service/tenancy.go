package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TenancyService handles business logic for tenancies
type TenancyService struct {
	repo      repository.TenancyRepositoryInterface
	rooms     repository.RoomRepositoryInterface
	users     repository.UserRepositoryInterface
	tx        repository.Transactor
	audit     AuditorInterface
	notifier  NotifierInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewTenancyService creates a new tenancy service
func NewTenancyService(repo repository.TenancyRepositoryInterface, rooms repository.RoomRepositoryInterface,
	users repository.UserRepositoryInterface, tx repository.Transactor, audit AuditorInterface,
	notifier NotifierInterface, validator *validator.Validate) *TenancyService {
	return &TenancyService{
		repo:      repo,
		rooms:     rooms,
		users:     users,
		tx:        tx,
		audit:     audit,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
	}
}

var _ TenancyServiceInterface = (*TenancyService)(nil)

// SetClock overrides the time source
func (s *TenancyService) SetClock(now func() time.Time) { s.now = now }

// CreateTenancyRequest represents the request to create a tenancy
type CreateTenancyRequest struct {
	Room         uuid.UUID            `json:"room" validate:"required"`
	Tenant       uuid.UUID            `json:"tenant" validate:"required"`
	StartDate    string               `json:"start_date" validate:"required"`
	EndDate      *string              `json:"end_date"`
	Deposit      float64              `json:"deposit" validate:"gte=0"`
	BaseRent     *float64             `json:"base_rent" validate:"omitempty,gte=0"`
	Status       models.TenancyStatus `json:"status" validate:"omitempty,oneof=active expired terminated"`
	ContractFile string               `json:"contract_file" validate:"max=500"`
	Notes        string               `json:"notes"`
}

// UpdateTenancyRequest represents a partial tenancy update
type UpdateTenancyRequest struct {
	StartDate    *string               `json:"start_date"`
	EndDate      *string               `json:"end_date"`
	Deposit      *float64              `json:"deposit" validate:"omitempty,gte=0"`
	BaseRent     *float64              `json:"base_rent" validate:"omitempty,gte=0"`
	Status       *models.TenancyStatus `json:"status" validate:"omitempty,oneof=active expired terminated"`
	ContractFile *string               `json:"contract_file" validate:"omitempty,max=500"`
	Notes        *string               `json:"notes"`
}

// TenantSummary is the nested tenant of a tenancy
type TenantSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone"`
	Avatar   string    `json:"avatar"`
}

// RoomSummary is the nested room of a tenancy
type RoomSummary struct {
	ID         uuid.UUID         `json:"id"`
	RoomNumber string            `json:"room_number"`
	Floor      int               `json:"floor"`
	Area       *float64          `json:"area"`
	BaseRent   float64           `json:"base_rent"`
	Status     models.RoomStatus `json:"status"`
	Building   *PropertySummary  `json:"building"`
}

// TenancyResponse represents a tenancy in API responses
type TenancyResponse struct {
	ID            uuid.UUID            `json:"id"`
	Room          uuid.UUID            `json:"room"`
	RoomDetail    *RoomSummary         `json:"room_detail,omitempty"`
	Tenant        uuid.UUID            `json:"tenant"`
	TenantDetail  *TenantSummary       `json:"tenant_detail,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       *string              `json:"end_date"`
	Deposit       float64              `json:"deposit"`
	BaseRent      float64              `json:"base_rent"`
	Status        models.TenancyStatus `json:"status"`
	IsActive      bool                 `json:"is_active"`
	DaysRemaining *int                 `json:"days_remaining"`
	ContractFile  string               `json:"contract_file"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// TenancyQuery holds the filters of the tenancy listing
type TenancyQuery struct {
	ListParams
	Room     string
	Tenant   string
	Property string
	Status   string
}

// Create starts a tenancy for a tenant in a room the actor manages
func (s *TenancyService) Create(ctx context.Context, actor *models.User, req *CreateTenancyRequest) (*TenancyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, dateError("start_date")
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, dateError("end_date")
	}
	if end != nil && end.Before(start) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}

	room, err := s.rooms.GetByID(ctx, req.Room)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperuser && (room.Building == nil || room.Building.OwnerID != actor.ID) {
		return nil, apperrors.ErrNotPropertyOwner
	}

	tenant, err := s.users.GetByID(ctx, req.Tenant)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}
	if !tenant.IsTenant() {
		return nil, apperrors.ErrTenantRoleRequired
	}

	tenancy := &models.Tenancy{
		RoomID:       room.ID,
		TenantID:     tenant.ID,
		StartDate:    start,
		EndDate:      end,
		Deposit:      models.RoundMoney(req.Deposit),
		BaseRent:     room.BaseRent,
		Status:       models.TenancyStatusActive,
		ContractFile: req.ContractFile,
		Notes:        req.Notes,
	}
	if req.BaseRent != nil {
		tenancy.BaseRent = models.RoundMoney(*req.BaseRent)
	}
	if req.Status != "" {
		tenancy.Status = req.Status
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Tenancies.Create(ctx, tenancy); err != nil {
			return fmt.Errorf("failed to create tenancy: %w", err)
		}
		if tenancy.IsActive() {
			return repos.Rooms.UpdateStatus(ctx, room.ID, models.RoomStatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if tenancy.IsActive() {
		room.Status = models.RoomStatusOccupied
	}
	tenancy.Room, tenancy.Tenant = room, tenant

	s.audit.LogCreate(ctx, actor, tenancy)
	s.notifier.TenancyCreated(ctx, tenancy)

	return s.toResponse(tenancy), nil
}

// Get returns a visible tenancy
func (s *TenancyService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*TenancyResponse, error) {
	tenancy, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tenancy), nil
}

// List returns the tenancies visible to the actor
func (s *TenancyService) List(ctx context.Context, actor *models.User, q TenancyQuery) (*ListResponse[TenancyResponse], error) {
	filter := repository.TenancyFilter{Status: models.TenancyStatus(q.Status)}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	var err error
	if filter.RoomID, err = parseUUIDFilter("room", q.Room); err != nil {
		return nil, err
	}
	if filter.TenantID, err = parseUUIDFilter("tenant", q.Tenant); err != nil {
		return nil, err
	}
	if filter.PropertyID, err = parseUUIDFilter("property", q.Property); err != nil {
		return nil, err
	}

	tenancies, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list tenancies: %w", err)
	}
	items := make([]TenancyResponse, 0, len(tenancies))
	for i := range tenancies {
		items = append(items, *s.toResponse(&tenancies[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update; ending an active tenancy frees the room
func (s *TenancyService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateTenancyRequest) (*TenancyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	if err := requireLandlord(actor); err != nil {
		return nil, err
	}
	tenancy, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	before := s.audit.Snapshot(tenancy)
	wasActive := tenancy.IsActive()

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, dateError("start_date")
		}
		tenancy.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return nil, dateError("end_date")
		}
		tenancy.EndDate = end
	}
	if tenancy.EndDate != nil && tenancy.EndDate.Before(tenancy.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}
	if req.Deposit != nil {
		tenancy.Deposit = models.RoundMoney(*req.Deposit)
	}
	if req.BaseRent != nil {
		tenancy.BaseRent = models.RoundMoney(*req.BaseRent)
	}
	if req.Status != nil {
		tenancy.Status = *req.Status
	}
	if req.ContractFile != nil {
		tenancy.ContractFile = *req.ContractFile
	}
	if req.Notes != nil {
		tenancy.Notes = *req.Notes
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Tenancies.Update(ctx, tenancy); err != nil {
			return fmt.Errorf("failed to update tenancy: %w", err)
		}
		switch {
		case wasActive && !tenancy.IsActive():
			return releaseRoom(ctx, repos, tenancy.RoomID)
		case !wasActive && tenancy.IsActive():
			return repos.Rooms.UpdateStatus(ctx, tenancy.RoomID, models.RoomStatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.LogUpdate(ctx, actor, before, tenancy)

	return s.Get(ctx, actor, id)
}

// releaseRoom marks a room vacant once no active tenancy remains on it
func releaseRoom(ctx context.Context, repos *repository.Repositories, roomID uuid.UUID) error {
	_, err := repos.Tenancies.ActiveForRoom(ctx, roomID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrTenancyNotFound) {
		return err
	}
	room, err := repos.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status != models.RoomStatusOccupied {
		return nil
	}
	return repos.Rooms.UpdateStatus(ctx, roomID, models.RoomStatusVacant)
}

// Delete removes a visible tenancy
func (s *TenancyService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if err := requireLandlord(actor); err != nil {
		return err
	}
	tenancy, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Tenancies.Delete(ctx, id); err != nil {
			return err
		}
		if tenancy.IsActive() {
			return releaseRoom(ctx, repos, tenancy.RoomID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, tenancy)
	return nil
}

func (s *TenancyService) toResponse(t *models.Tenancy) *TenancyResponse {
	resp := &TenancyResponse{
		ID:            t.ID,
		Room:          t.RoomID,
		Tenant:        t.TenantID,
		StartDate:     t.StartDate.Format("2006-01-02"),
		EndDate:       formatDate(t.EndDate),
		Deposit:       t.Deposit,
		BaseRent:      t.BaseRent,
		Status:        t.Status,
		IsActive:      t.IsActive(),
		DaysRemaining: t.DaysRemaining(s.now()),
		ContractFile:  t.ContractFile,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.Tenant != nil {
		resp.TenantDetail = toTenantSummary(t.Tenant)
	}
	if t.Room != nil {
		resp.RoomDetail = toRoomSummary(t.Room)
	}
	return resp
}

func toTenantSummary(u *models.User) *TenantSummary {
	return &TenantSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
	}
}

func toRoomSummary(r *models.Room) *RoomSummary {
	summary := &RoomSummary{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		Area:       r.Area,
		BaseRent:   r.BaseRent,
		Status:     r.Status,
	}
	if r.Building != nil {
		summary.Building = &PropertySummary{ID: r.Building.ID, Name: r.Building.Name, Address: r.Building.Address}
	}
	return summary
}
