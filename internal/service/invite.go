package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

// InviteTTL is how long an invite stays valid by default
const InviteTTL = 7 * 24 * time.Hour

// InviteService handles business logic for tenant invites
type InviteService struct {
	repo       repository.InviteRepositoryInterface
	properties repository.PropertyRepositoryInterface
	rooms      repository.RoomRepositoryInterface
	users      repository.UserRepositoryInterface
	tx         repository.Transactor
	audit      AuditorInterface
	notifier   NotifierInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(repo repository.InviteRepositoryInterface, properties repository.PropertyRepositoryInterface,
	rooms repository.RoomRepositoryInterface, users repository.UserRepositoryInterface, tx repository.Transactor,
	audit AuditorInterface, notifier NotifierInterface, validator *validator.Validate) *InviteService {
	return &InviteService{
		repo:       repo,
		properties: properties,
		rooms:      rooms,
		users:      users,
		tx:         tx,
		audit:      audit,
		notifier:   notifier,
		validator:  validator,
		now:        time.Now,
	}
}

var _ InviteServiceInterface = (*InviteService)(nil)

// SetClock overrides the time source
func (s *InviteService) SetClock(now func() time.Time) { s.now = now }

// CreateInviteRequest represents the request to invite a tenant
type CreateInviteRequest struct {
	Property     uuid.UUID  `json:"property" validate:"required"`
	Room         *uuid.UUID `json:"room"`
	Email        string     `json:"email" validate:"omitempty,email,max=254"`
	Phone        string     `json:"phone" validate:"omitempty,max=20"`
	ContractFile string     `json:"contract_file" validate:"max=500"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// UpdateInviteRequest represents a partial invite update
type UpdateInviteRequest struct {
	Status       *models.InviteStatus `json:"status" validate:"omitempty,oneof=pending accepted rejected expired"`
	ContractFile *string              `json:"contract_file" validate:"omitempty,max=500"`
	ExpiresAt    *time.Time           `json:"expires_at"`
}

// AcceptInviteRequest accepts an invite by its token
type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

// InviteResponse represents an invite in API responses
type InviteResponse struct {
	ID             uuid.UUID           `json:"id"`
	Property       uuid.UUID           `json:"property"`
	PropertyDetail *PropertySummary    `json:"property_detail,omitempty"`
	Room           *uuid.UUID          `json:"room"`
	RoomDetail     *RoomBrief          `json:"room_detail,omitempty"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Token          string              `json:"token"`
	Role           models.UserRole     `json:"role"`
	Status         models.InviteStatus `json:"status"`
	IsExpired      bool                `json:"is_expired"`
	ContractFile   string              `json:"contract_file"`
	ExpiresAt      time.Time           `json:"expires_at"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// InviteQuery holds the filters of the invite listing
type InviteQuery struct {
	ListParams
	Property string
	Status   string
}

func newInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// invitedTenant resolves the tenant an invite addresses, by email first and phone otherwise
func (s *InviteService) invitedTenant(ctx context.Context, email, phone string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if email != "" {
		user, err = s.users.GetByEmail(ctx, email)
	} else {
		user, err = s.users.GetByPhone(ctx, phone)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}
	if !user.IsTenant() {
		return nil, apperrors.ErrTenantRoleRequired
	}
	return user, nil
}

// Create invites an existing tenant to a property the actor owns
func (s *InviteService) Create(ctx context.Context, actor *models.User, req *CreateInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return nil, apperrors.ErrInviteContactRequired
	}
	if strings.TrimSpace(req.ContractFile) == "" {
		return nil, apperrors.ErrContractRequired
	}

	property, err := ensureOwnsProperty(ctx, s.properties, actor, req.Property)
	if err != nil {
		return nil, err
	}
	var room *models.Room
	if req.Room != nil {
		room, err = s.rooms.GetByID(ctx, *req.Room)
		if err != nil {
			return nil, err
		}
		if room.BuildingID != property.ID {
			return nil, apperrors.NewValidationError("room", "room does not belong to the property")
		}
	}

	tenant, err := s.invitedTenant(ctx, email, phone)
	if err != nil {
		return nil, err
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}
	invite := &models.Invite{
		PropertyID:   property.ID,
		Property:     property,
		RoomID:       req.Room,
		Room:         room,
		Email:        email,
		Phone:        phone,
		Token:        token,
		Role:         models.UserRoleTenant,
		Status:       models.InviteStatusPending,
		ContractFile: strings.TrimSpace(req.ContractFile),
		ExpiresAt:    s.now().Add(InviteTTL),
	}
	if req.ExpiresAt != nil {
		invite.ExpiresAt = *req.ExpiresAt
	}

	if err := s.repo.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	s.audit.LogCreate(ctx, actor, invite)
	s.notifier.InviteSent(ctx, invite, tenant)

	return s.toResponse(invite), nil
}

// Get returns a visible invite
func (s *InviteService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*InviteResponse, error) {
	invite, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(invite), nil
}

// List returns the invites visible to the actor
func (s *InviteService) List(ctx context.Context, actor *models.User, q InviteQuery) (*ListResponse[InviteResponse], error) {
	filter := repository.InviteFilter{Status: models.InviteStatus(q.Status)}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	var err error
	if filter.PropertyID, err = parseUUIDFilter("property", q.Property); err != nil {
		return nil, err
	}

	invites, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	items := make([]InviteResponse, 0, len(invites))
	for i := range invites {
		items = append(items, *s.toResponse(&invites[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update; moving to accepted or rejected runs the answer workflow
func (s *InviteService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	invite, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	if req.ContractFile != nil || req.ExpiresAt != nil {
		if err := requireLandlord(actor); err != nil {
			return nil, err
		}
	}
	before := s.audit.Snapshot(invite)

	if req.ContractFile != nil {
		invite.ContractFile = strings.TrimSpace(*req.ContractFile)
	}
	if req.ExpiresAt != nil {
		invite.ExpiresAt = *req.ExpiresAt
	}

	if req.Status != nil && *req.Status != invite.Status {
		switch *req.Status {
		case models.InviteStatusAccepted:
			return s.answer(ctx, actor, invite, before, true)
		case models.InviteStatusRejected:
			return s.answer(ctx, actor, invite, before, false)
		default:
			invite.Status = *req.Status
		}
	}

	if err := s.repo.Update(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to update invite: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, invite)
	return s.toResponse(invite), nil
}

// Accept resolves an invite by token for the invited tenant and accepts it
func (s *InviteService) Accept(ctx context.Context, actor *models.User, req *AcceptInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	invite, err := s.repo.GetByToken(ctx, strings.TrimSpace(req.Token))
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperuser && !inviteAddresses(invite, actor) {
		return nil, apperrors.ErrInviteNotFound
	}
	return s.answer(ctx, actor, invite, s.audit.Snapshot(invite), true)
}

func inviteAddresses(invite *models.Invite, user *models.User) bool {
	if invite.Email != "" && strings.EqualFold(invite.Email, user.Email) {
		return true
	}
	return invite.Phone != "" && user.Phone != nil && invite.Phone == *user.Phone
}

// answer accepts or rejects a pending invite.
// Accepting ensures one active tenancy for the invited tenant and marks the room occupied.
func (s *InviteService) answer(ctx context.Context, actor *models.User, invite *models.Invite, before Snapshot, accept bool) (*InviteResponse, error) {
	switch {
	case invite.Status == models.InviteStatusAccepted:
		return nil, apperrors.ErrInviteAlreadyAccepted
	case invite.Status == models.InviteStatusRejected:
		return nil, apperrors.ErrInviteAlreadyRejected
	case accept && (invite.Status == models.InviteStatusExpired || invite.IsExpired(s.now())):
		return nil, apperrors.ErrInviteExpired
	}

	tenant, err := s.invitedTenant(ctx, invite.Email, invite.Phone)
	if err != nil && !errors.Is(err, apperrors.ErrTenantNotFound) && !errors.Is(err, apperrors.ErrTenantRoleRequired) {
		return nil, err
	}

	if accept {
		invite.Status = models.InviteStatusAccepted
	} else {
		invite.Status = models.InviteStatusRejected
	}

	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Invites.Update(ctx, invite); err != nil {
			return fmt.Errorf("failed to update invite: %w", err)
		}
		if tenant == nil || !accept {
			return nil
		}
		if invite.RoomID != nil {
			if err := s.ensureTenancy(ctx, repos, invite, tenant); err != nil {
				return err
			}
		}
		if _, err := repos.Notifications.MarkRelatedRead(ctx, tenant.ID, relatedInvite, invite.ID.String(), s.now()); err != nil {
			return fmt.Errorf("failed to mark invite notifications read: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.LogUpdate(ctx, actor, before, invite)
	if accept {
		s.notifier.InviteAccepted(ctx, invite)
	} else {
		if tenant != nil {
			s.notifier.MarkInviteRead(ctx, tenant.ID, invite.ID)
		}
		s.notifier.InviteRejected(ctx, invite)
	}
	return s.toResponse(invite), nil
}

func (s *InviteService) ensureTenancy(ctx context.Context, repos *repository.Repositories, invite *models.Invite, tenant *models.User) error {
	if _, err := repos.Tenancies.FindActive(ctx, *invite.RoomID, tenant.ID); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrTenancyNotFound) {
		return err
	}

	room, err := repos.Rooms.GetByID(ctx, *invite.RoomID)
	if err != nil {
		return err
	}
	tenancy := &models.Tenancy{
		RoomID:       room.ID,
		TenantID:     tenant.ID,
		StartDate:    models.DateOnly(s.now()),
		BaseRent:     room.BaseRent,
		Status:       models.TenancyStatusActive,
		ContractFile: invite.ContractFile,
	}
	if err := repos.Tenancies.Create(ctx, tenancy); err != nil {
		return fmt.Errorf("failed to create tenancy: %w", err)
	}
	return repos.Rooms.UpdateStatus(ctx, room.ID, models.RoomStatusOccupied)
}

// Delete removes an invite the actor manages
func (s *InviteService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if err := requireLandlord(actor); err != nil {
		return err
	}
	invite, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, invite)
	return nil
}

func (s *InviteService) toResponse(i *models.Invite) *InviteResponse {
	resp := &InviteResponse{
		ID:           i.ID,
		Property:     i.PropertyID,
		Room:         i.RoomID,
		Email:        i.Email,
		Phone:        i.Phone,
		Token:        i.Token,
		Role:         i.Role,
		Status:       i.Status,
		IsExpired:    i.IsExpired(s.now()),
		ContractFile: i.ContractFile,
		ExpiresAt:    i.ExpiresAt,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if i.Property != nil {
		resp.PropertyDetail = &PropertySummary{ID: i.Property.ID, Name: i.Property.Name, Address: i.Property.Address}
	}
	if i.Room != nil {
		resp.RoomDetail = &RoomBrief{ID: i.Room.ID, RoomNumber: i.Room.RoomNumber, Floor: i.Room.Floor}
	}
	return resp
}
