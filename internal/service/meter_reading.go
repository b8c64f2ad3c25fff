package service

import (
	"context"
	"encoding/json"
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

// MeterReadingService handles business logic for electricity and water readings
type MeterReadingService struct {
	repo      repository.MeterReadingRepositoryInterface
	rooms     repository.RoomRepositoryInterface
	tenancies repository.TenancyRepositoryInterface
	audit     AuditorInterface
	notifier  NotifierInterface
	validator *validator.Validate
}

// NewMeterReadingService creates a new meter reading service
func NewMeterReadingService(repo repository.MeterReadingRepositoryInterface, rooms repository.RoomRepositoryInterface,
	tenancies repository.TenancyRepositoryInterface, audit AuditorInterface, notifier NotifierInterface,
	validator *validator.Validate) *MeterReadingService {
	return &MeterReadingService{
		repo:      repo,
		rooms:     rooms,
		tenancies: tenancies,
		audit:     audit,
		notifier:  notifier,
		validator: validator,
	}
}

var _ MeterReadingServiceInterface = (*MeterReadingService)(nil)

// CreateMeterReadingRequest represents a new meter reading
type CreateMeterReadingRequest struct {
	Room           uuid.UUID          `json:"room" validate:"required"`
	Period         string             `json:"period" validate:"required"`
	ElectricityOld *float64           `json:"electricity_old" validate:"omitempty,gte=0"`
	ElectricityNew *float64           `json:"electricity_new" validate:"omitempty,gte=0"`
	WaterOld       *float64           `json:"water_old" validate:"omitempty,gte=0"`
	WaterNew       *float64           `json:"water_new" validate:"omitempty,gte=0"`
	Source         models.MeterSource `json:"source" validate:"omitempty,oneof=manual ocr"`
	OCRImage       string             `json:"ocr_image" validate:"max=500"`
	OCRPayload     json.RawMessage    `json:"ocr_payload" swaggertype:"object"`
	Notes          string             `json:"notes"`
}

// UpdateMeterReadingRequest represents a partial meter reading update
type UpdateMeterReadingRequest struct {
	Period         *string             `json:"period"`
	ElectricityOld *float64            `json:"electricity_old" validate:"omitempty,gte=0"`
	ElectricityNew *float64            `json:"electricity_new" validate:"omitempty,gte=0"`
	WaterOld       *float64            `json:"water_old" validate:"omitempty,gte=0"`
	WaterNew       *float64            `json:"water_new" validate:"omitempty,gte=0"`
	Source         *models.MeterSource `json:"source" validate:"omitempty,oneof=manual ocr"`
	OCRImage       *string             `json:"ocr_image" validate:"omitempty,max=500"`
	OCRPayload     json.RawMessage     `json:"ocr_payload" swaggertype:"object"`
	Notes          *string             `json:"notes"`
}

// MeterReadingResponse represents a meter reading in API responses
type MeterReadingResponse struct {
	ID               uuid.UUID          `json:"id"`
	Room             uuid.UUID          `json:"room"`
	RoomDetail       *RoomSummary       `json:"room_detail,omitempty"`
	Period           string             `json:"period"`
	ElectricityOld   *float64           `json:"electricity_old"`
	ElectricityNew   *float64           `json:"electricity_new"`
	ElectricityUsage *float64           `json:"electricity_usage"`
	WaterOld         *float64           `json:"water_old"`
	WaterNew         *float64           `json:"water_new"`
	WaterUsage       *float64           `json:"water_usage"`
	Source           models.MeterSource `json:"source"`
	SourceDisplay    string             `json:"source_display"`
	OCRImage         string             `json:"ocr_image"`
	OCRPayload       json.RawMessage    `json:"ocr_payload" swaggertype:"object"`
	Notes            string             `json:"notes"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// MeterReadingQuery holds the filters of the meter reading listing
type MeterReadingQuery struct {
	ListParams
	Room     string
	Property string
	Period   string
}

func roundOptional(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := models.RoundMoney(*v)
	return &r
}

// checkMeters rejects readings whose new value is below the old one
func checkMeters(m *models.MeterReading) error {
	fe := apperrors.FieldErrors{}
	if m.ElectricityOld != nil && m.ElectricityNew != nil && *m.ElectricityNew < *m.ElectricityOld {
		fe.Add("electricity_new", apperrors.ErrMeterValueDecreased.Message)
	}
	if m.WaterOld != nil && m.WaterNew != nil && *m.WaterNew < *m.WaterOld {
		fe.Add("water_new", apperrors.ErrMeterValueDecreased.Message)
	}
	if fe.HasErrors() {
		return fe
	}
	return nil
}

// authorizeRoom checks that the actor owns the room or rents it actively
func (s *MeterReadingService) authorizeRoom(ctx context.Context, actor *models.User, room *models.Room) error {
	switch {
	case actor.IsSuperuser:
		return nil
	case actor.IsTenant():
		if _, err := s.tenancies.FindActive(ctx, room.ID, actor.ID); err != nil {
			if errors.Is(err, apperrors.ErrTenancyNotFound) {
				return apperrors.ErrNoActiveTenancy
			}
			return err
		}
		return nil
	}
	if room.Building == nil || room.Building.OwnerID != actor.ID {
		return apperrors.ErrNotPropertyOwner
	}
	return nil
}

// Create records a reading and tells the room's active tenant
func (s *MeterReadingService) Create(ctx context.Context, actor *models.User, req *CreateMeterReadingRequest) (*MeterReadingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	period := strings.TrimSpace(req.Period)
	if !validPeriod(period) {
		return nil, apperrors.ErrInvalidPeriodFormat
	}
	room, err := s.rooms.GetByID(ctx, req.Room)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRoom(ctx, actor, room); err != nil {
		return nil, err
	}

	reading := &models.MeterReading{
		RoomID:         room.ID,
		Period:         period,
		ElectricityOld: roundOptional(req.ElectricityOld),
		ElectricityNew: roundOptional(req.ElectricityNew),
		WaterOld:       roundOptional(req.WaterOld),
		WaterNew:       roundOptional(req.WaterNew),
		Source:         models.MeterSourceManual,
		OCRImage:       req.OCRImage,
		OCRPayload:     req.OCRPayload,
		Notes:          req.Notes,
	}
	if req.Source != "" {
		reading.Source = req.Source
	}
	if err := checkMeters(reading); err != nil {
		return nil, err
	}

	taken, err := s.repo.PeriodTaken(ctx, room.ID, period, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check reading period: %w", err)
	}
	if taken {
		return nil, apperrors.ErrMeterReadingExists
	}
	if err := s.repo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to create meter reading: %w", err)
	}
	reading.Room = room

	s.audit.LogCreate(ctx, actor, reading)
	if tenancy, err := s.tenancies.ActiveForRoom(ctx, room.ID); err == nil {
		s.notifier.MeterReadingSubmitted(ctx, reading, tenancy.TenantID)
	}

	return toMeterReadingResponse(reading), nil
}

// Get returns a visible reading
func (s *MeterReadingService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*MeterReadingResponse, error) {
	reading, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return toMeterReadingResponse(reading), nil
}

// List returns the readings visible to the actor
func (s *MeterReadingService) List(ctx context.Context, actor *models.User, q MeterReadingQuery) (*ListResponse[MeterReadingResponse], error) {
	filter := repository.MeterReadingFilter{Period: strings.TrimSpace(q.Period)}
	var err error
	if filter.RoomID, err = parseUUIDFilter("room", q.Room); err != nil {
		return nil, err
	}
	if filter.PropertyID, err = parseUUIDFilter("property", q.Property); err != nil {
		return nil, err
	}

	readings, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list meter readings: %w", err)
	}
	items := make([]MeterReadingResponse, 0, len(readings))
	for i := range readings {
		items = append(items, *toMeterReadingResponse(&readings[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update to a visible reading
func (s *MeterReadingService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateMeterReadingRequest) (*MeterReadingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	reading, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	if reading.Room != nil {
		if err := s.authorizeRoom(ctx, actor, reading.Room); err != nil {
			return nil, err
		}
	}
	before := s.audit.Snapshot(reading)

	if req.Period != nil {
		period := strings.TrimSpace(*req.Period)
		if !validPeriod(period) {
			return nil, apperrors.ErrInvalidPeriodFormat
		}
		if period != reading.Period {
			taken, err := s.repo.PeriodTaken(ctx, reading.RoomID, period, reading.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check reading period: %w", err)
			}
			if taken {
				return nil, apperrors.ErrMeterReadingExists
			}
		}
		reading.Period = period
	}
	if req.ElectricityOld != nil {
		reading.ElectricityOld = roundOptional(req.ElectricityOld)
	}
	if req.ElectricityNew != nil {
		reading.ElectricityNew = roundOptional(req.ElectricityNew)
	}
	if req.WaterOld != nil {
		reading.WaterOld = roundOptional(req.WaterOld)
	}
	if req.WaterNew != nil {
		reading.WaterNew = roundOptional(req.WaterNew)
	}
	if req.Source != nil {
		reading.Source = *req.Source
	}
	if req.OCRImage != nil {
		reading.OCRImage = *req.OCRImage
	}
	if req.OCRPayload != nil {
		reading.OCRPayload = req.OCRPayload
	}
	if req.Notes != nil {
		reading.Notes = *req.Notes
	}
	if err := checkMeters(reading); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to update meter reading: %w", err)
	}
	s.audit.LogUpdate(ctx, actor, before, reading)

	return toMeterReadingResponse(reading), nil
}

// Delete removes a visible reading
func (s *MeterReadingService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	reading, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return err
	}
	if err := requireLandlord(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.LogDelete(ctx, actor, reading)
	return nil
}

func toMeterReadingResponse(m *models.MeterReading) *MeterReadingResponse {
	resp := &MeterReadingResponse{
		ID:               m.ID,
		Room:             m.RoomID,
		Period:           m.Period,
		ElectricityOld:   m.ElectricityOld,
		ElectricityNew:   m.ElectricityNew,
		ElectricityUsage: m.ElectricityUsage(),
		WaterOld:         m.WaterOld,
		WaterNew:         m.WaterNew,
		WaterUsage:       m.WaterUsage(),
		Source:           m.Source,
		SourceDisplay:    "Manual",
		OCRImage:         m.OCRImage,
		OCRPayload:       m.OCRPayload,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Source == models.MeterSourceOCR {
		resp.SourceDisplay = "OCR"
	}
	if m.Room != nil {
		resp.RoomDetail = toRoomSummary(m.Room)
	}
	return resp
}
