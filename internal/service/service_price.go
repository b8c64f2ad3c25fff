package service

import (
	"context"
	"fmt"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ServicePriceService handles business logic for per-property service prices
type ServicePriceService struct {
	repo       repository.ServicePriceRepositoryInterface
	properties repository.PropertyRepositoryInterface
	validator  *validator.Validate
}

// NewServicePriceService creates a new service price service
func NewServicePriceService(repo repository.ServicePriceRepositoryInterface, properties repository.PropertyRepositoryInterface,
	validator *validator.Validate) *ServicePriceService {
	return &ServicePriceService{
		repo:       repo,
		properties: properties,
		validator:  validator,
	}
}

var _ ServicePriceServiceInterface = (*ServicePriceService)(nil)

// CreateServicePriceRequest represents the request to create a service price
type CreateServicePriceRequest struct {
	Property    uuid.UUID          `json:"property" validate:"required"`
	ServiceType models.ServiceType `json:"service_type" validate:"required,oneof=electricity water internet cleaning parking other"`
	Name        string             `json:"name" validate:"max=100"`
	UnitPrice   float64            `json:"unit_price" validate:"gte=0"`
	Unit        string             `json:"unit" validate:"max=20"`
	IsRecurring bool               `json:"is_recurring"`
}

// UpdateServicePriceRequest represents a partial service price update
type UpdateServicePriceRequest struct {
	ServiceType *models.ServiceType `json:"service_type" validate:"omitempty,oneof=electricity water internet cleaning parking other"`
	Name        *string             `json:"name" validate:"omitempty,max=100"`
	UnitPrice   *float64            `json:"unit_price" validate:"omitempty,gte=0"`
	Unit        *string             `json:"unit" validate:"omitempty,max=20"`
	IsRecurring *bool               `json:"is_recurring"`
}

// ServicePriceResponse represents a service price in API responses
type ServicePriceResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Property           uuid.UUID          `json:"property"`
	PropertyDetail     *PropertySummary   `json:"property_detail,omitempty"`
	ServiceType        models.ServiceType `json:"service_type"`
	ServiceTypeDisplay string             `json:"service_type_display"`
	Name               string             `json:"name"`
	DisplayName        string             `json:"display_name"`
	UnitPrice          float64            `json:"unit_price"`
	Unit               string             `json:"unit"`
	IsRecurring        bool               `json:"is_recurring"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ServicePriceQuery holds the filters of the service price listing
type ServicePriceQuery struct {
	ListParams
	Property    string
	ServiceType string
}

// Create adds a price for a service type to a property the actor owns
func (s *ServicePriceService) Create(ctx context.Context, actor *models.User, req *CreateServicePriceRequest) (*ServicePriceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	property, err := ensureOwnsProperty(ctx, s.properties, actor, req.Property)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTypeFree(ctx, property.ID, req.ServiceType, uuid.Nil); err != nil {
		return nil, err
	}

	price := &models.ServicePrice{
		PropertyID:  property.ID,
		Property:    property,
		ServiceType: req.ServiceType,
		Name:        req.Name,
		UnitPrice:   models.RoundMoney(req.UnitPrice),
		Unit:        req.Unit,
		IsRecurring: req.IsRecurring,
	}
	if err := s.repo.Create(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to create service price: %w", err)
	}
	return toServicePriceResponse(price), nil
}

func (s *ServicePriceService) ensureTypeFree(ctx context.Context, propertyID uuid.UUID, t models.ServiceType, exclude uuid.UUID) error {
	taken, err := s.repo.TypeTaken(ctx, propertyID, t, exclude)
	if err != nil {
		return fmt.Errorf("failed to check service type: %w", err)
	}
	if taken {
		return apperrors.ErrServicePriceExists
	}
	return nil
}

// Get returns a visible service price
func (s *ServicePriceService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*ServicePriceResponse, error) {
	price, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}
	return toServicePriceResponse(price), nil
}

// List returns the service prices visible to the actor
func (s *ServicePriceService) List(ctx context.Context, actor *models.User, q ServicePriceQuery) (*ListResponse[ServicePriceResponse], error) {
	filter := repository.ServicePriceFilter{ServiceType: models.ServiceType(q.ServiceType)}
	var err error
	if filter.PropertyID, err = parseUUIDFilter("property", q.Property); err != nil {
		return nil, err
	}

	prices, total, err := s.repo.List(ctx, viewerOf(actor), filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list service prices: %w", err)
	}
	items := make([]ServicePriceResponse, 0, len(prices))
	for i := range prices {
		items = append(items, *toServicePriceResponse(&prices[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Update applies a partial update to a visible service price
func (s *ServicePriceService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateServicePriceRequest) (*ServicePriceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationErrors(err, "")
	}
	price, err := s.repo.GetVisible(ctx, viewerOf(actor), id)
	if err != nil {
		return nil, err
	}

	if req.ServiceType != nil && *req.ServiceType != price.ServiceType {
		if err := s.ensureTypeFree(ctx, price.PropertyID, *req.ServiceType, price.ID); err != nil {
			return nil, err
		}
		price.ServiceType = *req.ServiceType
	}
	if req.Name != nil {
		price.Name = *req.Name
	}
	if req.UnitPrice != nil {
		price.UnitPrice = models.RoundMoney(*req.UnitPrice)
	}
	if req.Unit != nil {
		price.Unit = *req.Unit
	}
	if req.IsRecurring != nil {
		price.IsRecurring = *req.IsRecurring
	}

	if err := s.repo.Update(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to update service price: %w", err)
	}
	return toServicePriceResponse(price), nil
}

// Delete removes a visible service price
func (s *ServicePriceService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if _, err := s.repo.GetVisible(ctx, viewerOf(actor), id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func toServicePriceResponse(p *models.ServicePrice) *ServicePriceResponse {
	resp := &ServicePriceResponse{
		ID:                 p.ID,
		Property:           p.PropertyID,
		ServiceType:        p.ServiceType,
		ServiceTypeDisplay: p.ServiceType.Label(),
		Name:               p.Name,
		DisplayName:        p.DisplayName(),
		UnitPrice:          p.UnitPrice,
		Unit:               p.Unit,
		IsRecurring:        p.IsRecurring,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.Property != nil {
		resp.PropertyDetail = &PropertySummary{ID: p.Property.ID, Name: p.Property.Name, Address: p.Property.Address}
	}
	return resp
}
