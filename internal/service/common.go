package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ListParams carries the common query parameters of list endpoints
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
}

// Normalize clamps page and page size to their allowed ranges
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p ListParams) options() repository.ListOptions {
	p = p.Normalize()
	return repository.ListOptions{
		Limit:    p.PageSize,
		Offset:   (p.Page - 1) * p.PageSize,
		Search:   p.Search,
		Ordering: p.Ordering,
	}
}

// ListResponse is the paginated envelope returned by every list endpoint
type ListResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func newListResponse[T any](items []T, total int64, p ListParams) *ListResponse[T] {
	p = p.Normalize()
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}
}

// NewValidator returns a validator that reports fields by their json names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func viewerOf(actor *models.User) repository.Viewer {
	return repository.ViewerFromUser(actor)
}

// ValidationErrors converts validator output for callers outside this package
func ValidationErrors(err error) error {
	return validationErrors(err, "")
}

// validationErrors converts validator output into field errors keyed by json name
func validationErrors(err error, prefix string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := apperrors.FieldErrors{}
	for _, v := range verrs {
		fe.Add(prefix+jsonFieldName(v.Field()), validationMessage(v))
	}
	return fe
}

func validationMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", v.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", v.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", v.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", v.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", v.Param())
	}
	return fmt.Sprintf("failed on the '%s' rule", v.Tag())
}

// jsonFieldName turns a Go field name such as BaseRent into base_rent
func jsonFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validPeriod(period string) bool {
	return periodPattern.MatchString(period)
}

// parseDate parses a YYYY-MM-DD date at midnight UTC
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	return t, nil
}

func dateError(field string) error {
	return apperrors.NewValidationError(field, "date must use the YYYY-MM-DD format")
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// parseTimestamp accepts RFC3339 timestamps or plain dates
func parseTimestamp(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func invalidUUID(field string) error {
	return apperrors.NewValidationError(field, "must be a valid UUID")
}

// parseUUIDFilter parses an optional id query parameter
func parseUUIDFilter(field, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, invalidUUID(field)
	}
	return &id, nil
}

// splitList splits a comma separated query value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
