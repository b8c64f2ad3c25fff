package service

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm/schema"
)

const maxUserAgentLength = 500

var skippedAuditFields = map[string]bool{"id": true, "created_at": true, "updated_at": true}

type requestInfoKey struct{}

// RequestInfo is the client address and agent recorded with audit entries
type RequestInfo struct {
	IPAddress string
	UserAgent string
}

// WithRequestInfo stores the client information of the current request in ctx
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func requestInfoFrom(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info
}

// Snapshot is the column-name to string-value view of a model used for diffs
type Snapshot map[string]*string

// FieldChange is one entry of an audit diff
type FieldChange struct {
	Old *string `json:"old"`
	New *string `json:"new"`
}

// AuditLogResponse represents an audit log entry in API responses
type AuditLogResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     *uuid.UUID         `json:"user_id"`
	UserEmail  string             `json:"user_email,omitempty"`
	ActionType models.AuditAction `json:"action_type"`
	ModelName  string             `json:"model_name"`
	ObjectID   string             `json:"object_id"`
	ObjectRepr string             `json:"object_repr"`
	Changes    json.RawMessage    `json:"changes" swaggertype:"object"`
	IPAddress  string             `json:"ip_address"`
	UserAgent  string             `json:"user_agent"`
	Metadata   json.RawMessage    `json:"metadata" swaggertype:"object"`
	CreatedAt  time.Time          `json:"created_at"`
}

// AuditLogQuery holds the filters of the audit log listing
type AuditLogQuery struct {
	ListParams
	ActionType    string
	ModelName     string
	UserID        string
	ObjectID      string
	CreatedAfter  string
	CreatedBefore string
}

// AuditService records and lists audit log entries; writes never fail the caller
type AuditService struct {
	repo  repository.AuditLogRepositoryInterface
	cache *sync.Map
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo, cache: &sync.Map{}}
}

var _ AuditServiceInterface = (*AuditService)(nil)

// Snapshot captures the current column values of obj
func (s *AuditService) Snapshot(obj models.Auditable) Snapshot {
	out := Snapshot{}
	if obj == nil {
		return out
	}
	sch, err := schema.Parse(obj, s.cache, schema.NamingStrategy{})
	if err != nil {
		return out
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	for _, field := range sch.Fields {
		if field.DBName == "" || skippedAuditFields[field.DBName] {
			continue
		}
		value, zero := field.ValueOf(context.Background(), rv)
		out[field.DBName] = auditValue(value, zero)
	}
	return out
}

func auditValue(value interface{}, zero bool) *string {
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil
	}
	if rv.Kind() == reflect.Ptr {
		value = rv.Elem().Interface()
	}

	var s string
	switch v := value.(type) {
	case time.Time:
		if zero && v.IsZero() {
			return nil
		}
		s = v.UTC().Format(time.RFC3339)
	case json.RawMessage:
		if len(v) == 0 {
			return nil
		}
		s = string(v)
	case []byte:
		s = string(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

// Diff returns the fields whose values differ between before and after
func Diff(before, after Snapshot) map[string]FieldChange {
	changes := map[string]FieldChange{}
	for key, newValue := range after {
		oldValue := before[key]
		if equalValues(oldValue, newValue) {
			continue
		}
		changes[key] = FieldChange{Old: oldValue, New: newValue}
	}
	for key, oldValue := range before {
		if _, ok := after[key]; !ok && oldValue != nil {
			changes[key] = FieldChange{Old: oldValue}
		}
	}
	return changes
}

func equalValues(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// LogCreate records the creation of obj with all of its initial values
func (s *AuditService) LogCreate(ctx context.Context, actor *models.User, obj models.Auditable) {
	changes := map[string]FieldChange{}
	for key, value := range s.Snapshot(obj) {
		if value != nil {
			changes[key] = FieldChange{New: value}
		}
	}
	s.write(ctx, actor, models.AuditActionCreate, obj, changes, nil)
}

// LogUpdate records the fields of obj that changed since before was taken
func (s *AuditService) LogUpdate(ctx context.Context, actor *models.User, before Snapshot, obj models.Auditable) {
	s.write(ctx, actor, models.AuditActionUpdate, obj, Diff(before, s.Snapshot(obj)), nil)
}

// LogDelete records the deletion of obj
func (s *AuditService) LogDelete(ctx context.Context, actor *models.User, obj models.Auditable) {
	s.write(ctx, actor, models.AuditActionDelete, obj, nil, nil)
}

// LogAction records an arbitrary action; obj may be nil
func (s *AuditService) LogAction(ctx context.Context, actor *models.User, action models.AuditAction, obj models.Auditable, metadata map[string]interface{}) {
	s.write(ctx, actor, action, obj, nil, metadata)
}

func (s *AuditService) write(ctx context.Context, actor *models.User, action models.AuditAction, obj models.Auditable,
	changes map[string]FieldChange, metadata map[string]interface{}) {

	entry := &models.AuditLog{ActionType: action}
	if actor != nil {
		id := actor.ID
		entry.UserID = &id
	}
	if obj != nil && !reflect.ValueOf(obj).IsNil() {
		entry.ModelName = obj.AuditModelName()
		entry.ObjectID = obj.AuditObjectID()
		entry.ObjectRepr = truncate(obj.String(), 255)
	} else if actor != nil {
		entry.ModelName = "User"
		entry.ObjectID = actor.ID.String()
		entry.ObjectRepr = actor.Email
	}

	if changes == nil {
		changes = map[string]FieldChange{}
	}
	entry.Changes, _ = json.Marshal(changes)
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	entry.Metadata, _ = json.Marshal(metadata)

	info := requestInfoFrom(ctx)
	entry.IPAddress = truncate(info.IPAddress, 45)
	entry.UserAgent = truncate(info.UserAgent, maxUserAgentLength)

	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.WithContext(ctx).WithError(err).
			WithFields(map[string]interface{}{"action": action, "model": entry.ModelName, "object_id": entry.ObjectID}).
			Warn("failed to write audit log entry")
	}
}

// List returns audit entries matching q; callers must be superusers
func (s *AuditService) List(ctx context.Context, actor *models.User, q AuditLogQuery) (*ListResponse[AuditLogResponse], error) {
	if !actor.IsSuperuser {
		return nil, apperrors.ErrSuperuserRequired
	}

	filter := repository.AuditLogFilter{
		ActionType: models.AuditAction(q.ActionType),
		ModelName:  q.ModelName,
		ObjectID:   q.ObjectID,
	}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return nil, invalidUUID("user")
		}
		filter.UserID = &id
	}
	var err error
	if filter.CreatedAfter, err = parseTimestamp(q.CreatedAfter); err != nil {
		return nil, err
	}
	if filter.CreatedBefore, err = parseTimestamp(q.CreatedBefore); err != nil {
		return nil, err
	}

	entries, total, err := s.repo.List(ctx, filter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	items := make([]AuditLogResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toAuditLogResponse(&entries[i]))
	}
	return newListResponse(items, total, q.ListParams), nil
}

// Get returns a single audit entry; callers must be superusers
func (s *AuditService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*AuditLogResponse, error) {
	if !actor.IsSuperuser {
		return nil, apperrors.ErrSuperuserRequired
	}
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toAuditLogResponse(entry)
	return &resp, nil
}

func toAuditLogResponse(e *models.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		ActionType: e.ActionType,
		ModelName:  e.ModelName,
		ObjectID:   e.ObjectID,
		ObjectRepr: e.ObjectRepr,
		Changes:    e.Changes,
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		Metadata:   e.Metadata,
		CreatedAt:  e.CreatedAt,
	}
	if e.User != nil {
		resp.UserEmail = e.User.Email
	}
	return resp
}

// truncate caps s at n characters
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
