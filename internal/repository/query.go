package repository

import (
	"errors"
	"strings"

	"rental-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Viewer is the identity every visibility scope is evaluated against
type Viewer struct {
	UserID      uuid.UUID
	Role        models.UserRole
	Email       string
	Phone       string
	IsSuperuser bool
}

// ViewerFromUser builds a Viewer from a loaded user
func ViewerFromUser(u *models.User) Viewer {
	v := Viewer{
		UserID:      u.ID,
		Role:        u.Role,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
	}
	if u.Phone != nil {
		v.Phone = *u.Phone
	}
	return v
}

func (v Viewer) IsLandlord() bool { return v.Role == models.UserRoleLandlord }
func (v Viewer) IsTenant() bool   { return v.Role == models.UserRoleTenant }

// ListOptions carries pagination, search and ordering for list queries
type ListOptions struct {
	Limit    int
	Offset   int
	Search   string
	Ordering string
}

// orderBy resolves an ordering parameter such as "-created_at" against a whitelist of columns.
func orderBy(ordering string, allowed map[string]string, fallback string) string {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return fallback
	}

	parts := strings.Split(ordering, ",")
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		dir := "ASC"
		if strings.HasPrefix(p, "-") {
			dir = "DESC"
			p = p[1:]
		}
		col, ok := allowed[p]
		if !ok {
			continue
		}
		clauses = append(clauses, col+" "+dir)
	}
	if len(clauses) == 0 {
		return fallback
	}
	return strings.Join(clauses, ", ")
}

// searchScope matches term case-insensitively against any of the given columns
func searchScope(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, "LOWER("+c+") LIKE ?")
			args = append(args, like)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// paginate counts the filtered query, then fetches one ordered page with the given preloads
func paginate[T any](query *gorm.DB, opts ListOptions, order string, preloads ...string) ([]T, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	q := query.Session(&gorm.Session{}).Order(order)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// subquery starts a fresh statement that shares db's connection (and transaction, if any)
func subquery(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true})
}

func ownedPropertyIDs(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return subquery(db).Model(&models.Property{}).Select("id").Where("owner_id = ?", ownerID)
}

func ownedRoomIDs(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return subquery(db).Model(&models.Room{}).Select("id").Where("building_id IN (?)", ownedPropertyIDs(db, ownerID))
}

func activeTenantRoomIDs(db *gorm.DB, tenantID uuid.UUID) *gorm.DB {
	return subquery(db).Model(&models.Tenancy{}).Select("room_id").
		Where("tenant_id = ? AND status = ?", tenantID, models.TenancyStatusActive)
}

func visibleTenancyIDs(db *gorm.DB, v Viewer) *gorm.DB {
	q := subquery(db).Model(&models.Tenancy{}).Select("id")
	switch {
	case v.IsSuperuser:
		return q
	case v.IsTenant():
		return q.Where("tenant_id = ?", v.UserID)
	case v.IsLandlord():
		return q.Where("room_id IN (?)", ownedRoomIDs(db, v.UserID))
	}
	return q.Where("1 = 0")
}

func visibleInvoiceIDs(db *gorm.DB, v Viewer) *gorm.DB {
	return subquery(db).Model(&models.Invoice{}).Select("id").Where("tenancy_id IN (?)", visibleTenancyIDs(db, v))
}

func nothing(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// translate maps driver-level errors onto the domain errors of one entity
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	}
	return err
}

// exists reports whether the query matches at least one row
func exists(query *gorm.DB) (bool, error) {
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
