package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"rental-management-backend/internal/auth"
	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string              `json:"error" example:"error message"`
	Details map[string][]string `json:"details,omitempty"`
}

// respondError renders err with the status its category maps to
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).Error("Request failed")
	}
	c.JSON(status, apperrors.Body(err))
}

// currentUser returns the authenticated user or answers 401
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return user, true
}

// pathID parses the :id path parameter or answers 400
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body or answers 400
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// listParams reads page, page_size, search and ordering
func listParams(c *gin.Context) service.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(service.DefaultPageSize)))
	return service.ListParams{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
		Ordering: strings.TrimSpace(c.Query("ordering")),
	}.Normalize()
}

// respondFields writes payload as JSON, keeping only the keys named in ?fields=.
// List envelopes are filtered per item.
func respondFields(c *gin.Context, status int, payload interface{}) {
	fields := requestedFields(c.Query("fields"))
	if len(fields) == 0 {
		c.JSON(status, payload)
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		respondError(c, err)
		return
	}

	if items, ok := doc["items"].([]interface{}); ok {
		for i, item := range items {
			if obj, ok := item.(map[string]interface{}); ok {
				items[i] = pickFields(obj, fields)
			}
		}
		doc["items"] = items
		c.JSON(status, doc)
		return
	}
	c.JSON(status, pickFields(doc, fields))
}

func requestedFields(value string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, f := range strings.Split(value, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out[f] = struct{}{}
		}
	}
	return out
}

func pickFields(obj map[string]interface{}, fields map[string]struct{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range obj {
		if _, ok := fields[k]; ok {
			out[k] = v
		}
	}
	return out
}
