package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler handles HTTP requests for rooms
type RoomHandler struct {
	service service.RoomServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(s service.RoomServiceInterface) *RoomHandler {
	return &RoomHandler{service: s}
}

// CreateRoom handles POST /rooms
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param body body service.CreateRoomRequest true "Room data"
// @Success 201 {object} service.RoomResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Create(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetRoom handles GET /rooms/:id
// @Summary Get a room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} service.RoomResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListRooms handles GET /rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param building query string false "Filter by building"
// @Param status query string false "Filter by status"
// @Param floor_gte query string false "Filter by floor gte"
// @Param floor_lte query string false "Filter by floor lte"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.RoomQuery{
		ListParams: listParams(c),
		Building:   c.Query("building"),
		Status:     c.Query("status"),
		FloorGTE:   c.Query("floor_gte"),
		FloorLTE:   c.Query("floor_lte"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRoom handles PATCH /rooms/:id
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body service.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} service.RoomResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRoom handles DELETE /rooms/:id
// @Summary Delete a room
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
