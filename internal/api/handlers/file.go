package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps multipart bodies
const maxUploadSize = 20 << 20

// FileHandler handles uploads and file asset lookups
type FileHandler struct {
	service service.FileServiceInterface
}

// NewFileHandler creates a new file handler
func NewFileHandler(s service.FileServiceInterface) *FileHandler {
	return &FileHandler{service: s}
}

// UploadFile handles POST /files
// @Summary Upload a file
// @Description Contract uploads must be PDF
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File content"
// @Param purpose formData string false "contract (default), meter or maintenance"
// @Success 201 {object} service.FileResponse
// @Failure 400 {object} ErrorResponse "Missing file or invalid purpose"
// @Security BearerAuth
// @Router /files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "file is required",
			Details: map[string][]string{"file": {"this field is required"}},
		})
		return
	}
	f, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	resp, err := h.service.Upload(c.Request.Context(), user, &service.UploadFileRequest{
		Purpose:  c.PostForm("purpose"),
		Filename: header.Filename,
		Size:     header.Size,
		Content:  f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListFiles handles GET /files
// @Summary List uploaded files
// @Tags files
// @Produce json
// @Param purpose query string false "contract, meter or maintenance"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.List(c.Request.Context(), user, service.FileQuery{
		ListParams: listParams(c),
		Purpose:    c.Query("purpose"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFile handles GET /files/:id
// @Summary Get a file asset
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} service.FileResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
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

// DeleteFile handles DELETE /files/:id
// @Summary Delete a file asset and its stored content
// @Tags files
// @Param id path string true "File ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /files/{id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
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
