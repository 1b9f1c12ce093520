package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/dto"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// LogHandler handles the share log endpoints.
type LogHandler struct {
	service *app.ShareService
}

// NewLogHandler creates a new share log handler.
func NewLogHandler(service *app.ShareService) *LogHandler {
	return &LogHandler{
		service: service,
	}
}

// List handles GET /api/v1/log
// Returns log entries oldest first, one page at a time.
//
// @Summary List the share log
// @Tags log
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} dto.PaginatedResponse[domain.LogEntry]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/log [get]
func (h *LogHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid pagination parameters")

		return
	}

	cursor, err := req.DecodeCursor()
	if err != nil && !errors.Is(err, dto.ErrNoCursor) {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	limit := req.GetLimit()
	start := resolveCursor(entries, cursor)
	end := min(start+limit+1, len(entries))

	next := start + limit
	page := dto.NewPaginatedResponse(entries[start:end], limit, func(e domain.LogEntry) *dto.CursorData {
		return &dto.CursorData{Timestamp: e.Timestamp, Offset: next}
	})

	c.JSON(http.StatusOK, page)
}

// resolveCursor returns the index of the first entry after the one the
// cursor marks. Entries may have been evicted since the cursor was issued,
// shifting positions, so the offset is trusted only when the timestamp still
// matches. An entry that can no longer be found was evicted together with
// everything older, so the page restarts at the oldest entry.
func resolveCursor(entries []domain.LogEntry, cursor *dto.CursorData) int {
	if cursor == nil {
		return 0
	}

	if o := cursor.Offset; o > 0 && o <= len(entries) && entries[o-1].Timestamp == cursor.Timestamp {
		return o
	}

	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Timestamp == cursor.Timestamp {
			return i + 1
		}
	}

	return 0
}

// Export handles GET /api/v1/log/export
// Renders the whole log as a note together with the URI that creates it.
//
// @Summary Export the share log as a note
// @Tags log
// @Produce json
// @Success 200 {object} dto.LogExportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/log/export [get]
func (h *LogHandler) Export(c *gin.Context) {
	export, err := h.service.Export(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &dto.LogExportResponse{
		Name:    export.Name,
		Content: export.Content,
		URI:     export.URI,
		Entries: export.Entries,
	})
}

// Clear handles DELETE /api/v1/log
//
// @Summary Clear the share log
// @Tags log
// @Success 204
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/log [delete]
func (h *LogHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the log routes on the given API group.
func (h *LogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	log := rg.Group("/log")
	log.GET("", h.List)
	log.GET("/export", h.Export)
	log.DELETE("", h.Clear)
}
