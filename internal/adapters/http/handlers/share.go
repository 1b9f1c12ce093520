package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/dto"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
)

// ShareHandler handles the share-target JSON endpoints.
type ShareHandler struct {
	service        *app.ShareService
	maxFieldLength int
}

// NewShareHandler creates a new share handler. Query values longer than
// maxFieldLength characters are rejected.
func NewShareHandler(service *app.ShareService, maxFieldLength int) *ShareHandler {
	return &ShareHandler{
		service:        service,
		maxFieldLength: maxFieldLength,
	}
}

// toShareResponse converts a share result to an HTTP response.
func toShareResponse(r *app.ShareResult) *dto.ShareResponse {
	return &dto.ShareResponse{
		Title:    r.Title,
		URL:      r.URL,
		Markdown: r.Markdown,
		DailyURI: r.DailyURI,
	}
}

// Share handles GET /api/v1/share
// Normalizes the shared title, text and url into a markdown link and
// records the share in the log.
//
// @Summary Normalize a share
// @Tags share
// @Produce json
// @Param title query string false "Shared title"
// @Param text query string false "Shared text"
// @Param url query string false "Shared URL"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/share [get]
func (h *ShareHandler) Share(c *gin.Context) {
	result, ok := h.handle(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toShareResponse(result))
}

// Send handles GET /api/v1/share/send
// Same as Share, then redirects to the notes app's daily-note URI.
//
// @Summary Normalize a share and send it to the daily note
// @Tags share
// @Param title query string false "Shared title"
// @Param text query string false "Shared text"
// @Param url query string false "Shared URL"
// @Success 302
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/share/send [get]
func (h *ShareHandler) Send(c *gin.Context) {
	result, ok := h.handle(c)
	if !ok {
		return
	}

	c.Redirect(http.StatusFound, result.DailyURI)
}

// handle binds and checks the request, then runs the share. It writes the
// error response itself and reports false when the request was rejected.
func (h *ShareHandler) handle(c *gin.Context) (*app.ShareResult, bool) {
	var req dto.ShareRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid share parameters")
		return nil, false
	}

	if details := req.ValidateLengths(h.maxFieldLength); details != nil {
		dto.RespondWithValidationErrors(c, details)
		return nil, false
	}

	return h.service.Share(c.Request.Context(), req.Input()), true
}

// RegisterRoutes registers the share routes on the given API group.
func (h *ShareHandler) RegisterRoutes(rg *gin.RouterGroup) {
	share := rg.Group("/share")
	share.GET("", h.Share)
	share.GET("/send", h.Send)
}
