package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/dto"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/notes"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// SharePagePath is the share-target action registered in the manifest.
const SharePagePath = "/share"

const shareTemplate = "share.html.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var previewRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
)

// PageConfig configures the share-target page.
type PageConfig struct {
	// AppName is shown as the page title and in the manifest.
	AppName string

	// Vault is the notes vault the page sends to. Empty means the last focused vault.
	Vault string

	// CopyBeforeSend copies the markdown to the clipboard before sending it.
	CopyBeforeSend bool

	// SendDelay is how long the page waits between copying and sending.
	SendDelay time.Duration

	// MaxFieldLength rejects longer query values.
	MaxFieldLength int
}

// PageHandler serves the share-target page and the web app manifest.
type PageHandler struct {
	service *app.ShareService
	cfg     PageConfig
}

// NewPageHandler creates a new page handler.
func NewPageHandler(service *app.ShareService, cfg PageConfig) *PageHandler {
	return &PageHandler{
		service: service,
		cfg:     cfg,
	}
}

// pageData is the template data of the share page.
type pageData struct {
	AppName        string
	Markdown       string
	Preview        template.HTML
	RawInputs      string
	VaultQuery     string
	CopyBeforeSend bool
	SendDelayMs    int64
}

// Share handles GET /share, the share-target action.
// It normalizes and logs the share like the JSON API, then renders the page.
func (h *PageHandler) Share(c *gin.Context) {
	var req dto.ShareRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid share parameters")
		return
	}

	if details := req.ValidateLengths(h.cfg.MaxFieldLength); details != nil {
		dto.RespondWithValidationErrors(c, details)
		return
	}

	in := req.Input()
	result := h.service.Share(c.Request.Context(), in)

	preview, err := renderPreview(result.Markdown)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	data := pageData{
		AppName:        h.cfg.AppName,
		Markdown:       result.Markdown,
		Preview:        preview,
		RawInputs:      RawInputs(in),
		CopyBeforeSend: h.cfg.CopyBeforeSend,
		SendDelayMs:    h.cfg.SendDelay.Milliseconds(),
	}

	if h.cfg.Vault != "" {
		data.VaultQuery = "&vault=" + notes.EncodeURIComponent(h.cfg.Vault)
	}

	c.Render(http.StatusOK, render.HTML{
		Template: pageTemplates,
		Name:     shareTemplate,
		Data:     data,
	})
}

// RawInputs formats the raw share fields for the page's debug block.
// Absent fields print as null.
func RawInputs(in domain.ShareInput) string {
	return "Raw Inputs:\nTitle: " + orNull(in.Title) +
		"\nText: " + orNull(in.Text) +
		"\nURL: " + orNull(in.URL)
}

func orNull(s string) string {
	if s == "" {
		return "null"
	}

	return s
}

// renderPreview renders markdown to HTML. Raw HTML and unsafe link
// destinations in the input are dropped by the renderer.
func renderPreview(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := previewRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // goldmark output, unsafe HTML disabled
}

// Manifest is the web app manifest registering the page as a share target.
type Manifest struct {
	Name        string              `json:"name"`
	ShortName   string              `json:"short_name"`
	StartURL    string              `json:"start_url"`
	Display     string              `json:"display"`
	ShareTarget ManifestShareTarget `json:"share_target"`
}

// ManifestShareTarget describes how the OS share sheet calls the page.
type ManifestShareTarget struct {
	Action string            `json:"action"`
	Method string            `json:"method"`
	Params map[string]string `json:"params"`
}

// Manifest handles GET /manifest.webmanifest.
func (h *PageHandler) Manifest(c *gin.Context) {
	c.Header("Content-Type", "application/manifest+json")
	c.JSON(http.StatusOK, Manifest{
		Name:      h.cfg.AppName,
		ShortName: h.cfg.AppName,
		StartURL:  SharePagePath,
		Display:   "standalone",
		ShareTarget: ManifestShareTarget{
			Action: SharePagePath,
			Method: http.MethodGet,
			Params: map[string]string{
				"title": "title",
				"text":  "text",
				"url":   "url",
			},
		},
	})
}

// RegisterRoutes registers the page routes at the site root.
func (h *PageHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET(SharePagePath, h.Share)
	r.GET("/manifest.webmanifest", h.Manifest)
}
