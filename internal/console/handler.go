package console

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"codereview-backend/internal/shared/server/respond"
)

//go:embed templates/*
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Handler serves the console web page.
type Handler struct {
	Console           *Console
	DefaultBackendURL string
}

// NewHandler constructs a Handler.
func NewHandler(c *Console, defaultBackendURL string) *Handler {
	return &Handler{Console: c, DefaultBackendURL: defaultBackendURL}
}

// RegisterRoutes attaches the page and its health check.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", h.index)
	rg.POST("/", h.submit)
	rg.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
}

type modeOption struct {
	Slug     string
	Label    string
	Selected bool
}

type pageData struct {
	Pending    string
	Code       string
	BackendURL string
	Modes      []modeOption
	Submitted  bool
	View       View
}

func (h *Handler) page(code string, mode Mode, backendURL string) pageData {
	data := pageData{Pending: PendingNotice, Code: code, BackendURL: backendURL}
	for _, m := range Modes() {
		data.Modes = append(data.Modes, modeOption{Slug: m.Slug(), Label: m.String(), Selected: m == mode})
	}
	return data
}

func (h *Handler) index(c *gin.Context) {
	h.html(c, http.StatusOK, h.page("", Demo, h.DefaultBackendURL))
}

func (h *Handler) submit(c *gin.Context) {
	code := c.PostForm("code")
	mode, err := ParseMode(c.DefaultPostForm("mode", Demo.Slug()))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	backendURL := strings.TrimSpace(c.PostForm("backend_url"))
	if backendURL == "" {
		backendURL = h.DefaultBackendURL
	}

	outcome := h.Console.Run(c.Request.Context(), Submission{Code: code, Mode: mode, BackendURL: backendURL})

	data := h.page(code, mode, backendURL)
	data.Submitted = true
	data.View = Render(outcome)
	h.html(c, http.StatusOK, data)
}

func (h *Handler) html(c *gin.Context, status int, data pageData) {
	c.Render(status, render.HTML{Template: pageTemplate, Name: "index.html", Data: data})
}
