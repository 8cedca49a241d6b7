package reviews

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codereview-backend/internal/shared/server/middleware"
	"codereview-backend/internal/shared/server/respond"
)

// ReviewIDHeader carries the generated review ID on responses.
const ReviewIDHeader = "X-Review-Id"

// Reviewer is the orchestration the handler depends on.
type Reviewer interface {
	Review(ctx context.Context, code string) Result
}

// Handler wires HTTP handlers to the review service.
type Handler struct {
	Svc Reviewer
}

// NewHandler constructs a Handler.
func NewHandler(svc Reviewer) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the review endpoint to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/review", h.review)
}

type reviewRequest struct {
	Code *string `json:"code"`
}

func (h *Handler) review(c *gin.Context) {
	code, ok := readCode(c)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "code is required", nil)
		return
	}

	result := h.Svc.Review(c.Request.Context(), code)

	c.Set(middleware.ReviewIDKey, result.ID)
	c.Set(middleware.LintIssueCountKey, len(result.LintIssues))
	c.Set(middleware.AIFindingCountKey, len(result.AIFeedback))
	if result.ID != "" {
		c.Header(ReviewIDHeader, result.ID)
	}
	respond.OK(c, toResponse(result))
}

// readCode extracts the submitted code from a form field or a JSON body. The
// field must be present; its content is passed through untouched.
func readCode(c *gin.Context) (string, bool) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Code == nil {
			return "", false
		}
		return *req.Code, true
	}
	return c.GetPostForm("code")
}
