package wizard

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cgi-wizard/internal/shared/metrics"
	"cgi-wizard/internal/shared/server/middleware"
	"cgi-wizard/internal/shared/server/respond"
	"cgi-wizard/internal/shared/telemetry"
)

const defaultMaxBodyBytes = 64 << 10

type Handler struct {
	Svc          *Service
	MaxBodyBytes int64
}

func NewHandler(svc *Service, maxBodyBytes int64) *Handler {
	return &Handler{Svc: svc, MaxBodyBytes: maxBodyBytes}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Page)
	r.POST("/", h.Page)
}

// Page serves one wizard round-trip.
func (h *Handler) Page(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}

	body, err := h.readBody(c)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "body_too_large", "The submitted form is too large.", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "bad_request", "The submitted form could not be read.", map[string]any{"error": err.Error()})
		return
	}

	page, err := h.Svc.Handle(c.Request.Context(), Request{
		Method:   c.Request.Method,
		RawQuery: c.Request.URL.RawQuery,
		Body:     body,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidStep) {
			metrics.IncInvalidStep()
			respond.Error(c, http.StatusBadRequest, "invalid_step", "The requested step is not valid.", map[string]any{"error": err.Error()})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", map[string]any{"error": err.Error()})
		return
	}

	c.Set(middleware.StepKey, page.Step)
	metrics.IncPageRendered(page.Kind.String())
	if page.Rejected != nil {
		metrics.IncValidationRejected(page.Kind.String())
		telemetry.Warn("wizard.validation_rejected", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"step":       page.Rejected.Step,
			"field":      page.Rejected.Field,
		})
	}
	c.Header("Cache-Control", "no-store")
	respond.OK(c, page.HTML())
}

// readBody returns the urlencoded body of a POST, reading at most
// Content-Length bytes and never more than MaxBodyBytes.
func (h *Handler) readBody(c *gin.Context) (string, error) {
	req := c.Request
	if req.Method != http.MethodPost || req.Body == nil {
		return "", nil
	}
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	if req.ContentLength > limit {
		return "", ErrBodyTooLarge
	}

	var r io.Reader = http.MaxBytesReader(c.Writer, req.Body, limit)
	if req.ContentLength > 0 {
		r = io.LimitReader(r, req.ContentLength)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", ErrBodyTooLarge
		}
		return "", err
	}
	return string(data), nil
}
