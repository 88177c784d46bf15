package web

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/dmarkov/homepage/internal/render"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the template renderer into HTTP handlers.
type Handler struct {
	renderer *render.Renderer
	logger   *zap.Logger
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(renderer *render.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// handleHealth is a constant-time liveness probe: no lookups, no branching,
// no failure path.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleIndex renders the main page template with no template data. A
// resolution or rendering failure is not translated: it surfaces as the
// serving layer's standard 500 response.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "main.html"); err != nil {
		h.logger.Error("render main page",
			zap.Error(err),
			zap.String("request_id", requestIDFromContext(r.Context())),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
