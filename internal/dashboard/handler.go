package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caregarden/billing/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Show)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	month := time.Now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "invalid month", err.Error())
			return
		}
		month = parsed
	}

	summary, err := h.service.Summary(r.Context(), month)
	if err != nil {
		h.logger.Error("dashboard summary", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "storage error", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
