package invoices

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/caregarden/billing/internal/platform/httpx"
	"github.com/caregarden/billing/internal/settings"
)

// PDFRenderer converts a rendered HTML document into a PDF.
// Satisfied by report.Client.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	logger   *slog.Logger
	service  *Service
	settings *settings.Service
	pdf      PDFRenderer
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service, settingsService *settings.Service, pdf PDFRenderer) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		settings: settingsService,
		pdf:      pdf,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListInvoicesRequest{Status: InvoiceStatus(r.URL.Query().Get("status"))}
	if req.Status != "" && !req.Status.Valid() {
		httpx.Problem(w, http.StatusBadRequest, "invalid status filter", string(req.Status))
		return
	}
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := parseDate(month)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "invalid month filter", err.Error())
			return
		}
		parsed = firstOfMonth(parsed)
		req.ServiceMonth = &parsed
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "storage error", err.Error())
		return
	}
	if list == nil {
		list = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoices": list, "total": len(list)})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	inv, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "get invoice")
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// CustomerHistory lists every invoice generated for a single customer. The
// rows stay readable after the customer profile itself is deleted.
func (h *Handler) CustomerHistory(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("customer invoice history", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "storage error", err.Error())
		return
	}
	if list == nil {
		list = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoices": list, "total": len(list)})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusUnprocessableEntity, "validation failed", err.Error())
		return
	}

	req := GenerateInvoicesRequest{CustomerIDs: payload.CustomerIDs}
	var err error
	if req.ServiceMonth, err = parseDate(payload.ServiceMonth); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid service_month", err.Error())
		return
	}
	if req.InvoiceDate, err = parseDate(payload.InvoiceDate); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid invoice_date", err.Error())
		return
	}
	if req.DueDate, err = parseDate(payload.DueDate); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid due_date", err.Error())
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		h.respondError(w, err, "generate invoices")
		return
	}
	httpx.JSON(w, http.StatusCreated, result)
}

// GenerateDefaults returns the default dates for a generation run.
func (h *Handler) GenerateDefaults(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, DefaultDates(time.Now().UTC()))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload updateStatusPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusUnprocessableEntity, "validation failed", err.Error())
		return
	}

	inv, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), InvoiceStatus(payload.Status))
	if err != nil {
		h.respondError(w, err, "update invoice status")
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err, "delete invoice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	html, err := h.renderPrint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "render invoice")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		httpx.Problem(w, http.StatusNotImplemented, "pdf export unavailable", "")
		return
	}

	html, err := h.renderPrint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err, "render invoice")
		return
	}

	pdf, err := h.pdf.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render invoice pdf", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadGateway, "pdf rendering failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) renderPrint(ctx context.Context, id string) (string, error) {
	inv, err := h.service.Get(ctx, id)
	if err != nil {
		return "", err
	}
	facility, err := h.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return RenderPrintHTML(inv, facility)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "invoice not found", "")
	case errors.Is(err, settings.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "facility settings not found", "")
	case errors.Is(err, ErrNothingToGenerate):
		httpx.Problem(w, http.StatusUnprocessableEntity, "nothing to generate", err.Error())
	case errors.Is(err, ErrInvalidStatus):
		httpx.Problem(w, http.StatusUnprocessableEntity, "invalid status", err.Error())
	default:
		h.logger.Error(action, slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "storage error", err.Error())
	}
}
