package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/permit-atlas/pkg/adapters"
	"github.com/de-tools/permit-atlas/pkg/export"
	"github.com/de-tools/permit-atlas/pkg/models/api"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report, ok := h.report(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(report)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode report")
	}
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report, ok := h.report(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="permit-report.csv"`)
	err := export.WriteCSV(w, report)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to export report")
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeOptions(w, r, h.service.Categories(r.Context()))
}

func (h *Handler) ListWindows(w http.ResponseWriter, r *http.Request) {
	h.writeOptions(w, r, h.service.Windows(r.Context()))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) (api.Report, bool) {
	ctx := r.Context()
	selection := selectionFromQuery(r)

	report, err := h.service.Report(ctx, selection)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSelection):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrDegenerateAggregate):
			http.Error(w, "no permits in the selected range", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "report unavailable", http.StatusInternalServerError)
		}
		return api.Report{}, false
	}
	return adapters.MapReportDomainToApi(report), true
}

func (h *Handler) writeOptions(w http.ResponseWriter, r *http.Request, options []dashboard.Option) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.Option, 0, len(options))
	for _, o := range options {
		response = append(response, api.Option(o))
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode options")
	}
}

func selectionFromQuery(r *http.Request) domain.FilterSelection {
	query := r.URL.Query()
	selection := domain.FilterSelection{
		Window:   domain.Window(query.Get("window")),
		Category: query.Get("category"),
	}
	if selection.Window == "" {
		selection.Window = domain.DefaultWindow
	}
	if selection.Category == "" {
		selection.Category = domain.AllCategories
	}
	return selection
}
