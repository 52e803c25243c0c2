package briefing

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/store-briefing/pkg/adapters"
	"github.com/de-tools/store-briefing/pkg/models/api"
	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/dispatch"
)

const defaultRunsLimit = 50

type Service interface {
	Build(ctx context.Context, unit domain.UnitConfig, now time.Time) (*domain.Briefing, error)
	RunAll(ctx context.Context, now time.Time) domain.RunReport
}

type History interface {
	History(ctx context.Context, units []string, limit int) ([]domain.Outcome, error)
}

type Handler struct {
	cfg     domain.Config
	service Service
	history History
	clock   func() time.Time
}

// NewHandler serves the unit table and schedule from cfg. history may be nil when no run
// ledger is configured.
func NewHandler(cfg domain.Config, service Service, history History, clock func() time.Time) *Handler {
	if clock == nil {
		clock = time.Now
	}
	return &Handler{cfg: cfg, service: service, history: history, clock: clock}
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	response := make([]api.Unit, 0, len(h.cfg.Units))
	for _, u := range h.cfg.Units {
		response = append(response, adapters.MapDomainUnitToAPI(u))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	response := make([]api.Slot, 0, len(h.cfg.Schedule))
	for _, s := range h.cfg.Schedule {
		response = append(response, adapters.MapDomainSlotToAPI(s))
	}
	writeJSON(w, r, http.StatusOK, response)
}

// GetBriefing renders a unit's briefing without delivering it. The optional date query
// parameter selects the day in the schedule zone.
func (h *Handler) GetBriefing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "unit")

	unit, ok := h.cfg.Unit(name)
	if !ok {
		http.Error(w, "unknown unit: "+name, http.StatusNotFound)
		return
	}

	now := h.clock()
	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, dispatch.Zone)
		if err != nil {
			http.Error(w, "invalid 'date' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		now = day.Add(12 * time.Hour)
	}

	b, err := h.service.Build(ctx, unit, now)
	if err != nil {
		logger.Error().Err(err).Str("unit", name).Msg("failed to build briefing")
		http.Error(w, "failed to build briefing", http.StatusBadGateway)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainBriefingToAPI(b))
}

// Dispatch delivers every unit due at the current hour.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	report := h.service.RunAll(r.Context(), h.clock())
	writeJSON(w, r, http.StatusOK, adapters.MapDomainRunReportToAPI(report))
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.history == nil {
		http.Error(w, "run ledger is not configured", http.StatusServiceUnavailable)
		return
	}

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid 'limit': expected a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	var units []string
	if unit := r.URL.Query().Get("unit"); unit != "" {
		units = []string{unit}
	}

	outcomes, err := h.history.History(ctx, units, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list runs")
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}

	response := make([]api.Run, 0, len(outcomes))
	for _, o := range outcomes {
		response = append(response, adapters.MapDomainOutcomeToAPI(o))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
