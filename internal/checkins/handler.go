package checkins

import (
	"context"
	"net/http"

	"github.com/2beens/motivly/internal/cache"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UnitResolver returns the check-ins unit of the caller's workspace.
type UnitResolver func(ctx context.Context) (*Unit, error)

type Handler struct {
	resolve    UnitResolver
	monthCache *cache.MonthCache
}

func NewHandler(resolve UnitResolver, monthCache *cache.MonthCache) *Handler {
	return &Handler{
		resolve:    resolve,
		monthCache: monthCache,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/checkins", h.HandleGet).Methods("GET", "OPTIONS").Name("checkins")
	r.HandleFunc("/checkins", h.HandleRecord).Methods("POST", "OPTIONS").Name("record-checkin")
	r.HandleFunc("/checkins/month/{year}/{month}", h.HandleMonth).Methods("GET", "OPTIONS").Name("checkins-month")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.record")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	var in Input
	if err := pkg.DecodeJSON(r, &in); err != nil {
		log.Debugf("record checkin, bad request: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := unit.Record(ctx, in); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusCreated)
}

func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkins.month")
	defer span.End()
	r = r.WithContext(ctx)

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	syncunit.ServeMonth(w, r, unit.Base, h.monthCache, "Could not load the month's check-ins.",
		func(ctx context.Context, year, monthIndex int) (any, error) {
			return unit.MonthStressByDay(ctx, year, monthIndex)
		},
	)
}
