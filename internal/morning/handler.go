package morning

import (
	"context"
	"net/http"

	"github.com/2beens/motivly/internal/cache"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
)

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
	r.HandleFunc("/morning", h.HandleGet).Methods("GET", "OPTIONS").Name("morning")
	r.HandleFunc("/morning", h.HandleSave).Methods("PUT", "POST", "OPTIONS").Name("save-morning")
	r.HandleFunc("/morning/month/{year}/{month}", h.HandleMonth).Methods("GET", "OPTIONS").Name("morning-month")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.morning.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.morning.save")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	var in Input
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := unit.Save(ctx, in); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.morning.month")
	defer span.End()
	r = r.WithContext(ctx)

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	syncunit.ServeMonth(w, r, unit.Base, h.monthCache, "Could not load the month's mornings.",
		func(ctx context.Context, year, monthIndex int) (any, error) {
			return unit.MonthDays(ctx, year, monthIndex)
		},
	)
}
