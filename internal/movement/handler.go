package movement

import (
	"context"
	"net/http"
	"strconv"

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
	r.HandleFunc("/movement", h.HandleGet).Methods("GET", "OPTIONS").Name("movement")
	r.HandleFunc("/movement/sessions", h.HandleRecord).Methods("POST", "OPTIONS").Name("record-session")
	r.HandleFunc("/movement/sessions/last", h.HandleRemoveLast).Methods("DELETE", "OPTIONS").Name("remove-last-session")
	r.HandleFunc("/movement/sessions/date/{date}", h.HandleDeleteOnDate).Methods("DELETE", "OPTIONS").Name("delete-session-on-date")
	r.HandleFunc("/movement/sessions/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/movement/goal", h.HandleGoal).Methods("POST", "PUT", "OPTIONS").Name("change-goal")
	r.HandleFunc("/movement/month/{year}/{month}", h.HandleMonth).Methods("GET", "OPTIONS").Name("movement-month")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.record")
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
	if err := unit.Record(ctx, in); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.delete")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		pkg.WriteJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := unit.Delete(ctx, id); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleDeleteOnDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.deleteOnDate")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	if err := unit.DeleteOnDate(ctx, mux.Vars(r)["date"]); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleRemoveLast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.removeLast")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	if err := unit.RemoveLast(ctx); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.goal")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	var in GoalInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := unit.ChangeGoal(ctx, in.Delta); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.movement.month")
	defer span.End()
	r = r.WithContext(ctx)

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	syncunit.ServeMonth(w, r, unit.Base, h.monthCache, "Could not load the month's sessions.",
		func(ctx context.Context, year, monthIndex int) (any, error) {
			return unit.MonthDates(ctx, year, monthIndex)
		},
	)
}
