package rituals

import (
	"context"
	"net/http"

	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
)

type UnitResolver func(ctx context.Context) (*Unit, error)

type Handler struct {
	resolve UnitResolver
}

func NewHandler(resolve UnitResolver) *Handler {
	return &Handler{
		resolve: resolve,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/rituals", h.HandleGet).Methods("GET", "OPTIONS").Name("rituals")
	r.HandleFunc("/rituals/{moment}", h.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-ritual")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rituals.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rituals.upsert")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}

	moment := Moment(mux.Vars(r)["moment"])
	if !moment.Valid() {
		pkg.WriteJSONError(w, "unknown moment", http.StatusBadRequest)
		return
	}

	var in Input
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := unit.Upsert(ctx, moment, in); err != nil {
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}
