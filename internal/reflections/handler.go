package reflections

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
	r.HandleFunc("/reflections", h.HandleGet).Methods("GET", "OPTIONS").Name("reflections")
	r.HandleFunc("/reflections", h.HandleSave).Methods("PUT", "POST", "OPTIONS").Name("save-reflections")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reflections.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reflections.save")
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
