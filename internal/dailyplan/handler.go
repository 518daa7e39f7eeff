package dailyplan

import (
	"context"
	"net/http"

	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
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
	r.HandleFunc("/plan", h.HandleGet).Methods("GET", "OPTIONS").Name("plan")
	r.HandleFunc("/plan", h.HandleSave).Methods("POST", "OPTIONS").Name("save-plan")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.get")
	defer span.End()

	unit, ok := syncunit.Resolve(w, r, h.resolve)
	if !ok {
		return
	}
	unit.Refresh(ctx)
	pkg.WriteJSONResponse(w, unit.State(), http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.save")
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
		log.Debugf("save plan: %s", err)
		syncunit.WriteError(w, err, unit.Status())
		return
	}
	pkg.WriteJSONResponse(w, unit.State(), http.StatusCreated)
}
