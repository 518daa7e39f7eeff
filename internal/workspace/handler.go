package workspace

import (
	"net/http"

	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{
		registry: registry,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/today", h.HandleToday).Methods("GET", "OPTIONS").Name("today")
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workspace.today")
	defer span.End()

	ws, ok := syncunit.Resolve(w, r, h.registry.FromContext)
	if !ok {
		return
	}
	ws.Refresh(ctx)
	pkg.WriteJSONResponse(w, ws.Snapshot(), http.StatusOK)
}
