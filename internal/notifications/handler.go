package notifications

import (
	"errors"
	"net/http"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
)

type Handler struct {
	preferences *PreferencesWriter
	push        *PushRegistrar
}

func NewHandler(preferences *PreferencesWriter, push *PushRegistrar) *Handler {
	return &Handler{
		preferences: preferences,
		push:        push,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/notifications/preferences", h.HandleGetPreferences).Methods("GET", "OPTIONS").Name("notification-preferences")
	r.HandleFunc("/notifications/preferences", h.HandleSavePreferences).Methods("PUT", "POST", "OPTIONS").Name("save-notification-preferences")
	r.HandleFunc("/notifications/push", h.HandlePushStatus).Methods("GET", "OPTIONS").Name("push-status")
	r.HandleFunc("/notifications/push", h.HandleRegisterPush).Methods("POST", "OPTIONS").Name("register-push")
	r.HandleFunc("/notifications/push/preview", h.HandlePreview).Methods("POST", "OPTIONS").Name("push-preview")
}

func (h *Handler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.preferences")
	defer span.End()

	user, _ := session.UserFrom(ctx)
	p, err := h.preferences.Load(ctx, user)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, p, http.StatusOK)
}

func (h *Handler) HandleSavePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.savePreferences")
	defer span.End()

	user, _ := session.UserFrom(ctx)
	if user == nil {
		writeError(w, ErrNotAuthenticated)
		return
	}

	var in PreferencesInput
	if err := pkg.DecodeJSON(r, &in); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.preferences.Save(ctx, user, in.Slots)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, p, http.StatusOK)
}

func (h *Handler) HandlePushStatus(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSONResponse(w, map[string]bool{"supported": h.push.Supported()}, http.StatusOK)
}

func (h *Handler) HandleRegisterPush(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.registerPush")
	defer span.End()

	user, _ := session.UserFrom(ctx)
	if user == nil {
		writeError(w, ErrNotAuthenticated)
		return
	}

	var sub Subscription
	if err := pkg.DecodeJSON(r, &sub); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.push.Register(ctx, user, sub); err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSONResponse(w, map[string]bool{"registered": true}, http.StatusCreated)
}

type previewRequest struct {
	Data        string   `json:"data"`
	OpenWindows []string `json:"open_windows"`
}

type previewResponse struct {
	Notification Notification `json:"notification"`
	Click        ClickAction  `json:"click"`
}

// HandlePreview shows how a push message would be rendered and where a click on it leads.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := pkg.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	n := PushPayload([]byte(req.Data))
	pkg.WriteJSONResponse(w, previewResponse{
		Notification: n,
		Click:        ClickTarget(n, req.OpenWindows),
	}, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidTime):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPushUnsupported):
		pkg.WriteJSONError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		pkg.WriteJSONError(w, "Could not save your notification settings.", http.StatusInternalServerError)
	}
}
