package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-MOTIVLY-TOKEN"

type Handler struct {
	service  *Service
	onLogout func(ctx context.Context, userID string)
}

func NewHandler(service *Service, onLogout func(ctx context.Context, userID string)) *Handler {
	return &Handler{
		service:  service,
		onLogout: onLogout,
	}
}

// SetupRoutes mounts the auth routes under /auth. Middlewares apply to those routes only.
func (h *Handler) SetupRoutes(r *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(middlewares...)
	authRouter.HandleFunc("/signup", h.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	authRouter.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	var creds Credentials
	if err := pkg.DecodeJSON(r, &creds); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.Signup(ctx, creds)
	switch {
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteJSONError(w, "email already registered", http.StatusConflict)
		return
	case errors.Is(err, ErrPasswordTooLong):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("signup failed: %s", err)
		pkg.WriteJSONError(w, "signup failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, user, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var creds Credentials
	if err := pkg.DecodeJSON(r, &creds); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := h.service.Login(ctx, creds, time.Now())
	switch {
	case errors.Is(err, ErrWrongCredentials):
		log.Tracef("failed login attempt for: %s", creds.Email)
		pkg.WriteJSONError(w, "error, wrong credentials", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("login failed: %s", err)
		pkg.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new login success for %s", user.ID)
	pkg.WriteJSONResponse(w, loginResponse{Token: token, User: user}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := h.service.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	if h.onLogout != nil {
		h.onLogout(ctx, user.ID)
	}
	pkg.WriteJSONResponse(w, map[string]bool{"logged_out": true}, http.StatusOK)
}
