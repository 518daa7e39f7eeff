package catalog

import (
	"net/http"
	"strconv"

	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
)

type Handler struct {
	picker *Picker
}

func NewHandler(picker *Picker) *Handler {
	return &Handler{
		picker: picker,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/catalog/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("catalog-exercises")
	r.HandleFunc("/catalog/templates", h.HandleTemplates).Methods("GET", "OPTIONS").Name("catalog-templates")
	r.HandleFunc("/catalog/pick", h.HandlePick).Methods("GET", "OPTIONS").Name("catalog-pick")
}

func (h *Handler) HandleExercises(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, Exercises(), http.StatusOK)
}

func (h *Handler) HandleTemplates(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, Templates(), http.StatusOK)
}

// HandlePick answers /catalog/pick?duration=10&kind=cardio&max_level=2.
func (h *Handler) HandlePick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	duration, err := strconv.Atoi(q.Get("duration"))
	if err != nil || duration <= 0 {
		pkg.WriteJSONError(w, "duration must be a positive number of minutes", http.StatusBadRequest)
		return
	}

	opts := PickOptions{DurationMinutes: duration}
	if kind := Kind(q.Get("kind")); kind != "" {
		if !kind.Valid() {
			pkg.WriteJSONError(w, "unknown kind", http.StatusBadRequest)
			return
		}
		opts.Kind = kind
	}
	if ml := q.Get("max_level"); ml != "" {
		opts.MaxLevel, err = strconv.Atoi(ml)
		if err != nil || opts.MaxLevel < 1 || opts.MaxLevel > 3 {
			pkg.WriteJSONError(w, "max_level must be between 1 and 3", http.StatusBadRequest)
			return
		}
	}

	t := h.picker.Pick(opts)
	if t == nil {
		pkg.WriteJSONError(w, "no template fits", http.StatusNotFound)
		return
	}
	pkg.WriteJSONResponse(w, t, http.StatusOK)
}
