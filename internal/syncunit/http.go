package syncunit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/motivly/internal/cache"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// StatusCode maps a unit operation error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case store.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError answers with the unit's user facing message when it has one.
func WriteError(w http.ResponseWriter, err error, st Status) {
	code := StatusCode(err)
	msg := http.StatusText(code)
	switch {
	case st.Error != nil:
		msg = *st.Error
	case code == http.StatusBadRequest:
		msg = err.Error()
	}
	pkg.WriteJSONError(w, msg, code)
}

// MonthVars reads the {year} and {month} route vars. month is 1-12 in the URL and is
// returned zero based.
func MonthVars(r *http.Request) (year, monthIndex int, err error) {
	vars := mux.Vars(r)
	year, err = strconv.Atoi(vars["year"])
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, fmt.Errorf("%w: bad year %q", ErrInvalidInput, vars["year"])
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: bad month %q", ErrInvalidInput, vars["month"])
	}
	return year, month - 1, nil
}

// Resolve looks up the caller's unit and answers the request itself when that fails.
func Resolve[T any](w http.ResponseWriter, r *http.Request, resolve func(ctx context.Context) (T, error)) (T, bool) {
	unit, err := resolve(r.Context())
	if err != nil {
		var zero T
		if errors.Is(err, ErrNoSession) {
			pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
			return zero, false
		}
		log.Errorf("resolve unit for %s: %s", r.URL.Path, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return zero, false
	}
	return unit, true
}

// ServeMonth answers a month calendar request through mc. compute receives a zero based
// month index.
func ServeMonth(
	w http.ResponseWriter,
	r *http.Request,
	b *Base,
	mc *cache.MonthCache,
	errMsg string,
	compute func(ctx context.Context, year, monthIndex int) (any, error),
) {
	year, monthIndex, err := MonthVars(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := b.CurrentUser()
	if user == nil {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	key := b.CacheKey(user.ID, "month", year, monthIndex)
	body, err := mc.Fetch(key, func() (any, error) {
		return compute(r.Context(), year, monthIndex)
	})
	if err != nil {
		pkg.WriteJSONError(w, errMsg, http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, body, http.StatusOK)
}
