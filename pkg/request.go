package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// "clock" accepts HH:MM wall clock values
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	})
}

var ErrEmptyBody = errors.New("empty request body")

// DecodeJSON decodes the request body into dst and runs the `validate` struct tags.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return Validate(dst)
}

func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
