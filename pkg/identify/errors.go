package identify

import (
	"errors"
	"net/http"
)

var (
	ErrMissingName = errors.New(`Please provide an item name using the "name" query parameter.`)
	ErrNotFound    = errors.New("Item not found. Try another name.")
)

// internalMessage is the only detail a caller sees for unexpected failures.
const internalMessage = "Internal server error"

// statusFor maps lookup failures to HTTP codes. Anything unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingName):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
