package apperrors

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"twohtsounds/utils"
)

// ErrNotFound marks a lookup that matched no document. Wrap it with
// fmt.Errorf("...: %w", ErrNotFound) to add context.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad input: a malformed identifier, a value
// outside an enum, or a missing required field. It always maps to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Respond maps an error onto the HTTP taxonomy: validation errors become
// 400 with their message, ErrNotFound becomes 404 with notFoundMsg, and
// everything else is logged and surfaced as a generic 500. The underlying
// cause is never echoed to the caller.
func Respond(w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		utils.RespondWithError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("internal error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, internalMsg)
	}
}
