package handlers

import (
	"aquaops/internal/domain/validate"
	"aquaops/pkg"
	"errors"
	"net/http"
)

// asValidationError converts a field-level failure list into the 400
// envelope. The second return is false for every other error kind.
func asValidationError(err error) (*pkg.AppError, bool) {
	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	details := make([]pkg.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, pkg.ErrorDetail{Field: fe.Field, Message: fe.Message})
	}
	return pkg.NewValidationError("VALIDATION_FAILED", "Validation failed", details, http.StatusBadRequest), true
}
