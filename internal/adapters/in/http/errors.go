package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"
)

// Error kinds reported in the body of non-rejection failures.
const (
	KindNotFound          = "NotFound"
	KindInvalidTransition = "InvalidTransition"
	KindOfferingNotActive = "OfferingNotActive"
	KindInvalidAmount     = "InvalidAmount"
	KindInvalidScore      = "InvalidScore"
	KindInvalidText       = "InvalidText"
	KindInvalidValue      = "InvalidValue"
	KindInvalidRequest    = "InvalidRequest"
	KindInternal          = "Internal"
)

// ErrorResponse maps an application error to a status code and body.
// Internal failures get a generic message so that driver details do not leak.
func ErrorResponse(err error) (int, servers.Error) {
	status, kind := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return status, servers.Error{Code: status, Message: message, Kind: kind}
}

func classify(err error) (int, string) {
	if kind := rating.KindOf(err); kind != rating.UnknownRejection {
		switch kind {
		case rating.OrderNotFound:
			return http.StatusNotFound, kind.String()
		case rating.OrderAlreadyRated:
			return http.StatusConflict, kind.String()
		default:
			return http.StatusUnprocessableEntity, kind.String()
		}
	}

	switch {
	case errors.Is(err, workitem.ErrInvalidTransition):
		return http.StatusConflict, KindInvalidTransition
	case errors.Is(err, catalog.ErrOfferingNotActive):
		return http.StatusUnprocessableEntity, KindOfferingNotActive
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, catalog.ErrOfferingNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, kernel.ErrInvalidAmount):
		return http.StatusBadRequest, KindInvalidAmount
	case errors.Is(err, kernel.ErrInvalidScore):
		return http.StatusBadRequest, KindInvalidScore
	case errors.Is(err, kernel.ErrInvalidText):
		return http.StatusBadRequest, KindInvalidText
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, KindInvalidValue
	default:
		return http.StatusInternalServerError, KindInternal
	}
}
