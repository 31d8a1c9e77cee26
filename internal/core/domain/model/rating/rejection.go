package rating

import (
	"errors"
	"fmt"
)

// RejectionKind names why a rating request was refused. The numeric order
// matches the order in which eligibility is checked.
type RejectionKind int

const (
	UnknownRejection RejectionKind = iota
	OrderNotFound
	OrderNotCompleted
	ClientNotAuthorized
	OrderAlreadyRated
	CompletionDateMissing
	RatingPeriodExpired
	ProviderIDMismatch
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderNotCompleted     = errors.New("only completed orders can be rated")
	ErrClientNotAuthorized   = errors.New("only the client who placed the order can rate it")
	ErrOrderAlreadyRated     = errors.New("order has already been rated")
	ErrCompletionDateMissing = errors.New("order completion date is missing")
	ErrRatingPeriodExpired   = errors.New("rating period expired")
	ErrProviderIDMismatch    = errors.New("provider does not match the order provider")
)

func getKindStrings() map[RejectionKind]string {
	return map[RejectionKind]string{
		UnknownRejection:      "Unknown",
		OrderNotFound:         "OrderNotFound",
		OrderNotCompleted:     "OrderNotCompleted",
		ClientNotAuthorized:   "ClientNotAuthorized",
		OrderAlreadyRated:     "OrderAlreadyRated",
		CompletionDateMissing: "CompletionDateMissing",
		RatingPeriodExpired:   "RatingPeriodExpired",
		ProviderIDMismatch:    "ProviderIdMismatch",
	}
}

func getKindErrors() map[RejectionKind]error {
	//nolint:exhaustive // UnknownRejection has no sentinel
	return map[RejectionKind]error{
		OrderNotFound:         ErrOrderNotFound,
		OrderNotCompleted:     ErrOrderNotCompleted,
		ClientNotAuthorized:   ErrClientNotAuthorized,
		OrderAlreadyRated:     ErrOrderAlreadyRated,
		CompletionDateMissing: ErrCompletionDateMissing,
		RatingPeriodExpired:   ErrRatingPeriodExpired,
		ProviderIDMismatch:    ErrProviderIDMismatch,
	}
}

func (k RejectionKind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// RejectionError is returned when a rating request fails an eligibility check.
// errors.Is matches it against the sentinel of its kind.
type RejectionError struct {
	Kind    RejectionKind
	OrderID string
	Detail  string
}

func NewRejectionError(kind RejectionKind, orderID, detail string) *RejectionError {
	return &RejectionError{Kind: kind, OrderID: orderID, Detail: detail}
}

func (e *RejectionError) Error() string {
	msg := fmt.Sprintf("rating rejected for order %s: %s", e.OrderID, e.Unwrap())
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *RejectionError) Unwrap() error {
	if err, ok := getKindErrors()[e.Kind]; ok {
		return err
	}
	return errors.New("rating rejected")
}

// KindOf extracts the rejection kind from err, or UnknownRejection.
func KindOf(err error) RejectionKind {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Kind
	}
	return UnknownRejection
}
