package v1

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gosuda/snet/internal/apiclient"
	"github.com/gosuda/snet/internal/domain"
	"github.com/gosuda/snet/internal/schema"
)

// serviceError maps a service layer error onto a problem response. what names
// the resource for not-found messages.
func serviceError(err error, what string) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		details := make([]error, len(verr.Violations))
		for i, v := range verr.Violations {
			details[i] = &huma.ErrorDetail{Message: v}
		}
		return huma.Error400BadRequest("invalid "+string(verr.Kind)+" payload", details...)
	}

	msg := upstreamMessage(err)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		if msg == "" {
			msg = what + " not found"
		}
		return huma.Error404NotFound(msg)
	case errors.Is(err, domain.ErrConflict):
		if msg == "" {
			msg = what + " conflicts with existing state"
		}
		return huma.Error409Conflict(msg)
	case errors.Is(err, domain.ErrInvalidInput):
		if msg == "" {
			msg = "invalid " + what
		}
		return huma.Error400BadRequest(msg)
	default:
		return huma.Error502BadGateway("establishment API request failed", err)
	}
}

// upstreamMessage returns the message the establishment API attached to its
// error response, if any.
func upstreamMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
