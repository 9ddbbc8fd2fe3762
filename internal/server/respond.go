package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedonate/internal/lookup"
	"wedonate/pkg/types"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response body")
	}
}

func (s *Service) respondMessage(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without leaking internals.
func (s *Service) respondError(w http.ResponseWriter, err error) {
	var (
		validationErr *types.ValidationError
		throttledErr  *types.ThrottledError
		upstreamErr   *lookup.UpstreamStatusError
	)

	switch {
	case errors.As(err, &validationErr):
		s.respondMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, types.ErrEmptyPatch):
		s.respondMessage(w, http.StatusBadRequest, types.ErrEmptyPatch.Error())
	case errors.Is(err, types.ErrUnauthorized):
		s.respondMessage(w, http.StatusUnauthorized, types.ErrUnauthorized.Error())
	case errors.As(err, &throttledErr):
		s.respondMessage(w, http.StatusForbidden, throttledErr.Error())
	case errors.Is(err, types.ErrForbidden):
		s.respondMessage(w, http.StatusForbidden, types.ErrForbidden.Error())
	case errors.Is(err, types.ErrOrganizationNotFound),
		errors.Is(err, types.ErrCampaignNotFound),
		errors.Is(err, types.ErrLocationNotFound),
		errors.Is(err, lookup.ErrCEPNotFound):
		s.respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrConflict):
		s.respondMessage(w, http.StatusConflict, types.ErrConflict.Error())
	case errors.As(err, &upstreamErr):
		s.respondMessage(w, upstreamErr.StatusCode, upstreamErr.Body)
	default:
		s.logger.WithError(err).Error("request failed")
		s.respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
