package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accesserrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/services"
	accesshttp "campus/contexts/identity-access/access-service/transport/http"
	"campus/internal/platform/authn"
)

func writeAccessError(w http.ResponseWriter, status int, code string, message string, redirectTo string) {
	writeJSON(w, status, accesshttp.ErrorResponse{
		Code:       code,
		Message:    message,
		RedirectTo: redirectTo,
	})
}

// writeAccessDomainError keeps every deny reason distinguishable: each
// caller-facing status/code pair maps to exactly one reason, and adapter
// failures never masquerade as denials.
func (s *Server) writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUnauthenticated):
		writeAccessError(w, http.StatusUnauthorized, "unauthenticated", err.Error(), services.LoginPath)
	case errors.Is(err, accesserrors.ErrOrgNotFound):
		writeAccessError(w, http.StatusNotFound, "org_not_found", err.Error(), "")
	case errors.Is(err, accesserrors.ErrForbidden):
		writeAccessError(w, http.StatusForbidden, "forbidden", err.Error(), "")
	case errors.Is(err, accesserrors.ErrFeatureDisabled):
		writeAccessError(w, http.StatusForbidden, "feature_disabled", err.Error(), "")
	case errors.Is(err, accesserrors.ErrInvalidScope):
		writeAccessError(w, http.StatusBadRequest, "invalid_scope", err.Error(), "")
	case errors.Is(err, accesserrors.ErrConfigMissing):
		writeAccessError(w, http.StatusInternalServerError, "config_missing", err.Error(), "")
	case errors.Is(err, accesserrors.ErrUnknownRole):
		// A membership row whose role is outside the closed set is a data
		// integrity fault, not a policy deny.
		s.logger.Error("stored role outside closed set",
			"event", "http_access_unknown_role",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeAccessError(w, http.StatusInternalServerError, "unknown_role", err.Error(), "")
	case accesserrors.IsResolution(err):
		s.logger.Error("access resolution failed",
			"event", "http_access_resolution_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeAccessError(w, http.StatusBadGateway, "resolution_error", "could not determine access", "")
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error", "")
	}
}

// sessionContext attaches the bearer session token, when present, to the
// request context. Anonymous requests pass through: the use cases decide
// whether that is a deny.
func sessionContext(r *http.Request) context.Context {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return r.Context()
	}
	return authn.WithSessionToken(r.Context(), parts[1])
}

func (s *Server) handleAccessLanding(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.LandingHandler(sessionContext(r))
	if err != nil {
		s.writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAccessMe(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.MeHandler(sessionContext(r))
	if err != nil {
		s.writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAccessResolveOrganization(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	resp, err := s.access.Handler.ResolveOrganizationHandler(sessionContext(r), slug)
	if err != nil {
		s.writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAccessResolveSingleOrg(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.ResolveSingleOrgHandler(sessionContext(r))
	if err != nil {
		s.writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAccessAuthorize(w http.ResponseWriter, r *http.Request) {
	var req accesshttp.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", "")
		return
	}
	resp, err := s.access.Handler.AuthorizeHandler(sessionContext(r), req)
	if err != nil {
		s.writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
