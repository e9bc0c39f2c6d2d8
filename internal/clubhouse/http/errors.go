package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

var kindStatus = map[domain.Kind]int{
	domain.KindForbidden:   http.StatusForbidden,
	domain.KindNotFound:    http.StatusNotFound,
	domain.KindConflict:    http.StatusConflict,
	domain.KindInvalid:     http.StatusBadRequest,
	domain.KindUnavailable: http.StatusServiceUnavailable,
}

// apiError maps a service error onto its response. Causes are never
// exposed, only the code and message of the outermost domain error.
func apiError(err error) *clubsdk.APIError {
	var de *domain.Error
	if !errors.As(err, &de) {
		return clubsdk.ErrServerError
	}
	status, ok := kindStatus[de.Kind]
	if !ok {
		return clubsdk.ErrServerError
	}
	return clubsdk.NewAPIError(status, de.Code, de.Message)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apiError(err)
	if ae.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	}
	if errors.Is(err, domain.ErrContended) {
		slogx.FromContext(r.Context()).Info("lost concurrent update", slog.String("code", ae.Code))
	}
	ae.WriteError(w)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.CodeInvalidRequest, desc).WriteError(w)
}
