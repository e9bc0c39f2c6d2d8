package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

type identityKey struct{}

// requireIdentity loads the Identity named by the token subject. Callers
// with a valid token but no sign-up get 403 identity_not_registered.
func (r *Router) requireIdentity() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			sub, ok := httpx.SubjectFromContext(ctx)
			if !ok {
				clubsdk.ErrIdentityNotRegistered.WriteError(w)
				return
			}

			who, err := r.IdentityService.Get(ctx, sub)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					slogx.FromContext(ctx).Warn("token subject has no identity", slog.String("subject", sub))
					clubsdk.ErrIdentityNotRegistered.WriteError(w)
					return
				}
				writeServiceError(w, req, err)
				return
			}

			ctx = context.WithValue(slogx.WithIdentity(ctx, who.ID), identityKey{}, who)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// identityFromContext returns the caller, or the anonymous Identity.
func identityFromContext(ctx context.Context) domain.Identity {
	who, _ := ctx.Value(identityKey{}).(domain.Identity)
	return who
}
