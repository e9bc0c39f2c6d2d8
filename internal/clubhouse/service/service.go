// Package service implements the clubhouse operations on top of a
// store.Store. Every exported operation returns nil or a *domain.Error.
package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
)

// DefaultEmailDomain is the institutional suffix identities and club
// contacts must use unless overridden.
const DefaultEmailDomain = "cmrit.ac.in"

// storeErr maps a repository error onto the domain taxonomy. Domain errors
// raised inside a transaction callback pass through unchanged.
func storeErr(err error) error {
	var de *domain.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return err
	case errors.Is(err, store.ErrNotFound):
		return domain.ErrNotFound
	default:
		return domain.Unavailable(err)
	}
}

func clockOrDefault(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}
