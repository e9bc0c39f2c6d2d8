package clubhouse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
)

func TestLivezEndpoint(t *testing.T) {
	svc := setupClubhouse(t)

	health, err := clubsdk.NewClient(svc.baseURL, "").GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	svc := setupClubhouse(t)

	health, err := clubsdk.NewClient(svc.baseURL, "").GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Keys)
}
