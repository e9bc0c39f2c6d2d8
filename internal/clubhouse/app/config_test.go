package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"CLUBHOUSE_DATABASE_DRIVER", "INSTITUTION_EMAIL_DOMAIN", "AUTH_AUDIENCE",
		"AUTH_JWKS_URL", "PORT", "RATELIMIT_WRITE_BURST",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "cmrit.ac.in", cfg.EmailDomain)
	require.Equal(t, []string{"clubhouse"}, cfg.Audience)
	require.Empty(t, cfg.JWKSURL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, httpx.WriteLimit, cfg.WriteLimit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CLUBHOUSE_DATABASE_DRIVER", "Postgres")
	t.Setenv("AUTH_AUDIENCE", "clubhouse, clubhouse-web ,")
	t.Setenv("AUTH_JWKS_REFRESH_INTERVAL", "5")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("PORT", "not-a-port")
	t.Setenv("RATELIMIT_WRITE_BURST", "3")

	cfg := LoadConfig()
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, []string{"clubhouse", "clubhouse-web"}, cfg.Audience)
	require.Equal(t, 5*time.Minute, cfg.JWKSRefreshInterval)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 3, cfg.WriteLimit.Burst)
	require.Equal(t, httpx.WriteLimit.RequestsPerWindow, cfg.WriteLimit.RequestsPerWindow)
}
