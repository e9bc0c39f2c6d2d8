package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/pkg/cryptox"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
)

// InitKeys builds the verification key set.
//
// Modes:
//   - JWKS: cfg.JWKSURL is set. Keys are fetched from the identity provider
//     and refreshed in the background by the returned JWKSRefresher. A failed
//     first fetch is not fatal; /readyz reports degraded until one succeeds.
//   - Dev: no JWKS URL. An Ed25519 key is loaded from cfg.DevKeyFile, created
//     on first start, and cmd/devtoken mints tokens with the same file.
func InitKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*jwtx.KeySet, *JWKSRefresher, error) {
	keys := jwtx.NewKeySet()

	if cfg.JWKSURL != "" {
		r := NewJWKSRefresher(cfg.JWKSURL, keys, logger, cfg.JWKSRefreshInterval)
		if err := r.Refresh(ctx); err != nil {
			logger.Warn("initial jwks fetch failed, will retry", "url", cfg.JWKSURL, "error", err)
		}
		return keys, r, nil
	}

	pemKey, created, err := cryptox.LoadOrCreateEd25519Key(cfg.DevKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dev key: %w", err)
	}
	kid, err := cryptox.KeyID(pemKey)
	if err != nil {
		return nil, nil, err
	}
	signer, err := jwtx.NewSigner(kid, pemKey)
	if err != nil {
		return nil, nil, err
	}
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, err
	}

	if created {
		logger.Info("generated dev signing key", "path", cfg.DevKeyFile, "kid", kid)
	}
	logger.Warn("no AUTH_JWKS_URL set, accepting tokens signed with the local dev key", "kid", kid)
	return keys, nil, nil
}

// JWKSRefresher periodically reloads a KeySet from a JWKS endpoint so key
// rotation at the identity provider is picked up without a restart.
type JWKSRefresher struct {
	URL      string
	Keys     *jwtx.KeySet
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewJWKSRefresher creates a refresher. If interval is 0 or negative,
// defaults to 15 minutes.
func NewJWKSRefresher(url string, keys *jwtx.KeySet, logger *slog.Logger, interval time.Duration) *JWKSRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &JWKSRefresher{
		URL:      url,
		Keys:     keys,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the refresh loop in the background. Call Stop to end it.
func (r *JWKSRefresher) Start() {
	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
}

// Stop ends the loop and waits for an in-progress fetch.
func (r *JWKSRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("jwks refresher stopped")
}

func (r *JWKSRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Interval)
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Error("jwks refresh failed", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}

// Refresh fetches the JWKS once and replaces the key set. On failure the
// previous keys are kept.
func (r *JWKSRefresher) Refresh(ctx context.Context) error {
	jwks, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		return err
	}
	n, err := r.Keys.ResetFromJWKS(jwks)
	if err != nil {
		return err
	}
	r.Logger.Debug("jwks refreshed", "keys", n)
	return nil
}
