package clubhouse_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/cryptox"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
)

/*
 * Common constants and helpers for clubhouse end-to-end tests: image build,
 * container setup and token minting with the container's dev key.
 */

const (
	testImageName = "clubhouse-test:latest"

	issuer   = "campus-idp"
	audience = "clubhouse"
)

var imageBuilt bool

// TestMain builds the Docker image once before all tests and removes it
// afterwards. With -short nothing is built and every test skips.
func TestMain(m *testing.M) {
	flag.Parse()
	if !testing.Short() {
		fmt.Fprintf(os.Stdout, "Building clubhouse Docker image...")
		if err := buildDockerImage(); err != nil {
			fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, " done\n")
		imageBuilt = true
	}

	exitCode := m.Run()

	if imageBuilt {
		fmt.Fprintf(os.Stdout, "Cleaning up clubhouse Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/clubhouse/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// service is a running clubhouse container and the key its tokens are
// signed with.
type service struct {
	t       *testing.T
	baseURL string
	signer  *jwtx.Signer
}

// setupClubhouse starts the service with relaxed rate limits.
func setupClubhouse(t *testing.T) *service {
	return setupClubhouseWithEnv(t, map[string]string{
		"RATELIMIT_WRITE_REQUESTS":  "1000",
		"RATELIMIT_WRITE_BURST":     "1000",
		"RATELIMIT_SIGNUP_REQUESTS": "1000",
		"RATELIMIT_SIGNUP_BURST":    "1000",
	})
}

func setupClubhouseWithEnv(t *testing.T, extra map[string]string) *service {
	t.Helper()
	if !imageBuilt {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// The container verifies against the dev key we hand it
	keyPath := filepath.Join(t.TempDir(), "dev.key")
	pemKey, _, err := cryptox.LoadOrCreateEd25519Key(keyPath)
	require.NoError(t, err)
	kid, err := cryptox.KeyID(pemKey)
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(kid, pemKey)
	require.NoError(t, err)

	env := map[string]string{
		"AUTH_ISSUER":       issuer,
		"AUTH_AUDIENCE":     audience,
		"AUTH_DEV_KEY_FILE": "/data/dev.key",
		"ENV":               "test",
		"LOG_LEVEL":         "info",
		"LOG_FORMAT":        "json",
	}
	for k, v := range extra {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		Files: []testcontainers.ContainerFile{{
			HostFilePath:      keyPath,
			ContainerFilePath: "/data/dev.key",
			FileMode:          0o600,
		}},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &service{
		t:       t,
		baseURL: fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
		signer:  signer,
	}
}

// client returns an SDK client authenticated as subject.
func (s *service) client(subject string) *clubsdk.Client {
	s.t.Helper()
	claims := jwtx.NewIdentityClaims(subject, subject+"@cmrit.ac.in", subject, issuer, []string{audience}, time.Hour, time.Now())
	tok, err := s.signer.Sign(claims)
	require.NoError(s.t, err)
	return clubsdk.NewClient(s.baseURL, tok)
}

// signUp creates the identity for subject and returns its client.
func (s *service) signUp(subject, role string) *clubsdk.Client {
	s.t.Helper()
	c := s.client(subject)
	_, err := c.SignUp(s.t.Context(), clubsdk.SignUpRequest{DisplayName: subject, Role: role})
	require.NoError(s.t, err)
	return c
}

func assertHealthy(t *testing.T, health *clubsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}
