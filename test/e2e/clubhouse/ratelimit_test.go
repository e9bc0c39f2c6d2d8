package clubhouse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
)

// TestSubmissionRateLimit checks the public submission form is limited by
// IP with the default sign-up profile.
func TestSubmissionRateLimit(t *testing.T) {
	svc := setupClubhouseWithEnv(t, nil)
	anon := clubsdk.NewClient(svc.baseURL, "")

	var limited bool
	for range 10 {
		_, err := anon.SubmitClub(t.Context(), clubsdk.ClubRequest{Name: "Drama", ContactEmail: "drama@cmrit.ac.in"})
		if clubsdk.IsCode(err, clubsdk.CodeRateLimitExceeded) {
			limited = true
			break
		}
		require.NoError(t, err)
	}
	require.True(t, limited, "expected a 429 within 10 submissions")
}
