package clubsdk

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

func TestClientSendsTokenAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/events", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("club_id"))
		assert.Equal(t, "upcoming", r.URL.Query().Get("stage"))
		assert.Empty(t, r.URL.Query().Get("created_by"))
		httpx.WriteJSON(w, http.StatusOK, ListEventsResponse{Events: []EventResponse{{ID: "e1", Stage: "upcoming"}}})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL+"/", "tok").ListEvents(t.Context(), ListEventsParams{ClubID: "c1", Stage: "upcoming"})
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	require.Equal(t, "e1", got.Events[0].ID)
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/events/full/registrations":
			NewAPIError(http.StatusConflict, CodeCapacityExceeded, "event is full").WriteError(w)
		case "/v1/registrations/r1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "tok")

	_, err := c.Register(t.Context(), "full")
	require.True(t, IsCode(err, CodeCapacityExceeded))
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusConflict, ae.StatusCode)
	require.Equal(t, "capacity_exceeded: event is full", ae.Error())

	require.NoError(t, c.CancelRegistration(t.Context(), "r1"))

	// non-JSON bodies still surface as an APIError
	_, err = c.GetEvent(t.Context(), "x")
	require.ErrorAs(t, err, &ae)
	require.Equal(t, http.StatusBadGateway, ae.StatusCode)
	require.Equal(t, CodeServerError, ae.Code)
	require.False(t, IsCode(err, CodeNotFound))
}
