package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clubhttp "github.com/aussiebroadwan/clubhouse/internal/clubhouse/http"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/cryptox"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

const (
	issuer   = "campus-idp"
	audience = "clubhouse"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type env struct {
	t      *testing.T
	ctx    context.Context
	now    time.Time
	srv    *httptest.Server
	signer *jwtx.Signer
}

func newEnv(t *testing.T) *env {
	return newEnvWithKeys(t, true)
}

func newEnvWithKeys(t *testing.T, loadKeys bool) *env {
	t.Helper()
	e := &env{t: t, ctx: context.Background(), now: epoch}
	clock := func() time.Time { return e.now }

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	kid, err := cryptox.KeyID(pemKey)
	require.NoError(t, err)
	e.signer, err = jwtx.NewSigner(kid, pemKey)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	if loadKeys {
		require.NoError(t, keys.AddSigner(e.signer))
	}
	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   issuer,
		Audience: []string{audience},
	})

	st := memory.NewStore()
	r := clubhttp.NewRouter(keys, verifier, "test", st, slogx.Discard())
	r.Now = clock
	r.IdentityService = &service.IdentityService{Store: st, EmailDomain: service.DefaultEmailDomain, Now: clock}
	r.ClubService = &service.ClubService{Store: st, EmailDomain: service.DefaultEmailDomain, Now: clock}
	r.EventService = &service.EventService{Store: st, Now: clock}
	r.MembershipService = &service.MembershipService{Store: st, Now: clock}
	r.RegistrationService = &service.RegistrationService{Store: st, Now: clock}
	r.ApplyRoutes()

	e.srv = httptest.NewServer(r)
	t.Cleanup(e.srv.Close)
	return e
}

// client returns an SDK client carrying a token for subject.
func (e *env) client(subject, email string) *clubsdk.Client {
	e.t.Helper()
	claims := jwtx.NewIdentityClaims(subject, email, "", issuer, []string{audience}, time.Hour, time.Now())
	tok, err := e.signer.Sign(claims)
	require.NoError(e.t, err)
	return clubsdk.NewClient(e.srv.URL, tok)
}

// member signs subject up and returns its client.
func (e *env) member(subject, role string) *clubsdk.Client {
	e.t.Helper()
	c := e.client(subject, subject+"@cmrit.ac.in")
	_, err := c.SignUp(e.ctx, clubsdk.SignUpRequest{DisplayName: subject, Role: role})
	require.NoError(e.t, err)
	return c
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	var ae *clubsdk.APIError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, status, ae.StatusCode, ae.Error())
	require.Equal(t, code, ae.Code)
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	anon := clubsdk.NewClient(e.srv.URL, "")

	live, err := anon.GetLiveness(e.ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := anon.GetReadiness(e.ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Keys)
}

func TestReadyzWithoutKeys(t *testing.T) {
	e := newEnvWithKeys(t, false)

	resp, err := http.Get(e.srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuthentication(t *testing.T) {
	e := newEnv(t)

	_, err := clubsdk.NewClient(e.srv.URL, "").Me(e.ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clubsdk.CodeInvalidToken)

	_, err = clubsdk.NewClient(e.srv.URL, "not-a-jwt").Me(e.ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clubsdk.CodeInvalidToken)

	// valid token, never signed up
	_, err = e.client("ghost", "ghost@cmrit.ac.in").Me(e.ctx)
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeIdentityNotRegistered)
}

func TestSignUp(t *testing.T) {
	e := newEnv(t)
	c := e.client("asha", "asha@cmrit.ac.in")

	_, err := c.SignUp(e.ctx, clubsdk.SignUpRequest{DisplayName: "Asha", Role: "admin"})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeInvalidRole)

	_, err = c.SignUp(e.ctx, clubsdk.SignUpRequest{Email: "asha@gmail.com", DisplayName: "Asha", Role: "student"})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeInvalidEmailDomain)

	year := 2
	me, err := c.SignUp(e.ctx, clubsdk.SignUpRequest{DisplayName: "Asha", Role: "student", YearOfStudy: &year})
	require.NoError(t, err)
	require.Equal(t, "asha", me.ID)
	require.Equal(t, "asha@cmrit.ac.in", me.Email)
	require.Equal(t, "student", me.Role)

	_, err = c.SignUp(e.ctx, clubsdk.SignUpRequest{DisplayName: "Asha", Role: "student"})
	requireAPIError(t, err, http.StatusConflict, clubsdk.CodeIdentityExists)

	name := "Asha R"
	updated, err := c.UpdateProfile(e.ctx, clubsdk.UpdateProfileRequest{DisplayName: &name})
	require.NoError(t, err)
	require.Equal(t, "Asha R", updated.DisplayName)
	require.Equal(t, "student", updated.Role)

	got, err := c.Me(e.ctx)
	require.NoError(t, err)
	require.Equal(t, "Asha R", got.DisplayName)
}

func TestClubsAndMembers(t *testing.T) {
	e := newEnv(t)
	faculty := e.member("meera", "faculty")
	student := e.member("ravi", "student")
	e.member("kiran", "student")

	_, err := student.CreateClub(e.ctx, clubsdk.ClubRequest{Name: "Chess"})
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)

	club, err := faculty.CreateClub(e.ctx, clubsdk.ClubRequest{Name: "Robotics", Department: "ECE"})
	require.NoError(t, err)
	require.Equal(t, "meera", club.CreatedBy)

	list, err := clubsdk.NewClient(e.srv.URL, "").ListClubs(e.ctx)
	require.NoError(t, err)
	require.Len(t, list.Clubs, 1)

	m, err := faculty.AddMember(e.ctx, club.ID, clubsdk.AddMemberRequest{Email: "ravi@cmrit.ac.in", Position: "secretary"})
	require.NoError(t, err)
	require.Equal(t, "ravi", m.IdentityID)

	_, err = faculty.AddMember(e.ctx, club.ID, clubsdk.AddMemberRequest{Email: "ravi@cmrit.ac.in", Position: "other"})
	requireAPIError(t, err, http.StatusConflict, clubsdk.CodeDuplicateMembership)

	_, err = faculty.AddMember(e.ctx, club.ID, clubsdk.AddMemberRequest{Email: "nobody@cmrit.ac.in", Position: "other"})
	requireAPIError(t, err, http.StatusNotFound, clubsdk.CodeIdentityNotFound)

	_, err = faculty.AddMember(e.ctx, club.ID, clubsdk.AddMemberRequest{Email: "kiran@cmrit.ac.in", Position: "mascot"})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeInvalidPosition)

	_, err = student.AddMember(e.ctx, club.ID, clubsdk.AddMemberRequest{Email: "kiran@cmrit.ac.in", Position: "other"})
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)

	moved, err := faculty.ChangePosition(e.ctx, m.ID, "president")
	require.NoError(t, err)
	require.Equal(t, "president", moved.Position)

	roster, err := student.ListMembers(e.ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, roster.Members, 1)
	require.Equal(t, "ravi", roster.Members[0].DisplayName)
	require.Equal(t, "president", roster.Members[0].Position)

	require.NoError(t, faculty.RemoveMember(e.ctx, m.ID))
	err = faculty.RemoveMember(e.ctx, m.ID)
	requireAPIError(t, err, http.StatusNotFound, clubsdk.CodeNotFound)

	require.NoError(t, faculty.DeactivateClub(e.ctx, club.ID))
	list, err = faculty.ListClubs(e.ctx)
	require.NoError(t, err)
	require.Empty(t, list.Clubs)

	mine, err := faculty.ListMyClubs(e.ctx)
	require.NoError(t, err)
	require.Len(t, mine.Clubs, 1)
	require.False(t, mine.Clubs[0].IsActive)
}

func TestSubmitClub(t *testing.T) {
	e := newEnv(t)
	anon := clubsdk.NewClient(e.srv.URL, "")

	_, err := anon.SubmitClub(e.ctx, clubsdk.ClubRequest{Name: "Drama"})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeRequiredField)

	club, err := anon.SubmitClub(e.ctx, clubsdk.ClubRequest{Name: "Drama", ContactEmail: "drama@cmrit.ac.in"})
	require.NoError(t, err)
	require.Empty(t, club.CreatedBy)

	// nobody owns a submitted club
	faculty := e.member("meera", "faculty")
	name := "Theatre"
	_, err = faculty.UpdateClub(e.ctx, club.ID, clubsdk.UpdateClubRequest{Name: &name})
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)
}

func TestEventRegistration(t *testing.T) {
	e := newEnv(t)
	owner := e.member("meera", "faculty")
	asha := e.member("asha", "student")
	ravi := e.member("ravi", "student")

	capacity := 1
	ev, err := owner.CreateEvent(e.ctx, clubsdk.EventRequest{
		Title:           "Hack Night",
		EventDate:       epoch.Add(7 * 24 * time.Hour),
		MaxParticipants: &capacity,
	})
	require.NoError(t, err)
	require.Equal(t, "upcoming", ev.Stage)

	reg, err := asha.Register(e.ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "confirmed", reg.Status)

	_, err = asha.Register(e.ctx, ev.ID)
	requireAPIError(t, err, http.StatusConflict, clubsdk.CodeAlreadyRegistered)

	_, err = ravi.Register(e.ctx, ev.ID)
	require.True(t, clubsdk.IsCode(err, clubsdk.CodeCapacityExceeded))

	_, err = ravi.ListRegistrations(e.ctx, ev.ID)
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)

	regs, err := owner.ListRegistrations(e.ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, 1, regs.Count)
	require.Equal(t, "asha", regs.Registrations[0].IdentityID)

	err = ravi.CancelRegistration(e.ctx, reg.ID)
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)

	require.NoError(t, asha.CancelRegistration(e.ctx, reg.ID))
	_, err = ravi.Register(e.ctx, ev.ID)
	require.NoError(t, err)

	// capacity cannot drop below the confirmed count
	zero := 0
	_, err = owner.UpdateEvent(e.ctx, ev.ID, clubsdk.UpdateEventRequest{MaxParticipants: &zero})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeInvalidCapacity)

	updated, err := owner.UpdateEvent(e.ctx, ev.ID, clubsdk.UpdateEventRequest{ClearMaxParticipants: true})
	require.NoError(t, err)
	require.Nil(t, updated.MaxParticipants)
}

func TestEventStages(t *testing.T) {
	e := newEnv(t)
	owner := e.member("meera", "faculty")
	student := e.member("asha", "student")

	ev, err := owner.CreateEvent(e.ctx, clubsdk.EventRequest{
		Title:     "Orientation",
		EventDate: epoch.Add(time.Hour),
	})
	require.NoError(t, err)

	anon := clubsdk.NewClient(e.srv.URL, "")
	upcoming, err := anon.ListEvents(e.ctx, clubsdk.ListEventsParams{Stage: "upcoming"})
	require.NoError(t, err)
	require.Len(t, upcoming.Events, 1)

	_, err = anon.ListEvents(e.ctx, clubsdk.ListEventsParams{Stage: "someday"})
	requireAPIError(t, err, http.StatusBadRequest, clubsdk.CodeInvalidField)

	e.now = epoch.Add(2 * time.Hour)
	got, err := anon.GetEvent(e.ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "ongoing", got.Stage)

	_, err = student.Register(e.ctx, ev.ID)
	requireAPIError(t, err, http.StatusConflict, clubsdk.CodeEventNotUpcoming)

	// completed events are refused by policy before any engine check
	e.now = epoch.Add(26 * time.Hour)
	_, err = student.Register(e.ctx, ev.ID)
	requireAPIError(t, err, http.StatusForbidden, clubsdk.CodeForbidden)

	require.NoError(t, owner.DeactivateEvent(e.ctx, ev.ID))
	_, err = anon.GetEvent(e.ctx, ev.ID)
	require.NoError(t, err)

	listed, err := anon.ListEvents(e.ctx, clubsdk.ListEventsParams{})
	require.NoError(t, err)
	require.Empty(t, listed.Events)

	mine, err := owner.ListMyEvents(e.ctx)
	require.NoError(t, err)
	require.Len(t, mine.Events, 1)
	require.Empty(t, mine.Events[0].Stage)
}
