package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/jwtx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"

	_ "github.com/aussiebroadwan/clubhouse/api/clubhouse" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits are the rate limits applied per route class.
type Limits struct {
	SignUp httpx.RateLimitConfig
	Write  httpx.RateLimitConfig
	Read   httpx.RateLimitConfig
}

func DefaultLimits() Limits {
	return Limits{
		SignUp: httpx.SignUpLimit,
		Write:  httpx.WriteLimit,
		Read:   httpx.ReadLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Limits Limits

	// Now is the clock used to classify events in responses.
	Now func() time.Time

	IdentityService     *service.IdentityService
	ClubService         *service.ClubService
	EventService        *service.EventService
	MembershipService   *service.MembershipService
	RegistrationService *service.RegistrationService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		Limits:       DefaultLimits(),
		Now:          time.Now,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerIdentities()
	r.registerClubs()
	r.registerMemberships()
	r.registerEvents()
	r.registerRegistrations()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clubhouse API
//	@version		0.1.0
//	@description	Campus clubs, events and event registration.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs issued by the campus identity provider. The token subject is the caller's identity id.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clubhouse
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// public is a handler any caller may reach, limited by IP.
func (r *Router) public(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(limit))
}

// member is a handler for a signed-up caller.
func (r *Router) member(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		httpx.RateLimitBySubject(limit),
		r.requireIdentity(), // load the caller's Identity
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez", r.public(LivezHandler(r.startTime, r.buildVersion), r.Limits.Read))
	r.Mux.Handle("GET /readyz", r.public(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), r.Limits.Read))
}

func (r *Router) registerIdentities() {
	h := &IdentitiesHandler{IdentityService: r.IdentityService}

	// Sign-up has a token but no Identity yet
	r.Mux.Handle("POST /v1/identities",
		httpx.Chain(http.HandlerFunc(h.HandleSignUp),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitBySubject(r.Limits.SignUp),
		),
	)
	r.Mux.Handle("GET /v1/me", r.member(h.HandleMe, r.Limits.Read))
	r.Mux.Handle("PATCH /v1/me", r.member(h.HandleUpdateProfile, r.Limits.Write))
}

func (r *Router) registerClubs() {
	h := &ClubsHandler{ClubService: r.ClubService}

	r.Mux.Handle("GET /v1/clubs", r.public(h.HandleList, r.Limits.Read))
	r.Mux.Handle("GET /v1/clubs/{id}", r.public(h.HandleGet, r.Limits.Read))

	// Public submission form, strict limit by IP
	r.Mux.Handle("POST /v1/clubs/submissions", r.public(h.HandleSubmit, r.Limits.SignUp))

	r.Mux.Handle("POST /v1/clubs", r.member(h.HandleCreate, r.Limits.Write))
	r.Mux.Handle("GET /v1/me/clubs", r.member(h.HandleListMine, r.Limits.Read))
	r.Mux.Handle("PATCH /v1/clubs/{id}", r.member(h.HandleUpdate, r.Limits.Write))
	r.Mux.Handle("DELETE /v1/clubs/{id}", r.member(h.HandleDeactivate, r.Limits.Write))
}

func (r *Router) registerMemberships() {
	h := &MembersHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/clubs/{id}/members", r.public(h.HandleList, r.Limits.Read))
	r.Mux.Handle("POST /v1/clubs/{id}/members", r.member(h.HandleAdd, r.Limits.Write))
	r.Mux.Handle("PATCH /v1/memberships/{id}", r.member(h.HandleChangePosition, r.Limits.Write))
	r.Mux.Handle("DELETE /v1/memberships/{id}", r.member(h.HandleRemove, r.Limits.Write))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService, Now: r.Now}

	r.Mux.Handle("GET /v1/events", r.public(h.HandleList, r.Limits.Read))
	r.Mux.Handle("GET /v1/events/{id}", r.public(h.HandleGet, r.Limits.Read))

	r.Mux.Handle("POST /v1/events", r.member(h.HandleCreate, r.Limits.Write))
	r.Mux.Handle("GET /v1/me/events", r.member(h.HandleListMine, r.Limits.Read))
	r.Mux.Handle("PATCH /v1/events/{id}", r.member(h.HandleUpdate, r.Limits.Write))
	r.Mux.Handle("DELETE /v1/events/{id}", r.member(h.HandleDeactivate, r.Limits.Write))
}

func (r *Router) registerRegistrations() {
	h := &RegistrationsHandler{RegistrationService: r.RegistrationService}

	r.Mux.Handle("POST /v1/events/{id}/registrations", r.member(h.HandleRegister, r.Limits.Write))
	r.Mux.Handle("GET /v1/events/{id}/registrations", r.member(h.HandleList, r.Limits.Read))
	r.Mux.Handle("DELETE /v1/registrations/{id}", r.member(h.HandleCancel, r.Limits.Write))
}
