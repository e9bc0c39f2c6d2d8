package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type IdentitiesHandler struct {
	IdentityService *service.IdentityService
}

// HandleSignUp handles POST /v1/identities
//
//	@Summary		Sign up
//	@Description	Creates the caller's Identity. The id is the token subject and the email defaults to the token's email claim.
//	@Tags			Identities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clubsdk.SignUpRequest		true	"Profile"
//	@Success		201		{object}	clubsdk.IdentityResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse	"invalid_role, invalid_email_domain, required_field"
//	@Failure		401		{object}	clubsdk.ErrorResponse
//	@Failure		409		{object}	clubsdk.ErrorResponse	"identity_exists"
//	@Router			/v1/identities [post].
func (h *IdentitiesHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok || claims.Subject == "" {
		clubsdk.ErrIdentityNotRegistered.WriteError(w)
		return
	}

	var req clubsdk.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = claims.Email
	}

	ident, err := h.IdentityService.SignUp(ctx, service.SignUpInput{
		ID:          claims.Subject,
		Email:       email,
		DisplayName: req.DisplayName,
		Role:        role,
		Department:  req.Department,
		YearOfStudy: req.YearOfStudy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, identityResponse(ident))
}

// HandleMe handles GET /v1/me
//
//	@Summary	Current identity
//	@Tags		Identities
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	clubsdk.IdentityResponse
//	@Failure	401	{object}	clubsdk.ErrorResponse
//	@Failure	403	{object}	clubsdk.ErrorResponse	"identity_not_registered"
//	@Router		/v1/me [get].
func (h *IdentitiesHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, identityResponse(identityFromContext(r.Context())))
}

// HandleUpdateProfile handles PATCH /v1/me
//
//	@Summary		Edit profile
//	@Description	Changes display name, department or year of study. Role and email are fixed at sign-up.
//	@Tags			Identities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clubsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	clubsdk.IdentityResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse
//	@Failure		401		{object}	clubsdk.ErrorResponse
//	@Router			/v1/me [patch].
func (h *IdentitiesHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	ident, err := h.IdentityService.UpdateProfile(ctx, identityFromContext(ctx), domain.ProfilePatch{
		DisplayName: req.DisplayName,
		Department:  req.Department,
		YearOfStudy: req.YearOfStudy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identityResponse(ident))
}
