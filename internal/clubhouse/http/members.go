package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleAdd handles POST /v1/clubs/{id}/members
//
//	@Summary		Add member
//	@Description	Adds the identity registered under email to the club roster. Club owner only.
//	@Tags			Memberships
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Club id"
//	@Param			request	body		clubsdk.AddMemberRequest	true	"Member"
//	@Success		201		{object}	clubsdk.MemberResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse	"invalid_position"
//	@Failure		403		{object}	clubsdk.ErrorResponse
//	@Failure		404		{object}	clubsdk.ErrorResponse	"not_found, identity_not_found"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"duplicate_membership"
//	@Router			/v1/clubs/{id}/members [post].
func (h *MembersHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.AddMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	// An unknown position is left to the service so it is reported after
	// the club and identity checks.
	position, _ := domain.ParsePosition(req.Position)

	m, err := h.MembershipService.AddMember(ctx, identityFromContext(ctx), r.PathValue("id"), req.Email, position)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, memberResponse(m, domain.Identity{Email: req.Email}))
}

// HandleList handles GET /v1/clubs/{id}/members
//
//	@Summary	List members
//	@Tags		Memberships
//	@Produce	json
//	@Param		id	path		string	true	"Club id"
//	@Success	200	{object}	clubsdk.ListMembersResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/clubs/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.MembershipService.ListMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := clubsdk.ListMembersResponse{Members: make([]clubsdk.MemberResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = memberResponse(m.Membership, m.Identity)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleChangePosition handles PATCH /v1/memberships/{id}
//
//	@Summary	Change position
//	@Tags		Memberships
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Membership id"
//	@Param		request	body		clubsdk.ChangePositionRequest	true	"New position"
//	@Success	200		{object}	clubsdk.MemberResponse
//	@Failure	400		{object}	clubsdk.ErrorResponse
//	@Failure	403		{object}	clubsdk.ErrorResponse
//	@Failure	404		{object}	clubsdk.ErrorResponse
//	@Router		/v1/memberships/{id} [patch].
func (h *MembersHandler) HandleChangePosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.ChangePositionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	position, err := domain.ParsePosition(req.Position)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.MembershipService.ChangePosition(ctx, identityFromContext(ctx), r.PathValue("id"), position)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, memberResponse(m, domain.Identity{}))
}

// HandleRemove handles DELETE /v1/memberships/{id}
//
//	@Summary	Remove member
//	@Tags		Memberships
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Membership id"
//	@Success	204
//	@Failure	403	{object}	clubsdk.ErrorResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/memberships/{id} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.MembershipService.RemoveMember(ctx, identityFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
