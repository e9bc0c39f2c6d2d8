package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

// ClubsHandler handles all club endpoints.
type ClubsHandler struct {
	ClubService *service.ClubService
}

func clubInput(req clubsdk.ClubRequest) service.ClubInput {
	return service.ClubInput{
		Name:         req.Name,
		Description:  req.Description,
		Department:   req.Department,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Established:  req.Established,
	}
}

// HandleCreate handles POST /v1/clubs
//
//	@Summary		Create club
//	@Description	Creates a club owned by the caller. Requires the faculty or club_officer role.
//	@Tags			Clubs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clubsdk.ClubRequest	true	"Club"
//	@Success		201		{object}	clubsdk.ClubResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse
//	@Failure		401		{object}	clubsdk.ErrorResponse
//	@Failure		403		{object}	clubsdk.ErrorResponse
//	@Router			/v1/clubs [post].
func (h *ClubsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.ClubRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	club, err := h.ClubService.Create(ctx, identityFromContext(ctx), clubInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clubResponse(club))
}

// HandleSubmit handles POST /v1/clubs/submissions
//
//	@Summary		Submit club
//	@Description	Public club submission. The club has no owner and requires a contact email.
//	@Tags			Clubs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.ClubRequest	true	"Club"
//	@Success		201		{object}	clubsdk.ClubResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse
//	@Failure		429		{object}	clubsdk.ErrorResponse
//	@Router			/v1/clubs/submissions [post].
func (h *ClubsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req clubsdk.ClubRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	club, err := h.ClubService.Submit(r.Context(), clubInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clubResponse(club))
}

// HandleList handles GET /v1/clubs
//
//	@Summary	List active clubs
//	@Tags		Clubs
//	@Produce	json
//	@Success	200	{object}	clubsdk.ListClubsResponse
//	@Router		/v1/clubs [get].
func (h *ClubsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.ClubService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clubsResponse(clubs))
}

// HandleListMine handles GET /v1/me/clubs
//
//	@Summary	List my clubs
//	@Tags		Clubs
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	clubsdk.ListClubsResponse
//	@Failure	401	{object}	clubsdk.ErrorResponse
//	@Router		/v1/me/clubs [get].
func (h *ClubsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clubs, err := h.ClubService.ListOwned(ctx, identityFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clubsResponse(clubs))
}

// HandleGet handles GET /v1/clubs/{id}
//
//	@Summary	Get club
//	@Tags		Clubs
//	@Produce	json
//	@Param		id	path		string	true	"Club id"
//	@Success	200	{object}	clubsdk.ClubResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/clubs/{id} [get].
func (h *ClubsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	club, err := h.ClubService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clubResponse(club))
}

// HandleUpdate handles PATCH /v1/clubs/{id}
//
//	@Summary	Edit club
//	@Tags		Clubs
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Club id"
//	@Param		request	body		clubsdk.UpdateClubRequest	true	"Fields to change"
//	@Success	200		{object}	clubsdk.ClubResponse
//	@Failure	400		{object}	clubsdk.ErrorResponse
//	@Failure	403		{object}	clubsdk.ErrorResponse
//	@Failure	404		{object}	clubsdk.ErrorResponse
//	@Router		/v1/clubs/{id} [patch].
func (h *ClubsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.UpdateClubRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	club, err := h.ClubService.Update(ctx, identityFromContext(ctx), r.PathValue("id"), domain.ClubPatch{
		Name:         req.Name,
		Description:  req.Description,
		Department:   req.Department,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Established:  req.Established,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubResponse(club))
}

// HandleDeactivate handles DELETE /v1/clubs/{id}
//
//	@Summary	Deactivate club
//	@Tags		Clubs
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Club id"
//	@Success	204
//	@Failure	403	{object}	clubsdk.ErrorResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/clubs/{id} [delete].
func (h *ClubsHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.ClubService.Deactivate(ctx, identityFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
