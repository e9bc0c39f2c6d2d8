package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type RegistrationsHandler struct {
	RegistrationService *service.RegistrationService
}

// HandleRegister handles POST /v1/events/{id}/registrations
//
//	@Summary		Register for event
//	@Description	Registers the caller. Never overbooks: when the last seat is taken concurrently the loser gets capacity_exceeded.
//	@Tags			Registrations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Event id"
//	@Success		201	{object}	clubsdk.RegistrationResponse
//	@Failure		403	{object}	clubsdk.ErrorResponse
//	@Failure		404	{object}	clubsdk.ErrorResponse
//	@Failure		409	{object}	clubsdk.ErrorResponse	"already_registered, capacity_exceeded, registration_closed, event_not_upcoming, event_inactive"
//	@Router			/v1/events/{id}/registrations [post].
func (h *RegistrationsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := h.RegistrationService.Register(ctx, identityFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registrationResponse(reg))
}

// HandleList handles GET /v1/events/{id}/registrations
//
//	@Summary	List registrations
//	@Tags		Registrations
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Event id"
//	@Success	200	{object}	clubsdk.ListRegistrationsResponse
//	@Failure	403	{object}	clubsdk.ErrorResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/events/{id}/registrations [get].
func (h *RegistrationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regs, err := h.RegistrationService.ListForEvent(ctx, identityFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := clubsdk.ListRegistrationsResponse{
		Registrations: make([]clubsdk.RegistrationResponse, len(regs)),
		Count:         len(regs),
	}
	for i, reg := range regs {
		resp.Registrations[i] = registrationResponse(reg)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCancel handles DELETE /v1/registrations/{id}
//
//	@Summary	Cancel registration
//	@Tags		Registrations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Registration id"
//	@Success	204
//	@Failure	403	{object}	clubsdk.ErrorResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/registrations/{id} [delete].
func (h *RegistrationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.RegistrationService.Cancel(ctx, identityFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
