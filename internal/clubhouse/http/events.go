package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type EventsHandler struct {
	EventService *service.EventService
	Now          func() time.Time
}

func (h *EventsHandler) listing(e domain.Event) service.Listing {
	l := service.Listing{Event: e}
	if e.IsActive {
		l.Stage = domain.Classify(e, h.Now().UTC())
	}
	return l
}

// HandleCreate handles POST /v1/events
//
//	@Summary		Create event
//	@Description	Creates an event owned by the caller. A club-linked event requires ownership of an active club.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		clubsdk.EventRequest	true	"Event"
//	@Success		201		{object}	clubsdk.EventResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse	"invalid_schedule, invalid_capacity, required_field"
//	@Failure		403		{object}	clubsdk.ErrorResponse
//	@Failure		404		{object}	clubsdk.ErrorResponse	"club not found"
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.EventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	e, err := h.EventService.Create(ctx, identityFromContext(ctx), service.EventInput{
		Title:                req.Title,
		Description:          req.Description,
		EventDate:            req.EventDate,
		Location:             req.Location,
		MaxParticipants:      req.MaxParticipants,
		RegistrationDeadline: req.RegistrationDeadline,
		ClubID:               req.ClubID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, eventResponse(h.listing(e)))
}

// HandleList handles GET /v1/events
//
//	@Summary	List active events
//	@Tags		Events
//	@Produce	json
//	@Param		club_id		query		string	false	"Only events of this club"
//	@Param		created_by	query		string	false	"Only events created by this identity"
//	@Param		stage		query		string	false	"upcoming, ongoing or completed"
//	@Success	200			{object}	clubsdk.ListEventsResponse
//	@Failure	400			{object}	clubsdk.ErrorResponse
//	@Router		/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := service.EventQuery{
		ClubID:    qs.Get("club_id"),
		CreatedBy: qs.Get("created_by"),
	}
	if s := qs.Get("stage"); s != "" {
		stage, err := domain.ParseStage(s)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		q.Stage = stage
	}

	events, err := h.EventService.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, eventsResponse(events))
}

// HandleListMine handles GET /v1/me/events
//
//	@Summary	List my events
//	@Tags		Events
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	clubsdk.ListEventsResponse
//	@Router		/v1/me/events [get].
func (h *EventsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.EventService.ListOwned(ctx, identityFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, eventsResponse(events))
}

// HandleGet handles GET /v1/events/{id}
//
//	@Summary	Get event
//	@Tags		Events
//	@Produce	json
//	@Param		id	path		string	true	"Event id"
//	@Success	200	{object}	clubsdk.EventResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/events/{id} [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	l, err := h.EventService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, eventResponse(l))
}

// HandleUpdate handles PATCH /v1/events/{id}
//
//	@Summary		Edit event
//	@Description	Applies the changes and re-validates the event. Capacity cannot drop below the confirmed registrations.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Event id"
//	@Param			request	body		clubsdk.UpdateEventRequest	true	"Fields to change"
//	@Success		200		{object}	clubsdk.EventResponse
//	@Failure		400		{object}	clubsdk.ErrorResponse
//	@Failure		403		{object}	clubsdk.ErrorResponse
//	@Failure		404		{object}	clubsdk.ErrorResponse
//	@Router			/v1/events/{id} [patch].
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req clubsdk.UpdateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	e, err := h.EventService.Update(ctx, identityFromContext(ctx), r.PathValue("id"), domain.EventPatch{
		Title:                     req.Title,
		Description:               req.Description,
		EventDate:                 req.EventDate,
		Location:                  req.Location,
		MaxParticipants:           req.MaxParticipants,
		RegistrationDeadline:      req.RegistrationDeadline,
		ClearMaxParticipants:      req.ClearMaxParticipants,
		ClearRegistrationDeadline: req.ClearRegistrationDeadline,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, eventResponse(h.listing(e)))
}

// HandleDeactivate handles DELETE /v1/events/{id}
//
//	@Summary	Deactivate event
//	@Tags		Events
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Event id"
//	@Success	204
//	@Failure	403	{object}	clubsdk.ErrorResponse
//	@Failure	404	{object}	clubsdk.ErrorResponse
//	@Router		/v1/events/{id} [delete].
func (h *EventsHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.EventService.Deactivate(ctx, identityFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
