package http

import (
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
)

func identityResponse(i domain.Identity) clubsdk.IdentityResponse {
	return clubsdk.IdentityResponse{
		ID:          i.ID,
		Email:       i.Email,
		DisplayName: i.DisplayName,
		Role:        i.Role.String(),
		Department:  i.Department,
		YearOfStudy: i.YearOfStudy,
		CreatedAt:   i.CreatedAt,
	}
}

func clubResponse(c domain.Club) clubsdk.ClubResponse {
	return clubsdk.ClubResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Department:   c.Department,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Established:  c.Established,
		CreatedBy:    c.CreatedBy,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func clubsResponse(cs []domain.Club) clubsdk.ListClubsResponse {
	out := clubsdk.ListClubsResponse{Clubs: make([]clubsdk.ClubResponse, len(cs))}
	for i, c := range cs {
		out.Clubs[i] = clubResponse(c)
	}
	return out
}

func memberResponse(m domain.Membership, who domain.Identity) clubsdk.MemberResponse {
	return clubsdk.MemberResponse{
		ID:          m.ID,
		ClubID:      m.ClubID,
		IdentityID:  m.IdentityID,
		DisplayName: who.DisplayName,
		Email:       who.Email,
		Position:    m.Position.String(),
		JoinedAt:    m.JoinedAt,
	}
}

func eventResponse(l service.Listing) clubsdk.EventResponse {
	e := l.Event
	out := clubsdk.EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		EventDate:            e.EventDate,
		Location:             e.Location,
		MaxParticipants:      e.MaxParticipants,
		RegistrationDeadline: e.RegistrationDeadline,
		ClubID:               e.ClubID,
		CreatedBy:            e.CreatedBy,
		IsActive:             e.IsActive,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
	if l.Stage != 0 {
		out.Stage = l.Stage.String()
	}
	return out
}

func eventsResponse(ls []service.Listing) clubsdk.ListEventsResponse {
	out := clubsdk.ListEventsResponse{Events: make([]clubsdk.EventResponse, len(ls))}
	for i, l := range ls {
		out.Events[i] = eventResponse(l)
	}
	return out
}

func registrationResponse(r domain.Registration) clubsdk.RegistrationResponse {
	return clubsdk.RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		IdentityID:   r.IdentityID,
		Status:       r.Status.String(),
		RegisteredAt: r.RegisteredAt,
		CancelledAt:  r.CancelledAt,
	}
}
