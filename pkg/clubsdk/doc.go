/*
Package clubsdk provides a client SDK for the clubhouse service and the
request/response types shared with its HTTP handlers.

# Overview

A Client talks to a clubhouse instance with a bearer token issued by the
campus identity provider. The token subject is the caller's identity id.

	client := clubsdk.NewClient("https://clubs.example.edu", token)

	// First call for a new account
	me, err := client.SignUp(ctx, clubsdk.SignUpRequest{
		Email:       "asha@cmrit.ac.in",
		DisplayName: "Asha",
		Role:        "student",
	})

	// Browse and register
	events, err := client.ListEvents(ctx, clubsdk.ListEventsParams{Stage: "upcoming"})
	reg, err := client.Register(ctx, events.Events[0].ID)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the machine readable code, for example "capacity_exceeded" or
"registration_closed":

	if _, err := client.Register(ctx, eventID); clubsdk.IsCode(err, clubsdk.CodeCapacityExceeded) {
		// event is full
	}
*/
package clubsdk
