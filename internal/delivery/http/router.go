package http

import (
	"log/slog"
	"net/http"

	"conferenceagenda/internal/delivery/http/controllers"
	"conferenceagenda/internal/delivery/http/middleware"
	"conferenceagenda/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// Schedule reads are public; everything tied to a user requires a bearer token, and
// schedule imports also need the organizer or admin role.
func NewRouter(
	scheduleController *controllers.ScheduleController,
	attendeeController *controllers.AttendeeController,
	messagingController *controllers.MessagingController,
	networkingController *controllers.NetworkingController,
	speakerController *controllers.SpeakerController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	organizer := middleware.RequireRole(logger, domain.RoleOrganizer, domain.RoleAdmin)

	// Schedule
	mux.HandleFunc("GET /sessions", scheduleController.ListSessions)
	mux.HandleFunc("GET /sessions/{sessionID}", scheduleController.GetSession)
	mux.HandleFunc("GET /days", scheduleController.ListDays)
	mux.HandleFunc("GET /tracks", scheduleController.ListTracks)
	mux.HandleFunc("GET /speakers/{name}/sessions", scheduleController.ListSessionsBySpeaker)
	mux.HandleFunc("GET /sessions/stream", auth(scheduleController.StreamSessions))
	mux.HandleFunc("POST /sessions/import", auth(organizer(scheduleController.ImportSessions)))

	// Attendee agenda
	mux.HandleFunc("GET /me/sessions", auth(attendeeController.ListRegisteredIDs))
	mux.HandleFunc("POST /me/sessions/{sessionID}", auth(attendeeController.Register))
	mux.HandleFunc("DELETE /me/sessions/{sessionID}", auth(attendeeController.Unregister))
	mux.HandleFunc("GET /me/sessions/{sessionID}/conflicts", auth(attendeeController.CheckConflicts))
	mux.HandleFunc("POST /me/sessions/{sessionID}/replace", auth(attendeeController.ReplaceConflicts))
	mux.HandleFunc("GET /me/agenda", auth(attendeeController.ListMyAgenda))
	mux.HandleFunc("GET /me/agenda.ics", auth(attendeeController.ExportMyAgenda))

	// Messaging
	mux.HandleFunc("GET /me/threads", auth(messagingController.ListThreads))
	mux.HandleFunc("POST /threads", auth(messagingController.OpenThread))
	mux.HandleFunc("GET /threads/{threadKey}/messages", auth(messagingController.ListMessages))
	mux.HandleFunc("POST /threads/{threadKey}/messages", auth(messagingController.SendMessage))

	// Networking
	mux.HandleFunc("GET /me/profile", auth(networkingController.GetMyProfile))
	mux.HandleFunc("PUT /me/profile", auth(networkingController.UpdateMyProfile))
	mux.HandleFunc("GET /participants", auth(networkingController.ListParticipants))
	mux.HandleFunc("GET /participants/{userID}", auth(networkingController.GetParticipant))
	mux.HandleFunc("POST /connections", auth(networkingController.RequestConnection))
	mux.HandleFunc("POST /connections/{userID}/accept", auth(networkingController.AcceptConnection))
	mux.HandleFunc("GET /me/connections", auth(networkingController.ListConnections))
	mux.HandleFunc("GET /me/connections/pending", auth(networkingController.ListPendingRequests))

	// Speakers
	mux.HandleFunc("GET /speakers", speakerController.ListSpeakers)
	mux.HandleFunc("POST /speakers/{speakerID}/votes", auth(speakerController.Vote))
	mux.HandleFunc("DELETE /speakers/{speakerID}/votes", auth(speakerController.Unvote))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
