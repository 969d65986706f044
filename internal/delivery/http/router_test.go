package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"conferenceagenda/internal/delivery/http/controllers"
	"conferenceagenda/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*domain.Principal, error) {
	switch token {
	case "good":
		return &domain.Principal{UserID: "u1", Roles: []string{domain.RoleAttendee}}, nil
	case "organizer":
		return &domain.Principal{UserID: "o1", Roles: []string{domain.RoleOrganizer}}, nil
	}
	return nil, errors.New("invalid token")
}

// stubScheduleService answers only the calls the routing test makes.
type stubScheduleService struct {
	domain.ScheduleService
}

func (stubScheduleService) ListDays(ctx context.Context) ([]string, error) {
	return []string{"2026-01-24"}, nil
}

func (stubScheduleService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return nil, domain.ErrNotFound
}

type stubAttendeeService struct {
	domain.AttendeeService
}

func (stubAttendeeService) ListRegisteredIDs(ctx context.Context, userID string) ([]string, error) {
	return []string{"s1"}, nil
}

type stubSpeakerService struct {
	domain.SpeakerService
}

func (stubSpeakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	return []*domain.Speaker{}, nil
}

func newTestRouter() *http.ServeMux {
	return NewRouter(
		controllers.NewScheduleController(testLogger, stubScheduleService{}, nil),
		controllers.NewAttendeeController(testLogger, stubAttendeeService{}, nil, ""),
		controllers.NewMessagingController(testLogger, nil),
		controllers.NewNetworkingController(testLogger, nil),
		controllers.NewSpeakerController(testLogger, stubSpeakerService{}),
		stubVerifier{},
		testLogger,
	)
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"public days", http.MethodGet, "/days", "", http.StatusOK},
		{"public session lookup", http.MethodGet, "/sessions/nope", "", http.StatusNotFound},
		{"stream requires auth", http.MethodGet, "/sessions/stream", "", http.StatusUnauthorized},
		{"import requires auth", http.MethodPost, "/sessions/import", "", http.StatusUnauthorized},
		{"import forbidden for attendees", http.MethodPost, "/sessions/import", "good", http.StatusForbidden},
		{"import open to organizers", http.MethodPost, "/sessions/import", "organizer", http.StatusBadRequest},
		{"agenda requires auth", http.MethodGet, "/me/agenda", "", http.StatusUnauthorized},
		{"agenda export requires auth", http.MethodGet, "/me/agenda.ics", "", http.StatusUnauthorized},
		{"register requires auth", http.MethodPost, "/me/sessions/s1", "", http.StatusUnauthorized},
		{"replace requires auth", http.MethodPost, "/me/sessions/s1/replace", "", http.StatusUnauthorized},
		{"threads require auth", http.MethodGet, "/me/threads", "", http.StatusUnauthorized},
		{"messages require auth", http.MethodPost, "/threads/a_b/messages", "", http.StatusUnauthorized},
		{"public speakers", http.MethodGet, "/speakers", "", http.StatusOK},
		{"vote requires auth", http.MethodPost, "/speakers/ada/votes", "", http.StatusUnauthorized},
		{"unvote requires auth", http.MethodDelete, "/speakers/ada/votes", "", http.StatusUnauthorized},
		{"profile requires auth", http.MethodPut, "/me/profile", "", http.StatusUnauthorized},
		{"directory requires auth", http.MethodGet, "/participants", "", http.StatusUnauthorized},
		{"connect requires auth", http.MethodPost, "/connections", "", http.StatusUnauthorized},
		{"accept requires auth", http.MethodPost, "/connections/bob/accept", "", http.StatusUnauthorized},
		{"pending requires auth", http.MethodGet, "/me/connections/pending", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/me/sessions", "bad", http.StatusUnauthorized},
		{"authorized", http.MethodGet, "/me/sessions", "good", http.StatusOK},
		{"wrong method", http.MethodPut, "/me/sessions/s1", "good", http.StatusMethodNotAllowed},
	}
	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
