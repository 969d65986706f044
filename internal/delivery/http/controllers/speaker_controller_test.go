package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conferenceagenda/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpeakerService implements domain.SpeakerService for handler tests.
type fakeSpeakerService struct {
	speakers    []*domain.Speaker
	err         error
	lastUserID  string
	lastSpeaker string
}

func (f *fakeSpeakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	return f.speakers, f.err
}

func (f *fakeSpeakerService) Vote(ctx context.Context, userID, speakerID string) (*domain.Vote, error) {
	f.lastUserID, f.lastSpeaker = userID, speakerID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Vote{UserID: userID, SpeakerID: speakerID, CreatedAt: time.Now()}, nil
}

func (f *fakeSpeakerService) Unvote(ctx context.Context, userID, speakerID string) error {
	f.lastUserID, f.lastSpeaker = userID, speakerID
	return f.err
}

func TestSpeakerController_ListSpeakers(t *testing.T) {
	svc := &fakeSpeakerService{speakers: []*domain.Speaker{{ID: "ada-lovelace", Name: "Ada Lovelace", SessionIDs: []string{"keynote"}, VoteCount: 4}}}
	c := NewSpeakerController(testLogger, svc)

	w := httptest.NewRecorder()
	c.ListSpeakers(w, httptest.NewRequest(http.MethodGet, "/speakers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp ListSpeakersSuccessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 4, resp.Data[0].VoteCount)

	svc.err = errors.New("db down")
	w = httptest.NewRecorder()
	c.ListSpeakers(w, httptest.NewRequest(http.MethodGet, "/speakers", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSpeakerController_Vote(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		svcErr     error
		wantStatus int
	}{
		{"first vote", "u1", nil, http.StatusCreated},
		{"duplicate vote", "u1", fmt.Errorf("%w: already voted", domain.ErrConflict), http.StatusConflict},
		{"unknown speaker", "u1", fmt.Errorf("%w: speaker", domain.ErrNotFound), http.StatusNotFound},
		{"unauthenticated", "", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSpeakerService{err: tt.svcErr}
			c := NewSpeakerController(testLogger, svc)
			req := authedRequest(http.MethodPost, "/speakers/ada-lovelace/votes", "", tt.userID)
			req.SetPathValue("speakerID", "ada-lovelace")
			w := httptest.NewRecorder()
			c.Vote(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp VoteSuccessResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "u1", resp.Data.UserID)
				assert.Equal(t, "ada-lovelace", resp.Data.SpeakerID)
			}
		})
	}
}

func TestSpeakerController_Unvote(t *testing.T) {
	svc := &fakeSpeakerService{}
	c := NewSpeakerController(testLogger, svc)
	req := authedRequest(http.MethodDelete, "/speakers/ada-lovelace/votes", "", "u1")
	req.SetPathValue("speakerID", "ada-lovelace")
	w := httptest.NewRecorder()
	c.Unvote(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp UnvoteSuccessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, UnvoteResponse{SpeakerID: "ada-lovelace", Voted: false}, resp.Data)
	assert.Equal(t, "u1", svc.lastUserID)

	svc.err = fmt.Errorf("%w: no vote", domain.ErrNotFound)
	w = httptest.NewRecorder()
	c.Unvote(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
