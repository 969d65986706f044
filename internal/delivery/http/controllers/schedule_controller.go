package controllers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/domain"
)

// streamHeartbeat keeps idle event streams open through proxies.
const streamHeartbeat = 25 * time.Second

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
	Feed    domain.SessionFeed
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, feed domain.SessionFeed) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
		Feed:    feed,
	}
}

// ListSessionsSuccessResponse is the success response envelope for session lists (200).
type ListSessionsSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetSessionSuccessResponse is the success response envelope for GET /sessions/{sessionID} (200).
type GetSessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListStringsSuccessResponse is the success response envelope for GET /days and GET /tracks (200).
type ListStringsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessions godoc
// @Summary List sessions
// @Description Returns the conference sessions, optionally filtered by day and track. Sorted by date and start time unless sort=track.
// @Tags schedule
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param track query string false "Track name (case-insensitive)"
// @Param sort query string false "time (default) or track"
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *ScheduleController) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SessionFilter{
		Date:   strings.TrimSpace(q.Get("date")),
		Track:  q.Get("track"),
		SortBy: strings.TrimSpace(q.Get("sort")),
	}
	sessions, err := c.Service.ListSessions(r.Context(), filter)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get a session
// @Tags schedule
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.GetSessionSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [get]
func (c *ScheduleController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	session, err := c.Service.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// ListDays godoc
// @Summary List conference days
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.ListStringsSuccessResponse "data contains YYYY-MM-DD dates in ascending order"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /days [get]
func (c *ScheduleController) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := c.Service.ListDays(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// ListTracks godoc
// @Summary List tracks
// @Tags schedule
// @Produce json
// @Success 200 {object} controllers.ListStringsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tracks [get]
func (c *ScheduleController) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := c.Service.ListTracks(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tracks)
}

// ListSessionsBySpeaker godoc
// @Summary List a speaker's sessions
// @Description Speaker names are matched ignoring case and surrounding spaces.
// @Tags schedule
// @Produce json
// @Param name path string true "Speaker name"
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{name}/sessions [get]
func (c *ScheduleController) ListSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessionsBySpeaker(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ImportSessionsRequest is the request body for POST /sessions/import.
type ImportSessionsRequest struct {
	Sessions []*domain.Session `json:"sessions"`
}

// Validate implements Validator.
func (req ImportSessionsRequest) Validate() []string {
	if len(req.Sessions) == 0 {
		return []string{"sessions must not be empty"}
	}
	return nil
}

// ImportSessionsResponse is the data payload for POST /sessions/import (200).
type ImportSessionsResponse struct {
	Imported int `json:"imported"`
}

// ImportSessionsSuccessResponse is the success response envelope for POST /sessions/import (200).
type ImportSessionsSuccessResponse struct {
	Data  ImportSessionsResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ImportSessions godoc
// @Summary Import sessions
// @Description Creates or replaces sessions. Sessions without an id get one derived from title, date, start time and location. The batch is validated as a whole; nothing is written if any record is invalid. Requires the organizer or admin role.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ImportSessionsRequest true "Sessions to import"
// @Success 200 {object} controllers.ImportSessionsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/import [post]
func (c *ScheduleController) ImportSessions(w http.ResponseWriter, r *http.Request) {
	var req ImportSessionsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ImportSessions(r.Context(), req.Sessions); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportSessionsResponse{Imported: len(req.Sessions)})
}

// StreamSessions godoc
// @Summary Stream schedule updates
// @Description Server-sent events. Each "sessions" event carries the full session list as JSON; the first is sent on connect and later ones only when the schedule changes. Browsers may pass the token as the access_token query parameter.
// @Tags schedule
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/stream [get]
func (c *ScheduleController) StreamSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snapshots := make(chan []*domain.Session, 1)
	// Keep only the newest snapshot; a slow client skips intermediate ones.
	push := func(sessions []*domain.Session) {
		for {
			select {
			case snapshots <- sessions:
				return
			default:
				select {
				case <-snapshots:
				default:
				}
			}
		}
	}

	sub, err := c.Feed.Subscribe(ctx, push)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	defer sub.Close()

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case sessions := <-snapshots:
			payload, err := json.Marshal(sessions)
			if err != nil {
				c.Logger.ErrorContext(ctx, "encode session snapshot", "err", err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: sessions\ndata: %s\n\n", payload); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			c.Logger.DebugContext(ctx, "stream flush failed", "err", err)
			return
		}
	}
}
