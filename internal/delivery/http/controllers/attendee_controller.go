package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/delivery/http/middleware"
	"conferenceagenda/internal/domain"
)

// DefaultCalendarName names exported agendas when none is configured.
const DefaultCalendarName = "My agenda"

type AttendeeController struct {
	Logger       *slog.Logger
	Service      domain.AttendeeService
	Exporter     domain.CalendarExporter
	CalendarName string
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService, exporter domain.CalendarExporter, calendarName string) *AttendeeController {
	if calendarName == "" {
		calendarName = DefaultCalendarName
	}
	return &AttendeeController{
		Logger:       logger,
		Service:      svc,
		Exporter:     exporter,
		CalendarName: calendarName,
	}
}

// userAndSession reads the authenticated user and the sessionID path value, writing the
// error response itself when either is missing.
func userAndSession(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", "", false
	}
	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return "", "", false
	}
	return userID, sessionID, true
}

// RegisteredIDsSuccessResponse is the success response envelope for GET /me/sessions (200).
type RegisteredIDsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRegisteredIDs godoc
// @Summary List my registered session ids
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RegisteredIDsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/sessions [get]
func (c *AttendeeController) ListRegisteredIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	ids, err := c.Service.ListRegisteredIDs(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// Register godoc
// @Summary Register for a session
// @Description Adds the session to the current user's agenda. Idempotent. Overlapping sessions are kept; check GET /me/sessions/{sessionID}/conflicts first and use the replace endpoint to swap them out.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.RegisteredIDsSuccessResponse "data contains the registered session ids"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/sessions/{sessionID} [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := userAndSession(w, r)
	if !ok {
		return
	}
	if err := c.Service.Register(r.Context(), userID, sessionID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	c.writeRegisteredIDs(w, r, userID)
}

// Unregister godoc
// @Summary Unregister from a session
// @Description Removes the session from the current user's agenda. Removing a session that is not registered is a no-op.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.RegisteredIDsSuccessResponse "data contains the registered session ids"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/sessions/{sessionID} [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := userAndSession(w, r)
	if !ok {
		return
	}
	if err := c.Service.Unregister(r.Context(), userID, sessionID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	c.writeRegisteredIDs(w, r, userID)
}

func (c *AttendeeController) writeRegisteredIDs(w http.ResponseWriter, r *http.Request, userID string) {
	ids, err := c.Service.ListRegisteredIDs(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// ConflictCheckSuccessResponse is the success response envelope for GET /me/sessions/{sessionID}/conflicts (200).
type ConflictCheckSuccessResponse struct {
	Data  *domain.ConflictCheck `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// CheckConflicts godoc
// @Summary Check a session against my agenda
// @Description Returns the registered sessions that overlap the given session on the same day.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.ConflictCheckSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/sessions/{sessionID}/conflicts [get]
func (c *AttendeeController) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := userAndSession(w, r)
	if !ok {
		return
	}
	check, err := c.Service.CheckConflicts(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, check)
}

// ReplaceConflictsRequest is the request body for POST /me/sessions/{sessionID}/replace.
type ReplaceConflictsRequest struct {
	ConfirmedIDs []string `json:"confirmed_ids"`
}

// ReplaceConflictsResponse is the data payload for POST /me/sessions/{sessionID}/replace (200).
type ReplaceConflictsResponse struct {
	Removed    []*domain.Session `json:"removed"`
	Registered []string          `json:"registered"`
}

// ReplaceConflictsSuccessResponse is the success response envelope for POST /me/sessions/{sessionID}/replace (200).
type ReplaceConflictsSuccessResponse struct {
	Data  ReplaceConflictsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ReplaceConflicts godoc
// @Summary Replace conflicting sessions
// @Description Unregisters the confirmed conflicting sessions, then registers the given session. If any current conflict is missing from confirmed_ids nothing changes and 409 is returned.
// @Tags attendee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Param body body ReplaceConflictsRequest true "Conflicting session ids the user agreed to drop"
// @Success 200 {object} controllers.ReplaceConflictsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/sessions/{sessionID}/replace [post]
func (c *AttendeeController) ReplaceConflicts(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := userAndSession(w, r)
	if !ok {
		return
	}
	var req ReplaceConflictsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	removed, err := c.Service.ReplaceConflicts(r.Context(), userID, sessionID, req.ConfirmedIDs)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	ids, err := c.Service.ListRegisteredIDs(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ReplaceConflictsResponse{Removed: removed, Registered: ids})
}

// ListMyAgenda godoc
// @Summary List my agenda
// @Description Returns the current user's registered sessions sorted by date and start time.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSessionsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/agenda [get]
func (c *AttendeeController) ListMyAgenda(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListMyAgenda(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ExportMyAgenda godoc
// @Summary Export my agenda as iCalendar
// @Tags attendee
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string "iCalendar document"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/agenda.ics [get]
func (c *AttendeeController) ExportMyAgenda(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListMyAgenda(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	body, err := c.Exporter.Export(c.CalendarName, sessions)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not export agenda")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
