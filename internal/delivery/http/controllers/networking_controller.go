package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/delivery/http/middleware"
	"conferenceagenda/internal/domain"
)

type NetworkingController struct {
	Logger  *slog.Logger
	Service domain.NetworkingService
}

func NewNetworkingController(logger *slog.Logger, svc domain.NetworkingService) *NetworkingController {
	return &NetworkingController{
		Logger:  logger,
		Service: svc,
	}
}

// currentUser reads the authenticated user, writing a 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	}
	return userID, ok
}

// ProfileRequest is the request body for PUT /me/profile.
type ProfileRequest struct {
	DisplayName string   `json:"display_name"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Bio         string   `json:"bio"`
	Interests   []string `json:"interests"`
	Intents     []string `json:"intents"`
	Available   bool     `json:"available"`
}

// Validate implements Validator. Field limits are checked by the service.
func (req ProfileRequest) Validate() []string {
	if strings.TrimSpace(req.DisplayName) == "" {
		return []string{"display_name is required"}
	}
	return nil
}

// ProfileSuccessResponse is the success response envelope for profile reads and writes (200).
type ProfileSuccessResponse struct {
	Data  *domain.Profile   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListParticipantsResponse is one page of the participant directory.
type ListParticipantsResponse struct {
	Items      []*domain.Profile      `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListParticipantsSuccessResponse is the success response envelope for GET /participants (200).
type ListParticipantsSuccessResponse struct {
	Data  ListParticipantsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ConnectionSuccessResponse is the success response envelope for connection writes (200).
type ConnectionSuccessResponse struct {
	Data  *domain.Connection `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListConnectionsSuccessResponse is the success response envelope for connection lists (200).
type ListConnectionsSuccessResponse struct {
	Data  []*domain.Connection `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// GetMyProfile godoc
// @Summary Get my profile
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/profile [get]
func (c *NetworkingController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	profile, err := c.Service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary Create or replace my profile
// @Description Tags are lower-cased and de-duplicated. A phone number needs at least 10 digits.
// @Tags networking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProfileRequest true "Profile"
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/profile [put]
func (c *NetworkingController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req ProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	profile, err := c.Service.UpdateProfile(r.Context(), userID, &domain.Profile{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Company:     req.Company,
		Bio:         req.Bio,
		Interests:   req.Interests,
		Intents:     req.Intents,
		Available:   req.Available,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// ListParticipants godoc
// @Summary Browse the participant directory
// @Description Other participants, ordered by display name. search matches name, company or bio.
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free text"
// @Param interest query string false "Interest tag"
// @Param intent query string false "Intent tag"
// @Param available query bool false "Only participants open to meet"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100, 0 for all)"
// @Success 200 {object} controllers.ListParticipantsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants [get]
func (c *NetworkingController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	params, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := domain.ParticipantFilter{
		Search:   q.Get("search"),
		Interest: q.Get("interest"),
		Intent:   q.Get("intent"),
	}
	if s := q.Get("available"); s != "" {
		available, err := strconv.ParseBool(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "available must be true or false")
			return
		}
		filter.AvailableOnly = available
	}
	profiles, total, err := c.Service.ListParticipants(r.Context(), userID, filter, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListParticipantsResponse{
		Items:      profiles,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetParticipant godoc
// @Summary Get a participant's profile
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.ProfileSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /participants/{userID} [get]
func (c *NetworkingController) GetParticipant(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	profile, err := c.Service.GetProfile(r.Context(), r.PathValue("userID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// ConnectionRequest is the request body for POST /connections.
type ConnectionRequest struct {
	UserID string `json:"user_id"`
}

// Validate implements Validator.
func (req ConnectionRequest) Validate() []string {
	if strings.TrimSpace(req.UserID) == "" {
		return []string{"user_id is required"}
	}
	return nil
}

// RequestConnection godoc
// @Summary Ask a participant to connect
// @Description Repeating a request returns the existing one. If user_id already asked the caller, the request is accepted instead.
// @Tags networking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ConnectionRequest true "Participant to connect with"
// @Success 200 {object} controllers.ConnectionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /connections [post]
func (c *NetworkingController) RequestConnection(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req ConnectionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conn, err := c.Service.RequestConnection(r.Context(), userID, req.UserID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conn)
}

// AcceptConnection godoc
// @Summary Accept a connection request
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User who sent the request"
// @Success 200 {object} controllers.ConnectionSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /connections/{userID}/accept [post]
func (c *NetworkingController) AcceptConnection(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	conn, err := c.Service.AcceptConnection(r.Context(), userID, r.PathValue("userID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conn)
}

// ListConnections godoc
// @Summary List my accepted connections
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConnectionsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/connections [get]
func (c *NetworkingController) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	conns, err := c.Service.ListConnections(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conns)
}

// ListPendingRequests godoc
// @Summary List connection requests waiting for me
// @Tags networking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListConnectionsSuccessResponse "oldest first"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/connections/pending [get]
func (c *NetworkingController) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	conns, err := c.Service.ListPendingRequests(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conns)
}
