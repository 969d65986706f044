package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/delivery/http/middleware"
	"conferenceagenda/internal/domain"
)

type MessagingController struct {
	Logger  *slog.Logger
	Service domain.MessagingService
}

func NewMessagingController(logger *slog.Logger, svc domain.MessagingService) *MessagingController {
	return &MessagingController{
		Logger:  logger,
		Service: svc,
	}
}

// OpenThreadRequest is the request body for POST /threads.
type OpenThreadRequest struct {
	UserID string `json:"user_id"`
}

// Validate implements Validator.
func (req OpenThreadRequest) Validate() []string {
	if strings.TrimSpace(req.UserID) == "" {
		return []string{"user_id is required"}
	}
	return nil
}

// ThreadSuccessResponse is the success response envelope for POST /threads (200).
type ThreadSuccessResponse struct {
	Data  *domain.Thread    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListThreadsSuccessResponse is the success response envelope for GET /me/threads (200).
type ListThreadsSuccessResponse struct {
	Data  []*domain.Thread  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// OpenThread godoc
// @Summary Open a conversation
// @Description Returns the direct-message thread between the current user and user_id, creating it if needed. The thread key is the same whichever side opens it.
// @Tags messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OpenThreadRequest true "Other participant"
// @Success 200 {object} controllers.ThreadSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /threads [post]
func (c *MessagingController) OpenThread(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req OpenThreadRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	thread, err := c.Service.OpenThread(r.Context(), userID, req.UserID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, thread)
}

// ListThreads godoc
// @Summary List my conversations
// @Tags messaging
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListThreadsSuccessResponse "most recent activity first"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/threads [get]
func (c *MessagingController) ListThreads(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	threads, err := c.Service.ListThreads(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, threads)
}

// SendMessageRequest is the request body for POST /threads/{threadKey}/messages.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// Validate implements Validator. Length is checked by the service.
func (req SendMessageRequest) Validate() []string {
	if strings.TrimSpace(req.Text) == "" {
		return []string{"text is required"}
	}
	return nil
}

// MessageSuccessResponse is the success response envelope for POST /threads/{threadKey}/messages (201).
type MessageSuccessResponse struct {
	Data  *domain.Message   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SendMessage godoc
// @Summary Send a message
// @Tags messaging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadKey path string true "Thread key"
// @Param body body SendMessageRequest true "Message text (max 2000 characters)"
// @Success 201 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /threads/{threadKey}/messages [post]
func (c *MessagingController) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	threadKey := r.PathValue("threadKey")
	if threadKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing threadKey")
		return
	}
	var req SendMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg, err := c.Service.SendMessage(r.Context(), threadKey, userID, req.Text)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// ListMessagesResponse is the data payload for GET /threads/{threadKey}/messages (200).
type ListMessagesResponse struct {
	Items      []*domain.Message      `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListMessagesSuccessResponse is the success response envelope for GET /threads/{threadKey}/messages (200).
type ListMessagesSuccessResponse struct {
	Data  ListMessagesResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListMessages godoc
// @Summary List messages in a conversation
// @Description Oldest first. Only participants can read a thread.
// @Tags messaging
// @Produce json
// @Security BearerAuth
// @Param threadKey path string true "Thread key"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100, 0 for all)"
// @Success 200 {object} controllers.ListMessagesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /threads/{threadKey}/messages [get]
func (c *MessagingController) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	threadKey := r.PathValue("threadKey")
	if threadKey == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing threadKey")
		return
	}
	params, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	msgs, total, err := c.Service.ListMessages(r.Context(), threadKey, userID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListMessagesResponse{
		Items:      msgs,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
