package controllers

import (
	"log/slog"
	"net/http"

	"conferenceagenda/internal/delivery/http/helpers"
	"conferenceagenda/internal/domain"
)

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSpeakersSuccessResponse is the success response envelope for GET /speakers (200).
type ListSpeakersSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VoteSuccessResponse is the success response envelope for POST /speakers/{speakerID}/votes (201).
type VoteSuccessResponse struct {
	Data  *domain.Vote      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UnvoteResponse confirms a withdrawn vote.
type UnvoteResponse struct {
	SpeakerID string `json:"speaker_id"`
	Voted     bool   `json:"voted"`
}

// UnvoteSuccessResponse is the success response envelope for DELETE /speakers/{speakerID}/votes (200).
type UnvoteSuccessResponse struct {
	Data  UnvoteResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Everyone named on a session, by name, with their sessions and vote totals.
// @Tags speakers
// @Produce json
// @Success 200 {object} controllers.ListSpeakersSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// Vote godoc
// @Summary Vote for a speaker
// @Description One vote per user and speaker.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param speakerID path string true "Speaker ID"
// @Success 201 {object} controllers.VoteSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID}/votes [post]
func (c *SpeakerController) Vote(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	vote, err := c.Service.Vote(r.Context(), userID, r.PathValue("speakerID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, vote)
}

// Unvote godoc
// @Summary Withdraw my vote for a speaker
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param speakerID path string true "Speaker ID"
// @Success 200 {object} controllers.UnvoteSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID}/votes [delete]
func (c *SpeakerController) Unvote(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	speakerID := r.PathValue("speakerID")
	if err := c.Service.Unvote(r.Context(), userID, speakerID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UnvoteResponse{SpeakerID: speakerID, Voted: false})
}
