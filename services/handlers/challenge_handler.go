package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/shared"
)

type ChallengeHandler struct {
	challengeSvc ChallengeServiceInterface
}

func NewChallengeHandler(challengeSvc ChallengeServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{
		challengeSvc: challengeSvc,
	}
}

// @Summary Create a challenge
// @Description Create a challenge with a translated description
// @Tags challenge
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param challengeRequest body dto.CreateChallengeRequest true "Challenge details"
// @Success 201 {object} shared.Response{data=dto.CreateChallengeResponse}
// @Router /api/v1/challenge [post]
func (h *ChallengeHandler) CreateChallenge(c *fiber.Ctx) error {
	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.challengeSvc.CreateChallenge(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Challenge created successfully", resp)
}

// @Summary Get a challenge
// @Description Return one challenge with its description
// @Tags challenge
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeResponse}
// @Router /api/v1/challenge/{id} [get]
func (h *ChallengeHandler) GetChallenge(c *fiber.Ctx) error {
	challengeID := c.Params("id")

	resp, err := h.challengeSvc.GetChallenge(challengeID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List challenges
// @Description Return all challenges, oldest first
// @Tags challenge
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.ChallengeResponse}
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) GetChallenges(c *fiber.Ctx) error {
	resp, err := h.challengeSvc.GetChallenges()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get own progress
// @Description Return the authenticated user's progress rows, optionally scoped to one challenge
// @Tags challenge
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param challenge_id query string false "Challenge ID"
// @Success 200 {object} shared.Response{data=[]dto.UserChallengeResponse}
// @Router /api/v1/challenges/self [get]
func (h *ChallengeHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	challengeID := c.Query("challenge_id")

	resp, err := h.challengeSvc.GetProgress(userID, challengeID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Add progress
// @Description Add to the authenticated user's progress on a challenge; contributions accumulate
// @Tags challenge
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Challenge ID"
// @Param progressRequest body dto.AddProgressRequest true "Progress to add"
// @Success 200 {object} shared.Response{data=dto.UserChallengeResponse}
// @Router /api/v1/challenge/{id}/progress [post]
func (h *ChallengeHandler) AddProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	challengeID := c.Params("id")

	var req dto.AddProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.challengeSvc.AddProgress(userID, challengeID, *req.Progress)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Progress added successfully", resp)
}

// @Summary Delete progress
// @Description Remove the authenticated user's progress row for a challenge and return it
// @Tags challenge
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.UserChallengeResponse}
// @Router /api/v1/challenge/{id}/progress [delete]
func (h *ChallengeHandler) DeleteProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	challengeID := c.Params("id")

	resp, err := h.challengeSvc.DeleteProgress(userID, challengeID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Progress deleted successfully", resp)
}
