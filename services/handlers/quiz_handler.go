package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/shared"
)

type QuizHandler struct {
	quizSvc QuizServiceInterface
}

func NewQuizHandler(quizSvc QuizServiceInterface) *QuizHandler {
	return &QuizHandler{
		quizSvc: quizSvc,
	}
}

// @Summary Create a quiz
// @Description Create a quiz with its questions in one atomic write
// @Tags quiz
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param quizRequest body dto.CreateQuizRequest true "Quiz with questions"
// @Success 201 {object} shared.Response{data=dto.CreateQuizResponse}
// @Router /api/v1/quiz [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.quizSvc.CreateQuiz(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Quiz created successfully", resp)
}

// @Summary Get a quiz
// @Description Return the quiz with its questions in authored order
// @Tags quiz
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Quiz ID"
// @Param lang query string false "Language code"
// @Success 200 {object} shared.Response{data=dto.QuizResponse}
// @Router /api/v1/quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")

	resp, err := h.quizSvc.GetQuiz(quizID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
