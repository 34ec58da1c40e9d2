package services

import (
	"errors"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type QuizService struct {
	context.DefaultService

	sqlSvc *PostgresService

	quizRepo *repositories.QuizRepository
}

const QUIZ_SVC = "quiz_svc"

func (svc QuizService) Id() string {
	return QUIZ_SVC
}

func (svc *QuizService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *QuizService) Start() error {
	db := svc.sqlSvc.Db()
	svc.quizRepo = repositories.NewQuizRepository(db, repositories.NewTranslationRepository(db))
	return nil
}

func (svc *QuizService) CreateQuiz(userID string, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	questions := make([]repositories.QuizQuestionInput, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, repositories.QuizQuestionInput{
			Text: q.Question,
			Data: q.Data,
		})
	}

	quizID, err := svc.quizRepo.CreateQuiz(userID, req.Title, req.LanguageCode, questions)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, shared.NewBadRequestError(err, "Creator does not exist")
		}
		log.WithError(err).WithField(shared.UserID, userID).Error("Failed to create quiz")
		return nil, shared.FromDBError(err, "Failed to create quiz")
	}

	return &dto.CreateQuizResponse{QuizID: quizID}, nil
}

// GetQuiz returns the full aggregate. The language code query parameter is
// accepted by the route but not yet wired to translation filtering.
func (svc *QuizService) GetQuiz(quizID string) (*dto.QuizResponse, error) {
	quiz, err := svc.quizRepo.GetQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Quiz not found")
		}
		if errors.Is(err, repositories.ErrMalformedQuestionData) {
			log.WithError(err).WithField("quiz_id", quizID).Error("Quiz has malformed question data")
			return nil, shared.NewInternalError(err, "Failed to get quiz")
		}
		log.WithError(err).WithField("quiz_id", quizID).Error("Failed to get quiz")
		return nil, shared.NewInternalError(err, "Failed to get quiz")
	}

	return quiz, nil
}
