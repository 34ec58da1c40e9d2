package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/model"
	"gorm.io/gorm"
)

// ErrMalformedQuestionData marks a stored question payload that no longer
// decodes into a known variant. Fatal for the read that hit it.
var ErrMalformedQuestionData = errors.New("malformed question data")

type QuizRepository struct {
	BaseRepository

	translations *TranslationRepository
}

func NewQuizRepository(db *gorm.DB, translations *TranslationRepository) *QuizRepository {
	return &QuizRepository{
		BaseRepository: NewBaseRepository(db),
		translations:   translations,
	}
}

type QuizQuestionInput struct {
	Text string
	Data model.QuestionData
}

// CreateQuiz persists the whole aggregate in one transaction: title
// translation, quiz row, then one translation plus one question row per
// question. A failure at any step rolls everything back; the quiz row is
// in place before any question references it.
func (ds *QuizRepository) CreateQuiz(createdBy, title, languageCode string, questions []QuizQuestionInput) (string, error) {
	quizID := uuid.New().String()

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		titleID, err := ds.translations.Insert(tx, title, languageCode)
		if err != nil {
			return err
		}

		quiz := &model.Quiz{
			ID:        quizID,
			TitleID:   titleID,
			CreatedBy: createdBy,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}

		for i, q := range questions {
			data, err := model.EncodeQuestionData(q.Data)
			if err != nil {
				return err
			}

			questionID, err := ds.translations.Insert(tx, q.Text, languageCode)
			if err != nil {
				return err
			}

			question := &model.Question{
				ID:         uuid.New().String(),
				QuizID:     quizID,
				QuestionID: questionID,
				Data:       data,
				Position:   i,
			}
			if err := tx.Create(question).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return quizID, nil
}

type quizRow struct {
	ID        string
	Title     string
	CreatedBy string
	CreatedAt time.Time
}

type questionRow struct {
	ID       string
	QuizID   string
	Question string
	Data     string
}

// GetQuiz reassembles the aggregate: quiz row joined with its title
// translation, questions joined with their text translations in stored
// order, payloads decoded back into tagged variants.
func (ds *QuizRepository) GetQuiz(quizID string) (*dto.QuizResponse, error) {
	var quiz quizRow
	err := ds.db.Table("quizzes").
		Select("quizzes.id, translations.content AS title, quizzes.created_by, quizzes.created_at").
		Joins("INNER JOIN translations ON translations.id = quizzes.title_id").
		Where("quizzes.id = ?", quizID).
		Take(&quiz).Error
	if err != nil {
		return nil, err
	}

	var rows []questionRow
	err = ds.db.Table("questions").
		Select("questions.id, questions.quiz_id, translations.content AS question, questions.data").
		Joins("INNER JOIN translations ON translations.id = questions.question_id").
		Where("questions.quiz_id = ?", quizID).
		Order("questions.position").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	questions := make([]dto.QuizQuestionResponse, 0, len(rows))
	for _, row := range rows {
		data, err := model.DecodeQuestionData(row.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", ErrMalformedQuestionData, row.ID, err)
		}
		questions = append(questions, dto.QuizQuestionResponse{
			ID:       row.ID,
			QuizID:   row.QuizID,
			Question: row.Question,
			Data:     data,
		})
	}

	return &dto.QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		CreatedBy: quiz.CreatedBy,
		CreatedAt: quiz.CreatedAt,
		Questions: questions,
	}, nil
}
