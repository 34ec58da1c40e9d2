package dto

import (
	"fmt"
	"time"

	"github.com/letsscience/quiz_api/model"
)

// ==================== QUIZ REQUEST DTOs ====================

type CreateQuizRequest struct {
	Title        string              `json:"title" validate:"required"`
	LanguageCode string              `json:"language_code,omitempty" validate:"omitempty,max=8"`
	Questions    []CreateQuizQuestion `json:"questions" validate:"dive"`
}

type CreateQuizQuestion struct {
	Question string             `json:"question" validate:"required"`
	Data     model.QuestionData `json:"data"`
}

func (r CreateQuizRequest) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return err
	}

	for i, q := range r.Questions {
		if err := validateQuestionData(q.Data); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}

	return nil
}

func validateQuestionData(d model.QuestionData) error {
	switch d.Type {
	case model.QuestionTypeMultipleChoice:
		if d.MultipleChoice == nil || len(d.MultipleChoice.Answers) == 0 {
			return fmt.Errorf("multiple choice question needs answers")
		}
		if d.MultipleChoice.CorrectAnswer < 0 || d.MultipleChoice.CorrectAnswer >= len(d.MultipleChoice.Answers) {
			return fmt.Errorf("correct_answer out of range")
		}
	case model.QuestionTypeNumeric:
		if d.Numeric == nil {
			return fmt.Errorf("numeric question needs a range")
		}
		if d.Numeric.RangeStart > d.Numeric.RangeEnd {
			return fmt.Errorf("range_start must not exceed range_end")
		}
	case model.QuestionTypeTrueOrFalse:
		if d.TrueOrFalse == nil {
			return fmt.Errorf("true or false question needs a correct_answer")
		}
	default:
		return fmt.Errorf("unknown question type %q", d.Type)
	}

	return nil
}

// ==================== QUIZ RESPONSE DTOs ====================

type QuizResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	CreatedBy string                 `json:"created_by"`
	CreatedAt time.Time              `json:"created_at"`
	Questions []QuizQuestionResponse `json:"questions"`
}

type QuizQuestionResponse struct {
	ID       string             `json:"id"`
	QuizID   string             `json:"quiz_id"`
	Question string             `json:"question"`
	Data     model.QuestionData `json:"data"`
}

type CreateQuizResponse struct {
	QuizID string `json:"quiz_id"`
}
