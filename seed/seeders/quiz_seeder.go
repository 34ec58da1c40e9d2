package seeders

import (
	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/services/repositories"
	"gorm.io/gorm"
)

type QuizSeeder struct {
	quizzes *repositories.QuizRepository
}

func NewQuizSeeder(db *gorm.DB) *QuizSeeder {
	return &QuizSeeder{
		quizzes: repositories.NewQuizRepository(db, repositories.NewTranslationRepository(db)),
	}
}

func (s *QuizSeeder) Seed(creatorID string) error {
	_, err := s.quizzes.CreateQuiz(creatorID, "General knowledge", "en", []repositories.QuizQuestionInput{
		{
			Text: "Which planet is closest to the sun?",
			Data: model.QuestionData{
				Type: model.QuestionTypeMultipleChoice,
				MultipleChoice: &model.MultipleChoiceData{
					Answers:       []string{"Venus", "Mercury", "Mars"},
					CorrectAnswer: 1,
				},
			},
		},
		{
			Text: "In which year did the first moon landing happen?",
			Data: model.QuestionData{
				Type:    model.QuestionTypeNumeric,
				Numeric: &model.NumericData{RangeStart: 1969, RangeEnd: 1969},
			},
		},
		{
			Text: "Sound travels faster in water than in air.",
			Data: model.QuestionData{
				Type:        model.QuestionTypeTrueOrFalse,
				TrueOrFalse: &model.TrueOrFalseData{CorrectAnswer: true},
			},
		},
	})
	return err
}
