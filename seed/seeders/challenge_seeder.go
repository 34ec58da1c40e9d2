package seeders

import (
	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"
	"gorm.io/gorm"
)

type ChallengeSeeder struct {
	challenges *repositories.ChallengeRepository
}

func NewChallengeSeeder(db *gorm.DB) *ChallengeSeeder {
	return &ChallengeSeeder{
		challenges: repositories.NewChallengeRepository(db, repositories.NewTranslationRepository(db)),
	}
}

func (s *ChallengeSeeder) Seed() error {
	requests := []dto.CreateChallengeRequest{
		{
			Title:        "Quiz marathon",
			Category:     "quizzes",
			Type:         shared.ChallengeTypeCounter,
			Goal:         50,
			Description:  "Answer fifty questions correctly.",
			LanguageCode: "en",
		},
		{
			Title:        "Daily streak",
			Category:     "streaks",
			Type:         shared.ChallengeTypeDailyChallenge,
			Goal:         7,
			Description:  "Complete a quiz every day for a week.",
			LanguageCode: "en",
		},
	}

	for _, req := range requests {
		if _, err := s.challenges.CreateChallenge(req); err != nil {
			return err
		}
	}
	return nil
}
