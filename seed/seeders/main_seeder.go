package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder runs the individual seeders in dependency order: users first,
// since quizzes reference their creator.
type MainSeeder struct {
	users      *UserSeeder
	quizzes    *QuizSeeder
	challenges *ChallengeSeeder
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{
		users:      NewUserSeeder(db),
		quizzes:    NewQuizSeeder(db),
		challenges: NewChallengeSeeder(db),
	}
}

func (s *MainSeeder) SeedAll() error {
	log.Println("Seeding users...")
	creatorID, err := s.users.Seed()
	if err != nil {
		return err
	}

	log.Println("Seeding quizzes...")
	if err := s.quizzes.Seed(creatorID); err != nil {
		return err
	}

	log.Println("Seeding challenges...")
	return s.challenges.Seed()
}

func (s *MainSeeder) SeedUsersOnly() error {
	_, err := s.users.Seed()
	return err
}

func (s *MainSeeder) SeedQuizzesOnly() error {
	creatorID, err := s.users.Seed()
	if err != nil {
		return err
	}
	return s.quizzes.Seed(creatorID)
}

func (s *MainSeeder) SeedChallengesOnly() error {
	return s.challenges.Seed()
}
