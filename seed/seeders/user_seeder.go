package seeders

import (
	"errors"

	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/password"
	"github.com/letsscience/quiz_api/services/repositories"
	"gorm.io/gorm"
)

type UserSeeder struct {
	users *repositories.UserRepository
	codec *password.Codec
}

func NewUserSeeder(db *gorm.DB) *UserSeeder {
	return &UserSeeder{
		users: repositories.NewUserRepository(db),
		codec: password.NewCodec(password.DefaultConfig()),
	}
}

const demoEmail = "demo@example.com"

// Seed creates a verified demo account plus a guest, and returns the demo
// account's id for seeders that need a creator. Idempotent: if the demo
// account already exists its id is reused.
func (s *UserSeeder) Seed() (string, error) {
	existing, err := s.users.GetUserByEmail(demoEmail)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := s.codec.Hash("demo-password")
	if err != nil {
		return "", err
	}

	email := demoEmail
	demo, err := s.users.CreateUser(&model.User{
		Name:       "demo",
		Email:      &email,
		Hash:       &hash,
		IsGuest:    false,
		AvatarSeed: "demo-seed",
	})
	if err != nil {
		return "", err
	}

	_, err = s.users.CreateUser(&model.User{
		Name:       "guest",
		IsGuest:    true,
		AvatarSeed: "guest-seed",
	})
	if err != nil {
		return "", err
	}

	return demo.ID, nil
}
