package handlers

import (
	"github.com/letsscience/quiz_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type UserServiceInterface interface {
	GetUserProfile(userID string) (*dto.UserProfileResponse, error)
	UpdateUserProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	IncreaseScore(userID string, delta int) (*dto.UserProfileResponse, error)
	GetLeaderboard(limit int64) (*dto.LeaderboardResponse, error)
}

type QuizServiceInterface interface {
	CreateQuiz(userID string, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	GetQuiz(quizID string) (*dto.QuizResponse, error)
}

type ChallengeServiceInterface interface {
	CreateChallenge(req dto.CreateChallengeRequest) (*dto.CreateChallengeResponse, error)
	GetChallenge(challengeID string) (*dto.ChallengeResponse, error)
	GetChallenges() ([]dto.ChallengeResponse, error)
	AddProgress(userID, challengeID string, progress int) (*dto.UserChallengeResponse, error)
	GetProgress(userID, challengeID string) ([]dto.UserChallengeResponse, error)
	DeleteProgress(userID, challengeID string) (*dto.UserChallengeResponse, error)
}
