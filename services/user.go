package services

import (
	goContext "context"
	"errors"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService struct {
	context.DefaultService

	sqlSvc   *PostgresService
	redisSvc *RedisService

	userRepo *repositories.UserRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *UserService) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err, "Failed to get user profile")
	}

	return toProfileResponse(user), nil
}

func (svc *UserService) UpdateUserProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	patch := repositories.UserPatch{
		Name:       req.Name,
		Email:      req.Email,
		AvatarSeed: req.AvatarSeed,
	}

	user, err := svc.userRepo.PatchUser(userID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewConflictError(err, "Email is already taken")
		}
		return nil, shared.NewInternalError(err, "Failed to update profile")
	}

	return toProfileResponse(user), nil
}

// IncreaseScore adds delta atomically in the store, then mirrors the new
// total into the leaderboard. The ZSet is a cache over the users table, so
// a redis failure is logged and ignored.
func (svc *UserService) IncreaseScore(userID string, delta int) (*dto.UserProfileResponse, error) {
	user, err := svc.userRepo.IncreaseScore(userID, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err, "Failed to increase score")
	}

	if err := svc.redisSvc.SetLeaderboardScore(goContext.Background(), user.ID, int64(user.Score)); err != nil {
		log.WithError(err).WithField(shared.UserID, user.ID).Warn("Failed to update leaderboard")
	}

	return toProfileResponse(user), nil
}

func (svc *UserService) GetLeaderboard(limit int64) (*dto.LeaderboardResponse, error) {
	entries, err := svc.redisSvc.GetTopByScore(goContext.Background(), limit)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to get leaderboard")
	}

	return &dto.LeaderboardResponse{Entries: entries}, nil
}

func toProfileResponse(user *model.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsGuest:    user.IsGuest,
		AvatarSeed: user.AvatarSeed,
		Score:      user.Score,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
