package services

import (
	"errors"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ChallengeService struct {
	context.DefaultService

	sqlSvc *PostgresService

	challengeRepo *repositories.ChallengeRepository
}

const CHALLENGE_SVC = "challenge_svc"

func (svc ChallengeService) Id() string {
	return CHALLENGE_SVC
}

func (svc *ChallengeService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *ChallengeService) Start() error {
	db := svc.sqlSvc.Db()
	svc.challengeRepo = repositories.NewChallengeRepository(db, repositories.NewTranslationRepository(db))
	return nil
}

func (svc *ChallengeService) CreateChallenge(req dto.CreateChallengeRequest) (*dto.CreateChallengeResponse, error) {
	challengeID, err := svc.challengeRepo.CreateChallenge(req)
	if err != nil {
		log.WithError(err).Error("Failed to create challenge")
		return nil, shared.FromDBError(err, "Failed to create challenge")
	}

	return &dto.CreateChallengeResponse{ChallengeID: challengeID}, nil
}

func (svc *ChallengeService) GetChallenge(challengeID string) (*dto.ChallengeResponse, error) {
	challenge, err := svc.challengeRepo.GetChallenge(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Challenge not found")
		}
		return nil, shared.NewInternalError(err, "Failed to get challenge")
	}

	return challenge, nil
}

func (svc *ChallengeService) GetChallenges() ([]dto.ChallengeResponse, error) {
	challenges, err := svc.challengeRepo.GetChallenges()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to get challenges")
	}

	return challenges, nil
}

// AddProgress runs the merge-add upsert. A foreign key violation here
// means the challenge id does not exist, which is a not-found outcome for
// the caller, not a bad request.
func (svc *ChallengeService) AddProgress(userID, challengeID string, progress int) (*dto.UserChallengeResponse, error) {
	row, err := svc.challengeRepo.AddProgress(userID, challengeID, progress)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, shared.NewNotFoundError(err, "Challenge not found")
		}
		log.WithError(err).WithField("challenge_id", challengeID).Error("Failed to add progress")
		return nil, shared.FromDBError(err, "Failed to add progress")
	}

	return toUserChallengeResponse(row), nil
}

func (svc *ChallengeService) GetProgress(userID, challengeID string) ([]dto.UserChallengeResponse, error) {
	rows, err := svc.challengeRepo.GetProgress(userID, challengeID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to get progress")
	}

	progress := make([]dto.UserChallengeResponse, 0, len(rows))
	for i := range rows {
		progress = append(progress, *toUserChallengeResponse(&rows[i]))
	}
	return progress, nil
}

func (svc *ChallengeService) DeleteProgress(userID, challengeID string) (*dto.UserChallengeResponse, error) {
	row, err := svc.challengeRepo.DeleteProgress(userID, challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Progress not found")
		}
		return nil, shared.NewInternalError(err, "Failed to delete progress")
	}

	return toUserChallengeResponse(row), nil
}

func toUserChallengeResponse(row *model.UserChallenge) *dto.UserChallengeResponse {
	return &dto.UserChallengeResponse{
		UserID:      row.UserID,
		ChallengeID: row.ChallengeID,
		Progress:    row.Progress,
		UpdatedAt:   row.UpdatedAt,
	}
}
