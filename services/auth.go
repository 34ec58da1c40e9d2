package services

import (
	"errors"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/password"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuthService owns registration and login. Password handling goes through
// the credential codec; session tokens come from JWTService.
type AuthService struct {
	context.DefaultService

	sqlSvc *PostgresService
	jwtSvc *JWTService

	codec    *password.Codec
	userRepo *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.codec = password.NewCodec(password.DefaultConfig())
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// Register creates a guest or verified user. A verified registration needs
// both email and password; a guest stores neither, whatever the request
// carried. Duplicate email resolves at the unique constraint and comes
// back as a conflict, a normal outcome rather than a failure.
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	user := &model.User{
		Name:       req.Name,
		IsGuest:    req.IsGuest,
		AvatarSeed: req.AvatarSeed,
	}

	if !req.IsGuest {
		if req.Email == nil || req.Password == nil {
			return nil, shared.NewBadRequestError(errors.New("missing credentials"),
				"Email and password are required for a non-guest registration")
		}

		hash, err := svc.codec.Hash(*req.Password)
		if err != nil {
			log.WithError(err).Error("Failed to hash password")
			return nil, shared.NewInternalError(err, "Failed to register user")
		}

		email := *req.Email
		user.Email = &email
		user.Hash = &hash
	}

	created, err := svc.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.NewConflictError(err, "User already exists")
		}
		log.WithError(err).Error("Failed to create user")
		return nil, shared.FromDBError(err, "Failed to register user")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(created.ID)
	if err != nil {
		log.WithError(err).WithField(shared.UserID, created.ID).Error("Failed to issue session token")
		return nil, shared.NewInternalError(err, "Failed to issue session token")
	}

	return &dto.RegisterResponse{
		UserID:      created.ID,
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	}, nil
}

// Login verifies credentials and issues a session token. Unknown email,
// guest account, and wrong password all collapse into the same
// unauthenticated outcome so nothing is leaked about which part failed.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Unauthorized")
		}
		log.WithError(err).Error("Failed to fetch user for login")
		return nil, shared.NewInternalError(err, "Failed to log in")
	}

	if user.Hash == nil {
		return nil, shared.NewUnauthorizedError(errors.New("no credentials on record"), "Unauthorized")
	}

	ok, err := svc.codec.Verify(req.Password, *user.Hash)
	if err != nil {
		// Malformed digest is corrupt stored data, not a wrong password.
		log.WithError(err).WithField(shared.UserID, user.ID).Error("Stored password digest is malformed")
		return nil, shared.NewInternalError(err, "Failed to log in")
	}
	if !ok {
		return nil, shared.NewUnauthorizedError(errors.New("password mismatch"), "Unauthorized")
	}

	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		log.WithError(err).WithField(shared.UserID, user.ID).Error("Failed to issue session token")
		return nil, shared.NewInternalError(err, "Failed to log in")
	}

	return &dto.LoginResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	}, nil
}
