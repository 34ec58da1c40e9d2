package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/letsscience/quiz_api/services/handlers"
	"github.com/letsscience/quiz_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	userSvc      *UserService
	quizSvc      *QuizService
	challengeSvc *ChallengeService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

// authProvider is what the http layer needs from the auth middleware
// service. Declared locally so this package does not import middleware,
// which imports this package.
type authProvider interface {
	RequiredAuth() fiber.Handler
}

// Matches middleware.AUTH_MIDDLEWARE_SVC.
const authMiddlewareID = "auth"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.quizSvc = svc.Service(QUIZ_SVC).(*QuizService)
	svc.challengeSvc = svc.Service(CHALLENGE_SVC).(*ChallengeService)
	authMw := svc.Service(authMiddlewareID).(authProvider)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowCredentials: false,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	quizHandler := handlers.NewQuizHandler(svc.quizSvc)
	challengeHandler := handlers.NewChallengeHandler(svc.challengeSvc)

	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	v1.Get("/challenges", challengeHandler.GetChallenges)
	v1.Get("/leaderboard", userHandler.GetLeaderboard)

	protected := v1.Group("", authMw.RequiredAuth())
	protected.Get("/user/me", userHandler.GetProfile)
	protected.Patch("/user/me", userHandler.UpdateProfile)
	protected.Post("/user/score", userHandler.IncreaseScore)

	protected.Post("/quiz", quizHandler.CreateQuiz)
	protected.Get("/quiz/:id", quizHandler.GetQuiz)

	protected.Post("/challenge", challengeHandler.CreateChallenge)
	protected.Get("/challenge/:id", challengeHandler.GetChallenge)
	protected.Get("/challenges/self", challengeHandler.GetProgress)
	protected.Post("/challenge/:id/progress", challengeHandler.AddProgress)
	protected.Delete("/challenge/:id/progress", challengeHandler.DeleteProgress)

	svc.app = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")
	return shared.ResponseOK(c, "pong")
}

// handleError is the single boundary between service errors and HTTP
// responses. AppErrors carry their own status and message; anything else
// becomes a generic internal error so store details never leak.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		if appErr.StatusCode >= http.StatusInternalServerError {
			log.WithError(appErr.Err).WithField("path", c.Path()).Error(appErr.Message)
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	return shared.ResponseInternalError(c)
}
