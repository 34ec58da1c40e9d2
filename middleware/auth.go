package middleware

import (
	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/letsscience/quiz_api/services"
	"github.com/letsscience/quiz_api/shared"
)

type AuthMiddleware struct {
	context.DefaultService

	jwtSvc *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Configure(ctx *context.Context) error {
	svc.jwtSvc = ctx.Service(services.JWT_SVC).(*services.JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthMiddleware) Start() error {
	return nil
}

// RequiredAuth pulls the session token from the session cookie or, failing
// that, the Authorization header. Cookie values arrive quoted from some
// clients, so the cookie path strips quotes before verification.
func (svc *AuthMiddleware) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := services.StripTokenQuotes(c.Cookies(shared.SessionCookie))
		if token == "" {
			header := c.Get(fiber.HeaderAuthorization)
			extracted, err := svc.jwtSvc.ExtractTokenFromHeader(header)
			if err != nil {
				return shared.ResponseUnauthorized(c)
			}
			token = extracted
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.ResponseUnauthorized(c)
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
