package services

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/password"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"
)

var authDBCounter int64

func testAuthService(t *testing.T) *AuthService {
	t.Helper()

	name := fmt.Sprintf("auth_test_%d", atomic.AddInt64(&authDBCounter, 1))
	db, err := OpenSqlite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &AuthService{
		jwtSvc: &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "test-secret"},
		codec: password.NewCodec(password.Config{
			Memory:      8 * 1024,
			Time:        1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		}),
		userRepo: repositories.NewUserRepository(db),
	}
}

func strPtr(s string) *string { return &s }

func TestRegisterGuestIgnoresCredentials(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.Register(dto.RegisterRequest{
		Name:     "wanderer",
		IsGuest:  true,
		Email:    strPtr("ignored@example.com"),
		Password: strPtr("ignored-password"),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("guest registration issued no session token")
	}

	stored, err := svc.userRepo.GetUser(resp.UserID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if stored.Email != nil || stored.Hash != nil {
		t.Errorf("guest stored credentials: email=%v hash set=%v", stored.Email, stored.Hash != nil)
	}
	if !stored.IsGuest {
		t.Error("guest flag lost")
	}
}

func TestRegisterVerifiedRequiresCredentials(t *testing.T) {
	svc := testAuthService(t)

	cases := []dto.RegisterRequest{
		{Name: "no-creds", IsGuest: false},
		{Name: "no-password", IsGuest: false, Email: strPtr("a@example.com")},
		{Name: "no-email", IsGuest: false, Password: strPtr("long-enough-pass")},
	}

	for _, req := range cases {
		_, err := svc.Register(req)
		appErr, ok := shared.GetAppError(err)
		if !ok || appErr.StatusCode != http.StatusBadRequest {
			t.Errorf("register %q: want 400 AppError, got %v", req.Name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := testAuthService(t)

	req := dto.RegisterRequest{
		Name:     "original",
		Email:    strPtr("dup@example.com"),
		Password: strPtr("long-enough-pass"),
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	req.Name = "impostor"
	_, err := svc.Register(req)
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != http.StatusConflict {
		t.Errorf("want 409 AppError, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc := testAuthService(t)

	reg, err := svc.Register(dto.RegisterRequest{
		Name:     "member",
		Email:    strPtr("member@example.com"),
		Password: strPtr("long-enough-pass"),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(dto.LoginRequest{
		Email:    "member@example.com",
		Password: "long-enough-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := svc.jwtSvc.VerifyJWTToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("token from login did not verify: %v", err)
	}
	if userID != reg.UserID {
		t.Errorf("token user = %q, want %q", userID, reg.UserID)
	}
}

func TestLoginRejections(t *testing.T) {
	svc := testAuthService(t)

	if _, err := svc.Register(dto.RegisterRequest{
		Name:     "member",
		Email:    strPtr("member@example.com"),
		Password: strPtr("long-enough-pass"),
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []dto.LoginRequest{
		{Email: "member@example.com", Password: "wrong-password"},
		{Email: "stranger@example.com", Password: "long-enough-pass"},
	}

	for _, req := range cases {
		_, err := svc.Login(req)
		appErr, ok := shared.GetAppError(err)
		if !ok || appErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("login %q: want 401 AppError, got %v", req.Email, err)
		}
	}
}
