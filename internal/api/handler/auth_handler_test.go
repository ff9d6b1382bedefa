package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-experience-api/internal/core/domain"
	"github.com/peoplehub/hr-experience-api/internal/core/ports"
)

type stubAuthService struct {
	user      *domain.User
	token     string
	err       error
	lastInput ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newAuthEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestRegisterHandler_Created(t *testing.T) {
	e := newAuthEcho()
	svc := &stubAuthService{user: &domain.User{ID: 1, Name: "Dana", Email: "dana@corp.test", Role: domain.RoleEmployee}}
	h := NewAuthHandler(svc)

	body := `{"name":"Dana","email":"dana@corp.test","password":"somepassword","role":"employee","skills":["go"]}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.Email != "dana@corp.test" || len(svc.lastInput.Skills) != 1 {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.User == nil || resp.User.ID != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name":"Dana","email":"not-an-email","password":"short","role":"wizard"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	body := `{"name":"Dana","email":"dana@corp.test","password":"somepassword","role":"employee"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoginHandler_ReturnsToken(t *testing.T) {
	e := newAuthEcho()
	svc := &stubAuthService{token: "signed.jwt.token", user: &domain.User{ID: 2, Role: domain.RoleManager}}
	h := NewAuthHandler(svc)

	body := `{"email":"mia@corp.test","password":"somepassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	body := `{"email":"mia@corp.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	e := newAuthEcho()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserNotFound})

	body := `{"email":"ghost@corp.test","password":"somepassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
