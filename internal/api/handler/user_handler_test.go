package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/accounts-api/internal/api/middleware"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, input ports.NewUser) (*domain.User, error)
	updateFn func(ctx context.Context, actor *domain.User, id int64, fields domain.UserUpdate) error
	deleteFn func(ctx context.Context, actor *domain.User, id int64) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input ports.NewUser) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id int64, fields domain.UserUpdate) error {
	return s.updateFn(ctx, actor, id, fields)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	return s.deleteFn(ctx, actor, id)
}

func TestUserHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: 1, Name: "alice", PermLevel: domain.RoleUser, PasswordHash: "hash"},
				{ID: 2, Name: "root", PermLevel: domain.RoleAdmin, PasswordHash: "hash"},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if _, leaked := u["password"]; leaked {
			t.Fatalf("password hash leaked in response: %+v", u)
		}
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 7 {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: 7, Name: "alice", PermLevel: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alice"`) {
		t.Fatalf("expected user in body: %s", rec.Body.String())
	}
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.GetByID(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_GetByID_NonNumeric(t *testing.T) {
	e := newEcho()
	h := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetByID(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError for non-numeric id, got %v", err)
	}
}

func TestUserHandler_Add_Success(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.NewUser) (*domain.User, error) {
			if input.Name != "alice" || input.Password != "secret" || input.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 3, Name: "alice", Email: "a@example.com", PermLevel: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"alice","password":"secret","email":"a@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/add", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); !strings.HasSuffix(loc, "/3") {
		t.Fatalf("expected Location ending in /3, got %q", loc)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "alice" || resp["perm_level"] != domain.RoleUser {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Add_MissingField(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.NewUser) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"alice","email":"a@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/add", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "Missing 'password' in request body") {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestUserHandler_Update(t *testing.T) {
	e := newEcho()
	actor := &domain.User{ID: 7, Name: "alice", PermLevel: domain.RoleUser}
	stub := &stubUserService{
		updateFn: func(ctx context.Context, a *domain.User, id int64, fields domain.UserUpdate) error {
			if a.Name != "alice" || id != 7 || fields.Name != "new-alice" {
				t.Fatalf("unexpected args: %+v %d %+v", a, id, fields)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"new-alice"}`)
	req := httptest.NewRequest(http.MethodPatch, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set(middleware.ContextUserKey, actor)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_Update_Denied(t *testing.T) {
	e := newEcho()
	actor := &domain.User{ID: 7, Name: "alice", PermLevel: domain.RoleUser}
	stub := &stubUserService{
		updateFn: func(ctx context.Context, a *domain.User, id int64, fields domain.UserUpdate) error {
			return domain.ErrNotOwner
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"hijacked"}`)
	req := httptest.NewRequest(http.MethodPatch, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("8")
	c.Set(middleware.ContextUserKey, actor)

	if err := h.Update(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	e := newEcho()
	actor := &domain.User{ID: 1, Name: "root", PermLevel: domain.RoleAdmin}
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, a *domain.User, id int64) error {
			if !a.IsAdmin() || id != 7 {
				t.Fatalf("unexpected args: %+v %d", a, id)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set(middleware.ContextUserKey, actor)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NonAdmin(t *testing.T) {
	e := newEcho()
	actor := &domain.User{ID: 7, Name: "alice", PermLevel: domain.RoleUser}
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, a *domain.User, id int64) error {
			return domain.ErrNotAdmin
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("8")
	c.Set(middleware.ContextUserKey, actor)

	if err := h.Delete(c); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}
