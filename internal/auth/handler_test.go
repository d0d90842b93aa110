package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/skillsenhance/skillsenhance/internal/auth"
	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/shared"
	_ "github.com/skillsenhance/skillsenhance/testing"
)

func newAuthHandler(t *testing.T) (*auth.Handler, *authz.Store, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionManager := shared.NewSessionManager(redisClient, "test_session", time.Hour, false)
	store := authz.NewStore()
	store.SeedDemoUsers()
	handler := auth.NewHandler(nil, store, sessionManager)
	return handler, store, sessionManager
}

func doJSON(t *testing.T, handler *auth.Handler, sm *shared.SessionManager, method, target, body string) (*httptest.ResponseRecorder, *shared.Session) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	sess, err := sm.Load(context.Background(), req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))

	r := chi.NewRouter()
	handler.MountRoutes(r)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res, sess
}

func TestLoginBindsSession(t *testing.T) {
	handler, store, sm := newAuthHandler(t)

	res, sess := doJSON(t, handler, sm, http.MethodPost, "/login", `{"email":"karan@skillsenhance.com","password":"anything"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.Code, res.Body.String())
	}
	if sess.User() != "1" {
		t.Fatalf("expected session bound to user 1, got %q", sess.User())
	}

	var user authz.User
	if err := json.Unmarshal(res.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Email != "karan@skillsenhance.com" {
		t.Fatalf("unexpected user in response: %+v", user)
	}

	current, ok := store.CurrentUser()
	if !ok || current.ID != "1" {
		t.Fatalf("expected current actor 1, got %+v ok=%v", current, ok)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	handler, store, sm := newAuthHandler(t)

	res, sess := doJSON(t, handler, sm, http.MethodPost, "/login", `{"email":"nobody@skillsenhance.com","password":"x"}`)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
	if sess.User() != "" {
		t.Fatalf("expected unbound session, got %q", sess.User())
	}
	if _, ok := store.CurrentUser(); ok {
		t.Fatalf("failed login must not set current actor")
	}
}

func TestLoginValidation(t *testing.T) {
	handler, _, sm := newAuthHandler(t)

	res, _ := doJSON(t, handler, sm, http.MethodPost, "/login", `{"email":"not-an-email","password":"x"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.Code)
	}
}

func TestSignupCreatesUserWithDefaultRole(t *testing.T) {
	handler, store, sm := newAuthHandler(t)

	res, sess := doJSON(t, handler, sm, http.MethodPost, "/signup", `{"name":"New Person","email":"new@skillsenhance.com","password":"pw"}`)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", res.Code, res.Body.String())
	}

	var user authz.User
	if err := json.Unmarshal(res.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ActiveRole != authz.RoleUser {
		t.Fatalf("expected default role user, got %q", user.ActiveRole)
	}
	if sess.User() != user.ID {
		t.Fatalf("expected session bound to %q, got %q", user.ID, sess.User())
	}
	if _, err := store.UserByEmail("new@skillsenhance.com"); err != nil {
		t.Fatalf("signed-up user missing from directory: %v", err)
	}
}

func TestLogoutClearsActorAndSession(t *testing.T) {
	handler, store, sm := newAuthHandler(t)

	store.SetCurrentUser("1")
	res, sess := doJSON(t, handler, sm, http.MethodPost, "/logout", "")
	if res.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", res.Code)
	}
	if sess.User() != "" {
		t.Fatalf("expected cleared session, got %q", sess.User())
	}
	if _, ok := store.CurrentUser(); ok {
		t.Fatalf("expected no current actor after logout")
	}
}

func TestMeResolvesSessionUser(t *testing.T) {
	handler, _, sm := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	sess, err := sm.Load(context.Background(), req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	sess.SetUser("2")
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))

	r := chi.NewRouter()
	handler.MountRoutes(r)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	var user authz.User
	if err := json.Unmarshal(res.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != "2" || user.Name != "Sarah Writer" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestMeWithoutSession(t *testing.T) {
	handler, _, sm := newAuthHandler(t)

	res, _ := doJSON(t, handler, sm, http.MethodGet, "/me", "")
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}
