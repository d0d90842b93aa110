package support_test

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

	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/shared"
	"github.com/skillsenhance/skillsenhance/internal/support"
	_ "github.com/skillsenhance/skillsenhance/testing"
)

type deskFixture struct {
	router   chi.Router
	sessions *shared.SessionManager
}

func newDesk(t *testing.T) deskFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := shared.NewSessionManager(client, "test_session", time.Hour, false)

	users := authz.NewStore()
	users.SeedDemoUsers()
	store := support.NewStore()
	store.SeedDemoTickets()

	guard := authz.Middleware{Store: users}
	r := chi.NewRouter()
	support.NewHandler(nil, store, users, guard).MountRoutes(r)
	return deskFixture{router: r, sessions: sessions}
}

func (f deskFixture) do(t *testing.T, userID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	sess, err := f.sessions.Load(context.Background(), req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if userID != "" {
		sess.SetUser(userID)
	}
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	res := httptest.NewRecorder()
	f.router.ServeHTTP(res, req)
	return res
}

func TestListScopedToRequester(t *testing.T) {
	desk := newDesk(t)

	// Alice raised two of the three seeded tickets.
	res := desk.do(t, "5", http.MethodGet, "/", "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.Code, res.Body.String())
	}
	var tickets []support.Ticket
	if err := json.Unmarshal(res.Body.Bytes(), &tickets); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets for requester, got %d", len(tickets))
	}
	for _, ticket := range tickets {
		if ticket.UserID != "5" {
			t.Fatalf("requester list leaked ticket for user %q", ticket.UserID)
		}
	}
}

func TestAgentSeesAllTickets(t *testing.T) {
	desk := newDesk(t)

	res := desk.do(t, "4", http.MethodGet, "/", "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	var tickets []support.Ticket
	if err := json.Unmarshal(res.Body.Bytes(), &tickets); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("expected agent to see all 3 tickets, got %d", len(tickets))
	}
}

func TestGetForeignTicketForbidden(t *testing.T) {
	desk := newDesk(t)

	// Ticket 2 belongs to Sarah; Alice may not read it.
	res := desk.do(t, "5", http.MethodGet, "/2", "")
	if res.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", res.Code)
	}
	// The owner and an agent both can.
	if res := desk.do(t, "2", http.MethodGet, "/2", ""); res.Code != http.StatusOK {
		t.Fatalf("expected owner access, got %d", res.Code)
	}
	if res := desk.do(t, "4", http.MethodGet, "/2", ""); res.Code != http.StatusOK {
		t.Fatalf("expected agent access, got %d", res.Code)
	}
}

func TestStatusChangeRequiresAgent(t *testing.T) {
	desk := newDesk(t)

	res := desk.do(t, "5", http.MethodPut, "/1/status", `{"status":"resolved"}`)
	if res.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for requester, got %d", res.Code)
	}

	res = desk.do(t, "4", http.MethodPut, "/1/status", `{"status":"resolved"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200 for agent, got %d: %s", res.Code, res.Body.String())
	}
	var ticket support.Ticket
	if err := json.Unmarshal(res.Body.Bytes(), &ticket); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ticket.Status != support.StatusResolved {
		t.Fatalf("expected resolved, got %q", ticket.Status)
	}
}

func TestAgentReplyMarksSenderSupport(t *testing.T) {
	desk := newDesk(t)

	res := desk.do(t, "4", http.MethodPost, "/1/messages", `{"message":"On it."}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.Code, res.Body.String())
	}
	var ticket support.Ticket
	if err := json.Unmarshal(res.Body.Bytes(), &ticket); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	last := ticket.Messages[len(ticket.Messages)-1]
	if last.SenderType != support.SenderSupport {
		t.Fatalf("expected support sender type, got %q", last.SenderType)
	}
	if ticket.Status != support.StatusInProgress {
		t.Fatalf("expected in_progress after agent reply, got %q", ticket.Status)
	}
}

func TestReplyOnForeignTicketForbidden(t *testing.T) {
	desk := newDesk(t)

	res := desk.do(t, "5", http.MethodPost, "/2/messages", `{"message":"not mine"}`)
	if res.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", res.Code)
	}
}
