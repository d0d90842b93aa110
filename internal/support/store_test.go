package support_test

import (
	"errors"
	"testing"
	"time"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
	"github.com/skillsenhance/skillsenhance/internal/support"
)

func TestAgentReplyMovesOpenToInProgress(t *testing.T) {
	store := support.NewStore()
	ticket := store.Open("5", "Alice User", "alice@skillsenhance.com", "Lab broken", support.CategoryTechnical, support.PriorityHigh, "The lab will not start.")
	if ticket.Status != support.StatusOpen {
		t.Fatalf("expected new ticket open, got %q", ticket.Status)
	}

	got, err := store.Reply(ticket.ID, "Mike Support", support.SenderSupport, "Looking into it now.")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if got.Status != support.StatusInProgress {
		t.Fatalf("expected in_progress after agent reply, got %q", got.Status)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.UpdatedAt.Before(ticket.UpdatedAt) {
		t.Fatalf("reply must bump UpdatedAt")
	}
}

func TestUserReplyKeepsTicketOpen(t *testing.T) {
	store := support.NewStore()
	ticket := store.Open("5", "Alice User", "alice@skillsenhance.com", "Question", support.CategoryCourse, support.PriorityLow, "Where are the slides?")

	got, err := store.Reply(ticket.ID, "Alice User", support.SenderUser, "Adding more detail.")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if got.Status != support.StatusOpen {
		t.Fatalf("expected ticket to stay open, got %q", got.Status)
	}
}

func TestReplyOnClosedTicket(t *testing.T) {
	store := support.NewStore()
	ticket := store.Open("5", "Alice User", "alice@skillsenhance.com", "Old issue", support.CategoryOther, support.PriorityLow, "hello")
	if _, err := store.SetStatus(ticket.ID, support.StatusClosed); err != nil {
		t.Fatalf("set status: %v", err)
	}

	_, err := store.Reply(ticket.ID, "Mike Support", support.SenderSupport, "too late")
	if !errors.Is(err, httpx.ErrConflict) {
		t.Fatalf("expected conflict on closed ticket, got %v", err)
	}
}

func TestSetStatusValidatesValue(t *testing.T) {
	store := support.NewStore()
	ticket := store.Open("5", "Alice User", "alice@skillsenhance.com", "Subject", support.CategoryOther, support.PriorityLow, "body")

	if _, err := store.SetStatus(ticket.ID, "archived"); !errors.Is(err, httpx.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := store.SetStatus("missing", support.StatusResolved); !errors.Is(err, httpx.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListFiltersAndCaseFoldedSearch(t *testing.T) {
	store := support.NewStore()
	store.SeedDemoTickets()

	mine := store.List(support.Filter{UserID: "5"})
	if len(mine) != 2 {
		t.Fatalf("expected 2 tickets for user 5, got %d", len(mine))
	}
	for _, ticket := range mine {
		if ticket.UserID != "5" {
			t.Fatalf("filter leaked ticket for user %q", ticket.UserID)
		}
	}

	// Case folding: the query matches regardless of letter case.
	found := store.List(support.Filter{Search: "INVOICE"})
	if len(found) != 1 || found[0].Subject != "Invoice for March subscription" {
		t.Fatalf("unexpected search result: %+v", found)
	}

	// Message bodies are searched too.
	found = store.List(support.Filter{Search: "blank screen"})
	if len(found) != 1 || found[0].Subject != "Cannot access AWS lab environment" {
		t.Fatalf("unexpected search result: %+v", found)
	}

	if got := store.List(support.Filter{Status: support.StatusResolved}); len(got) != 1 {
		t.Fatalf("expected 1 resolved ticket, got %d", len(got))
	}
}

func TestListOrdersByLastUpdate(t *testing.T) {
	store := support.NewStore()
	store.SeedDemoTickets()

	all := store.List(support.Filter{})
	for i := 1; i < len(all); i++ {
		if all[i].UpdatedAt.After(all[i-1].UpdatedAt) {
			t.Fatalf("tickets out of order at %d", i)
		}
	}
}

func TestCloseResolvedBefore(t *testing.T) {
	store := support.NewStore()
	store.SeedDemoTickets()

	closed := store.CloseResolvedBefore(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if closed != 1 {
		t.Fatalf("expected 1 auto-closed ticket, got %d", closed)
	}
	if got := store.List(support.Filter{Status: support.StatusResolved}); len(got) != 0 {
		t.Fatalf("expected no resolved tickets left, got %d", len(got))
	}
	if got := store.List(support.Filter{Status: support.StatusClosed}); len(got) != 1 {
		t.Fatalf("expected 1 closed ticket, got %d", len(got))
	}
}
