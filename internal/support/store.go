// Package support owns the ticket desk: tickets, their message threads and
// the open-to-closed lifecycle.
package support

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Priority grades a ticket's urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category buckets tickets by topic.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryBilling   Category = "billing"
	CategoryAccount   Category = "account"
	CategoryCourse    Category = "course"
	CategoryOther     Category = "other"
)

// SenderType distinguishes requester messages from agent replies.
type SenderType string

const (
	SenderUser    SenderType = "user"
	SenderSupport SenderType = "support"
)

// Message is one entry in a ticket thread.
type Message struct {
	ID         string     `json:"id"`
	Sender     string     `json:"sender"`
	SenderType SenderType `json:"senderType"`
	Body       string     `json:"message"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Ticket is a support request with its message thread.
type Ticket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Subject   string    `json:"subject"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Messages  []Message `json:"messages"`
}

// Filter narrows List output. Search matches subject, requester name and
// message bodies under Unicode case folding.
type Filter struct {
	Status   Status
	Priority Priority
	UserID   string
	Search   string
}

// Store holds the ticket desk in memory.
type Store struct {
	mu      sync.RWMutex
	tickets []Ticket

	now   func() time.Time
	newID func() string
}

// NewStore constructs an empty ticket desk.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Open files a new ticket with its first message.
func (s *Store) Open(userID, userName, userEmail, subject string, category Category, priority Priority, body string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	ticket := Ticket{
		ID:        "ticket-" + s.newID(),
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
		Subject:   subject,
		Category:  category,
		Priority:  priority,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []Message{{
			ID:         "msg-" + s.newID(),
			Sender:     userName,
			SenderType: SenderUser,
			Body:       body,
			Timestamp:  now,
		}},
	}
	s.tickets = append(s.tickets, ticket)
	return copyTicket(ticket)
}

// List returns tickets matching the filter, most recently updated first.
func (s *Store) List(f Filter) []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fold := cases.Fold()
	search := fold.String(f.Search)
	var out []Ticket
	for _, t := range s.tickets {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.UserID != "" && t.UserID != f.UserID {
			continue
		}
		if search != "" && !ticketMatches(fold, t, search) {
			continue
		}
		out = append(out, copyTicket(t))
	}
	sortByUpdatedDesc(out)
	return out
}

// Get returns a single ticket.
func (s *Store) Get(id string) (Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return copyTicket(t), nil
		}
	}
	return Ticket{}, fmt.Errorf("ticket %s: %w", id, httpx.ErrNotFound)
}

// Reply appends a message to the thread. An agent reply moves an open
// ticket to in progress.
func (s *Store) Reply(id, sender string, senderType SenderType, body string) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID != id {
			continue
		}
		if s.tickets[i].Status == StatusClosed {
			return Ticket{}, fmt.Errorf("ticket %s is closed: %w", id, httpx.ErrConflict)
		}
		now := s.now()
		s.tickets[i].Messages = append(s.tickets[i].Messages, Message{
			ID:         "msg-" + s.newID(),
			Sender:     sender,
			SenderType: senderType,
			Body:       body,
			Timestamp:  now,
		})
		s.tickets[i].UpdatedAt = now
		if senderType == SenderSupport && s.tickets[i].Status == StatusOpen {
			s.tickets[i].Status = StatusInProgress
		}
		return copyTicket(s.tickets[i]), nil
	}
	return Ticket{}, fmt.Errorf("ticket %s: %w", id, httpx.ErrNotFound)
}

// SetStatus moves a ticket through its lifecycle.
func (s *Store) SetStatus(id string, status Status) (Ticket, error) {
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
	default:
		return Ticket{}, fmt.Errorf("unknown ticket status %q: %w", status, httpx.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			s.tickets[i].Status = status
			s.tickets[i].UpdatedAt = s.now()
			return copyTicket(s.tickets[i]), nil
		}
	}
	return Ticket{}, fmt.Errorf("ticket %s: %w", id, httpx.ErrNotFound)
}

// CloseResolvedBefore closes resolved tickets whose last update predates
// the cutoff. Used by the background sweep; returns the closed count.
func (s *Store) CloseResolvedBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.tickets {
		if s.tickets[i].Status == StatusResolved && s.tickets[i].UpdatedAt.Before(cutoff) {
			s.tickets[i].Status = StatusClosed
			s.tickets[i].UpdatedAt = s.now()
			n++
		}
	}
	return n
}

func ticketMatches(fold cases.Caser, t Ticket, search string) bool {
	if strings.Contains(fold.String(t.Subject), search) ||
		strings.Contains(fold.String(t.UserName), search) {
		return true
	}
	for _, m := range t.Messages {
		if strings.Contains(fold.String(m.Body), search) {
			return true
		}
	}
	return false
}

func sortByUpdatedDesc(tickets []Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].UpdatedAt.After(tickets[j].UpdatedAt)
	})
}

func copyTicket(t Ticket) Ticket {
	msgs := make([]Message, len(t.Messages))
	copy(msgs, t.Messages)
	t.Messages = msgs
	return t
}
