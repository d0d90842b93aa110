// Package approvals owns the review queue sitting between content
// submission and publication.
package approvals

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Status is the review state of a request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is one submission awaiting (or past) review.
type Request struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // course, lesson or lab
	RefID       string    `json:"refId"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      Status    `json:"status"`
	ReviewNotes string    `json:"reviewNotes,omitempty"`
	ReviewedBy  string    `json:"reviewedBy,omitempty"`
}

// Resolver receives review decisions so the submitted item's lifecycle can
// move with the request. Implemented by the content store.
type Resolver interface {
	ResolveSubmission(itemType, refID string, approved bool) error
}

// Filter narrows List output.
type Filter struct {
	Status Status
	Search string
}

// Store holds the review queue in memory.
type Store struct {
	mu       sync.RWMutex
	requests []Request
	resolver Resolver

	now   func() time.Time
	newID func() string
}

// NewStore constructs a queue wired to the given resolver. A nil resolver
// means decisions only update the queue itself.
func NewStore(resolver Resolver) *Store {
	return &Store{
		resolver: resolver,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// File appends a pending request for a submitted item.
func (s *Store) File(title, itemType, refID, author, description string) Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := Request{
		ID:          "approval-" + s.newID(),
		Title:       title,
		Type:        itemType,
		RefID:       refID,
		Author:      author,
		Description: description,
		SubmittedAt: s.now(),
		Status:      StatusPending,
	}
	s.requests = append(s.requests, req)
	return req
}

// List returns requests matching the filter, newest first.
func (s *Store) List(f Filter) []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	search := strings.ToLower(f.Search)
	var out []Request
	for i := len(s.requests) - 1; i >= 0; i-- {
		req := s.requests[i]
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(req.Title), search) &&
			!strings.Contains(strings.ToLower(req.Author), search) {
			continue
		}
		out = append(out, req)
	}
	return out
}

// Get returns a single request.
func (s *Store) Get(id string) (Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, req := range s.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return Request{}, fmt.Errorf("approval %s: %w", id, httpx.ErrNotFound)
}

// Approve marks a pending request approved and resolves the submission.
func (s *Store) Approve(id, reviewer, notes string) (Request, error) {
	return s.decide(id, reviewer, notes, true)
}

// Reject marks a pending request rejected and sends the submission back to
// its author. Review notes are required so the author knows what to fix.
func (s *Store) Reject(id, reviewer, notes string) (Request, error) {
	if strings.TrimSpace(notes) == "" {
		return Request{}, fmt.Errorf("review notes required on rejection: %w", httpx.ErrValidation)
	}
	return s.decide(id, reviewer, notes, false)
}

func (s *Store) decide(id, reviewer, notes string, approved bool) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if s.requests[i].Status != StatusPending {
			return Request{}, fmt.Errorf("approval %s already reviewed: %w", id, httpx.ErrConflict)
		}
		if approved {
			s.requests[i].Status = StatusApproved
		} else {
			s.requests[i].Status = StatusRejected
		}
		s.requests[i].ReviewNotes = notes
		s.requests[i].ReviewedBy = reviewer
		if s.resolver != nil && s.requests[i].RefID != "" {
			// The referenced item may have been deleted since submission;
			// the decision on the request still stands.
			_ = s.resolver.ResolveSubmission(s.requests[i].Type, s.requests[i].RefID, approved)
		}
		return s.requests[i], nil
	}
	return Request{}, fmt.Errorf("approval %s: %w", id, httpx.ErrNotFound)
}

// PendingCount reports how many requests await review.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, req := range s.requests {
		if req.Status == StatusPending {
			n++
		}
	}
	return n
}
