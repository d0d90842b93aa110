package approvals

import "time"

// SeedDemoRequests loads the demo review queue.
func (s *Store) SeedDemoRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests,
		Request{
			ID:          "1",
			Title:       "AWS EC2 Deployment Lab",
			Type:        "lab",
			RefID:       "1",
			Author:      "Sarah Writer",
			Description: "Step-by-step guide for deploying applications on EC2",
			SubmittedAt: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			Status:      StatusPending,
		},
		Request{
			ID:          "2",
			Title:       "DevOps Course",
			Type:        "course",
			RefID:       "2",
			Author:      "Sarah Writer",
			Description: "Complete DevOps fundamentals course",
			SubmittedAt: time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
			Status:      StatusPending,
		},
		Request{
			ID:          "3",
			Title:       "Kubernetes Introduction",
			Type:        "lab",
			RefID:       "2",
			Author:      "John Developer",
			Description: "Introduction to Kubernetes concepts",
			SubmittedAt: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			Status:      StatusApproved,
			ReviewNotes: "Well structured and comprehensive",
		},
		Request{
			ID:          "4",
			Title:       "Docker Advanced",
			Type:        "lab",
			Author:      "John Developer",
			Description: "Advanced Docker topics",
			SubmittedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:      StatusRejected,
			ReviewNotes: "Needs more practical examples. Please revise and resubmit.",
		},
	)
}
