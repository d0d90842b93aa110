package support

import "time"

// SeedDemoTickets loads the demo ticket desk.
func (s *Store) SeedDemoTickets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets,
		Ticket{
			ID:        "1",
			UserID:    "5",
			UserName:  "Alice User",
			UserEmail: "alice@skillsenhance.com",
			Subject:   "Cannot access AWS lab environment",
			Category:  CategoryTechnical,
			Priority:  PriorityHigh,
			Status:    StatusOpen,
			CreatedAt: time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC),
			Messages: []Message{{
				ID:         "1",
				Sender:     "Alice User",
				SenderType: SenderUser,
				Body:       "The EC2 lab console shows a blank screen after I click Start Lab. I have tried two browsers.",
				Timestamp:  time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC),
			}},
		},
		Ticket{
			ID:        "2",
			UserID:    "2",
			UserName:  "Sarah Writer",
			UserEmail: "sarah@skillsenhance.com",
			Subject:   "Invoice for March subscription",
			Category:  CategoryBilling,
			Priority:  PriorityMedium,
			Status:    StatusInProgress,
			CreatedAt: time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 9, 10, 5, 0, 0, time.UTC),
			Messages: []Message{
				{
					ID:         "2",
					Sender:     "Sarah Writer",
					SenderType: SenderUser,
					Body:       "I need a copy of my March invoice for expense reporting.",
					Timestamp:  time.Date(2024, 3, 8, 14, 30, 0, 0, time.UTC),
				},
				{
					ID:         "3",
					Sender:     "Mike Support",
					SenderType: SenderSupport,
					Body:       "Happy to help. I have forwarded the invoice to your registered email, please confirm you received it.",
					Timestamp:  time.Date(2024, 3, 9, 10, 5, 0, 0, time.UTC),
				},
			},
		},
		Ticket{
			ID:        "3",
			UserID:    "5",
			UserName:  "Alice User",
			UserEmail: "alice@skillsenhance.com",
			Subject:   "Exam voucher not showing in account",
			Category:  CategoryAccount,
			Priority:  PriorityLow,
			Status:    StatusResolved,
			CreatedAt: time.Date(2024, 2, 28, 11, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 1, 16, 45, 0, 0, time.UTC),
			Messages: []Message{
				{
					ID:         "4",
					Sender:     "Alice User",
					SenderType: SenderUser,
					Body:       "I redeemed an exam voucher last week but it is not listed under my account.",
					Timestamp:  time.Date(2024, 2, 28, 11, 0, 0, 0, time.UTC),
				},
				{
					ID:         "5",
					Sender:     "Mike Support",
					SenderType: SenderSupport,
					Body:       "The voucher was stuck in processing. It now shows under Exam Vouchers, sorry for the delay.",
					Timestamp:  time.Date(2024, 3, 1, 16, 45, 0, 0, time.UTC),
				},
			},
		},
	)
}
