package authz

import "time"

// SeedDemoUsers loads the demo directory used by the Skills Enhance
// deployment. IDs are stable so the panels and tests can reference them.
func (s *Store) SeedDemoUsers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := []User{
		{
			ID:          "1",
			Name:        "Karan Jain",
			Email:       "karan@skillsenhance.com",
			Roles:       []string{RoleAdmin, RoleWriter},
			ActiveRole:  RoleAdmin,
			Permissions: predefinedPermissions[RoleAdmin],
			Avatar:      "KJ",
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Sarah Writer",
			Email:       "sarah@skillsenhance.com",
			Roles:       []string{RoleWriter},
			ActiveRole:  RoleWriter,
			Permissions: predefinedPermissions[RoleWriter],
			Avatar:      "SW",
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "3",
			Name:        "John Approver",
			Email:       "john@skillsenhance.com",
			Roles:       []string{RoleApproval, RoleSupport},
			ActiveRole:  RoleApproval,
			Permissions: predefinedPermissions[RoleApproval],
			Avatar:      "JA",
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "4",
			Name:        "Mike Support",
			Email:       "mike@skillsenhance.com",
			Roles:       []string{RoleSupport},
			ActiveRole:  RoleSupport,
			Permissions: predefinedPermissions[RoleSupport],
			Avatar:      "MS",
			CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
		{
			ID:          "5",
			Name:        "Alice User",
			Email:       "alice@skillsenhance.com",
			Roles:       []string{RoleUser},
			ActiveRole:  RoleUser,
			Permissions: predefinedPermissions[RoleUser],
			Avatar:      "AU",
			CreatedAt:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			IsActive:    true,
		},
	}
	s.users = append(s.users, seed...)
}
