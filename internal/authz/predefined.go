package authz

import "time"

// Predefined role ids. These five roles always exist in a registry and are
// never removed.
const (
	RoleAdmin    = "admin"
	RoleWriter   = "writer"
	RoleApproval = "approval"
	RoleSupport  = "support"
	RoleUser     = "user"
)

// RootRoleID is the sentinel hierarchy key for roles without a parent.
const RootRoleID = "root"

// DefaultPermissions is the conservative fallback returned for unknown role
// ids: read access and support chat only.
func DefaultPermissions() PermissionSet {
	return PermissionSet{Read: true, SupportChat: true}
}

var predefinedPermissions = map[string]PermissionSet{
	RoleAdmin: {
		Create:        true,
		Read:          true,
		Update:        true,
		Delete:        true,
		Publish:       true,
		Approve:       true,
		ManageUsers:   true,
		ManageRoles:   true,
		ViewAnalytics: true,
		SupportChat:   true,
	},
	RoleWriter: {
		Create:      true,
		Read:        true,
		Update:      true,
		Delete:      true,
		Publish:     true,
		SupportChat: true,
	},
	RoleApproval: {
		Read:        true,
		Approve:     true,
		SupportChat: true,
	},
	RoleSupport: {
		Read:        true,
		SupportChat: true,
	},
	RoleUser: {
		Read:        true,
		SupportChat: true,
	},
}

func predefinedRoles(now time.Time) []Role {
	return []Role{
		{
			ID:           RoleAdmin,
			Name:         "Admin",
			Description:  "Full access to all features and management",
			Permissions:  predefinedPermissions[RoleAdmin],
			IsPredefined: true,
			CreatedAt:    now,
		},
		{
			ID:           RoleWriter,
			Name:         "Writer",
			Description:  "Can create, edit, and publish content",
			Permissions:  predefinedPermissions[RoleWriter],
			IsPredefined: true,
			CreatedAt:    now,
		},
		{
			ID:           RoleApproval,
			Name:         "Approval",
			Description:  "Can approve or reject content",
			Permissions:  predefinedPermissions[RoleApproval],
			IsPredefined: true,
			CreatedAt:    now,
		},
		{
			ID:           RoleSupport,
			Name:         "Support",
			Description:  "Can provide support and chat",
			Permissions:  predefinedPermissions[RoleSupport],
			IsPredefined: true,
			CreatedAt:    now,
		},
		{
			ID:           RoleUser,
			Name:         "User",
			Description:  "Basic read-only access",
			Permissions:  predefinedPermissions[RoleUser],
			IsPredefined: true,
			CreatedAt:    now,
		},
	}
}
