// Package authz implements the in-process authorization state store: the
// role registry, the user directory and permission evaluation for the
// current actor. All state is memory resident and lost on restart.
package authz

import "time"

// Capability names a single boolean right in a PermissionSet.
type Capability string

const (
	CapCreate        Capability = "create"
	CapRead          Capability = "read"
	CapUpdate        Capability = "update"
	CapDelete        Capability = "delete"
	CapPublish       Capability = "publish"
	CapApprove       Capability = "approve"
	CapManageUsers   Capability = "manageUsers"
	CapManageRoles   Capability = "manageRoles"
	CapViewAnalytics Capability = "viewAnalytics"
	CapSupportChat   Capability = "supportChat"
)

// Capabilities lists every capability key in a stable order.
func Capabilities() []Capability {
	return []Capability{
		CapCreate,
		CapRead,
		CapUpdate,
		CapDelete,
		CapPublish,
		CapApprove,
		CapManageUsers,
		CapManageRoles,
		CapViewAnalytics,
		CapSupportChat,
	}
}

// PermissionSet is a fixed-shape record of named capabilities. The shape is
// immutable; the values are mutable per role.
type PermissionSet struct {
	Create        bool `json:"create"`
	Read          bool `json:"read"`
	Update        bool `json:"update"`
	Delete        bool `json:"delete"`
	Publish       bool `json:"publish"`
	Approve       bool `json:"approve"`
	ManageUsers   bool `json:"manageUsers"`
	ManageRoles   bool `json:"manageRoles"`
	ViewAnalytics bool `json:"viewAnalytics"`
	SupportChat   bool `json:"supportChat"`
}

// Has reports whether the named capability is granted. Unknown capability
// names are never granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CapCreate:
		return p.Create
	case CapRead:
		return p.Read
	case CapUpdate:
		return p.Update
	case CapDelete:
		return p.Delete
	case CapPublish:
		return p.Publish
	case CapApprove:
		return p.Approve
	case CapManageUsers:
		return p.ManageUsers
	case CapManageRoles:
		return p.ManageRoles
	case CapViewAnalytics:
		return p.ViewAnalytics
	case CapSupportChat:
		return p.SupportChat
	default:
		return false
	}
}

// Role is a named, reusable bundle of permissions assignable to users.
// Predefined roles cannot be renamed, edited or deleted.
type Role struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Permissions  PermissionSet `json:"permissions"`
	IsPredefined bool          `json:"isPredefined"`
	// ParentRoleID groups roles for display. It carries no permission
	// semantics: there is no inheritance along the parent chain.
	ParentRoleID string    `json:"parentRoleId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// User is an account in the directory. Permissions is a snapshot copied
// from the active role at the time it was last set, not a live derivation;
// it can drift when the role's permissions are edited afterwards.
type User struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Roles       []string      `json:"roles"`
	ActiveRole  string        `json:"activeRole"`
	Permissions PermissionSet `json:"permissions"`
	Avatar      string        `json:"avatar,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	IsActive    bool          `json:"isActive"`
}

// HasRole reports whether the user holds the given role id.
func (u User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
