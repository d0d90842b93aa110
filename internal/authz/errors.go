package authz

import "github.com/skillsenhance/skillsenhance/internal/shared"

// The domain sentinels are declared in shared so the HTTP error mapper can
// reference them without depending on this package; they are re-exported
// here because callers of the store work in authz terms.
var (
	ErrRoleNotFound       = shared.ErrRoleNotFound
	ErrUserNotFound       = shared.ErrUserNotFound
	ErrRoleNotHeld        = shared.ErrRoleNotHeld
	ErrRolePredefined     = shared.ErrRolePredefined
	ErrRoleInUse          = shared.ErrRoleInUse
	ErrLastRole           = shared.ErrLastRole
	ErrInvalidCredentials = shared.ErrInvalidCredentials
)
