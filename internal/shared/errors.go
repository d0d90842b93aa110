package shared

import "errors"

// Sentinels for the authorization domain. They live here so the HTTP error
// mapper can translate them without importing the domain package.
var (
	// ErrRoleNotFound indicates the role id is not in the registry.
	ErrRoleNotFound = errors.New("role not found")
	// ErrUserNotFound indicates the user id is not in the directory.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotHeld indicates the user does not hold the role.
	ErrRoleNotHeld = errors.New("role not held by user")
	// ErrRolePredefined indicates a mutation on a built-in role.
	ErrRolePredefined = errors.New("predefined role is immutable")
	// ErrRoleInUse indicates a delete on a role still held by users.
	ErrRoleInUse = errors.New("role still assigned to users")
	// ErrLastRole indicates a removal that would leave a user roleless.
	ErrLastRole = errors.New("cannot remove last role")
	// ErrInvalidCredentials indicates a login that matched no account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
