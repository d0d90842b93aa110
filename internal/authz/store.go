package authz

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the role registry, the user directory and the current-actor
// slot. It is constructed once at process start and injected into every
// caller; there is no ambient singleton.
//
// Handlers run concurrently, so the store carries a lock. Semantics stay
// last-write-wins with no conflict detection between callers.
type Store struct {
	mu      sync.RWMutex
	roles   []Role
	users   []User
	current string // user id of the current actor, "" when logged out

	now   func() time.Time
	newID func() string
}

// NewStore constructs a store seeded with the five predefined roles and an
// empty user directory.
func NewStore() *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	s.roles = predefinedRoles(s.now())
	return s
}

// SetClock overrides the store clock. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// --- Role registry ---

// Roles returns every role in registry order.
func (s *Store) Roles() []Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Role, len(s.roles))
	for i, r := range s.roles {
		out[i] = r
	}
	return out
}

// RoleDetails returns the role with the given id.
func (s *Store) RoleDetails(roleID string) (Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.roleIndex(roleID); i >= 0 {
		return s.roles[i], nil
	}
	return Role{}, ErrRoleNotFound
}

// PermissionsForRole resolves the permission set for a role id. It never
// fails: unknown ids resolve to the conservative default set.
func (s *Store) PermissionsForRole(roleID string) PermissionSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissionsForRoleLocked(roleID)
}

func (s *Store) permissionsForRoleLocked(roleID string) PermissionSet {
	if i := s.roleIndex(roleID); i >= 0 {
		return s.roles[i].Permissions
	}
	return DefaultPermissions()
}

// AddCustomRole creates a custom role with a freshly generated id and
// appends it to the registry. Existing users are unaffected.
func (s *Store) AddCustomRole(name, description string, perms PermissionSet, parentRoleID string) (Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	role := Role{
		ID:           "custom-" + s.newID(),
		Name:         name,
		Description:  description,
		Permissions:  perms,
		ParentRoleID: parentRoleID,
		CreatedAt:    s.now(),
	}
	s.roles = append(s.roles, role)
	return role, nil
}

// EditCustomRole updates a custom role in place. Users whose active role is
// the edited role get their permission snapshot refreshed; users holding it
// as a non-active membership keep their stale snapshot until they switch.
func (s *Store) EditCustomRole(roleID, name, description string, perms PermissionSet, parentRoleID string) (Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.roleIndex(roleID)
	if i < 0 {
		return Role{}, ErrRoleNotFound
	}
	if s.roles[i].IsPredefined {
		return Role{}, ErrRolePredefined
	}
	s.roles[i].Name = name
	s.roles[i].Description = description
	s.roles[i].Permissions = perms
	s.roles[i].ParentRoleID = parentRoleID
	for j := range s.users {
		if s.users[j].ActiveRole == roleID {
			s.users[j].Permissions = perms
		}
	}
	return s.roles[i], nil
}

// DeleteCustomRole removes a custom role from the registry. Predefined
// roles are immutable, and a role still assigned to users cannot be
// deleted, so the directory never holds dangling role references.
func (s *Store) DeleteCustomRole(roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.roleIndex(roleID)
	if i < 0 {
		return ErrRoleNotFound
	}
	if s.roles[i].IsPredefined {
		return ErrRolePredefined
	}
	for _, u := range s.users {
		if u.HasRole(roleID) {
			return ErrRoleInUse
		}
	}
	s.roles = append(s.roles[:i], s.roles[i+1:]...)
	return nil
}

// RoleHierarchy groups roles by parent id. Roles without a parent are
// grouped under RootRoleID. Display metadata only.
func (s *Store) RoleHierarchy() map[string][]Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hierarchy := make(map[string][]Role)
	for _, r := range s.roles {
		parent := r.ParentRoleID
		if parent == "" {
			parent = RootRoleID
		}
		hierarchy[parent] = append(hierarchy[parent], r)
	}
	return hierarchy
}

func (s *Store) roleIndex(roleID string) int {
	for i, r := range s.roles {
		if r.ID == roleID {
			return i
		}
	}
	return -1
}

// --- User directory ---

// Users returns every user in directory order.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = copyUser(u)
	}
	return out
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(userID string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(userID); i >= 0 {
		return copyUser(s.users[i]), nil
	}
	return User{}, ErrUserNotFound
}

// UserByEmail returns the user with the given email, matched exactly.
func (s *Store) UserByEmail(email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return User{}, ErrUserNotFound
}

// Signup creates an account with the single predefined "user" role and
// makes it the current actor. The password is accepted but neither stored
// nor validated; credential security sits outside this trust boundary.
func (s *Store) Signup(name, email, _ string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := User{
		ID:          "user-" + s.newID(),
		Name:        name,
		Email:       email,
		Roles:       []string{RoleUser},
		ActiveRole:  RoleUser,
		Permissions: s.permissionsForRoleLocked(RoleUser),
		Avatar:      avatarInitials(name),
		CreatedAt:   s.now(),
		IsActive:    true,
	}
	s.users = append(s.users, user)
	s.current = user.ID
	return copyUser(user), nil
}

// Login matches an account by exact email and makes it the current actor.
// The password plays no part in matching. On no match the current actor is
// left unchanged and ErrInvalidCredentials is returned.
func (s *Store) Login(email, _ string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			s.current = u.ID
			return copyUser(u), nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Logout clears the current actor.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
}

// CurrentUser returns the current actor, or false when logged out.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return User{}, false
	}
	if i := s.userIndex(s.current); i >= 0 {
		return copyUser(s.users[i]), true
	}
	return User{}, false
}

// SetCurrentUser points the current-actor slot at an existing user, or
// clears it when userID is empty. Used to rebind a session to the store.
func (s *Store) SetCurrentUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if userID == "" {
		s.current = ""
		return nil
	}
	if s.userIndex(userID) < 0 {
		return ErrUserNotFound
	}
	s.current = userID
	return nil
}

// UpdateUserRole replaces the user's entire role set with the single given
// role, makes it active and resets the permission snapshot. A hard reset:
// any other roles the user held are discarded.
func (s *Store) UpdateUserRole(userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return ErrUserNotFound
	}
	if s.roleIndex(roleID) < 0 {
		return ErrRoleNotFound
	}
	s.users[i].Roles = []string{roleID}
	s.users[i].ActiveRole = roleID
	s.users[i].Permissions = s.permissionsForRoleLocked(roleID)
	return nil
}

// AddRoleToUser appends a role to the user's set. The active role and the
// permission snapshot do not change. Idempotent when already held.
func (s *Store) AddRoleToUser(userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return ErrUserNotFound
	}
	if s.roleIndex(roleID) < 0 {
		return ErrRoleNotFound
	}
	if s.users[i].HasRole(roleID) {
		return nil
	}
	s.users[i].Roles = append(s.users[i].Roles, roleID)
	return nil
}

// RemoveRoleFromUser removes a role from the user's set. A user can never
// be left roleless. When the removed role was active, the first remaining
// role becomes active; the permission snapshot is deliberately NOT
// refreshed on this implicit switch and keeps reflecting the removed role
// until an explicit SwitchActiveRole call.
func (s *Store) RemoveRoleFromUser(userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return ErrUserNotFound
	}
	u := &s.users[i]
	if !u.HasRole(roleID) {
		return ErrRoleNotHeld
	}
	if len(u.Roles) == 1 {
		return ErrLastRole
	}
	remaining := make([]string, 0, len(u.Roles)-1)
	for _, r := range u.Roles {
		if r != roleID {
			remaining = append(remaining, r)
		}
	}
	u.Roles = remaining
	if u.ActiveRole == roleID {
		u.ActiveRole = remaining[0]
	}
	return nil
}

// SwitchActiveRole makes a held role active and refreshes the permission
// snapshot from the registry. When the target is also the current actor
// the actor sees the switch immediately.
func (s *Store) SwitchActiveRole(userID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return ErrUserNotFound
	}
	if !s.users[i].HasRole(roleID) {
		return ErrRoleNotHeld
	}
	s.users[i].ActiveRole = roleID
	s.users[i].Permissions = s.permissionsForRoleLocked(roleID)
	return nil
}

// UpdateUserPermissions overwrites a user's permission snapshot directly,
// bypassing role derivation. An escape hatch for per-user overrides; the
// snapshot diverges from the role registry immediately.
func (s *Store) UpdateUserPermissions(userID string, perms PermissionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return ErrUserNotFound
	}
	s.users[i].Permissions = perms
	return nil
}

// UsersByRole returns every user whose role set contains the given role.
func (s *Store) UsersByRole(roleID string) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []User
	for _, u := range s.users {
		if u.HasRole(roleID) {
			out = append(out, copyUser(u))
		}
	}
	return out
}

func (s *Store) userIndex(userID string) int {
	for i, u := range s.users {
		if u.ID == userID {
			return i
		}
	}
	return -1
}

// --- Permission evaluation ---

// HasPermission reports whether the current actor's snapshot grants the
// capability. Logged out means never.
func (s *Store) HasPermission(c Capability) bool {
	u, ok := s.CurrentUser()
	if !ok {
		return false
	}
	return u.Permissions.Has(c)
}

// UserHasPermission reports whether the given user's snapshot grants the
// capability. Unknown users are never granted anything.
func (s *Store) UserHasPermission(userID string, c Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(userID); i >= 0 {
		return s.users[i].Permissions.Has(c)
	}
	return false
}

// CanCreateContent reports the current actor's create capability.
func (s *Store) CanCreateContent() bool { return s.HasPermission(CapCreate) }

// CanApproveContent reports the current actor's approve capability.
func (s *Store) CanApproveContent() bool { return s.HasPermission(CapApprove) }

// CanManageUsers reports the current actor's manageUsers capability.
func (s *Store) CanManageUsers() bool { return s.HasPermission(CapManageUsers) }

// CanSeeAnalytics reports the current actor's viewAnalytics capability.
func (s *Store) CanSeeAnalytics() bool { return s.HasPermission(CapViewAnalytics) }


func copyUser(u User) User {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	u.Roles = roles
	return u
}

func avatarInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteRune([]rune(strings.ToUpper(word))[0])
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
