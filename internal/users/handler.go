// Package users exposes the user directory endpoints of the admin panel.
package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler manages user management endpoints.
type Handler struct {
	logger   *slog.Logger
	store    *authz.Store
	guard    authz.Middleware
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, store *authz.Store, guard authz.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, store: store, guard: guard, validate: validator.New()}
}

// MountRoutes registers user directory routes. Role assignment needs
// manageUsers; switching your own active role only needs a session.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(authz.CapManageUsers))
		r.Get("/", h.listUsers)
		r.Get("/{userID}", h.userDetails)
		r.Put("/{userID}/role", h.replaceRole)
		r.Post("/{userID}/roles/{roleID}", h.addRole)
		r.Delete("/{userID}/roles/{roleID}", h.removeRole)
		r.Put("/{userID}/permissions", h.overridePermissions)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireUser)
		r.Post("/{userID}/active-role", h.switchActiveRole)
	})
}

type replaceRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Users())
}

func (h *Handler) userDetails(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.UserByID(chi.URLParam(r, "userID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// replaceRole is the hard reset: the user ends up holding exactly the one
// given role.
func (h *Handler) replaceRole(w http.ResponseWriter, r *http.Request) {
	var req replaceRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	userID := chi.URLParam(r, "userID")
	if err := h.store.UpdateUserRole(userID, req.Role); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("user role replaced", slog.String("user_id", userID), slog.String("role", req.Role))
	h.respondUser(w, userID)
}

func (h *Handler) addRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.store.AddRoleToUser(userID, chi.URLParam(r, "roleID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.respondUser(w, userID)
}

func (h *Handler) removeRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.store.RemoveRoleFromUser(userID, chi.URLParam(r, "roleID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.respondUser(w, userID)
}

func (h *Handler) switchActiveRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if caller, ok := h.guard.SessionUserID(r); !ok || (caller != userID && !h.store.UserHasPermission(caller, authz.CapManageUsers)) {
		httpx.Problem(w, http.StatusForbidden, "Forbidden", "can only switch your own active role")
		return
	}
	var req switchRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.store.SwitchActiveRole(userID, req.Role); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.respondUser(w, userID)
}

func (h *Handler) overridePermissions(w http.ResponseWriter, r *http.Request) {
	var perms authz.PermissionSet
	if err := httpx.DecodeJSON(r, &perms); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	userID := chi.URLParam(r, "userID")
	if err := h.store.UpdateUserPermissions(userID, perms); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("user permissions overridden", slog.String("user_id", userID))
	h.respondUser(w, userID)
}

func (h *Handler) respondUser(w http.ResponseWriter, userID string) {
	user, err := h.store.UserByID(userID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
