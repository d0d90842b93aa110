// Package roles exposes the role management endpoints of the admin panel.
package roles

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler manages role registry endpoints.
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

// MountRoutes registers role routes. Everything sits behind manageRoles.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.guard.RequirePermission(authz.CapManageRoles))
	r.Get("/", h.listRoles)
	r.Post("/", h.createRole)
	r.Get("/hierarchy", h.roleHierarchy)
	r.Get("/{roleID}", h.roleDetails)
	r.Put("/{roleID}", h.updateRole)
	r.Delete("/{roleID}", h.deleteRole)
	r.Get("/{roleID}/users", h.roleUsers)
}

type rolePayload struct {
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	Permissions  authz.PermissionSet `json:"permissions"`
	ParentRoleID string              `json:"parentRoleId"`
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Roles())
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var req rolePayload
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.store.AddCustomRole(req.Name, req.Description, req.Permissions, req.ParentRoleID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("custom role created", slog.String("role_id", role.ID), slog.String("name", role.Name))
	httpx.JSON(w, http.StatusCreated, role)
}

func (h *Handler) roleDetails(w http.ResponseWriter, r *http.Request) {
	role, err := h.store.RoleDetails(chi.URLParam(r, "roleID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, role)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req rolePayload
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	role, err := h.store.EditCustomRole(chi.URLParam(r, "roleID"), req.Name, req.Description, req.Permissions, req.ParentRoleID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, role)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "roleID")
	if err := h.store.DeleteCustomRole(roleID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("custom role deleted", slog.String("role_id", roleID))
	httpx.NoContent(w)
}

func (h *Handler) roleHierarchy(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.RoleHierarchy())
}

func (h *Handler) roleUsers(w http.ResponseWriter, r *http.Request) {
	users := h.store.UsersByRole(chi.URLParam(r, "roleID"))
	if users == nil {
		users = []authz.User{}
	}
	httpx.JSON(w, http.StatusOK, users)
}
