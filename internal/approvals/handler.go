package approvals

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler serves the approval queue endpoints.
type Handler struct {
	logger *slog.Logger
	store  *Store
	users  *authz.Store
	guard  authz.Middleware
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, store *Store, users *authz.Store, guard authz.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, store: store, users: users, guard: guard}
}

// MountRoutes registers approval queue routes behind the approve grant.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.guard.RequirePermission(authz.CapApprove))
	r.Get("/", h.list)
	r.Get("/{requestID}", h.details)
	r.Post("/{requestID}/approve", h.approve)
	r.Post("/{requestID}/reject", h.reject)
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		Status: Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}
	out := h.store.List(f)
	if out == nil {
		out = []Request{}
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	req, err := h.store.Get(chi.URLParam(r, "requestID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, req)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, true)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, false)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, approved bool) {
	var body reviewRequest
	if r.ContentLength > 0 {
		if err := httpx.DecodeJSON(r, &body); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
			return
		}
	}
	reviewer := h.reviewerName(r)
	id := chi.URLParam(r, "requestID")

	var (
		req Request
		err error
	)
	if approved {
		req, err = h.store.Approve(id, reviewer, body.Notes)
	} else {
		req, err = h.store.Reject(id, reviewer, body.Notes)
	}
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("approval reviewed",
		slog.String("request_id", req.ID),
		slog.String("status", string(req.Status)),
		slog.String("reviewer", reviewer))
	httpx.JSON(w, http.StatusOK, req)
}

func (h *Handler) reviewerName(r *http.Request) string {
	id, ok := h.guard.SessionUserID(r)
	if !ok {
		return ""
	}
	user, err := h.users.UserByID(id)
	if err != nil {
		return id
	}
	return user.Name
}
