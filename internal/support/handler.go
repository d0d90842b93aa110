package support

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler exposes the ticket desk over HTTP.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	users    *authz.Store
	guard    authz.Middleware
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, store *Store, users *authz.Store, guard authz.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		store:    store,
		users:    users,
		guard:    guard,
		validate: validator.New(),
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(authz.CapSupportChat))
		r.Get("/", h.list)
		r.Post("/", h.open)
		r.Get("/{ticketID}", h.get)
		r.Post("/{ticketID}/messages", h.reply)
		r.Put("/{ticketID}/status", h.setStatus)
	})
}

type openTicketRequest struct {
	Subject  string   `json:"subject" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=technical billing account course other"`
	Priority Priority `json:"priority" validate:"required,oneof=low medium high"`
	Message  string   `json:"message" validate:"required"`
}

type replyRequest struct {
	Message string `json:"message" validate:"required"`
}

type statusRequest struct {
	Status Status `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	filter := Filter{
		Status:   Status(r.URL.Query().Get("status")),
		Priority: Priority(r.URL.Query().Get("priority")),
		Search:   r.URL.Query().Get("search"),
	}
	if !isAgent(actor) {
		filter.UserID = actor.ID
	}
	httpx.JSON(w, http.StatusOK, h.store.List(filter))
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req openTicketRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	ticket := h.store.Open(actor.ID, actor.Name, actor.Email, req.Subject, req.Category, req.Priority, req.Message)
	h.logger.Info("support ticket opened", slog.String("ticket_id", ticket.ID), slog.String("user_id", actor.ID))
	httpx.JSON(w, http.StatusCreated, ticket)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	ticket, err := h.store.Get(chi.URLParam(r, "ticketID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !isAgent(actor) && ticket.UserID != actor.ID {
		httpx.RespondError(w, httpx.ErrForbidden)
		return
	}
	httpx.JSON(w, http.StatusOK, ticket)
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var req replyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	ticketID := chi.URLParam(r, "ticketID")
	senderType := SenderUser
	if isAgent(actor) {
		senderType = SenderSupport
	} else {
		ticket, err := h.store.Get(ticketID)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		if ticket.UserID != actor.ID {
			httpx.RespondError(w, httpx.ErrForbidden)
			return
		}
	}
	ticket, err := h.store.Reply(ticketID, actor.Name, senderType, req.Message)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ticket)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if !isAgent(actor) {
		httpx.RespondError(w, httpx.ErrForbidden)
		return
	}
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	ticket, err := h.store.SetStatus(chi.URLParam(r, "ticketID"), req.Status)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("support ticket status changed",
		slog.String("ticket_id", ticket.ID),
		slog.String("status", string(ticket.Status)),
	)
	httpx.JSON(w, http.StatusOK, ticket)
}

func (h *Handler) actor(r *http.Request) (authz.User, error) {
	userID, ok := h.guard.SessionUserID(r)
	if !ok {
		return authz.User{}, httpx.ErrUnauthorized
	}
	user, err := h.users.UserByID(userID)
	if err != nil {
		return authz.User{}, httpx.ErrUnauthorized
	}
	return user, nil
}

// isAgent reports whether the user works the desk rather than raises
// tickets. Admins see everything.
func isAgent(u authz.User) bool {
	return u.HasRole(authz.RoleSupport) || u.HasRole(authz.RoleAdmin)
}
