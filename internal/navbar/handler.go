package navbar

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler serves the navbar configuration endpoint pair.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, store: store, validate: validator.New()}
}

// MountRoutes registers the navbar config routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.getConfig)
	r.Put("/", h.updateConfig)
}

type updateResponse struct {
	Success bool   `json:"success"`
	Config  Config `json:"config"`
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Get())
}

func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validate.Struct(patch); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid position value")
		return
	}
	cfg := h.store.Apply(patch)
	h.logger.Info("navbar config updated", slog.String("position", cfg.Position))
	httpx.JSON(w, http.StatusOK, updateResponse{Success: true, Config: cfg})
}
