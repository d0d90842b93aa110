package content

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/skillsenhance/skillsenhance/internal/approvals"
	"github.com/skillsenhance/skillsenhance/internal/authz"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Handler serves the writer panel endpoints.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	queue    *approvals.Store
	users    *authz.Store
	guard    authz.Middleware
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, store *Store, queue *approvals.Store, users *authz.Store, guard authz.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		store:    store,
		queue:    queue,
		users:    users,
		guard:    guard,
		validate: validator.New(),
	}
}

// MountRoutes registers writer panel routes. Reading needs read, authoring
// needs create, publishing needs publish.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(authz.CapRead))
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{courseID}", h.courseDetails)
		r.Get("/lessons", h.listLessons)
		r.Get("/labs", h.listLabs)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(authz.CapCreate))
		r.Post("/courses", h.createCourse)
		r.Post("/courses/{courseID}/lessons", h.addCourseLesson)
		r.Delete("/courses/{courseID}", h.deleteCourse)
		r.Post("/lessons", h.createLesson)
		r.Put("/lessons/{lessonID}", h.updateLesson)
		r.Delete("/lessons/{lessonID}", h.deleteLesson)
		r.Post("/labs", h.createLab)
		r.Put("/labs/{labID}", h.updateLab)
		r.Delete("/labs/{labID}", h.deleteLab)
		r.Post("/courses/{itemID}/submit", h.submitFor(TypeCourse))
		r.Post("/lessons/{itemID}/submit", h.submitFor(TypeLesson))
		r.Post("/labs/{itemID}/submit", h.submitFor(TypeLab))
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequirePermission(authz.CapPublish))
		r.Post("/courses/{itemID}/publish", h.publishFor(TypeCourse))
		r.Post("/lessons/{itemID}/publish", h.publishFor(TypeLesson))
		r.Post("/labs/{itemID}/publish", h.publishFor(TypeLab))
	})
}

type coursePayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type courseLessonPayload struct {
	Title string `json:"title" validate:"required"`
}

type lessonPayload struct {
	Title    string    `json:"title" validate:"required"`
	Sections []Section `json:"sections" validate:"dive"`
}

type labPayload struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	SkillLevel    SkillLevel `json:"skillLevel" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedTime int        `json:"estimatedTime" validate:"gte=0"`
	Format        LabFormat  `json:"format" validate:"required,oneof=manual video challenge instructor-led"`
	Content       string     `json:"content"`
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Courses())
}

func (h *Handler) courseDetails(w http.ResponseWriter, r *http.Request) {
	course, err := h.store.CourseByID(chi.URLParam(r, "courseID"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, course)
}

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req coursePayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	course := h.store.CreateCourse(req.Title, req.Description, req.Category)
	httpx.JSON(w, http.StatusCreated, course)
}

func (h *Handler) addCourseLesson(w http.ResponseWriter, r *http.Request) {
	var req courseLessonPayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	course, err := h.store.AddLessonToCourse(chi.URLParam(r, "courseID"), req.Title)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, course)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCourse(chi.URLParam(r, "courseID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) listLessons(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Lessons())
}

func (h *Handler) createLesson(w http.ResponseWriter, r *http.Request) {
	var req lessonPayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, h.store.CreateLesson(req.Title, req.Sections))
}

func (h *Handler) updateLesson(w http.ResponseWriter, r *http.Request) {
	var req lessonPayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	lesson, err := h.store.UpdateLesson(chi.URLParam(r, "lessonID"), req.Title, req.Sections)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lesson)
}

func (h *Handler) deleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteLesson(chi.URLParam(r, "lessonID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) listLabs(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Labs())
}

func (h *Handler) createLab(w http.ResponseWriter, r *http.Request) {
	var req labPayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	lab := h.store.CreateLab(Lab{
		Title:         req.Title,
		Description:   req.Description,
		SkillLevel:    req.SkillLevel,
		EstimatedTime: req.EstimatedTime,
		Format:        req.Format,
		Content:       req.Content,
	})
	httpx.JSON(w, http.StatusCreated, lab)
}

func (h *Handler) updateLab(w http.ResponseWriter, r *http.Request) {
	var req labPayload
	if err := h.decodeValid(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	lab, err := h.store.UpdateLab(chi.URLParam(r, "labID"), Lab{
		Title:         req.Title,
		Description:   req.Description,
		SkillLevel:    req.SkillLevel,
		EstimatedTime: req.EstimatedTime,
		Format:        req.Format,
		Content:       req.Content,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lab)
}

func (h *Handler) deleteLab(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteLab(chi.URLParam(r, "labID")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.NoContent(w)
}

// submitFor moves a draft into the approval queue and files the request
// under the submitting writer's name.
func (h *Handler) submitFor(itemType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		title, description, err := h.store.Submit(itemType, itemID)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		req := h.queue.File(title, itemType, itemID, h.authorName(r), description)
		h.logger.Info("content submitted for approval",
			slog.String("type", itemType),
			slog.String("item_id", itemID),
			slog.String("request_id", req.ID))
		httpx.JSON(w, http.StatusAccepted, req)
	}
}

func (h *Handler) publishFor(itemType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Publish(itemType, chi.URLParam(r, "itemID")); err != nil {
			httpx.RespondError(w, err)
			return
		}
		httpx.NoContent(w)
	}
}

func (h *Handler) decodeValid(r *http.Request, target any) error {
	if err := httpx.DecodeJSON(r, target); err != nil {
		return httpx.ErrValidation
	}
	return h.validate.Struct(target)
}

func (h *Handler) authorName(r *http.Request) string {
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
