package content

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

// Store holds the writer panel collections in memory.
type Store struct {
	mu      sync.RWMutex
	courses []Course
	lessons []Lesson
	labs    []Lab

	now   func() time.Time
	newID func() string
}

// NewStore constructs an empty content store.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// --- Courses ---

// Courses returns every course in authoring order.
func (s *Store) Courses() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = copyCourse(c)
	}
	return out
}

// CourseByID returns the course with the given id.
func (s *Store) CourseByID(id string) (Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return copyCourse(c), nil
		}
	}
	return Course{}, fmt.Errorf("course %s: %w", id, httpx.ErrNotFound)
}

// CreateCourse adds a draft course.
func (s *Store) CreateCourse(title, description, category string) Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	course := Course{
		ID:          "course-" + s.newID(),
		Title:       title,
		Description: description,
		Category:    category,
		Lessons:     []CourseLesson{},
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.courses = append(s.courses, course)
	return copyCourse(course)
}

// AddLessonToCourse appends a lesson reference at the end of the outline.
func (s *Store) AddLessonToCourse(courseID, title string) (Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == courseID {
			s.courses[i].Lessons = append(s.courses[i].Lessons, CourseLesson{
				ID:    "lesson-" + s.newID(),
				Title: title,
				Order: len(s.courses[i].Lessons) + 1,
			})
			s.courses[i].UpdatedAt = s.now()
			return copyCourse(s.courses[i]), nil
		}
	}
	return Course{}, fmt.Errorf("course %s: %w", courseID, httpx.ErrNotFound)
}

// DeleteCourse removes a course.
func (s *Store) DeleteCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("course %s: %w", id, httpx.ErrNotFound)
}

// --- Lessons ---

// Lessons returns every standalone lesson.
func (s *Store) Lessons() []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Lesson, len(s.lessons))
	for i, l := range s.lessons {
		out[i] = copyLesson(l)
	}
	return out
}

// CreateLesson adds a draft lesson.
func (s *Store) CreateLesson(title string, sections []Section) Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = "section-" + s.newID()
		}
		sections[i].Order = i + 1
	}
	lesson := Lesson{
		ID:        "lesson-" + s.newID(),
		Title:     title,
		Sections:  sections,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.lessons = append(s.lessons, lesson)
	return copyLesson(lesson)
}

// UpdateLesson replaces a lesson's title and sections.
func (s *Store) UpdateLesson(id, title string, sections []Section) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			for j := range sections {
				if sections[j].ID == "" {
					sections[j].ID = "section-" + s.newID()
				}
				sections[j].Order = j + 1
			}
			s.lessons[i].Title = title
			s.lessons[i].Sections = sections
			s.lessons[i].UpdatedAt = s.now()
			return copyLesson(s.lessons[i]), nil
		}
	}
	return Lesson{}, fmt.Errorf("lesson %s: %w", id, httpx.ErrNotFound)
}

// DeleteLesson removes a lesson.
func (s *Store) DeleteLesson(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lessons {
		if s.lessons[i].ID == id {
			s.lessons = append(s.lessons[:i], s.lessons[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lesson %s: %w", id, httpx.ErrNotFound)
}

// --- Labs ---

// Labs returns every lab.
func (s *Store) Labs() []Lab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Lab, len(s.labs))
	copy(out, s.labs)
	return out
}

// CreateLab adds a draft lab.
func (s *Store) CreateLab(lab Lab) Lab {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	lab.ID = "lab-" + s.newID()
	lab.Status = StatusDraft
	lab.CreatedAt = now
	lab.UpdatedAt = now
	s.labs = append(s.labs, lab)
	return lab
}

// UpdateLab replaces a lab's mutable fields.
func (s *Store) UpdateLab(id string, update Lab) (Lab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.labs {
		if s.labs[i].ID == id {
			s.labs[i].Title = update.Title
			s.labs[i].Description = update.Description
			s.labs[i].SkillLevel = update.SkillLevel
			s.labs[i].EstimatedTime = update.EstimatedTime
			s.labs[i].Format = update.Format
			s.labs[i].Content = update.Content
			s.labs[i].UpdatedAt = s.now()
			return s.labs[i], nil
		}
	}
	return Lab{}, fmt.Errorf("lab %s: %w", id, httpx.ErrNotFound)
}

// DeleteLab removes a lab.
func (s *Store) DeleteLab(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.labs {
		if s.labs[i].ID == id {
			s.labs = append(s.labs[:i], s.labs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lab %s: %w", id, httpx.ErrNotFound)
}

// --- Lifecycle ---

// Submit moves a draft item to pending approval. The caller files the
// matching approval request.
func (s *Store) Submit(itemType, id string) (title, description string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch itemType {
	case TypeCourse:
		for i := range s.courses {
			if s.courses[i].ID == id {
				s.courses[i].Status = StatusPendingApproval
				s.courses[i].UpdatedAt = s.now()
				return s.courses[i].Title, s.courses[i].Description, nil
			}
		}
	case TypeLesson:
		for i := range s.lessons {
			if s.lessons[i].ID == id {
				s.lessons[i].Status = StatusPendingApproval
				s.lessons[i].UpdatedAt = s.now()
				return s.lessons[i].Title, "", nil
			}
		}
	case TypeLab:
		for i := range s.labs {
			if s.labs[i].ID == id {
				s.labs[i].Status = StatusPendingApproval
				s.labs[i].UpdatedAt = s.now()
				return s.labs[i].Title, s.labs[i].Description, nil
			}
		}
	}
	return "", "", fmt.Errorf("%s %s: %w", itemType, id, httpx.ErrNotFound)
}

// ResolveSubmission applies an approval decision: approved items move to
// approved, rejected items fall back to draft for revision. Implements the
// approval queue's resolver port.
func (s *Store) ResolveSubmission(itemType, id string, approved bool) error {
	status := StatusApproved
	if !approved {
		status = StatusDraft
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch itemType {
	case TypeCourse:
		for i := range s.courses {
			if s.courses[i].ID == id {
				s.courses[i].Status = status
				s.courses[i].UpdatedAt = s.now()
				return nil
			}
		}
	case TypeLesson:
		for i := range s.lessons {
			if s.lessons[i].ID == id {
				s.lessons[i].Status = status
				s.lessons[i].UpdatedAt = s.now()
				return nil
			}
		}
	case TypeLab:
		for i := range s.labs {
			if s.labs[i].ID == id {
				s.labs[i].Status = status
				s.labs[i].UpdatedAt = s.now()
				return nil
			}
		}
	}
	return fmt.Errorf("%s %s: %w", itemType, id, httpx.ErrNotFound)
}

// Publish moves an approved item to published.
func (s *Store) Publish(itemType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch itemType {
	case TypeCourse:
		for i := range s.courses {
			if s.courses[i].ID == id {
				if s.courses[i].Status != StatusApproved {
					return fmt.Errorf("course %s not approved: %w", id, httpx.ErrConflict)
				}
				s.courses[i].Status = StatusPublished
				s.courses[i].UpdatedAt = s.now()
				return nil
			}
		}
	case TypeLesson:
		for i := range s.lessons {
			if s.lessons[i].ID == id {
				if s.lessons[i].Status != StatusApproved {
					return fmt.Errorf("lesson %s not approved: %w", id, httpx.ErrConflict)
				}
				s.lessons[i].Status = StatusPublished
				s.lessons[i].UpdatedAt = s.now()
				return nil
			}
		}
	case TypeLab:
		for i := range s.labs {
			if s.labs[i].ID == id {
				if s.labs[i].Status != StatusApproved {
					return fmt.Errorf("lab %s not approved: %w", id, httpx.ErrConflict)
				}
				s.labs[i].Status = StatusPublished
				s.labs[i].UpdatedAt = s.now()
				return nil
			}
		}
	}
	return fmt.Errorf("%s %s: %w", itemType, id, httpx.ErrNotFound)
}

func copyCourse(c Course) Course {
	lessons := make([]CourseLesson, len(c.Lessons))
	copy(lessons, c.Lessons)
	c.Lessons = lessons
	return c
}

func copyLesson(l Lesson) Lesson {
	sections := make([]Section, len(l.Sections))
	copy(sections, l.Sections)
	l.Sections = sections
	return l
}
