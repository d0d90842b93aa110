// Package content owns the writer panel state: courses, lessons and labs
// with their draft-to-published lifecycle.
package content

import "time"

// Status is the authoring lifecycle of a content item.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusPublished       Status = "published"
)

// Item types used when filing approval requests.
const (
	TypeCourse = "course"
	TypeLesson = "lesson"
	TypeLab    = "lab"
)

// CourseLesson is a lesson reference inside a course outline.
type CourseLesson struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Course is a curriculum of ordered lessons.
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category,omitempty"`
	Lessons     []CourseLesson `json:"lessons"`
	Status      Status         `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// SectionType distinguishes the kinds of lesson content blocks.
type SectionType string

const (
	SectionText  SectionType = "text"
	SectionCode  SectionType = "code"
	SectionImage SectionType = "image"
)

// Section is a typed content block inside a lesson.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
	Order   int         `json:"order"`
}

// Lesson is a standalone lesson with typed content sections.
type Lesson struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillLevel grades a lab's difficulty.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// LabFormat is the delivery format of a lab.
type LabFormat string

const (
	FormatManual        LabFormat = "manual"
	FormatVideo         LabFormat = "video"
	FormatChallenge     LabFormat = "challenge"
	FormatInstructorLed LabFormat = "instructor-led"
)

// Lab is a hands-on exercise.
type Lab struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	SkillLevel    SkillLevel `json:"skillLevel"`
	EstimatedTime int        `json:"estimatedTime"`
	Format        LabFormat  `json:"format"`
	Content       string     `json:"content"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
