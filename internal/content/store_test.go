package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsenhance/skillsenhance/internal/content"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

func TestCourseLifecycle(t *testing.T) {
	store := content.NewStore()

	course := store.CreateCourse("Terraform Basics", "Infrastructure as code from scratch", "DevOps")
	assert.Equal(t, content.StatusDraft, course.Status)

	title, description, err := store.Submit(content.TypeCourse, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Terraform Basics", title)
	assert.Equal(t, "Infrastructure as code from scratch", description)

	got, err := store.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StatusPendingApproval, got.Status)

	require.NoError(t, store.ResolveSubmission(content.TypeCourse, course.ID, true))
	got, err = store.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StatusApproved, got.Status)

	require.NoError(t, store.Publish(content.TypeCourse, course.ID))
	got, err = store.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StatusPublished, got.Status)
}

func TestPublishRequiresApproval(t *testing.T) {
	store := content.NewStore()
	course := store.CreateCourse("Draft Course", "", "General")

	err := store.Publish(content.TypeCourse, course.ID)
	require.ErrorIs(t, err, httpx.ErrConflict)
}

func TestRejectedSubmissionReturnsToDraft(t *testing.T) {
	store := content.NewStore()
	lab := store.CreateLab(content.Lab{
		Title:      "Broken Lab",
		SkillLevel: content.SkillBeginner,
		Format:     content.FormatManual,
	})

	_, _, err := store.Submit(content.TypeLab, lab.ID)
	require.NoError(t, err)
	require.NoError(t, store.ResolveSubmission(content.TypeLab, lab.ID, false))

	for _, l := range store.Labs() {
		if l.ID == lab.ID {
			assert.Equal(t, content.StatusDraft, l.Status)
			return
		}
	}
	t.Fatalf("lab %s missing", lab.ID)
}

func TestAddLessonToCourseKeepsOrder(t *testing.T) {
	store := content.NewStore()
	course := store.CreateCourse("Ordered Course", "", "General")

	_, err := store.AddLessonToCourse(course.ID, "Intro")
	require.NoError(t, err)
	got, err := store.AddLessonToCourse(course.ID, "Deep Dive")
	require.NoError(t, err)

	require.Len(t, got.Lessons, 2)
	assert.Equal(t, "Intro", got.Lessons[0].Title)
	assert.Equal(t, "Deep Dive", got.Lessons[1].Title)
}

func TestSubmitUnknownItem(t *testing.T) {
	store := content.NewStore()

	_, _, err := store.Submit(content.TypeCourse, "missing")
	require.ErrorIs(t, err, httpx.ErrNotFound)
	_, _, err = store.Submit("webinar", "1")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteCourse(t *testing.T) {
	store := content.NewStore()
	course := store.CreateCourse("Gone Soon", "", "General")

	require.NoError(t, store.DeleteCourse(course.ID))
	_, err := store.CourseByID(course.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.ErrorIs(t, store.DeleteCourse(course.ID), httpx.ErrNotFound)
}
