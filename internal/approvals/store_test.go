package approvals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsenhance/skillsenhance/internal/approvals"
	"github.com/skillsenhance/skillsenhance/internal/content"
	"github.com/skillsenhance/skillsenhance/internal/platform/httpx"
)

type recordingResolver struct {
	itemType string
	refID    string
	approved bool
	calls    int
}

func (r *recordingResolver) ResolveSubmission(itemType, refID string, approved bool) error {
	r.itemType = itemType
	r.refID = refID
	r.approved = approved
	r.calls++
	return nil
}

func TestApproveResolvesSubmission(t *testing.T) {
	resolver := &recordingResolver{}
	store := approvals.NewStore(resolver)

	req := store.File("Terraform Basics", "course", "c-1", "Sarah Writer", "IaC intro")
	assert.Equal(t, approvals.StatusPending, req.Status)

	got, err := store.Approve(req.ID, "John Approver", "looks good")
	require.NoError(t, err)
	assert.Equal(t, approvals.StatusApproved, got.Status)
	assert.Equal(t, "John Approver", got.ReviewedBy)
	assert.Equal(t, "looks good", got.ReviewNotes)

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "course", resolver.itemType)
	assert.Equal(t, "c-1", resolver.refID)
	assert.True(t, resolver.approved)
}

func TestRejectRequiresNotes(t *testing.T) {
	resolver := &recordingResolver{}
	store := approvals.NewStore(resolver)
	req := store.File("Broken Lab", "lab", "l-1", "Sarah Writer", "")

	_, err := store.Reject(req.ID, "John Approver", "   ")
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Zero(t, resolver.calls)

	got, err := store.Reject(req.ID, "John Approver", "please revise the cleanup step")
	require.NoError(t, err)
	assert.Equal(t, approvals.StatusRejected, got.Status)
	assert.False(t, resolver.approved)
}

func TestDecideOnlyOncePerRequest(t *testing.T) {
	store := approvals.NewStore(&recordingResolver{})
	req := store.File("Course", "course", "c-1", "Sarah Writer", "")

	_, err := store.Approve(req.ID, "John Approver", "")
	require.NoError(t, err)
	_, err = store.Approve(req.ID, "John Approver", "")
	require.ErrorIs(t, err, httpx.ErrConflict)
	_, err = store.Reject(req.ID, "John Approver", "too late")
	require.ErrorIs(t, err, httpx.ErrConflict)
}

func TestListFilterAndSearch(t *testing.T) {
	store := approvals.NewStore(&recordingResolver{})
	store.SeedDemoRequests()

	pending := store.List(approvals.Filter{Status: approvals.StatusPending})
	require.NotEmpty(t, pending)
	for _, r := range pending {
		assert.Equal(t, approvals.StatusPending, r.Status)
	}

	// Search is case-insensitive across title and author.
	found := store.List(approvals.Filter{Search: "aws ec2"})
	require.Len(t, found, 1)
	assert.Equal(t, "AWS EC2 Deployment Lab", found[0].Title)

	assert.Equal(t, len(pending), store.PendingCount())
}

func TestApprovalDrivesContentStatus(t *testing.T) {
	contentStore := content.NewStore()
	store := approvals.NewStore(contentStore)

	course := contentStore.CreateCourse("Kubernetes Operators", "CRDs and controllers", "DevOps")
	title, description, err := contentStore.Submit(content.TypeCourse, course.ID)
	require.NoError(t, err)
	req := store.File(title, content.TypeCourse, course.ID, "Sarah Writer", description)

	_, err = store.Approve(req.ID, "John Approver", "")
	require.NoError(t, err)

	got, err := contentStore.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, content.StatusApproved, got.Status)
	require.NoError(t, contentStore.Publish(content.TypeCourse, course.ID))
}
