package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courseware/internal/models"
)

func TestResubmissionRevokesPriorDecision(t *testing.T) {
	now := time.Now()
	submission := &models.ProjectSubmission{
		ID:          "s1",
		UserID:      "u1",
		CourseID:    "c1",
		ProjectLink: "https://github.com/u/a",
		Status:      models.StatusApproved,
		Certified:   true,
		AdminNotes:  "Great work",
	}

	applyResubmission(submission, "https://github.com/u/b", now)

	assert.Equal(t, "https://github.com/u/b", submission.ProjectLink)
	assert.Equal(t, now, submission.SubmittedAt)
	assert.Equal(t, models.StatusPending, submission.Status)
	assert.False(t, submission.Certified)
	assert.Empty(t, submission.AdminNotes)
}

// The stored update and the in-memory reset must agree field for field, or a
// resubmission response would disagree with a subsequent fetch of the same
// document.
func TestResubmissionResetMatchesStoredFields(t *testing.T) {
	now := time.Now()
	submission := &models.ProjectSubmission{
		Status:     models.StatusRejected,
		AdminNotes: "Missing tests",
	}
	applyResubmission(submission, "https://github.com/u/b", now)

	stored := make(map[string]interface{})
	for _, update := range resubmissionReset("https://github.com/u/b", now) {
		stored[update.Path] = update.Value
	}

	assert.Equal(t, stored["projectLink"], submission.ProjectLink)
	assert.Equal(t, stored["submittedAt"], submission.SubmittedAt)
	assert.Equal(t, stored["status"], string(submission.Status))
	assert.Equal(t, stored["certified"], submission.Certified)
	assert.Equal(t, stored["adminNotes"], submission.AdminNotes)
	assert.Len(t, stored, 5)
}
