package certification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courseware/internal/apperrors"
	"courseware/internal/models"
	"courseware/internal/progress"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetCourseByID(id string) (*models.Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *mockStore) GetUserCourseProgress(userID, courseID string) (*progress.CourseProgress, error) {
	args := m.Called(userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progress.CourseProgress), args.Error(1)
}

func (m *mockStore) GetSubmission(userID, courseID string) (*models.ProjectSubmission, error) {
	args := m.Called(userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectSubmission), args.Error(1)
}

func (m *mockStore) UpsertSubmission(userID, courseID, projectLink string) (*models.ProjectSubmission, error) {
	args := m.Called(userID, courseID, projectLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectSubmission), args.Error(1)
}

func (m *mockStore) GetSubmissionByID(id string) (*models.ProjectSubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectSubmission), args.Error(1)
}

func (m *mockStore) UpdateSubmissionDecision(id string, status models.SubmissionStatus, notes string, certified bool) error {
	args := m.Called(id, status, notes, certified)
	return args.Error(0)
}

func (m *mockStore) ListSubmissions(status models.SubmissionStatus) ([]*models.ProjectSubmission, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProjectSubmission), args.Error(1)
}

func (m *mockStore) ListCertifications(userID string) ([]*models.ProjectSubmission, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProjectSubmission), args.Error(1)
}

func (m *mockStore) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func projectCourse(id string) *models.Course {
	return &models.Course{ID: id, Title: "Web Development", RequiresProject: true}
}

func courseProgressOf(course *models.Course, completed, total int) *progress.CourseProgress {
	return &progress.CourseProgress{
		Course:             course,
		CompletedVideos:    completed,
		TotalVideos:        total,
		ProgressPercentage: progress.Percentage(completed, total),
	}
}

func TestSubmitProjectRejectsEmptyLink(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, nil)

	_, err := svc.SubmitProject(&models.SubmitProjectRequest{
		UserID:      uuid.NewString(),
		CourseID:    uuid.NewString(),
		ProjectLink: "",
	})
	assert.Equal(t, apperrors.EmptyProjectLinkError, err)

	// Malformed URLs are rejected too.
	_, err = svc.SubmitProject(&models.SubmitProjectRequest{
		UserID:      uuid.NewString(),
		CourseID:    uuid.NewString(),
		ProjectLink: "not a url",
	})
	assert.Equal(t, apperrors.EmptyProjectLinkError, err)

	// No store call happened: nothing was created or updated.
	store.AssertNotCalled(t, "UpsertSubmission", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitProjectRejectsIncompleteCourse(t *testing.T) {
	userID, courseID := uuid.NewString(), uuid.NewString()
	course := projectCourse(courseID)

	store := new(mockStore)
	store.On("GetCourseByID", courseID).Return(course, nil)
	store.On("GetUserCourseProgress", userID, courseID).Return(courseProgressOf(course, 3, 4), nil)

	svc := NewService(store, nil)
	_, err := svc.SubmitProject(&models.SubmitProjectRequest{
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: "https://github.com/u/r",
	})

	assert.Equal(t, apperrors.NotEligibleError, err)
	store.AssertNotCalled(t, "UpsertSubmission", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitProjectRejectsCourseWithoutProject(t *testing.T) {
	userID, courseID := uuid.NewString(), uuid.NewString()

	store := new(mockStore)
	store.On("GetCourseByID", courseID).Return(&models.Course{ID: courseID, RequiresProject: false}, nil)

	svc := NewService(store, nil)
	_, err := svc.SubmitProject(&models.SubmitProjectRequest{
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: "https://github.com/u/r",
	})

	assert.Equal(t, apperrors.NoProjectRequiredError, err)
}

func TestSubmitProjectUpsertsWhenEligible(t *testing.T) {
	userID, courseID := uuid.NewString(), uuid.NewString()
	course := projectCourse(courseID)
	link := "https://github.com/u/r"

	expected := &models.ProjectSubmission{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: link,
		Status:      models.StatusPending,
		Certified:   false,
		SubmittedAt: time.Now(),
	}

	store := new(mockStore)
	store.On("GetCourseByID", courseID).Return(course, nil)
	store.On("GetUserCourseProgress", userID, courseID).Return(courseProgressOf(course, 3, 3), nil)
	store.On("UpsertSubmission", userID, courseID, link).Return(expected, nil).Once()

	svc := NewService(store, nil)
	submission, err := svc.SubmitProject(&models.SubmitProjectRequest{
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: link,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, submission.Status)
	assert.False(t, submission.Certified)
	store.AssertExpectations(t)
}

func TestReviewSubmissionApprove(t *testing.T) {
	submissionID := uuid.NewString()
	submission := &models.ProjectSubmission{
		ID:       submissionID,
		UserID:   uuid.NewString(),
		CourseID: uuid.NewString(),
		Status:   models.StatusPending,
	}

	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(submission, nil)
	store.On("UpdateSubmissionDecision", submissionID, models.StatusApproved, "Great work", true).Return(nil).Once()

	svc := NewService(store, nil)
	reviewed, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     models.DecisionApprove,
		Notes:        "Great work",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, reviewed.Status)
	assert.True(t, reviewed.Certified)
	assert.Equal(t, "Great work", reviewed.AdminNotes)
	store.AssertExpectations(t)
}

func TestReviewSubmissionRejectRequiresNotes(t *testing.T) {
	submissionID := uuid.NewString()
	submission := &models.ProjectSubmission{ID: submissionID, Status: models.StatusPending}

	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(submission, nil)

	svc := NewService(store, nil)
	_, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     models.DecisionReject,
		Notes:        "",
	})

	assert.Equal(t, apperrors.MissingRejectionNoteError, err)
	assert.Equal(t, models.StatusPending, submission.Status)
	store.AssertNotCalled(t, "UpdateSubmissionDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewSubmissionReject(t *testing.T) {
	submissionID := uuid.NewString()
	submission := &models.ProjectSubmission{ID: submissionID, Status: models.StatusPending, Certified: false}

	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(submission, nil)
	store.On("UpdateSubmissionDecision", submissionID, models.StatusRejected, "Missing tests", false).Return(nil).Once()

	svc := NewService(store, nil)
	reviewed, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     models.DecisionReject,
		Notes:        "Missing tests",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, reviewed.Status)
	assert.False(t, reviewed.Certified)
	store.AssertExpectations(t)
}

func TestReviewSubmissionRejectsUnknownDecision(t *testing.T) {
	submissionID := uuid.NewString()
	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(&models.ProjectSubmission{ID: submissionID}, nil)

	svc := NewService(store, nil)
	_, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     "escalate",
	})

	assert.Equal(t, apperrors.InvalidDecisionError, err)
}

type recordingNotifier struct {
	user   *models.User
	course *models.Course
	notes  string
	calls  int
}

func (n *recordingNotifier) NotifyCertified(user *models.User, course *models.Course, notes string) {
	n.user, n.course, n.notes = user, course, notes
	n.calls++
}

func TestApprovalTriggersCertificateNotification(t *testing.T) {
	submissionID, userID, courseID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	submission := &models.ProjectSubmission{ID: submissionID, UserID: userID, CourseID: courseID, Status: models.StatusPending}
	user := &models.User{ID: userID, Profile: &models.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}}
	course := projectCourse(courseID)

	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(submission, nil)
	store.On("UpdateSubmissionDecision", submissionID, models.StatusApproved, "Great work", true).Return(nil)
	store.On("GetUserByID", userID).Return(user, nil)
	store.On("GetCourseByID", courseID).Return(course, nil)

	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)

	_, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     models.DecisionApprove,
		Notes:        "Great work",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "ada@example.com", notifier.user.Email)
	assert.Equal(t, courseID, notifier.course.ID)
}

// Walks the full lifecycle: finish the last video, submit, get approved,
// appear in certifications.
func TestSubmissionLifecycle(t *testing.T) {
	userID, courseID := uuid.NewString(), uuid.NewString()
	course := projectCourse(courseID)
	link := "https://github.com/u/r"

	store := new(mockStore)
	store.On("GetCourseByID", courseID).Return(course, nil)

	svc := NewService(store, nil)

	// Two of three videos done: submission is rejected outright.
	store.On("GetUserCourseProgress", userID, courseID).Return(courseProgressOf(course, 2, 3), nil).Once()
	_, err := svc.SubmitProject(&models.SubmitProjectRequest{UserID: userID, CourseID: courseID, ProjectLink: link})
	require.Equal(t, apperrors.NotEligibleError, err)

	// Third video done: submission lands as pending and uncertified.
	pending := &models.ProjectSubmission{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: link,
		Status:      models.StatusPending,
		SubmittedAt: time.Now(),
	}
	store.On("GetUserCourseProgress", userID, courseID).Return(courseProgressOf(course, 3, 3), nil)
	store.On("UpsertSubmission", userID, courseID, link).Return(pending, nil).Once()

	submission, err := svc.SubmitProject(&models.SubmitProjectRequest{UserID: userID, CourseID: courseID, ProjectLink: link})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, submission.Status)
	assert.False(t, submission.Certified)

	// Admin approval certifies the submission.
	store.On("GetSubmissionByID", pending.ID).Return(pending, nil)
	store.On("UpdateSubmissionDecision", pending.ID, models.StatusApproved, "Great work", true).Return(nil).Once()

	approved, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: pending.ID,
		Decision:     models.DecisionApprove,
		Notes:        "Great work",
	})
	require.NoError(t, err)
	assert.True(t, approved.Certified)

	// The user's certification list now includes it.
	store.On("ListCertifications", userID).Return([]*models.ProjectSubmission{approved}, nil)
	certifications, err := svc.ListCertifications(userID)
	require.NoError(t, err)
	require.Len(t, certifications, 1)
	assert.Equal(t, courseID, certifications[0].CourseID)
	store.AssertExpectations(t)
}

func TestRejectionDoesNotNotify(t *testing.T) {
	submissionID := uuid.NewString()
	store := new(mockStore)
	store.On("GetSubmissionByID", submissionID).Return(&models.ProjectSubmission{ID: submissionID, Status: models.StatusPending}, nil)
	store.On("UpdateSubmissionDecision", submissionID, models.StatusRejected, "No README", false).Return(nil)

	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)

	_, err := svc.ReviewSubmission(&models.ReviewSubmissionRequest{
		SubmissionID: submissionID,
		Decision:     models.DecisionReject,
		Notes:        "No README",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, notifier.calls)
}
