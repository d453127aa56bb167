package certification

import (
	"github.com/golang/glog"

	"courseware/internal/apperrors"
	"courseware/internal/models"
	"courseware/internal/progress"
)

// Store is the slice of the persistence layer the certification workflow
// needs. FirebaseRepository satisfies it; tests use a mock.
type Store interface {
	// GetCourseByID returns the course corresponding to the specified course ID.
	GetCourseByID(id string) (*models.Course, error)
	// GetUserCourseProgress derives the user's completion state for one course.
	GetUserCourseProgress(userID, courseID string) (*progress.CourseProgress, error)
	// GetSubmission returns the zero-or-one submission for (user, course).
	GetSubmission(userID, courseID string) (*models.ProjectSubmission, error)
	// UpsertSubmission creates or overwrites the single submission row for
	// (user, course), resetting it to pending and uncertified.
	UpsertSubmission(userID, courseID, projectLink string) (*models.ProjectSubmission, error)
	// GetSubmissionByID returns a submission by its document ID.
	GetSubmissionByID(id string) (*models.ProjectSubmission, error)
	// UpdateSubmissionDecision records an admin review decision.
	UpdateSubmissionDecision(id string, status models.SubmissionStatus, notes string, certified bool) error
	// ListSubmissions returns all submissions, optionally filtered by status.
	ListSubmissions(status models.SubmissionStatus) ([]*models.ProjectSubmission, error)
	// ListCertifications returns the user's certified submissions.
	ListCertifications(userID string) ([]*models.ProjectSubmission, error)
	// GetUserByID returns a registered user.
	GetUserByID(id string) (*models.User, error)
}

// Notifier delivers the certificate notification after an approval. Delivery
// is best effort: the recorded decision is the source of truth, and a failed
// notification never rolls it back.
type Notifier interface {
	NotifyCertified(user *models.User, course *models.Course, notes string)
}

// Service gates and manages the project-submission lifecycle for courses that
// require a capstone project.
type Service struct {
	store    Store
	notifier Notifier
}

// NewService creates a certification workflow service. notifier may be nil,
// in which case approvals are recorded without sending anything.
func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// SubmitProject upserts the single submission row for (user, course) after
// validating the link and the user's eligibility. Resubmission after an
// earlier decision resets the row to pending and revokes certification until
// re-reviewed. Nothing is written when validation fails.
func (s *Service) SubmitProject(req *models.SubmitProjectRequest) (*models.ProjectSubmission, error) {
	if err := models.Validate(req); err != nil {
		return nil, apperrors.EmptyProjectLinkError
	}

	course, err := s.store.GetCourseByID(req.CourseID)
	if err != nil {
		return nil, err
	}
	if !course.RequiresProject {
		return nil, apperrors.NoProjectRequiredError
	}

	// The UI hides the submit action until the course is finished, but the
	// check has to hold server-side as well.
	courseProgress, err := s.store.GetUserCourseProgress(req.UserID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if courseProgress.TotalVideos == 0 || courseProgress.CompletedVideos < courseProgress.TotalVideos {
		return nil, apperrors.NotEligibleError
	}

	return s.store.UpsertSubmission(req.UserID, req.CourseID, req.ProjectLink)
}

// ReviewSubmission records an admin approve/reject decision. Rejections
// require a non-empty reason. After a successful review the submission is
// never left pending, and certified is true only for approvals.
func (s *Service) ReviewSubmission(req *models.ReviewSubmissionRequest) (*models.ProjectSubmission, error) {
	submission, err := s.store.GetSubmissionByID(req.SubmissionID)
	if err != nil {
		return nil, err
	}

	var status models.SubmissionStatus
	var certified bool
	switch req.Decision {
	case models.DecisionApprove:
		status, certified = models.StatusApproved, true
	case models.DecisionReject:
		if req.Notes == "" {
			return nil, apperrors.MissingRejectionNoteError
		}
		status, certified = models.StatusRejected, false
	default:
		return nil, apperrors.InvalidDecisionError
	}

	if err := s.store.UpdateSubmissionDecision(submission.ID, status, req.Notes, certified); err != nil {
		return nil, err
	}

	submission.Status = status
	submission.AdminNotes = req.Notes
	submission.Certified = certified

	if certified && s.notifier != nil {
		s.notifyCertified(submission)
	}

	return submission, nil
}

// GetSubmission returns the user's submission for a course, or
// SubmissionNotFoundError when none exists.
func (s *Service) GetSubmission(userID, courseID string) (*models.ProjectSubmission, error) {
	return s.store.GetSubmission(userID, courseID)
}

// ListSubmissions returns submissions for admin triage, optionally filtered
// by status. An empty status means all submissions.
func (s *Service) ListSubmissions(status models.SubmissionStatus) ([]*models.ProjectSubmission, error) {
	return s.store.ListSubmissions(status)
}

// ListCertifications returns the user's certified submissions for profile
// display.
func (s *Service) ListCertifications(userID string) ([]*models.ProjectSubmission, error) {
	return s.store.ListCertifications(userID)
}

func (s *Service) notifyCertified(submission *models.ProjectSubmission) {
	user, err := s.store.GetUserByID(submission.UserID)
	if err != nil {
		glog.Warningf("certified submission %v has no resolvable user: %v\n", submission.ID, err)
		return
	}
	course, err := s.store.GetCourseByID(submission.CourseID)
	if err != nil {
		glog.Warningf("certified submission %v has no resolvable course: %v\n", submission.ID, err)
		return
	}

	s.notifier.NotifyCertified(user, course, submission.AdminNotes)
}
