package models

import "time"

var (
	FirestoreSubmissionsCollection = "project_submissions"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// ProjectSubmission is a user's capstone project link plus its review state.
// At most one submission exists per (user, course); resubmission overwrites
// the link, timestamp, and status of the existing row.
type ProjectSubmission struct {
	ID          string           `json:"id" mapstructure:"id"`
	UserID      string           `json:"userID" mapstructure:"userID"`
	CourseID    string           `json:"courseID" mapstructure:"courseID"`
	ProjectLink string           `json:"projectLink" mapstructure:"projectLink"`
	Status      SubmissionStatus `json:"status" mapstructure:"status"`
	AdminNotes  string           `json:"adminNotes,omitempty" mapstructure:"adminNotes"`
	Certified   bool             `json:"certified" mapstructure:"certified"`
	SubmittedAt time.Time        `json:"submittedAt" mapstructure:"submittedAt"`
}

// SubmitProjectRequest is the parameter struct for the SubmitProject function.
type SubmitProjectRequest struct {
	UserID      string `json:"-"`
	CourseID    string `json:"courseID" validate:"required"`
	ProjectLink string `json:"projectLink" validate:"required,url"`
}

// ReviewSubmissionRequest is the parameter struct for the ReviewSubmission function.
type ReviewSubmissionRequest struct {
	SubmissionID string         `json:"submissionID" validate:"required"`
	Decision     ReviewDecision `json:"decision" validate:"required"`
	Notes        string         `json:"notes"`
}
