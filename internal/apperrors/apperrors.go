package apperrors

import "errors"

var (
	// Catalog errors
	CourseNotFoundError = errors.New("course not found")
	ModuleNotFoundError = errors.New("module not found")
	VideoNotFoundError  = errors.New("video not found")

	// User errors
	UserNotFoundError = errors.New("user not found")
	DeleteUserError   = errors.New("an error occurred while deleting user")
	UnauthorizedError = errors.New("you are not allowed to perform this operation")

	// Submission workflow errors
	SubmissionNotFoundError   = errors.New("project submission not found")
	EmptyProjectLinkError     = errors.New("project link must be a non-empty valid URL")
	NoProjectRequiredError    = errors.New("this course does not require a project")
	NotEligibleError          = errors.New("all course videos must be completed before submitting a project")
	MissingRejectionNoteError = errors.New("a rejection reason is required")
	InvalidDecisionError      = errors.New("review decision must be approve or reject")

	// Video link errors
	UnknownVideoLinkError = errors.New("unrecognized video link format")
)
