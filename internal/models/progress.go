package models

import "time"

var (
	FirestoreCompletionRecordsCollection = "completion_records"
)

// CompletionRecord is an append-only fact that a user finished a video.
// Records are never deleted or un-completed. Near-simultaneous completions of
// the same video may create duplicate records; consumers must deduplicate by
// video id.
type CompletionRecord struct {
	ID          string    `json:"id" mapstructure:"id"`
	UserID      string    `json:"userID" mapstructure:"userID"`
	VideoID     string    `json:"videoID" mapstructure:"videoID"`
	Completed   bool      `json:"completed" mapstructure:"completed"`
	CompletedAt time.Time `json:"completedAt" mapstructure:"completedAt"`
}

// MarkVideoCompleteRequest is the parameter struct for the MarkVideoComplete function.
type MarkVideoCompleteRequest struct {
	UserID  string `json:"-"`
	VideoID string `json:"videoID" validate:"required"`
}
