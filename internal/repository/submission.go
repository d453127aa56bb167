package repository

import (
	"fmt"
	"time"

	"courseware/internal/apperrors"
	"courseware/internal/firebase"
	"courseware/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

func decodeSubmission(doc *firestore.DocumentSnapshot) (*models.ProjectSubmission, error) {
	var submission models.ProjectSubmission
	if err := mapstructure.Decode(doc.Data(), &submission); err != nil {
		return nil, err
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

// GetSubmission returns the zero-or-one submission for (user, course).
func (fr *FirebaseRepository) GetSubmission(userID, courseID string) (*models.ProjectSubmission, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).
		Where("userID", "==", userID).
		Where("courseID", "==", courseID).
		Limit(1).
		Documents(firebase.Context)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, apperrors.SubmissionNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching submission for user %v: %v", userID, err)
	}

	return decodeSubmission(doc)
}

func (fr *FirebaseRepository) GetSubmissionByID(id string) (*models.ProjectSubmission, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		return nil, apperrors.SubmissionNotFoundError
	}
	return decodeSubmission(doc)
}

// resubmissionReset is the stored field set that returns an existing
// submission row to a fresh pending state, prior decision notes included.
// applyResubmission must mirror these fields so the returned struct matches
// the document.
func resubmissionReset(projectLink string, now time.Time) []firestore.Update {
	return []firestore.Update{
		{Path: "projectLink", Value: projectLink},
		{Path: "submittedAt", Value: now},
		{Path: "status", Value: string(models.StatusPending)},
		{Path: "certified", Value: false},
		{Path: "adminNotes", Value: ""},
	}
}

func applyResubmission(s *models.ProjectSubmission, projectLink string, now time.Time) {
	s.ProjectLink = projectLink
	s.SubmittedAt = now
	s.Status = models.StatusPending
	s.Certified = false
	s.AdminNotes = ""
}

// UpsertSubmission creates or overwrites the single submission row for
// (user, course). A resubmission resets the row to pending and revokes any
// prior certification; the previous decision is not retained. The read-then-
// write is not transactional: submissions are single-actor, low-frequency
// events and last write wins.
func (fr *FirebaseRepository) UpsertSubmission(userID, courseID, projectLink string) (*models.ProjectSubmission, error) {
	now := time.Now()

	existing, err := fr.GetSubmission(userID, courseID)
	if err == nil {
		_, err = fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).Doc(existing.ID).Update(firebase.Context, resubmissionReset(projectLink, now))
		if err != nil {
			return nil, fmt.Errorf("error updating submission: %v", err)
		}

		applyResubmission(existing, projectLink, now)
		return existing, nil
	}
	if err != apperrors.SubmissionNotFoundError {
		return nil, err
	}

	submission := &models.ProjectSubmission{
		UserID:      userID,
		CourseID:    courseID,
		ProjectLink: projectLink,
		Status:      models.StatusPending,
		Certified:   false,
		SubmittedAt: now,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).Add(firebase.Context, map[string]interface{}{
		"userID":      submission.UserID,
		"courseID":    submission.CourseID,
		"projectLink": submission.ProjectLink,
		"status":      string(submission.Status),
		"certified":   submission.Certified,
		"submittedAt": submission.SubmittedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating submission: %v", err)
	}
	submission.ID = ref.ID

	return submission, nil
}

// UpdateSubmissionDecision records an admin review decision on a submission.
func (fr *FirebaseRepository) UpdateSubmissionDecision(id string, status models.SubmissionStatus, notes string, certified bool) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).Doc(id).Update(firebase.Context, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "adminNotes", Value: notes},
		{Path: "certified", Value: certified},
	})
	if err != nil {
		return apperrors.SubmissionNotFoundError
	}
	return nil
}

// ListSubmissions returns all submissions, optionally filtered by status.
func (fr *FirebaseRepository) ListSubmissions(status models.SubmissionStatus) ([]*models.ProjectSubmission, error) {
	query := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).Query
	if status != "" {
		query = query.Where("status", "==", string(status))
	}

	return fr.collectSubmissions(query)
}

// ListCertifications returns the user's certified submissions for profile
// display.
func (fr *FirebaseRepository) ListCertifications(userID string) ([]*models.ProjectSubmission, error) {
	query := fr.firestoreClient.Collection(models.FirestoreSubmissionsCollection).
		Where("userID", "==", userID).
		Where("certified", "==", true)

	return fr.collectSubmissions(query)
}

func (fr *FirebaseRepository) collectSubmissions(query firestore.Query) ([]*models.ProjectSubmission, error) {
	iter := query.Documents(firebase.Context)

	var submissions []*models.ProjectSubmission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching submissions: %v", err)
		}

		submission, err := decodeSubmission(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}
