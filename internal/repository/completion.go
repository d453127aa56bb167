package repository

import (
	"fmt"
	"time"

	"courseware/internal/firebase"
	"courseware/internal/models"

	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// GetUserCompletionRecords returns a user's full completion log. The log may
// contain duplicate records for the same video (see MarkVideoComplete);
// consumers deduplicate by video id.
func (fr *FirebaseRepository) GetUserCompletionRecords(userID string) ([]*models.CompletionRecord, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreCompletionRecordsCollection).
		Where("userID", "==", userID).
		Documents(firebase.Context)

	var records []*models.CompletionRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching completion records for user %v: %v", userID, err)
		}

		var record models.CompletionRecord
		if err := mapstructure.Decode(doc.Data(), &record); err != nil {
			return nil, err
		}
		record.ID = doc.Ref.ID
		records = append(records, &record)
	}

	return records, nil
}

// MarkVideoComplete appends a completion record for (user, video). Records
// are never updated or deleted: two near-simultaneous completions of the same
// video may both land, which the aggregation tolerates by deduplicating, so
// no read-modify-write is done here.
func (fr *FirebaseRepository) MarkVideoComplete(c *models.MarkVideoCompleteRequest) (*models.CompletionRecord, error) {
	if _, err := fr.GetVideoByID(c.VideoID); err != nil {
		return nil, err
	}

	record := &models.CompletionRecord{
		UserID:      c.UserID,
		VideoID:     c.VideoID,
		Completed:   true,
		CompletedAt: time.Now(),
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreCompletionRecordsCollection).Add(firebase.Context, map[string]interface{}{
		"userID":      record.UserID,
		"videoID":     record.VideoID,
		"completed":   record.Completed,
		"completedAt": record.CompletedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating completion record: %v", err)
	}
	record.ID = ref.ID

	return record, nil
}
