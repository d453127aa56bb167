package repository

import (
	"fmt"

	"courseware/internal/apperrors"
	"courseware/internal/firebase"
	"courseware/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// GetCourseModules returns a course's modules in display order.
func (fr *FirebaseRepository) GetCourseModules(courseID string) ([]*models.Module, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreModulesCollection).
		Where("courseID", "==", courseID).
		OrderBy("order", firestore.Asc).
		Documents(firebase.Context)

	var modules []*models.Module
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching modules for course %v: %v", courseID, err)
		}

		var module models.Module
		if err := mapstructure.Decode(doc.Data(), &module); err != nil {
			return nil, err
		}
		module.ID = doc.Ref.ID
		modules = append(modules, &module)
	}

	return modules, nil
}

func (fr *FirebaseRepository) GetModuleByID(id string) (*models.Module, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreModulesCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		return nil, apperrors.ModuleNotFoundError
	}

	var module models.Module
	if err := mapstructure.Decode(doc.Data(), &module); err != nil {
		return nil, err
	}
	module.ID = doc.Ref.ID
	return &module, nil
}

func (fr *FirebaseRepository) CreateModule(c *models.CreateModuleRequest) (*models.Module, error) {
	if _, err := fr.GetCourseByID(c.CourseID); err != nil {
		return nil, err
	}

	module := &models.Module{
		CourseID: c.CourseID,
		Title:    c.Title,
		Order:    c.Order,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreModulesCollection).Add(firebase.Context, map[string]interface{}{
		"courseID": module.CourseID,
		"title":    module.Title,
		"order":    module.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating module: %v", err)
	}
	module.ID = ref.ID

	return module, nil
}

func (fr *FirebaseRepository) EditModule(c *models.EditModuleRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreModulesCollection).Doc(c.ModuleID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "order", Value: c.Order},
	})
	if err != nil {
		return apperrors.ModuleNotFoundError
	}
	return nil
}

// DeleteModule removes a module and cascades to its videos.
func (fr *FirebaseRepository) DeleteModule(c *models.DeleteModuleRequest) error {
	videos, err := fr.GetModuleVideos(c.ModuleID)
	if err != nil {
		return err
	}
	for _, video := range videos {
		if err := fr.DeleteVideo(&models.DeleteVideoRequest{VideoID: video.ID}); err != nil {
			return err
		}
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreModulesCollection).Doc(c.ModuleID).Delete(firebase.Context)
	return err
}

// GetModuleVideos returns a module's videos in display order.
func (fr *FirebaseRepository) GetModuleVideos(moduleID string) ([]*models.Video, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreVideosCollection).
		Where("moduleID", "==", moduleID).
		OrderBy("order", firestore.Asc).
		Documents(firebase.Context)

	var videos []*models.Video
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching videos for module %v: %v", moduleID, err)
		}

		var video models.Video
		if err := mapstructure.Decode(doc.Data(), &video); err != nil {
			return nil, err
		}
		video.ID = doc.Ref.ID
		videos = append(videos, &video)
	}

	return videos, nil
}

// GetCourseVideos returns every video in a course in one batch, module order
// first, then video order. This is the fetch interface the progress
// aggregation is built on, so callers never chain per-module round trips
// themselves.
func (fr *FirebaseRepository) GetCourseVideos(courseID string) ([]*models.Video, error) {
	modules, err := fr.GetCourseModules(courseID)
	if err != nil {
		return nil, err
	}

	var videos []*models.Video
	for _, module := range modules {
		moduleVideos, err := fr.GetModuleVideos(module.ID)
		if err != nil {
			return nil, err
		}
		videos = append(videos, moduleVideos...)
	}

	return videos, nil
}

func (fr *FirebaseRepository) GetVideoByID(id string) (*models.Video, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		return nil, apperrors.VideoNotFoundError
	}

	var video models.Video
	if err := mapstructure.Decode(doc.Data(), &video); err != nil {
		return nil, err
	}
	video.ID = doc.Ref.ID
	return &video, nil
}

func (fr *FirebaseRepository) CreateVideo(c *models.CreateVideoRequest) (*models.Video, error) {
	if _, err := fr.GetModuleByID(c.ModuleID); err != nil {
		return nil, err
	}

	video := &models.Video{
		ModuleID:    c.ModuleID,
		Title:       c.Title,
		Description: c.Description,
		VideoLink:   c.VideoLink,
		Order:       c.Order,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Add(firebase.Context, map[string]interface{}{
		"moduleID":    video.ModuleID,
		"title":       video.Title,
		"description": video.Description,
		"videoLink":   video.VideoLink,
		"order":       video.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating video: %v", err)
	}
	video.ID = ref.ID

	return video, nil
}

func (fr *FirebaseRepository) EditVideo(c *models.EditVideoRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(c.VideoID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "description", Value: c.Description},
		{Path: "videoLink", Value: c.VideoLink},
		{Path: "order", Value: c.Order},
	})
	if err != nil {
		return apperrors.VideoNotFoundError
	}
	return nil
}

func (fr *FirebaseRepository) DeleteVideo(c *models.DeleteVideoRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Doc(c.VideoID).Delete(firebase.Context)
	return err
}
