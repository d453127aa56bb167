package repository

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"courseware/internal/apperrors"
	"courseware/internal/firebase"
	"courseware/internal/models"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
)

func (fr *FirebaseRepository) initializeCoursesListener() {
	handleDocs := func(docs []*firestore.DocumentSnapshot) error {
		newCourses := make(map[string]*models.Course)
		for _, doc := range docs {
			if !doc.Exists() {
				continue
			}

			var c models.Course
			err := mapstructure.Decode(doc.Data(), &c)
			if err != nil {
				log.Panicf("Error destructuring document: %v", err)
				return err
			}

			c.ID = doc.Ref.ID
			newCourses[doc.Ref.ID] = &c
		}

		fr.coursesLock.Lock()
		defer fr.coursesLock.Unlock()
		fr.courses = newCourses

		return nil
	}

	done := make(chan bool)
	query := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Query
	go func() {
		err := fr.createCollectionInitializer(query, &done, handleDocs)
		if err != nil {
			log.Panicf("%v collection listener error: %v\n", models.FirestoreCoursesCollection, err)
		}
	}()
	<-done
}

// GetCourseByID gets the Course from the courses map corresponding to the
// provided course ID.
func (fr *FirebaseRepository) GetCourseByID(id string) (*models.Course, error) {
	fr.coursesLock.RLock()
	defer fr.coursesLock.RUnlock()

	if val, ok := fr.courses[id]; ok {
		return val, nil
	}
	return nil, apperrors.CourseNotFoundError
}

// ListCourses returns the full course catalog, sorted by title.
func (fr *FirebaseRepository) ListCourses() []*models.Course {
	fr.coursesLock.RLock()
	defer fr.coursesLock.RUnlock()

	courses := make([]*models.Course, 0, len(fr.courses))
	for _, c := range fr.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Title < courses[j].Title
	})
	return courses
}

// SearchCourses returns catalog courses whose title contains the search term,
// case-insensitively.
func (fr *FirebaseRepository) SearchCourses(term string) []*models.Course {
	term = strings.ToLower(term)

	var matches []*models.Course
	for _, c := range fr.ListCourses() {
		if strings.Contains(strings.ToLower(c.Title), term) {
			matches = append(matches, c)
		}
	}
	return matches
}

func (fr *FirebaseRepository) CreateCourse(c *models.CreateCourseRequest) (course *models.Course, err error) {
	course = &models.Course{
		Title:               c.Title,
		Overview:            c.Overview,
		RequiresProject:     c.RequiresProject,
		ProjectRequirements: c.ProjectRequirements,
		ProjectInstructions: c.ProjectInstructions,
	}

	ref, _, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Add(firebase.Context, map[string]interface{}{
		"title":               course.Title,
		"overview":            course.Overview,
		"requiresProject":     course.RequiresProject,
		"projectRequirements": course.ProjectRequirements,
		"projectInstructions": course.ProjectInstructions,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %v\n", err)
	}
	course.ID = ref.ID

	return course, nil
}

func (fr *FirebaseRepository) EditCourse(c *models.EditCourseRequest) error {
	if _, err := fr.GetCourseByID(c.CourseID); err != nil {
		return err
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID).Update(firebase.Context, []firestore.Update{
		{Path: "title", Value: c.Title},
		{Path: "overview", Value: c.Overview},
		{Path: "requiresProject", Value: c.RequiresProject},
		{Path: "projectRequirements", Value: c.ProjectRequirements},
		{Path: "projectInstructions", Value: c.ProjectInstructions},
	})
	return err
}

// DeleteCourse removes a course and cascades to its modules and their videos.
func (fr *FirebaseRepository) DeleteCourse(c *models.DeleteCourseRequest) error {
	if _, err := fr.GetCourseByID(c.CourseID); err != nil {
		return err
	}

	modules, err := fr.GetCourseModules(c.CourseID)
	if err != nil {
		return err
	}
	for _, module := range modules {
		if err := fr.DeleteModule(&models.DeleteModuleRequest{ModuleID: module.ID}); err != nil {
			return err
		}
	}

	_, err = fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(c.CourseID).Delete(firebase.Context)
	return err
}
