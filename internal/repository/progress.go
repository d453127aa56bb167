package repository

import (
	"courseware/internal/models"
	"courseware/internal/progress"
)

// GetCourseProgressStats fetches a snapshot of the catalog and the user's
// completion log and derives the user's standing in every course.
func (fr *FirebaseRepository) GetCourseProgressStats(userID string) (*progress.Stats, error) {
	courses := fr.ListCourses()

	records, err := fr.GetUserCompletionRecords(userID)
	if err != nil {
		return nil, err
	}

	modulesByCourse := make(map[string][]*models.Module, len(courses))
	videosByModule := make(map[string][]*models.Video)
	for _, course := range courses {
		modules, err := fr.GetCourseModules(course.ID)
		if err != nil {
			return nil, err
		}
		modulesByCourse[course.ID] = modules

		for _, module := range modules {
			videos, err := fr.GetModuleVideos(module.ID)
			if err != nil {
				return nil, err
			}
			videosByModule[module.ID] = videos
		}
	}

	return progress.ComputeCourseProgress(courses, modulesByCourse, videosByModule, records), nil
}

// GetUserCourseProgress derives the user's completion state for one course.
// The certification workflow uses this to check submission eligibility.
func (fr *FirebaseRepository) GetUserCourseProgress(userID, courseID string) (*progress.CourseProgress, error) {
	course, err := fr.GetCourseByID(courseID)
	if err != nil {
		return nil, err
	}

	modules, err := fr.GetCourseModules(courseID)
	if err != nil {
		return nil, err
	}

	videosByModule := make(map[string][]*models.Video, len(modules))
	for _, module := range modules {
		videos, err := fr.GetModuleVideos(module.ID)
		if err != nil {
			return nil, err
		}
		videosByModule[module.ID] = videos
	}

	records, err := fr.GetUserCompletionRecords(userID)
	if err != nil {
		return nil, err
	}

	return progress.ComputeSingleCourseProgress(course, modules, videosByModule, records), nil
}
