package progress

import (
	"math"

	"courseware/internal/models"
)

// CourseProgress is a course together with a user's derived completion state.
type CourseProgress struct {
	Course             *models.Course `json:"course"`
	TotalVideos        int            `json:"totalVideos"`
	CompletedVideos    int            `json:"completedVideos"`
	ProgressPercentage int            `json:"progressPercentage"`
}

// Stats buckets every course in the catalog by the user's completion state.
// A course with no videos is always notStarted.
type Stats struct {
	NotStarted []*models.Course  `json:"notStarted"`
	InProgress []*CourseProgress `json:"inProgress"`
	Completed  []*CourseProgress `json:"completed"`
}

// CompletedVideoIDs collapses a completion log into the set of distinct video
// ids the user has finished. Records with Completed == false and duplicate
// records for the same video are ignored, so a duplicated record can never
// double-count.
func CompletedVideoIDs(records []*models.CompletionRecord) map[string]bool {
	completed := make(map[string]bool, len(records))
	for _, record := range records {
		if record.Completed {
			completed[record.VideoID] = true
		}
	}
	return completed
}

// CourseVideos flattens a course's modules into an ordered list of videos,
// module order first, then video order. Modules or videos missing from the
// maps are simply absent from the result; a dangling reference is not an
// error here.
func CourseVideos(modules []*models.Module, videosByModule map[string][]*models.Video) []*models.Video {
	var videos []*models.Video
	for _, module := range modules {
		videos = append(videos, videosByModule[module.ID]...)
	}
	return videos
}

// Percentage computes a course's rounded completion percentage.
func Percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ComputeCourseProgress derives, for one user, the completion state of every
// course in the catalog from a snapshot of the course content and the user's
// completion log. The computation is pure: inputs are not mutated and
// identical inputs always produce identical output.
func ComputeCourseProgress(
	courses []*models.Course,
	modulesByCourse map[string][]*models.Module,
	videosByModule map[string][]*models.Video,
	records []*models.CompletionRecord,
) *Stats {
	completedIDs := CompletedVideoIDs(records)

	stats := &Stats{
		NotStarted: make([]*models.Course, 0),
		InProgress: make([]*CourseProgress, 0),
		Completed:  make([]*CourseProgress, 0),
	}

	for _, course := range courses {
		videos := CourseVideos(modulesByCourse[course.ID], videosByModule)
		if len(videos) == 0 {
			stats.NotStarted = append(stats.NotStarted, course)
			continue
		}

		completedCount := 0
		for _, video := range videos {
			if completedIDs[video.ID] {
				completedCount++
			}
		}

		if completedCount == 0 {
			stats.NotStarted = append(stats.NotStarted, course)
			continue
		}

		courseProgress := &CourseProgress{
			Course:             course,
			TotalVideos:        len(videos),
			CompletedVideos:    completedCount,
			ProgressPercentage: Percentage(completedCount, len(videos)),
		}
		if completedCount == len(videos) {
			stats.Completed = append(stats.Completed, courseProgress)
		} else {
			stats.InProgress = append(stats.InProgress, courseProgress)
		}
	}

	return stats
}

// ComputeSingleCourseProgress derives one course's completion state. Used by
// the certification workflow to check submission eligibility.
func ComputeSingleCourseProgress(
	course *models.Course,
	modules []*models.Module,
	videosByModule map[string][]*models.Video,
	records []*models.CompletionRecord,
) *CourseProgress {
	videos := CourseVideos(modules, videosByModule)
	completedIDs := CompletedVideoIDs(records)

	completedCount := 0
	for _, video := range videos {
		if completedIDs[video.ID] {
			completedCount++
		}
	}

	return &CourseProgress{
		Course:             course,
		TotalVideos:        len(videos),
		CompletedVideos:    completedCount,
		ProgressPercentage: Percentage(completedCount, len(videos)),
	}
}
