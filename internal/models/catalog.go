package models

var (
	FirestoreCoursesCollection = "courses"
	FirestoreModulesCollection = "modules"
	FirestoreVideosCollection  = "videos"
)

// Course is a top-level learning unit containing ordered modules.
// If RequiresProject is false the project fields are ignored by the
// certification workflow.
type Course struct {
	ID                  string `json:"id" mapstructure:"id"`
	Title               string `json:"title" mapstructure:"title"`
	Overview            string `json:"overview" mapstructure:"overview"`
	RequiresProject     bool   `json:"requiresProject" mapstructure:"requiresProject"`
	ProjectRequirements string `json:"projectRequirements,omitempty" mapstructure:"projectRequirements"`
	ProjectInstructions string `json:"projectInstructions,omitempty" mapstructure:"projectInstructions"`
}

// Module is an ordered group of videos within a course. Order is 1-based and
// unique within the owning course.
type Module struct {
	ID       string `json:"id" mapstructure:"id"`
	CourseID string `json:"courseID" mapstructure:"courseID"`
	Title    string `json:"title" mapstructure:"title"`
	Order    int    `json:"order" mapstructure:"order"`
}

// Video is a single lesson unit. VideoLink is either a YouTube URL, a Bunny
// embed URL, or a bunny:LIBRARY_ID/VIDEO_ID reference.
type Video struct {
	ID          string `json:"id" mapstructure:"id"`
	ModuleID    string `json:"moduleID" mapstructure:"moduleID"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	VideoLink   string `json:"videoLink" mapstructure:"videoLink"`
	Order       int    `json:"order" mapstructure:"order"`
}

type GetCourseRequest struct {
	CourseID string `json:"courseID"`
}

type CreateCourseRequest struct {
	Title               string `json:"title" validate:"required"`
	Overview            string `json:"overview"`
	RequiresProject     bool   `json:"requiresProject"`
	ProjectRequirements string `json:"projectRequirements"`
	ProjectInstructions string `json:"projectInstructions"`
	CreatedBy           *User  `json:"-"`
}

type EditCourseRequest struct {
	CourseID            string `json:"courseID" validate:"required"`
	Title               string `json:"title" validate:"required"`
	Overview            string `json:"overview"`
	RequiresProject     bool   `json:"requiresProject"`
	ProjectRequirements string `json:"projectRequirements"`
	ProjectInstructions string `json:"projectInstructions"`
}

type DeleteCourseRequest struct {
	CourseID string `json:"courseID"`
}

type CreateModuleRequest struct {
	CourseID string `json:"courseID" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Order    int    `json:"order" validate:"required,gte=1"`
}

type EditModuleRequest struct {
	ModuleID string `json:"moduleID" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Order    int    `json:"order" validate:"required,gte=1"`
}

type DeleteModuleRequest struct {
	ModuleID string `json:"moduleID"`
}

type CreateVideoRequest struct {
	ModuleID    string `json:"moduleID" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoLink   string `json:"videoLink" validate:"required"`
	Order       int    `json:"order" validate:"required,gte=1"`
}

type EditVideoRequest struct {
	VideoID     string `json:"videoID" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoLink   string `json:"videoLink" validate:"required"`
	Order       int    `json:"order" validate:"required,gte=1"`
}

type DeleteVideoRequest struct {
	VideoID string `json:"videoID"`
}
