package models

// SchoolDocument is the root of the shared cloud document: one JSON file
// mapping schoolCode to School.
type SchoolDocument map[string]*School

// School groups classes under a school code
type School struct {
	Classes map[string]*ClassRecord `json:"classes"`
}

// ClassRecord holds one class's password, homework list and templates
type ClassRecord struct {
	Password             string     `json:"password"`
	HomeworkData         []Homework `json:"homeworkData"`
	Templates            []Template `json:"templates,omitempty"`
	LastUpdated          int64      `json:"lastUpdated"`
	TemplatesLastUpdated int64      `json:"templatesLastUpdated,omitempty"`
}

// Homework is one assignment entry. Subject and dueDate are stored verbatim,
// the server never validates them against the subject set or a date format.
type Homework struct {
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	DueDate   string `json:"dueDate"`
	Timestamp int64  `json:"timestamp"`
}

// Component types within a template
const (
	ComponentFixedText    = "fixedText"
	ComponentNumberSelect = "numberSelect"
	ComponentTextDropdown = "textDropdown"
)

// Template is a reusable, ordered set of components used to pre-fill
// homework content. Created and edited client-side, synced en masse.
type Template struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Components  []Component `json:"components"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// Component is one typed input unit within a template. The type field selects
// which of the optional fields are meaningful. DefaultValue carries a number
// for numberSelect and a string for textDropdown, so it stays untyped here
// and is interpreted at render time.
type Component struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Order float64 `json:"order"`

	// fixedText
	Content    string `json:"content,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`

	// numberSelect / textDropdown
	Label        string   `json:"label,omitempty"`
	Min          int      `json:"min,omitempty"`
	Max          int      `json:"max,omitempty"`
	Step         int      `json:"step,omitempty"`
	Options      []string `json:"options,omitempty"`
	DefaultValue any      `json:"defaultValue,omitempty"`
}

// WindowBounds is the persisted geometry of one logical window
type WindowBounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LaunchpadApp is one pinned application or link on the launchpad
type LaunchpadApp struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "app" or "link"
	Icon string `json:"icon,omitempty"`
}

// RegisterRequest creates a class under a school code
type RegisterRequest struct {
	SchoolCode string `json:"schoolCode" validate:"required"`
	ClassCode  string `json:"classCode" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UploadRequest replaces a class's entire homework list
type UploadRequest struct {
	SchoolCode   string     `json:"schoolCode" validate:"required"`
	ClassCode    string     `json:"classCode" validate:"required"`
	Password     string     `json:"password" validate:"required"`
	HomeworkData []Homework `json:"homeworkData" validate:"required,min=1"`
}

// DownloadRequest is a teacher-authenticated read
type DownloadRequest struct {
	SchoolCode string `json:"schoolCode" validate:"required"`
	ClassCode  string `json:"classCode" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// StudentRequest is a public read, no password
type StudentRequest struct {
	SchoolCode string `json:"schoolCode" validate:"required"`
	ClassCode  string `json:"classCode" validate:"required"`
}

// AddHomeworkRequest appends one homework entry
type AddHomeworkRequest struct {
	SchoolCode string `json:"schoolCode" validate:"required"`
	ClassCode  string `json:"classCode" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Content    string `json:"content" validate:"required"`
	DueDate    string `json:"dueDate"`
}

// DeleteHomeworkRequest removes one homework entry by positional index.
// Index is a pointer so that index 0 counts as present.
type DeleteHomeworkRequest struct {
	SchoolCode string `json:"schoolCode" validate:"required"`
	ClassCode  string `json:"classCode" validate:"required"`
	Index      *int   `json:"index" validate:"required"`
}

// TemplateSyncRequest uploads (replace-all) or downloads a class's templates
type TemplateSyncRequest struct {
	SchoolCode string     `json:"schoolCode" validate:"required"`
	ClassCode  string     `json:"classCode" validate:"required"`
	Password   string     `json:"password" validate:"required"`
	SyncAction string     `json:"syncAction" validate:"required,oneof=upload download"`
	Templates  []Template `json:"templates"`
}

// SyncResponse is the full response shape of the sync endpoint. Every
// operation fills success/message plus its own extras.
type SyncResponse struct {
	Success       bool       `json:"success"`
	Message       string     `json:"message"`
	SchoolCode    string     `json:"schoolCode,omitempty"`
	ClassCode     string     `json:"classCode,omitempty"`
	HomeworkData  []Homework `json:"homeworkData,omitempty"`
	HomeworkCount int        `json:"homeworkCount,omitempty"`
	Templates     []Template `json:"templates,omitempty"`
	TemplateCount int        `json:"templateCount,omitempty"`
	LastUpdated   int64      `json:"lastUpdated,omitempty"`
}
