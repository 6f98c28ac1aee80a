package domain

// Course is the aggregate for published course content.
type Course struct {
	ID          int64
	Title       string
	Description string
	Modules     []CourseModule
	Resources   []string
}

// CourseModule is a single unit of course content. Module ids are unique
// across all courses and modules are immutable once created.
type CourseModule struct {
	ID      int64
	Title   string
	Content string
}
