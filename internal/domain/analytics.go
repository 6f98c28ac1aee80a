package domain

// AnalyticsSnapshot is a best-effort composite of per-collection counts.
// The three counts are read under independent locks, so they do not form a
// single point-in-time view.
type AnalyticsSnapshot struct {
	TotalUsers     int `json:"total_users"`
	TotalCourses   int `json:"total_courses"`
	ActivePayments int `json:"active_payments"`
}
