package dto

// HealthResponse is the payload of the health-check endpoint.
type HealthResponse struct {
	Status            string `json:"status" example:"healthy"`
	Timestamp         int64  `json:"timestamp"`
	StudentsCount     int    `json:"students_count"`
	PendingAdmissions int    `json:"pending_admissions"`
}

// StatsResponse is the payload of the statistics endpoint.
type StatsResponse struct {
	TotalStudents      int   `json:"total_students"`
	PendingAdmissions  int   `json:"pending_admissions"`
	ApprovedAdmissions int   `json:"approved_admissions"`
	RejectedAdmissions int   `json:"rejected_admissions"`
	ServerUptimeMillis int64 `json:"server_uptime"`
}
