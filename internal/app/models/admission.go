package models

// AdmissionStatus is the lifecycle state of an admission request.
// Transitions are one-way: pending -> approved or pending -> rejected.
type AdmissionStatus string

const (
	AdmissionStatusPending  AdmissionStatus = "pending"
	AdmissionStatusApproved AdmissionStatus = "approved"
	AdmissionStatusRejected AdmissionStatus = "rejected"
)

// AdmissionRequest is a registration-form submission awaiting review.
// Optional text fields default to "" at submission; DOB is kept as the
// free-form string the form supplied. ProcessedAt, StudentID and
// RejectionReason are attached only once the request leaves pending.
type AdmissionRequest struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	ClassName       string          `json:"className"`
	School          string          `json:"school"`
	GuardianPhone   string          `json:"guardianPhone"`
	GuardianName    string          `json:"guardianName"`
	StudentPhone    string          `json:"studentPhone"`
	Address         string          `json:"address"`
	DOB             string          `json:"dob"`
	AdmissionDate   int64           `json:"admissionDate"`
	Subjects        []string        `json:"subjects"`
	Fees            float64         `json:"fees"`
	SubmittedAt     int64           `json:"submittedAt"`
	Status          AdmissionStatus `json:"status"`
	ProcessedAt     *int64          `json:"processedAt,omitempty"`
	StudentID       *int64          `json:"studentId,omitempty"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
}

// AdmissionDocument is the persisted envelope for the admission request
// collection.
type AdmissionDocument struct {
	Requests []*AdmissionRequest `json:"requests"`
	NextID   int64               `json:"next_id"`
}

// NewAdmissionDocument returns an empty admission document with the ID
// counter at its initial value.
func NewAdmissionDocument() *AdmissionDocument {
	return &AdmissionDocument{
		Requests: []*AdmissionRequest{},
		NextID:   1,
	}
}

// Clone returns a deep copy of the admission request.
func (a *AdmissionRequest) Clone() *AdmissionRequest {
	clone := *a
	clone.Subjects = append([]string(nil), a.Subjects...)
	if a.ProcessedAt != nil {
		v := *a.ProcessedAt
		clone.ProcessedAt = &v
	}
	if a.StudentID != nil {
		v := *a.StudentID
		clone.StudentID = &v
	}
	clone.RejectionReason = cloneStringPtr(a.RejectionReason)
	return &clone
}
