package dto

import "github.com/ravikt/tuitiondesk/internal/app/models"

// SubmitAdmissionRequest carries a registration-form submission. Optional
// text fields default to the empty string, admissionDate to the submission
// time and fees to zero.
type SubmitAdmissionRequest struct {
	Name          *string     `json:"name"`
	ClassName     *string     `json:"className"`
	School        *string     `json:"school"`
	GuardianPhone *string     `json:"guardianPhone"`
	GuardianName  *string     `json:"guardianName"`
	StudentPhone  *string     `json:"studentPhone"`
	Address       *string     `json:"address"`
	DOB           *FlexString `json:"dob"`
	AdmissionDate *int64      `json:"admissionDate"`
	Subjects      *StringList `json:"subjects"`
	Fees          *FlexFloat  `json:"fees"`
}

// RejectAdmissionRequest carries the optional rejection reason.
type RejectAdmissionRequest struct {
	Reason *string `json:"reason"`
}

// AdmissionListResponse is the payload for admission list endpoints.
type AdmissionListResponse struct {
	Requests []*models.AdmissionRequest `json:"requests"`
	Count    int                        `json:"count"`
}

// PendingAdmissionsResponse is the payload for the pending-count endpoint.
type PendingAdmissionsResponse struct {
	Count    int                        `json:"count"`
	Requests []*models.AdmissionRequest `json:"requests"`
}
