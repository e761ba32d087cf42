package dto

import "github.com/ravikt/tuitiondesk/internal/app/models"

// CreateStudentRequest carries the payload for creating a student record.
// Required fields are pointers so absence can be reported by name.
type CreateStudentRequest struct {
	Name                 *string                                    `json:"name"`
	ClassName            *string                                    `json:"className"`
	School               *string                                    `json:"school"`
	GuardianPhone        *string                                    `json:"guardianPhone"`
	GuardianName         *string                                    `json:"guardianName"`
	StudentPhone         *string                                    `json:"studentPhone"`
	Address              *string                                    `json:"address"`
	DOB                  *int64                                     `json:"dob"`
	AdmissionDate        *int64                                     `json:"admissionDate"`
	Subjects             *StringList                                `json:"subjects"`
	Fees                 *FlexFloat                                 `json:"fees"`
	ProfileImagePath     *string                                    `json:"profileImagePath"`
	YearlyMonthStatus    map[string]map[string]int                  `json:"yearlyMonthStatus"`
	YearlyPaymentRecords map[string]map[string]models.PaymentRecord `json:"yearlyPaymentRecords"`
	PendingFeesReminders map[string][]int                           `json:"pendingFeesReminders"`
}

// UpdateStudentRequest carries a partial update. Only fields present in the
// payload are applied; everything else on the stored record is untouched.
// The record id and createdAt are never updatable.
type UpdateStudentRequest struct {
	Name                 *string                                    `json:"name"`
	ClassName            *string                                    `json:"className"`
	School               *string                                    `json:"school"`
	GuardianPhone        *string                                    `json:"guardianPhone"`
	GuardianName         *string                                    `json:"guardianName"`
	StudentPhone         *string                                    `json:"studentPhone"`
	Address              *string                                    `json:"address"`
	DOB                  *int64                                     `json:"dob"`
	AdmissionDate        *int64                                     `json:"admissionDate"`
	Subjects             *StringList                                `json:"subjects"`
	Fees                 *FlexFloat                                 `json:"fees"`
	ProfileImagePath     *string                                    `json:"profileImagePath"`
	YearlyMonthStatus    map[string]map[string]int                  `json:"yearlyMonthStatus"`
	YearlyPaymentRecords map[string]map[string]models.PaymentRecord `json:"yearlyPaymentRecords"`
	PendingFeesReminders map[string][]int                           `json:"pendingFeesReminders"`
}

// RecordPaymentRequest carries the payload for recording a monthly fee
// payment. Year and month default to the current calendar year and month,
// paidDate to the current timestamp and paymentMethod to "cash".
type RecordPaymentRequest struct {
	Year          *FlexString `json:"year"`
	Month         *FlexInt    `json:"month"`
	Amount        *FlexFloat  `json:"amount"`
	Notes         *string     `json:"notes"`
	PaidDate      *int64      `json:"paidDate"`
	PaymentMethod *string     `json:"paymentMethod"`
}

// StudentListResponse is the payload for student list endpoints.
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	Count    int               `json:"count"`
}
