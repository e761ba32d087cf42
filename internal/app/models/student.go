package models

// Month payment status codes stored in Student.YearlyMonthStatus.
const (
	MonthStatusPending  = 0 // fee due, not yet paid
	MonthStatusPaid     = 1
	MonthStatusIgnored  = 2 // month precedes the admission date
	MonthStatusUpcoming = 3 // month is still in the future
)

// Payment methods accepted in PaymentRecord.PaymentMethod.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
	PaymentMethodUPI    = "upi"
	PaymentMethodBank   = "bank"
)

// IsValidPaymentMethod reports whether method is one of the accepted
// payment methods.
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodOnline, PaymentMethodUPI, PaymentMethodBank:
		return true
	}
	return false
}

// PaymentRecord captures a single fee payment for one calendar month.
type PaymentRecord struct {
	PaidDate      int64   `json:"paidDate"`
	Amount        float64 `json:"amount"`
	Notes         *string `json:"notes"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Student is a tuition student record. Timestamps are milliseconds since
// the Unix epoch. The yearly maps are keyed by year string ("2025") and
// month number string ("1".."12"), matching the persisted wire format.
type Student struct {
	ID                   int64                               `json:"id"`
	Name                 string                              `json:"name"`
	ClassName            string                              `json:"className"`
	School               *string                             `json:"school"`
	GuardianPhone        string                              `json:"guardianPhone"`
	GuardianName         *string                             `json:"guardianName"`
	StudentPhone         *string                             `json:"studentPhone"`
	Address              *string                             `json:"address"`
	DOB                  int64                               `json:"dob"`
	AdmissionDate        int64                               `json:"admissionDate"`
	Subjects             []string                            `json:"subjects"`
	Fees                 float64                             `json:"fees"`
	ProfileImagePath     *string                             `json:"profileImagePath"`
	CreatedAt            int64                               `json:"createdAt"`
	YearlyMonthStatus    map[string]map[string]int           `json:"yearlyMonthStatus"`
	YearlyPaymentRecords map[string]map[string]PaymentRecord `json:"yearlyPaymentRecords"`
	PendingFeesReminders map[string][]int                    `json:"pendingFeesReminders"`
}

// StudentDocument is the persisted envelope for the student collection.
type StudentDocument struct {
	Students []*Student `json:"students"`
	NextID   int64      `json:"next_id"`
}

// NewStudentDocument returns an empty student document with the ID counter
// at its initial value.
func NewStudentDocument() *StudentDocument {
	return &StudentDocument{
		Students: []*Student{},
		NextID:   1,
	}
}

// Clone returns a deep copy of the student, so callers can hand records
// out of the repository without sharing mutable state.
func (s *Student) Clone() *Student {
	clone := *s
	clone.School = cloneStringPtr(s.School)
	clone.GuardianName = cloneStringPtr(s.GuardianName)
	clone.StudentPhone = cloneStringPtr(s.StudentPhone)
	clone.Address = cloneStringPtr(s.Address)
	clone.ProfileImagePath = cloneStringPtr(s.ProfileImagePath)

	clone.Subjects = append([]string(nil), s.Subjects...)

	clone.YearlyMonthStatus = make(map[string]map[string]int, len(s.YearlyMonthStatus))
	for year, months := range s.YearlyMonthStatus {
		yearCopy := make(map[string]int, len(months))
		for month, status := range months {
			yearCopy[month] = status
		}
		clone.YearlyMonthStatus[year] = yearCopy
	}

	clone.YearlyPaymentRecords = make(map[string]map[string]PaymentRecord, len(s.YearlyPaymentRecords))
	for year, months := range s.YearlyPaymentRecords {
		yearCopy := make(map[string]PaymentRecord, len(months))
		for month, record := range months {
			record.Notes = cloneStringPtr(record.Notes)
			yearCopy[month] = record
		}
		clone.YearlyPaymentRecords[year] = yearCopy
	}

	clone.PendingFeesReminders = make(map[string][]int, len(s.PendingFeesReminders))
	for year, months := range s.PendingFeesReminders {
		clone.PendingFeesReminders[year] = append([]int(nil), months...)
	}

	return &clone
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
