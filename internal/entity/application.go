package entity

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
	StatusCompleted   ApplicationStatus = "completed"
)

var ApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusUnderReview,
	StatusApproved,
	StatusRejected,
	StatusCompleted,
}

type VisaType string

const (
	VisaWork       VisaType = "work"
	VisaResidence  VisaType = "residence"
	VisaIndividual VisaType = "individual"
	VisaFamily     VisaType = "family"
	VisaVisit      VisaType = "visit"
)

var VisaTypes = []VisaType{
	VisaWork,
	VisaResidence,
	VisaIndividual,
	VisaFamily,
	VisaVisit,
}

// VisaApplication is a row of the visa_application table.
// UserId, VisaType and CreatedAt never change after insert; Status and
// AdminNotes are only written by the admin review.
type VisaApplication struct {
	Id         string            `db:"id" json:"id"`
	UserId     string            `db:"user_id" json:"user_id"`
	Status     ApplicationStatus `db:"status" json:"status"`
	AdminNotes string            `db:"admin_notes" json:"admin_notes"`
	Locale     string            `db:"locale" json:"-"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
	VisaApplicationInsert
}

type VisaApplicationInsert struct {
	ApplicantName  string   `db:"applicant_name" json:"applicant_name"`
	ApplicantEmail string   `db:"applicant_email" json:"applicant_email"`
	ApplicantPhone string   `db:"applicant_phone" json:"applicant_phone"`
	VisaType       VisaType `db:"visa_type" json:"visa_type"`
	PassportNumber string   `db:"passport_number" json:"passport_number"`
	Nationality    string   `db:"nationality" json:"nationality"`
	Purpose        string   `db:"purpose" json:"purpose"`
}

// ApplicationReview is the only mutation allowed on an existing application.
type ApplicationReview struct {
	Status     ApplicationStatus `db:"status" json:"status"`
	AdminNotes string            `db:"admin_notes" json:"admin_notes"`
}

func (s ApplicationStatus) Valid() bool {
	for _, st := range ApplicationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (vt VisaType) Valid() bool {
	for _, t := range VisaTypes {
		if vt == t {
			return true
		}
	}
	return false
}
