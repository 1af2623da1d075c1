package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nuxtvisa/visa-portal/internal/entity"
)

type ApplicationRequest struct {
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
	ApplicantPhone string `json:"applicant_phone"`
	VisaType       string `json:"visa_type"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	Purpose        string `json:"purpose"`
}

// Validate trims the fields in place and checks them; lengths count characters.
func (f *ApplicationRequest) Validate() error {
	trim(&f.ApplicantName, &f.ApplicantEmail, &f.ApplicantPhone, &f.VisaType,
		&f.PassportNumber, &f.Nationality, &f.Purpose)

	return ValidateStruct(f,
		validation.Field(&f.ApplicantName, required(), minRunes(2, "validation.applicant_name_min"), maxRunes(255)),
		validation.Field(&f.ApplicantEmail, required(), emailRule, maxRunes(255)),
		validation.Field(&f.ApplicantPhone, required(), minRunes(10, "validation.phone_min"), maxRunes(64)),
		validation.Field(&f.VisaType, validation.Required.Error("validation.visa_type_invalid"), inStrings("validation.visa_type_invalid", entity.VisaTypes)),
		validation.Field(&f.PassportNumber, required(), minRunes(5, "validation.passport_min"), maxRunes(64)),
		validation.Field(&f.Nationality, required(), minRunes(2, "validation.nationality_min"), maxRunes(128)),
		validation.Field(&f.Purpose, maxRunes(2000)),
	)
}

func (f *ApplicationRequest) Insert() *entity.VisaApplicationInsert {
	return &entity.VisaApplicationInsert{
		ApplicantName:  f.ApplicantName,
		ApplicantEmail: f.ApplicantEmail,
		ApplicantPhone: f.ApplicantPhone,
		VisaType:       entity.VisaType(f.VisaType),
		PassportNumber: f.PassportNumber,
		Nationality:    f.Nationality,
		Purpose:        f.Purpose,
	}
}

type ReviewRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

func (f *ReviewRequest) Validate() error {
	trim(&f.Status)
	return ValidateStruct(f,
		validation.Field(&f.Status, validation.Required.Error("validation.status_invalid"), inStrings("validation.status_invalid", entity.ApplicationStatuses)),
		validation.Field(&f.AdminNotes, maxRunes(4000)),
	)
}

func (f *ReviewRequest) Review() *entity.ApplicationReview {
	return &entity.ApplicationReview{
		Status:     entity.ApplicationStatus(f.Status),
		AdminNotes: f.AdminNotes,
	}
}
