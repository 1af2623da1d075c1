package dto

import (
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"golang.org/x/text/language"
)

// Application is a visa application as served to clients, with the
// status and visa type labels resolved in the request language.
type Application struct {
	entity.VisaApplication
	StatusLabel   string `json:"status_label"`
	VisaTypeLabel string `json:"visa_type_label"`
}

func ConvertEntityApplication(cs *content.Store, lang language.Tag, a *entity.VisaApplication) Application {
	return Application{
		VisaApplication: *a,
		StatusLabel:     cs.StatusLabel(lang, a.Status),
		VisaTypeLabel:   cs.VisaTypeLabel(lang, a.VisaType),
	}
}

// ConvertEntityApplications keeps the input order and never returns nil.
func ConvertEntityApplications(cs *content.Store, lang language.Tag, as []entity.VisaApplication) []Application {
	res := make([]Application, 0, len(as))
	for i := range as {
		res = append(res, ConvertEntityApplication(cs, lang, &as[i]))
	}
	return res
}
