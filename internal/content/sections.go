package content

import (
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"golang.org/x/text/language"
)

type Sections struct {
	Lang     string   `json:"lang"`
	Dir      string   `json:"dir"`
	Hero     Hero     `json:"hero"`
	Services Services `json:"services"`
	Process  Process  `json:"process"`
	FAQ      FAQ      `json:"faq"`
	Contact  Contact  `json:"contact"`
	Labels   Labels   `json:"labels"`
}

type Hero struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	CTAWhatsApp string   `json:"cta_whatsapp"`
	CTACallback string   `json:"cta_callback"`
	Features    []string `json:"features"`
	Stats       []Stat   `json:"stats"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Services struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	CTA      string    `json:"cta"`
	Cards    []Service `json:"cards"`
}

type Service struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Features []string `json:"features"`
}

type Process struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Steps    []Step `json:"steps"`
}

type Step struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Details string `json:"details"`
}

type FAQ struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Items    []QA   `json:"items"`
}

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Contact struct {
	WhatsAppURL  string `json:"whatsapp_url"`
	InquiryTitle string `json:"inquiry_title"`
	InquiryText  string `json:"inquiry_text"`
}

type Labels struct {
	Statuses  map[entity.ApplicationStatus]string `json:"statuses"`
	VisaTypes map[entity.VisaType]string          `json:"visa_types"`
	ChatTitle string                              `json:"chat_title"`
}

var (
	serviceKeys = []string{"work", "residence", "individual"}

	processSteps = 5
	faqItems     = 6
	featureCount = 3
)

// Sections renders every landing page section in lang.
func (s *Store) Sections(lang language.Tag) *Sections {
	t := func(id string) string { return s.T(lang, id) }

	sec := &Sections{
		Lang: lang.String(),
		Dir:  Dir(lang),
		Hero: Hero{
			Title:       t("hero.title"),
			Subtitle:    t("hero.subtitle"),
			CTAWhatsApp: t("hero.cta_whatsapp"),
			CTACallback: t("hero.cta_callback"),
			Stats: []Stat{
				{Value: "500+", Label: t("hero.stat.visas")},
				{Value: "24/7", Label: t("hero.stat.support")},
				{Value: "98%", Label: t("hero.stat.success")},
			},
		},
		Services: Services{
			Title:    t("services.title"),
			Subtitle: t("services.subtitle"),
			CTA:      t("services.cta"),
		},
		Process: Process{
			Title:    t("process.title"),
			Subtitle: t("process.subtitle"),
		},
		FAQ: FAQ{
			Title:    t("faq.title"),
			Subtitle: t("faq.subtitle"),
		},
		Contact: Contact{
			WhatsAppURL:  s.WhatsAppURL(lang),
			InquiryTitle: t("contact.inquiry_title"),
			InquiryText:  t("contact.inquiry_text"),
		},
		Labels: Labels{
			Statuses:  make(map[entity.ApplicationStatus]string, len(entity.ApplicationStatuses)),
			VisaTypes: make(map[entity.VisaType]string, len(entity.VisaTypes)),
			ChatTitle: t("chat.title"),
		},
	}

	for i := 1; i <= featureCount; i++ {
		sec.Hero.Features = append(sec.Hero.Features, t(numbered("hero.feature", i, "")))
	}
	for _, key := range serviceKeys {
		card := Service{
			Key:   key,
			Title: t("services." + key + ".title"),
			Text:  t("services." + key + ".text"),
		}
		for i := 1; i <= featureCount; i++ {
			card.Features = append(card.Features, t(numbered("services."+key+".feature", i, "")))
		}
		sec.Services.Cards = append(sec.Services.Cards, card)
	}
	for i := 1; i <= processSteps; i++ {
		sec.Process.Steps = append(sec.Process.Steps, Step{
			Number:  i,
			Title:   t(numbered("process.step", i, ".title")),
			Summary: t(numbered("process.step", i, ".summary")),
			Details: t(numbered("process.step", i, ".details")),
		})
	}
	for i := 1; i <= faqItems; i++ {
		sec.FAQ.Items = append(sec.FAQ.Items, QA{
			Question: t(numbered("faq", i, ".question")),
			Answer:   t(numbered("faq", i, ".answer")),
		})
	}
	for _, st := range entity.ApplicationStatuses {
		sec.Labels.Statuses[st] = s.StatusLabel(lang, st)
	}
	for _, vt := range entity.VisaTypes {
		sec.Labels.VisaTypes[vt] = s.VisaTypeLabel(lang, vt)
	}
	return sec
}
