package content

import (
	"context"
	"testing"

	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(&Config{WhatsAppNumber: "966500000000"})
	require.NoError(t, err)
	return s
}

func TestStore_T(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "قيد الانتظار", s.StatusLabel(Arabic, entity.StatusPending))
	assert.Equal(t, "Under Review", s.StatusLabel(English, entity.StatusUnderReview))
	assert.Equal(t, "تأشيرة عمل", s.VisaTypeLabel(Arabic, entity.VisaWork))
	assert.Equal(t, "Family", s.VisaTypeLabel(English, entity.VisaFamily))

	assert.Equal(t, "no.such.message", s.T(English, "no.such.message"))

	subject := s.T(English, "mail.status_subject", map[string]any{"Status": "Approved"})
	assert.Equal(t, "Your visa application status: Approved", subject)
}

func TestStore_EveryKeyTranslated(t *testing.T) {
	s := newTestStore(t)
	for _, lang := range Supported {
		sec := s.Sections(lang)
		for _, card := range sec.Services.Cards {
			assert.NotContains(t, card.Title, "services.")
			assert.Len(t, card.Features, 3)
		}
		for _, step := range sec.Process.Steps {
			assert.NotContains(t, step.Details, "process.step")
		}
		for _, qa := range sec.FAQ.Items {
			assert.NotContains(t, qa.Answer, "faq.")
		}
		for st, label := range sec.Labels.Statuses {
			assert.NotEqual(t, "status."+string(st), label)
		}
	}
}

func TestStore_Sections(t *testing.T) {
	s := newTestStore(t)

	ar := s.Sections(Arabic)
	assert.Equal(t, "rtl", ar.Dir)
	assert.Equal(t, "ar", ar.Lang)
	assert.Len(t, ar.Services.Cards, 3)
	assert.Len(t, ar.Process.Steps, 5)
	assert.Len(t, ar.FAQ.Items, 6)
	assert.Len(t, ar.Hero.Features, 3)
	assert.Equal(t, "كيف نعمل؟", ar.Process.Title)

	en := s.Sections(English)
	assert.Equal(t, "ltr", en.Dir)
	assert.Equal(t, "Work Visas", en.Services.Cards[0].Title)
	assert.Equal(t, "Delivery", en.Process.Steps[4].Title)
	assert.Equal(t, "Completed", en.Labels.Statuses[entity.StatusCompleted])
	assert.Contains(t, en.Contact.WhatsAppURL, "https://wa.me/966500000000?text=")
}

func TestStore_Match(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, English, s.Match(language.MustParse("en-GB")))
	assert.Equal(t, Arabic, s.Match(language.MustParse("ar-SA")))
	assert.Equal(t, Arabic, s.Match())

	tag, ok := s.Parse("en")
	assert.True(t, ok)
	assert.Equal(t, English, tag)

	_, ok = s.Parse("not a tag!")
	assert.False(t, ok)
}

func TestLanguageFrom(t *testing.T) {
	assert.Equal(t, Arabic, LanguageFrom(context.Background()))
	assert.Equal(t, English, LanguageFrom(WithLanguage(context.Background(), English)))
}
