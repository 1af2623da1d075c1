// Package content serves the bilingual marketing copy and UI labels.
package content

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"path"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

var (
	Arabic  = language.Arabic
	English = language.English

	// Supported lists the served languages, the first one is the default.
	Supported = []language.Tag{Arabic, English}
)

type Config struct {
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

// Store resolves message ids against the embedded ar/en tables.
type Store struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	c       *Config
}

func New(c *Config) (*Store, error) {
	bundle := i18n.NewBundle(Arabic)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("can't read locales: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		buf, err := localesFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("can't read locale %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, fmt.Errorf("can't parse locale %s: %w", p, err)
		}
	}

	return &Store{
		bundle:  bundle,
		matcher: language.NewMatcher(Supported),
		c:       c,
	}, nil
}

// Match picks the supported language closest to the candidates, Arabic
// when nothing matches.
func (s *Store) Match(candidates ...language.Tag) language.Tag {
	if len(candidates) == 0 {
		return Arabic
	}
	_, idx, conf := s.matcher.Match(candidates...)
	if conf == language.No {
		return Arabic
	}
	return Supported[idx]
}

// Parse maps a raw code such as "en" or "ar-SA" to a supported language.
func (s *Store) Parse(code string) (language.Tag, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return Arabic, false
	}
	_, idx, conf := s.matcher.Match(tag)
	if conf == language.No {
		return Arabic, false
	}
	return Supported[idx], true
}

func (s *Store) Localizer(lang language.Tag) *i18n.Localizer {
	return i18n.NewLocalizer(s.bundle, lang.String())
}

// T localizes id, returning the id itself when the message is missing so a
// broken table never breaks a response.
func (s *Store) T(lang language.Tag, id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := s.Localizer(lang).Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

func (s *Store) StatusLabel(lang language.Tag, st entity.ApplicationStatus) string {
	return s.T(lang, "status."+string(st))
}

func (s *Store) VisaTypeLabel(lang language.Tag, vt entity.VisaType) string {
	return s.T(lang, "visa_type."+string(vt))
}

// Dir is the text direction of lang.
func Dir(lang language.Tag) string {
	base, _ := lang.Base()
	if base.String() == "ar" {
		return "rtl"
	}
	return "ltr"
}

// WhatsAppURL builds the wa.me link with the localized greeting prefilled.
func (s *Store) WhatsAppURL(lang language.Tag) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + s.c.WhatsAppNumber,
	}
	q := url.Values{}
	q.Set("text", s.T(lang, "contact.whatsapp_message"))
	u.RawQuery = q.Encode()
	return u.String()
}

func numbered(prefix string, n int, suffix string) string {
	return prefix + "." + strconv.Itoa(n) + suffix
}

type ctxKey struct{}

func WithLanguage(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// LanguageFrom returns the negotiated language, Arabic when none was set.
func LanguageFrom(ctx context.Context) language.Tag {
	if lang, ok := ctx.Value(ctxKey{}).(language.Tag); ok {
		return lang
	}
	return Arabic
}
