package middleware

import (
	"net/http"

	"github.com/nuxtvisa/visa-portal/internal/content"
	"golang.org/x/text/language"
)

const (
	LangQueryParam = "lang"
	LangCookie     = "lang"
)

// Locale negotiates the response language: the lang query parameter, then
// the lang cookie, then Accept-Language. Unsupported values fall through.
func Locale(cs *content.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := negotiate(cs, r)
			w.Header().Set("Content-Language", lang.String())
			next.ServeHTTP(w, r.WithContext(content.WithLanguage(r.Context(), lang)))
		})
	}
}

func negotiate(cs *content.Store, r *http.Request) language.Tag {
	if q := r.URL.Query().Get(LangQueryParam); q != "" {
		if tag, ok := cs.Parse(q); ok {
			return tag
		}
	}
	if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
		if tag, ok := cs.Parse(c.Value); ok {
			return tag
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return content.Arabic
	}
	return cs.Match(tags...)
}
