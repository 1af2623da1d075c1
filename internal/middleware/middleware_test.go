package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestClientIdentifier(t *testing.T) {
	var got string
	h := ClientIdentifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientIP(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.7", got)

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.9", got)
}

func TestLocale(t *testing.T) {
	cs, err := content.New(&content.Config{WhatsAppNumber: "966500000000"})
	require.NoError(t, err)

	var got language.Tag
	h := Locale(cs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = content.LanguageFrom(r.Context())
	}))

	cases := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   language.Tag
	}{
		{name: "default", url: "/", want: content.Arabic},
		{name: "accept language", url: "/", accept: "en-US,en;q=0.9", want: content.English},
		{name: "cookie beats header", url: "/", cookie: "ar", accept: "en", want: content.Arabic},
		{name: "query beats cookie", url: "/?lang=en", cookie: "ar", want: content.English},
		{name: "unsupported query ignored", url: "/?lang=xx-invalid!", accept: "en", want: content.English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookie, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.String(), rec.Header().Get("Content-Language"))
		})
	}
}
