package frontend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nuxtvisa/visa-portal/internal/apisrv/httpx"
	"github.com/nuxtvisa/visa-portal/internal/chat"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency/mocks"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
	"github.com/nuxtvisa/visa-portal/internal/realtime"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validApplication = `{
	"applicant_name": "Sara Ali",
	"applicant_email": "sara@example.com",
	"applicant_phone": "0501234567",
	"visa_type": "work",
	"passport_number": "A1234567",
	"nationality": "Saudi"
}`

type env struct {
	srv  *Server
	apps *mocks.Applications
	msgs *mocks.Messages
}

func newEnv(t *testing.T, rlc *ratelimit.Config) *env {
	repo := mocks.NewRepository(t)
	e := &env{
		apps: mocks.NewApplications(t),
		msgs: mocks.NewMessages(t),
	}
	repo.EXPECT().Applications().Return(e.apps).Maybe()
	repo.EXPECT().Messages().Return(e.msgs).Maybe()

	cs, err := content.New(&content.Config{WhatsAppNumber: "966500000000"})
	require.NoError(t, err)
	if rlc == nil {
		rlc = &ratelimit.Config{}
	}
	rl := ratelimit.NewMultiKeyLimiter(rlc)
	t.Cleanup(rl.Close)

	broker := realtime.NewMemory(16)
	t.Cleanup(func() { broker.Close() })
	svc := chat.New(repo, broker)
	hub := chat.NewHub(svc, cs, nil, nil)
	t.Cleanup(hub.Close)

	e.srv = New(repo, cs, svc, hub, rl, httpx.NewResponder(cs))
	return e
}

var identity = &session.Identity{AccountId: "acc-1", SessionId: "sess-1", Email: "sara@example.com"}

// signedIn stands in for the auth middleware.
func signedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), identity)))
	})
}

func anonymous(next http.Handler) http.Handler {
	return next
}

func (e *env) do(t *testing.T, guard func(http.Handler) http.Handler, method, path, body string, ctx context.Context) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	e.srv.Routes(guard).ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func application(id string, created time.Time) entity.VisaApplication {
	return entity.VisaApplication{
		Id:        id,
		UserId:    "acc-1",
		Status:    entity.StatusPending,
		CreatedAt: created,
		UpdatedAt: created,
		VisaApplicationInsert: entity.VisaApplicationInsert{
			ApplicantName:  "Sara Ali",
			ApplicantEmail: "sara@example.com",
			ApplicantPhone: "0501234567",
			VisaType:       entity.VisaWork,
			PassportNumber: "A1234567",
			Nationality:    "Saudi",
		},
	}
}

func TestSubmitApplicationWithoutSession(t *testing.T) {
	e := newEnv(t, nil)

	// the handler checks the session itself too
	rec := httptest.NewRecorder()
	e.srv.SubmitApplication(rec, httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(validApplication)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.Equal(t, httpx.RedirectAuth, p.Redirect)
}

func TestSubmitApplicationInvalid(t *testing.T) {
	e := newEnv(t, nil)

	rec := e.do(t, signedIn, http.MethodPost, "/applications", `{
		"applicant_name": "S",
		"applicant_email": "bad",
		"applicant_phone": "0501234567",
		"visa_type": "work",
		"passport_number": "A1234567",
		"nationality": "Saudi"
	}`, content.WithLanguage(context.Background(), content.English))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.Len(t, p.Fields, 2)
	assert.Contains(t, p.Fields, "applicant_name")
	assert.Contains(t, p.Fields, "applicant_email")
	assert.NotEqual(t, "validation.email_invalid", p.Fields["applicant_email"])
}

func TestSubmitApplication(t *testing.T) {
	e := newEnv(t, nil)

	stored := application("app-1", time.Now())
	e.apps.EXPECT().AddApplication(mock.Anything, "acc-1", "en", &entity.VisaApplicationInsert{
		ApplicantName:  "Sara Ali",
		ApplicantEmail: "sara@example.com",
		ApplicantPhone: "0501234567",
		VisaType:       entity.VisaWork,
		PassportNumber: "A1234567",
		Nationality:    "Saudi",
	}).Return(&stored, nil).Once()

	var submitted []string
	e.srv.OnSubmit(func(a *entity.VisaApplication) { submitted = append(submitted, a.Id) })

	rec := e.do(t, signedIn, http.MethodPost, "/applications", validApplication,
		content.WithLanguage(context.Background(), content.English))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Application struct {
			Id            string `json:"id"`
			UserId        string `json:"user_id"`
			Status        string `json:"status"`
			StatusLabel   string `json:"status_label"`
			VisaTypeLabel string `json:"visa_type_label"`
		} `json:"application"`
		Notice   string `json:"notice"`
		Redirect string `json:"redirect"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "app-1", resp.Application.Id)
	assert.Equal(t, "acc-1", resp.Application.UserId)
	assert.Equal(t, "pending", resp.Application.Status)
	assert.NotEqual(t, "status.pending", resp.Application.StatusLabel)
	assert.NotEqual(t, "visa_type.work", resp.Application.VisaTypeLabel)
	assert.Equal(t, RedirectMyApplications, resp.Redirect)
	assert.NotEmpty(t, resp.Notice)
	assert.Equal(t, []string{"app-1"}, submitted)
}

func TestSubmitApplicationStoreFailure(t *testing.T) {
	e := newEnv(t, nil)
	e.apps.EXPECT().AddApplication(mock.Anything, "acc-1", "ar", mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	rec := e.do(t, signedIn, http.MethodPost, "/applications", validApplication, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var p httpx.Problem
	decode(t, rec, &p)
	assert.NotEmpty(t, p.Error)
	assert.NotContains(t, p.Error, "connection refused")
}

func TestSubmitApplicationRateLimited(t *testing.T) {
	e := newEnv(t, &ratelimit.Config{ApplicationsPerHour: 1})
	stored := application("app-1", time.Now())
	e.apps.EXPECT().AddApplication(mock.Anything, "acc-1", "ar", mock.Anything).Return(&stored, nil).Once()

	rec := e.do(t, signedIn, http.MethodPost, "/applications", validApplication, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, signedIn, http.MethodPost, "/applications", validApplication, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestListMyApplications(t *testing.T) {
	e := newEnv(t, nil)
	now := time.Now()
	e.apps.EXPECT().GetApplicationsByUser(mock.Anything, "acc-1").Return([]entity.VisaApplication{
		application("newer", now),
		application("older", now.Add(-time.Hour)),
	}, nil).Once()

	rec := e.do(t, signedIn, http.MethodGet, "/applications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Applications []struct {
			Id string `json:"id"`
		} `json:"applications"`
		Empty bool `json:"empty"`
	}
	decode(t, rec, &resp)
	require.Len(t, resp.Applications, 2)
	assert.Equal(t, "newer", resp.Applications[0].Id)
	assert.Equal(t, "older", resp.Applications[1].Id)
	assert.False(t, resp.Empty)
}

func TestListMyApplicationsEmpty(t *testing.T) {
	e := newEnv(t, nil)
	e.apps.EXPECT().GetApplicationsByUser(mock.Anything, "acc-1").Return([]entity.VisaApplication{}, nil).Once()

	rec := e.do(t, signedIn, http.MethodGet, "/applications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applications":[]`)
	assert.Contains(t, rec.Body.String(), `"empty":true`)
}

func TestListMyApplicationsRequiresSession(t *testing.T) {
	e := newEnv(t, nil)
	rec := e.do(t, anonymous, http.MethodGet, "/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatMessages(t *testing.T) {
	e := newEnv(t, nil)
	e.msgs.EXPECT().GetMessages(mock.Anything).Return(nil, nil).Once()

	rec := e.do(t, anonymous, http.MethodGet, "/chat/messages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"messages":[]`)
}

func TestSendChatMessage(t *testing.T) {
	e := newEnv(t, nil)

	rec := e.do(t, anonymous, http.MethodPost, "/chat/messages", `{"user_name":"  ","message":"hi"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var p httpx.Problem
	decode(t, rec, &p)
	assert.Contains(t, p.Fields, "user_name")

	e.msgs.EXPECT().AddMessage(mock.Anything, &entity.SupportMessageInsert{
		UserName: "Omar",
		Message:  "hi",
	}).Return(&entity.SupportMessage{
		Id:                   "m1",
		SupportMessageInsert: entity.SupportMessageInsert{UserName: "Omar", Message: "hi"},
	}, nil).Once()

	rec = e.do(t, anonymous, http.MethodPost, "/chat/messages", `{"user_name":"Omar","message":"hi"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp MessageResponse
	decode(t, rec, &resp)
	assert.Equal(t, "m1", resp.Message.Id)
	assert.False(t, resp.Message.IsAdminReply)
}

func TestChatSocketRequiresName(t *testing.T) {
	e := newEnv(t, nil)
	rec := e.do(t, anonymous, http.MethodGet, "/chat/ws?name=%20", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContent(t *testing.T) {
	e := newEnv(t, nil)

	rec := e.do(t, anonymous, http.MethodGet, "/content", "", content.WithLanguage(context.Background(), content.English))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Lang        string `json:"lang"`
		Dir         string `json:"dir"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "en", resp.Lang)
	assert.Equal(t, "ltr", resp.Dir)
	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/966500000000?text="))

	rec = e.do(t, anonymous, http.MethodGet, "/content", "", nil)
	decode(t, rec, &resp)
	assert.Equal(t, "ar", resp.Lang)
	assert.Equal(t, "rtl", resp.Dir)
}
