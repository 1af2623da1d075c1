// Package httpx writes JSON responses and maps domain errors to localized
// problem bodies.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/nuxtvisa/visa-portal/internal/content"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/nuxtvisa/visa-portal/internal/form"
	"github.com/nuxtvisa/visa-portal/internal/ratelimit"
)

const (
	RedirectAuth = "/auth"
	RedirectHome = "/"

	maxBodyBytes = 1 << 20
)

// Problem is the body of every non-2xx response.
type Problem struct {
	Error    string            `json:"error"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type Responder struct {
	cs *content.Store
}

func NewResponder(cs *content.Store) *Responder {
	return &Responder{cs: cs}
}

// T localizes id in the language negotiated for r.
func (rs *Responder) T(r *http.Request, id string) string {
	return rs.cs.T(content.LanguageFrom(r.Context()), id)
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// Fail writes a localized problem with the given message id.
func (rs *Responder) Fail(w http.ResponseWriter, r *http.Request, status int, msgID, redirect string) {
	rs.JSON(w, status, &Problem{
		Error:    rs.T(r, msgID),
		Redirect: redirect,
	})
}

// Error maps err to a status and a localized problem. Errors without a
// mapping are logged and reported with fallbackID as 500.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error, fallbackID string) {
	var fe form.FieldErrors
	switch {
	case errors.As(err, &fe):
		fields := make(map[string]string, len(fe))
		for k, id := range fe {
			fields[k] = rs.T(r, id)
		}
		rs.JSON(w, http.StatusBadRequest, &Problem{
			Error:  rs.T(r, "error.validation"),
			Fields: fields,
		})
	case errors.Is(err, gerr.ErrEmailTaken):
		rs.JSON(w, http.StatusBadRequest, &Problem{
			Error:  rs.T(r, "error.email_taken"),
			Fields: map[string]string{"email": rs.T(r, "error.email_taken")},
		})
	case errors.Is(err, gerr.ErrBadRequest):
		rs.Fail(w, r, http.StatusBadRequest, "error.bad_request", "")
	case errors.Is(err, gerr.ErrAuthRequired):
		rs.Fail(w, r, http.StatusUnauthorized, "error.auth_required", RedirectAuth)
	case errors.Is(err, gerr.ErrBadCredentials):
		rs.Fail(w, r, http.StatusUnauthorized, "error.bad_credentials", "")
	case errors.Is(err, gerr.ErrMasterPassword):
		rs.Fail(w, r, http.StatusUnauthorized, "error.master_password", "")
	case errors.Is(err, gerr.ErrAdminOnly):
		rs.Fail(w, r, http.StatusForbidden, "error.admin_only", RedirectHome)
	case errors.Is(err, gerr.ErrNotFound):
		rs.Fail(w, r, http.StatusNotFound, "error.not_found", "")
	case errors.Is(err, ratelimit.ErrLimited):
		rs.Fail(w, r, http.StatusTooManyRequests, "error.rate_limited", "")
	default:
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("err", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		rs.Fail(w, r, http.StatusInternalServerError, fallbackID, "")
	}
}

// Decode reads a JSON body into v. Any decoding problem is gerr.ErrBadRequest.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %v: %w", err, gerr.ErrBadRequest)
	}
	return nil
}
