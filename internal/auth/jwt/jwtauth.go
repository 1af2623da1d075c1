package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const sessionClaim = "sid"

// VerifySessionToken returns the account id and the session id carried by token.
func VerifySessionToken(jwtAuth *jwtauth.JWTAuth, token string) (subject string, sessionId string, err error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", "", err
	}
	v, ok := t.Get(sessionClaim)
	if !ok {
		return "", "", fmt.Errorf("token has no session claim")
	}
	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", "", fmt.Errorf("token has malformed session claim")
	}
	if t.Subject() == "" {
		return "", "", fmt.Errorf("token has no subject")
	}
	return t.Subject(), sid, nil
}

// NewSessionToken issues a token bound to a stored session, so that
// deleting the session revokes the token before it expires.
func NewSessionToken(jwtAuth *jwtauth.JWTAuth, expiresAt time.Time, subject, sessionId string) (string, error) {
	_, ts, err := jwtAuth.Encode(map[string]interface{}{
		"exp":        expiresAt.Unix(),
		"sub":        subject,
		sessionClaim: sessionId,
	})
	return ts, err
}
