package gerr

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	ErrAuthRequired   = errors.New("authentication required")
	ErrAdminOnly      = errors.New("admin role required")
	ErrBadCredentials = errors.New("bad credentials")
	ErrMasterPassword = errors.New("bad master password")
	ErrBadRequest     = errors.New("malformed request")

	BadMailRequest      = errors.New("bad mail request")
	MailApiLimitReached = errors.New("mail api limit reached")
)
