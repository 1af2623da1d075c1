package entity

import (
	"database/sql"
	"time"
)

// QueuedMail is an outgoing notification waiting in mail_queue.
type QueuedMail struct {
	Id            int            `db:"id"`
	ApplicationId sql.NullString `db:"application_id"`
	To            string         `db:"to_email"`
	Subject       string         `db:"subject"`
	Html          string         `db:"html"`
	Sent          bool           `db:"sent"`
	SentAt        sql.NullTime   `db:"sent_at"`
	CreatedAt     time.Time      `db:"created_at"`
	ErrMsg        sql.NullString `db:"error_msg"`
}
