package entity

import "time"

// SupportChannel is the single realtime channel shared by visitors and admins.
const SupportChannel = "support_messages"

// SupportMessage rows are append-only.
type SupportMessage struct {
	Id        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	SupportMessageInsert
}

type SupportMessageInsert struct {
	UserName     string `db:"user_name" json:"user_name"`
	Message      string `db:"message" json:"message"`
	IsAdminReply bool   `db:"is_admin_reply" json:"is_admin_reply"`
}
