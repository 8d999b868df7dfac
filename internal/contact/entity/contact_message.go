package entity

import "time"

// ContactMessage is a row of get_contact_messages_admin.
type ContactMessage struct {
	ID          int64     `db:"id_contact_message" json:"id_contact_message"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Message     string    `db:"message" json:"message"`
	SubmittedAt time.Time `db:"submission_date" json:"submission_date"`
	Status      string    `db:"status" json:"status"`
}

type InsertResult struct {
	NewID *int64 `db:"new_id"`
}

type StatusUpdateResult struct {
	Result string `db:"status_update_result"`
}
