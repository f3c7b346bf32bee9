package responses

import "time"

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
	Read        bool      `json:"read"`
}
