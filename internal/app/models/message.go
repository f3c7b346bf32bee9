package models

import "time"

type Message struct {
	ID          string    `bson:"_id,omitempty"`
	SenderID    string    `bson:"senderId"`
	RecipientID string    `bson:"recipientId"`
	Body        string    `bson:"body"`
	Read        bool      `bson:"read"`
	SentAt      time.Time `bson:"sentAt"`
}
