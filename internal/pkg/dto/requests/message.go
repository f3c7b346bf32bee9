package requests

type SendMessage struct {
	SenderID    string `json:"-" validate:"required"`
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body" validate:"required,max=5000"`
}
