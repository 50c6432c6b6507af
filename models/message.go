package models

import "time"

// Message represents a message posted by one user inside one conversation.
type Message struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID int64     `gorm:"not null;index" json:"conversationId"`
	UserID         int64     `gorm:"not null;index" json:"userId"`
	MessageText    string    `gorm:"not null" json:"messageText"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MessageDefaultFields is the default projection.
var MessageDefaultFields = []string{"id", "conversationId", "userId", "messageText", "createdAt", "updatedAt"}

// MessageColumns maps projectable field names to database columns.
var MessageColumns = map[string]string{
	"id":             "id",
	"conversationId": "conversation_id",
	"userId":         "user_id",
	"messageText":    "message_text",
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
}

// MessageSortable lists the fields a list request may sort by.
var MessageSortable = MessageColumns

// Project returns only the requested fields.
func (m *Message) Project(fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			out[f] = m.ID
		case "conversationId":
			out[f] = m.ConversationID
		case "userId":
			out[f] = m.UserID
		case "messageText":
			out[f] = m.MessageText
		case "createdAt":
			out[f] = m.CreatedAt
		case "updatedAt":
			out[f] = m.UpdatedAt
		}
	}
	return out
}
