package models

import "time"

// Conversation represents a conversation owned by exactly one user.
type Conversation struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConversationDefaultFields is the default projection.
var ConversationDefaultFields = []string{"id", "userId", "createdAt", "updatedAt"}

// ConversationColumns maps projectable field names to database columns.
var ConversationColumns = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ConversationSortable lists the fields a list request may sort by.
var ConversationSortable = ConversationColumns

// Project returns only the requested fields.
func (c *Conversation) Project(fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			out[f] = c.ID
		case "userId":
			out[f] = c.UserID
		case "createdAt":
			out[f] = c.CreatedAt
		case "updatedAt":
			out[f] = c.UpdatedAt
		}
	}
	return out
}
