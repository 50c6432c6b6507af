package dao

import (
	"gorm.io/gorm"

	"convo-backend/models"
	"convo-backend/pkg/query"
)

// MessageDAO handles message-related database operations
type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// CreateMessage adds a message to a conversation
func (d *MessageDAO) CreateMessage(conversationID, userID int64, messageText string) (*models.Message, error) {
	msg := &models.Message{
		ConversationID: conversationID,
		UserID:         userID,
		MessageText:    messageText,
	}
	if err := d.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessageByID retrieves a message by id with the given projection
func (d *MessageDAO) GetMessageByID(id int64, fields []string) (*models.Message, error) {
	var msg models.Message
	err := d.db.Select(columns(fields, models.MessageColumns)).
		Where("id = ?", id).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages retrieves messages matching the query descriptor
func (d *MessageDAO) ListMessages(q query.Descriptor, fields []string) ([]models.Message, error) {
	var messages []models.Message
	tx := d.db.Select(columns(fields, models.MessageColumns)).Where(q.Filter)
	if order := q.OrderClause(); order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessagesByConversationID retrieves all messages in a conversation,
// oldest first
func (d *MessageDAO) GetMessagesByConversationID(conversationID int64, fields []string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.Select(columns(fields, models.MessageColumns)).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateMessage applies the column updates to the message
func (d *MessageDAO) UpdateMessage(id int64, updates map[string]any) (*models.Message, error) {
	if err := d.db.Model(&models.Message{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return d.GetMessageByID(id, models.MessageDefaultFields)
}

// DeleteMessage deletes a message by id
func (d *MessageDAO) DeleteMessage(id int64) error {
	return d.db.Where("id = ?", id).Delete(&models.Message{}).Error
}
