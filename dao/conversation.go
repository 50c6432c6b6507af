package dao

import (
	"gorm.io/gorm"

	"convo-backend/models"
	"convo-backend/pkg/query"
)

// ConversationDAO handles conversation-related database operations
type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

// CreateConversation creates a new conversation
func (d *ConversationDAO) CreateConversation(userID int64) (*models.Conversation, error) {
	convo := &models.Conversation{UserID: userID}
	if err := d.db.Create(convo).Error; err != nil {
		return nil, err
	}
	return convo, nil
}

// GetConversationByID retrieves a conversation by id with the given projection
func (d *ConversationDAO) GetConversationByID(id int64, fields []string) (*models.Conversation, error) {
	var convo models.Conversation
	err := d.db.Select(columns(fields, models.ConversationColumns)).
		Where("id = ?", id).
		First(&convo).Error
	if err != nil {
		return nil, err
	}
	return &convo, nil
}

// ListConversations retrieves conversations matching the query descriptor
func (d *ConversationDAO) ListConversations(q query.Descriptor, fields []string) ([]models.Conversation, error) {
	var convos []models.Conversation
	tx := d.db.Select(columns(fields, models.ConversationColumns)).Where(q.Filter)
	if order := q.OrderClause(); order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&convos).Error; err != nil {
		return nil, err
	}
	return convos, nil
}

// GetConversationsByUserID retrieves all conversations owned by a user
func (d *ConversationDAO) GetConversationsByUserID(userID int64, fields []string) ([]models.Conversation, error) {
	var convos []models.Conversation
	err := d.db.Select(columns(fields, models.ConversationColumns)).
		Where("user_id = ?", userID).
		Find(&convos).Error
	if err != nil {
		return nil, err
	}
	return convos, nil
}

// ConversationExists reports whether a conversation with the id exists
func (d *ConversationDAO) ConversationExists(id int64) (bool, error) {
	var count int64
	if err := d.db.Model(&models.Conversation{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateConversation applies the column updates to the conversation
func (d *ConversationDAO) UpdateConversation(id int64, updates map[string]any) (*models.Conversation, error) {
	if err := d.db.Model(&models.Conversation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return d.GetConversationByID(id, models.ConversationDefaultFields)
}

// DeleteConversationCascade deletes a conversation and all of its messages.
// The persistence schema has no ON DELETE CASCADE, so both deletes run
// inside one transaction: messages first, then the conversation.
func (d *ConversationDAO) DeleteConversationCascade(id int64) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Conversation{}).Error
	})
}
