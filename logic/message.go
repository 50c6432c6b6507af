package logic

import (
	"errors"

	"gorm.io/gorm"

	"convo-backend/dao"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
	"convo-backend/pkg/query"
)

// MessageLogic handles message-related business logic
type MessageLogic struct {
	userDAO    *dao.UserDAO
	convoDAO   *dao.ConversationDAO
	messageDAO *dao.MessageDAO
}

func NewMessageLogic(
	userDAO *dao.UserDAO,
	convoDAO *dao.ConversationDAO,
	messageDAO *dao.MessageDAO,
) *MessageLogic {
	return &MessageLogic{
		userDAO:    userDAO,
		convoDAO:   convoDAO,
		messageDAO: messageDAO,
	}
}

// CreateMessage creates a message after verifying both referenced parents
// exist. A missing parent is a client error surfaced before the write.
func (l *MessageLogic) CreateMessage(conversationID, userID int64, messageText string) (*models.Message, error) {
	convoExists, err := l.convoDAO.ConversationExists(conversationID)
	if err != nil {
		return nil, err
	}
	if !convoExists {
		return nil, apperrors.ReferenceNotFound("conversation not found")
	}

	userExists, err := l.userDAO.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperrors.ReferenceNotFound("user not found")
	}

	return l.messageDAO.CreateMessage(conversationID, userID, messageText)
}

// QueryMessages lists messages by filter with pagination
func (l *MessageLogic) QueryMessages(conversationID, userID *int64, opts query.Options) ([]models.Message, error) {
	filter := map[string]any{}
	if conversationID != nil {
		filter["conversation_id"] = *conversationID
	}
	if userID != nil {
		filter["user_id"] = *userID
	}
	q, err := query.Build(filter, opts, models.MessageSortable)
	if err != nil {
		return nil, err
	}
	return l.messageDAO.ListMessages(q, models.MessageDefaultFields)
}

// GetMessageByID retrieves a message with the given projection
func (l *MessageLogic) GetMessageByID(id int64, fields []string) (*models.Message, error) {
	if len(fields) == 0 {
		fields = models.MessageDefaultFields
	}
	msg, err := l.messageDAO.GetMessageByID(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("message not found")
		}
		return nil, err
	}
	return msg, nil
}

// GetConversationMessages retrieves a conversation's messages oldest first.
// The conversation itself must exist.
func (l *MessageLogic) GetConversationMessages(conversationID int64) ([]models.Message, error) {
	exists, err := l.convoDAO.ConversationExists(conversationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("conversation not found")
	}
	return l.messageDAO.GetMessagesByConversationID(conversationID, models.MessageDefaultFields)
}

// UpdateMessageByID updates a message after an existence check
func (l *MessageLogic) UpdateMessageByID(id int64, messageText *string) (*models.Message, error) {
	if _, err := l.GetMessageByID(id, []string{"id"}); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if messageText != nil {
		updates["message_text"] = *messageText
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("update body must contain at least one field")
	}
	return l.messageDAO.UpdateMessage(id, updates)
}

// DeleteMessageByID deletes a message after an existence check
func (l *MessageLogic) DeleteMessageByID(id int64) error {
	if _, err := l.GetMessageByID(id, []string{"id"}); err != nil {
		return err
	}
	return l.messageDAO.DeleteMessage(id)
}
