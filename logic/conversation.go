package logic

import (
	"errors"

	"gorm.io/gorm"

	"convo-backend/dao"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
	"convo-backend/pkg/query"
)

// ConversationLogic handles conversation-related business logic
type ConversationLogic struct {
	userDAO  *dao.UserDAO
	convoDAO *dao.ConversationDAO
}

func NewConversationLogic(
	userDAO *dao.UserDAO,
	convoDAO *dao.ConversationDAO,
) *ConversationLogic {
	return &ConversationLogic{
		userDAO:  userDAO,
		convoDAO: convoDAO,
	}
}

// CreateConversation creates a new conversation for an existing user.
// The owning user must exist before the write is issued.
func (l *ConversationLogic) CreateConversation(userID int64) (*models.Conversation, error) {
	exists, err := l.userDAO.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ReferenceNotFound("user not found")
	}
	return l.convoDAO.CreateConversation(userID)
}

// QueryConversations lists conversations by filter with pagination
func (l *ConversationLogic) QueryConversations(userID *int64, opts query.Options) ([]models.Conversation, error) {
	filter := map[string]any{}
	if userID != nil {
		filter["user_id"] = *userID
	}
	q, err := query.Build(filter, opts, models.ConversationSortable)
	if err != nil {
		return nil, err
	}
	return l.convoDAO.ListConversations(q, models.ConversationDefaultFields)
}

// GetConversationByID retrieves a conversation with the given projection
func (l *ConversationLogic) GetConversationByID(id int64, fields []string) (*models.Conversation, error) {
	if len(fields) == 0 {
		fields = models.ConversationDefaultFields
	}
	convo, err := l.convoDAO.GetConversationByID(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("conversation not found")
		}
		return nil, err
	}
	return convo, nil
}

// GetConversationsByUserID retrieves all conversations owned by a user
func (l *ConversationLogic) GetConversationsByUserID(userID int64) ([]models.Conversation, error) {
	return l.convoDAO.GetConversationsByUserID(userID, models.ConversationDefaultFields)
}

// UpdateConversationByID updates a conversation after an existence check,
// so a missing target is reported as not found rather than a silent no-op
func (l *ConversationLogic) UpdateConversationByID(id int64, userID *int64) (*models.Conversation, error) {
	if _, err := l.GetConversationByID(id, []string{"id"}); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if userID != nil {
		updates["user_id"] = *userID
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("update body must contain at least one field")
	}
	return l.convoDAO.UpdateConversation(id, updates)
}

// DeleteConversationByID deletes a conversation and cascades to its
// messages. Deleting an already-deleted conversation reports not found.
func (l *ConversationLogic) DeleteConversationByID(id int64) error {
	if _, err := l.GetConversationByID(id, []string{"id"}); err != nil {
		return err
	}
	return l.convoDAO.DeleteConversationCascade(id)
}
