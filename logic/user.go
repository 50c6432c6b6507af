package logic

import (
	"errors"

	"gorm.io/gorm"

	"convo-backend/dao"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
	"convo-backend/pkg/query"
)

// UserLogic handles user-related business logic
type UserLogic struct {
	userDAO *dao.UserDAO
}

func NewUserLogic(userDAO *dao.UserDAO) *UserLogic {
	return &UserLogic{userDAO: userDAO}
}

// Authenticate verifies email/password credentials and returns the user.
// The same error covers an unknown email and a wrong password.
func (l *UserLogic) Authenticate(email, password string) (*models.User, error) {
	user, err := l.userDAO.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("incorrect email or password")
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, apperrors.Unauthenticated("incorrect email or password")
	}
	return user, nil
}

// QueryUsers lists users with pagination
func (l *UserLogic) QueryUsers(opts query.Options) ([]models.User, error) {
	q, err := query.Build(nil, opts, models.UserColumns)
	if err != nil {
		return nil, err
	}
	return l.userDAO.ListUsers(q, models.UserDefaultFields)
}

// GetUserByID retrieves a user with the given projection
func (l *UserLogic) GetUserByID(id int64, fields []string) (*models.User, error) {
	if len(fields) == 0 {
		fields = models.UserDefaultFields
	}
	user, err := l.userDAO.GetUserByID(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}
