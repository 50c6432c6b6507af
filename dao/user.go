package dao

import (
	"gorm.io/gorm"

	"convo-backend/models"
	"convo-backend/pkg/query"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// GetUserByID retrieves a user by id with the given projection
func (d *UserDAO) GetUserByID(id int64, fields []string) (*models.User, error) {
	var user models.User
	err := d.db.Select(columns(fields, models.UserColumns)).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a full user record by email (login path)
func (d *UserDAO) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves users matching the query descriptor
func (d *UserDAO) ListUsers(q query.Descriptor, fields []string) ([]models.User, error) {
	var users []models.User
	tx := d.db.Select(columns(fields, models.UserColumns)).Where(q.Filter)
	if order := q.OrderClause(); order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserExists reports whether a user with the id exists
func (d *UserDAO) UserExists(id int64) (bool, error) {
	var count int64
	if err := d.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
