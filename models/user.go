package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"convo-backend/config"
)

// User represents an account managed by the identity subsystem. This
// service only reads id and role on the hot path; email and password
// exist for token issuance and seeding.
type User struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string      `gorm:"uniqueIndex;not null" json:"email"`
	Name      string      `gorm:"not null" json:"name"`
	Password  string      `gorm:"not null" json:"-"`
	Role      config.Role `gorm:"not null;default:USER" json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserDefaultFields is the default projection: every non-sensitive
// attribute. Password is never projectable.
var UserDefaultFields = []string{"id", "email", "name", "role", "createdAt", "updatedAt"}

// UserColumns maps projectable field names to database columns.
var UserColumns = map[string]string{
	"id":        "id",
	"email":     "email",
	"name":      "name",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// Project returns only the requested fields.
func (u *User) Project(fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			out[f] = u.ID
		case "email":
			out[f] = u.Email
		case "name":
			out[f] = u.Name
		case "role":
			out[f] = u.Role
		case "createdAt":
			out[f] = u.CreatedAt
		case "updatedAt":
			out[f] = u.UpdatedAt
		}
	}
	return out
}
