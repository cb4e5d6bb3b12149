// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth methods a user account can carry.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
)

// User represents a student or an administrator.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	EmailCI    string             `bson:"email_ci" json:"email_ci"`

	AuthMethod   string `bson:"auth_method" json:"auth_method"` // "password" or "google"
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	Role   string `bson:"role" json:"role"`     // "student" or "admin"
	Status string `bson:"status" json:"status"` // "active" or "disabled"

	// PreferredLang is "en" or "de"; empty means follow the browser.
	PreferredLang string `bson:"preferred_lang,omitempty" json:"preferred_lang,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
