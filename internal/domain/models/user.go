// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values for User.Role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a directory record: one document per account allowed to use the
// platform. Accounts are provisioned by an admin (or the startup bootstrap);
// signing in with Google never creates one.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email" json:"email"`
	EmailCI  string             `bson:"email_ci" json:"email_ci"` // lowercase, diacritics-stripped

	// GoogleID is Google's subject identifier, linked on first successful
	// sign-in when the record was matched by email.
	GoogleID string `bson:"google_id,omitempty" json:"google_id,omitempty"`

	PhotoURL string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role     string `bson:"role" json:"role"`                       // admin | user
	Status   string `bson:"status,omitempty" json:"status,omitempty"` // active | disabled

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
