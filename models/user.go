package models

import "time"

// Account roles and approval states. A user may not log in until an
// admin has moved their status to StatusApproved.
const (
	RoleClient = "client"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Name          string    `json:"name,omitempty" bson:"name,omitempty"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          string    `json:"role" bson:"role"`
	Status        string    `json:"status" bson:"status"`
	PhoneNumber   string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}
