package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Name          string    `json:"name,omitempty" bson:"name,omitempty"`
	Password      string    `json:"-" bson:"password"`
	Avatar        string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role          []string  `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refreshtoken,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refreshexp,omitempty"`
}

// Preferences holds per-user defaults applied across the app.
type Preferences struct {
	UserID               string `json:"userid,omitempty" bson:"userid"`
	DefaultTransportMode string `json:"default_transport_mode" bson:"default_transport_mode"`
	Currency             string `json:"currency" bson:"currency"`
	Language             string `json:"language" bson:"language"`
}
