package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AccountCreated carries the client-supplied registration timestamp.
type AccountCreated struct {
	CreatedAt string `bson:"createdAt" json:"createdAt"`
}

// User represents a user document in the store.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"password,omitempty"`
	DisplayName    string             `bson:"displayName" json:"displayName"`
	PhotoURL       string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	AccountCreated AccountCreated     `bson:"accountCreated" json:"accountCreated"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	DisplayName    string         `json:"displayName"`
	PhotoURL       string         `json:"photoURL"`
	AccountCreated AccountCreated `json:"accountCreated"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView represents user data safe for login responses (no password).
type UserView struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL,omitempty"`
}
