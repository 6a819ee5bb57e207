package models

import "time"

// Customer is a person who books appointments.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
