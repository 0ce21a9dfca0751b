package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Admin accounts share the same shape but live
// in their own collection.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	MobileNumber string             `bson:"mobile_number" json:"mobile_number"`
	Location     string             `bson:"location" json:"location"`
	DateOfBirth  string             `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	CreatedAt    *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type RegisterInput struct {
	Email        string
	Password     string
	Name         string
	MobileNumber string
	Location     string
	DateOfBirth  string
	Gender       string
}
