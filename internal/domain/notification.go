package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an alert issued by an admin for a location.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"` // issuing admin
	Location  string             `bson:"location" json:"location"`
	Severity  string             `bson:"severity,omitempty" json:"severity,omitempty"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type AddNotificationInput struct {
	Email    string
	Location string
	Severity string
	Date     string
	Time     string
	Text     string
}
