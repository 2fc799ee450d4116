package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotiType string

const (
	NotiApplication     NotiType = "Application"
	NotiStatusUpdate    NotiType = "Status Update"
	NotiJobApproved     NotiType = "Job Approved"
	NotiJobResubmitted  NotiType = "Job Resubmitted"
	NotiCompanyApproved NotiType = "Company Approved"
	NotiSystem          NotiType = "System"
)

// Ref points a notification at the entity it is about.
type Ref struct {
	Entity EntityKind    `bson:"entity,omitempty" json:"entity,omitempty"`
	ID     bson.ObjectID `bson:"id,omitempty"     json:"id,omitempty"`
}

type Notification struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"userId"`
	Type      NotiType      `bson:"type"          json:"type"`
	Title     string        `bson:"title"         json:"title"`
	Body      string        `bson:"body"          json:"body"`
	Ref       Ref           `bson:"ref,omitempty" json:"ref,omitempty"`
	Read      bool          `bson:"read"          json:"read"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
}
