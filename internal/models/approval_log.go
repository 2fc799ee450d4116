package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ApprovalLog records one review transition. Rows are append-only: nothing in
// the codebase updates or deletes them.
type ApprovalLog struct {
	ID         bson.ObjectID  `bson:"_id,omitempty"    json:"id"`
	EntityType EntityKind     `bson:"entity_type"      json:"entityType"`
	EntityID   bson.ObjectID  `bson:"entity_id"        json:"entityId"`
	Action     ApprovalAction `bson:"action"           json:"action"`

	PerformedBy    bson.ObjectID  `bson:"performed_by"     json:"performedBy"`
	Reason         string         `bson:"reason,omitempty" json:"reason,omitempty"`
	PreviousStatus ApprovalStatus `bson:"previous_status"  json:"previousStatus"`
	NewStatus      ApprovalStatus `bson:"new_status"       json:"newStatus"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
