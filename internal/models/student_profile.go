package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type StudentProfile struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID bson.ObjectID `bson:"user_id"       json:"userId"`

	RollNo string   `bson:"roll_no"              json:"rollNo"`
	Branch string   `bson:"branch"               json:"branch"`
	CGPA   float64  `bson:"cgpa"                 json:"cgpa"`
	Skills []string `bson:"skills"               json:"skills"`
	Phone  string   `bson:"phone,omitempty"      json:"phone,omitempty"`

	ResumeURL string `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`

	Placed          bool   `bson:"placed"                   json:"placed"`
	PlacedCompany   string `bson:"placed_company,omitempty" json:"placedCompany,omitempty"`
	ProfileComplete bool   `bson:"profile_complete"         json:"profileComplete"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
