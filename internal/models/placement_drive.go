package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type DriveStatus string

const (
	DriveScheduled DriveStatus = "Scheduled"
	DriveOngoing   DriveStatus = "Ongoing"
	DriveCompleted DriveStatus = "Completed"
	DriveCancelled DriveStatus = "Cancelled"
)

type DriveCriteria struct {
	MinCGPA  float64  `bson:"min_cgpa,omitempty" json:"minCGPA,omitempty"`
	Branches []string `bson:"branches,omitempty" json:"branches,omitempty"`
	Backlogs int      `bson:"backlogs"           json:"backlogs"`
}

type PlacementDrive struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title"         json:"title"`
	Description string        `bson:"description"   json:"description"`
	StartDate   time.Time     `bson:"start_date"    json:"startDate"`
	EndDate     time.Time     `bson:"end_date"      json:"endDate"`
	Venue       string        `bson:"venue,omitempty" json:"venue,omitempty"`

	ParticipatingCompanies []bson.ObjectID `bson:"participating_companies,omitempty" json:"participatingCompanies,omitempty"`
	EligibilityCriteria    DriveCriteria   `bson:"eligibility_criteria,omitempty"    json:"eligibilityCriteria,omitempty"`

	Status    DriveStatus   `bson:"status"     json:"status"`
	CreatedBy bson.ObjectID `bson:"created_by" json:"createdBy"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}
