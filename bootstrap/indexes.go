package bootstrap

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

// portalIndexes declares every index the portal relies on. The one-application
// per-job rule, the unique company name and the one-title-per-company rule
// live here, not in application code.
func portalIndexes() []collectionIndex {
	unique := options.Index().SetUnique(true)

	return []collectionIndex{
		{"users", mongo.IndexModel{
			Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
		}},
		{"companies", mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique,
		}},
		{"companies", mongo.IndexModel{
			Keys: bson.D{{Key: "company_name", Value: 1}}, Options: unique,
		}},
		{"student_profiles", mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique,
		}},
		{"student_profiles", mongo.IndexModel{
			Keys: bson.D{{Key: "roll_no", Value: 1}}, Options: unique,
		}},
		{"jobs", mongo.IndexModel{
			Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "title", Value: 1}}, Options: unique,
		}},
		{"jobs", mongo.IndexModel{
			Keys: bson.D{{Key: "approval_status", Value: 1}, {Key: "deadline", Value: 1}},
		}},
		{"applications", mongo.IndexModel{
			Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "student_id", Value: 1}}, Options: unique,
		}},
		{"notifications", mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}},
		}},
		{"approval_logs", mongo.IndexModel{
			Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "entity_id", Value: 1}},
		}},
	}
}

// EnsurePortalIndexes creates the declared indexes on the connected database.
func EnsurePortalIndexes(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, ix := range portalIndexes() {
		if _, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, ix.model); err != nil {
			log.Printf("index on %s failed: %v", ix.collection, err)
		}
	}
}
