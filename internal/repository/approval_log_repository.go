package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placement-portal/internal/models"
)

// ApprovalLogRepo is append-only: there is deliberately no update or delete.
type ApprovalLogRepo struct {
	col *mongo.Collection
}

func NewApprovalLogRepo(db *mongo.Database) *ApprovalLogRepo {
	return &ApprovalLogRepo{col: db.Collection("approval_logs")}
}

// Append writes one audit row. The audit trail must never block the approval
// itself, so a write failure is logged and reported but callers may ignore it.
func (r *ApprovalLogRepo) Append(ctx context.Context, entry models.ApprovalLog) error {
	entry.ID = bson.NewObjectID()
	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		log.Println("approval log write failed:", err)
		return err
	}
	return nil
}

func (r *ApprovalLogRepo) History(ctx context.Context, kind models.EntityKind, entityID bson.ObjectID) ([]models.ApprovalLog, error) {
	cursor, err := r.col.Find(ctx, bson.M{
		"entity_type": kind,
		"entity_id":   entityID,
	}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ApprovalLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ApprovalLogRepo) Recent(ctx context.Context, limit int64) ([]models.ApprovalLog, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ApprovalLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
