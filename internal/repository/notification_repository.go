package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placement-portal/internal/apperr"
	"placement-portal/internal/models"
)

type NotificationRepo struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{col: db.Collection("notifications")}
}

func (r *NotificationRepo) Insert(ctx context.Context, n models.Notification) error {
	n.ID = bson.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, n)
	return err
}

// InsertMany bulk-writes one notification per recipient (admin fan-out).
func (r *NotificationRepo) InsertMany(ctx context.Context, ns []models.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(ns))
	for _, n := range ns {
		n.ID = bson.NewObjectID()
		n.CreatedAt = now
		writes = append(writes, &mongo.InsertOneModel{Document: n})
	}
	_, err := r.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}

func (r *NotificationRepo) List(ctx context.Context, userID bson.ObjectID, page, limit int64, unreadOnly bool) ([]models.Notification, int64, error) {
	query := bson.M{"user_id": userID}
	if unreadOnly {
		query["read"] = false
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}

// MarkRead marks the given notifications read, scoped to the owner so one
// user cannot touch another's rows.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID bson.ObjectID, ids []bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *NotificationRepo) Delete(ctx context.Context, userID, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("notification not found")
	}
	return nil
}
