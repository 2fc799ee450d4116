package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placement-portal/internal/apperr"
	"placement-portal/internal/models"
)

type DriveRepo struct {
	col *mongo.Collection
}

func NewDriveRepo(db *mongo.Database) *DriveRepo {
	return &DriveRepo{col: db.Collection("placement_drives")}
}

func (r *DriveRepo) Create(ctx context.Context, d *models.PlacementDrive) error {
	now := time.Now().UTC()
	d.ID = bson.NewObjectID()
	d.Status = models.DriveScheduled
	d.CreatedAt = now
	d.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DriveRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.PlacementDrive, error) {
	var d models.PlacementDrive
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("placement drive not found")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriveRepo) All(ctx context.Context) ([]models.PlacementDrive, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "start_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drives []models.PlacementDrive
	if err := cursor.All(ctx, &drives); err != nil {
		return nil, err
	}
	return drives, nil
}

// Active lists scheduled or ongoing drives that have not yet ended.
func (r *DriveRepo) Active(ctx context.Context, now time.Time) ([]models.PlacementDrive, error) {
	cursor, err := r.col.Find(ctx, bson.M{
		"status":   bson.M{"$in": bson.A{models.DriveScheduled, models.DriveOngoing}},
		"end_date": bson.M{"$gte": now},
	}, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drives []models.PlacementDrive
	if err := cursor.All(ctx, &drives); err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *DriveRepo) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.PlacementDrive, error) {
	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d models.PlacementDrive
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("placement drive not found")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriveRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("placement drive not found")
	}
	return nil
}
