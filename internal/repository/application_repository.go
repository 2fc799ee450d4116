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

type ApplicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) *ApplicationRepo {
	return &ApplicationRepo{col: db.Collection("applications")}
}

// Create inserts one application. The unique (job_id, student_id) index makes
// a second apply attempt come back as a conflict, not a duplicate row.
func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	now := time.Now().UTC()
	a.ID = bson.NewObjectID()
	a.Status = models.ApplicationApplied
	a.AppliedAt = now
	a.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if isDup(err) {
			return apperr.Conflict("you have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *ApplicationRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("application not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) FindForStudent(ctx context.Context, id, studentID bson.ObjectID) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id, "student_id": studentID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("application not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AppliedJobIDs returns the set of jobs a student has already applied to,
// used to exclude them from the ranked listing.
func (r *ApplicationRepo) AppliedJobIDs(ctx context.Context, studentID bson.ObjectID) (map[bson.ObjectID]bool, error) {
	ids := r.col.Distinct(ctx, "job_id", bson.M{"student_id": studentID})
	if err := ids.Err(); err != nil {
		return nil, err
	}

	var raw []bson.ObjectID
	if err := ids.Decode(&raw); err != nil {
		return nil, err
	}
	applied := make(map[bson.ObjectID]bool, len(raw))
	for _, id := range raw {
		applied[id] = true
	}
	return applied, nil
}

func (r *ApplicationRepo) ByStudent(ctx context.Context, studentID bson.ObjectID, status models.ApplicationStatus, oldestFirst bool) ([]models.Application, error) {
	query := bson.M{"student_id": studentID}
	if status != "" {
		query["status"] = status
	}

	order := -1
	if oldestFirst {
		order = 1
	}
	cursor, err := r.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: order}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) ByJob(ctx context.Context, jobID bson.ObjectID, status models.ApplicationStatus) ([]models.Application, error) {
	query := bson.M{"job_id": jobID}
	if status != "" {
		query["status"] = status
	}

	cursor, err := r.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.ApplicationStatus, updatedBy bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_by": updatedBy,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("application not found")
	}
	return nil
}

func (r *ApplicationRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ApplicationRepo) CountsByStatus(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CompanyWise aggregates selected applications into per-company hire totals
// with average and best package.
func (r *ApplicationRepo) CompanyWise(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ApplicationSelected}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "jobs",
			"localField":   "job_id",
			"foreignField": "_id",
			"as":           "job",
		}}},
		{{Key: "$unwind", Value: "$job"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "companies",
			"localField":   "job.company_id",
			"foreignField": "_id",
			"as":           "company",
		}}},
		{{Key: "$unwind", Value: "$company"}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$company._id",
			"companyName": bson.M{"$first": "$company.company_name"},
			"totalHired":  bson.M{"$sum": 1},
			"avgPackage":  bson.M{"$avg": "$job.package"},
			"maxPackage":  bson.M{"$max": "$job.package"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalHired", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
