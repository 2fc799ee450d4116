package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"placement-portal/internal/apperr"
	"placement-portal/internal/approval"
	"placement-portal/internal/models"
)

type JobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) *JobRepo {
	return &JobRepo{col: db.Collection("jobs")}
}

func (r *JobRepo) Create(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	j.ID = bson.NewObjectID()
	j.CreatedAt = now
	j.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, j); err != nil {
		if isDup(err) {
			return apperr.Conflict("a job with this title already exists for your company")
		}
		return err
	}
	return nil
}

func (r *JobRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("job not found")
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) ByCompany(ctx context.Context, companyID bson.ObjectID) ([]models.Job, error) {
	cursor, err := r.col.Find(ctx, bson.M{"company_id": companyID}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// OpenPool is the candidate set the matching engine ranks: approved, active,
// open jobs whose deadline has not passed.
func (r *JobRepo) OpenPool(ctx context.Context, now time.Time) ([]models.Job, error) {
	cursor, err := r.col.Find(ctx, bson.M{
		"approval_status": models.ApprovalApproved,
		"status":          models.JobOpen,
		"is_active":       true,
		"deadline":        bson.M{"$gte": now},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepo) ApplyApproval(ctx context.Context, id bson.ObjectID, expect models.ApprovalStatus, p approval.Patch) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "approval_status": expect},
		approvalUpdate(p),
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errStale()
	}
	return nil
}

// UpdateFields applies a company's edit to its own (non-live) job.
func (r *JobRepo) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if isDup(err) {
			return apperr.Conflict("a job with this title already exists for your company")
		}
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}

func (r *JobRepo) Close(ctx context.Context, id bson.ObjectID) error {
	return r.UpdateFields(ctx, id, bson.M{
		"status":    models.JobClosed,
		"is_active": false,
	})
}

func (r *JobRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}

func (r *JobRepo) IncApplicationCount(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"application_count": 1}})
	return err
}

// SetActiveByCompany flips is_active on every job of one company, used when
// an admin blocks or unblocks the company.
func (r *JobRepo) SetActiveByCompany(ctx context.Context, companyID bson.ObjectID, active bool) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"company_id": companyID},
		bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()}})
	return err
}

func (r *JobRepo) IncViewCount(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}})
	return err
}

func (r *JobRepo) Pending(ctx context.Context, search string, page, limit int64) ([]models.Job, int64, error) {
	query := bson.M{"approval_status": models.ApprovalPending}
	if search != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"role": bson.M{"$regex": search, "$options": "i"}},
		}
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

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepo) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"approval_status": status})
}
