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

type CompanyRepo struct {
	col *mongo.Collection
}

func NewCompanyRepo(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{col: db.Collection("companies")}
}

func (r *CompanyRepo) Create(ctx context.Context, c *models.Company) error {
	now := time.Now().UTC()
	c.ID = bson.NewObjectID()
	c.ApprovalStatus = models.ApprovalPending
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if isDup(err) {
			return apperr.Conflict("a company with this name is already registered")
		}
		return err
	}
	return nil
}

func (r *CompanyRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Company, error) {
	var c models.Company
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("company not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) FindByUserID(ctx context.Context, userID bson.ObjectID) (*models.Company, error) {
	var c models.Company
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("company profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyApproval writes an engine patch conditionally on the status the engine
// read, so concurrent reviews of the same company cannot both land.
func (r *CompanyRepo) ApplyApproval(ctx context.Context, id bson.ObjectID, expect models.ApprovalStatus, p approval.Patch) error {
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

// Pending lists companies awaiting review, newest first, with an optional
// case-insensitive name/industry filter.
func (r *CompanyRepo) Pending(ctx context.Context, search string, page, limit int64) ([]models.Company, int64, error) {
	query := bson.M{"approval_status": models.ApprovalPending}
	if search != "" {
		query["$or"] = bson.A{
			bson.M{"company_name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"industry": bson.M{"$regex": search, "$options": "i"}},
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

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *CompanyRepo) All(ctx context.Context) ([]models.Company, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepo) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"approval_status": status})
}
