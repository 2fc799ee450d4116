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

type StudentRepo struct {
	col *mongo.Collection
}

func NewStudentRepo(db *mongo.Database) *StudentRepo {
	return &StudentRepo{col: db.Collection("student_profiles")}
}

func (r *StudentRepo) Create(ctx context.Context, s *models.StudentProfile) error {
	now := time.Now().UTC()
	s.ID = bson.NewObjectID()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, s); err != nil {
		if isDup(err) {
			return apperr.Conflict("a profile with this roll number already exists")
		}
		return err
	}
	return nil
}

func (r *StudentRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.StudentProfile, error) {
	var s models.StudentProfile
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("student profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepo) FindByUserID(ctx context.Context, userID bson.ObjectID) (*models.StudentProfile, error) {
	var s models.StudentProfile
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("student profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepo) UpdateProfile(ctx context.Context, userID bson.ObjectID, skills []string, phone string, cgpa float64) (*models.StudentProfile, error) {
	update := bson.M{"$set": bson.M{
		"skills":           skills,
		"phone":            phone,
		"cgpa":             cgpa,
		"profile_complete": true,
		"updated_at":       time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s models.StudentProfile
	err := r.col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("student profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepo) SetResume(ctx context.Context, userID bson.ObjectID, url string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{
		"resume_url": url,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("student profile not found")
	}
	return nil
}

func (r *StudentRepo) MarkPlaced(ctx context.Context, id bson.ObjectID, companyName string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"placed":         true,
		"placed_company": companyName,
		"updated_at":     time.Now().UTC(),
	}})
	return err
}

// All returns every student, highest CGPA first.
func (r *StudentRepo) All(ctx context.Context) ([]models.StudentProfile, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "cgpa", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.StudentProfile
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *StudentRepo) CountPlaced(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"placed": true})
}

// BranchPlacement groups students by branch with total and placed counts.
func (r *StudentRepo) BranchPlacement(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$branch",
			"total": bson.M{"$sum": 1},
			"placed": bson.M{
				"$sum": bson.M{"$cond": bson.A{"$placed", 1, 0}},
			},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
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

// PlacementReport joins student rows with their user accounts for the admin
// export, optionally windowed by registration date and branch.
func (r *StudentRepo) PlacementReport(ctx context.Context, start, end *time.Time, branch string) ([]bson.M, error) {
	match := bson.M{}
	if start != nil && end != nil {
		match["created_at"] = bson.M{"$gte": *start, "$lte": *end}
	}
	if branch != "" {
		match["branch"] = branch
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.M{
			"name":           "$user.name",
			"email":          "$user.email",
			"rollNo":         "$roll_no",
			"branch":         1,
			"cgpa":           1,
			"placed":         1,
			"placedCompany":  "$placed_company",
			"registeredAt":   "$created_at",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "registeredAt", Value: -1}}}},
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
