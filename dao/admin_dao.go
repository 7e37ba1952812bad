package dao

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
)

// IAdminDAO is the credential store boundary.
type IAdminDAO interface {
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error)
	FindActiveByUsername(ctx context.Context, username string) (*model.Admin, error)
	ExistsActiveUsername(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error)
	ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error)
	Create(ctx context.Context, admin *model.Admin) error
	List(ctx context.Context, criteria model.AdminSearchCriteria) ([]*model.Admin, int64, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, username, email, fullName string) (*model.Admin, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	CountActive(ctx context.Context) (int64, error)
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.AdminSummary, error)
}

type AdminDAO struct {
	collection *mongo.Collection
}

var _ IAdminDAO = &AdminDAO{}

func NewAdminDAO(collection *mongo.Collection) *AdminDAO {
	dao := &AdminDAO{collection: collection}
	if err := dao.ensureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to ensure indexes for admins", zap.Error(err))
	}
	return dao
}

// Uniqueness is scoped to non-deleted records, so the indexes are compound
// lookups rather than native unique constraints.
func (dao *AdminDAO) ensureIndexes(ctx context.Context) error {
	_, err := dao.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "isDeleted", Value: 1}}},
	})
	return err
}

func (dao *AdminDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error) {
	var admin model.Admin
	err := dao.collection.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrAdminNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return &admin, nil
}

func (dao *AdminDAO) FindActiveByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := dao.collection.FindOne(ctx, bson.M{"username": username, "isDeleted": false}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrAdminNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return &admin, nil
}

func (dao *AdminDAO) ExistsActiveUsername(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"username": username, "isDeleted": false}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, staffhub_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (dao *AdminDAO) ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email, "isDeleted": false}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, staffhub_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (dao *AdminDAO) Create(ctx context.Context, admin *model.Admin) error {
	start := time.Now()

	now := time.Now()
	admin.ID = primitive.NewObjectID()
	admin.IsDeleted = false
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := dao.collection.InsertOne(ctx, admin); err != nil {
		logger.Error("Failed to create admin",
			zap.Error(err),
			zap.String("username", admin.Username),
			zap.Duration("duration", time.Since(start)))
		return staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Admin created successfully",
		zap.String("adminID", admin.ID.Hex()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *AdminDAO) List(ctx context.Context, criteria model.AdminSearchCriteria) ([]*model.Admin, int64, error) {
	filter := bson.M{"isDeleted": false}
	if criteria.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(criteria.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"email": pattern},
			bson.M{"fullName": pattern},
		}
	}

	total, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, staffhub_errors.ErrDatabaseOperation
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((criteria.Page - 1) * criteria.Limit).
		SetLimit(criteria.Limit)

	cursor, err := dao.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var admins []*model.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, 0, staffhub_errors.ErrDatabaseOperation
	}
	return admins, total, nil
}

func (dao *AdminDAO) UpdateProfile(ctx context.Context, id primitive.ObjectID, username, email, fullName string) (*model.Admin, error) {
	update := bson.M{"$set": bson.M{
		"username":  username,
		"email":     email,
		"fullName":  fullName,
		"updatedAt": time.Now(),
	}}

	var updated model.Admin
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := dao.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "isDeleted": false}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrAdminNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Admin updated successfully", zap.String("adminID", id.Hex()))
	return &updated, nil
}

func (dao *AdminDAO) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()}}
	result, err := dao.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false}, update)
	if err != nil {
		return staffhub_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return staffhub_errors.ErrAdminNotFound
	}
	return nil
}

func (dao *AdminDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	result, err := dao.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false}, update)
	if err != nil {
		return staffhub_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return staffhub_errors.ErrAdminNotFound
	}

	logger.Info("Admin soft-deleted", zap.String("adminID", id.Hex()))
	return nil
}

func (dao *AdminDAO) CountActive(ctx context.Context) (int64, error) {
	count, err := dao.collection.CountDocuments(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *AdminDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.AdminSummary, error) {
	summaries := make(map[primitive.ObjectID]*model.AdminSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := dao.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.AdminSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	for _, summary := range results {
		summaries[summary.ID] = summary
	}
	return summaries, nil
}
