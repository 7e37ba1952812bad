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

// IDepartmentDAO is the department store boundary.
type IDepartmentDAO interface {
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error)
	FindActiveByManager(ctx context.Context, employeeID primitive.ObjectID) (*model.Department, error)
	ExistsActiveName(ctx context.Context, name string, exclude *primitive.ObjectID) (bool, error)
	ExistsActiveCode(ctx context.Context, code string, exclude *primitive.ObjectID) (bool, error)
	Create(ctx context.Context, department *model.Department) error
	List(ctx context.Context, criteria model.DepartmentSearchCriteria) ([]*model.Department, int64, error)
	Update(ctx context.Context, department *model.Department) (*model.Department, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	IncrementEmployeeCount(ctx context.Context, id primitive.ObjectID, delta int64) error
	SetEmployeeCount(ctx context.Context, id primitive.ObjectID, count int64) error
	CountActive(ctx context.Context) (int64, error)
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.DepartmentSummary, error)
}

type DepartmentDAO struct {
	collection *mongo.Collection
}

var _ IDepartmentDAO = &DepartmentDAO{}

func NewDepartmentDAO(collection *mongo.Collection) *DepartmentDAO {
	dao := &DepartmentDAO{collection: collection}
	if err := dao.ensureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to ensure indexes for departments", zap.Error(err))
	}
	return dao
}

func (dao *DepartmentDAO) ensureIndexes(ctx context.Context) error {
	_, err := dao.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "code", Value: 1}, {Key: "isDeleted", Value: 1}}},
	})
	return err
}

func (dao *DepartmentDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error) {
	var dept model.Department
	err := dao.collection.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&dept)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return &dept, nil
}

func (dao *DepartmentDAO) FindActiveByManager(ctx context.Context, employeeID primitive.ObjectID) (*model.Department, error) {
	var dept model.Department
	err := dao.collection.FindOne(ctx, bson.M{"manager": employeeID, "isDeleted": false}).Decode(&dept)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return &dept, nil
}

func (dao *DepartmentDAO) ExistsActiveName(ctx context.Context, name string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name, "isDeleted": false}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, staffhub_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

// Codes are stored normalized upper-case; callers pass the normalized form.
func (dao *DepartmentDAO) ExistsActiveCode(ctx context.Context, code string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"code": code, "isDeleted": false}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, staffhub_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (dao *DepartmentDAO) Create(ctx context.Context, department *model.Department) error {
	start := time.Now()

	now := time.Now()
	department.ID = primitive.NewObjectID()
	department.EmployeeCount = 0
	department.IsDeleted = false
	department.CreatedAt = now
	department.UpdatedAt = now

	if _, err := dao.collection.InsertOne(ctx, department); err != nil {
		logger.Error("Failed to create department",
			zap.Error(err),
			zap.String("deptName", department.Name),
			zap.Duration("duration", time.Since(start)))
		return staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Department created successfully",
		zap.String("deptID", department.ID.Hex()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *DepartmentDAO) List(ctx context.Context, criteria model.DepartmentSearchCriteria) ([]*model.Department, int64, error) {
	filter := bson.M{"isDeleted": false}
	if criteria.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(criteria.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"code": pattern},
			bson.M{"description": pattern},
			bson.M{"location": pattern},
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

	var departments []*model.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, 0, staffhub_errors.ErrDatabaseOperation
	}
	return departments, total, nil
}

func (dao *DepartmentDAO) Update(ctx context.Context, department *model.Department) (*model.Department, error) {
	start := time.Now()

	update := bson.M{"$set": bson.M{
		"name":        department.Name,
		"code":        department.Code,
		"description": department.Description,
		"location":    department.Location,
		"phone":       department.Phone,
		"manager":     department.Manager,
		"updatedAt":   time.Now(),
	}}

	var updated model.Department
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := dao.collection.FindOneAndUpdate(ctx, bson.M{"_id": department.ID, "isDeleted": false}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrDepartmentNotFound
	}
	if err != nil {
		logger.Error("Failed to update department",
			zap.Error(err),
			zap.String("deptID", department.ID.Hex()),
			zap.Duration("duration", time.Since(start)))
		return nil, staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Department updated successfully",
		zap.String("deptID", updated.ID.Hex()),
		zap.Duration("duration", time.Since(start)))
	return &updated, nil
}

func (dao *DepartmentDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	result, err := dao.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false}, update)
	if err != nil {
		return staffhub_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return staffhub_errors.ErrDepartmentNotFound
	}

	logger.Info("Department soft-deleted", zap.String("deptID", id.Hex()))
	return nil
}

func (dao *DepartmentDAO) IncrementEmployeeCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	update := bson.M{"$inc": bson.M{"employeeCount": delta}}
	if _, err := dao.collection.UpdateByID(ctx, id, update); err != nil {
		logger.Error("Failed to increment employee count",
			zap.Error(err),
			zap.String("deptID", id.Hex()),
			zap.Int64("delta", delta))
		return staffhub_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *DepartmentDAO) SetEmployeeCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	update := bson.M{"$set": bson.M{"employeeCount": count}}
	if _, err := dao.collection.UpdateByID(ctx, id, update); err != nil {
		return staffhub_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *DepartmentDAO) CountActive(ctx context.Context) (int64, error) {
	count, err := dao.collection.CountDocuments(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *DepartmentDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.DepartmentSummary, error) {
	summaries := make(map[primitive.ObjectID]*model.DepartmentSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := dao.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.DepartmentSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	for _, summary := range results {
		summaries[summary.ID] = summary
	}
	return summaries, nil
}
