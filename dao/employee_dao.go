package dao

import (
	"context"
	"errors"
	"math"
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

// IEmployeeDAO is the employee store boundary.
type IEmployeeDAO interface {
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	FindActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error)
	ExistsActiveEmployeeID(ctx context.Context, employeeID string, exclude *primitive.ObjectID) (bool, error)
	ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error)
	Create(ctx context.Context, employee *model.Employee) error
	List(ctx context.Context, criteria model.EmployeeSearchCriteria) ([]*model.Employee, int64, error)
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	BulkReassignDepartment(ctx context.Context, ids []primitive.ObjectID, target primitive.ObjectID) (int64, error)
	CountActiveBySupervisor(ctx context.Context, id primitive.ObjectID) (int64, error)
	ListActiveBySupervisor(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error)
	CountActiveByDepartment(ctx context.Context, id primitive.ObjectID) (int64, error)
	ListActiveByDepartment(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error)
	CountActive(ctx context.Context) (int64, error)
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.EmployeeSummary, error)

	// Reporting aggregations; all scoped to active records, all read-only.
	SalaryOverview(ctx context.Context) (*model.SalaryOverview, error)
	CountsByStatus(ctx context.Context, departmentID *primitive.ObjectID) ([]model.StatusCount, error)
	DepartmentBreakdown(ctx context.Context) ([]*model.DepartmentBreakdown, error)
	SalaryBuckets(ctx context.Context) ([]*model.SalaryBucket, error)
	HiresByMonth(ctx context.Context, since time.Time) ([]*model.MonthlyHires, error)
	AverageSalaryByDepartment(ctx context.Context, departmentID primitive.ObjectID) (float64, error)
	RecentHiresByDepartment(ctx context.Context, departmentID primitive.ObjectID, since time.Time) ([]*model.EmployeeRecent, error)
}

type EmployeeDAO struct {
	collection *mongo.Collection
}

var _ IEmployeeDAO = &EmployeeDAO{}

func NewEmployeeDAO(collection *mongo.Collection) *EmployeeDAO {
	dao := &EmployeeDAO{collection: collection}
	if err := dao.ensureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to ensure indexes for employees", zap.Error(err))
	}
	return dao
}

func (dao *EmployeeDAO) ensureIndexes(ctx context.Context) error {
	_, err := dao.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "department", Value: 1}, {Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "supervisor", Value: 1}, {Key: "isDeleted", Value: 1}}},
	})
	return err
}

func (dao *EmployeeDAO) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	var employee model.Employee
	err := dao.collection.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return &employee, nil
}

func (dao *EmployeeDAO) FindActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := dao.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false})
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var employees []*model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return employees, nil
}

func (dao *EmployeeDAO) ExistsActiveEmployeeID(ctx context.Context, employeeID string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"employeeId": employeeID, "isDeleted": false}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := dao.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, staffhub_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (dao *EmployeeDAO) ExistsActiveEmail(ctx context.Context, email string, exclude *primitive.ObjectID) (bool, error) {
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

func (dao *EmployeeDAO) Create(ctx context.Context, employee *model.Employee) error {
	start := time.Now()

	now := time.Now()
	employee.ID = primitive.NewObjectID()
	employee.IsDeleted = false
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if _, err := dao.collection.InsertOne(ctx, employee); err != nil {
		logger.Error("Failed to create employee",
			zap.Error(err),
			zap.String("employeeId", employee.EmployeeID),
			zap.Duration("duration", time.Since(start)))
		return staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Employee created successfully",
		zap.String("id", employee.ID.Hex()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *EmployeeDAO) List(ctx context.Context, criteria model.EmployeeSearchCriteria) ([]*model.Employee, int64, error) {
	filter := bson.M{"isDeleted": false}
	if criteria.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(criteria.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"employeeId": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
			bson.M{"position": pattern},
		}
	}
	if criteria.DepartmentID != nil {
		filter["department"] = *criteria.DepartmentID
	}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
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

	var employees []*model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, 0, staffhub_errors.ErrDatabaseOperation
	}
	return employees, total, nil
}

func (dao *EmployeeDAO) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	start := time.Now()

	update := bson.M{"$set": bson.M{
		"name":       employee.Name,
		"employeeId": employee.EmployeeID,
		"email":      employee.Email,
		"phone":      employee.Phone,
		"position":   employee.Position,
		"salary":     employee.Salary,
		"hireDate":   employee.HireDate,
		"department": employee.Department,
		"supervisor": employee.Supervisor,
		"status":     employee.Status,
		"address":    employee.Address,
		"updatedAt":  time.Now(),
	}}

	var updated model.Employee
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := dao.collection.FindOneAndUpdate(ctx, bson.M{"_id": employee.ID, "isDeleted": false}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, staffhub_errors.ErrEmployeeNotFound
	}
	if err != nil {
		logger.Error("Failed to update employee",
			zap.Error(err),
			zap.String("id", employee.ID.Hex()),
			zap.Duration("duration", time.Since(start)))
		return nil, staffhub_errors.ErrDatabaseOperation
	}

	logger.Info("Employee updated successfully",
		zap.String("id", updated.ID.Hex()),
		zap.Duration("duration", time.Since(start)))
	return &updated, nil
}

func (dao *EmployeeDAO) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	result, err := dao.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false}, update)
	if err != nil {
		return staffhub_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return staffhub_errors.ErrEmployeeNotFound
	}

	logger.Info("Employee soft-deleted", zap.String("id", id.Hex()))
	return nil
}

// BulkReassignDepartment moves the employees and clears their supervisor
// links; a department transfer invalidates the same-department supervisor
// relationship.
func (dao *EmployeeDAO) BulkReassignDepartment(ctx context.Context, ids []primitive.ObjectID, target primitive.ObjectID) (int64, error) {
	update := bson.M{"$set": bson.M{
		"department": target,
		"supervisor": nil,
		"updatedAt":  time.Now(),
	}}
	result, err := dao.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}, "isDeleted": false}, update)
	if err != nil {
		logger.Error("Failed to bulk reassign employees",
			zap.Error(err),
			zap.String("targetDept", target.Hex()),
			zap.Int("requested", len(ids)))
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return result.ModifiedCount, nil
}

func (dao *EmployeeDAO) CountActiveBySupervisor(ctx context.Context, id primitive.ObjectID) (int64, error) {
	count, err := dao.collection.CountDocuments(ctx, bson.M{"supervisor": id, "isDeleted": false})
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *EmployeeDAO) ListActiveBySupervisor(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error) {
	cursor, err := dao.collection.Find(ctx, bson.M{"supervisor": id, "isDeleted": false})
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var employees []*model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return employees, nil
}

func (dao *EmployeeDAO) CountActiveByDepartment(ctx context.Context, id primitive.ObjectID) (int64, error) {
	count, err := dao.collection.CountDocuments(ctx, bson.M{"department": id, "isDeleted": false})
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *EmployeeDAO) ListActiveByDepartment(ctx context.Context, id primitive.ObjectID) ([]*model.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dao.collection.Find(ctx, bson.M{"department": id, "isDeleted": false}, opts)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var employees []*model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return employees, nil
}

func (dao *EmployeeDAO) CountActive(ctx context.Context) (int64, error) {
	count, err := dao.collection.CountDocuments(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *EmployeeDAO) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.EmployeeSummary, error) {
	summaries := make(map[primitive.ObjectID]*model.EmployeeSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := dao.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.EmployeeSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	for _, summary := range results {
		summaries[summary.ID] = summary
	}
	return summaries, nil
}

func (dao *EmployeeDAO) SalaryOverview(ctx context.Context) (*model.SalaryOverview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isDeleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalEmployees": bson.M{"$sum": 1},
			"avgSalary":      bson.M{"$avg": "$salary"},
			"maxSalary":      bson.M{"$max": "$salary"},
			"minSalary":      bson.M{"$min": "$salary"},
		}}},
		{{Key: "$project", Value: bson.M{
			"totalEmployees": 1,
			"avgSalary":      bson.M{"$ifNull": bson.A{"$avgSalary", 0}},
			"maxSalary":      bson.M{"$ifNull": bson.A{"$maxSalary", 0}},
			"minSalary":      bson.M{"$ifNull": bson.A{"$minSalary", 0}},
		}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []model.SalaryOverview
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	if len(results) == 0 {
		return &model.SalaryOverview{}, nil
	}
	return &results[0], nil
}

func (dao *EmployeeDAO) CountsByStatus(ctx context.Context, departmentID *primitive.ObjectID) ([]model.StatusCount, error) {
	match := bson.M{"isDeleted": false}
	if departmentID != nil {
		match["department"] = *departmentID
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []model.StatusCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return results, nil
}

func (dao *EmployeeDAO) DepartmentBreakdown(ctx context.Context) ([]*model.DepartmentBreakdown, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isDeleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$department",
			"count":     bson.M{"$sum": 1},
			"avgSalary": bson.M{"$avg": "$salary"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "departments",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "departmentInfo",
		}}},
		{{Key: "$unwind", Value: "$departmentInfo"}},
		{{Key: "$project", Value: bson.M{
			"departmentName": "$departmentInfo.name",
			"departmentCode": "$departmentInfo.code",
			"employeeCount":  "$count",
			"avgSalary":      bson.M{"$ifNull": bson.A{bson.M{"$round": bson.A{"$avgSalary", 0}}, 0}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "employeeCount", Value: -1}}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.DepartmentBreakdown
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return results, nil
}

func (dao *EmployeeDAO) SalaryBuckets(ctx context.Context) ([]*model.SalaryBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"isDeleted": false,
			"salary":    bson.M{"$exists": true, "$ne": nil},
		}}},
		{{Key: "$bucket", Value: bson.M{
			"groupBy":    "$salary",
			"boundaries": bson.A{0, 5000, 10000, 15000, 20000, 30000, 50000, math.MaxFloat64},
			"default":    "Other",
			"output": bson.M{
				"count":     bson.M{"$sum": 1},
				"avgSalary": bson.M{"$avg": "$salary"},
			},
		}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.SalaryBucket
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return results, nil
}

func (dao *EmployeeDAO) HiresByMonth(ctx context.Context, since time.Time) ([]*model.MonthlyHires, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"isDeleted": false,
			"hireDate":  bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$hireDate"},
				"month": bson.M{"$month": "$hireDate"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.MonthlyHires
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return results, nil
}

func (dao *EmployeeDAO) AverageSalaryByDepartment(ctx context.Context, departmentID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"department": departmentID,
			"isDeleted":  false,
			"salary":     bson.M{"$exists": true, "$ne": nil},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"avgSalary": bson.M{"$avg": "$salary"},
		}}},
	}

	cursor, err := dao.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgSalary float64 `bson:"avgSalary"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, staffhub_errors.ErrDatabaseOperation
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].AvgSalary, nil
}

func (dao *EmployeeDAO) RecentHiresByDepartment(ctx context.Context, departmentID primitive.ObjectID, since time.Time) ([]*model.EmployeeRecent, error) {
	filter := bson.M{
		"department": departmentID,
		"isDeleted":  false,
		"hireDate":   bson.M{"$gte": since},
	}
	opts := options.Find().
		SetProjection(bson.M{"name": 1, "employeeId": 1, "hireDate": 1, "position": 1}).
		SetSort(bson.D{{Key: "hireDate", Value: -1}})

	cursor, err := dao.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	defer cursor.Close(ctx)

	var results []*model.EmployeeRecent
	if err := cursor.All(ctx, &results); err != nil {
		return nil, staffhub_errors.ErrDatabaseOperation
	}
	return results, nil
}
