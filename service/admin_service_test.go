// api/service/admin_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/service"
	"github.com/staffhubhq/staffhub/api/test/mock"
	"github.com/staffhubhq/staffhub/api/util"
)

func newAdminService(adminDAO *mock.MockAdminDAO) *service.AdminService {
	return service.NewAdminService(adminDAO, util.NewTokenIssuer("test-secret", time.Hour))
}

func TestAdminService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("Register_Success", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		adminDAO.On("ExistsActiveUsername", ctx, "alice", (*primitive.ObjectID)(nil)).Return(false, nil)
		adminDAO.On("ExistsActiveEmail", ctx, "alice@example.com", (*primitive.ObjectID)(nil)).Return(false, nil)
		adminDAO.On("Create", ctx, testify_mock.AnythingOfType("*model.Admin")).Return(nil)

		admin, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Password: "secret123",
			Email:    "Alice@Example.com",
			FullName: "Alice Doe",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice", admin.Username)
		assert.Equal(t, "alice@example.com", admin.Email)
		assert.NotEqual(t, "secret123", admin.Password)
		assert.True(t, util.CheckPassword(admin.Password, "secret123"))
	})

	t.Run("Register_DuplicateUsername", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		adminDAO.On("ExistsActiveUsername", ctx, "alice", (*primitive.ObjectID)(nil)).Return(true, nil)

		_, err := svc.Register(ctx, model.RegisterRequest{
			Username: "alice",
			Password: "secret123",
			Email:    "alice@example.com",
			FullName: "Alice Doe",
		})
		assert.ErrorIs(t, err, staffhub_errors.ErrDuplicateUsername)
		adminDAO.AssertNotCalled(t, "Create")
	})

	t.Run("Login_Success_IssuesVerifiableToken", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		tokens := util.NewTokenIssuer("test-secret", time.Hour)
		svc := service.NewAdminService(adminDAO, tokens)

		hash, err := util.HashPassword("secret123")
		assert.NoError(t, err)
		stored := &model.Admin{ID: primitive.NewObjectID(), Username: "alice", Password: hash}
		adminDAO.On("FindActiveByUsername", ctx, "alice").Return(stored, nil)

		token, admin, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, stored, admin)

		adminID, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID.Hex(), adminID)
	})

	t.Run("Login_UnknownUserAndWrongPassword_SameError", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		adminDAO.On("FindActiveByUsername", ctx, "ghost").Return(nil, staffhub_errors.ErrAdminNotFound)
		_, _, unknownErr := svc.Login(ctx, model.LoginRequest{Username: "ghost", Password: "whatever"})

		hash, err := util.HashPassword("secret123")
		assert.NoError(t, err)
		adminDAO.On("FindActiveByUsername", ctx, "alice").
			Return(&model.Admin{ID: primitive.NewObjectID(), Username: "alice", Password: hash}, nil)
		_, _, wrongErr := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "incorrect"})

		assert.ErrorIs(t, unknownErr, staffhub_errors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, staffhub_errors.ErrInvalidCredentials)
	})

	t.Run("ChangePassword_WrongCurrentPassword", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		id := primitive.NewObjectID()
		hash, err := util.HashPassword("correct-pw")
		assert.NoError(t, err)
		adminDAO.On("FindActiveByID", ctx, id).Return(&model.Admin{ID: id, Password: hash}, nil)

		err = svc.ChangePassword(ctx, id.Hex(), model.ChangePasswordRequest{
			CurrentPassword: "wrong-pw",
			NewPassword:     "brand-new-pw",
		})
		assert.ErrorIs(t, err, staffhub_errors.ErrWrongPassword)
		adminDAO.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("DeleteAdmin_Self_Rejected", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		id := primitive.NewObjectID().Hex()
		err := svc.DeleteAdmin(ctx, id, id)
		assert.ErrorIs(t, err, staffhub_errors.ErrSelfDeletion)
		adminDAO.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("GetAdmin_MalformedID", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		svc := newAdminService(adminDAO)

		_, err := svc.GetAdmin(ctx, "not-a-hex-id")
		assert.ErrorIs(t, err, staffhub_errors.ErrMalformedID)
	})
}
