package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/staffhubhq/staffhub/api/dao"
	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/util"
)

// IAdminService defines the interface for auth and admin account operations
type IAdminService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.Admin, error)
	Login(ctx context.Context, req model.LoginRequest) (string, *model.Admin, error)
	GetAdmin(ctx context.Context, adminID string) (*model.Admin, error)
	ChangePassword(ctx context.Context, adminID string, req model.ChangePasswordRequest) error
	ListAdmins(ctx context.Context, criteria model.AdminSearchCriteria) ([]*model.Admin, *model.Pagination, error)
	UpdateAdmin(ctx context.Context, adminID string, req model.UpdateAdminRequest) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, adminID, callerID string) error
}

// AdminService handles registration, login, and admin account management
type AdminService struct {
	adminDAO dao.IAdminDAO
	tokens   *util.TokenIssuer
}

var _ IAdminService = &AdminService{}

func NewAdminService(adminDAO dao.IAdminDAO, tokens *util.TokenIssuer) *AdminService {
	return &AdminService{
		adminDAO: adminDAO,
		tokens:   tokens,
	}
}

func (s *AdminService) Register(ctx context.Context, req model.RegisterRequest) (*model.Admin, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Uniqueness is scoped to active records: a soft-deleted admin's
	// username and email are reusable.
	if taken, err := s.adminDAO.ExistsActiveUsername(ctx, username, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateUsername
	}
	if taken, err := s.adminDAO.ExistsActiveEmail(ctx, email, nil); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmail
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, staffhub_errors.ErrInternalServer
	}

	admin := &model.Admin{
		Username: username,
		Password: hash,
		Email:    email,
		FullName: strings.TrimSpace(req.FullName),
	}
	if err := s.adminDAO.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login verifies credentials and issues a bearer token. The error is the
// same whether the username is unknown, soft-deleted, or the password is
// wrong, so the response never reveals which part failed.
func (s *AdminService) Login(ctx context.Context, req model.LoginRequest) (string, *model.Admin, error) {
	admin, err := s.adminDAO.FindActiveByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if err == staffhub_errors.ErrAdminNotFound {
			return "", nil, staffhub_errors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !util.CheckPassword(admin.Password, req.Password) {
		return "", nil, staffhub_errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID.Hex())
	if err != nil {
		logger.Error("Failed to issue token", zap.Error(err), zap.String("adminID", admin.ID.Hex()))
		return "", nil, staffhub_errors.ErrInternalServer
	}
	return token, admin, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, adminID string) (*model.Admin, error) {
	id, err := parseID(adminID)
	if err != nil {
		return nil, err
	}
	return s.adminDAO.FindActiveByID(ctx, id)
}

func (s *AdminService) ChangePassword(ctx context.Context, adminID string, req model.ChangePasswordRequest) error {
	id, err := parseID(adminID)
	if err != nil {
		return err
	}

	admin, err := s.adminDAO.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}

	if !util.CheckPassword(admin.Password, req.CurrentPassword) {
		return staffhub_errors.ErrWrongPassword
	}

	hash, err := util.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return staffhub_errors.ErrInternalServer
	}
	return s.adminDAO.UpdatePassword(ctx, id, hash)
}

func (s *AdminService) ListAdmins(ctx context.Context, criteria model.AdminSearchCriteria) ([]*model.Admin, *model.Pagination, error) {
	admins, total, err := s.adminDAO.List(ctx, criteria)
	if err != nil {
		return nil, nil, err
	}
	return admins, model.NewPagination(criteria.Page, criteria.Limit, total), nil
}

func (s *AdminService) UpdateAdmin(ctx context.Context, adminID string, req model.UpdateAdminRequest) (*model.Admin, error) {
	id, err := parseID(adminID)
	if err != nil {
		return nil, err
	}

	if _, err := s.adminDAO.FindActiveByID(ctx, id); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if taken, err := s.adminDAO.ExistsActiveUsername(ctx, username, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateUsername
	}
	if taken, err := s.adminDAO.ExistsActiveEmail(ctx, email, &id); err != nil {
		return nil, err
	} else if taken {
		return nil, staffhub_errors.ErrDuplicateEmail
	}

	return s.adminDAO.UpdateProfile(ctx, id, username, email, strings.TrimSpace(req.FullName))
}

func (s *AdminService) DeleteAdmin(ctx context.Context, adminID, callerID string) error {
	if adminID == callerID {
		return staffhub_errors.ErrSelfDeletion
	}
	id, err := parseID(adminID)
	if err != nil {
		return err
	}
	return s.adminDAO.SoftDelete(ctx, id)
}
