package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
	logger "github.com/staffhubhq/staffhub/api/logging"
	"github.com/staffhubhq/staffhub/api/middleware"
	"github.com/staffhubhq/staffhub/api/model"
	"github.com/staffhubhq/staffhub/api/test/mock"
	"github.com/staffhubhq/staffhub/api/util"
)

func newAuthTestRouter(tokens *util.TokenIssuer, adminDAO *mock.MockAdminDAO) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens, adminDAO))
	r.GET("/protected", func(c *gin.Context) {
		adminID, _ := util.GetAdminIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"adminID": adminID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	tokens := util.NewTokenIssuer("test-secret", time.Hour)

	t.Run("ValidToken_ActiveAdmin_Passes", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		adminID := primitive.NewObjectID()
		adminDAO.On("FindActiveByID", testify_mock.Anything, adminID).
			Return(&model.Admin{ID: adminID, Username: "alice"}, nil)

		token, err := tokens.Issue(adminID.Hex())
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthTestRouter(tokens, adminDAO).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), adminID.Hex())
	})

	t.Run("MissingHeader_Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		newAuthTestRouter(tokens, new(mock.MockAdminDAO)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader_Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		newAuthTestRouter(tokens, new(mock.MockAdminDAO)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TamperedToken_Rejected", func(t *testing.T) {
		token, err := util.NewTokenIssuer("other-secret", time.Hour).Issue(primitive.NewObjectID().Hex())
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthTestRouter(tokens, new(mock.MockAdminDAO)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TokenForDeletedAdmin_Rejected", func(t *testing.T) {
		adminDAO := new(mock.MockAdminDAO)
		adminID := primitive.NewObjectID()
		adminDAO.On("FindActiveByID", testify_mock.Anything, adminID).
			Return(nil, staffhub_errors.ErrAdminNotFound)

		token, err := tokens.Issue(adminID.Hex())
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newAuthTestRouter(tokens, adminDAO).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
