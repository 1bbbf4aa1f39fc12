package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/docvault-io/docvault/internal/middleware"
	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.TokenOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenOutput), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, jti string, expiresAtUnix int64) error {
	args := m.Called(ctx, jti, expiresAtUnix)
	return args.Error(0)
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) GetForUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

// MockMembershipService is a mock implementation of service.MembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Invite(ctx context.Context, projectID, inviterID uuid.UUID, targetEmail string) error {
	args := m.Called(ctx, projectID, inviterID, targetEmail)
	return args.Error(0)
}

// MockDocumentService is a mock implementation of service.DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, in service.UploadDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, documentID, requesterID uuid.UUID) (*model.Document, error) {
	args := m.Called(ctx, documentID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, projectID, requesterID uuid.UUID) ([]model.Document, error) {
	args := m.Called(ctx, projectID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Rename(ctx context.Context, documentID, requesterID uuid.UUID, newTitle string) (*model.Document, error) {
	args := m.Called(ctx, documentID, requesterID, newTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, documentID, requesterID uuid.UUID) error {
	args := m.Called(ctx, documentID, requesterID)
	return args.Error(0)
}

func (m *MockDocumentService) DownloadURL(ctx context.Context, documentID, requesterID uuid.UUID) (string, error) {
	args := m.Called(ctx, documentID, requesterID)
	return args.String(0), args.Error(1)
}

// asUser injects an authenticated caller the way the auth middleware would.
func asUser(u *middleware.CurrentUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, u)
		c.Next()
	}
}

func testUser() *middleware.CurrentUser {
	return &middleware.CurrentUser{
		ID:    uuid.New(),
		Email: "caller@example.com",
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
