package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/serializer"
	"github.com/docvault-io/docvault/internal/modules/service"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProjectRouter(user *gin.HandlerFunc, svc service.ProjectService, members service.MembershipService) *gin.Engine {
	h := NewProjectHandler(svc, members)
	r := gin.New()
	g := r.Group("")
	if user != nil {
		g.Use(*user)
	}
	g.POST("/projects", h.CreateProject)
	g.GET("/projects", h.ListProjects)
	g.GET("/project/:project_id/info", h.GetProjectInfo)
	g.PUT("/project/:project_id/info", h.UpdateProjectInfo)
	g.DELETE("/project/:project_id", h.DeleteProject)
	g.POST("/project/:project_id/invite", h.InviteUser)
	return r
}

func TestCreateProjectHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)

	svc := new(MockProjectService)
	svc.On("Create", mock.Anything, service.CreateProjectInput{
		Name:        "research",
		Description: "papers",
		CreatorID:   user.ID,
	}).Return(&model.Project{ID: uuid.New(), Name: "research", Description: "papers"}, nil)

	r := newProjectRouter(&mw, svc, new(MockMembershipService))

	body := `{"name":"research","description":"papers"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var res serializer.Response
	assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.NotNil(t, res.Data)
	svc.AssertExpectations(t)
}

func TestListProjectsHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)

	svc := new(MockProjectService)
	svc.On("ListForUser", mock.Anything, user.ID).
		Return([]model.Project{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	r := newProjectRouter(&mw, svc, new(MockMembershipService))
	w := serve(r, httptest.NewRequest(http.MethodGet, "/projects", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data []model.Project `json:"data"`
	}
	assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Data, 2)
}

func TestGetProjectInfoHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)
	projectID := uuid.New()

	t.Run("member reads the project", func(t *testing.T) {
		svc := new(MockProjectService)
		svc.On("GetForUser", mock.Anything, projectID, user.ID).
			Return(&model.Project{ID: projectID, Name: "research"}, nil)

		r := newProjectRouter(&mw, svc, new(MockMembershipService))
		w := serve(r, httptest.NewRequest(http.MethodGet, "/project/"+projectID.String()+"/info", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("outsider answers 404", func(t *testing.T) {
		svc := new(MockProjectService)
		svc.On("GetForUser", mock.Anything, projectID, user.ID).
			Return(nil, apperr.NotFoundf("project %s not found", projectID))

		r := newProjectRouter(&mw, svc, new(MockMembershipService))
		w := serve(r, httptest.NewRequest(http.MethodGet, "/project/"+projectID.String()+"/info", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id answers 400", func(t *testing.T) {
		r := newProjectRouter(&mw, new(MockProjectService), new(MockMembershipService))
		w := serve(r, httptest.NewRequest(http.MethodGet, "/project/not-a-uuid/info", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateProjectInfoHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)
	projectID := uuid.New()

	svc := new(MockProjectService)
	svc.On("Update", mock.Anything, service.UpdateProjectInput{
		ProjectID: projectID,
		UserID:    user.ID,
		Name:      "renamed",
	}).Return(&model.Project{ID: projectID, Name: "renamed"}, nil)

	r := newProjectRouter(&mw, svc, new(MockMembershipService))

	req := httptest.NewRequest(http.MethodPut, "/project/"+projectID.String()+"/info", strings.NewReader(`{"name":"renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteProjectHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)
	projectID := uuid.New()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"admin deletes", nil, http.StatusNoContent},
		{"member is forbidden", apperr.Forbidden("only the project admin can perform this action"), http.StatusForbidden},
		{"outsider sees nothing", apperr.NotFoundf("project %s not found", projectID), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProjectService)
			svc.On("Delete", mock.Anything, projectID, user.ID).Return(tt.svcErr)

			r := newProjectRouter(&mw, svc, new(MockMembershipService))
			w := serve(r, httptest.NewRequest(http.MethodDelete, "/project/"+projectID.String(), nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestInviteUserHandler(t *testing.T) {
	user := testUser()
	mw := asUser(user)
	projectID := uuid.New()

	t.Run("admin invites by query email", func(t *testing.T) {
		members := new(MockMembershipService)
		members.On("Invite", mock.Anything, projectID, user.ID, "bob@example.com").Return(nil)

		r := newProjectRouter(&mw, new(MockProjectService), members)
		w := serve(r, httptest.NewRequest(http.MethodPost,
			"/project/"+projectID.String()+"/invite?user_email=bob%40example.com", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		members.AssertExpectations(t)
	})

	t.Run("existing member answers 409", func(t *testing.T) {
		members := new(MockMembershipService)
		members.On("Invite", mock.Anything, projectID, user.ID, "bob@example.com").
			Return(apperr.Conflict("user is already in this project"))

		r := newProjectRouter(&mw, new(MockProjectService), members)
		w := serve(r, httptest.NewRequest(http.MethodPost,
			"/project/"+projectID.String()+"/invite?user_email=bob%40example.com", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing email answers 400", func(t *testing.T) {
		members := new(MockMembershipService)
		r := newProjectRouter(&mw, new(MockProjectService), members)
		w := serve(r, httptest.NewRequest(http.MethodPost, "/project/"+projectID.String()+"/invite", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		members.AssertNotCalled(t, "Invite", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
