package handler

import (
	"net/http"

	"github.com/docvault-io/docvault/internal/middleware"
	"github.com/docvault-io/docvault/internal/modules/serializer"
	"github.com/docvault-io/docvault/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	svc     service.ProjectService
	members service.MembershipService
}

func NewProjectHandler(s service.ProjectService, m service.MembershipService) *ProjectHandler {
	return &ProjectHandler{svc: s, members: m}
}

type CreateProjectReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project; the caller becomes its sole admin
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   user.ID,
	})
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List the projects the caller is a member of
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	projects, err := h.svc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProjectInfo godoc
//
//	@Summary		Get project
//	@Description	Get a project the caller is a member of
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/{project_id}/info [get]
func (h *ProjectHandler) GetProjectInfo(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.GetForUser(c.Request.Context(), projectID, user.ID)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

type UpdateProjectReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectInfo godoc
//
//	@Summary		Update project
//	@Description	Update name and/or description; empty fields are left untouched
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/{project_id}/info [put]
func (h *ProjectHandler) UpdateProjectInfo(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), service.UpdateProjectInput{
		ProjectID:   projectID,
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project and all its memberships (admin only)
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		204	"no content"
//	@Failure		403	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/project/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, user.ID); err != nil {
		serializer.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type InviteReq struct {
	UserEmail string `form:"user_email" binding:"required,email"`
}

// InviteUser godoc
//
//	@Summary		Invite user
//	@Description	Add a user to the project as a non-admin member (admin only)
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			user_email	query	string	true	"Email of the user to invite"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Failure		409	{object}	serializer.Response
//	@Router			/project/{project_id}/invite [post]
func (h *ProjectHandler) InviteUser(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := InviteReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.members.Invite(c.Request.Context(), projectID, user.ID, req.UserEmail); err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Msg: "user added to project"})
}
