package handler

import (
	"net/http"

	"github.com/docvault-io/docvault/internal/middleware"
	"github.com/docvault-io/docvault/internal/modules/serializer"
	"github.com/docvault-io/docvault/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
//
//	@Summary		Register
//	@Description	Create a user account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.RegisterReq	true	"Register payload"
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Failure		409	{object}	serializer.Response
//	@Router			/auth [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: user})
}

type TokenReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Token godoc
//
//	@Summary		Token
//	@Description	OAuth2 password grant: exchange credentials for a bearer token
//	@Tags			auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Email"
//	@Param			password	formData	string	true	"Password"
//	@Success		200	{object}	service.TokenOutput
//	@Failure		401	{object}	serializer.Response
//	@Router			/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	req := TokenReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		serializer.Fail(c, err)
		return
	}

	// OAuth2 clients expect the token fields at the top level, so this
	// endpoint skips the response envelope.
	c.JSON(http.StatusOK, out)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Revoke the presented token until it expires
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), user.TokenID, user.ExpiresAtUnix); err != nil {
		serializer.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Msg: "logged out"})
}
