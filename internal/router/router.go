package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/docvault-io/docvault/docs"
	"github.com/docvault-io/docvault/internal/config"
	"github.com/docvault-io/docvault/internal/middleware"
	"github.com/docvault-io/docvault/internal/modules/handler"
	"github.com/docvault-io/docvault/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Redis           *redis.Client
	Log             *zap.Logger
	AuthHandler     *handler.AuthHandler
	ProjectHandler  *handler.ProjectHandler
	DocumentHandler *handler.DocumentHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public auth surface
	r.POST("/auth", d.AuthHandler.Register)
	r.POST("/token", d.AuthHandler.Token)

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.BearerAuth(d.Config, d.Redis, d.Log))

		v1.POST("/logout", d.AuthHandler.Logout)

		v1.GET("/projects", d.ProjectHandler.ListProjects)
		v1.POST("/projects", d.ProjectHandler.CreateProject)

		project := v1.Group("/project/:project_id")
		{
			project.GET("/info", d.ProjectHandler.GetProjectInfo)
			project.PUT("/info", d.ProjectHandler.UpdateProjectInfo)
			project.DELETE("", d.ProjectHandler.DeleteProject)
			project.POST("/invite", d.ProjectHandler.InviteUser)

			project.POST("/documents", d.DocumentHandler.UploadDocument)
			project.GET("/documents", d.DocumentHandler.ListDocuments)
		}

		document := v1.Group("/document/:document_id")
		{
			document.GET("", d.DocumentHandler.GetDocument)
			document.PUT("", d.DocumentHandler.RenameDocument)
			document.DELETE("", d.DocumentHandler.DeleteDocument)
			document.GET("/download", d.DocumentHandler.DownloadDocument)
		}
	}
	return r
}
