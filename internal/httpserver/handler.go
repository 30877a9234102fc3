package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"todo-web/internal/middleware"
	"todo-web/internal/model"
	"todo-web/web"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.auth)

	srv.registerMiddlewares(mw)

	if err := srv.registerTemplates(); err != nil {
		return err
	}

	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Tracing())
	srv.gin.Use(mw.AccessLog())
}

func (srv *HTTPServer) registerTemplates() error {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	srv.gin.SetHTMLTemplate(tmpl)
	return nil
}

func (srv *HTTPServer) registerSystemRoutes() {
	ctx := context.Background()

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.staticDir != "" {
		srv.gin.Static("/static", srv.staticDir)
		srv.l.Infof(ctx, "Static assets served from %s at /static", srv.staticDir)
	}

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
		srv.l.Infof(ctx, "Swagger UI registered at /swagger/index.html")
	}
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupTodoDomain(ctx, mw); err != nil {
		return err
	}

	return nil
}
