package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chat-task-manager/internal/middleware"
	"chat-task-manager/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the chat API routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(mw.RateLimit())

	api.POST("/chat", srv.chatHandler.Chat)
	api.GET("/tasks", srv.chatHandler.ListTasks)
	api.GET("/tasks/:id", srv.chatHandler.GetTask)

	srv.l.Infof(ctx, "Chat routes registered at POST /api/v1/chat, GET /api/v1/tasks")
}
