package api

import (
	"errors"
	"net/http"
	"time"

	"recipe-chatbot/internal/api/handlers/chat"
	"recipe-chatbot/internal/api/handlers/health"
	"recipe-chatbot/internal/api/handlers/home"
	"recipe-chatbot/internal/api/middleware"
	"recipe-chatbot/internal/core/recipe"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Completer 補全服務，*service.Service 實作此介面
type Completer interface {
	recipe.Completer
	Model() string
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, ai Completer) (*gin.Engine, error) {
	if ai == nil {
		return nil, errors.New("completion service is required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	agent := recipe.NewAgent(ai)
	chatHandler := chat.NewHandler(agent)
	healthHandler := health.NewHandler(cfg.App.Version, ai.Model())

	router.GET("/", home.Page)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)

	api := router.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)
		api.POST("/nutrition", chatHandler.Nutrition)
	}

	common.LogInfo("Router setup completed successfully",
		zap.String("model", ai.Model()),
		zap.Strings("tools", agent.Tools()),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
