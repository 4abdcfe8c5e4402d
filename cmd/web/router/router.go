package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fanvue-front/cmd/web/clients/placeholderclient"
	"fanvue-front/cmd/web/handlers"
	"fanvue-front/cmd/web/middleware"
	"fanvue-front/cmd/web/services"
	"fanvue-front/cmd/web/views"
	"fanvue-front/config"
	_ "fanvue-front/docs"
)

func New(cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.SecureHeaders())
	r.SetHTMLTemplate(views.Templates())

	client := placeholderclient.NewFromConfig(cfg.Upstream)
	feedSvc := services.NewFeedService(client, cfg.Feed)
	vaultSvc := services.NewVaultService(client, cfg.Vault)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/feed")
	})

	// Server-rendered pages
	pages := r.Group("/", middleware.PageCSP())
	{
		pages.GET("/feed", handlers.FeedPageHandler(feedSvc, views.FeedMeta(cfg.Site)))
		pages.GET("/vault", handlers.VaultPageHandler(vaultSvc, views.VaultMeta(cfg.Site)))
	}

	// v1 page data routes
	api := r.Group("/api/v1", middleware.CORS(cfg.Server.CORSAllowedOrigins))
	{
		api.GET("/feed", handlers.FeedDataHandler(feedSvc))
		api.GET("/vault", handlers.VaultDataHandler(vaultSvc))
		// preflight 는 CORS 미들웨어에서 끝난다.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	r.GET("/health", handlers.HealthHandler(client))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
