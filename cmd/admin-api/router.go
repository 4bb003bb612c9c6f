package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/kalpavruksha/eduhub-admin/internal/console"
	"github.com/kalpavruksha/eduhub-admin/internal/handler"
	"github.com/kalpavruksha/eduhub-admin/internal/middleware"
	"github.com/kalpavruksha/eduhub-admin/internal/repository"
	"github.com/kalpavruksha/eduhub-admin/internal/service"
	"github.com/kalpavruksha/eduhub-admin/pkg/clock"
	"github.com/kalpavruksha/eduhub-admin/pkg/config"
	"github.com/kalpavruksha/eduhub-admin/pkg/logger"
	corsmiddleware "github.com/kalpavruksha/eduhub-admin/pkg/middleware/cors"
	reqidmiddleware "github.com/kalpavruksha/eduhub-admin/pkg/middleware/requestid"
	"github.com/kalpavruksha/eduhub-admin/pkg/storage"
)

type components struct {
	stores  *repository.Stores
	cache   *service.CacheService
	metrics *service.MetricsService
	sink    service.UploadSink
	clock   clock.Clock
}

func newRouter(cfg *config.Config, logr *zap.Logger, deps components) (*gin.Engine, error) {
	validate := service.NewValidator()

	resourceSvc := service.NewResourceService(deps.stores.Resources, deps.cache, deps.metrics, validate, logr)
	classSvc := service.NewClassService(deps.stores.Classes, deps.cache, deps.metrics, validate, logr)
	uploadSvc := service.NewUploadService(deps.sink, storage.NewNamer(deps.clock.Now), deps.metrics, logr)
	dashboardSvc := service.NewDashboardService(resourceSvc, classSvc)
	exportSvc := service.NewExportService(resourceSvc, classSvc, deps.clock, logr)

	resourceHandler := handler.NewResourceHandler(resourceSvc)
	classHandler := handler.NewClassHandler(classSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	healthHandler := handler.NewHealthHandler(deps.stores, deps.metrics)

	r := gin.New()
	r.Use(middleware.Recovery(logr))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New())
	if deps.metrics != nil {
		r.Use(middleware.Metrics(deps.metrics))
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	if deps.metrics != nil {
		r.GET("/metrics", healthHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if local, ok := deps.sink.(*storage.LocalStorage); ok {
		r.Static(local.PublicPath(), local.Dir())
	}

	api := r.Group(cfg.APIPrefix)

	resources := api.Group("/resources")
	resources.GET("", resourceHandler.List)
	resources.POST("", resourceHandler.Create)
	resources.PUT("", resourceHandler.Update)
	resources.DELETE("", resourceHandler.Delete)
	resources.GET("/export", exportHandler.Resources)

	classes := api.Group("/classes")
	classes.GET("", classHandler.List)
	classes.POST("", classHandler.Create)
	classes.PUT("", classHandler.Update)
	classes.DELETE("", classHandler.Delete)
	classes.GET("/export", exportHandler.Classes)

	api.POST("/upload", uploadHandler.Upload)
	api.GET("/dashboard", dashboardHandler.Summary)

	if cfg.Console.Enabled {
		consoleHandler, err := console.New(console.Config{
			Resources: resourceSvc,
			Classes:   classSvc,
			Uploads:   uploadSvc,
			Dashboard: dashboardSvc,
			ExportURL: cfg.APIPrefix + "/resources/export",
			Logger:    logr,
		})
		if err != nil {
			return nil, err
		}
		consoleHandler.Register(r.Group("/console"))
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/console/")
		})
	}

	return r, nil
}
