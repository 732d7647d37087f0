package app

import (
	"github.com/scr1b3s/taskmaster/internal/cache"
	"github.com/scr1b3s/taskmaster/internal/config"
	"github.com/scr1b3s/taskmaster/internal/gtasks"
	"github.com/scr1b3s/taskmaster/internal/handlers"
	"github.com/scr1b3s/taskmaster/internal/repo"
	"github.com/scr1b3s/taskmaster/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	viewCache := cache.NewViewCache(rdb, cfg.Redis.DefaultTTL.Duration())

	taskRepo := repo.NewPGTaskRepo(db)
	domainRepo := repo.NewPGDomainRepo(db)
	entryRepo := repo.NewPGTimeEntryRepo(db)
	interruptionRepo := repo.NewPGInterruptionRepo(db)
	reportRepo := repo.NewPGReportRepo(db)

	provider := gtasks.NewClient(cfg.Google)
	syncSvc := service.NewSyncService(provider, taskRepo, viewCache, cfg.Sync.MaxLists, cfg.Sync.MaxTasks)
	taskSvc := service.NewTaskService(taskRepo, domainRepo, viewCache)
	timerSvc := service.NewTimerService(entryRepo, interruptionRepo, viewCache)
	reportSvc := service.NewReportService(reportRepo, viewCache)

	api.POST("/sync", handlers.NewSyncHandler(syncSvc).Sync)

	taskHandler := handlers.NewTaskHandler(taskSvc)
	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/:id", taskHandler.GetByID)
	api.POST("/tasks/:id/triage", taskHandler.Triage)

	timerHandler := handlers.NewTimerHandler(timerSvc)
	api.POST("/tasks/:id/start", timerHandler.Start)
	api.POST("/tasks/:id/stop", timerHandler.Stop)
	api.POST("/tasks/:id/interruptions", timerHandler.LogInterruption)

	api.GET("/report", handlers.NewReportHandler(reportSvc).Report)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Taskmaster API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
