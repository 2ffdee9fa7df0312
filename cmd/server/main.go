package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/socialplanner/configs"
	"github.com/maheshrc27/socialplanner/internal/api/handlers"
	job "github.com/maheshrc27/socialplanner/internal/jobs"
	"github.com/maheshrc27/socialplanner/internal/service"
	"github.com/maheshrc27/socialplanner/internal/storage"
	"github.com/maheshrc27/socialplanner/internal/store"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	kv, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeKV(kv)

	plannerStore := store.New(kv, cfg.StorageNamespace)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	blobService := service.NewBlobService(*cfg)
	contentService := service.NewContentService(plannerStore)
	assetService := service.NewAssetService(plannerStore, blobService)
	dataService := service.NewDataService(plannerStore)
	settingsService := service.NewSettingsService(plannerStore)

	app.Static("/media", blobService.MediaDir())

	api := app.Group("/api")

	content := handlers.NewContentHandler(contentService)
	api.Post("/contents/create", content.CreateContent)
	api.Get("/contents", content.ListContents)
	api.Get("/contents/search", content.SearchContents)
	api.Get("/contents/filter", content.FilterContents)
	api.Post("/contents/update", content.UpdateContent)
	api.Post("/contents/remove", content.RemoveContent)
	api.Post("/contents/bulk/update", content.BulkUpdateContents)
	api.Post("/contents/bulk/remove", content.BulkRemoveContents)
	api.Post("/contents/clear", content.ClearContents)

	calendar := handlers.NewCalendarHandler(plannerStore)
	api.Get("/calendar/month", calendar.MonthGrid)
	api.Get("/calendar/week", calendar.WeekGrid)
	api.Get("/calendar/day", calendar.DayEvents)
	api.Get("/calendar/upcoming", calendar.UpcomingEvents)

	dashboard := handlers.NewDashboardHandler(plannerStore, cfg.WeeklyGoal)
	api.Get("/dashboard/stats", dashboard.GetStats)
	api.Get("/dashboard/assets/recent", dashboard.GetRecentAssets)

	asset := handlers.NewAssetHandler(assetService)
	api.Post("/assets/:category/upload", asset.UploadAssets)
	api.Post("/assets/:category/create", asset.CreateAsset)
	api.Post("/assets/:category/update", asset.UpdateAsset)
	api.Post("/assets/:category/remove", asset.RemoveAsset)
	api.Get("/assets/:category", asset.ListAssets)

	data := handlers.NewDataHandler(dataService)
	api.Post("/data/import", data.ImportData)
	api.Get("/data/export", data.ExportData)

	settings := handlers.NewSettingsHandler(settingsService)
	api.Get("/settings/info", settings.GetSettingsInfo)
	api.Post("/settings/theme/toggle", settings.ToggleTheme)
	api.Post("/settings/sidebar/toggle", settings.ToggleSidebar)

	// cron jobs
	syncJob := job.NewStorageSyncJob(plannerStore)

	c := cron.New()
	c.AddFunc("@every "+cfg.SyncInterval.String(), syncJob.SyncStorage)
	c.Start()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:" + cfg.Port)

	gracefulShutdown(app, kv)
}

func closeKV(kv storage.KV) {
	if err := kv.Close(); err != nil {
		log.Printf("Failed to close storage: %v", err)
	}
}

func gracefulShutdown(app *fiber.App, kv storage.KV) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeKV(kv)
	log.Println("Server shutdown complete.")
}
