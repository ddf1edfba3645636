package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, using environment")
	}
	utils.InitValidator()
}

func setupRouter(client *mongo.Client, dbCfg config.DatabaseConfig, srvCfg config.ServerConfig) *gin.Engine {
	db := client.Database(dbCfg.DatabaseName)

	notesRepo := repository.GetNotesRepo(db)
	foldersRepo := repository.GetFoldersRepo(db)
	tagsRepo := repository.GetTagsRepo(db)

	notesService := &usecase.NoteService{
		NotesRepo: notesRepo,
	}
	foldersService := &usecase.FolderService{
		FoldersRepo: foldersRepo,
	}
	tagsService := &usecase.TagService{
		TagsRepo:  tagsRepo,
		NotesRepo: notesRepo,
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(srvCfg.MaxRequestSize))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		handler.HealthHandler(c, client)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	notes := api.Group("/notes")
	{
		notes.GET("", middleware.CacheControlMiddleware(srvCfg.ListCacheMaxAge), func(c *gin.Context) {
			handler.ListNotesHandler(c, notesService)
		})
		notes.GET("/:id", func(c *gin.Context) {
			handler.GetNoteHandler(c, notesService)
		})
		notes.POST("", func(c *gin.Context) {
			handler.CreateNoteHandler(c, notesService)
		})
		notes.PUT("/:id", func(c *gin.Context) {
			handler.UpdateNoteHandler(c, notesService)
		})
		notes.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
	}

	folders := api.Group("/folders")
	{
		folders.GET("", middleware.CacheControlMiddleware(srvCfg.ListCacheMaxAge), func(c *gin.Context) {
			handler.ListFoldersHandler(c, foldersService)
		})
		folders.GET("/:id", func(c *gin.Context) {
			handler.GetFolderHandler(c, foldersService)
		})
		folders.POST("", func(c *gin.Context) {
			handler.CreateFolderHandler(c, foldersService)
		})
		folders.PUT("/:id", func(c *gin.Context) {
			handler.UpdateFolderHandler(c, foldersService)
		})
		folders.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteFolderHandler(c, foldersService)
		})
	}

	tags := api.Group("/tags")
	{
		tags.GET("", middleware.CacheControlMiddleware(srvCfg.ListCacheMaxAge), func(c *gin.Context) {
			handler.ListTagsHandler(c, tagsService)
		})
		tags.GET("/:id", func(c *gin.Context) {
			handler.GetTagHandler(c, tagsService)
		})
		tags.POST("", func(c *gin.Context) {
			handler.CreateTagHandler(c, tagsService)
		})
		tags.PUT("/:id", func(c *gin.Context) {
			handler.UpdateTagHandler(c, tagsService)
		})
		tags.DELETE("/:id", func(c *gin.Context) {
			handler.DeleteTagHandler(c, tagsService)
		})
	}

	return router
}

func main() {
	dbCfg := config.LoadDatabaseConfig()
	srvCfg := config.LoadServerConfig()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := dbCfg.Connect(connectCtx)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	if err := repository.SetupIndexes(client.Database(dbCfg.DatabaseName)); err != nil {
		log.Fatalf("indexes: %v", err)
	}

	router := setupRouter(client, dbCfg, srvCfg)

	srv := &http.Server{
		Addr:    ":" + srvCfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on :%s", srvCfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Server shutdown complete")
}
