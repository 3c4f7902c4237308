package app

import (
	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
	"github.com/atul-mandavkar/inotebook-backend/internal/cache"
	"github.com/atul-mandavkar/inotebook-backend/internal/config"
	"github.com/atul-mandavkar/inotebook-backend/internal/handlers"
	"github.com/atul-mandavkar/inotebook-backend/internal/repo"
	"github.com/atul-mandavkar/inotebook-backend/internal/service"

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
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	registerAuthRoutes(api, tokens, authHandler)

	noteRepo := repo.NewPGNoteRepo(db)
	noteCache := cache.NewNoteCache(rdb, cfg.Redis.DefaultTTL.Duration())
	noteSvc := service.NewNoteService(noteRepo, noteCache)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	registerNoteRoutes(api.Group("/note", auth.RequireToken(tokens)), noteHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "iNotebook API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
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

func registerAuthRoutes(api *gin.RouterGroup, tokens *auth.TokenService, h *handlers.AuthHandler) {
	api.POST("/auth/createUser", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/getUser", auth.RequireToken(tokens), h.GetUser)
}

func registerNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	api.GET("/fetchAllNotes", h.List)
	api.POST("/addNote", h.Create)
	api.PUT("/updateNote/:id", h.Update)
	api.DELETE("/deleteNote/:id", h.Delete)
}
