package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sarigama-github/agama-backend/internal/config"
	"github.com/sarigama-github/agama-backend/internal/handler"
	"github.com/sarigama-github/agama-backend/internal/middleware"
	"github.com/sarigama-github/agama-backend/internal/model"
	"github.com/sarigama-github/agama-backend/internal/response"
	"github.com/sarigama-github/agama-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	Material   *handler.ContentHandler[model.Material]
	Video      *handler.ContentHandler[model.Video]
	Photo      *handler.ContentHandler[model.Photo]
	Quiz       *handler.ContentHandler[model.Quiz]
	Question   *handler.QuestionHandler
	Submission *handler.SubmissionHandler
}

// SetupRouter configures all Gin routes. Reads are public; every mutating
// route passes through the admin gate first.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	requireAdmin := middleware.RequireAdmin(authService)

	// ─── Root & Diagnostics ────────────────────────────────────────────
	router.GET("/", handlers.System.Root)
	router.GET("/test", handlers.System.Test)

	// ─── Auth (Public, Rate Limited) ───────────────────────────────────
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)
	router.POST("/auth/login", loginLimiter.Middleware(), handlers.Auth.Login)

	// ─── Materials ─────────────────────────────────────────────────────
	router.POST("/materials", requireAdmin, handlers.Material.Create)
	router.GET("/materials", handlers.Material.List)
	router.PUT("/materials/:id", requireAdmin, handlers.Material.Update)

	// ─── Videos (no update endpoint) ───────────────────────────────────
	router.POST("/videos", requireAdmin, handlers.Video.Create)
	router.GET("/videos", handlers.Video.List)

	// ─── Photos (no update endpoint) ───────────────────────────────────
	router.POST("/photos", requireAdmin, handlers.Photo.Create)
	router.GET("/photos", handlers.Photo.List)

	// ─── Quizzes & Questions ───────────────────────────────────────────
	router.POST("/quizzes", requireAdmin, handlers.Quiz.Create)
	router.GET("/quizzes", handlers.Quiz.List)
	router.PUT("/quizzes/:id", requireAdmin, handlers.Quiz.Update)

	router.POST("/questions", requireAdmin, handlers.Question.Create)
	router.GET("/quizzes/:quiz_id/questions", handlers.Question.ListByQuiz)
	router.PUT("/questions/:id", requireAdmin, handlers.Question.Update)

	// ─── Grading ───────────────────────────────────────────────────────
	router.POST("/quizzes/:quiz_id/submit", handlers.Submission.Submit)

	return router
}
