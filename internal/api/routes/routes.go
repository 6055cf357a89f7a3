package routes

import (
	"log"

	"teamup-api/internal/api/handlers"
	"teamup-api/internal/api/middleware"
	"teamup-api/internal/app"
	"teamup-api/internal/scoring"
	"teamup-api/internal/services"
	"teamup-api/internal/storage/postgres"
	"teamup-api/internal/storage/redisstore"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	profileRepo := postgres.NewProfileRepo(app.DBPool)
	postRepo := postgres.NewPostRepo(app.DBPool)
	resumeRepo := postgres.NewResumeRepo(app.DBPool)
	applyRepo := postgres.NewApplyRepo(app.DBPool)
	analysisRepo := postgres.NewAnalysisRepo(app.DBPool)
	reviewRepo := postgres.NewReviewRepo(app.DBPool)
	commentRepo := postgres.NewCommentRepo(app.DBPool)
	tokenStore := redisstore.NewRefreshTokenStore(app.RedisClient)

	// --- Services ---
	var scorer services.ResumeScorer
	scoringCfg := app.Config.Scoring
	if scoringCfg.APIKey != "" {
		scorer = scoring.NewClient(scoringCfg.Endpoint, scoringCfg.APIKey, scoringCfg.Model, scoringCfg.Timeout)
	} else {
		log.Println("Scoring API key not configured, applies will not be analyzed")
	}

	var analysisRequester services.AnalysisRequester
	if scorer != nil {
		analysisRequester = services.NewAnalysisService(analysisRepo, applyRepo, postRepo, resumeRepo, scorer, scoringCfg.Timeout)
	}

	userService := services.NewUserService(userRepo, tokenStore, app.Config.JWT.Secret, app.Config.JWT.Expiration, app.Config.JWT.RefreshExpiration)
	postService := services.NewPostService(postRepo)
	resumeService := services.NewResumeService(resumeRepo)
	applyService := services.NewApplyService(applyRepo, postRepo, resumeRepo, userRepo, profileRepo, analysisRepo, analysisRequester)
	reviewService := services.NewReviewService(reviewRepo, applyRepo, postRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, profileRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	postHandler := handlers.NewPostHandler(postService, app.Validator)
	resumeHandler := handlers.NewResumeHandler(resumeService, app.Validator)
	applyHandler := handlers.NewApplyHandler(applyService, app.Validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, app.Validator)
	commentHandler := handlers.NewCommentHandler(commentService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, reviewHandler, authMiddleware)
	RegisterPostRoutes(apiV1, postHandler, applyHandler, commentHandler, authMiddleware)
	RegisterResumeRoutes(apiV1, resumeHandler, authMiddleware)
	RegisterApplyRoutes(apiV1, applyHandler, reviewHandler, authMiddleware)
	RegisterReviewRoutes(apiV1, reviewHandler, authMiddleware)
	RegisterCommentRoutes(apiV1, commentHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
