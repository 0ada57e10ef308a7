package server

import (
	"context"
	"net/http"
	"time"

	"klture/internal/account"
	"klture/internal/ai"
	"klture/internal/auth"
	"klture/internal/catalog"
	"klture/internal/community"
	"klture/internal/config"
	"klture/internal/credit"
	"klture/internal/email"
	"klture/internal/enrollment"
	"klture/internal/sales"
	"klture/internal/trainer"
	"klture/internal/video"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	catalogRepo := catalog.NewRepository(db)
	creditRepo := credit.NewRepository(db)
	salesRepo := sales.NewRepository(db)
	enrollRepo := enrollment.NewRepository(db)
	accountRepo := account.NewRepository(db)
	communityRepo := community.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	aiHistoryRepo := ai.NewHistoryRepository(db)

	memberName := func(ctx context.Context, userEmail string) (string, bool) {
		acc, err := accountRepo.FindLatestByEmail(ctx, userEmail)
		if err != nil {
			return "", false
		}
		return acc.FullName, true
	}
	creditHandler := credit.NewHandler(db, emailService, memberName)
	reader := creditHandler.Reader()

	catalogHandler := catalog.NewHandler(db)
	trainerHandler := trainer.NewHandler(trainerRepo)
	communityHandler := community.NewHandler(communityRepo)
	salesHandler := sales.NewHandler(salesRepo)

	enrollService := enrollment.NewService(enrollRepo, catalogRepo, creditRepo, salesRepo, reader, emailService)
	enrollHandler := enrollment.NewHandler(enrollService)

	aiClient := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	aiService := ai.NewService(aiClient, aiHistoryRepo)
	aiHandler := ai.NewHandler(aiService)

	accountHandler := account.NewHandler(
		accountRepo, cfg.JWTSecret, cfg.AdminEmails,
		enrollRepo, creditRepo, reader, aiHistoryRepo,
	)

	authRateLimit := RateLimitMiddleware(1, 5)
	aiRateLimit := RateLimitMiddleware(0.5, 3)

	authGroup := router.Group("/auth")
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/signup", accountHandler.SignUp)
		authGroup.POST("/signin", accountHandler.SignIn)
		authGroup.POST("/refresh", accountHandler.Refresh)
	}

	// Public catalog and community directory, same surface the site renders
	// without signing in.
	router.GET("/catalog/mini", catalogHandler.ListMiniPrograms)
	router.GET("/catalog/other", catalogHandler.ListOtherPrograms)
	router.GET("/catalog/online", catalogHandler.ListOnlineCourses)
	router.GET("/catalog/free", catalogHandler.ListFreeCourses)
	router.GET("/trainers", trainerHandler.List)
	router.GET("/community/members", communityHandler.ListMembers)
	router.GET("/video/resolve", video.ResolveHandler)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	// Enrollment accepts anonymous callers for free programs, so the group
	// only decodes identity when a token is present.
	enroll := router.Group("/enroll")
	enroll.Use(auth.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		enroll.POST("", enrollHandler.Register)
		enroll.GET("/quote", enrollHandler.Quote)
	}

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", accountHandler.Me)
		protected.GET("/me/enrollments", enrollHandler.MyEnrollments)
		protected.GET("/me/follows", communityHandler.MyFollows)
		protected.GET("/me/ai-history", aiHandler.History)
		protected.GET("/credits/balance", creditHandler.GetBalance)
		protected.GET("/credits/transactions", creditHandler.ListTransactions)
		protected.POST("/community/follow", communityHandler.Follow)
		protected.POST("/community/unfollow", communityHandler.Unfollow)
	}

	aiGroup := router.Group("/ai")
	aiGroup.Use(authMiddleware, aiRateLimit)
	{
		aiGroup.POST("/marketing", aiHandler.Marketing)
		aiGroup.POST("/boosting", aiHandler.Boosting)
		aiGroup.GET("/spy", aiHandler.Spy)
		aiGroup.POST("/paraphrase", aiHandler.Paraphrase)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/credits/topup", creditHandler.TopUp)
		admin.POST("/credits/adjust", creditHandler.Adjust)
		admin.GET("/sales", salesHandler.List)
		admin.POST("/trainers", trainerHandler.Create)
		admin.DELETE("/trainers/:id", trainerHandler.Delete)
		admin.POST("/catalog/mini", catalogHandler.CreateMiniProgram)
		admin.POST("/catalog/other", catalogHandler.CreateOtherProgram)
		admin.POST("/catalog/online", catalogHandler.CreateOnlineCourse)
		admin.POST("/catalog/free", catalogHandler.CreateFreeCourse)
		admin.GET("/test-email", TestEmail(emailService))
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
