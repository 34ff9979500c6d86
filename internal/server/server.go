package server

import (
	"strings"
	"time"

	"github.com/fomoscore/backend/internal/config"
	"github.com/fomoscore/backend/internal/fetcher"
	"github.com/fomoscore/backend/internal/handler"
	"github.com/fomoscore/backend/internal/middleware"
	"github.com/fomoscore/backend/internal/repository"
	"github.com/fomoscore/backend/internal/service"
	"github.com/fomoscore/backend/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.SugaredLogger) *Server {
	assetStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Warnw("cloudinary unavailable, badge artwork disabled", "error", err)
		assetStorage = nil
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))

	scoreRepo := repository.NewScoreRepository(db)

	twitterFetcher := fetcher.NewTwitterFetcher(cfg.RapidAPIKey, cfg.RapidAPIHost, cfg.FetchTimeout, log)
	walletFetcher := fetcher.NewWalletFetcher(cfg.MoralisAPIKey, cfg.MoralisBaseURL, cfg.FetchTimeout, log)
	telegramFetcher := fetcher.NewTelegramFetcher(cfg.VeridaAPIBaseURL, cfg.FetchTimeout, log)

	eventSvc := service.NewEventService(redisClient, log)
	searchSvc := service.NewSearchService(meiliClient, log)
	badgeArtSvc := service.NewBadgeAssetService(assetStorage, cfg.CloudinaryUploadFolder, log)

	scoreSvc := service.NewScoreService(
		scoreRepo,
		twitterFetcher,
		walletFetcher,
		telegramFetcher,
		eventSvc,
		searchSvc,
		badgeArtSvc,
		redisClient,
		cfg.FetchTimeout,
		cfg.RateLimitScore,
		log,
	)
	scoreHandler := handler.NewScoreHandler(scoreSvc)

	engagementSvc := service.NewEngagementService(telegramFetcher, cfg.FetchTimeout, log)
	telegramHandler := handler.NewTelegramHandler(engagementSvc)

	searchHandler := handler.NewSearchHandler(searchSvc)
	wsHandler := handler.NewWSHandler(redisClient, log)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.GET("/scores/:privyId", scoreHandler.GetScore)
	api.GET("/leaderboard", scoreHandler.Leaderboard)
	api.GET("/search", searchHandler.Search)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/scores/calculate", scoreHandler.CalculateScore)
		protected.GET("/scores/me", scoreHandler.GetMyScore)
		protected.POST("/scores/wallet", scoreHandler.RescoreWallet)

		protected.POST("/telegram/engagement", telegramHandler.Engagement)

		protected.GET("/scores/ws", wsHandler.ScoreUpdates)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
