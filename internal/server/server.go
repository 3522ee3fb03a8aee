package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"anoa.com/portfoliocms/internal/config"
	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/middleware"
	"anoa.com/portfoliocms/pkg/mailer"
	"anoa.com/portfoliocms/pkg/ratelimiter"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/storage"

	activityHttp "anoa.com/portfoliocms/internal/modules/activity/delivery/http"
	activityService "anoa.com/portfoliocms/internal/modules/activity/service"

	adminHttp "anoa.com/portfoliocms/internal/modules/admin/delivery/http"
	adminRepo "anoa.com/portfoliocms/internal/modules/admin/repository"
	adminService "anoa.com/portfoliocms/internal/modules/admin/service"

	attachmentHttp "anoa.com/portfoliocms/internal/modules/attachment/delivery/http"
	attachmentRepo "anoa.com/portfoliocms/internal/modules/attachment/repository"
	attachmentService "anoa.com/portfoliocms/internal/modules/attachment/service"

	blogHttp "anoa.com/portfoliocms/internal/modules/blog/delivery/http"
	blogRepo "anoa.com/portfoliocms/internal/modules/blog/repository"
	blogService "anoa.com/portfoliocms/internal/modules/blog/service"

	categoryHttp "anoa.com/portfoliocms/internal/modules/category/delivery/http"
	categoryRepo "anoa.com/portfoliocms/internal/modules/category/repository"
	categoryService "anoa.com/portfoliocms/internal/modules/category/service"

	certificationHttp "anoa.com/portfoliocms/internal/modules/certification/delivery/http"
	certificationService "anoa.com/portfoliocms/internal/modules/certification/service"

	contactHttp "anoa.com/portfoliocms/internal/modules/contact/delivery/http"
	contactRepo "anoa.com/portfoliocms/internal/modules/contact/repository"
	contactService "anoa.com/portfoliocms/internal/modules/contact/service"

	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"

	educationHttp "anoa.com/portfoliocms/internal/modules/education/delivery/http"
	educationService "anoa.com/portfoliocms/internal/modules/education/service"

	experienceHttp "anoa.com/portfoliocms/internal/modules/experience/delivery/http"
	experienceService "anoa.com/portfoliocms/internal/modules/experience/service"

	portfolioHttp "anoa.com/portfoliocms/internal/modules/portfolio/delivery/http"
	portfolioService "anoa.com/portfoliocms/internal/modules/portfolio/service"

	problemSolvingHttp "anoa.com/portfoliocms/internal/modules/problemsolving/delivery/http"
	problemSolvingService "anoa.com/portfoliocms/internal/modules/problemsolving/service"

	profileHttp "anoa.com/portfoliocms/internal/modules/profile/delivery/http"
	profileRepo "anoa.com/portfoliocms/internal/modules/profile/repository"
	profileService "anoa.com/portfoliocms/internal/modules/profile/service"

	projectHttp "anoa.com/portfoliocms/internal/modules/project/delivery/http"
	projectService "anoa.com/portfoliocms/internal/modules/project/service"

	reviewHttp "anoa.com/portfoliocms/internal/modules/review/delivery/http"
	reviewService "anoa.com/portfoliocms/internal/modules/review/service"

	searchService "anoa.com/portfoliocms/internal/modules/search/service"

	settingHttp "anoa.com/portfoliocms/internal/modules/setting/delivery/http"
	settingRepo "anoa.com/portfoliocms/internal/modules/setting/repository"
	settingService "anoa.com/portfoliocms/internal/modules/setting/service"

	statHttp "anoa.com/portfoliocms/internal/modules/stat/delivery/http"
	statRepo "anoa.com/portfoliocms/internal/modules/stat/repository"
	statService "anoa.com/portfoliocms/internal/modules/stat/service"

	skillHttp "anoa.com/portfoliocms/internal/modules/skill/delivery/http"
	skillService "anoa.com/portfoliocms/internal/modules/skill/service"

	socialLinkHttp "anoa.com/portfoliocms/internal/modules/sociallink/delivery/http"
	socialLinkService "anoa.com/portfoliocms/internal/modules/sociallink/service"

	userHttp "anoa.com/portfoliocms/internal/modules/user/delivery/http"
	userRepo "anoa.com/portfoliocms/internal/modules/user/repository"
	userService "anoa.com/portfoliocms/internal/modules/user/service"

	viewService "anoa.com/portfoliocms/internal/modules/view/service"

	"anoa.com/portfoliocms/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	orphanCleanupInterval = 12 * time.Hour
	shutdownTimeout       = 15 * time.Second
	tokenIssuer           = "portfoliocms"
)

// Options carries the process-wide dependencies. Storage, Indexer and Mailer
// are built from Config when nil.
type Options struct {
	Config  *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Logger  *slog.Logger
	Storage storage.ImageStorage
	Indexer searchService.BlogIndexer
	Mailer  mailer.Mailer
}

type Server struct {
	engine      *gin.Engine
	cfg         *config.Config
	db          *gorm.DB
	redisClient *redis.Client
	logger      *slog.Logger

	views       viewService.ViewService
	attachments attachmentService.AttachmentService
}

func NewServer(ctx context.Context, opts Options) (*Server, error) {
	cfg, db, redisClient, logger := opts.Config, opts.DB, opts.Redis, opts.Logger

	imageStorage := opts.Storage
	if imageStorage == nil {
		var err error
		imageStorage, err = storage.New(ctx, storage.Config{
			Driver: cfg.StorageDriver,
			Cloudinary: storage.CloudinaryConfig{
				CloudName: cfg.CloudinaryCloudName,
				APIKey:    cfg.CloudinaryAPIKey,
				APISecret: cfg.CloudinaryAPISecret,
				Folder:    cfg.CloudinaryUploadFolder,
			},
			S3: storage.S3Config{
				Endpoint:        cfg.S3Endpoint,
				Region:          cfg.S3Region,
				AccessKeyID:     cfg.S3AccessKeyID,
				AccessKeySecret: cfg.S3AccessKeySecret,
				Bucket:          cfg.S3Bucket,
				PublicURL:       cfg.S3PublicURL,
			},
			MaxWidth: cfg.UploadMaxWidth,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	indexer := opts.Indexer
	if indexer == nil {
		indexer = newIndexer(cfg, logger)
	}

	mail := opts.Mailer
	if mail == nil {
		mail = mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
		}, logger)
	}

	originPolicy := middleware.NewOriginPolicy(cfg.AllowedOrigins)
	jwtManager := token.NewManager(cfg.JWTSecret, cfg.JWTTTL, tokenIssuer)

	// identity
	userRepository := userRepo.NewUserRepository(db)
	authSvc := userService.NewAuthService(userRepository, userRepo.NewTokenRepository(db), jwtManager, userService.Options{
		AllowRegistration: cfg.AllowRegistration,
		RefreshTokenTTL:   cfg.RefreshTokenTTL,
	}, logger)
	authHandler := userHttp.NewAuthHandler(authSvc)
	authMiddleware := middleware.NewAuthMiddleware(userRepository, jwtManager)

	// settings
	settingSvc := settingService.NewSettingService(settingRepo.NewSettingRepository(db), originPolicy, logger)
	if err := settingSvc.ReloadCors(ctx); err != nil {
		logger.Warn("failed to load stored cors origins", "error", err)
	}
	settingHandler := settingHttp.NewSettingHandler(settingSvc)

	profileRepository := profileRepo.NewProfileRepository(db)
	categoryRepository := categoryRepo.NewCategoryRepository(db)

	// blog
	blogRepository := blogRepo.NewBlogPostRepository(db)
	viewSvc := viewService.NewViewService(redisClient, blogRepository, logger)
	blogSvc := blogService.NewBlogService(blogRepository, categoryRepository, profileRepository, indexer, viewSvc, logger)
	blogHandler := blogHttp.NewBlogHandler(blogSvc)

	// profile and resume sections
	profileSvc := profileService.NewProfileService(profileRepository, imageStorage, blogSvc, cfg.UploadMaxBytes, logger)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	skillSvc := skillService.NewSkillService(crudRepo.New[entity.Skill](db))
	educationSvc := educationService.NewEducationService(crudRepo.New[entity.Education](db))
	experienceSvc := experienceService.NewWorkExperienceService(crudRepo.New[entity.WorkExperience](db))
	projectSvc := projectService.NewProjectService(crudRepo.New[entity.Project](db))
	certificationSvc := certificationService.NewCertificationService(crudRepo.New[entity.Certification](db))
	reviewSvc := reviewService.NewReviewService(crudRepo.New[entity.Review](db))
	socialLinkSvc := socialLinkService.NewSocialLinkService(crudRepo.New[entity.SocialLink](db))
	activitySvc := activityService.NewActivityService(crudRepo.New[entity.ExtraCurricularActivity](db))
	problemSolvingSvc := problemSolvingService.NewProblemSolvingService(crudRepo.New[entity.ProblemSolving](db))

	categorySvc := categoryService.NewCategoryService(categoryRepository)

	portfolioSvc := portfolioService.NewPortfolioService(profileSvc, portfolioService.Sections{
		Skills:          skillSvc,
		Educations:      educationSvc,
		WorkExperiences: experienceSvc,
		Projects:        projectSvc,
		Certifications:  certificationSvc,
		Reviews:         reviewSvc,
		SocialLinks:     socialLinkSvc,
		Activities:      activitySvc,
		ProblemSolving:  problemSolvingSvc,
	})
	portfolioHandler := portfolioHttp.NewPortfolioHandler(portfolioSvc)

	// contact
	contactSvc := contactService.NewContactService(
		contactRepo.NewContactMessageRepository(db),
		profileRepository,
		userRepository,
		settingSvc,
		mail,
		ratelimiter.New(redisClient, "rate_limit"),
		redisClient,
		contactService.Options{Cooldown: cfg.RateLimitContact},
		logger,
	)
	contactHandler := contactHttp.NewContactHandler(contactSvc, redisClient, originPolicy.Allow, logger)

	adminSvc := adminService.NewAdminService(adminRepo.NewUserAdminRepository(db), indexer, imageStorage, logger)
	adminHandler := adminHttp.NewAdminHandler(adminSvc)

	statSvc := statService.NewStatService(statRepo.NewStatRepository(db), userRepository)
	statHandler := statHttp.NewStatHandler(statSvc)

	// uploads
	attachmentSvc := attachmentService.NewAttachmentService(attachmentRepo.NewAttachmentRepository(db), imageStorage, cfg.UploadMaxBytes, logger)
	attachmentHandler := attachmentHttp.NewAttachmentHandler(attachmentSvc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.Recovery(logger, cfg.ExposeErrorDetail))
	router.Use(middleware.CORS(originPolicy))
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/v1/health"},
	}))
	router.Use(middleware.ErrorHandler(logger, cfg.ExposeErrorDetail))
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	s := &Server{
		engine:      router,
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		logger:      logger,
		views:       viewSvc,
		attachments: attachmentSvc,
	}

	api := router.Group("/api/v1")
	api.GET("/health", s.health)

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	api.GET("/settings", settingHandler.GetPublicSettings)
	api.GET("/blog/search", blogHandler.SearchPosts)

	public := api.Group("/portfolio/:username")
	{
		public.GET("", portfolioHandler.GetPortfolio)
		public.GET("/blog", blogHandler.ListPublicPosts)
		public.GET("/blog/:slug", blogHandler.GetPublicPost)
		public.POST("/contact", contactHandler.SendMessage)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/dashboard", statHandler.GetDashboard)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetCurrentProfile)
			profile.PUT("", profileHandler.UpsertProfile)
			profile.POST("/image", profileHandler.UploadImage)
			profile.POST("/resume", profileHandler.UploadResume)
		}

		skillHttp.NewSkillHandler(skillSvc).Register(protected.Group("/skills"))
		educationHttp.NewEducationHandler(educationSvc).Register(protected.Group("/educations"))
		experienceHttp.NewWorkExperienceHandler(experienceSvc).Register(protected.Group("/work-experiences"))
		projectHttp.NewProjectHandler(projectSvc).Register(protected.Group("/projects"))
		certificationHttp.NewCertificationHandler(certificationSvc).Register(protected.Group("/certifications"))
		reviewHttp.NewReviewHandler(reviewSvc).Register(protected.Group("/reviews"))
		socialLinkHttp.NewSocialLinkHandler(socialLinkSvc).Register(protected.Group("/social-links"))
		activityHttp.NewActivityHandler(activitySvc).Register(protected.Group("/activities"))
		problemSolvingHttp.NewProblemSolvingHandler(problemSolvingSvc).Register(protected.Group("/problem-solving"))
		categoryHttp.NewCategoryHandler(categorySvc).Register(protected.Group("/blog-categories"))

		blogHandler.Register(protected.Group("/blog-posts"))
		contactHandler.Register(protected.Group("/contact-messages"))

		uploads := protected.Group("/uploads")
		{
			uploads.POST("", attachmentHandler.UploadAttachment)
			uploads.GET("", attachmentHandler.ListAttachments)
			uploads.DELETE("/:id", attachmentHandler.DeleteAttachment)
		}

		admin := protected.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		settingHandler.RegisterAdmin(admin.Group("/settings"))
		adminHandler.RegisterAdmin(admin.Group("/users"))
		admin.GET("/stats", statHandler.GetSiteStats)
	}

	return s, nil
}

// Handler exposes the router for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests and
// flushes buffered blog views.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.views.StartViewSyncWorker(gctx, s.cfg.ViewSyncInterval)
		return nil
	})

	g.Go(func() error {
		s.runOrphanCleanup(gctx)
		return nil
	})

	g.Go(func() error {
		s.logger.Info("server listening", "addr", srv.Addr, "env", s.cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down server")
		err := srv.Shutdown(shutdownCtx)
		if n, syncErr := s.views.SyncViews(shutdownCtx); syncErr != nil {
			s.logger.Error("final blog view sync failed", "error", syncErr)
		} else if n > 0 {
			s.logger.Info("flushed blog views", "posts", n)
		}
		return err
	})

	return g.Wait()
}

func (s *Server) runOrphanCleanup(ctx context.Context) {
	ticker := time.NewTicker(orphanCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.logger.Info("running orphan attachment cleanup")
			if err := s.attachments.CleanupOrphanAttachments(ctx); err != nil {
				s.logger.Error("orphan attachment cleanup failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "up"}
	healthy := true

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status["database"] = "down"
		healthy = false
	}

	switch {
	case s.redisClient == nil:
		status["redis"] = "disabled"
	case s.redisClient.Ping(ctx).Err() != nil:
		// redis backs optional features only
		status["redis"] = "down"
	default:
		status["redis"] = "up"
	}

	if !healthy {
		response.Fail(c, http.StatusServiceUnavailable, "service unavailable",
			"database: "+status["database"],
			"redis: "+status["redis"],
		)
		return
	}
	response.OK(c, "ok", status)
}

func newIndexer(cfg *config.Config, logger *slog.Logger) searchService.BlogIndexer {
	host := cfg.MeiliSearchHost
	if host == "" {
		logger.Info("meilisearch not configured, blog search uses the database")
		return searchService.NewNoopIndexer()
	}
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	client := meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	return searchService.NewMeiliIndexer(client, logger)
}
