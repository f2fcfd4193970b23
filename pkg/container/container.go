package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"qbrain-backend/internal/config"
	infraCache "qbrain-backend/internal/infrastructure/cache"
	"qbrain-backend/internal/infrastructure/docstore"
	"qbrain-backend/internal/infrastructure/email"
	"qbrain-backend/internal/infrastructure/queue"
	"qbrain-backend/internal/infrastructure/realtime"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/pkg/cache"
	"qbrain-backend/pkg/jwt"
	"qbrain-backend/pkg/logger"

	achievementHandler "qbrain-backend/internal/domains/achievement/handler"
	achievementRepo "qbrain-backend/internal/domains/achievement/repository"
	achievementService "qbrain-backend/internal/domains/achievement/service"
	appHandler "qbrain-backend/internal/domains/application/handler"
	appModel "qbrain-backend/internal/domains/application/model"
	appRepo "qbrain-backend/internal/domains/application/repository"
	appService "qbrain-backend/internal/domains/application/service"
	authHandler "qbrain-backend/internal/domains/auth/handler"
	authService "qbrain-backend/internal/domains/auth/service"
	blogHandler "qbrain-backend/internal/domains/blog/handler"
	blogModel "qbrain-backend/internal/domains/blog/model"
	blogRepo "qbrain-backend/internal/domains/blog/repository"
	blogService "qbrain-backend/internal/domains/blog/service"
	contactHandler "qbrain-backend/internal/domains/contact/handler"
	contactModel "qbrain-backend/internal/domains/contact/model"
	contactRepo "qbrain-backend/internal/domains/contact/repository"
	contactService "qbrain-backend/internal/domains/contact/service"
	dashboardHandler "qbrain-backend/internal/domains/dashboard/handler"
	dashboardService "qbrain-backend/internal/domains/dashboard/service"
	mediaHandler "qbrain-backend/internal/domains/media/handler"
	mediaService "qbrain-backend/internal/domains/media/service"
	siteHandler "qbrain-backend/internal/domains/site/handler"
	siteService "qbrain-backend/internal/domains/site/service"
	systemHandler "qbrain-backend/internal/domains/system/handler"
	teamHandler "qbrain-backend/internal/domains/team/handler"
	teamRepo "qbrain-backend/internal/domains/team/repository"
	teamService "qbrain-backend/internal/domains/team/service"
	themeHandler "qbrain-backend/internal/domains/theme/handler"
	themeRepo "qbrain-backend/internal/domains/theme/repository"
	themeService "qbrain-backend/internal/domains/theme/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của API. Thứ tự khởi tạo:
// Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	Store      docstore.Store
	Redis      *infraCache.RedisClient // nil nếu Redis không kết nối được
	Cache      cache.Cache
	Blob       storage.BlobStore
	Local      *storage.LocalStorage // != nil khi BLOB_DRIVER=local, dùng để serve /uploads
	Images     *storage.ImageUploader
	Composer   *email.Composer
	Sender     email.Sender
	Queue      *queue.Client
	Hub        *realtime.Hub
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	TeamRepo        teamRepo.TeamRepository
	HackathonRepo   achievementRepo.HackathonRepository
	BlogRepo        blogRepo.BlogRepository
	ApplicationRepo appRepo.ApplicationRepository
	ContactRepo     contactRepo.ContactRepository
	ThemeRepo       themeRepo.ThemeRepository

	// ========================================
	// SERVICE LAYER
	// ========================================
	TeamService        teamService.ServiceInterface
	AchievementService achievementService.ServiceInterface
	BlogService        blogService.ServiceInterface
	ApplicationService appService.ServiceInterface
	ContactService     contactService.ServiceInterface
	ThemeService       themeService.ServiceInterface
	SiteService        siteService.ServiceInterface
	AuthService        authService.ServiceInterface
	DashboardService   dashboardService.ServiceInterface
	MediaService       mediaService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	TeamHandler        *teamHandler.TeamHandler
	AchievementHandler *achievementHandler.AchievementHandler
	BlogHandler        *blogHandler.BlogHandler
	ApplicationHandler *appHandler.ApplicationHandler
	ContactHandler     *contactHandler.ContactHandler
	ThemeHandler       *themeHandler.ThemeHandler
	SiteHandler        *siteHandler.SiteHandler
	AuthHandler        *authHandler.AuthHandler
	DashboardHandler   *dashboardHandler.DashboardHandler
	MediaHandler       *mediaHandler.MediaHandler
	HealthHandler      *systemHandler.HealthHandler
}

// NewContainer load config và build toàn bộ dependency graph
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	return Build(context.Background(), cfg)
}

// Build dùng chung cho API và qbrainctl
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	for _, w := range cfg.Warnings() {
		logger.Warn(w, nil)
	}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	if err := c.initRepositories(); err != nil {
		c.Cleanup()
		return nil, err
	}
	if err := c.initServices(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initHandlers()

	log.Println("✅ DI Container initialized successfully")
	return c, nil
}

// ========================================
// STEP 1: INFRASTRUCTURE
// ========================================
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.Config

	// Document store
	log.Printf("🗄️  Connecting document store (%s)...", cfg.Store.Driver)
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := docstore.Open(connectCtx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	c.Store = store
	log.Println("✅ Document store connected")

	// Redis (optional): cache + queue
	redisClient := infraCache.NewRedisClient(cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis unavailable, running without cache: %v", err)
		_ = redisClient.Close()
		c.Cache = infraCache.NoopCache{}
	} else {
		c.Redis = redisClient
		c.Cache = redisClient.Cache("qbrain:")
		log.Println("✅ Redis connected")
	}

	// Blob storage
	switch cfg.Blob.Driver {
	case "minio":
		minio, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init minio: %w", err)
		}
		c.Blob = minio
	default:
		local, err := storage.NewLocalStorage(cfg.Blob.LocalDir, cfg.Blob.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to init local storage: %w", err)
		}
		c.Local = local
		c.Blob = local
	}
	c.Images = storage.NewImageUploader(c.Blob, storage.NewImageProcessor())
	log.Printf("✅ Blob storage ready (%s)", cfg.Blob.Driver)

	// Email
	composer, err := email.NewComposer(cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}
	c.Composer = composer
	c.Sender = email.NewSMTPSender(cfg.SMTP, cfg.Mail.From)
	if cfg.Mail.Delivery == "queue" {
		if c.Redis == nil {
			log.Println("⚠️  MAIL_DELIVERY=queue but Redis is down, sending directly")
		} else {
			c.Queue = queue.NewClient(c.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
			c.Sender = email.NewQueueSender(c.Queue)
		}
	}

	c.Hub = realtime.NewHub(cfg.App.AllowedOrigins)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	return nil
}

// ========================================
// STEP 2: REPOSITORIES
// ========================================
func (c *Container) initRepositories() error {
	c.TeamRepo = teamRepo.NewTeamRepository(c.Store)
	c.HackathonRepo = achievementRepo.NewHackathonRepository(c.Store)
	c.BlogRepo = blogRepo.NewBlogRepository(c.Store)
	c.ApplicationRepo = appRepo.NewApplicationRepository(c.Store)
	c.ContactRepo = contactRepo.NewContactRepository(c.Store)
	c.ThemeRepo = themeRepo.NewThemeRepository(c.Store)
	return nil
}

// ========================================
// STEP 3: SERVICES
// ========================================
func (c *Container) initServices() error {
	cfg := c.Config
	ttl := cfg.App.CacheTTL

	c.TeamService = teamService.NewTeamService(c.TeamRepo, c.Images, c.Cache, ttl)
	c.AchievementService = achievementService.NewHackathonService(c.HackathonRepo, c.Images, c.Cache, ttl)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.Images, c.Cache, ttl, blogService.SiteInfo{
		Name:        "Qbrain",
		URL:         cfg.App.PublicBaseURL,
		Description: "Where Innovation Meets Excellence",
	})
	c.ApplicationService = appService.NewApplicationService(c.ApplicationRepo, c.Blob, c.Composer, c.Sender)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Composer, c.Sender)
	c.ThemeService = themeService.NewThemeService(c.ThemeRepo, c.Hub, c.Cache, ttl)
	c.AuthService = authService.NewAuthService(cfg.Admin, c.JWTManager)
	c.MediaService = mediaService.NewMediaService(c.Blob)

	content, err := siteService.LoadContent(cfg.Site.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load site content: %w", err)
	}
	c.SiteService = siteService.NewSiteService(content, c.TeamRepo.Count, c.HackathonRepo.Count, c.Cache, ttl)

	c.DashboardService = dashboardService.NewDashboardService(dashboardService.Counters{
		TeamMembers:  c.TeamRepo.Count,
		Achievements: c.HackathonRepo.Count,
		Applications: c.ApplicationRepo.Count,
		Messages:     c.ContactRepo.Count,
		BlogPosts:    c.BlogRepo.Count,
	}, dashboardService.Statuses{
		PendingApplication: appModel.StatusPending,
		UnreadMessage:      contactModel.StatusUnread,
		PublishedPost:      blogModel.StatusPublished,
	})
	return nil
}

// ========================================
// STEP 4: HANDLERS
// ========================================
func (c *Container) initHandlers() {
	c.TeamHandler = teamHandler.NewTeamHandler(c.TeamService)
	c.AchievementHandler = achievementHandler.NewAchievementHandler(c.AchievementService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ApplicationHandler = appHandler.NewApplicationHandler(c.ApplicationService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.ThemeHandler = themeHandler.NewThemeHandler(c.ThemeService, c.Hub)
	c.SiteHandler = siteHandler.NewSiteHandler(c.SiteService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.HealthHandler = systemHandler.NewHealthHandler(c.Store, c.Cache, c.Config.App.Version)
}

// Cleanup đóng các connection, gọi khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Error closing queue client: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Error closing Redis: %v", err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			log.Printf("⚠️  Error closing document store: %v", err)
		}
	}

	log.Println("✅ Cleanup completed")
}
