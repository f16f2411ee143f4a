package router

import (
	"time"

	"internhub/config"
	"internhub/internal/handler"
	"internhub/internal/middleware"
	"internhub/internal/repository"
	"internhub/internal/service"
	"internhub/internal/ws"
	"internhub/pkg/cloudinary"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, hub *ws.Hub) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	rateMw := middleware.RateLimit(middleware.NewRateLimiter(&cfg.Server.RateLimit))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	notifSvc := service.NewNotificationService(notificationRepo, hub)
	internshipSvc := service.NewInternshipService(internshipRepo)
	applicationSvc := service.NewApplicationService(applicationRepo, internshipRepo, resumeRepo, notifSvc)
	resumeSvc := service.NewResumeService(resumeRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	userHandler := handler.NewUserHandler(userRepo, notifSvc)
	internshipHandler := handler.NewInternshipHandler(internshipSvc)
	applicationHandler := handler.NewApplicationHandler(applicationSvc)
	resumeHandler := handler.NewResumeHandler(resumeSvc)
	favouriteHandler := handler.NewFavouriteHandler(favouriteRepo, internshipSvc)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, notifSvc)
	uploadHandler := handler.NewUploadHandler(cloud, userRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	studentMw := middleware.StudentRequired()
	orgMw := middleware.OrganisationRequired()
	adminMw := middleware.AdminRequired()

	api := r.Group("/api/v1")
	{
		// anonymous endpoints are limited by client IP
		authGroup := api.Group("/auth")
		authGroup.Use(rateMw)
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		users := api.Group("/users")
		users.Use(authMw, rateMw)
		{
			users.GET("", adminMw, userHandler.List)
			users.GET("/profile", userHandler.Profile)
			users.GET("/organisations", adminMw, userHandler.Organisations)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
			users.PATCH("/:id/status", adminMw, userHandler.UpdateStatus)
			users.DELETE("/:id", adminMw, userHandler.Remove)
		}

		// the catalogue reads are public; writes and the owner listing
		// stay behind auth
		internships := api.Group("/internships")
		{
			internships.GET("", rateMw, internshipHandler.List)
			internships.GET("/own", authMw, rateMw, orgMw, internshipHandler.Own)
			internships.GET("/:id", rateMw, internshipHandler.Get)
			internships.POST("", authMw, rateMw, orgMw, internshipHandler.Create)
			internships.PATCH("/:id", authMw, rateMw, orgMw, internshipHandler.Update)
			internships.DELETE("/:id", authMw, rateMw, orgMw, internshipHandler.Remove)
		}

		applications := api.Group("/applications")
		applications.Use(authMw, rateMw)
		{
			applications.POST("", studentMw, applicationHandler.Create)
			applications.GET("", applicationHandler.List)
			applications.GET("/student/own", studentMw, applicationHandler.GetOwn)
			applications.GET("/internship/:internshipId", orgMw, applicationHandler.GetForInternship)
			applications.GET("/:id", applicationHandler.Get)
			applications.GET("/:id/resume", applicationHandler.GetResume)
			applications.PATCH("/:id", orgMw, applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.Remove)
		}

		resumes := api.Group("/resumes")
		resumes.Use(authMw, rateMw, studentMw)
		{
			resumes.POST("", resumeHandler.Create)
			resumes.GET("/me", resumeHandler.GetOwn)
			resumes.PATCH("/me", resumeHandler.Update)
		}

		favourites := api.Group("/favourites")
		favourites.Use(authMw, rateMw, studentMw)
		{
			favourites.POST("", favouriteHandler.Add)
			favourites.GET("", favouriteHandler.List)
			favourites.GET("/:internshipId/check", favouriteHandler.Check)
			favourites.DELETE("/:internshipId", favouriteHandler.Remove)
		}

		notifications := api.Group("/notifications")
		notifications.Use(authMw, rateMw)
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/:id", notificationHandler.Get)
			notifications.POST("", adminMw, notificationHandler.Create)
			notifications.PATCH("/:id", adminMw, notificationHandler.Update)
			notifications.PATCH("/:id/seen", notificationHandler.MarkSeen)
			notifications.DELETE("/:id", notificationHandler.Remove)
		}

		api.POST("/uploads/avatar", authMw, rateMw, uploadHandler.UploadAvatar)
	}

	r.GET("/ws/notifications", ws.UpgradeNotificationsWS(&cfg.JWT, hub, notificationRepo))

	return r
}
