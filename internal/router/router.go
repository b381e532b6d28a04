package router

import (
	"net/http"
	"time"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/handler"
	"github.com/edusync/edusync-backend/internal/middleware"
	"github.com/edusync/edusync-backend/internal/response"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Directory    *handler.DirectoryHandler
	Leave        *handler.LeaveHandler
	Notification *handler.NotificationHandler
	Announcement *handler.AnnouncementHandler
	Event        *handler.EventHandler
	ExamSchedule *handler.ExamScheduleHandler
	Timetable    *handler.TimetableHandler
	Media        *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
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
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply compression and HTTP metrics globally.
	router.Use(middleware.Compress())
	router.Use(middleware.Metrics())

	// Serve uploaded schedule and event PDFs statically with aggressive
	// caching (1 year); filenames are UUIDs so content never changes.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check and Prometheus scrape endpoint.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Rate Limited) ──────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/signup", handlers.Auth.Signup)
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
		auth.PUT("/me", middleware.RequireAuth(authService), handlers.Auth.UpdateMe)
	}

	// ─── 2. Shared Group (Any Authenticated User) ──────────────────────
	sharedAPI := router.Group("/api/v1")
	sharedAPI.Use(middleware.RequireAuth(authService))
	{
		sharedAPI.GET("/announcements", handlers.Announcement.List)
		sharedAPI.GET("/events", handlers.Event.List)
		sharedAPI.GET("/exam-schedules", handlers.ExamSchedule.List)

		sharedAPI.GET("/notifications", handlers.Notification.List)
		sharedAPI.POST("/notifications/:id/read", handlers.Notification.MarkRead)
		sharedAPI.POST("/notifications/read-all", handlers.Notification.MarkAllRead)
	}

	// ─── 3. Faculty Group (JWT + Approved Faculty) ─────────────────────
	facultyAPI := router.Group("/api/v1/faculty")
	facultyAPI.Use(
		middleware.RequireAuth(authService),
		middleware.RequireFaculty(),
	)
	{
		facultyAPI.POST("/leaves", handlers.Leave.Submit)
		facultyAPI.GET("/leaves", handlers.Leave.ListMine)

		facultyAPI.PUT("/timetable", handlers.Timetable.Put)
		facultyAPI.GET("/timetable", handlers.Timetable.List)
		facultyAPI.DELETE("/timetable/:day/:slot", handlers.Timetable.Clear)
	}

	// ─── 4. Admin Group (JWT + Admin Role) ─────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAuth(authService),
		middleware.RequireAdmin(),
	)
	{
		// Account provisioning
		adminAPI.POST("/users/admins", handlers.Directory.CreateAdmin)
		adminAPI.POST("/users/faculty", handlers.Directory.CreateFaculty)
		adminAPI.POST("/users/faculty/:uid/approve", handlers.Directory.ApproveFaculty)
		adminAPI.GET("/users/faculty", handlers.Directory.ListFaculty)

		// Leave review (scoped to the admin's own department)
		adminAPI.GET("/leaves", handlers.Leave.ListByDepartment)
		adminAPI.POST("/leaves/:id/decide", handlers.Leave.Decide)

		// Notification fanout
		adminAPI.POST("/notifications/broadcast", handlers.Notification.Broadcast)

		// Announcements
		adminAPI.POST("/announcements", handlers.Announcement.Create)
		adminAPI.DELETE("/announcements/:id", handlers.Announcement.Delete)

		// Events
		adminAPI.POST("/events", handlers.Event.Create)
		adminAPI.DELETE("/events/:id", handlers.Event.Delete)

		// Exam schedules
		adminAPI.POST("/exam-schedules", handlers.ExamSchedule.Create)
		adminAPI.DELETE("/exam-schedules/:id", handlers.ExamSchedule.Delete)

		// Media upload
		adminAPI.POST("/media/upload", handlers.Media.UploadMedia)
	}

	// ─── 5. WebSocket Group (Token in Query) ───────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/notifications/stream", handlers.Notification.Stream)
	}

	return router
}
