package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/config"
	"github.com/joseeugenio/portfolio-backend/internal/http/handlers"
	"github.com/joseeugenio/portfolio-backend/internal/http/middleware"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// SetupRouter собирает все маршруты приложения.
// GET списки публичные, любые мутации закрыты RequireAdmin.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	softwareHandler *handlers.SoftwareHandler,
	profileHandler *handlers.ProfileHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	// Старые записи медиатеки могут указывать на локальные файлы.
	r.StaticFS("/assets", http.Dir(cfg.AssetsPath))

	// Страницы логина и админки, если рядом лежит собранный фронтенд.
	// Редирект здесь — только быстрая проверка наличия cookie; настоящая
	// авторизация происходит в API, которое страница дергает за данными.
	if _, err := os.Stat(cfg.PagesPath); err == nil {
		loginPage := filepath.Join(cfg.PagesPath, "login.html")
		adminPage := filepath.Join(cfg.PagesPath, "admin.html")

		r.GET("/login", middleware.RedirectIfAuthenticated(), func(c *gin.Context) {
			c.File(loginPage)
		})

		adminPages := r.Group("/admin")
		adminPages.Use(middleware.RedirectIfAnonymous())
		{
			adminPages.GET("", func(c *gin.Context) { c.File(adminPage) })
			adminPages.GET("/*page", func(c *gin.Context) { c.File(adminPage) })
		}
	}

	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Публичные маршруты чтения
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/software", softwareHandler.List)
	api.GET("/profile", profileHandler.Get)
	api.GET("/media", mediaHandler.List)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.RequireAdmin(tokenManager))
	{
		protected.POST("/projects", projectHandler.Create)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.DELETE("/projects/:id", projectHandler.Delete)

		protected.POST("/software", softwareHandler.Create)
		protected.PUT("/software/:id", softwareHandler.Update)
		protected.DELETE("/software/:id", softwareHandler.Delete)

		protected.POST("/profile", profileHandler.Save)

		protected.POST("/media", mediaHandler.Create)
		protected.DELETE("/media", mediaHandler.Delete)
		protected.POST("/upload", mediaHandler.Upload)
	}

	return r
}
