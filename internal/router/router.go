package router

import (
	"time"

	"github.com/EN-BAAK/Company-management-system-server/internal/config"
	"github.com/EN-BAAK/Company-management-system-server/internal/handler"
	"github.com/EN-BAAK/Company-management-system-server/internal/middleware"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"
	"github.com/EN-BAAK/Company-management-system-server/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	shiftRepo := repository.NewShiftRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, rdb, cfg)
	userSvc := service.NewUserService(userRepo)
	companySvc := service.NewCompanyService(companyRepo)
	shiftSvc := service.NewShiftService(shiftRepo, companyRepo, userRepo)
	adminSvc := service.NewAdminService(userRepo)
	reportSvc := service.NewReportService(shiftRepo, userRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	companiesH := handler.NewCompaniesHandler(companySvc)
	shiftsH := handler.NewShiftsHandler(shiftSvc)
	adminH := handler.NewAdminHandler(adminSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	authenticated := middleware.Authenticated(cfg.JWTSecret, authSvc)
	adminOnly := middleware.AdminOnly(cfg.JWTSecret, authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(
		handler.DatabaseCheck(db),
		handler.SessionStoreCheck(rdb),
	))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authenticated, authH.Logout)
		auth.GET("/verify", authenticated, authH.Verify)
	}

	// Worker management — admin only
	user := r.Group("/user", adminOnly)
	{
		user.GET("", usersH.List)
		user.GET("/identity", usersH.Identity)
		user.POST("", usersH.Create)
		user.PUT("/:userId", usersH.Edit)
		user.DELETE("/:userId", usersH.Delete)
	}

	// Company management — admin only
	company := r.Group("/company", adminOnly)
	{
		company.GET("", companiesH.List)
		company.GET("/identity", companiesH.Identity)
		company.POST("", companiesH.Create)
		company.PUT("/:companyId", companiesH.Edit)
		company.DELETE("/:companyId", companiesH.Delete)
	}

	// Shifts — reading is open to both roles, mutation is admin only
	shift := r.Group("/shift")
	{
		shift.GET("", authenticated, shiftsH.List)
		shift.POST("", adminOnly, shiftsH.Create)
		shift.PUT("/:shiftId", adminOnly, shiftsH.Edit)
		shift.DELETE("/:shiftId", adminOnly, shiftsH.Delete)
	}

	admin := r.Group("/admin", adminOnly)
	{
		admin.PUT("/edit/fullName", adminH.EditFullName)
		admin.PUT("/edit/password", adminH.EditPassword)
		admin.PUT("/edit/phone", adminH.EditPhone)
	}

	r.GET("/report", authenticated, reportsH.Build)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
