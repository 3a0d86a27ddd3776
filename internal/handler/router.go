package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hall-allocation/internal/domain/user"
	"hall-allocation/internal/handler/api"
	"hall-allocation/internal/handler/middleware"
	"hall-allocation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Hall        *api.HallHandler
	HallRequest *api.HallRequestHandler
	Allocation  *api.AllocationHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	hall *api.HallHandler,
	hallRequest *api.HallRequestHandler,
	allocation *api.AllocationHandler,
) Handlers {
	return Handlers{Auth: auth, Hall: hall, HallRequest: hallRequest, Allocation: allocation}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		halls := apiGroup.Group("/halls")
		halls.Use(authMiddleware.RequireAuth())
		{
			addRoutes(halls, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Hall.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hall.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/halls", Handler: h.Hall.Create},
				{Method: http.MethodPatch, Path: "/halls/:id", Handler: h.Hall.Update},
				{Method: http.MethodDelete, Path: "/halls/:id", Handler: h.Hall.Delete},
				{Method: http.MethodPost, Path: "/halls/:id/deallocate", Handler: h.Allocation.Deallocate},
				{Method: http.MethodGet, Path: "/requests", Handler: h.HallRequest.ListPending},
				{Method: http.MethodPost, Path: "/requests/:id/approve", Handler: h.Allocation.Approve},
			})
		}

		lecturer := apiGroup.Group("/lecturer")
		lecturer.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleLecturer))
		{
			addRoutes(lecturer, []route{
				{Method: http.MethodGet, Path: "/halls", Handler: h.Hall.ListMine},
				{Method: http.MethodPost, Path: "/halls/:id/requests", Handler: h.HallRequest.Create},
				{Method: http.MethodGet, Path: "/requests", Handler: h.HallRequest.ListMine},
				{Method: http.MethodDelete, Path: "/requests/:id", Handler: h.HallRequest.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
