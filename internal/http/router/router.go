package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/renovateiq/renovateiq-backend/internal/config"
	"github.com/renovateiq/renovateiq-backend/internal/http/handlers"
	"github.com/renovateiq/renovateiq-backend/internal/http/middleware"
	"github.com/renovateiq/renovateiq-backend/internal/identity"
)

// Handlers собирает все хэндлеры API.
type Handlers struct {
	Projects    *handlers.ProjectHandler
	Tasks       *handlers.TaskHandler
	Expenses    *handlers.ExpenseHandler
	Shopping    *handlers.ShoppingHandler
	Contractors *handlers.ContractorHandler
	Inventory   *handlers.InventoryHandler
	Permits     *handlers.PermitHandler
	Maintenance *handlers.MaintenanceHandler
	Templates   *handlers.TemplateHandler
	Photos      *handlers.PhotoHandler
}

func SetupRouter(
	cfg *config.Config,
	verifier identity.TokenVerifier,
	limitStore limiter.Store,
	h Handlers,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware([]string{cfg.FrontendURL}))

	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limitStore, cfg.RateLimitLimit, cfg.RateLimitPeriod))

	// Health публичный, но под общим лимитером.
	api.GET("/health", handlers.HealthCheck)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(verifier))
	{
		protected.GET("/projects", h.Projects.ListProjects)
		protected.GET("/projects/:id", h.Projects.GetProject)
		protected.POST("/projects", h.Projects.CreateProject)
		protected.PATCH("/projects/:id", h.Projects.UpdateProject)
		protected.DELETE("/projects/:id", h.Projects.DeleteProject)

		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		protected.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		protected.GET("/expenses", h.Expenses.ListExpenses)
		protected.GET("/expenses/summary", h.Expenses.ExpenseSummary)
		protected.POST("/expenses", h.Expenses.CreateExpense)
		protected.DELETE("/expenses/:id", h.Expenses.DeleteExpense)

		protected.GET("/shopping", h.Shopping.ListItems)
		protected.POST("/shopping", h.Shopping.CreateItem)
		protected.PATCH("/shopping/:id", h.Shopping.UpdateItem)
		protected.DELETE("/shopping/:id", h.Shopping.DeleteItem)

		protected.GET("/contractors", h.Contractors.ListContractors)
		protected.POST("/contractors", h.Contractors.CreateContractor)
		protected.PATCH("/contractors/:id", h.Contractors.UpdateContractor)
		protected.DELETE("/contractors/:id", h.Contractors.DeleteContractor)

		protected.GET("/inventory", h.Inventory.ListItems)
		protected.POST("/inventory", h.Inventory.CreateItem)
		protected.PATCH("/inventory/:id", h.Inventory.UpdateItem)
		protected.DELETE("/inventory/:id", h.Inventory.DeleteItem)

		protected.GET("/permits", h.Permits.ListPermits)
		protected.POST("/permits", h.Permits.CreatePermit)
		protected.PATCH("/permits/:id", h.Permits.UpdatePermit)
		protected.DELETE("/permits/:id", h.Permits.DeletePermit)

		protected.GET("/maintenance", h.Maintenance.ListRecords)
		protected.POST("/maintenance", h.Maintenance.CreateRecord)
		protected.PATCH("/maintenance/:id", h.Maintenance.UpdateRecord)
		protected.DELETE("/maintenance/:id", h.Maintenance.DeleteRecord)

		protected.GET("/templates", h.Templates.ListTemplates)
		protected.POST("/templates/apply", h.Templates.ApplyTemplate)

		protected.GET("/photos", h.Photos.ListPhotos)
		protected.POST("/photos", h.Photos.UploadPhoto)
		protected.DELETE("/photos/:id", h.Photos.DeletePhoto)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
		})
	})

	return r
}
