package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/priyansh911911/ashokacrm-sub000/internal/auth"
	"github.com/priyansh911911/ashokacrm-sub000/internal/booking"
	"github.com/priyansh911911/ashokacrm-sub000/internal/cash"
	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
	"github.com/priyansh911911/ashokacrm-sub000/internal/dashboard"
	"github.com/priyansh911911/ashokacrm-sub000/internal/invoice"
	"github.com/priyansh911911/ashokacrm-sub000/internal/menu"
	"github.com/priyansh911911/ashokacrm-sub000/internal/middleware"
	"github.com/priyansh911911/ashokacrm-sub000/internal/reservation"
	"github.com/priyansh911911/ashokacrm-sub000/internal/room"
)

// Deps carries the handlers the router wires up.
type Deps struct {
	Auth        *auth.Handler
	Booking     *booking.Handler
	Menu        *menu.Handler
	Cash        *cash.Handler
	Reservation *reservation.Handler
	Room        *room.Handler
	Dashboard   *dashboard.Handler
	Invoice     *invoice.Handler
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", middleware.LoginRateLimiter(), deps.Auth.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		menuItems := api.Group("/menu-items")
		{
			menuItems.GET("", deps.Menu.ListItems)
			menuItems.GET("/foodtype/:type", deps.Menu.ItemsByFoodType)
			menuItems.POST("", middleware.RequireRole(core.RoleAdmin), deps.Menu.CreateItem)
		}

		categories := api.Group("/banquet-categories")
		{
			categories.GET("/all", deps.Menu.ListCategories)
			categories.POST("", middleware.RequireRole(core.RoleAdmin), deps.Menu.CreateCategory)
		}

		planLimits := api.Group("/plan-limits")
		{
			planLimits.GET("/get", deps.Menu.PlanLimits)
			planLimits.GET("/formatted", deps.Menu.FormattedPlanLimits)
			planLimits.POST("/check-selection", deps.Menu.CheckSelection)
		}

		api.POST("/banquet-bookings/create", deps.Booking.Create)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", deps.Booking.List)
			bookings.GET("/:id", deps.Booking.Get)
			bookings.PUT("/:id", deps.Booking.Update)
		}

		cashGroup := api.Group("/cash-transactions")
		{
			cashGroup.GET("", deps.Cash.List)
			cashGroup.GET("/cash-at-reception", deps.Cash.CashAtReception)
			cashGroup.POST("/add-transaction", deps.Cash.AddTransaction)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", deps.Reservation.List)
			reservations.POST("/create", deps.Reservation.Create)
			reservations.PUT("/:id/cancel", deps.Reservation.Cancel)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", deps.Room.List)
			rooms.POST("", middleware.RequireRole(core.RoleAdmin), deps.Room.Create)
			rooms.PUT("/:id/status", deps.Room.UpdateStatus)
		}

		api.GET("/dashboard/summary", deps.Dashboard.Summary)
		api.GET("/checkout/:id/invoice", deps.Invoice.Render)
	}

	return r
}
