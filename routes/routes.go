package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/policy"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything SetupRoutes wires up
type Handlers struct {
	Auth     *handlers.AuthHandler
	Tables   *handlers.TableHandler
	Menu     *handlers.MenuHandler
	Orders   *handlers.OrderHandler
	Payments *handlers.PaymentHandler
	Staff    *handlers.StaffHandler
	Reports  *handlers.ReportHandler
}

func SetupRoutes(r *gin.Engine, tokens *middleware.TokenManager, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Auth.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.Orders.StateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(tokens))
	{
		// admin-gated inside the service
		auth.POST("/auth/register", h.Auth.Register)

		// every staff member may browse the menu
		auth.GET("/menu", h.Menu.List)
		auth.GET("/menu/:id", h.Menu.Get)

		// staff listing gates vary per filter, so the service decides
		auth.GET("/staff", h.Staff.List)
		auth.GET("/staff/:id", h.Staff.Get)
		auth.POST("/staff", h.Staff.Create)
		auth.PUT("/staff/:id", h.Staff.Update)
		auth.DELETE("/staff/:id", h.Staff.Deactivate)
	}

	// ── Tables ─────────────────────────────────────────────────────
	tables := r.Group("/api/tables")
	tables.Use(middleware.AuthRequired(tokens), middleware.PermissionRequired(policy.PermTables))
	{
		tables.POST("", h.Tables.Create)
		tables.GET("", h.Tables.List)
		tables.GET("/:id", h.Tables.Get)
		tables.PUT("/:id/status", h.Tables.UpdateStatus)
		tables.PUT("/:id/waiter", h.Tables.AssignWaiter)
	}

	// ── Menu management ────────────────────────────────────────────
	menu := r.Group("/api/menu")
	menu.Use(middleware.AuthRequired(tokens), middleware.PermissionRequired(policy.PermMenu))
	{
		menu.POST("", h.Menu.Create)
		menu.PUT("/:id", h.Menu.Update)
		menu.DELETE("/:id", h.Menu.Delete)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired(tokens), middleware.PermissionRequired(policy.PermOrders))
	{
		orders.POST("", h.Orders.Create)
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.PUT("/:id/status", h.Orders.UpdateStatus)
		orders.POST("/:id/items", h.Orders.AddItem)
		orders.PUT("/:id/items/:itemId", h.Orders.UpdateItem)
	}

	// ── Payments ───────────────────────────────────────────────────
	payments := r.Group("/api/payments")
	payments.Use(middleware.AuthRequired(tokens), middleware.PermissionRequired(policy.PermPayments))
	{
		payments.POST("", h.Payments.Settle)
		payments.GET("/order/:orderId", h.Payments.ForOrder)
	}

	// ── Reports ────────────────────────────────────────────────────
	reports := r.Group("/api/reports")
	reports.Use(middleware.AuthRequired(tokens), middleware.PermissionRequired(policy.PermReports))
	{
		reports.GET("/items", h.Reports.ItemFrequency)
		reports.GET("/revenue", h.Reports.Revenue)
		reports.GET("/orders", h.Reports.OrderStatistics)
	}
}
