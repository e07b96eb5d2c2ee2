package routes

import (
	"net/http"

	"eventforge/activity"
	"eventforge/admin"
	"eventforge/auth"
	"eventforge/events"
	"eventforge/middleware"
	"eventforge/models"
	"eventforge/quotations"
	"eventforge/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddEventsRoutes(router *httprouter.Router) {
	// public browse
	router.GET("/api/events", ratelim.RateLimit(events.GetEvents))
	router.GET("/api/events/:eventid", ratelim.RateLimit(events.GetEvent))

	// client surface
	router.POST("/api/client/events", middleware.Authenticate(middleware.RequireRole(models.RoleClient, events.CreateEvent)))
	router.GET("/api/client/events", middleware.Authenticate(middleware.RequireRole(models.RoleClient, events.GetMyEvents)))
	router.DELETE("/api/client/events/:eventid", middleware.Authenticate(middleware.RequireRole(models.RoleClient, events.DeleteOwnEvent)))
	router.POST("/api/client/events/:eventid/banner", middleware.Authenticate(middleware.RequireRole(models.RoleClient, events.UploadBanner)))

	// vendor surface
	router.GET("/api/vendor/events", middleware.Authenticate(middleware.RequireRole(models.RoleVendor, events.GetApprovedEvents)))

	// admin moderation and pending edits
	router.PUT("/api/admin/events/:eventid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, events.ModerateEvent)))
	router.PATCH("/api/admin/events/:eventid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, events.ProposeEdit)))
	router.POST("/api/admin/events/:eventid/apply", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, events.ApplyPendingEdit)))
	router.POST("/api/admin/events/:eventid/discard", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, events.DiscardPendingEdit)))
	router.DELETE("/api/admin/events/:eventid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, events.DeleteEvent)))
}

func AddQuotationRoutes(router *httprouter.Router) {
	// vendor interest lifecycle
	router.POST("/api/vendor/interest", middleware.Authenticate(middleware.RequireRole(models.RoleVendor, quotations.SendInterest)))
	router.DELETE("/api/vendor/interest/:eventid", middleware.Authenticate(middleware.RequireRole(models.RoleVendor, quotations.RevokeInterest)))
	router.GET("/api/vendor/quotations", middleware.Authenticate(middleware.RequireRole(models.RoleVendor, quotations.GetMyQuotations)))
	router.POST("/api/vendor/assigned/:eventid/action", middleware.Authenticate(middleware.RequireRole(models.RoleVendor, quotations.AdvanceVendorStatus)))
	router.GET("/api/vendor/quotations/:quotationid/receipt", middleware.Authenticate(quotations.PrintReceipt))

	// admin adjudication
	router.GET("/api/admin/quotations", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.GetAllQuotations)))
	router.GET("/api/admin/events/:eventid/quotations", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.GetEventQuotations)))
	router.PUT("/api/admin/quotations/:quotationid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.Adjudicate)))
	router.PUT("/api/admin/quotations/:quotationid/mark-paid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.MarkPaid)))
	router.PUT("/api/admin/quotations/:quotationid/mark-unpaid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.MarkUnpaid)))
	router.POST("/api/admin/quotations/mark-paid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, quotations.BulkSetPaid)))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/users", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.GetUsers)))
	router.PUT("/api/admin/users/:userid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.ModerateUser)))
	router.DELETE("/api/admin/users/:userid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.DeleteUser)))

	router.GET("/api/categories", ratelim.RateLimit(admin.GetCategories))
	router.POST("/api/admin/categories", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.CreateCategory)))
	router.PUT("/api/admin/categories/:categoryid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.UpdateCategory)))
	router.DELETE("/api/admin/categories/:categoryid", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.DeleteCategory)))

	router.GET("/api/admin/settings", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.GetSettings)))
	router.PUT("/api/admin/settings", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, admin.UpdateSettings)))

	router.GET("/api/admin/activity", middleware.Authenticate(middleware.RequireRole(models.RoleAdmin, activity.GetActivityFeed)))
}
