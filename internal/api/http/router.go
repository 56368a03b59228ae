package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tailoring-webclient/internal/api/http/handlers"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
	"github.com/spec-kit/tailoring-webclient/internal/guard"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Dashboard     *handlers.DashboardHandler
	Booking       *handlers.BookingHandler
	Appointments  *handlers.AppointmentsHandler
	Notifications *handlers.NotificationsHandler
	Measurements  *handlers.MeasurementsHandler
	Catalog       *handlers.CatalogHandler
	Guard         *guard.Shell
}

// RegisterRoutes wires HTTP routes. Role restrictions mirror what the
// platform enforces server-side; the guard only decides what to render.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/tailor/register", cfg.Auth.RegisterTailor)

	anyRole := []domain.Role{domain.RoleCustomer, domain.RoleTailor, domain.RoleAdmin, domain.RoleStaff}

	app.Get("/me", cfg.Guard.Protect("", anyRole...), cfg.Auth.Me)
	app.Get("/dashboard", cfg.Guard.Protect("", anyRole...), cfg.Dashboard.Customer)
	app.Get("/tailor", cfg.Guard.Protect("", domain.RoleTailor, domain.RoleAdmin), cfg.Dashboard.Tailor)
	app.Get("/admin", cfg.Guard.Protect("", domain.RoleAdmin), cfg.Dashboard.Admin)

	bookingGroup := app.Group("/booking", cfg.Guard.Protect("", domain.RoleCustomer))
	bookingGroup.Get("", cfg.Booking.State)
	bookingGroup.Get("/slots", cfg.Booking.Slots)
	bookingGroup.Post("/date", cfg.Booking.SetDate)
	bookingGroup.Post("/tailor", cfg.Booking.SetTailor)
	bookingGroup.Post("/slot", cfg.Booking.SelectSlot)
	bookingGroup.Post("/back", cfg.Booking.Back)
	bookingGroup.Post("/reload", cfg.Booking.Reload)
	bookingGroup.Post("/submit", cfg.Booking.Submit)

	appts := app.Group("/appointments", cfg.Guard.Protect("", anyRole...))
	appts.Get("", cfg.Appointments.List)
	appts.Post("/:id/cancel", cfg.Appointments.Cancel)
	appts.Post("/:id/reschedule", cfg.Appointments.Reschedule)

	notifications := app.Group("/notifications", cfg.Guard.Protect("", anyRole...))
	notifications.Get("", cfg.Notifications.List)
	notifications.Get("/unread-count", cfg.Notifications.UnreadCount)
	notifications.Get("/stats", cfg.Notifications.Stats)
	notifications.Post("/mark-all-read", cfg.Notifications.MarkAllRead)
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)

	measurements := app.Group("/measurements", cfg.Guard.Protect("", domain.RoleCustomer, domain.RoleTailor, domain.RoleAdmin))
	measurements.Post("", cfg.Measurements.Create)
	measurements.Get("", cfg.Measurements.List)
	measurements.Get("/:id", cfg.Measurements.Get)
	measurements.Put("/:id", cfg.Measurements.Update)
	measurements.Post("/:id/versions", cfg.Measurements.AddVersion)
	measurements.Get("/:id/versions", cfg.Measurements.ListVersions)
	measurements.Delete("/:id", cfg.Measurements.Delete)

	fabrics := app.Group("/fabrics", cfg.Guard.Protect("", anyRole...))
	fabrics.Get("", cfg.Catalog.Fabrics)

	orders := app.Group("/orders", cfg.Guard.Protect("", anyRole...))
	orders.Get("", cfg.Catalog.Orders)
	orders.Get("/:id", cfg.Catalog.Order)
	orders.Post("", cfg.Guard.Protect("", domain.RoleTailor, domain.RoleAdmin), cfg.Catalog.CreateOrder)
}
