package routes

import (
	"github.com/gofiber/fiber/v2"

	"facturador-backend/controllers"
	"facturador-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Current build
	protected.Post("/items", controllers.AddItem)
	protected.Get("/items", controllers.GetItems)
	protected.Delete("/items/:id", controllers.RemoveItem)
	protected.Get("/totals", controllers.GetTotals)
	protected.Get("/currencies", controllers.GetCurrencies)

	// Finalized invoices (bounded history, most-recent-first)
	protected.Post("/invoices", controllers.FinalizeInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoices/:index", controllers.GetInvoice)
	protected.Delete("/invoices/:index", controllers.DeleteInvoice)
	protected.Post("/invoices/:index/regenerate", controllers.RegenerateInvoice)
	protected.Get("/invoices/:index/pdf", controllers.DownloadInvoicePDF)
}
