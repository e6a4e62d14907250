package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"atelier-desk/internal/handler"
	"atelier-desk/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Form       *handler.FormHandler
	Orders     *handler.OrdersHandler
	Catalog    *handler.CatalogHandler
	Carrier    *handler.CarrierHandler
	Settings   *handler.SettingsHandler
	Inventory  *handler.InventoryHandler
	Production *handler.ProductionHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(apiKey, logger))

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/order-forms", func(r chi.Router) {
			r.Post("/", h.Form.Open)
			r.Get("/{id}", h.Form.State)
			r.Post("/{id}/events", h.Form.Apply)
			r.Post("/{id}/submit", h.Form.Submit)
			r.Delete("/{id}", h.Form.Close)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Orders.List)
			r.Get("/manual-status/next", h.Orders.NextManualStatuses)
			r.Post("/manual-status", h.Orders.SetManualStatus)
			r.Get("/{id}", h.Orders.Get)
		})

		r.Route("/product-variants", func(r chi.Router) {
			r.Get("/", h.Catalog.SearchVariants)
			r.Post("/", h.Inventory.AddVariant)
			r.Put("/", h.Inventory.UpdateVariant)
		})

		r.Get("/categories", h.Inventory.ListCategories)

		r.Route("/colors", func(r chi.Router) {
			r.Get("/", h.Inventory.ListColors)
			r.Post("/", h.Inventory.AddColor)
			r.Put("/", h.Inventory.UpdateColor)
		})

		r.Route("/sizes", func(r chi.Router) {
			r.Get("/", h.Inventory.ListSizes)
			r.Post("/", h.Inventory.AddSize)
		})

		r.Get("/measurement-types", h.Inventory.ListMeasurementTypes)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Inventory.ListProducts)
			r.Post("/", h.Inventory.AddProduct)
			r.Put("/", h.Inventory.UpdateProduct)
		})

		r.Route("/product-photos", func(r chi.Router) {
			r.Get("/", h.Inventory.ListPhotos)
			r.Post("/", h.Inventory.AddPhoto)
			r.Delete("/{id}", h.Inventory.DeletePhoto)
		})

		r.Route("/sewing-queue", func(r chi.Router) {
			r.Get("/", h.Production.SewingQueue)
			r.Post("/reports", h.Production.SubmitSewedReport)
		})

		r.Route("/carrier", func(r chi.Router) {
			r.Get("/cities", h.Carrier.SearchCities)
			r.Get("/warehouses", h.Carrier.SearchWarehouses)
			r.Get("/sender/contacts", h.Carrier.SenderContacts)
			r.Get("/sync/status", h.Carrier.SyncStatus)
			r.Post("/sync/trigger", h.Carrier.TriggerSync)
			r.Get("/sync/history", h.Carrier.SyncHistory)
		})

		r.Route("/user-settings", func(r chi.Router) {
			r.Get("/", h.Settings.Get)
			r.Post("/", h.Settings.Create)
			r.Put("/", h.Settings.Update)
			r.Delete("/{id}", h.Settings.Delete)
		})
	})

	return r
}
