package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olayos/pos-api/internal/application/analytics"
	"github.com/olayos/pos-api/internal/application/auth"
	"github.com/olayos/pos-api/internal/application/cart"
	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/application/checkout"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CatalogFeed *feed.CatalogFeed
	Carts       *cart.Service
	CheckoutUC  *checkout.CheckoutUseCase
	ReceiptUC   *checkout.ReceiptUseCase
	SessionUC   *cashier.SessionUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: lectura para cualquier operador, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id", RequireAdmin(), productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Delete)

	// Punto de venta: carrito y checkout
	posGroup := protected.Group("/pos")
	cartHandler := NewCartHandler(deps.Carts, deps.CatalogFeed)
	posGroup.Get("/cart", cartHandler.Get)
	posGroup.Delete("/cart", cartHandler.Clear)
	posGroup.Post("/cart/items", cartHandler.AddItem)
	posGroup.Put("/cart/items/:productId", cartHandler.SetQuantity)
	posGroup.Delete("/cart/items/:productId", cartHandler.RemoveItem)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.ReceiptUC)
	posGroup.Post("/checkout", checkoutHandler.Checkout)
	posGroup.Post("/checkout/complete", checkoutHandler.Complete)
	posGroup.Get("/sales/:id/receipt", checkoutHandler.Receipt)

	// Caja
	cashGroup := protected.Group("/cash")
	cashierHandler := NewCashierHandler(deps.SessionUC)
	cashGroup.Get("/", cashierHandler.Status)
	cashGroup.Post("/open", cashierHandler.Open)
	cashGroup.Post("/close", cashierHandler.Close)

	// Dashboard e historial
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	protected.Get("/sales", dashboardHandler.Sales)
}
