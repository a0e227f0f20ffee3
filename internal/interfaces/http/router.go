package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/nutallis/nutallis-api/internal/application/analytics"
	"github.com/nutallis/nutallis-api/internal/application/auth"
	"github.com/nutallis/nutallis-api/internal/application/cart"
	"github.com/nutallis/nutallis-api/internal/application/catalog"
	"github.com/nutallis/nutallis-api/internal/application/checkout"
	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *catalog.ProductUseCase
	CategoryUC  *catalog.CategoryUseCase
	CartUC      *cart.UseCase
	CheckoutUC  *checkout.UseCase
	OrderUC     *checkout.OrderUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReorderUC   *appanalytics.ReorderUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vitrine (pública): produtos ativos, categorias e cotação por peso
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/products", productHandler.ListActive)
	catalogGroup.Get("/products/:id/quote", productHandler.Quote)
	catalogGroup.Get("/products/:slug", productHandler.GetBySlug)
	catalogGroup.Get("/categories", categoryHandler.ListActive)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carrinho
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup := protected.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)

	// Checkout e pedidos do usuário
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.OrderUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Post("/checkout", checkoutHandler.Checkout)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", checkoutHandler.Receipt)

	// Administração (papel admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))

	products := admin.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := admin.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", orderHandler.List)
	adminOrders.Put("/:id/status", orderHandler.UpdateStatus)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReorderUC)
	admin.Get("/dashboard", dashboardHandler.GetSummary)
	admin.Get("/reorder-signals", dashboardHandler.ReorderSignals)
}
