package http

import (
	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	cartUC usecase.CartUC,
	orderUC usecase.OrderUC,
	userUC usecase.UserUC,
	paymentUC usecase.PaymentUC,
	webhookCfg *cfg.WebhookCfg,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	webhookHandler := NewWebhookHandler(paymentUC, webhookCfg, r.logger)
	r.router.Post("/webhooks/payment", webhookHandler.handlePaymentWebhook)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(identityMiddleware(userUC, r.logger))

		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerUserRoutes(v1, NewUserHandler(userUC, r.logger))
		registerAdminRoutes(v1, NewAdminHandler(catalogUC, orderUC, userUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/categories", h.listCategories)
		pr.Get("/search", h.searchProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Use(requireIdentity)
		cr.Get("/", h.getCart)
		cr.Delete("/", h.clearCart)
		cr.Post("/items", h.addItem)
		cr.Put("/items/{id}", h.updateQuantity)
		cr.Delete("/items/{id}", h.removeItem)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Use(requireIdentity)
		or.Post("/", h.checkout)
		or.Get("/", h.listMyOrders)
		or.Get("/{id}", h.getOrder)
	})
}

func registerUserRoutes(router chi.Router, h *UserHandler) {
	router.Route("/users", func(ur chi.Router) {
		ur.Use(requireIdentity)
		ur.Get("/me", h.getMe)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Route("/admin", func(ar chi.Router) {
		ar.Use(requireAdmin)
		ar.Post("/products", h.createProduct)
		ar.Put("/products/{id}", h.updateProduct)
		ar.Delete("/products/{id}", h.archiveProduct)
		ar.Get("/orders", h.listRecentOrders)
		ar.Patch("/orders/{id}/status", h.updateOrderStatus)
		ar.Get("/users", h.listUsers)
		ar.Patch("/users/{id}/admin", h.setUserAdmin)
	})
}
