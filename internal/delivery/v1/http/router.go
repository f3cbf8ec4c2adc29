package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
	"github.com/viniciuslidington/marketplace-database/pkg/metrics"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC, catalogUC usecase.CatalogUC, reportUC usecase.ReportUC, db Pinger, srvMetrics *metrics.ServerMetrics) {
	r.router.Use(chimw.Recoverer)
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.router.Use(srvMetrics.Middleware)

	healthHandler := NewHealthHandler(db)
	r.router.Get("/", healthHandler.Root)
	r.router.Get("/health", healthHandler.Health)
	r.router.Method("GET", "/metrics", metrics.Handler())

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(catalogUC, reportUC))
		registerCategoryRoutes(v1, NewCategoryHandler(catalogUC))
		registerOrderRoutes(v1, NewOrderHandler(orderUC), NewBuyerHandler(catalogUC))
		registerReportRoutes(v1, NewReportHandler(reportUC))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.List)
		pr.Get("/top-selling", prHandler.TopSelling)
		pr.Get("/{id}", prHandler.Get)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Get("/categories", catHandler.List)
}

func registerOrderRoutes(router chi.Router, ordHandler *OrderHandler, buyHandler *BuyerHandler) {
	router.Post("/orders", ordHandler.Create)

	router.Route("/buyers", func(b chi.Router) {
		b.Get("/email/{email}", buyHandler.GetByEmail)
		b.Get("/{id}/addresses", buyHandler.ListAddresses)
		b.Get("/{id}/orders", ordHandler.ListByBuyer)
	})
}

func registerReportRoutes(router chi.Router, repHandler *ReportHandler) {
	router.Route("/reports", func(rep chi.Router) {
		rep.Get("/dashboard", repHandler.Dashboard)
		rep.Get("/vip-customers", repHandler.VIPCustomers)
		rep.Get("/critical-stock", repHandler.CriticalStock)
	})
}
