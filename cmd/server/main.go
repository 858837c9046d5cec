package main

import (
	"math/rand"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/touseef7878/PRODIGY-FS-03/internal/catalog"
	"github.com/touseef7878/PRODIGY-FS-03/internal/config"
	"github.com/touseef7878/PRODIGY-FS-03/internal/controller"
	"github.com/touseef7878/PRODIGY-FS-03/internal/ledger"
	"github.com/touseef7878/PRODIGY-FS-03/internal/metrics"
	"github.com/touseef7878/PRODIGY-FS-03/internal/middleware"
	"github.com/touseef7878/PRODIGY-FS-03/internal/notify"
	"github.com/touseef7878/PRODIGY-FS-03/internal/payment"
	"github.com/touseef7878/PRODIGY-FS-03/internal/session"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	cfg := config.Load()

	// Stores en memoria: todo el backend es simulado localmente
	cat := catalog.NewStore()
	cat.Seed()
	led := ledger.New()
	feed := notify.NewFeed(cfg.NotifyTTL)

	// Simulador de pago y sesiones
	sim := payment.NewSimulator(cfg.PaymentSuccessRate, cfg.GatewayFailureRate, cfg.PaymentDelay, feed)
	sessions := session.NewManager(sim, led)

	// Notificaciones simuladas de fondo (independientes del checkout)
	gen := notify.NewGenerator(feed, cfg.NotifyMinInterval, cfg.NotifyMaxInterval, rand.Float64)
	gen.Start()
	defer gen.Close()

	// Handlers
	store := controller.NewStoreController(cat, led, feed)
	shop := controller.NewCheckoutController(cat, sessions)

	// Router
	r := gin.Default()
	r.Use(metrics.PrometheusMiddleware())

	// Rutas públicas
	r.GET("/api/health", store.Health)
	r.GET("/api/products", store.GetProducts)
	r.GET("/api/products/:id", store.GetProduct)
	r.GET("/api/categories", store.GetCategories)
	r.GET("/api/orders/:id", store.GetOrder)
	r.GET("/api/track/:trackingId", store.TrackOrder)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rutas con sesión (carrito + checkout)
	shopRoutes := r.Group("/api")
	shopRoutes.Use(middleware.WithSession(sessions))

	shopRoutes.GET("/cart", shop.GetCart)
	shopRoutes.POST("/cart/items", shop.AddItem)
	shopRoutes.PATCH("/cart/items/:productId", shop.SetQuantity)
	shopRoutes.DELETE("/cart/items/:productId", shop.RemoveItem)
	shopRoutes.DELETE("/cart", shop.ClearCart)

	shopRoutes.GET("/checkout", shop.GetCheckout)
	shopRoutes.POST("/checkout/customer", shop.SubmitCustomer)
	shopRoutes.POST("/checkout/shipping", shop.SubmitShipping)
	shopRoutes.POST("/checkout/payment", shop.SubmitPayment)
	shopRoutes.POST("/checkout/confirm", shop.ConfirmPayment)
	shopRoutes.POST("/checkout/previous", shop.Previous)
	shopRoutes.POST("/checkout/verify", shop.Verify)
	shopRoutes.DELETE("/checkout", shop.Abandon)

	// Rutas admin
	admin := r.Group("/api")
	admin.Use(middleware.AdminOnly(cfg.AdminToken))

	admin.POST("/products", store.CreateProduct)
	admin.PUT("/products/:id", store.UpdateProduct)
	admin.DELETE("/products/:id", store.DeleteProduct)
	admin.GET("/orders", store.GetOrders)
	admin.POST("/admin/tracking/:trackingId/advance", store.AdvanceTracking)
	admin.GET("/admin/notifications", store.GetNotifications)

	// Ejecutar servidor
	log.Infof("🛒 LocalStore API ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
