package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/sa9r/storefront/internal/config"
	"github.com/sa9r/storefront/internal/handler"
	"github.com/sa9r/storefront/internal/middleware"
	"github.com/sa9r/storefront/internal/repository"
	"github.com/sa9r/storefront/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Repositories (flat JSON collections under the data dir)
	orderRepo := repository.NewOrderRepository(cfg.Store.DataDir)
	customerRepo := repository.NewCustomerRepository(cfg.Store.DataDir)
	sessionRepo := repository.NewSessionRepository(cfg.Store.DataDir)

	// Services
	orderSvc := service.NewOrderService(orderRepo, customerRepo, log)
	adminSvc := service.NewAdminService(sessionRepo, orderRepo, cfg.Admin.Password, cfg.Admin.PasswordHash, cfg.Admin.SessionTTL, log)

	// Handlers
	orderH := handler.NewOrderHandler(orderSvc)
	adminH := handler.NewAdminHandler(adminSvc, orderSvc)
	productH := handler.NewProductHandler()
	healthH := handler.NewHealthHandler(cfg.Store.DataDir)

	// Router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	api := router.Group("/api")
	{
		api.GET("/ping", healthH.Ping)

		api.GET("/products", productH.List)
		api.GET("/products/:category", productH.ListByCategory)

		api.POST("/orders", orderH.CreateOrder)
		api.GET("/orders", orderH.ListOrders)
		api.GET("/orders/:id", orderH.GetOrder)
		api.GET("/customers", orderH.ListCustomers)

		admin := api.Group("/admin")
		admin.POST("/login", adminH.Login)
		admin.POST("/logout", adminH.Logout)

		guarded := admin.Group("", middleware.AdminAuth(adminSvc))
		guarded.GET("/orders", adminH.ListOrders)
		guarded.GET("/stats", adminH.Stats)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port, "data_dir", cfg.Store.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
