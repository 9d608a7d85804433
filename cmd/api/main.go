package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nmwangik/dukapay/internal/config"
	"github.com/nmwangik/dukapay/internal/customer"
	customerStore "github.com/nmwangik/dukapay/internal/customer/store"
	"github.com/nmwangik/dukapay/internal/database"
	"github.com/nmwangik/dukapay/internal/event"
	dukaHttp "github.com/nmwangik/dukapay/internal/http"
	customerHandler "github.com/nmwangik/dukapay/internal/http/customer"
	orderHandler "github.com/nmwangik/dukapay/internal/http/order"
	productHandler "github.com/nmwangik/dukapay/internal/http/product"
	smsHandler "github.com/nmwangik/dukapay/internal/http/sms"
	"github.com/nmwangik/dukapay/internal/migrations"
	"github.com/nmwangik/dukapay/internal/mpesa"
	"github.com/nmwangik/dukapay/internal/order"
	orderStore "github.com/nmwangik/dukapay/internal/order/store"
	"github.com/nmwangik/dukapay/internal/product"
	productStore "github.com/nmwangik/dukapay/internal/product/store"
	"github.com/nmwangik/dukapay/internal/transaction"
	txStore "github.com/nmwangik/dukapay/internal/transaction/store"
)

func main() {
	// Missing .env is fine; configuration falls back to the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	bus := event.NewBus()
	bus.Subscribe(event.AuditLogger())

	var (
		customerService = customer.NewService(customerStore.New(db))
		productService  = product.NewService(productStore.New(db))
		orderService    = order.NewService(orderStore.New(db), customerService, productService, bus)
		smsService      = transaction.NewService(txStore.New(db), orderService, customerService, mpesa.NewParser())
	)

	var (
		orderH    = orderHandler.NewHandler(orderService)
		customerH = customerHandler.NewHandler(customerService)
		productH  = productHandler.NewHandler(productService)
		smsH      = smsHandler.NewHandler(smsService)
	)

	router := dukaHttp.New(cfg.Auth.Secret, orderH, customerH, productH, smsH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
