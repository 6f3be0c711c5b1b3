package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	assignmentapp "github.com/muhammadheryan/warehouse/application/assignment"
	catalogapp "github.com/muhammadheryan/warehouse/application/catalog"
	customerapp "github.com/muhammadheryan/warehouse/application/customer"
	orderapp "github.com/muhammadheryan/warehouse/application/order"
	reassignmentapp "github.com/muhammadheryan/warehouse/application/reassignment"
	reportapp "github.com/muhammadheryan/warehouse/application/report"
	storageapp "github.com/muhammadheryan/warehouse/application/storage"
	"github.com/muhammadheryan/warehouse/cmd/config"
	redisclient "github.com/muhammadheryan/warehouse/cmd/redis"
	_ "github.com/muhammadheryan/warehouse/docs"
	assignmentRepo "github.com/muhammadheryan/warehouse/repository/assignment"
	cartRepo "github.com/muhammadheryan/warehouse/repository/cart"
	customerRepo "github.com/muhammadheryan/warehouse/repository/customer"
	orderRepo "github.com/muhammadheryan/warehouse/repository/order"
	pickerRepo "github.com/muhammadheryan/warehouse/repository/picker"
	productRepo "github.com/muhammadheryan/warehouse/repository/product"
	rackRepo "github.com/muhammadheryan/warehouse/repository/rack"
	reassignmentRepo "github.com/muhammadheryan/warehouse/repository/reassignment"
	reportRepo "github.com/muhammadheryan/warehouse/repository/report"
	storageRepo "github.com/muhammadheryan/warehouse/repository/storage"
	txRepo "github.com/muhammadheryan/warehouse/repository/tx"
	"github.com/muhammadheryan/warehouse/thirdparty/broker"
	"github.com/muhammadheryan/warehouse/thirdparty/kafka"
	"github.com/muhammadheryan/warehouse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse/transport"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

// @title WAREHOUSE API
// @version 1.0
// @description Warehouse operations API: catalog, storage ledger, orders, picker assignment and reporting
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("broker", cfg.Events.Broker))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	publisher, err := newPublisher(cfg)
	if err != nil {
		logger.Fatal("err connect broker", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RackRepo := rackRepo.NewRackRepository(db)
	PickerRepo := pickerRepo.NewPickerRepository(db)
	StorageRepo := storageRepo.NewStorageRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	AssignmentRepo := assignmentRepo.NewAssignmentRepository(db)
	ReassignmentRepo := reassignmentRepo.NewReassignmentRepository(db)
	ReportRepo := reportRepo.NewReportRepository(db)
	CartRepo := cartRepo.NewCartRepository(redisClient, cfg.Cart.TTL)

	// Initialize application layers
	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		CustomerApp:     customerapp.NewCustomerApp(CustomerRepo),
		CatalogApp:      catalogapp.NewCatalogApp(cfg, TxRepo, ProductRepo, RackRepo, PickerRepo, StorageRepo),
		OrderApp:        orderapp.NewOrderApp(TxRepo, OrderRepo, CustomerRepo, ProductRepo, CartRepo, publisher),
		StorageApp:      storageapp.NewStorageApp(TxRepo, StorageRepo, ProductRepo, RackRepo, ReassignmentRepo, publisher),
		ReassignmentApp: reassignmentapp.NewReassignmentApp(cfg, TxRepo, StorageRepo, RackRepo, ReassignmentRepo, publisher),
		AssignmentApp:   assignmentapp.NewAssignmentApp(TxRepo, AssignmentRepo, OrderRepo, PickerRepo, StorageRepo),
		ReportApp:       reportapp.NewReportApp(cfg, ReportRepo),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}

// newPublisher picks the event transport named by EVENT_BROKER.
func newPublisher(cfg *config.Config) (broker.Publisher, error) {
	switch cfg.Events.Broker {
	case "kafka":
		return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic), nil
	case "none", "":
		return broker.NopPublisher{}, nil
	default:
		return rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	}
}
