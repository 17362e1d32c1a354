package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"seafresh-be/internal/address"
	"seafresh-be/internal/admin"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/cart"
	"seafresh-be/internal/category"
	"seafresh-be/internal/config"
	"seafresh-be/internal/dashboard"
	"seafresh-be/internal/db"
	"seafresh-be/internal/events"
	"seafresh-be/internal/handler"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/metrics"
	"seafresh-be/internal/middleware"
	"seafresh-be/internal/order"
	"seafresh-be/internal/product"
	"seafresh-be/internal/seller"
	"seafresh-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := db.InitDB(cfg)

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("failed to build token service", zap.Error(err))
	}

	store, closeStore, err := buildCartStore(ctx, cfg, database)
	if err != nil {
		log.Fatal("failed to build cart store", zap.String("cart_store", cfg.CartStore), zap.Error(err))
	}

	publisher, err := buildPublisher(cfg)
	if err != nil {
		log.Fatal("failed to build event publisher", zap.String("broker", cfg.EventBroker), zap.Error(err))
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	limiter.Start(ctx)

	h := newHandler(cfg, database, tokens, store, publisher, metrics.NewRegistry())
	router := h.Router(middleware.CORS(cfg.CORSOrigins), limiter.Middleware())

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("cart_store", cfg.CartStore),
			zap.String("event_broker", cfg.EventBroker),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		log.Error("failed to close event publisher", zap.Error(err))
	}
	if err := closeStore(); err != nil {
		log.Error("failed to close cart store", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		log.Error("failed to close database", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// buildCartStore returns the configured store and a func releasing its resources.
func buildCartStore(ctx context.Context, cfg *config.Config, database *sql.DB) (cart.Store, func() error, error) {
	if cfg.CartStore != config.CartStoreRedis {
		return cart.NewPostgresStore(database), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	return cart.NewRedisStore(client, cfg.CartTTL), client.Close, nil
}

func buildPublisher(cfg *config.Config) (events.Publisher, error) {
	switch cfg.EventBroker {
	case config.BrokerAMQP:
		return events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
	case config.BrokerKafka:
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return events.NopPublisher{}, nil
	}
}

// newHandler wires repositories and services around the shared pool.
func newHandler(
	cfg *config.Config,
	database *sql.DB,
	tokens *auth.TokenService,
	store cart.Store,
	publisher events.Publisher,
	reg *metrics.Registry,
) *handler.Handler {
	addressSvc := address.NewService(address.NewRepository(database))
	sellerSvc := seller.NewService(seller.NewRepository(database), tokens)
	productSvc := product.NewService(product.NewRepository(database))

	cartSvc := cart.NewService(store, productSvc, cart.Pricing{
		TaxRate:       cfg.TaxRate,
		CouponCode:    cfg.CouponCode,
		CouponPercent: cfg.CouponPercent,
	})

	orderSvc := order.NewService(order.Deps{
		Repo:      order.NewRepository(database),
		Addresses: addressSvc,
		Carts:     cartSvc,
		Sellers:   sellerSvc,
		Publisher: publisher,
		Metrics:   reg,
	})

	return &handler.Handler{
		Users:         user.NewService(user.NewRepository(database), tokens, addressSvc),
		Sellers:       sellerSvc,
		Admins:        admin.NewService(admin.NewRepository(database), tokens),
		Addresses:     addressSvc,
		Products:      productSvc,
		Categories:    category.NewService(category.NewRepository(database)),
		Carts:         cartSvc,
		Orders:        orderSvc,
		Dashboard:     dashboard.NewService(dashboard.NewRepository(database)),
		Tokens:        tokens,
		Metrics:       reg,
		DB:            database,
		SecureCookies: cfg.IsProduction(),
	}
}
