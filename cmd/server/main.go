package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/api"
	"github.com/stanleyHayes/stayup-api/internal/event"
	"github.com/stanleyHayes/stayup-api/internal/repository"
	"github.com/stanleyHayes/stayup-api/internal/service"
	"github.com/stanleyHayes/stayup-api/pkg/config"
	"github.com/stanleyHayes/stayup-api/pkg/database"
	"github.com/stanleyHayes/stayup-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			zlog.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	zlog.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))

	// Repositories
	couponRepo := repository.NewCouponRepository(mongoDB.Database)
	productRepo := repository.NewProductRepository(mongoDB.Database)
	categoryRepo := repository.NewCategoryRepository(mongoDB.Database)
	tagRepo := repository.NewTagRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	customerRepo := repository.NewCustomerRepository(mongoDB.Database)
	shippingClassRepo := repository.NewShippingClassRepository(mongoDB.Database)
	shippingMethodRepo := repository.NewShippingMethodRepository(mongoDB.Database)
	shippingZoneRepo := repository.NewShippingZoneRepository(mongoDB.Database)
	zoneLocationRepo := repository.NewZoneLocationRepository(mongoDB.Database)
	taxClassRepo := repository.NewTaxClassRepository(mongoDB.Database)
	taxRateRepo := repository.NewTaxRateRepository(mongoDB.Database)

	uow := database.NewUnitOfWork(mongoDB.Client)

	// Aggregate recomputation runs off the request path, driven by domain
	// events published after each successful write
	bus := event.NewBus(config.GetEnvInt("EVENT_BUFFER", 64), zlog)
	aggregates := service.NewAggregateService(productRepo, categoryRepo, tagRepo, reviewRepo, zlog)
	bus.Subscribe(aggregates.HandleEvent)
	bus.Start(context.Background())

	// Services
	couponSvc := service.NewCouponService(couponRepo, productRepo, categoryRepo, customerRepo, uow, zlog)
	productSvc := service.NewProductService(productRepo, bus, zlog)
	categorySvc := service.NewCategoryService(categoryRepo, zlog)
	tagSvc := service.NewTagService(tagRepo, zlog)
	reviewSvc := service.NewReviewService(reviewRepo, productRepo, bus, zlog)
	customerSvc := service.NewCustomerService(customerRepo, zlog)
	shippingSvc := service.NewShippingService(shippingClassRepo, shippingMethodRepo, shippingZoneRepo, zoneLocationRepo, zlog)
	taxSvc := service.NewTaxService(taxClassRepo, taxRateRepo, zlog)

	router := api.NewRouter(api.Handlers{
		Coupons:    api.NewCouponHandler(couponSvc),
		Products:   api.NewProductHandler(productSvc),
		Categories: api.NewCategoryHandler(categorySvc),
		Tags:       api.NewTagHandler(tagSvc),
		Reviews:    api.NewReviewHandler(reviewSvc),
		Customers:  api.NewCustomerHandler(customerSvc),
		Shipping:   api.NewShippingHandler(shippingSvc),
		Tax:        api.NewTaxHandler(taxSvc),
	}, zlog)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	// Drain pending recomputations before dropping the database connection
	bus.Close()

	zlog.Info("server exited")
}
