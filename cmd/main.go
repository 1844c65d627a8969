package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/Brian13b/QuicoBasquetProject/internal/config"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/scheduler"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/availability"
	bookingRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/booking"
	courtRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/court"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/migrations"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	userServiceClient "github.com/Brian13b/QuicoBasquetProject/internal/integrations/userservice"
	bookingsService "github.com/Brian13b/QuicoBasquetProject/internal/service/bookings"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	courtsService "github.com/Brian13b/QuicoBasquetProject/internal/service/courts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/pricing"
	subscriptionsService "github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions"
	adminOverrideUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
	cancelSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/cancel_subscription"
	createBookingUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_booking"
	createSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_subscription"
	getAvailableSlotsUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/get_available_slots"
	reactivateBookingUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_booking"
	reactivateSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_subscription"
	renewSubscriptionUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/renew_subscription"
	sweepExpiredUC "github.com/Brian13b/QuicoBasquetProject/internal/usecase/sweep_expired"
	"github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
	"github.com/Brian13b/QuicoBasquetProject/pkg/metrics"
	"github.com/Brian13b/QuicoBasquetProject/pkg/txmanager"
)

const (
	configPath      = "config.toml"
	sweepJobName    = "expire-subscriptions"
	sweepJobTimeout = 5 * time.Minute
)

// publisher events sink that can be closed on shutdown
type publisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting court booking service...")

	if err := run(cfg, log); err != nil {
		log.Error("Service stopped with error: %v", err)
		os.Exit(1)
	}

	log.Info("Service stopped gracefully")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db, log); err != nil {
			return err
		}
	}

	// Pool stats are exported only when metrics are on; query timing is a no-op otherwise
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	subscriptionRepository := subscriptionRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)

	eventPublisher, err := newPublisher(cfg.Events, log)
	if err != nil {
		return err
	}
	defer eventPublisher.Close()

	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("User service client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	payment := domain.BankAccount{
		Alias:  cfg.Payment.Alias,
		CBU:    cfg.Payment.CBU,
		Bank:   cfg.Payment.Bank,
		Holder: cfg.Payment.Holder,
	}

	// Engine
	resolver := conflicts.NewResolver(
		availability.NewStore(bookingRepository, subscriptionRepository),
		log,
		conflicts.WithHorizon(time.Duration(cfg.Booking.SubscriptionHorizonDays)*24*time.Hour),
		conflicts.WithMetrics(metricsCollector),
	)
	pricingEngine := pricing.NewEngine(cfg.Booking.SessionsPerMonth)
	discountSvc := discounts.NewService(subscriptionRepository, courtRepository, pricingEngine, log)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, eventPublisher, log)
	subscriptionSvc := subscriptionsService.NewService(subscriptionRepository, log)
	courtSvc := courtsService.NewService(courtRepository, pricingEngine, discountSvc, txMgr, log)

	// Use cases
	uc := useCases{
		createBooking: createBookingUC.NewUseCase(
			bookingRepository, courtRepository, resolver, pricingEngine, userClient, eventPublisher, txMgr, payment, log,
		),
		reactivateBooking: reactivateBookingUC.NewUseCase(
			bookingRepository, courtRepository, resolver, eventPublisher, txMgr, log,
		),
		createSubscription: createSubscriptionUC.NewUseCase(
			subscriptionRepository, courtRepository, resolver, pricingEngine, discountSvc, userClient, eventPublisher, txMgr, payment, log,
		),
		cancelSubscription: cancelSubscriptionUC.NewUseCase(
			subscriptionRepository, discountSvc, eventPublisher, txMgr, log,
		),
		reactivateSubscription: reactivateSubscriptionUC.NewUseCase(
			subscriptionRepository, courtRepository, resolver, discountSvc, eventPublisher, txMgr, log,
		),
		renewSubscription: renewSubscriptionUC.NewUseCase(
			subscriptionRepository, courtRepository, resolver, discountSvc, eventPublisher, txMgr, log,
		),
		sweepExpired: sweepExpiredUC.NewUseCase(
			subscriptionRepository, discountSvc, metricsCollector, eventPublisher, txMgr, log,
		),
		adminOverride: adminOverrideUC.NewUseCase(
			bookingRepository, subscriptionRepository, resolver, discountSvc, eventPublisher, txMgr, log,
		),
		availableSlots: getAvailableSlotsUC.NewUseCase(courtRepository, resolver, log),
	}

	router := newRouter(cfg, log, metricsCollector, services{
		bookings:      bookingSvc,
		subscriptions: subscriptionSvc,
		courts:        courtSvc,
	}, uc)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.NewScheduler(log)
		if err != nil {
			return err
		}
		_, err = sched.AddJob(sweepJobName, cfg.Scheduler.ExpireCron, sweepJobTimeout, func(jobCtx context.Context) error {
			_, err := uc.sweepExpired.Execute(jobCtx, &sweepExpiredUC.Request{Trigger: sweepExpiredUC.TriggerScheduler})
			return err
		})
		if err != nil {
			return err
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if sched != nil {
		sched.Start()
	}

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		var errs []error
		if sched != nil {
			errs = append(errs, sched.Stop())
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server forced to shutdown: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// newPublisher connects to the broker, or drops events when they are disabled
func newPublisher(cfg config.EventsConfig, log *logger.Logger) (publisher, error) {
	if !cfg.Enabled {
		log.Info("Events disabled, lifecycle events are dropped")
		return events.Noop{}, nil
	}

	p, err := events.NewPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	log.Info("Publishing events to exchange %s", cfg.Exchange)
	return p, nil
}
