package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-account-api/config"
	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/memory"
	"user-account-api/internal/infrastructure/db/postgres"
	pguser "user-account-api/internal/infrastructure/db/postgres/user"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/pkg/rmqconsumer"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	userRepo   user.Repository
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         *mq.RabbitMQ
	events     ports.EventPublisher
	mqConsumer *rmqconsumer.Consumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}

	// config
	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("cannot load .env file", zap.Error(err))
	}
	cfg := config.Load()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.Noop{},
	}

	// db
	if err = app.initStore(ctx); err != nil {
		return nil, err
	}

	// rabbitMQ
	if cfg.MQEnabled() {
		if err = app.initMQ(ctx); err != nil {
			app.Close()
			return nil, err
		}
	} else {
		logger.Warn("RABBITMQ_HOST is empty, user events will not be published")
	}

	return app, nil
}

func (a *App) initStore(ctx context.Context) error {
	dbDsn, err := a.cfg.DBDSN()
	if err != nil {
		switch a.cfg.App.Env {
		case "dev", "local", "test":
			a.logger.Warn("DB config incomplete, using in-memory user store", zap.Error(err))
			a.userRepo = memory.NewRepository()
			return nil
		}
		return fmt.Errorf("DB config: %w", err)
	}

	dbPool, err := postgres.New(ctx, a.logger, dbDsn)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	a.db = dbPool
	a.userRepo = pguser.NewRepository(dbPool)

	return nil
}

func (a *App) initMQ(ctx context.Context) error {
	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		return fmt.Errorf("RabbitMQ config: %w", err)
	}

	rbMQ := mq.New(a.cfg.MQ, a.logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		return fmt.Errorf("connect to rabbitMQ: %w", err)
	}
	a.mq = rbMQ
	if err = rbMQ.Init(); err != nil {
		return fmt.Errorf("init rabbitMQ: %w", err)
	}
	a.events = rbMQ

	rmqConsumer := rmqconsumer.New(a.cfg.MQ, a.logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		return fmt.Errorf("connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		return fmt.Errorf("init rabbitMQ consumer: %w", err)
	}
	a.mqConsumer = rmqConsumer

	return nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil {
		a.mq.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run serves HTTP and the MQ workers under one context until a signal arrives,
// then drains the server within shutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret, a.cfg.App.JWTTTL)
	authService := services.NewAuthService(a.userRepo, jwtService, a.events, a.mCounter)
	userService := services.NewUserService(a.userRepo)

	authGate := middleware.AuthMiddleware(jwtService, userService, a.logger, a.mCounter)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewUserController(a.router, userService, a.logger, authGate)

	// ops
	rest.NewOpsController(a.router)
}

func (a *App) Logger() *zap.Logger { return a.logger }
