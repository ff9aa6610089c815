package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "loanadmin-backend/internal/adapter/http"
	idemp "loanadmin-backend/internal/adapter/middleware"
	"loanadmin-backend/internal/adapter/repository/mysql"
	"loanadmin-backend/internal/config"
	"loanadmin-backend/internal/infrastructure/cache"
	"loanadmin-backend/internal/infrastructure/db"
	"loanadmin-backend/internal/usecase/dashboard"
	"loanadmin-backend/internal/usecase/enrichment"
	"loanadmin-backend/internal/usecase/status"
	"loanadmin-backend/pkg/id"
	"loanadmin-backend/pkg/logger"
)

func main() {
	// .env is optional; real env wins
	_ = godotenv.Load()

	log, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("open redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	gw := mysql.NewGateway(gdb)
	store := dashboard.NewStore()
	dashUC := dashboard.NewUsecase(gw, store, log.Named("dashboard"))
	detailUC := enrichment.NewUsecase(gw, store, log.Named("enrichment"))
	statusUC := status.NewUsecase(gw.Users, store, log.Named("status"))

	// warm the snapshot; failing sections are reported and retried on refresh
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	for sec, st := range dashUC.Load(loadCtx).Sections {
		if st.Error != "" {
			log.Warn("initial load incomplete", zap.String("section", string(sec)), zap.String("error", st.Error))
		}
	}
	cancel()

	h := httpadp.NewHandler(store)
	dashH := httpadp.NewDashboardHandler(dashUC, cfg.LoadTimeout)
	userH := httpadp.NewUserHandler(dashUC, detailUC, statusUC)
	notifH := httpadp.NewNotificationHandler(dashUC, statusUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		requestLogger(log.Named("http")),
		middleware.Recover(),
	)
	guard := idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log.Named("idempotency"))

	// routes
	e.GET("/health", h.Health)

	e.GET("/dashboard/stats", dashH.Stats)
	e.POST("/dashboard/refresh", dashH.Refresh)
	e.GET("/loans", dashH.Loans)
	e.GET("/product-loans", dashH.ProductLoans)

	e.GET("/users", userH.List)
	e.GET("/users/:user_id", userH.Detail)
	e.POST("/users/:user_id/toggle", userH.Toggle, guard)

	e.GET("/notifications/pending", notifH.Pending)
	e.POST("/notifications/:user_id/approve", notifH.Approve, guard)
	e.POST("/notifications/:user_id/reject", notifH.Reject, guard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
