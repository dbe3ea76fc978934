package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresrepo "github.com/kakao-farmer/platform-api/internal/adapters/db/postgres"
	"github.com/kakao-farmer/platform-api/internal/auth/hash"
	authsvc "github.com/kakao-farmer/platform-api/internal/auth/service"
	"github.com/kakao-farmer/platform-api/internal/auth/token"
	"github.com/kakao-farmer/platform-api/internal/config"
	lg "github.com/kakao-farmer/platform-api/internal/infra/log"
	"github.com/kakao-farmer/platform-api/internal/metrics"
	"github.com/kakao-farmer/platform-api/internal/migrate"
	transport "github.com/kakao-farmer/platform-api/internal/transport/http"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zapLog := lg.Must(cfg.LogLevel)
	defer zapLog.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	validate := validator.New()

	userRepo := postgresrepo.NewUserRepo(db)
	videoRepo := postgresrepo.NewVideoRepo(db)
	playlistRepo := postgresrepo.NewPlaylistRepo(db)
	formationRepo := postgresrepo.NewFormationRepo(db)
	lectureRepo := postgresrepo.NewLectureRepo(db)

	hasher := hash.New(cfg.PasswordPepper)
	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTokenTTL)
	auth := authsvc.NewAuthService(userRepo, hasher, codec, validate)

	handler := transport.NewHandler(auth, videoRepo, playlistRepo, formationRepo, lectureRepo, zapLog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zapLog))
	router.Use(metrics.Middleware())

	if len(cfg.AllowedOrigins) > 0 {
		corsConfig := cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{
				"Origin", "Content-Type", "Accept",
				"Authorization",
				"X-Requested-With",
			},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}
		router.Use(cors.New(corsConfig))
	}

	handler.RegisterRoutes(router)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
	router.GET("/metrics", metrics.Handler())

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}

	rootCtx, cancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("address", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
