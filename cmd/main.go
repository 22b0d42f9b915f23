package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/api/handler"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/session"
	"complaintdesk/backend/internal/storage"
)

func setupDependencies(cfg *config.Config, log *zap.SugaredLogger) (*gorm.DB, *redis.Client) {
	// TranslateError maps driver errors (duplicate keys in particular)
	// onto gorm's sentinel errors, which the store taxonomy relies on.
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("failed to connect Redis: %v", err)
	}

	return db, rdb
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded")
	}
	cfg := config.New()

	db, rdb := setupDependencies(cfg, log)

	stores := storage.NewService(db, rdb, log)
	if err := stores.AutoMigrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Info("database and redis connections established, migrations complete")

	sessions := session.NewStore(rdb, cfg.SessionTTL)

	var tg *notify.Telegram
	if cfg.TelegramToken != "" {
		var err error
		tg, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Warnf("telegram notifier disabled: %v", err)
		}
	}

	r := gin.Default()
	h := handler.NewHandler(stores, sessions, tg, []byte(cfg.JWTSecret), log)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Infof("listening on :%s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
