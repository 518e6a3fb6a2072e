package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"ms-attendance/internal/attendance/api"
	"ms-attendance/internal/config"
	"ms-attendance/internal/kafka"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/registry"
	"ms-attendance/internal/storage"
)

func openStore(cfg *config.Config, log *logger.Logger) storage.Store {
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Storage.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("STORAGE", fmt.Sprintf("Redis connection error: %v", err))
		}
		log.LogStorage("OPEN", "redis", cfg.Storage.RedisAddr)
		return storage.NewRedisStore(client, cfg.Storage.SlotKey)

	case "postgres":
		store, err := storage.OpenPostgres(cfg.Storage.PostgresDSN, cfg.Storage.SlotKey)
		if err != nil {
			log.Fatal("STORAGE", fmt.Sprintf("Postgres error: %v", err))
		}
		log.LogStorage("OPEN", "postgres", "connected")
		return store

	case "memory":
		log.Warn("STORAGE", "Using in-memory slot, data will not survive restarts")
		return storage.NewMemoryStore()

	default:
		store, err := storage.OpenSQLite(cfg.Storage.SQLitePath, cfg.Storage.SlotKey)
		if err != nil {
			log.Fatal("STORAGE", fmt.Sprintf("SQLite error: %v", err))
		}
		log.LogStorage("OPEN", "sqlite", cfg.Storage.SQLitePath)
		return store
	}
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Attendance Service initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	store := openStore(cfg, log)

	reg := registry.New(store, cfg.Event, log)
	reg.Load(context.Background())

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		if !cfg.Kafka.MockMode {
			if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, []string{cfg.Kafka.CheckInsTopic}, log); err != nil {
				log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
			}
		}
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.CheckInsTopic, cfg.Kafka.MockMode, log)
		defer producer.Close()
		log.Info("KAFKA", "Check-in event producer initialized")
	}

	handler := api.NewHandler(reg, publisherOrNil(producer), log)

	log.Info("HTTP", "Setting up router")
	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", "🚀 Attendance Service running on "+cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		log.Info("HTTP", "✅ Attendance Service shutdown complete")
	}

	// One last save so an in-flight persistence failure gets a retry.
	if err := reg.Save(context.Background()); err != nil {
		log.Error("REGISTRY", fmt.Sprintf("Final save failed: %v", err))
	}
}

// publisherOrNil keeps the handler's nil check meaningful: a nil *Producer
// inside a non-nil interface would dodge it.
func publisherOrNil(producer *kafka.Producer) api.EventPublisher {
	if producer == nil {
		return nil
	}
	return producer
}
