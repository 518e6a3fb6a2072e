package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Kafka   KafkaConfig
	Event   EventDefaults
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StorageConfig struct {
	// Backend selects the persistence slot implementation: sqlite, postgres,
	// redis or memory.
	Backend     string
	SlotKey     string
	SQLitePath  string
	PostgresDSN string
	RedisAddr   string
}

type KafkaConfig struct {
	Brokers       []string
	CheckInsTopic string
	MockMode      bool
	Enabled       bool
}

// EventDefaults are the built-in EventConfig values used when the persistence
// slot is empty or unreadable.
type EventDefaults struct {
	EventName          string
	EventDate          string
	TicketPrice        int
	GrowthXPrice       int
	PaymentLink        string
	GrowthXPaymentLink string
}

func Load() *Config {
	kafkaEnabled := getEnvBool("KAFKA_ENABLED", false)
	mockMode := getEnvBool("KAFKA_MOCK_MODE", false)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8086"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Storage: StorageConfig{
			Backend:     getEnv("STORAGE_BACKEND", "sqlite"),
			SlotKey:     getEnv("STORAGE_SLOT_KEY", "attendance_data"),
			SQLitePath:  getEnv("SQLITE_PATH", "attendance.db"),
			PostgresDSN: getEnv("POSTGRES_DSN", ""),
			RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Brokers:       []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			CheckInsTopic: getEnv("KAFKA_TOPIC_CHECKINS", "attendance.checkins"),
			Enabled:       kafkaEnabled,
			MockMode:      mockMode,
		},
		Event: EventDefaults{
			EventName:          getEnv("EVENT_NAME", "The Sound Nexus"),
			EventDate:          getEnv("EVENT_DATE", "2026-01-17"),
			TicketPrice:        getEnvInt("TICKET_PRICE", 255),
			GrowthXPrice:       getEnvInt("GROWTHX_PRICE", 219),
			PaymentLink:        getEnv("PAYMENT_LINK", "https://payments.cashfree.com/forms/the-sound-nexus-ots"),
			GrowthXPaymentLink: getEnv("GROWTHX_PAYMENT_LINK", "https://payments.cashfree.com/forms?code=the-sound-nexus-growthX"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
