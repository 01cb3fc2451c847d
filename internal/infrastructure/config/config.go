package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ServiceCustomer = "customer-core"
	ServicePolicy   = "policy-management"

	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"

	LockMemory = "memory"
	LockRedis  = "redis"
)

// Config is read from the environment. A .env file is loaded by main via godotenv/autoload.
type Config struct {
	Service  string
	Env      string
	HTTPPort int

	StoreBackend       string
	QuoteRequestsTable string
	PoliciesTable      string

	RedisAddr         string
	ConsumerGroup     string
	ConsumerName      string
	WorkerConcurrency int
	ConsumerBlock     time.Duration
	RedeliveryIdle    time.Duration
	StreamMaxLen      int64

	LockBackend string
	LockTTL     time.Duration

	SweepInterval     time.Duration
	SweepInitialDelay time.Duration
	OutboxInterval    time.Duration
}

func Load(service string) Config {
	defaultPort := 8080
	if service == ServicePolicy {
		defaultPort = 8090
	}
	host, _ := os.Hostname()
	if host == "" {
		host = service
	}

	return Config{
		Service:  service,
		Env:      getenvDefault("APP_ENV", "development"),
		HTTPPort: getenvInt("HTTP_PORT", defaultPort),

		StoreBackend:       strings.ToLower(getenvDefault("STORE_BACKEND", StoreDynamoDB)),
		QuoteRequestsTable: getenvDefault("QUOTE_REQUESTS_TABLE", "quote_requests"),
		PoliciesTable:      getenvDefault("POLICIES_TABLE", "policies"),

		RedisAddr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		ConsumerGroup:     getenvDefault("CONSUMER_GROUP", service),
		ConsumerName:      getenvDefault("CONSUMER_NAME", host),
		WorkerConcurrency: max(getenvInt("WORKER_CONCURRENCY", 4), 1),
		ConsumerBlock:     getenvDuration("CONSUMER_BLOCK", 2*time.Second),
		RedeliveryIdle:    getenvDuration("REDELIVERY_IDLE", 30*time.Second),
		StreamMaxLen:      int64(max(getenvInt("STREAM_MAXLEN", 100000), 0)),

		LockBackend: strings.ToLower(getenvDefault("LOCK_BACKEND", LockMemory)),
		LockTTL:     getenvDuration("LOCK_TTL", 30*time.Second),

		SweepInterval:     getenvDuration("SWEEP_INTERVAL", 60*time.Second),
		SweepInitialDelay: getenvDuration("SWEEP_INITIAL_DELAY", 5*time.Second),
		OutboxInterval:    getenvDuration("OUTBOX_INTERVAL", 15*time.Second),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
