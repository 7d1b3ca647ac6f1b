package config

import (
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Queue modes.
const (
	QueueSpool = "spool"
	QueueKafka = "kafka"
	QueueOff   = "off"
)

type API struct {
	BaseURL string
	Timeout time.Duration
}

type Store struct {
	DataDir    string
	CacheCap   int
	CacheTTL   time.Duration
	HistoryCap int
}

type Queue struct {
	Mode          string
	SpoolDir      string
	FlushInterval time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
}

type Panel struct {
	Addr      string
	StaticDir string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	LogLevel string
	Workers  int

	API     API
	Store   Store
	Queue   Queue
	Kafka   Kafka
	Panel   Panel
	Breaker Breaker
	Retry   Retry
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: envDefault("LOG_LEVEL", "info"),
		Workers:  envInt("WORKERS", 4),

		API: API{
			BaseURL: strings.TrimSpace(os.Getenv("API_BASE_URL")),
			Timeout: envDurationMS("API_TIMEOUT", 5*time.Second),
		},

		Store: Store{
			DataDir:    envDefault("DATA_DIR", "./data"),
			CacheCap:   envInt("CACHE_CAP", 512),
			CacheTTL:   envDurationMS("CACHE_TTL", time.Minute),
			HistoryCap: envInt("HISTORY_CAP", 0),
		},

		Queue: Queue{
			Mode:          strings.ToLower(envDefault("QUEUE_MODE", QueueSpool)),
			SpoolDir:      strings.TrimSpace(os.Getenv("SPOOL_DIR")),
			FlushInterval: envDurationMS("FLUSH_INTERVAL", 30*time.Second),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   strings.TrimSpace(os.Getenv("KAFKA_TOPIC")),
			Group:   envDefault("KAFKA_GROUP", "counterd-replay"),
		},

		Panel: Panel{
			Addr:      envDefault("PANEL_ADDR", ":8081"),
			StaticDir: strings.TrimSpace(os.Getenv("STATIC_DIR")),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 3),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if cfg.Queue.SpoolDir == "" {
		cfg.Queue.SpoolDir = filepath.Join(cfg.Store.DataDir, "spool")
	}

	// Validate required envs and basic sanity.
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.API.BaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}
	if c.Queue.Mode == QueueKafka {
		if len(c.Kafka.Brokers) == 0 {
			missing = append(missing, "KAFKA_BROKERS")
		}
		if c.Kafka.Topic == "" {
			missing = append(missing, "KAFKA_TOPIC")
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return &badEnvError{Key: "API_BASE_URL", Value: c.API.BaseURL, Reason: err.Error()}
	}

	switch c.Queue.Mode {
	case QueueSpool, QueueKafka, QueueOff:
	default:
		return &badEnvError{Key: "QUEUE_MODE", Value: c.Queue.Mode, Reason: "must be spool, kafka or off"}
	}

	if c.Store.CacheCap <= 0 {
		log.Printf("CACHE_CAP is %d, adjusting to 1", c.Store.CacheCap)
	}
	if c.Retry.Attempts < 0 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 0", c.Retry.Attempts)
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type badEnvError struct {
	Key    string
	Value  string
	Reason string
}

func (e *badEnvError) Error() string {
	return "invalid " + e.Key + "=" + strconv.Quote(e.Value) + ": " + e.Reason
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	// If it looks like a duration with units, try ParseDuration first.
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	// Otherwise treat as milliseconds.
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
