package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"tinyhttp/internal/logging"

	"github.com/joho/godotenv"
)

const (
	minBufferSize     = 1024
	maxBufferSize     = 1048576
	defaultBufferSize = 8192
)

type config struct {
	httpPort string

	readTimeout  time.Duration
	writeTimeout time.Duration

	bufferSize     int
	maxConnections int

	serverName string
	logLevel   string

	pprofEnabled bool
	pprofPort    string

	metricsEnabled bool
}

func parse() (*config, error) {
	httpPort := getenv("HTTP_PORT", "8080")

	readTimeout, err := getenvDuration("READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getenvDuration("WRITE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	bufferSize := parseBufferSize()

	maxConnections, err := parseMaxConnections()
	if err != nil {
		return nil, err
	}

	serverName := getenv("SERVER_NAME", "tinyhttp")
	logLevel := getenv("LOG_LEVEL", "info")

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	metricsEnabled := getenvBool("METRICS_ENABLED", false)

	return &config{
		httpPort:       httpPort,
		readTimeout:    readTimeout,
		writeTimeout:   writeTimeout,
		bufferSize:     bufferSize,
		maxConnections: maxConnections,
		serverName:     serverName,
		logLevel:       logLevel,
		pprofEnabled:   pprofEnabled,
		pprofPort:      pprofPort,
		metricsEnabled: metricsEnabled,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		logging.Get("config").Warnf("Invalid BUFFER_SIZE, falling back to %d", defaultBufferSize)
		return defaultBufferSize
	}
	return size
}

func parseMaxConnections() (int, error) {
	raw := getenv("MAX_CONNECTIONS", "1024")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_CONNECTIONS: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("MAX_CONNECTIONS must not be negative")
	}
	return n, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
