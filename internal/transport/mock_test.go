package transport

import (
	"context"
	"time"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/status"

	"github.com/stretchr/testify/mock"
)

type stubConfig struct {
	port           string
	readTimeout    time.Duration
	writeTimeout   time.Duration
	bufferSize     int
	maxConnections int
	serverName     string
}

func newStubConfig() *stubConfig {
	return &stubConfig{
		port:         "0",
		readTimeout:  time.Second,
		writeTimeout: time.Second,
		bufferSize:   4096,
		serverName:   "test-server",
	}
}

func (c *stubConfig) HTTPPort() string            { return c.port }
func (c *stubConfig) ReadTimeout() time.Duration  { return c.readTimeout }
func (c *stubConfig) WriteTimeout() time.Duration { return c.writeTimeout }
func (c *stubConfig) BufferSize() int             { return c.bufferSize }
func (c *stubConfig) MaxConnections() int         { return c.maxConnections }
func (c *stubConfig) ServerName() string          { return c.serverName }
func (c *stubConfig) LogLevel() string            { return "error" }
func (c *stubConfig) PprofEnabled() bool          { return false }
func (c *stubConfig) PprofPort() string           { return "6060" }
func (c *stubConfig) MetricsEnabled() bool        { return false }

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) ParseError(ctx context.Context, kind request.Kind) {
	m.Called(kind)
}

func (m *mockRecorder) Response(ctx context.Context, code status.Code) {
	m.Called(code)
}
