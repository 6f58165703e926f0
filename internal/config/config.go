package config

import "time"

type Config interface {
	HTTPPort() string

	ReadTimeout() time.Duration
	WriteTimeout() time.Duration

	BufferSize() int
	MaxConnections() int

	ServerName() string
	LogLevel() string

	PprofEnabled() bool
	PprofPort() string

	MetricsEnabled() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPPort() string            { return c.httpPort }
func (c *config) ReadTimeout() time.Duration  { return c.readTimeout }
func (c *config) WriteTimeout() time.Duration { return c.writeTimeout }
func (c *config) BufferSize() int             { return c.bufferSize }
func (c *config) MaxConnections() int         { return c.maxConnections }
func (c *config) ServerName() string          { return c.serverName }
func (c *config) LogLevel() string            { return c.logLevel }
func (c *config) PprofEnabled() bool          { return c.pprofEnabled }
func (c *config) PprofPort() string           { return c.pprofPort }
func (c *config) MetricsEnabled() bool        { return c.metricsEnabled }
