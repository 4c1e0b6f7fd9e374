package postgres

import "time"

// Config holds PostgreSQL connection settings.
type Config struct {
	Host         string
	Port         int
	Database     string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
	DialTimeout  time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         5432,
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		ConnLifetime: 30 * time.Minute,
		DialTimeout:  5 * time.Second,
	}
}

// Option configures the client.
type Option func(*Config)

// WithHost sets the database host.
func WithHost(host string) Option {
	return func(c *Config) { c.Host = host }
}

// WithPort sets the database port.
func WithPort(port int) Option {
	return func(c *Config) {
		if port > 0 {
			c.Port = port
		}
	}
}

// WithDatabase sets the database name.
func WithDatabase(name string) Option {
	return func(c *Config) { c.Database = name }
}

// WithCredentials sets user and password.
func WithCredentials(user, password string) Option {
	return func(c *Config) {
		c.User = user
		c.Password = password
	}
}

// WithSSLMode sets the sslmode DSN parameter.
func WithSSLMode(mode string) Option {
	return func(c *Config) {
		if mode != "" {
			c.SSLMode = mode
		}
	}
}

// WithMaxConnections sets pool sizing.
func WithMaxConnections(open, idle int) Option {
	return func(c *Config) {
		if open > 0 {
			c.MaxOpenConns = open
		}
		if idle > 0 {
			c.MaxIdleConns = idle
		}
	}
}

// WithConnLifetime sets the maximum connection lifetime.
func WithConnLifetime(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ConnLifetime = d
		}
	}
}
