package httpx

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// HTTPErrorHandler turns a handler error into a response.
type HTTPErrorHandler func(error, Context)

// ServerConfig is what NewServer builds from its options.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Middlewares  []MiddlewareFunc
	ErrorHandler HTTPErrorHandler
	Logger       echo.Logger
	LogLevel     log.Lvl
	// StatusPrefix mounts the status lookup routes; empty disables them.
	StatusPrefix string
}

// ServerOption adjusts a ServerConfig.
type ServerOption func(*ServerConfig)

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		Middlewares:  []MiddlewareFunc{recoverMiddleware(), requestLogMiddleware()},
		ErrorHandler: defaultHTTPErrorHandler,
		LogLevel:     log.INFO,
	}
}

func WithAddress(addr string) ServerOption {
	return func(c *ServerConfig) {
		if addr != "" {
			c.Address = addr
		}
	}
}

func WithTimeouts(read, write time.Duration) ServerOption {
	return func(c *ServerConfig) {
		if read > 0 {
			c.ReadTimeout = read
		}
		if write > 0 {
			c.WriteTimeout = write
		}
	}
}

// WithMiddlewares replaces the default recover and request-log middleware.
func WithMiddlewares(mw ...MiddlewareFunc) ServerOption {
	return func(c *ServerConfig) {
		c.Middlewares = append([]MiddlewareFunc(nil), mw...)
	}
}

func WithErrorHandler(handler HTTPErrorHandler) ServerOption {
	return func(c *ServerConfig) {
		if handler != nil {
			c.ErrorHandler = handler
		}
	}
}

// WithLogger swaps Echo's logger. The level from WithLogLevel still applies.
func WithLogger(l echo.Logger) ServerOption {
	return func(c *ServerConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

func WithLogLevel(lvl log.Lvl) ServerOption {
	return func(c *ServerConfig) {
		c.LogLevel = lvl
	}
}

// WithStatusRoutes mounts StatusRoutes under prefix.
func WithStatusRoutes(prefix string) ServerOption {
	return func(c *ServerConfig) {
		c.StatusPrefix = prefix
	}
}

// ClientConfig is what NewClient builds from its options.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	// StatusPrefix is where Client.Describe expects the lookup routes.
	StatusPrefix string
}

// ClientOption adjusts a ClientConfig.
type ClientOption func(*ClientConfig)

func defaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:      10 * time.Second,
		Headers:      map[string]string{"Accept": "application/json"},
		StatusPrefix: DefaultStatusPrefix,
	}
}

func WithBaseURL(url string) ClientOption {
	return func(c *ClientConfig) {
		if url != "" {
			c.BaseURL = url
		}
	}
}

func WithClientTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithHeaders adds headers sent on every request.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *ClientConfig) {
		for k, v := range headers {
			c.Headers[k] = v
		}
	}
}

func WithStatusPrefix(prefix string) ClientOption {
	return func(c *ClientConfig) {
		if prefix != "" {
			c.StatusPrefix = prefix
		}
	}
}
