package httpx

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type (
	Context        = echo.Context
	HandlerFunc    = echo.HandlerFunc
	MiddlewareFunc = echo.MiddlewareFunc
)

// App owns the echo instance routes are mounted on.
type App struct{ e *echo.Echo }

func newApp() *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &App{e: e}
}

// GET mounts h at path.
func (a *App) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) {
	a.e.GET(path, h, mw...)
}

// Group returns a Router whose paths are relative to prefix.
func (a *App) Group(prefix string, mw ...MiddlewareFunc) *Router {
	return &Router{g: a.e.Group(prefix, mw...)}
}

func recoverMiddleware() MiddlewareFunc { return middleware.Recover() }

func requestLogMiddleware() MiddlewareFunc { return middleware.Logger() }

// HTTPError builds the error handlers return to pick a status. A nil message
// is rendered as the reason phrase of code.
func HTTPError(code int, message any) error { return echo.NewHTTPError(code, message) }
