package httpx

import "github.com/labstack/echo/v4"

// Router mounts read-only routes under a shared prefix.
type Router struct{ g *echo.Group }

// GET mounts h at the group prefix plus path. An empty path serves the
// prefix itself.
func (r *Router) GET(path string, h HandlerFunc, mw ...MiddlewareFunc) *Router {
	if r == nil || r.g == nil || h == nil {
		return r
	}
	r.g.GET(path, h, mw...)
	return r
}
