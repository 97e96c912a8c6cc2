package httpx

import (
	"net/http"

	"github.com/adeilh/go-httpstatus/status"
)

// Codes the package itself produces or branches on.
const (
	StatusOK                 = http.StatusOK
	StatusBadRequest         = http.StatusBadRequest
	StatusNotFound           = http.StatusNotFound
	StatusRequestTimeout     = http.StatusRequestTimeout
	StatusTeapot             = http.StatusTeapot
	StatusTooManyRequests    = http.StatusTooManyRequests
	StatusInternalError      = http.StatusInternalServerError
	StatusServiceUnavailable = http.StatusServiceUnavailable
)

// StatusText returns the reason phrase for code, falling back to
// status.UnknownReason for codes outside the table.
func StatusText(code int) string { return status.ReasonPhrase(code) }

// StatusClass returns the band code belongs to.
func StatusClass(code int) status.Class { return status.ClassOf(code) }
