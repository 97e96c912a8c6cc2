package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adeilh/go-httpstatus/status"
)

// ErrorBody is the JSON payload written by the default error handler.
type ErrorBody struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

func defaultHTTPErrorHandler(err error, c echo.Context) {
	code := StatusInternalError
	msg := ""
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = httpErrorMessage(he.Message)
	}
	reason := status.ReasonPhrase(code)
	if msg == "" {
		msg = reason
	}

	req := c.Request()
	switch {
	case status.IsServerError(code):
		c.Logger().Errorf("%s %s: %d %s: %v", req.Method, req.URL.Path, code, reason, err)
	case status.IsClientError(code):
		c.Logger().Debugf("%s %s: %d %s: %s", req.Method, req.URL.Path, code, reason, msg)
	}

	if c.Response().Committed {
		return
	}
	if req.Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, ErrorBody{Status: code, Reason: reason, Error: msg})
}

func httpErrorMessage(m any) string {
	switch v := m.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

// StatusError is returned by Client when the response carries a 4xx or 5xx
// status.
type StatusError struct {
	Code   int
	Reason string
	// Message is the "error" field of an ErrorBody response, if the server sent one.
	Message string
	Body    string
}

func newStatusError(code int, body string, eb *ErrorBody) *StatusError {
	se := &StatusError{Code: code, Reason: status.ReasonPhrase(code), Body: body}
	if eb != nil {
		se.Message = eb.Error
	}
	return se
}

func (e *StatusError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("http %d %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("http %d %s: %s", e.Code, e.Reason, detail)
}

func (e *StatusError) Class() status.Class { return status.ClassOf(e.Code) }

func (e *StatusError) IsClientError() bool { return status.IsClientError(e.Code) }

func (e *StatusError) IsServerError() bool { return status.IsServerError(e.Code) }

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.IsServerError() || e.Code == StatusRequestTimeout || e.Code == StatusTooManyRequests
}
