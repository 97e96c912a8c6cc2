package httpx

import (
	"github.com/labstack/echo/v4"

	"github.com/adeilh/go-httpstatus/status"
)

// DefaultStatusPrefix is where clients look for the lookup routes unless
// told otherwise.
const DefaultStatusPrefix = "/statuses"

// StatusInfo describes a status code as served by the lookup routes.
type StatusInfo struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
	Class  string `json:"class"`
	Known  bool   `json:"known"`
	Error  bool   `json:"error"`
}

// DescribeStatus builds a StatusInfo for any integer code.
func DescribeStatus(code int) StatusInfo {
	reason, known := status.Lookup(code)
	if !known {
		reason = status.UnknownReason
	}
	return StatusInfo{
		Code:   code,
		Reason: reason,
		Class:  status.ClassOf(code).String(),
		Known:  known,
		Error:  status.IsError(code),
	}
}

// StatusRoutes mounts the lookup endpoints on r:
//
//	GET <prefix>        every known code in ascending order
//	GET <prefix>/:code  one code; unknown codes still answer 200
func StatusRoutes(r *Router) {
	r.GET("", listStatuses).GET("/:code", getStatus)
}

func listStatuses(c Context) error {
	entries := status.Entries()
	out := make([]StatusInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, DescribeStatus(e.Code))
	}
	return c.JSON(StatusOK, out)
}

func getStatus(c Context) error {
	var code int
	if err := echo.PathParamsBinder(c).MustInt("code", &code).BindError(); err != nil {
		return HTTPError(StatusBadRequest, "invalid status code: "+c.Param("code"))
	}
	return c.JSON(StatusOK, DescribeStatus(code))
}
