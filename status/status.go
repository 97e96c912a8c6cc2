// Package status maps numeric HTTP status codes to their reason phrases and
// classifies codes into the five standard bands.
package status

import (
	"cmp"
	"slices"
)

// UnknownReason is returned by ReasonPhrase for codes absent from the table.
const UnknownReason = "Unknown HTTP Status Code"

// Entry pairs a status code with its reason phrase.
type Entry struct {
	Code   int
	Reason string
}

// table must stay strictly ascending by Code; Lookup binary-searches it.
var table = [...]Entry{
	{0, "No Response / Unknown Error"},
	{100, "Continue"},
	{101, "Switching Protocols"},
	{102, "Processing"},
	{103, "Early Hints"},
	{200, "OK"},
	{201, "Created"},
	{202, "Accepted"},
	{203, "Non-Authoritative Information"},
	{204, "No Content"},
	{205, "Reset Content"},
	{206, "Partial Content"},
	{207, "Multi-Status"},
	{208, "Already Reported"},
	{226, "IM Used"},
	{300, "Multiple Choices"},
	{301, "Moved Permanently"},
	{302, "Found"},
	{303, "See Other"},
	{304, "Not Modified"},
	{305, "Use Proxy"},
	{307, "Temporary Redirect"},
	{308, "Permanent Redirect"},
	{400, "Bad Request"},
	{401, "Unauthorized"},
	{402, "Payment Required"},
	{403, "Forbidden"},
	{404, "Not Found"},
	{405, "Method Not Allowed"},
	{406, "Not Acceptable"},
	{407, "Proxy Authentication Required"},
	{408, "Request Timeout"},
	{409, "Conflict"},
	{410, "Gone"},
	{411, "Length Required"},
	{412, "Precondition Failed"},
	{413, "Payload Too Large"},
	{414, "URI Too Long"},
	{415, "Unsupported Media Type"},
	{416, "Range Not Satisfiable"},
	{417, "Expectation Failed"},
	{418, "I'm a teapot"},
	{421, "Misdirected Request"},
	{422, "Unprocessable Entity"},
	{423, "Locked"},
	{424, "Failed Dependency"},
	{425, "Too Early"},
	{426, "Upgrade Required"},
	{428, "Precondition Required"},
	{429, "Too Many Requests"},
	{431, "Request Header Fields Too Large"},
	{451, "Unavailable For Legal Reasons"},
	{500, "Internal Server Error"},
	{501, "Not Implemented"},
	{502, "Bad Gateway"},
	{503, "Service Unavailable"},
	{504, "Gateway Timeout"},
	{505, "HTTP Version Not Supported"},
	{506, "Variant Also Negotiates"},
	{507, "Insufficient Storage"},
	{508, "Loop Detected"},
	{510, "Not Extended"},
	{511, "Network Authentication Required"},
}

// Lookup returns the reason phrase for code and whether the code is known.
func Lookup(code int) (string, bool) {
	i, ok := slices.BinarySearchFunc(table[:], code, func(e Entry, c int) int {
		return cmp.Compare(e.Code, c)
	})
	if !ok {
		return "", false
	}
	return table[i].Reason, true
}

// ReasonPhrase returns the standard reason phrase for code, or UnknownReason
// when the code is not in the table. Code 0 has its own phrase.
func ReasonPhrase(code int) string {
	if reason, ok := Lookup(code); ok {
		return reason
	}
	return UnknownReason
}

// Known reports whether code has a reason phrase.
func Known(code int) bool {
	_, ok := Lookup(code)
	return ok
}

// Entries returns a copy of the table in ascending code order.
func Entries() []Entry {
	return slices.Clone(table[:])
}

// IsInformational reports whether code is 1xx.
func IsInformational(code int) bool { return code >= 100 && code < 200 }

// IsSuccess reports whether code is 2xx.
func IsSuccess(code int) bool { return code >= 200 && code < 300 }

// IsRedirection reports whether code is 3xx.
func IsRedirection(code int) bool { return code >= 300 && code < 400 }

// IsClientError reports whether code is 4xx.
func IsClientError(code int) bool { return code >= 400 && code < 500 }

// IsServerError reports whether code is 5xx.
func IsServerError(code int) bool { return code >= 500 && code < 600 }

// IsError reports whether code is a client or server error.
func IsError(code int) bool { return IsClientError(code) || IsServerError(code) }
