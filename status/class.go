package status

// Class is the numeric band a status code falls into.
type Class int

const (
	ClassUnknown Class = iota
	ClassInformational
	ClassSuccess
	ClassRedirection
	ClassClientError
	ClassServerError
)

// ClassOf returns the band for code. Codes below 100 or at 600 and above are
// ClassUnknown.
func ClassOf(code int) Class {
	switch {
	case IsInformational(code):
		return ClassInformational
	case IsSuccess(code):
		return ClassSuccess
	case IsRedirection(code):
		return ClassRedirection
	case IsClientError(code):
		return ClassClientError
	case IsServerError(code):
		return ClassServerError
	default:
		return ClassUnknown
	}
}

func (c Class) String() string {
	switch c {
	case ClassInformational:
		return "informational"
	case ClassSuccess:
		return "success"
	case ClassRedirection:
		return "redirection"
	case ClassClientError:
		return "client_error"
	case ClassServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// IsError reports whether the class is a client or server error.
func (c Class) IsError() bool {
	return c == ClassClientError || c == ClassServerError
}
