package dogapi

import "errors"

// ErrorKind identifies which stage of a request failed.
type ErrorKind string

const (
	// TransportError means the request could not be sent or the response
	// could not be read. The message is the transport's diagnostic.
	TransportError = ErrorKind("transport")

	// DecodeError means the response body was not valid JSON or did not have
	// the shape the operation expected.
	DecodeError = ErrorKind("decode")

	// APIError means the Dog API answered with a status other than
	// "success". The message is the text the Dog API sent back.
	APIError = ErrorKind("api")
)

// These can be used with errors.Is to check the kind of an error returned by
// the client without needing to use errors.As.
var (
	ErrTransport = errors.New("dog api transport error")
	ErrDecode    = errors.New("dog api decode error")
	ErrAPI       = errors.New("dog api error")
)

// fallbackMessage is used whenever the Dog API response can't supply a usable
// message of its own.
const fallbackMessage = "Something went wrong while reading json"

// Error is the error type returned by every Client operation.
type Error struct {
	Kind    ErrorKind
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	return string(e.Kind) + " error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == TransportError
	case ErrDecode:
		return e.Kind == DecodeError
	case ErrAPI:
		return e.Kind == APIError
	}
	return false
}

func newTransportError(err error) *Error {
	return &Error{Kind: TransportError, Message: err.Error(), Err: err}
}

// newDecodeError creates a DecodeError. If err is not nil its message is
// appended to the fallback text so the parser's detail is not lost.
func newDecodeError(err error) *Error {
	if err == nil {
		return &Error{Kind: DecodeError, Message: fallbackMessage}
	}
	return &Error{Kind: DecodeError, Message: fallbackMessage + ": " + err.Error(), Err: err}
}

func newAPIError(message string) *Error {
	return &Error{Kind: APIError, Message: message}
}
