package request

import "errors"

type Kind uint8

const (
	InvalidRequest Kind = iota + 1
	InvalidEncoding
	InvalidProtocol
	InvalidMethod
)

func (k Kind) message() string {
	switch k {
	case InvalidRequest:
		return "Invalid Request"
	case InvalidEncoding:
		return "Invalid Encoding"
	case InvalidProtocol:
		return "Invalid Protocol"
	case InvalidMethod:
		return "Invalid Method"
	default:
		return "Unknown Parse Error"
	}
}

// String returns a label suitable for logs and metric attributes.
func (k Kind) String() string {
	switch k {
	case InvalidRequest:
		return "invalid_request"
	case InvalidEncoding:
		return "invalid_encoding"
	case InvalidProtocol:
		return "invalid_protocol"
	case InvalidMethod:
		return "invalid_method"
	default:
		return "unknown"
	}
}

// ParseError reports why a buffer could not be parsed. It carries the kind
// only, never the offending offset.
type ParseError struct {
	Kind Kind
}

func (e *ParseError) Error() string {
	return e.Kind.message()
}

func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.Kind == e.Kind
}

var (
	ErrInvalidRequest  = &ParseError{Kind: InvalidRequest}
	ErrInvalidEncoding = &ParseError{Kind: InvalidEncoding}
	ErrInvalidProtocol = &ParseError{Kind: InvalidProtocol}
	ErrInvalidMethod   = &ParseError{Kind: InvalidMethod}
)

// KindOf extracts the parse error kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
