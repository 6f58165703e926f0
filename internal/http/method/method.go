package method

import "errors"

var ErrUnknownMethod = errors.New("unknown method")

type Method uint8

const (
	GET Method = iota + 1
	DELETE
	POST
	PUT
	HEAD
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var names = [...]string{
	GET:     "GET",
	DELETE:  "DELETE",
	POST:    "POST",
	PUT:     "PUT",
	HEAD:    "HEAD",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

// Parse matches token against the known verbs. The match is case-sensitive.
func Parse(token string) (Method, error) {
	for m := GET; m <= PATCH; m++ {
		if names[m] == token {
			return m, nil
		}
	}
	return 0, ErrUnknownMethod
}

func (m Method) String() string {
	if m < GET || m > PATCH {
		return "UNKNOWN"
	}
	return names[m]
}
