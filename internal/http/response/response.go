package response

import (
	"fmt"
	"io"
	"strconv"
	"time"
	"tinyhttp/internal/http/header"
	"tinyhttp/internal/http/status"
)

const (
	DefaultServer = "tinyhttp"

	// DateFormat is RFC 2822 with a numeric zone.
	DateFormat = time.RFC1123Z
)

type Option func(*Response)

// WithServer overrides the Server header value.
func WithServer(name string) Option {
	return func(r *Response) {
		r.server = name
	}
}

// WithClock replaces the time source used for the Date header.
func WithClock(now func() time.Time) Option {
	return func(r *Response) {
		r.now = now
	}
}

// Response is built by a handler and written once with Send. Date, Server and
// Content-Length are generated on every Send and are not part of Headers.
type Response struct {
	code    status.Code
	body    string
	headers *header.Headers
	server  string
	now     func() time.Time
}

func New(code status.Code, body string, headers *header.Headers, opts ...Option) *Response {
	if headers == nil {
		headers = header.New()
	}
	r := &Response{
		code:    code,
		body:    body,
		headers: headers,
		server:  DefaultServer,
		now:     time.Now,
	}
	r.Apply(opts...)
	return r
}

// Apply sets options after construction, e.g. from a middleware.
func (r *Response) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(r)
	}
}

// Server returns the value the Server header will carry.
func (r *Response) Server() string {
	return r.server
}

func NewWithDefaultHeaders(code status.Code, body string, opts ...Option) *Response {
	return New(code, body, header.New(), opts...)
}

func NoBody(code status.Code, opts ...Option) *Response {
	return New(code, "", header.New(), opts...)
}

func (r *Response) AddHeader(name, value string) {
	r.headers.Add(name, value)
}

func (r *Response) Status() status.Code {
	return r.code
}

func (r *Response) Body() string {
	return r.body
}

// Headers returns the caller-supplied headers only.
func (r *Response) Headers() *header.Headers {
	return r.headers
}

func (r *Response) defaultHeaders() *header.Headers {
	h := header.New()
	h.Add("Date", r.now().UTC().Format(DateFormat))
	h.Add("Server", r.server)
	h.Add("Content-Length", strconv.Itoa(len(r.body)))
	return h
}

// Finalize renders the full wire message. Content-Length is the exact byte
// length of the body.
func (r *Response) Finalize() []byte {
	defaults := r.defaultHeaders()
	statusLine := "HTTP/1.1 " + r.code.String() + " " + r.code.ReasonPhrase() + "\r\n"

	size := len(statusLine) + 2 + len(r.body)
	for _, h := range []*header.Headers{defaults, r.headers} {
		h.Range(func(name, value string) bool {
			size += len(name) + 2 + len(value) + 2
			return true
		})
	}

	buf := make([]byte, 0, size)
	buf = append(buf, statusLine...)
	for _, h := range []*header.Headers{defaults, r.headers} {
		h.Range(func(name, value string) bool {
			buf = append(buf, name...)
			buf = append(buf, ':', ' ')
			buf = append(buf, value...)
			buf = append(buf, '\r', '\n')
			return true
		})
	}
	buf = append(buf, '\r', '\n')
	buf = append(buf, r.body...)
	return buf
}

// Send writes the response to w. A failed write may leave a prefix of the
// message on w; the caller should discard the connection.
func (r *Response) Send(w io.Writer) error {
	if _, err := w.Write(r.Finalize()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
