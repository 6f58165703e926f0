package request

import (
	"strings"
	"tinyhttp/internal/http/header"
	"tinyhttp/internal/http/method"
	"tinyhttp/internal/http/query"
	"unicode/utf8"
)

const Protocol = "HTTP/1.1"

// Request is an immutable view of a parsed HTTP/1.1 request. Every string it
// exposes is a substring of one copy of the parsed buffer, so the caller may
// reuse that buffer once Parse returns.
type Request struct {
	path    string
	query   *query.QueryString
	method  method.Method
	headers *header.Headers
	body    string
	hasBody bool
}

func (r *Request) Path() string {
	return r.path
}

func (r *Request) Method() method.Method {
	return r.method
}

// Query is nil when the target carried no '?'.
func (r *Request) Query() *query.QueryString {
	return r.query
}

// Headers returns a copy of the parsed headers, so adding to it leaves the
// request unchanged. It is nil when nothing followed the request line terminator.
func (r *Request) Headers() *header.Headers {
	return r.headers.Clone()
}

func (r *Request) Body() (string, bool) {
	return r.body, r.hasBody
}

// Parse reads "METHOD SP TARGET SP HTTP/1.1 CRLF headers CRLF [body]" from buf.
func Parse(buf []byte) (*Request, error) {
	if !utf8.Valid(buf) {
		return nil, ErrInvalidEncoding
	}
	raw := string(buf)

	startLine, rest, hasRest := cutLine(raw)

	methodToken, startLine, ok := nextWord(startLine)
	if !ok {
		return nil, ErrInvalidRequest
	}
	target, startLine, ok := nextWord(startLine)
	if !ok {
		return nil, ErrInvalidRequest
	}
	protocol, _, ok := nextWord(startLine)
	if !ok {
		return nil, ErrInvalidRequest
	}

	if protocol != Protocol {
		return nil, ErrInvalidProtocol
	}

	m, err := method.Parse(methodToken)
	if err != nil {
		return nil, ErrInvalidMethod
	}

	req := &Request{
		path:   target,
		method: m,
	}

	if i := strings.IndexByte(target, '?'); i != -1 {
		req.path = target[:i]
		req.query = query.Parse(target[i+1:])
	}

	if hasRest {
		req.headers = header.Parse(rest)
		req.body, req.hasBody = findBody(rest)
	}

	return req, nil
}

// cutLine splits s after its first line terminator (LF, optionally preceded by CR).
func cutLine(s string) (line, rest string, found bool) {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return strings.TrimSuffix(s, "\r"), "", false
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
}

// nextWord returns the text up to the first space or CR and what follows it.
// An empty word counts as missing.
func nextWord(s string) (word, rest string, ok bool) {
	i := strings.IndexAny(s, " \r")
	if i == -1 {
		return s, "", s != ""
	}
	return s[:i], s[i+1:], i > 0
}

// findBody locates the text after the first blank line of the header block.
// NUL padding left by fixed-size read buffers is dropped.
func findBody(block string) (string, bool) {
	for {
		line, rest, found := cutLine(block)
		if line == "" && found {
			body := strings.TrimRight(rest, "\x00")
			return body, body != ""
		}
		if !found {
			return "", false
		}
		block = rest
	}
}
