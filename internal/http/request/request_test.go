package request

import (
	"errors"
	"fmt"
	"testing"
	"tinyhttp/internal/http/method"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuccess(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		expectMethod  method.Method
		expectPath    string
		expectQuery   map[string][]string
		expectHeaders map[string][]string
		noHeaders     bool
		expectBody    string
	}{
		{
			name:         "search with query and host",
			data:         []byte("GET /search?name=abc&sort=1 HTTP/1.1\r\nHost: x\r\n\r\n"),
			expectMethod: method.GET,
			expectPath:   "/search",
			expectQuery: map[string][]string{
				"name": {"abc"},
				"sort": {"1"},
			},
			expectHeaders: map[string][]string{"Host": {"x"}},
		},
		{
			name:          "post with body",
			data:          []byte("POST /api HTTP/1.1\r\nContent-Type: application/json\r\n\r\n{\"a\":1}"),
			expectMethod:  method.POST,
			expectPath:    "/api",
			expectHeaders: map[string][]string{"content-type": {"application/json"}},
			expectBody:    "{\"a\":1}",
		},
		{
			name:          "body with nul padding",
			data:          append([]byte("PUT /x HTTP/1.1\r\nHost: h\r\n\r\nhello"), make([]byte, 16)...),
			expectMethod:  method.PUT,
			expectPath:    "/x",
			expectHeaders: map[string][]string{"Host": {"h"}},
			expectBody:    "hello",
		},
		{
			name:          "lf only terminators",
			data:          []byte("DELETE /items/1 HTTP/1.1\nHost: h\n\nbye"),
			expectMethod:  method.DELETE,
			expectPath:    "/items/1",
			expectHeaders: map[string][]string{"Host": {"h"}},
			expectBody:    "bye",
		},
		{
			name:         "no terminator means no headers",
			data:         []byte("HEAD / HTTP/1.1"),
			expectMethod: method.HEAD,
			expectPath:   "/",
			noHeaders:    true,
		},
		{
			name:          "empty query string",
			data:          []byte("GET /a? HTTP/1.1\r\n\r\n"),
			expectMethod:  method.GET,
			expectPath:    "/a",
			expectQuery:   map[string][]string{},
			expectHeaders: map[string][]string{},
		},
		{
			name:          "split at first question mark",
			data:          []byte("OPTIONS /a?b=c?d HTTP/1.1\r\n\r\n"),
			expectMethod:  method.OPTIONS,
			expectPath:    "/a",
			expectQuery:   map[string][]string{"b": {"c?d"}},
			expectHeaders: map[string][]string{},
		},
		{
			name:         "duplicate headers",
			data:         []byte("GET / HTTP/1.1\r\nAccept: a\r\naccept: b\r\n\r\n"),
			expectMethod: method.GET,
			expectPath:   "/",
			expectHeaders: map[string][]string{
				"ACCEPT": {"a", "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.data)
			require.NoError(t, err)
			require.NotNil(t, req)

			assert.Equal(t, tt.expectMethod, req.Method())
			assert.Equal(t, tt.expectPath, req.Path())

			if tt.expectQuery == nil {
				assert.Nil(t, req.Query())
			} else {
				require.NotNil(t, req.Query())
				assert.Equal(t, len(tt.expectQuery), req.Query().Len())
				for k, v := range tt.expectQuery {
					got, ok := req.Query().Get(k)
					assert.True(t, ok)
					assert.Equal(t, v, got)
				}
			}

			if tt.noHeaders {
				assert.Nil(t, req.Headers())
			} else {
				require.NotNil(t, req.Headers())
				assert.Equal(t, len(tt.expectHeaders), req.Headers().Len())
				for k, v := range tt.expectHeaders {
					assert.Equal(t, v, req.Headers().Values(k))
				}
			}

			body, hasBody := req.Body()
			assert.Equal(t, tt.expectBody, body)
			assert.Equal(t, tt.expectBody != "", hasBody)
		})
	}
}

func TestParsePathWithoutQuery(t *testing.T) {
	methods := []string{"GET", "DELETE", "POST", "PUT", "HEAD", "CONNECT", "OPTIONS", "TRACE", "PATCH"}
	paths := []string{"/", "/a", "/a/b/c", "/with%20escape", "*"}

	for _, m := range methods {
		for _, p := range paths {
			t.Run(m+" "+p, func(t *testing.T) {
				req, err := Parse([]byte(fmt.Sprintf("%s %s HTTP/1.1\r\n\r\n", m, p)))
				require.NoError(t, err)
				assert.Equal(t, p, req.Path())
				assert.Equal(t, m, req.Method().String())
				assert.Nil(t, req.Query())
			})
		}
	}
}

func TestParseProtocolEndsAtSpace(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"trailing space", "GET / HTTP/1.1 \r\nHost: x\r\n\r\n"},
		{"trailing text", "GET / HTTP/1.1 extra\r\nHost: x\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, "/", req.Path())
			assert.Equal(t, "x", req.Headers().First("Host"))
		})
	}
}

func TestHeadersDoesNotExposeRequestState(t *testing.T) {
	req, err := Parse([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
	require.NoError(t, err)

	h := req.Headers()
	h.Add("Host", "y")
	h.Add("X-Extra", "1")

	assert.Equal(t, []string{"x"}, req.Headers().Values("Host"))
	assert.Equal(t, 1, req.Headers().Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		expectErr error
		expectMsg string
	}{
		{"wrong protocol", []byte("GET / HTTP/1.0\r\n\r\n"), ErrInvalidProtocol, "Invalid Protocol"},
		{"protocol checked before method", []byte("FOOBAR / HTTP/2\r\n\r\n"), ErrInvalidProtocol, "Invalid Protocol"},
		{"unknown method", []byte("FOOBAR / HTTP/1.1\r\n\r\n"), ErrInvalidMethod, "Invalid Method"},
		{"lowercase method", []byte("get / HTTP/1.1\r\n\r\n"), ErrInvalidMethod, "Invalid Method"},
		{"missing target", []byte("GET HTTP/1.1\r\n\r\n"), ErrInvalidRequest, "Invalid Request"},
		{"missing protocol", []byte("GET /\r\n\r\n"), ErrInvalidRequest, "Invalid Request"},
		{"empty field", []byte("GET  / HTTP/1.1\r\n\r\n"), ErrInvalidRequest, "Invalid Request"},
		{"empty buffer", []byte{}, ErrInvalidRequest, "Invalid Request"},
		{"blank line only", []byte("\r\n"), ErrInvalidRequest, "Invalid Request"},
		{"invalid utf8", []byte{'G', 'E', 'T', ' ', 0xff, 0xfe, ' ', 'H'}, ErrInvalidEncoding, "Invalid Encoding"},
		{"invalid utf8 in header", []byte("GET / HTTP/1.1\r\nX: \xc3\x28\r\n\r\n"), ErrInvalidEncoding, "Invalid Encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.data)
			assert.Nil(t, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, tt.expectMsg, err.Error())
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	_, err := Parse([]byte("GET / HTTP/1.0\r\n"))
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, InvalidProtocol, kind)
	assert.Equal(t, "invalid_protocol", kind.String())

	assert.False(t, errors.Is(err, ErrInvalidMethod))

	wrapped := fmt.Errorf("reading request: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidProtocol)
	kind, ok = KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, InvalidProtocol, kind)

	_, ok = KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "invalid_request", InvalidRequest.String())
	assert.Equal(t, "invalid_encoding", InvalidEncoding.String())
	assert.Equal(t, "invalid_method", InvalidMethod.String())
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "Unknown Parse Error", (&ParseError{}).Error())
}

func TestParseCopiesBuffer(t *testing.T) {
	buf := []byte("GET /keep?a=1 HTTP/1.1\r\nHost: h\r\n\r\n")
	req, err := Parse(buf)
	require.NoError(t, err)

	for i := range buf {
		buf[i] = 'z'
	}

	assert.Equal(t, "/keep", req.Path())
	assert.Equal(t, "1", req.Query().First("a"))
	assert.Equal(t, "h", req.Headers().First("host"))
}
