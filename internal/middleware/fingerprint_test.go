package middleware

import (
	"bytes"
	"testing"
	"tinyhttp/internal/http/response"
	"tinyhttp/internal/http/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintHandleResponse(t *testing.T) {
	tests := []struct {
		name   string
		server string
	}{
		{"custom name", "edge-01"},
		{"default name", response.DefaultServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := response.NewWithDefaultHeaders(status.OK, "body")
			err := NewFingerprint(tt.server).HandleResponse(nil, resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.server, resp.Server())

			var buf bytes.Buffer
			require.NoError(t, resp.Send(&buf))
			assert.Contains(t, buf.String(), "Server: "+tt.server+"\r\n")
			assert.Equal(t, 0, resp.Headers().Len())
		})
	}
}
