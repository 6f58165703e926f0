package middleware

import (
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID echoes the client's X-Request-Id, or assigns a new one.
type RequestID struct {
	generate func() string
}

func NewRequestID() *RequestID {
	return &RequestID{generate: uuid.NewString}
}

func (ri *RequestID) HandleResponse(req *request.Request, resp *response.Response) error {
	id := ""
	if req != nil {
		id = req.Headers().First(RequestIDHeader)
	}
	if id == "" {
		id = ri.generate()
	}
	resp.AddHeader(RequestIDHeader, id)
	return nil
}
