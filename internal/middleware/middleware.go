package middleware

import (
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
)

// ResponseMiddleware runs after the handler and before the response is sent.
type ResponseMiddleware interface {
	HandleResponse(req *request.Request, resp *response.Response) error
}
