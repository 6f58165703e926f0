package middleware

import (
	"net"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
)

// ForwardedFor reports the peer address back to the client.
type ForwardedFor struct {
	addr net.Addr
}

func NewForwardedFor(addr net.Addr) *ForwardedFor {
	return &ForwardedFor{addr: addr}
}

func (ff *ForwardedFor) HandleResponse(_ *request.Request, resp *response.Response) error {
	host, _, err := net.SplitHostPort(ff.addr.String())
	if err != nil {
		return err
	}
	resp.AddHeader("X-Forwarded-For", host)
	return nil
}
