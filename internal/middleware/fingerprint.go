package middleware

import (
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
)

type Fingerprint struct {
	server string
}

func NewFingerprint(server string) *Fingerprint {
	return &Fingerprint{server: server}
}

func (f *Fingerprint) HandleResponse(_ *request.Request, resp *response.Response) error {
	resp.Apply(response.WithServer(f.server))
	return nil
}
