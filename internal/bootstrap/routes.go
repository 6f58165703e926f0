package bootstrap

import (
	"strings"
	"tinyhttp/internal/http/method"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
	"tinyhttp/internal/http/status"
	"tinyhttp/internal/router"
	"tinyhttp/internal/version"
)

func registerRoutes(rt router.Router) {
	rt.Handle(method.GET, "/", handleIndex)
	rt.Handle(method.GET, "/ping", handlePing)
	rt.Handle(method.OPTIONS, "/ping", handlePing)
	rt.Handle(method.HEAD, "/ping", handlePing)
	rt.Handle(method.GET, "/version", handleVersion)
	rt.Handle(method.GET, "/echo", handleEcho)
	rt.Handle(method.POST, "/echo", handleEcho)
}

func textResponse(code status.Code, body string) *response.Response {
	resp := response.NewWithDefaultHeaders(code, body)
	resp.AddHeader("Content-Type", "text/plain; charset=utf-8")
	return resp
}

func handleIndex(_ *request.Request) *response.Response {
	return textResponse(status.OK, "Hello from tinyhttp\n")
}

func handlePing(_ *request.Request) *response.Response {
	resp := response.NoBody(status.OK)
	resp.AddHeader("Access-Control-Allow-Origin", "*")
	resp.AddHeader("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
	resp.AddHeader("Access-Control-Allow-Headers", "*")
	return resp
}

func handleVersion(_ *request.Request) *response.Response {
	info := version.Current()
	resp := textResponse(status.OK, info.String()+"\n")
	resp.AddHeader("X-Version", info.Token())
	return resp
}

// handleEcho describes the parsed request back to the client.
func handleEcho(req *request.Request) *response.Response {
	var sb strings.Builder
	sb.WriteString("method: " + req.Method().String() + "\n")
	sb.WriteString("path: " + req.Path() + "\n")

	if qs := req.Query(); qs != nil {
		for _, key := range qs.Keys() {
			values, _ := qs.Get(key)
			for _, v := range values {
				sb.WriteString("query: " + key + "=" + v + "\n")
			}
		}
	}

	req.Headers().Range(func(name, value string) bool {
		sb.WriteString("header: " + name + ": " + value + "\n")
		return true
	})

	if body, ok := req.Body(); ok {
		sb.WriteString("body: " + body + "\n")
	}

	return textResponse(status.OK, sb.String())
}
