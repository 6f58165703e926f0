package router

import (
	"sort"
	"strings"
	"tinyhttp/internal/http/method"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
	"tinyhttp/internal/http/status"
)

type HandlerFunc func(req *request.Request) *response.Response

type Router interface {
	Handle(m method.Method, path string, h HandlerFunc)
	Serve(req *request.Request) *response.Response
}

type router struct {
	routes map[string]map[method.Method]HandlerFunc
}

func New() Router {
	return &router{
		routes: make(map[string]map[method.Method]HandlerFunc),
	}
}

// Handle registers h for an exact method and path. Registering the same pair
// twice replaces the earlier handler.
func (rt *router) Handle(m method.Method, path string, h HandlerFunc) {
	byMethod, ok := rt.routes[path]
	if !ok {
		byMethod = make(map[method.Method]HandlerFunc)
		rt.routes[path] = byMethod
	}
	byMethod[m] = h
}

func (rt *router) Serve(req *request.Request) *response.Response {
	byMethod, ok := rt.routes[req.Path()]
	if !ok {
		return response.NewWithDefaultHeaders(status.NotFound, status.NotFound.ReasonPhrase())
	}

	h, ok := byMethod[req.Method()]
	if !ok {
		resp := response.NewWithDefaultHeaders(status.MethodNotAllowed, status.MethodNotAllowed.ReasonPhrase())
		resp.AddHeader("Allow", allowed(byMethod))
		return resp
	}

	return h(req)
}

func allowed(byMethod map[method.Method]HandlerFunc) string {
	names := make([]string, 0, len(byMethod))
	for m := range byMethod {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
