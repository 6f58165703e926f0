package transport

import (
	"context"
	"errors"
	"net"
	"time"
	"tinyhttp/internal/config"
	"tinyhttp/internal/http/request"
	"tinyhttp/internal/http/response"
	"tinyhttp/internal/http/status"
	"tinyhttp/internal/http/stream"
	"tinyhttp/internal/logging"
	"tinyhttp/internal/metrics"
	"tinyhttp/internal/middleware"
	"tinyhttp/internal/router"

	"github.com/sirupsen/logrus"
)

type httpHandler struct {
	router       router.Router
	recorder     metrics.Recorder
	readTimeout  time.Duration
	writeTimeout time.Duration
	bufferSize   int
	serverName   string
	log          *logrus.Entry
}

func newHTTPHandler(conf config.Config, rt router.Router, recorder metrics.Recorder) *httpHandler {
	return &httpHandler{
		router:       rt,
		recorder:     recorder,
		readTimeout:  conf.ReadTimeout(),
		writeTimeout: conf.WriteTimeout(),
		bufferSize:   conf.BufferSize(),
		serverName:   conf.ServerName(),
		log:          logging.Get("transport"),
	}
}

// handler serves exactly one request per connection.
func (hh *httpHandler) handler(conn net.Conn) {
	defer hh.closeConnection(conn)
	ctx := context.Background()
	log := hh.log.WithField("remote", conn.RemoteAddr().String())

	if err := conn.SetReadDeadline(time.Now().Add(hh.readTimeout)); err != nil {
		log.WithError(err).Warn("Failed to set read deadline")
	}

	frame, err := stream.ReadFrame(conn, hh.bufferSize)
	if err != nil {
		resp := hh.readFailure(err)
		if resp == nil {
			log.WithError(err).Debug("Connection closed before a request was read")
			return
		}
		log.WithError(err).Info("Failed to read request")
		hh.send(ctx, conn, nil, resp, log)
		return
	}

	req, err := request.Parse(frame)
	if err != nil {
		kind, _ := request.KindOf(err)
		hh.recorder.ParseError(ctx, kind)
		log.WithField("kind", kind.String()).Info("Rejected malformed request")
		hh.send(ctx, conn, nil, response.NewWithDefaultHeaders(status.BadRequest, err.Error()), log)
		return
	}

	log = log.WithFields(logrus.Fields{
		"method": req.Method().String(),
		"path":   req.Path(),
	})

	resp := hh.router.Serve(req)
	if resp == nil {
		log.Error("Handler returned no response")
		resp = response.NoBody(status.InternalServerError)
	}
	hh.send(ctx, conn, req, resp, log)
}

// readFailure maps a framing error to a response, or nil when the peer is
// gone and nothing should be written.
func (hh *httpHandler) readFailure(err error) *response.Response {
	var ne net.Error
	switch {
	case errors.Is(err, stream.ErrFrameTooLarge):
		return response.NewWithDefaultHeaders(status.RequestHeaderFieldsTooLarge, status.RequestHeaderFieldsTooLarge.ReasonPhrase())
	case errors.As(err, &ne) && ne.Timeout():
		return response.NoBody(status.RequestTimeout)
	default:
		return nil
	}
}

func (hh *httpHandler) send(ctx context.Context, conn net.Conn, req *request.Request, resp *response.Response, log *logrus.Entry) {
	hh.applyMiddlewares(conn, req, resp, log)
	resp.AddHeader("Connection", "close")

	if err := conn.SetWriteDeadline(time.Now().Add(hh.writeTimeout)); err != nil {
		log.WithError(err).Warn("Failed to set write deadline")
	}

	if err := resp.Send(conn); err != nil {
		log.WithError(err).Warn("Failed to send response")
		return
	}
	hh.recorder.Response(ctx, resp.Status())
	log.WithField("status", resp.Status().Code()).Debug("Response sent")
}

func (hh *httpHandler) middlewares(conn net.Conn) []middleware.ResponseMiddleware {
	return []middleware.ResponseMiddleware{
		middleware.NewFingerprint(hh.serverName),
		middleware.NewRequestID(),
		middleware.NewForwardedFor(conn.RemoteAddr()),
	}
}

func (hh *httpHandler) applyMiddlewares(conn net.Conn, req *request.Request, resp *response.Response, log *logrus.Entry) {
	for _, m := range hh.middlewares(conn) {
		if err := m.HandleResponse(req, resp); err != nil {
			log.WithError(err).Warn("Error when applying response middleware")
		}
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		hh.log.WithError(err).Error("Error closing connection")
	}
}
