package transport

import (
	"errors"
	"net"
	"tinyhttp/internal/config"
	"tinyhttp/internal/logging"
	"tinyhttp/internal/metrics"
	"tinyhttp/internal/router"

	"golang.org/x/net/netutil"
)

type httpServer struct {
	handler        *httpHandler
	port           string
	maxConnections int
}

func NewHTTPServer(conf config.Config, rt router.Router, recorder metrics.Recorder) Transport {
	return &httpServer{
		handler:        newHTTPHandler(conf, rt, recorder),
		port:           conf.HTTPPort(),
		maxConnections: conf.MaxConnections(),
	}
}

// Listen opens the TCP listener, capped at MaxConnections concurrent
// connections when the limit is positive.
func (ht *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+ht.port)
	if err != nil {
		return nil, err
	}
	if ht.maxConnections > 0 {
		ln = netutil.LimitListener(ln, ht.maxConnections)
	}
	return ln, nil
}

func (ht *httpServer) Serve(listener net.Listener) error {
	log := logging.Get("transport")
	log.Infof("HTTP server is starting on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.WithError(err).Error("Error accepting connection")
			continue
		}

		go ht.handler.handler(conn)
	}
}
