package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// MetricsPath is the HTTP path the Recorder is served on.
const MetricsPath = "/metrics"

// Server exposes a Recorder over HTTP while a demo runs.
type Server struct {
	listener net.Listener
	server   *http.Server
	done     chan error
}

// Serve listens on addr and serves the recorder's metrics at MetricsPath
// from a background goroutine. Use ":0" or "127.0.0.1:0" for a free port.
func (r *Recorder) Serve(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(MetricsPath, r.WritePrometheus)

	s := &Server{
		listener: ln,
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
		done: make(chan error, 1),
	}
	go func() { s.done <- s.server.Serve(ln) }()
	return s, nil
}

// URL returns the address metrics can be scraped from.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String() + MetricsPath
}

// Shutdown stops accepting connections and waits for in-flight scrapes.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if serveErr := <-s.done; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return err
}
