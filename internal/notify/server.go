package notify

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"

	"go.uber.org/zap"

	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

// Widget is the RPC receiver other processes call to poke a running board.
// Handlers never mutate the engine directly; every change goes through the
// widget's intake queue and is applied by the render loop.
type Widget struct {
	state *widget.State
	log   *zap.Logger
}

// Notify validates and queues a seed request, then reports the published
// board counters. Unknown patterns and negative row counts come back as RPC
// errors so the notifier knows its request went nowhere.
func (w *Widget) Notify(req NotifyRequest, res *NotifyResponse) error {
	if req.Rows < 0 {
		return fmt.Errorf("rows must be non-negative, got %d", req.Rows)
	}
	if req.Pattern != "" && !w.state.HasPattern(req.Pattern) {
		return fmt.Errorf("unknown pattern %q", req.Pattern)
	}
	accepted := w.state.Enqueue(widget.SeedRequest{Source: req.Source, Pattern: req.Pattern, Rows: req.Rows})
	if !accepted {
		w.log.Warn("seed request dropped, queue full", zap.String("source", req.Source))
	}
	res.Accepted = accepted
	res.Alive = w.state.Alive()
	res.Generation = w.state.Generation()
	return nil
}

// State reports the board dimensions and published counters.
func (w *Widget) State(req StateRequest, res *StateResponse) error {
	res.Alive = w.state.Alive()
	res.Generation = w.state.Generation()
	res.Width, res.Height = w.state.Size()
	return nil
}

// Clear queues a request to wipe the board.
func (w *Widget) Clear(req ClearRequest, res *ClearResponse) error {
	accepted := w.state.Enqueue(widget.SeedRequest{Source: req.Source, Clear: true})
	if !accepted {
		w.log.Warn("clear request dropped, queue full", zap.String("source", req.Source))
	}
	res.Accepted = accepted
	return nil
}

// Server accepts TCP connections and serves the Widget receiver. Each server
// carries its own rpc registry, so multiple instances can coexist in one
// process.
type Server struct {
	listener net.Listener
	rpc      *rpc.Server
	log      *zap.Logger
}

// NewServer binds addr and registers the widget receiver.
func NewServer(addr string, state *widget.State, log *zap.Logger) (*Server, error) {
	srv := rpc.NewServer()
	if err := srv.Register(&Widget{state: state, log: log}); err != nil {
		return nil, fmt.Errorf("notify: register rpc: %w", err)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("notify: listen %s: %w", addr, err)
	}
	return &Server{listener: ln, rpc: srv, log: log}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Serve accepts connections until Close is called. It is meant to run on its
// own goroutine.
func (s *Server) Serve() {
	s.log.Info("notify service listening", zap.String("addr", s.listener.Addr().String()))
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Warn("accept failed", zap.Error(err))
			continue
		}
		go s.rpc.ServeConn(conn)
	}
}

// Close stops accepting connections.
func (s *Server) Close() error { return s.listener.Close() }

// Client wraps an rpc connection to a running widget.
type Client struct {
	rc *rpc.Client
}

// Dial connects to a widget's notify address.
func Dial(addr string) (*Client, error) {
	rc, err := rpc.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("notify: dial %s: %w", addr, err)
	}
	return &Client{rc: rc}, nil
}

// Notify asks the widget to seed fresh cells.
func (c *Client) Notify(source, pattern string, rows int) (*NotifyResponse, error) {
	res := new(NotifyResponse)
	req := NotifyRequest{Source: source, Pattern: pattern, Rows: rows}
	if err := c.rc.Call(NotifyMethod, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// State fetches the widget's published counters.
func (c *Client) State() (*StateResponse, error) {
	res := new(StateResponse)
	if err := c.rc.Call(StateMethod, StateRequest{}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Clear asks the widget to wipe its board.
func (c *Client) Clear(source string) (*ClearResponse, error) {
	res := new(ClearResponse)
	if err := c.rc.Call(ClearMethod, ClearRequest{Source: source}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Close tears down the connection.
func (c *Client) Close() error { return c.rc.Close() }
