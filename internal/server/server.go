// Package server speaks MCP over newline-delimited JSON-RPC and routes tool calls
// to the dispatcher.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/golovatskygroup/mcp-frontend/internal/config"
	"github.com/golovatskygroup/mcp-frontend/internal/dispatch"
	"github.com/golovatskygroup/mcp-frontend/internal/journal"
	"github.com/golovatskygroup/mcp-frontend/internal/logging"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// Options configures a Server built around an existing dispatcher.
type Options struct {
	Name    string
	Version string
	// MaxConcurrentCalls bounds running tool calls. Zero means unbounded.
	MaxConcurrentCalls int
	// Journal backs the journal://recent resource. Optional.
	Journal *journal.Journal
	Logger  *logging.Logger
}

// Server is the MCP front end
type Server struct {
	transport  *mcp.Transport
	dispatcher *dispatch.Dispatcher
	journal    *journal.Journal
	backend    *Backend
	log        *logging.Logger

	name    string
	version string
	slots   *semaphore.Weighted // nil when unbounded

	mu       sync.Mutex
	seq      uint64
	inflight map[string]map[uint64]context.CancelFunc
}

// New builds the backend described by cfg and a server reading requests from in
// and writing responses to out.
func New(cfg config.Config, in io.Reader, out io.Writer, log *logging.Logger) (*Server, error) {
	b, err := NewBackend(cfg, log)
	if err != nil {
		return nil, err
	}
	s := NewWithDispatcher(b.Dispatcher, in, out, Options{
		Name:               cfg.Server.Name,
		Version:            cfg.Server.Version,
		MaxConcurrentCalls: cfg.Server.MaxConcurrentCalls,
		Journal:            b.Journal,
		Logger:             log,
	})
	s.backend = b
	return s, nil
}

// NewWithDispatcher wires a server to a dispatcher the caller owns.
func NewWithDispatcher(d *dispatch.Dispatcher, in io.Reader, out io.Writer, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Name == "" {
		opts.Name = "mcp-frontend"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	s := &Server{
		transport:  mcp.NewTransport(in, out),
		dispatcher: d,
		journal:    opts.Journal,
		log:        opts.Logger,
		name:       opts.Name,
		version:    opts.Version,
		inflight:   make(map[string]map[uint64]context.CancelFunc),
	}
	if opts.MaxConcurrentCalls > 0 {
		s.slots = semaphore.NewWeighted(int64(opts.MaxConcurrentCalls))
	}
	return s
}

// Close releases what New built. It is a no-op for NewWithDispatcher servers.
func (s *Server) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

type inbound struct {
	req *mcp.Request
	err error
}

// Run serves requests until the input ends or ctx is cancelled. Tool calls run
// concurrently; Run waits for all of them before returning.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan inbound)
	go s.readLoop(ctx, msgs)

	var calls errgroup.Group
	s.log.Info("serving", "name", s.name, "version", s.version, "tools", s.dispatcher.Catalog().Len())

	for {
		select {
		case <-ctx.Done():
			s.cancelAll()
			_ = calls.Wait()
			s.log.Info("shutting down", "reason", ctx.Err())
			return nil

		case m, ok := <-msgs:
			if !ok {
				_ = calls.Wait()
				s.log.Info("input closed")
				return nil
			}
			if m.err != nil {
				if !errors.Is(m.err, mcp.ErrMalformedMessage) {
					s.cancelAll()
					_ = calls.Wait()
					return fmt.Errorf("read message: %w", m.err)
				}
				s.rejectMalformed(m.req, m.err)
				continue
			}
			s.handle(ctx, &calls, m.req)
		}
	}
}

func (s *Server) readLoop(ctx context.Context, out chan<- inbound) {
	defer close(out)
	for {
		req, err := s.transport.ReadMessage()
		if errors.Is(err, io.EOF) {
			return
		}
		select {
		case out <- inbound{req: req, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !errors.Is(err, mcp.ErrMalformedMessage) {
			return
		}
	}
}

func (s *Server) rejectMalformed(req *mcp.Request, err error) {
	s.log.Warn("malformed message", "error", err)
	if req == nil {
		s.write(mcp.NewErrorResponse(nil, mcp.ParseError, "Parse error: "+err.Error()))
		return
	}
	s.write(mcp.NewErrorResponse(req.ID, mcp.InvalidRequest, "Invalid request: missing method"))
}

func (s *Server) handle(ctx context.Context, calls *errgroup.Group, req *mcp.Request) {
	if req.IsNotification() {
		s.handleNotification(req)
		return
	}

	switch req.Method {
	case "initialize":
		s.write(s.handleInitialize(req))
	case "ping":
		s.write(s.handlePing(req))
	case "tools/list":
		s.write(s.handleListTools(req))
	case "tools/call":
		s.startCall(ctx, calls, req)
	case "resources/list":
		s.write(s.handleListResources(req))
	case "resources/read":
		s.write(s.handleReadResource(ctx, req))
	default:
		s.write(mcp.NewErrorResponse(req.ID, mcp.MethodNotFound, fmt.Sprintf("Method not found: %s", req.Method)))
	}
}

func (s *Server) handleNotification(req *mcp.Request) {
	switch req.Method {
	case "notifications/initialized":
		s.log.Debug("client initialized")
	case "notifications/cancelled":
		var params mcp.CancelledParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.log.Warn("bad cancel notification", "error", err)
			return
		}
		if s.cancel(requestKey(params.RequestID)) {
			s.log.Info("call cancelled by client", "request_id", params.RequestID, "reason", params.Reason)
		}
	default:
		s.log.Debug("ignoring notification", "method", req.Method)
	}
}

func (s *Server) handleInitialize(req *mcp.Request) *mcp.Response {
	var params mcp.InitializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return mcp.NewErrorResponse(req.ID, mcp.InvalidParams, "Invalid params: "+err.Error())
		}
	}
	s.log.Info("initialize", "client", params.ClientInfo.Name, "client_version", params.ClientInfo.Version, "protocol", params.ProtocolVersion)

	result := mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities: mcp.ServerCapabilities{
			Tools:     &mcp.ToolsCapability{},
			Resources: &mcp.ResourcesCapability{},
		},
		ServerInfo: mcp.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Instructions: s.buildInstructions(),
	}
	return s.respond(req.ID, result)
}

func (s *Server) handlePing(req *mcp.Request) *mcp.Response {
	return s.respond(req.ID, map[string]any{})
}

func (s *Server) handleListTools(req *mcp.Request) *mcp.Response {
	return s.respond(req.ID, mcp.ListToolsResult{Tools: s.dispatcher.ListTools()})
}

// startCall answers bad params inline and otherwise runs the call on the group.
// The response is written from the call's goroutine, so responses may arrive
// out of request order.
func (s *Server) startCall(ctx context.Context, calls *errgroup.Group, req *mcp.Request) {
	var params mcp.CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.write(mcp.NewErrorResponse(req.ID, mcp.InvalidParams, "Invalid params: "+err.Error()))
		return
	}

	key := requestKey(req.ID)
	callCtx, cancel := context.WithCancel(ctx)
	token := s.track(key, cancel)

	calls.Go(func() error {
		defer s.untrack(key, token)
		defer cancel()

		s.write(s.respond(req.ID, s.runCall(callCtx, params)))
		return nil
	})
}

func (s *Server) runCall(ctx context.Context, params mcp.CallToolParams) *mcp.CallToolResult {
	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return mcp.ErrorResult(fmt.Sprintf("Error: tool %s cancelled: %v", params.Name, err))
		}
		defer s.slots.Release(1)
	}
	return s.dispatcher.CallTool(ctx, params.Name, params.Arguments)
}

func (s *Server) buildInstructions() string {
	cat := s.dispatcher.Catalog()

	var sb strings.Builder
	sb.WriteString("Frontend development tools for React, Tailwind CSS, package.json maintenance and React Flow layouts.\n\n")
	sb.WriteString("Use search_tools to find a tool by keyword or category and describe_tool to read its full schema.\n\n")
	sb.WriteString("Available categories:\n")
	for _, c := range cat.Categories() {
		fmt.Fprintf(&sb, "- %s (%d tools): %s\n", c.Name, len(c.Tools), c.Description)
	}
	fmt.Fprintf(&sb, "\nTotal available tools: %d\n", cat.Len())
	return sb.String()
}

func (s *Server) respond(id any, result any) *mcp.Response {
	resp, err := mcp.NewResponse(id, result)
	if err != nil {
		return mcp.NewErrorResponse(id, mcp.InternalError, err.Error())
	}
	return resp
}

func (s *Server) write(resp *mcp.Response) {
	if resp == nil {
		return
	}
	if err := s.transport.WriteResponse(resp); err != nil {
		s.log.Error("failed to write response", "id", resp.ID, "error", err)
	}
}

// requestKey keys a JSON-RPC id by its JSON encoding, so the string "7" and
// the number 7 stay distinct. Numbers decode as float64 on both the request
// and the cancel notification, so the encoded forms agree.
func requestKey(id any) string {
	b, err := json.Marshal(id)
	if err != nil {
		return fmt.Sprintf("%T:%v", id, id)
	}
	return string(b)
}

// track registers a call's cancel func and returns the token untrack needs.
// Calls sharing an id are all cancelled together.
func (s *Server) track(key string, cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.inflight[key] == nil {
		s.inflight[key] = make(map[uint64]context.CancelFunc)
	}
	s.inflight[key][s.seq] = cancel
	return s.seq
}

func (s *Server) untrack(key string, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight[key], token)
	if len(s.inflight[key]) == 0 {
		delete(s.inflight, key)
	}
}

func (s *Server) cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls, ok := s.inflight[key]
	for _, cancel := range calls {
		cancel()
	}
	return ok
}

func (s *Server) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, calls := range s.inflight {
		for _, cancel := range calls {
			cancel()
		}
	}
}
