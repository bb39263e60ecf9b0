// Package dispatch resolves tool calls against the catalog and turns every outcome
// into a text envelope.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/golovatskygroup/mcp-frontend/internal/cache"
	"github.com/golovatskygroup/mcp-frontend/internal/catalog"
	"github.com/golovatskygroup/mcp-frontend/internal/journal"
	"github.com/golovatskygroup/mcp-frontend/internal/logging"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

// Outcome classifies how a call finished.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeCached           Outcome = "cached"
	OutcomeUnknownTool      Outcome = "unknown_tool"
	OutcomeInvalidArguments Outcome = "invalid_arguments"
	OutcomeHandlerError     Outcome = "handler_error"
	OutcomeCancelled        Outcome = "cancelled"
)

// EmptyResultText is returned when a handler produces no content.
const EmptyResultText = "(no output)"

// Recorder receives one entry per finished call.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Options configure a Dispatcher. The zero value is lenient, without timeout, cache or recorder.
type Options struct {
	Mode     schema.Mode
	Timeout  time.Duration
	Logger   *logging.Logger
	Cache    *cache.ResultCache
	Recorder Recorder
}

// Dispatcher routes calls to catalog handlers. It is safe for concurrent use.
type Dispatcher struct {
	catalog  *catalog.Catalog
	mode     schema.Mode
	timeout  time.Duration
	log      *logging.Logger
	cache    *cache.ResultCache
	recorder Recorder
}

func New(cat *catalog.Catalog, opts Options) *Dispatcher {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Dispatcher{
		catalog:  cat,
		mode:     opts.Mode,
		timeout:  opts.Timeout,
		log:      log,
		cache:    opts.Cache,
		recorder: opts.Recorder,
	}
}


// Catalog returns the catalog the dispatcher resolves against.
func (d *Dispatcher) Catalog() *catalog.Catalog { return d.catalog }

// ListTools returns every tool in registration order.
func (d *Dispatcher) ListTools() []mcp.Tool {
	return d.catalog.List()
}

// CallTool runs one tool. It never returns nil and never returns a Go error: unknown
// tools, invalid arguments, handler failures and cancellation are all text results.
func (d *Dispatcher) CallTool(ctx context.Context, name string, rawArgs json.RawMessage) *mcp.CallToolResult {
	callID := uuid.New().String()
	start := time.Now()
	log := d.log.With("call_id", callID, "tool", name)

	res, rec := d.call(ctx, name, rawArgs)

	rec.CallID = callID
	rec.Tool = name
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.ExecutedAt = start

	if rec.Outcome == OutcomeOK || rec.Outcome == OutcomeCached {
		log.Debug("tool call finished", "outcome", rec.Outcome, "duration_ms", rec.DurationMs)
	} else {
		log.Warn("tool call failed", "outcome", rec.Outcome, "duration_ms", rec.DurationMs, "error", rec.Error)
	}

	if d.recorder != nil {
		// The call's own context may already be cancelled; the journal row is still wanted.
		if err := d.recorder.Record(context.WithoutCancel(ctx), rec.entry()); err != nil {
			log.Warn("failed to record tool call", "error", err)
		}
	}

	return res
}

type record struct {
	CallID     string
	Tool       string
	Provider   string
	Outcome    Outcome
	Arguments  map[string]any
	Error      string
	DurationMs int64
	ExecutedAt time.Time
}

func (r record) entry() journal.Entry {
	return journal.Entry{
		CallID:     r.CallID,
		Tool:       r.Tool,
		Provider:   r.Provider,
		Outcome:    string(r.Outcome),
		Arguments:  r.Arguments,
		Error:      r.Error,
		DurationMs: r.DurationMs,
		ExecutedAt: r.ExecutedAt,
	}
}

func (d *Dispatcher) call(ctx context.Context, name string, rawArgs json.RawMessage) (*mcp.CallToolResult, record) {
	entry, ok := d.catalog.Resolve(name)
	if !ok {
		msg := fmt.Sprintf("Unknown tool: %s", name)
		return mcp.ErrorResult(msg), record{Outcome: OutcomeUnknownTool, Error: msg}
	}
	rec := record{Provider: entry.Provider}

	decoded, err := schema.DecodeArguments(rawArgs)
	if err != nil {
		if d.mode == schema.Strict {
			msg := fmt.Sprintf("Invalid arguments for %s: arguments must be a JSON object", name)
			rec.Outcome, rec.Error = OutcomeInvalidArguments, err.Error()
			return mcp.ErrorResult(msg), rec
		}
		d.log.Debug("ignoring non-object arguments", "tool", name, "error", err)
		decoded = map[string]any{}
	}

	args, err := entry.Descriptor.Apply(decoded, d.mode)
	if err != nil {
		rec.Outcome, rec.Error = OutcomeInvalidArguments, err.Error()
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return mcp.ErrorResult(fmt.Sprintf("Invalid arguments for %s: %s", name, ve.Summary())), rec
		}
		return mcp.ErrorResult(fmt.Sprintf("Invalid arguments for %s: %v", name, err)), rec
	}
	rec.Arguments = map[string]any(args)

	var cacheKey string
	if d.cache != nil {
		if key, ok := cache.Key(name, args); ok {
			cacheKey = key
			if hit := d.cache.Get(key); hit != nil {
				rec.Outcome = OutcomeCached
				return hit, rec
			}
		}
	}

	res, err := d.invoke(ctx, name, entry, args)
	switch {
	case errors.Is(err, errCancelled):
		rec.Outcome, rec.Error = OutcomeCancelled, err.Error()
		return mcp.ErrorResult(fmt.Sprintf("Error: tool %s cancelled: %v", name, errors.Unwrap(err))), rec
	case err != nil:
		rec.Outcome, rec.Error = OutcomeHandlerError, err.Error()
		return mcp.ErrorResult("Error: " + err.Error()), rec
	}

	if res == nil || len(res.Content) == 0 {
		isErr := res != nil && res.IsError
		res = &mcp.CallToolResult{Content: []mcp.ContentBlock{{Type: "text", Text: EmptyResultText}}, IsError: isErr}
	}

	if res.IsError {
		rec.Outcome, rec.Error = OutcomeHandlerError, res.Text()
		return res, rec
	}

	rec.Outcome = OutcomeOK
	if cacheKey != "" {
		d.cache.Set(cacheKey, res)
	}
	return res, rec
}

var errCancelled = errors.New("cancelled")

// cancelledError wraps the context error so callers can match errCancelled
// while still reaching the cause through errors.Unwrap.
type cancelledError struct{ cause error }

func (e *cancelledError) Error() string        { return "cancelled: " + e.cause.Error() }
func (e *cancelledError) Unwrap() error        { return e.cause }
func (e *cancelledError) Is(target error) bool { return target == errCancelled }

type handlerOutcome struct {
	res *mcp.CallToolResult
	err error
}

// invoke runs the handler in its own goroutine so a handler that ignores its
// context cannot hold the caller past cancellation or timeout.
func (d *Dispatcher) invoke(ctx context.Context, name string, entry catalog.Entry, args schema.Args) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, &cancelledError{cause: err}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	done := make(chan handlerOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("tool handler panicked", "tool", name, "panic", r, "stack", string(debug.Stack()))
				done <- handlerOutcome{err: fmt.Errorf("tool %s panicked: %v", name, r)}
			}
		}()
		res, err := entry.Handler(ctx, args)
		done <- handlerOutcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && ctx.Err() != nil && errors.Is(out.err, ctx.Err()) {
			return nil, &cancelledError{cause: ctx.Err()}
		}
		return out.res, out.err
	case <-ctx.Done():
		return nil, &cancelledError{cause: ctx.Err()}
	}
}
