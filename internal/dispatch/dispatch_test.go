package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/mcp-frontend/internal/cache"
	"github.com/golovatskygroup/mcp-frontend/internal/catalog"
	"github.com/golovatskygroup/mcp-frontend/internal/journal"
	"github.com/golovatskygroup/mcp-frontend/internal/provider"
	"github.com/golovatskygroup/mcp-frontend/internal/schema"
	"github.com/golovatskygroup/mcp-frontend/pkg/mcp"
)

const textSchema = `{"type":"object","properties":{"text":{"type":"string"}},"required":["text"]}`

func echoProvider() *provider.Table {
	return provider.NewTable("echo-provider", provider.Tool{
		Spec: mcp.Tool{Name: "echo", Description: "Echo text", InputSchema: json.RawMessage(`{"type":"object","properties":{"text":{"type":"string","default":""}}}`)},
		Handler: func(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
			return mcp.TextResult(args.String("text")), nil
		},
	})
}

func reverseProvider() *provider.Table {
	return provider.NewTable("reverse-provider", provider.Tool{
		Spec: mcp.Tool{Name: "reverse", Description: "Reverse text", InputSchema: json.RawMessage(textSchema)},
		Handler: func(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
			r := []rune(args.String("text"))
			for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
				r[i], r[j] = r[j], r[i]
			}
			return mcp.TextResult("reversed: " + string(r)), nil
		},
	})
}

func faultyProvider(release <-chan struct{}) *provider.Table {
	obj := json.RawMessage(`{"type":"object","properties":{"data":{"type":"string"}}}`)
	return provider.NewTable("faulty",
		provider.Tool{
			Spec: mcp.Tool{Name: "parse_json", InputSchema: obj},
			Handler: func(_ context.Context, args schema.Args) (*mcp.CallToolResult, error) {
				var v map[string]any
				if err := json.Unmarshal([]byte(args.String("data")), &v); err != nil {
					return nil, errors.New("malformed input: " + err.Error())
				}
				return mcp.TextResult("ok"), nil
			},
		},
		provider.Tool{
			Spec: mcp.Tool{Name: "explode", InputSchema: obj},
			Handler: func(context.Context, schema.Args) (*mcp.CallToolResult, error) {
				panic("boom")
			},
		},
		provider.Tool{
			Spec: mcp.Tool{Name: "silent", InputSchema: obj},
			Handler: func(context.Context, schema.Args) (*mcp.CallToolResult, error) {
				return nil, nil
			},
		},
		provider.Tool{
			Spec: mcp.Tool{Name: "stuck", InputSchema: obj},
			Handler: func(ctx context.Context, _ schema.Args) (*mcp.CallToolResult, error) {
				select {
				case <-release:
					return mcp.TextResult("released"), nil
				case <-time.After(5 * time.Second):
					return mcp.TextResult("gave up"), nil
				}
			},
		},
	)
}

func newTestDispatcher(t *testing.T, opts Options, extra ...provider.Provider) *Dispatcher {
	t.Helper()
	providers := append([]provider.Provider{echoProvider(), reverseProvider()}, extra...)
	cat, err := catalog.Build(providers...)
	require.NoError(t, err)
	return New(cat, opts)
}

func TestListTools_RegistrationOrderAndIdempotent(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	first := d.ListTools()
	require.Len(t, first, 2)
	assert.Equal(t, "echo", first[0].Name)
	assert.Equal(t, "reverse", first[1].Name)

	assert.Equal(t, first, d.ListTools())
}

func TestCallTool_EchoRoundTrip(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	res := d.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"hi"}`))
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.Equal(t, "hi", res.Content[0].Text)
	assert.False(t, res.IsError)
}

func TestCallTool_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	for _, raw := range []string{`{}`, ``, `null`} {
		res := d.CallTool(context.Background(), "does-not-exist", json.RawMessage(raw))
		require.Len(t, res.Content, 1)
		assert.Contains(t, res.Content[0].Text, "does-not-exist")
		assert.True(t, res.IsError)
	}
}

func TestCallTool_MissingRequired_Lenient(t *testing.T) {
	d := newTestDispatcher(t, Options{Mode: schema.Lenient})

	res := d.CallTool(context.Background(), "reverse", json.RawMessage(`{}`))
	require.NotEmpty(t, res.Content)
	assert.False(t, res.IsError)
	assert.Equal(t, "reversed: ", res.Text())
}

func TestCallTool_MissingRequired_Strict(t *testing.T) {
	d := newTestDispatcher(t, Options{Mode: schema.Strict})

	res := d.CallTool(context.Background(), "reverse", json.RawMessage(`{}`))
	require.Len(t, res.Content, 1)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text(), "Invalid arguments for reverse")
	assert.Contains(t, res.Text(), "text")

	res = d.CallTool(context.Background(), "reverse", json.RawMessage(`{"text":"ab"}`))
	assert.Equal(t, "reversed: ba", res.Text())
}

func TestCallTool_NonObjectArguments(t *testing.T) {
	lenient := newTestDispatcher(t, Options{})
	res := lenient.CallTool(context.Background(), "echo", json.RawMessage(`[1,2]`))
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "", res.Text())

	strict := newTestDispatcher(t, Options{Mode: schema.Strict})
	res = strict.CallTool(context.Background(), "echo", json.RawMessage(`"hi"`))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text(), "must be a JSON object")
}

func TestCallTool_ExtraKeysIgnored(t *testing.T) {
	for _, mode := range []schema.Mode{schema.Lenient, schema.Strict} {
		d := newTestDispatcher(t, Options{Mode: mode})

		with := d.CallTool(context.Background(), "reverse", json.RawMessage(`{"text":"abc","unexpected":42}`))
		without := d.CallTool(context.Background(), "reverse", json.RawMessage(`{"text":"abc"}`))
		assert.Equal(t, without, with, mode)
	}
}

func TestCallTool_HandlerErrorIsolated(t *testing.T) {
	d := newTestDispatcher(t, Options{}, faultyProvider(nil))

	res := d.CallTool(context.Background(), "parse_json", json.RawMessage(`{"data":"{not json"}`))
	require.Len(t, res.Content, 1)
	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(res.Text(), "Error: malformed input"))

	next := d.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"still fine"}`))
	assert.Equal(t, "still fine", next.Text())
}

func TestCallTool_PanicRecovered(t *testing.T) {
	d := newTestDispatcher(t, Options{}, faultyProvider(nil))

	res := d.CallTool(context.Background(), "explode", nil)
	require.Len(t, res.Content, 1)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text(), "panicked: boom")

	assert.Equal(t, "ok", d.CallTool(context.Background(), "parse_json", json.RawMessage(`{"data":"{}"}`)).Text())
}

func TestCallTool_EmptyResultGetsPlaceholder(t *testing.T) {
	d := newTestDispatcher(t, Options{}, faultyProvider(nil))

	res := d.CallTool(context.Background(), "silent", nil)
	require.Len(t, res.Content, 1)
	assert.Equal(t, EmptyResultText, res.Text())
}

func TestCallTool_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	d := newTestDispatcher(t, Options{Timeout: 20 * time.Millisecond}, faultyProvider(release))

	res := d.CallTool(context.Background(), "stuck", nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: tool stuck cancelled: context deadline exceeded", res.Text())
}

func TestCallTool_CancelledContext(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := d.CallTool(ctx, "echo", json.RawMessage(`{"text":"hi"}`))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text(), "cancelled")
}

func TestCallTool_Concurrent(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := d.CallTool(context.Background(), "reverse", json.RawMessage(`{"text":"abc"}`))
			assert.Equal(t, "reversed: cba", res.Text())
		}()
	}
	wg.Wait()
}

type memRecorder struct {
	mu      sync.Mutex
	entries []journal.Entry
}

func (m *memRecorder) Record(_ context.Context, e journal.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func TestCallTool_RecorderAndCache(t *testing.T) {
	rec := &memRecorder{}
	c := cache.New(time.Minute, 10)
	defer c.Close()
	d := newTestDispatcher(t, Options{Recorder: rec, Cache: c})

	d.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"hi"}`))
	d.CallTool(context.Background(), "echo", json.RawMessage(`{"text":"hi"}`))
	d.CallTool(context.Background(), "missing", nil)

	require.Len(t, rec.entries, 3)
	assert.Equal(t, string(OutcomeOK), rec.entries[0].Outcome)
	assert.Equal(t, "echo-provider", rec.entries[0].Provider)
	assert.Equal(t, "hi", rec.entries[0].Arguments["text"])
	assert.NotEmpty(t, rec.entries[0].CallID)
	assert.Equal(t, string(OutcomeCached), rec.entries[1].Outcome)
	assert.Equal(t, string(OutcomeUnknownTool), rec.entries[2].Outcome)
	assert.Equal(t, 1, c.Size())
}
