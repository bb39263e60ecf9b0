package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMessage(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		``,
		`   `,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{oops`,
		`{"jsonrpc":"2.0","id":"x"}`,
	}, "\n")
	tr := NewTransport(strings.NewReader(input), io.Discard)

	req, err := tr.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "ping", req.Method)
	assert.Equal(t, 1.0, req.ID)
	assert.False(t, req.IsNotification())

	req, err = tr.ReadMessage()
	require.NoError(t, err)
	assert.True(t, req.IsNotification())

	req, err = tr.ReadMessage()
	assert.ErrorIs(t, err, ErrMalformedMessage)
	assert.Nil(t, req)

	req, err = tr.ReadMessage()
	assert.ErrorIs(t, err, ErrMalformedMessage)
	require.NotNil(t, req)
	assert.Equal(t, "x", req.ID)

	_, err = tr.ReadMessage()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTransport(strings.NewReader(""), &buf)

	resp, err := NewResponse(7, ListToolsResult{Tools: []Tool{}})
	require.NoError(t, err)
	require.NoError(t, tr.WriteResponse(resp))
	require.NoError(t, tr.WriteResponse(NewErrorResponse(nil, ParseError, "Parse error")))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":7,"result":{"tools":[]}}`, lines[0])
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`, lines[1])
}

func TestWriteResponse_ConcurrentWritesStayLineDelimited(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTransport(strings.NewReader(""), &buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			resp, _ := NewResponse(id, TextResult(strings.Repeat("x", 512)))
			assert.NoError(t, tr.WriteResponse(resp))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, l := range lines {
		assert.True(t, json.Valid([]byte(l)), l)
	}
}

func TestCallToolResultText(t *testing.T) {
	r := &CallToolResult{Content: []ContentBlock{
		{Type: "text", Text: "a"},
		{Type: "image", Data: "..."},
		{Type: "text", Text: "b"},
	}}
	assert.Equal(t, "a\nb", r.Text())

	var nilResult *CallToolResult
	assert.Equal(t, "", nilResult.Text())
	assert.True(t, ErrorResult("x").IsError)
}

func TestContentBlockJSON(t *testing.T) {
	tests := []struct {
		name  string
		block ContentBlock
		want  string
	}{
		{"empty text kept", ContentBlock{Type: "text"}, `{"type":"text","text":""}`},
		{"text", ContentBlock{Type: "text", Text: "hi"}, `{"type":"text","text":"hi"}`},
		{"resource text", ContentBlock{Type: "text", Text: "{}", URI: "catalog://tools", MimeType: "application/json"}, `{"type":"text","text":"{}","uri":"catalog://tools","mimeType":"application/json"}`},
		{"image omits text", ContentBlock{Type: "image", Data: "AAAA", MimeType: "image/png"}, `{"type":"image","data":"AAAA","mimeType":"image/png"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.block)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}

	b, err := json.Marshal(ErrorResult(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":""}],"isError":true}`, string(b))
}
