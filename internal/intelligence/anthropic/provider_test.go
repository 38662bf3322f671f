package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

type captured struct {
	path   string
	apiKey string
	body   map[string]interface{}
}

func newServer(t *testing.T, status int, reply string, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if got != nil {
			got.path = r.URL.Path
			got.apiKey = r.Header.Get("X-Api-Key")
			_ = json.Unmarshal(raw, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func messageReply(text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"id":          "msg_01",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-test",
		"stop_reason": "end_turn",
		"content":     []map[string]string{{"type": "text", "text": text}},
		"usage":       map[string]int{"input_tokens": 10, "output_tokens": 5},
	})
	return string(b)
}

func testConfig(baseURL string) Config {
	return Config{Name: "primary", Model: "claude-test", APIKey: "sk-test", BaseURL: baseURL, MaxTokens: 256}
}

func TestNew_RequiresKeyAndModel(t *testing.T) {
	_, err := New(Config{Model: "m"})
	assert.True(t, errors.IsCode(err, errors.CodeProviderConstruction))

	_, err = New(Config{APIKey: "k"})
	assert.True(t, errors.IsCode(err, errors.CodeProviderConstruction))

	p, err := New(Config{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
}

func TestFactory_DefersConstruction(t *testing.T) {
	f := Factory(Config{Model: "m"})
	_, err := f()
	assert.True(t, errors.IsCode(err, errors.CodeProviderConstruction))
}

func TestInvoke_Text(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, messageReply("Dear [Name],"), &got)
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	out, err := p.Invoke(context.Background(), common.Prompt{System: "be polite", User: "draft"}, common.ModeText)
	require.NoError(t, err)
	assert.Equal(t, "Dear [Name],", out)

	assert.Equal(t, "/v1/messages", got.path)
	assert.Equal(t, "sk-test", got.apiKey)
	assert.Equal(t, "claude-test", got.body["model"])
	assert.EqualValues(t, 256, got.body["max_tokens"])
	raw, _ := json.Marshal(got.body["system"])
	assert.Contains(t, string(raw), "be polite")
	assert.NotContains(t, string(raw), "JSON Schema")
}

func TestInvoke_JoinsTextBlocks(t *testing.T) {
	b, _ := json.Marshal(map[string]interface{}{
		"id":          "msg_02",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-test",
		"stop_reason": "end_turn",
		"content": []map[string]string{
			{"type": "text", "text": `{"risks":[],`},
			{"type": "text", "text": `"safe_clauses":[]}`},
		},
		"usage": map[string]int{"input_tokens": 10, "output_tokens": 5},
	})
	srv := newServer(t, http.StatusOK, string(b), nil)
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	out, err := p.Invoke(context.Background(), common.Prompt{User: "contract"}, common.ModeStructured)
	require.NoError(t, err)
	assert.Equal(t, `{"risks":[],"safe_clauses":[]}`, out)
}

func TestInvoke_StructuredEmbedsSchema(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, messageReply(`{"risks":[],"safe_clauses":[]}`), &got)
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	out, err := p.Invoke(context.Background(), common.Prompt{System: "audit", User: "contract"}, common.ModeStructured)
	require.NoError(t, err)
	assert.Equal(t, `{"risks":[],"safe_clauses":[]}`, out)

	raw, _ := json.Marshal(got.body["system"])
	assert.Contains(t, string(raw), "JSON Schema")
	assert.Contains(t, string(raw), "safe_clauses")
}

func TestInvoke_ServerError(t *testing.T) {
	srv := newServer(t, http.StatusTooManyRequests,
		`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`, nil)
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = p.Invoke(context.Background(), common.Prompt{User: "x"}, common.ModeText)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeProviderInvocation))
	assert.True(t, strings.Contains(err.Error(), "429"), err.Error())
}

func TestInvoke_EmptyContent(t *testing.T) {
	srv := newServer(t, http.StatusOK, messageReply("   "), nil)
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = p.Invoke(context.Background(), common.Prompt{User: "x"}, common.ModeText)
	assert.True(t, errors.IsCode(err, errors.CodeProviderEmptyOutput))
}

func TestInvoke_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	p, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = p.Invoke(ctx, common.Prompt{User: "x"}, common.ModeText)
	assert.True(t, errors.IsCode(err, errors.CodeProviderTimeout), "got %v", err)
}

//Personal.AI order the ending
