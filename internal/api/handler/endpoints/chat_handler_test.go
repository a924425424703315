package endpoints

import (
	"fmt"
	"genperm/internal/api/service"
	"genperm/pkg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedModel returns canned text per prompt kind, like the service-level
// fakes, so handler tests can drive the real pipeline end to end.
type scriptedModel struct {
	classifyReply string
	sqlReply      string
	summaryReply  string
	chatReply     string
	err           error
}

func (slf *scriptedModel) Generate(prompt string) (string, error) {
	if slf.err != nil {
		return "", slf.err
	}
	switch {
	case strings.Contains(prompt, "You are a classifier"):
		return slf.classifyReply, nil
	case strings.Contains(prompt, "expert MySQL assistant"):
		return slf.sqlReply, nil
	case strings.Contains(prompt, "You are a database assistant"):
		return slf.summaryReply, nil
	case strings.Contains(prompt, "Genperm"):
		return slf.chatReply, nil
	}
	return "", fmt.Errorf("unexpected prompt")
}

type scriptedRunner struct {
	result *pkg.QueryResult
	err    error
}

func (slf *scriptedRunner) RunQuery(query string, args ...any) (*pkg.QueryResult, error) {
	if slf.err != nil {
		return nil, slf.err
	}
	return slf.result, nil
}

func newTestChatHandler(model pkg.TextGenerator, db pkg.QueryRunner) *chatHandler {
	chatService := service.NewChatServiceWith(model, db)
	return &chatHandler{
		logger:       zerolog.Nop(),
		chatService:  chatService,
		voiceService: service.NewVoiceServiceWith(model, chatService),
	}
}

func postJSON(t *testing.T, handler gin.HandlerFunc, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestChatEndpoint_EmptyMessage(t *testing.T) {
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("must not be called")}, &scriptedRunner{})

	w := postJSON(t, h.chat, "/chat", `{"message": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No message provided"}`, w.Body.String())
}

func TestChatEndpoint_WhitespaceMessage(t *testing.T) {
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("must not be called")}, &scriptedRunner{})

	w := postJSON(t, h.chat, "/chat", `{"message": "   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No message provided"}`, w.Body.String())
}

func TestChatEndpoint_DbQuestion(t *testing.T) {
	statement := "select name, price from products order by price asc limit 1"
	model := &scriptedModel{
		classifyReply: "YES",
		sqlReply:      statement,
		summaryReply:  "The cheapest ring is the Silver Band at $25.",
	}
	db := &scriptedRunner{result: &pkg.QueryResult{
		Columns: []string{"name", "price"},
		Rows:    [][]any{{"Silver Band", 25.0}},
	}}
	h := newTestChatHandler(model, db)

	w := postJSON(t, h.chat, "/chat", `{"message": "What is the cheapest ring?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"reply": "The cheapest ring is the Silver Band at $25.", "generated_sql": %q}`, statement),
		w.Body.String())
}

func TestChatEndpoint_NoMatchKeepsGeneratedSQL(t *testing.T) {
	statement := "select name, price from products where price < 100"
	model := &scriptedModel{
		classifyReply: "YES",
		sqlReply:      statement,
	}
	db := &scriptedRunner{result: &pkg.QueryResult{Columns: []string{"name", "price"}}}
	h := newTestChatHandler(model, db)

	w := postJSON(t, h.chat, "/chat", `{"message": "show me a diamond under $100"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"reply": "I checked our collection, but I couldn't find exactly that. Would you like to see our bestsellers?", "generated_sql": %q}`,
		statement), w.Body.String())
}

func TestChatEndpoint_GeneralQuestion(t *testing.T) {
	model := &scriptedModel{
		classifyReply: "NO",
		chatReply:     "Welcome to Genperm!",
	}
	h := newTestChatHandler(model, &scriptedRunner{})

	w := postJSON(t, h.chat, "/chat", `{"message": "who are you?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply": "Welcome to Genperm!", "generated_sql": null}`, w.Body.String())
}

func TestChatEndpoint_ClassifierFailure(t *testing.T) {
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("model unavailable")}, &scriptedRunner{})

	w := postJSON(t, h.chat, "/chat", `{"message": "hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model unavailable")
}

func TestVoiceChatEndpoint_Greeting(t *testing.T) {
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("must not be called")}, &scriptedRunner{})

	w := postJSON(t, h.voiceChat, "/voice-chat", `{"message": "hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"response": "Hello! How can I assist you with our products today?", "status": "success"}`,
		w.Body.String())
}

func TestVoiceChatEndpoint_EmptyMessage(t *testing.T) {
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("must not be called")}, &scriptedRunner{})

	w := postJSON(t, h.voiceChat, "/voice-chat", `{"message": ""}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"response": "I didn't hear anything. Please try again.", "status": "success"}`,
		w.Body.String())
}

func TestVoiceChatEndpoint_Failure(t *testing.T) {
	// A spoken question without a product keyword falls back to the model,
	// defaults to general chat, and the chat pipeline's classifier error
	// then escapes to the endpoint boundary.
	h := newTestChatHandler(&scriptedModel{err: fmt.Errorf("model unavailable")}, &scriptedRunner{})

	w := postJSON(t, h.voiceChat, "/voice-chat", `{"message": "tell me a story"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"response": "Server error while processing voice request.", "status": "error"}`,
		w.Body.String())
}
