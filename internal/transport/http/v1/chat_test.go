package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefbot/briefbot/internal/domain"
)

func postJSON(e *echo.Echo, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChatSuccess(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &stubCompletion{content: "- 4"})

	c, rec := postJSON(e, "/api/chat", ChatRequest{Message: "What is 2+2?"})
	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, []string{"- 4"}, resp.Response)
	assert.Equal(t, []string{"Translate", "Ask a question", "Get help"}, resp.Suggestions)
}

func TestChatEmptyMessage(t *testing.T) {
	e := echo.New()
	stub := &stubCompletion{content: "- unused"}
	h := newTestHandler(t, stub)

	c, rec := postJSON(e, "/api/chat", ChatRequest{Message: "   "})
	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "No input provided.", resp.Message)
	assert.Zero(t, stub.calls)
}

func TestChatCompletionFailure(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &stubCompletion{err: errors.New("provider down")})

	c, rec := postJSON(e, "/api/chat", ChatRequest{Message: "hello"})
	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestGetHistoryEmpty(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &stubCompletion{})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetHistory(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestChatThenHistory(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &stubCompletion{content: "- 4"})

	c, rec := postJSON(e, "/api/chat", ChatRequest{Message: "What is 2+2?"})
	require.NoError(t, h.Chat(c))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	histRec := httptest.NewRecorder()
	require.NoError(t, h.GetHistory(e.NewContext(req, histRec)))

	var turns []domain.Turn
	require.NoError(t, json.Unmarshal(histRec.Body.Bytes(), &turns))
	require.Len(t, turns, 1)
	assert.Equal(t, "What is 2+2?", turns[0].User)
	assert.Equal(t, []string{"- 4"}, turns[0].BotLines)
	assert.NotEmpty(t, turns[0].Date)
}

func TestClearHistory(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &stubCompletion{content: "- hi"})

	c, rec := postJSON(e, "/api/chat", ChatRequest{Message: "hello"})
	require.NoError(t, h.Chat(c))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	clearRec := httptest.NewRecorder()
	require.NoError(t, h.ClearHistory(e.NewContext(req, clearRec)))
	assert.Equal(t, http.StatusOK, clearRec.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	listRec := httptest.NewRecorder()
	require.NoError(t, h.ListSessions(e.NewContext(listReq, listRec)))
	assert.JSONEq(t, "[]", listRec.Body.String())
}
