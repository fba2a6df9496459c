package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/application/services"
	"todoapi/domain/todo"
	"todoapi/infrastructure/persistence/memory"
	"todoapi/interfaces/http/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.TodoStore) {
	t.Helper()

	store := memory.NewTodoStore()
	service := services.NewTodoService(store, nil, nil, zap.NewNop())
	router := rest.NewRouter(service, zap.NewNop())

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv, store
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func TestCreateTodo_Scenario(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	var created todo.Todo
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateTodo_ValidationRejectionSet(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty title", `{"title": ""}`, "INVALID_TITLE"},
		{"whitespace title", `{"title": "   "}`, "INVALID_TITLE"},
		{"numeric title", `{"title": 123}`, "INVALID_TITLE"},
		{"missing title", `{}`, "INVALID_TITLE"},
		{"missing body", ``, "MISSING_BODY"},
		{"malformed json", `{"title": `, "INVALID_JSON"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, env := doRequest(t, http.MethodPost, srv.URL+"/todos", tc.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, env.Success)
			assert.Equal(t, tc.wantCode, env.Error)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestGetTodo_RoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	_, created := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk", "description": "two liters"}`)
	var record todo.Todo
	require.NoError(t, json.Unmarshal(created.Data, &record))

	resp, env := doRequest(t, http.MethodGet, srv.URL+"/todos/"+record.ID, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got todo.Todo
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "two liters", got.Description)
	assert.False(t, got.Completed)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestGetTodo_IdempotentRead(t *testing.T) {
	srv, _ := newTestServer(t)

	_, created := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk"}`)
	var record todo.Todo
	require.NoError(t, json.Unmarshal(created.Data, &record))

	_, first := doRequest(t, http.MethodGet, srv.URL+"/todos/"+record.ID, "")
	_, second := doRequest(t, http.MethodGet, srv.URL+"/todos/"+record.ID, "")

	assert.JSONEq(t, string(first.Data), string(second.Data))
}

func TestGetTodo_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doRequest(t, http.MethodGet, srv.URL+"/todos/zzz", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestListTodos_OrderedByCreatedAtDescending(t *testing.T) {
	srv, store := newTestServer(t)

	// Seed with distinct creation times, inserted out of order.
	ctx := context.Background()
	for _, rec := range []todo.Todo{
		{ID: "t2", Title: "second", CreatedAt: "2024-01-02T10:00:00.000Z", UpdatedAt: "2024-01-02T10:00:00.000Z"},
		{ID: "t1", Title: "first", CreatedAt: "2024-01-01T10:00:00.000Z", UpdatedAt: "2024-01-01T10:00:00.000Z"},
		{ID: "t3", Title: "third", CreatedAt: "2024-01-03T10:00:00.000Z", UpdatedAt: "2024-01-03T10:00:00.000Z"},
	} {
		rec := rec
		require.NoError(t, store.Insert(ctx, &rec))
	}

	resp, env := doRequest(t, http.MethodGet, srv.URL+"/todos", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result services.ListResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Equal(t, 3, result.Count)
	assert.Equal(t, "t3", result.Items[0].ID)
	assert.Equal(t, "t2", result.Items[1].ID)
	assert.Equal(t, "t1", result.Items[2].ID)
}

func TestListTodos_Empty(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doRequest(t, http.MethodGet, srv.URL+"/todos", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result services.ListResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 0, result.Count)
}

func TestUpdateTodo_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	_, created := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk"}`)
	var record todo.Todo
	require.NoError(t, json.Unmarshal(created.Data, &record))

	resp, env := doRequest(t, http.MethodPut, srv.URL+"/todos/"+record.ID, `{"completed": true, "title": "Buy oat milk"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated todo.Todo
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.True(t, updated.Completed)
	assert.Equal(t, record.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, record.UpdatedAt)
}

func TestUpdateTodo_ValidationRejectionSet(t *testing.T) {
	srv, _ := newTestServer(t)

	_, created := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk"}`)
	var record todo.Todo
	require.NoError(t, json.Unmarshal(created.Data, &record))

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"string completed", `{"completed": "true"}`, "INVALID_COMPLETED"},
		{"numeric completed", `{"completed": 1}`, "INVALID_COMPLETED"},
		{"no recognized fields", `{}`, "NO_UPDATES"},
		{"blank title", `{"title": "  "}`, "INVALID_TITLE"},
		{"missing body", ``, "MISSING_BODY"},
		{"malformed json", `{"completed": `, "INVALID_JSON"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, env := doRequest(t, http.MethodPut, srv.URL+"/todos/"+record.ID, tc.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.wantCode, env.Error)
		})
	}
}

func TestUpdateTodo_NonexistentID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doRequest(t, http.MethodPut, srv.URL+"/todos/zzz", `{"title": "x"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error)

	// The failed update must not have created a phantom record.
	getResp, _ := doRequest(t, http.MethodGet, srv.URL+"/todos/zzz", "")
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestDeleteTodo_ThenGet(t *testing.T) {
	srv, _ := newTestServer(t)

	_, created := doRequest(t, http.MethodPost, srv.URL+"/todos", `{"title": "Buy milk"}`)
	var record todo.Todo
	require.NoError(t, json.Unmarshal(created.Data, &record))

	resp, _ := doRequest(t, http.MethodDelete, srv.URL+"/todos/"+record.ID, "")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(0), resp.ContentLength)

	getResp, env := doRequest(t, http.MethodGet, srv.URL+"/todos/"+record.ID, "")
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestDeleteTodo_NonexistentID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := doRequest(t, http.MethodDelete, srv.URL+"/todos/zzz", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestResponses_CarryCanonicalHeaders(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/todos", "")

	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type,X-Amz-Date,Authorization,X-Api-Key", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "OPTIONS,POST,GET,PUT,DELETE", resp.Header.Get("Access-Control-Allow-Methods"))
}
