package web

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo-cli/internal/api"
	"todo-cli/internal/model"
	"todo-cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, prefix string) *httptest.Server {
	t.Helper()
	db, err := store.OpenTodoDB(context.Background(), filepath.Join(t.TempDir(), store.DefaultTodoDBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv, err := NewServer(ServerConfig{Addr: "127.0.0.1:0", Prefix: prefix}, db, nil)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_ClientRoundTrip(t *testing.T) {
	ts := newTestServer(t, "/dev")
	c := api.New(ts.URL+"/dev", nil)
	ctx := context.Background()

	tasks, err := c.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	a, err := c.CreateTodo(ctx, "  write tests ")
	require.NoError(t, err)
	assert.Equal(t, "write tests", a.Title)
	assert.False(t, a.Completed)

	title := "write more tests"
	updated, err := c.UpdateTodo(ctx, a.ID, model.TaskPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, title, updated.Title)

	tasks, err = c.ListTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{ID: a.ID, Title: title}}, tasks)

	require.NoError(t, c.DeleteTodo(ctx, a.ID))
	tasks, err = c.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestServer_Errors(t *testing.T) {
	ts := newTestServer(t, "")
	c := api.New(ts.URL, nil)
	ctx := context.Background()

	_, err := c.CreateTodo(ctx, "   ")
	var rerr *api.RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusBadRequest, rerr.Status)
	assert.Contains(t, rerr.Detail, "Missing required field: title")

	title := "x"
	_, err = c.UpdateTodo(ctx, "does-not-exist", model.TaskPatch{Title: &title})
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusNotFound, rerr.Status)

	a, err := c.CreateTodo(ctx, "A")
	require.NoError(t, err)
	_, err = c.UpdateTodo(ctx, a.ID, model.TaskPatch{})
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusBadRequest, rerr.Status)
	assert.Contains(t, rerr.Detail, "No updatable fields")

	res, err := http.Post(ts.URL+"/todos", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, string(body), "Invalid JSON body")
}

func TestServer_DeleteIs204WithCORS(t *testing.T) {
	ts := newTestServer(t, "")
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/todos/anything", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_MetricsCountRequests(t *testing.T) {
	ts := newTestServer(t, "")
	_, err := api.New(ts.URL, nil).ListTodos(context.Background())
	require.NoError(t, err)

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), `todo_devserver_requests_total{method="GET",route="/todos",status="200"} 1`)
}

func TestNewServer_Validates(t *testing.T) {
	_, err := NewServer(ServerConfig{}, nil, nil)
	assert.Error(t, err)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	db, err := store.OpenTodoDB(context.Background(), filepath.Join(t.TempDir(), store.DefaultTodoDBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv, err := NewServer(ServerConfig{Addr: "127.0.0.1:0"}, db, nil)
	require.NoError(t, err)
	ln, err := net.Listen("tcp", srv.Addr())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_IndexRendersDocs(t *testing.T) {
	ts := newTestServer(t, "/dev")
	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(b), "<h1")
	assert.Contains(t, string(b), `href="/dev/todos"`)
}
