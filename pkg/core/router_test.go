package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	manifest "github.com/joeydtaylor/armory/pkg/manifest"
	"github.com/joeydtaylor/armory/pkg/transport/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestRouter(t *testing.T, routes ...manifest.Route) http.Handler {
	t.Helper()
	cfg := manifest.Config{Routes: routes}
	require.NoError(t, cfg.Validate())
	return BuildRouter(cfg, BuildDeps{
		Router:  httpx.NewChi(),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("metrics")) }),
	})
}

func inprocRoute(path, name string) manifest.Route {
	return manifest.Route{Path: path, Handler: manifest.HSpec{Type: manifest.HandlerInproc, Name: name}}
}

func register(t *testing.T, name string, h InprocHandler) {
	t.Helper()
	Register(name, h)
	t.Cleanup(func() { Unregister(name) })
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestInprocRoute_PassesRequestAndWritesResponse(t *testing.T) {
	var got Request
	register(t, "test.echo", func(_ context.Context, req Request) (Response, error) {
		got = req
		return Response{
			StatusCode: http.StatusNotFound,
			Headers:    map[string]string{"Content-Type": "application/json", "Access-Control-Allow-Origin": "*"},
			Body:       []byte(`{"error":"nope"}`),
		}, nil
	})
	h := buildTestRouter(t, inprocRoute("/items", "test.echo"))

	rec := do(h, http.MethodGet, "/items?name=Orb&name=Other&x=")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"error":"nope"}`, rec.Body.String())

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/items", got.Path)
	assert.Equal(t, map[string]string{"name": "Orb", "x": ""}, got.Query)
}

func TestInprocRoute_NoQueryIsNil(t *testing.T) {
	var got Request
	register(t, "test.capture", func(_ context.Context, req Request) (Response, error) {
		got = req
		return Response{}, nil
	})
	h := buildTestRouter(t, inprocRoute("/items", "test.capture"))

	rec := do(h, http.MethodGet, "/items")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", rec.Body.String())
	assert.Nil(t, got.Query)
	_, ok := got.Param("name")
	assert.False(t, ok)
}

func TestInprocRoute_HandlerError(t *testing.T) {
	register(t, "test.fail", func(context.Context, Request) (Response, error) {
		return Response{}, errors.New("boom")
	})
	h := buildTestRouter(t, inprocRoute("/fail", "test.fail"))

	rec := do(h, http.MethodGet, "/fail")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInprocRoute_UnknownHandler(t *testing.T) {
	h := buildTestRouter(t, inprocRoute("/ghost", "test.unregistered"))
	rec := do(h, http.MethodGet, "/ghost")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "handler not found")
}

func TestRoute_Timeout(t *testing.T) {
	register(t, "test.deadline", func(ctx context.Context, _ Request) (Response, error) {
		if _, ok := ctx.Deadline(); !ok {
			return Response{}, errors.New("no deadline")
		}
		return Response{StatusCode: http.StatusOK}, nil
	})
	rt := inprocRoute("/slow", "test.deadline")
	rt.Policy.TimeoutMS = int((50 * time.Millisecond).Milliseconds())
	h := buildTestRouter(t, rt)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/slow").Code)
}

func TestRouter_Builtins(t *testing.T) {
	register(t, "test.ok", func(context.Context, Request) (Response, error) { return Response{}, nil })
	h := buildTestRouter(t, inprocRoute("/items", "test.ok"))

	rec := do(h, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/metrics")
	assert.Equal(t, "metrics", rec.Body.String())

	rec = do(h, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/items")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}
