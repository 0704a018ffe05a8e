package routing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-registry/internal/platform/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func echoParams(name string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		WriteJSON(w, http.StatusOK, map[string]any{"route": name, "params": params(r)})
		return nil
	}
}

func newTestTable() *Table {
	t := NewTable()
	t.Get("/v1/pets", echoParams("list"))
	t.Post("/v1/pets", echoParams("create"))
	t.Get("/v1/pets/{id}/fotos/{fotoId}", echoParams("foto"))
	t.Get("/v1/pets/{id}", echoParams("get"))
	t.Get("/v1/{kind}/{id}", echoParams("generic"))
	t.Put("/v1/pets/{id}", echoParams("update"))
	t.Delete("/v1/pets/{id}", echoParams("delete"))
	return t
}

type echo struct {
	Route  string            `json:"route"`
	Params map[string]string `json:"params"`
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, echo) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var out echo
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestCompile(t *testing.T) {
	assert.Equal(t, `^/v1/pets/(?P<id>[^/]+)/fotos/?$`, compile("/v1/pets/{id}/fotos").String())
	assert.Equal(t, `^/autenticacao/login/?$`, compile("/autenticacao/login/").String())
	assert.Equal(t, `^/openapi\.yaml/?$`, compile("/openapi.yaml").String())
}

func TestMatch_FirstWinsAndMethodFiltering(t *testing.T) {
	tbl := newTestTable()

	rt, captures, ok := tbl.Match("GET", "/v1/pets/7")
	require.True(t, ok)
	assert.Equal(t, "/v1/pets/{id}", rt.Pattern)
	assert.Equal(t, map[string]string{"id": "7"}, captures)

	// /v1/pets/{id} está antes que /v1/{kind}/{id}.
	rt, _, ok = tbl.Match("GET", "/v1/tutores/7")
	require.True(t, ok)
	assert.Equal(t, "/v1/{kind}/{id}", rt.Pattern)

	rt, _, ok = tbl.Match("get", "/v1/pets/")
	require.True(t, ok)
	assert.Equal(t, "/v1/pets", rt.Pattern)

	// PATCH no está declarado: no-match, no 405.
	_, _, ok = tbl.Match("PATCH", "/v1/pets/7")
	assert.False(t, ok)

	_, _, ok = tbl.Match("GET", "/v1/pets/7/extra/deep")
	assert.False(t, ok)
}

func TestPatterns(t *testing.T) {
	tbl := newTestTable()

	assert.Equal(t, []string{
		"/v1/pets",
		"/v1/pets/{id}/fotos/{fotoId}",
		"/v1/pets/{id}",
		"/v1/{kind}/{id}",
	}, tbl.Patterns())
}

func TestWith_WrapsOnlyLaterRoutes(t *testing.T) {
	tbl := NewTable()
	tbl.Get("/open", echoParams("open"))

	deny := func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			WriteMessage(w, http.StatusUnauthorized, "no")
			return nil
		}
	}
	tbl.With(deny).Get("/closed", echoParams("closed"))

	d := NewDispatcher(tbl, DispatcherOptions{})
	rec, _ := do(t, d, "GET", "/open")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, d, "GET", "/closed")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Len(t, tbl.Routes(), 2)
}

func TestDispatcher_PrefixNormalization(t *testing.T) {
	d := NewDispatcher(newTestTable(), DispatcherOptions{Prefix: "/api"})

	assert.Equal(t, "/v1/pets", d.Normalize("/api/v1/pets"))
	assert.Equal(t, "/", d.Normalize("/api"))
	assert.Equal(t, "/apiary", d.Normalize("/apiary"))
	assert.Equal(t, "/v1/pets", d.Normalize("/v1/pets"))

	for _, target := range []string{"/api/v1/pets/3", "/v1/pets/3"} {
		rec, out := do(t, d, "GET", target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "get", out.Route)
	}
}

func TestDispatcher_ParamsPathOverridesQueryAndDecodes(t *testing.T) {
	d := NewDispatcher(newTestTable(), DispatcherOptions{})

	rec, out := do(t, d, "GET", "/v1/pets/a%20b?id=999&nome=Rex&nome=Other")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a b", out.Params["id"])
	assert.Equal(t, "Rex", out.Params["nome"])
}

func TestDispatcher_NotFound(t *testing.T) {
	d := NewDispatcher(newTestTable(), DispatcherOptions{})

	rec, _ := do(t, d, "PATCH", "/v1/pets/1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDispatcher_ErrorsAndPanicsBecome500(t *testing.T) {
	tbl := NewTable()
	tbl.Get("/err", func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("disk on fire")
	})
	tbl.Get("/panic", func(w http.ResponseWriter, r *http.Request) error {
		panic("kaboom")
	})
	tbl.Get("/late", func(w http.ResponseWriter, r *http.Request) error {
		NoContent(w)
		return errors.New("after write")
	})
	m := metrics.New()
	d := NewDispatcher(tbl, DispatcherOptions{Metrics: m})

	rec, _ := do(t, d, "GET", "/err")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erro interno.","detail":"disk on fire"}`, rec.Body.String())

	rec, _ = do(t, d, "GET", "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erro interno.","detail":"kaboom"}`, rec.Body.String())

	rec, _ = do(t, d, "GET", "/late")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mrec := httptest.NewRecorder()
	m.Handler().ServeHTTP(mrec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, mrec.Body.String(), `pets_http_requests_total{method="GET",route="/err",status="500"} 1`)
}

func TestServePattern_MethodNotAllowed(t *testing.T) {
	d := NewDispatcher(newTestTable(), DispatcherOptions{Prefix: "/api"})
	fn := d.ServePattern("/v1/pets/{id}")

	rec, out := do(t, fn, "PUT", "/api/v1/pets/5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "update", out.Route)

	rec, _ = do(t, fn, "POST", "/api/v1/pets/5")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT, DELETE", rec.Header().Get("Allow"))

	rec, _ = do(t, fn, "GET", "/api/v1/pets/5/other")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServePattern_MethodNotAllowedIsLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	d := NewDispatcher(newTestTable(), DispatcherOptions{Logger: zap.New(core), Metrics: m})

	rec, _ := do(t, d.ServePattern("/v1/pets/{id}"), "POST", "/v1/pets/5")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/v1/pets/{id}", fields["route"])
	assert.Equal(t, int64(http.StatusMethodNotAllowed), fields["status"])

	mrec := httptest.NewRecorder()
	m.Handler().ServeHTTP(mrec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, mrec.Body.String(), `pets_http_requests_total{method="POST",route="/v1/pets/{id}",status="405"} 1`)
}

func TestReadJSON(t *testing.T) {
	type body struct {
		Nome string `json:"nome"`
	}

	var b body
	require.NoError(t, ReadJSON(httptest.NewRequest("POST", "/", strings.NewReader("")), &b))
	assert.Empty(t, b.Nome)

	require.NoError(t, ReadJSON(httptest.NewRequest("POST", "/", strings.NewReader("null")), &b))
	assert.Empty(t, b.Nome)

	require.NoError(t, ReadJSON(httptest.NewRequest("POST", "/", strings.NewReader(`{"nome":"Rex"}`)), &b))
	assert.Equal(t, "Rex", b.Nome)

	err := ReadJSON(httptest.NewRequest("POST", "/", strings.NewReader(`{nome`)), &b)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestIntAndID(t *testing.T) {
	r := WithParams(httptest.NewRequest("GET", "/", nil), map[string]string{
		"page": "2", "size": "", "bad": "x", "id": "12", "word": "abc",
	})

	assert.Equal(t, 2, Int(r, "page", 0))
	assert.Equal(t, 0, Int(r, "size", 10))
	assert.Equal(t, 10, Int(r, "bad", 10))
	assert.Equal(t, 10, Int(r, "missing", 10))

	id, ok := ID(r, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)
	_, ok = ID(r, "word")
	assert.False(t, ok)
}
