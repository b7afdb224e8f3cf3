package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/dkealton/rigforge/internal/adapters/http"
	"github.com/dkealton/rigforge/internal/logging"
	"github.com/dkealton/rigforge/pkg/adapters/memory"
	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store, *blueprint.Registry) {
	t.Helper()

	reg := blueprint.NewRegistry()
	l := loader.New(nil)
	require.NoError(t, l.LoadBuiltins())
	require.NoError(t, l.Register(reg))

	store := memory.NewStore(reg)
	srv := httptest.NewServer(httpadapter.NewHandler(store, reg, l.Defs(), logging.NewNop()))
	t.Cleanup(srv.Close)

	return srv, store, reg
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_Health(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/healthz", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_ListActions(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var body struct {
		Actions []loader.Def `json:"actions"`
	}
	status := getJSON(t, srv.URL+"/actions", &body)

	assert.Equal(t, http.StatusOK, status)
	names := make([]string, 0, len(body.Actions))
	for _, def := range body.Actions {
		names = append(names, def.Name)
	}
	assert.Contains(t, names, "ImportReferences")
}

func TestServer_BlueprintLifecycle(t *testing.T) {
	srv, store, _ := newTestServer(t)
	ctx := context.Background()

	b := blueprint.New()
	b.Name = "rig_arm"
	require.NoError(t, store.Save(ctx, "rig_arm", b))

	// GET existing
	var doc map[string]any
	status := getJSON(t, srv.URL+"/blueprints/rig_arm", &doc)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "rig_arm", doc["name"])

	// GET missing
	status = getJSON(t, srv.URL+"/blueprints/ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// PUT new document
	payload, err := json.Marshal(b.Serialize())
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/blueprints/copy", bytes.NewReader(payload))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var names struct {
		Blueprints []string `json:"blueprints"`
	}
	status = getJSON(t, srv.URL+"/blueprints", &names)
	assert.Equal(t, http.StatusOK, status)
	assert.ElementsMatch(t, []string{"rig_arm", "copy"}, names.Blueprints)

	// DELETE
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/blueprints/copy", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestServer_PutRejectsBrokenDocument(t *testing.T) {
	srv, _, _ := newTestServer(t)

	body := bytes.NewReader([]byte(`{"name": "x"}`))
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/blueprints/x", body)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_MetricsExposed(t *testing.T) {
	srv, _, _ := newTestServer(t)

	// Generate a request so the counter has something to show.
	getJSON(t, srv.URL+"/healthz", nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rigforge_http_requests_total")
}
