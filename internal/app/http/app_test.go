package httpapp_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapp "music_portfolio/internal/app/http"
	"music_portfolio/internal/lib/logger/handlers/slogdiscard"
	"music_portfolio/internal/repository"
	admin "music_portfolio/internal/services/admin_service"
	publication "music_portfolio/internal/services/publication_service"
	"music_portfolio/internal/storage/kv/memory"
	httprouters "music_portfolio/internal/transport/http"
)

func newServer(t *testing.T) (*httpapp.Server, string) {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	repo := repository.NewKVRepository(memory.New())
	dir := t.TempDir()

	routers := httprouters.NewRouter(log, httprouters.Services{
		Publications: publication.NewPublicationService(log, repo.Publications),
		Admin:        admin.NewAdminService(log, "admin", repo),
	})

	srv := httpapp.New(log, "", "0", dir, "/uploads", routers)
	srv.BuildRouters()

	return srv, dir
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestServer_Health(t *testing.T) {
	srv, _ := newServer(t)

	rec := serve(srv.Handler(), http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newServer(t)

	serve(srv.Handler(), http.MethodGet, "/api/publications")

	rec := serve(srv.Handler(), http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "music_portfolio_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/api/publications"`)
}

func TestServer_StaticUploads(t *testing.T) {
	srv, dir := newServer(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.pdf"), []byte("pdf"), 0o644))

	rec := serve(srv.Handler(), http.MethodGet, "/uploads/note.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(srv.Handler(), http.MethodGet, "/uploads/missing.pdf").Code)
}

func TestServer_CORS(t *testing.T) {
	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/publications", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_APIMounted(t *testing.T) {
	srv, _ := newServer(t)

	rec := serve(srv.Handler(), http.MethodGet, "/api/publications")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(srv.Handler(), http.MethodGet, "/api/unknown").Code)
}
