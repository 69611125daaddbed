package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/config"
	"github.com/camden-git/starwarsapi/database/dbtest"
	"github.com/camden-git/starwarsapi/models"
)

type testAPI struct {
	db      *gorm.DB
	handler http.Handler
	logs    *observer.ObservedLogs
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	db := dbtest.New(t)
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := config.ServerConfig{
		Port:           3000,
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		RequestTimeout: 5 * time.Second,
	}
	return testAPI{
		db:      db,
		handler: NewRouter(cfg, NewGormRepositories(db), zap.New(core), prometheus.NewRegistry()),
		logs:    logs,
	}
}

func (a testAPI) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, a.db.Create(&[]models.User{{Username: "luke"}, {Username: "leia"}}).Error)
	require.NoError(t, a.db.Create(&[]models.Person{
		{Name: "Luke Skywalker", Gender: "male", EyeColor: "blue", SkinColor: "fair"},
		{Name: "C-3PO", Gender: "n/a", EyeColor: "yellow", SkinColor: "gold"},
	}).Error)
	require.NoError(t, a.db.Create(&[]models.Planet{
		{Name: "Tatooine", Population: "200000", Terrain: "desert", Climate: "arid"},
		{Name: "Alderaan", Population: "2000000000", Terrain: "grasslands, mountains", Climate: "temperate"},
	}).Error)
}

func (a testAPI) do(t *testing.T, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func (a testAPI) favoriteCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&models.Favorite{}).Count(&n).Error)
	return n
}

func TestListings_EmptyThenPopulated(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/user", "/people", "/planets"} {
		rec, body := api.do(t, http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotEmpty(t, body["msg"], path)
	}

	api.seed(t)

	for _, path := range []string{"/user", "/people", "/planets", "/planets/"} {
		rec, body := api.do(t, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Len(t, body["results"], 2, path)
	}
}

func TestGetByID(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/people/1", http.StatusOK},
		{"/people/2/", http.StatusOK},
		{"/people/999", http.StatusNotFound},
		{"/people/abc", http.StatusNotFound},
		{"/people/-1", http.StatusNotFound},
		{"/planets/2", http.StatusOK},
		{"/planets/0", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := api.do(t, http.MethodGet, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, body, "result")
			} else {
				assert.Contains(t, body, "msg")
			}
		})
	}
}

func TestFavoriteLifecycle(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	rec, _ := api.do(t, http.MethodPost, "/user/1/favorites/planets/2")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := api.do(t, http.MethodPost, "/user/1/favorites/planets/2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "favorite already exists", body["msg"])
	assert.EqualValues(t, 1, api.favoriteCount(t))

	rec, _ = api.do(t, http.MethodPost, "/user/1/favorites/people/1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = api.do(t, http.MethodGet, "/user/1/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["results"], 2)

	// Serialized records carry one favorite entry per referencing row.
	rec, body = api.do(t, http.MethodGet, "/planets/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["result"].(map[string]interface{})["favorite"], 1)
	rec, body = api.do(t, http.MethodGet, "/planets/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["result"].(map[string]interface{})["favorite"], 0)

	rec, body = api.do(t, http.MethodGet, "/user")
	require.Equal(t, http.StatusOK, rec.Code)
	users := body["results"].([]interface{})
	assert.Len(t, users[0].(map[string]interface{})["favorite"], 2)
	assert.Len(t, users[1].(map[string]interface{})["favorite"], 0)

	rec, body = api.do(t, http.MethodDelete, "/user/1/favorites/planets/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "favorite removed", body["msg"])
	assert.EqualValues(t, 1, api.favoriteCount(t))

	rec, body = api.do(t, http.MethodGet, "/user/1/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Nil(t, results[0].(map[string]interface{})["planets_id"])

	rec, _ = api.do(t, http.MethodDelete, "/user/1/favorites/planets/2")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = api.do(t, http.MethodDelete, "/user/1/favorites/people/1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = api.do(t, http.MethodGet, "/user/1/favorites")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user has no favorites", body["msg"])
}

func TestAddFavorite_MissingReferences(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	tests := []struct {
		path string
		msg  string
	}{
		{"/user/99/favorites/planets/1", "user or planet not found"},
		{"/user/1/favorites/planets/99", "user or planet not found"},
		{"/user/99/favorites/people/1", "user or person not found"},
		{"/user/1/favorites/people/99", "user or person not found"},
		{"/user/x/favorites/people/1", "resource not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := api.do(t, http.MethodPost, tt.path)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.msg, body["msg"])
		})
	}
	assert.EqualValues(t, 0, api.favoriteCount(t))
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodGet, "/starships")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", body["msg"])

	rec, body = api.do(t, http.MethodPut, "/people")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", body["msg"])
}

func TestRouter_Sitemap(t *testing.T) {
	api := newTestAPI(t)

	rec, body := api.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []string
	for _, r := range body["results"].([]interface{}) {
		route := r.(map[string]interface{})
		listed = append(listed, route["method"].(string)+" "+route["path"].(string))
	}
	for _, want := range []string{
		"GET /",
		"GET /metrics",
		"GET /user",
		"GET /user/{user_id}/favorites",
		"POST /user/{user_id}/favorites/planets/{planet_id}",
		"DELETE /user/{user_id}/favorites/people/{people_id}",
		"GET /people/{people_id}",
		"GET /planets",
	} {
		assert.Contains(t, listed, want)
	}
}

func TestRouter_MetricsAndAccessLog(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t)

	rec, _ := api.do(t, http.MethodGet, "/people/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `swapi_http_requests_total{method="GET",path="/people/{people_id:[0-9]+}",status="200"} 1`)

	entries := api.logs.FilterMessage("request").FilterField(zap.String("path", "/people/1")).All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestRouter_CORS(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
