package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"twa-synth/internal/export"
	"twa-synth/internal/generator"
	"twa-synth/internal/outcome"
	"twa-synth/internal/service"
	"twa-synth/internal/store"
	"twa-synth/internal/synth"
	"twa-synth/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *Router {
	demo := synth.DefaultDemographicTables()
	gen := generator.NewGenerator(demo, synth.DefaultBehaviorTables(), outcome.DefaultTables(), zap.NewNop())
	engine := validation.NewEngine(demo.ExpectedAgeDistribution(), zap.NewNop())
	svc := service.NewDatasetService(gen, engine, export.NewExporter(nil), store.NewDatasetStore(), zap.NewNop())

	router := NewRouter(zap.NewNop())
	router.RegisterDatasetRoutes(NewDatasetHandler(svc, zap.NewNop()))
	return router
}

func doJSON(t *testing.T, router *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func generateDataset(t *testing.T, router *Router, subjects, months int) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/synth/api/v1/datasets/generate", service.GenerateDatasetRequest{
		SubjectCount: subjects,
		Months:       months,
		Seed:         7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result[service.DatasetSummary]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, ResultSuccess, res.Code)
	require.NotEmpty(t, res.Result.DatasetID)
	return res.Result.DatasetID
}

func TestDatasetHandler_GenerateAndList(t *testing.T) {
	router := newTestRouter()
	id := generateDataset(t, router, 5, 2)

	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result[[]service.DatasetSummary]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Result, 1)
	assert.Equal(t, id, res.Result[0].DatasetID)
	assert.Equal(t, 10, res.Result[0].RecordCount)
}

func TestDatasetHandler_GenerateInvalidConfig(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodPost, "/synth/api/v1/datasets/generate", service.GenerateDatasetRequest{
		SubjectCount: 0,
		Months:       3,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, ResultError, res.Code)
}

func TestDatasetHandler_GenerateBadBody(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/synth/api/v1/datasets/generate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatasetHandler_GenerateMethodNotAllowed(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/generate", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDatasetHandler_RecordsPagination(t *testing.T) {
	router := newTestRouter()
	id := generateDataset(t, router, 6, 4)

	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/"+id+"/records?page=2&page_size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result[service.RecordsPage]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Result.Items, 10)
	assert.Equal(t, 24, res.Result.Pagination.Count)
	assert.Equal(t, 2, res.Result.Pagination.Page)
}

func TestDatasetHandler_RecordsUnknownDataset(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/unknown/records", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDatasetHandler_Validation(t *testing.T) {
	router := newTestRouter()
	id := generateDataset(t, router, 20, 3)

	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/"+id+"/validation", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result[map[string]any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, float64(60), res.Result["record_count"])
	assert.Equal(t, float64(20), res.Result["subject_count"])
}

func TestDatasetHandler_ExportCSV(t *testing.T) {
	router := newTestRouter()
	id := generateDataset(t, router, 3, 2)

	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/"+id+"/export?format=csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.NotZero(t, rec.Body.Len())
}

func TestDatasetHandler_ExportUnknownDataset(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/unknown/export?format=json", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownSubresource(t *testing.T) {
	router := newTestRouter()
	id := generateDataset(t, router, 1, 1)
	rec := doJSON(t, router, http.MethodGet, "/synth/api/v1/datasets/"+id+"/bogus", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
