package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablematch/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080", GinMode: "test"},
		Upload: config.UploadConfig{MaxUploadMB: 10},
	}
	app, err := NewApp(cfg)
	require.NoError(t, err)
	return app
}

func uploadText(t *testing.T, app *App, role, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	fw, err := form.CreateFormFile("dataset", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+role, body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, app *App, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDatasetUpload_DelimitedText(t *testing.T) {
	app := newTestApp(t)

	rec := uploadText(t, app, "target", "people.csv", "Nom;Ville\nAlice;Paris\nBob;Lyon\n")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{"Nom", "Ville"}, body["headers"])
	assert.Equal(t, float64(2), body["row_count"])
	assert.NotEmpty(t, body["dataset_id"])
	assert.Len(t, body["profile"], 2)
}

func TestDatasetUpload_UnknownRole(t *testing.T) {
	app := newTestApp(t)
	rec := uploadText(t, app, "bogus", "a.csv", "A\n1\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatasetUpload_ReplacesPreviousDataset(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "target", "first.csv", "A\n1\n")
	uploadText(t, app, "target", "second.csv", "B;C\n2;3\n")

	req := httptest.NewRequest(http.MethodGet, "/api/datasets/target", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "second.csv", body["filename"])
}

func TestDatasetGet_NotImported(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/datasets/target", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKeywords_FromReferenceDataset(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "reference", "ref.csv", "A;B\nx;y\nx;z\n")

	req := httptest.NewRequest(http.MethodGet, "/api/keywords", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{"x", "y", "z"}, body["keywords"])
	assert.Equal(t, "x, y, z", body["text"])
}

func TestFilter_TargetShowsAllOnEmptyKeywords(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "target", "t.csv", "Col1\nUne valeur\nTest en majuscule\n")

	rec := postJSON(t, app, "/api/filter", map[string]any{
		"role":         "target",
		"keyword_text": "",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Len(t, body["rows"], 2)
}

func TestFilter_TargetWithKeyword(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "target", "t.csv", "Col1\nUne valeur\nTest en majuscule\n")

	rec := postJSON(t, app, "/api/filter", map[string]any{
		"role":         "target",
		"keyword_text": "test",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "test (Col1)", row["found"])
}

func TestFilter_CompareSnapsBackToReferenceKeywords(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "reference", "ref.csv", "K\nAlpha\nBeta\n")
	uploadText(t, app, "compare", "c.csv", "Nom\nAlpha one\nGamma\n")

	rec := postJSON(t, app, "/api/filter", map[string]any{
		"role":         "compare",
		"keyword_text": "   ",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Alpha, Beta", body["resolved_text"])
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Alpha one", row["row"].(map[string]any)["Nom"])
}

func TestFilter_CompareWithoutMatchesYieldsNoRows(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "compare", "c.csv", "Nom\nAlpha\n")

	// No reference dataset, empty keywords: match-required excludes all.
	rec := postJSON(t, app, "/api/filter", map[string]any{
		"role":         "compare",
		"keyword_text": "",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Empty(t, body["rows"])
}

func TestFilter_SelectedColumnsRestrictSearch(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "target", "t.csv", "A;B\nneedle;hay\nhay;needle\n")

	rec := postJSON(t, app, "/api/filter", map[string]any{
		"role":             "target",
		"keyword_text":     "needle",
		"selected_columns": []string{"B"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "needle", row["row"].(map[string]any)["B"])
}

func TestFilterExport_CSVRoundTrip(t *testing.T) {
	app := newTestApp(t)
	uploadText(t, app, "target", "t.csv", "Col1\nTest en majuscule\n")
	postJSON(t, app, "/api/filter", map[string]any{
		"role":         "target",
		"keyword_text": "test",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/filter/export", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	assert.Equal(t, "Col1,Keywords found", lines[0])
	assert.Equal(t, "Test en majuscule,test (Col1)", lines[1])
}

func TestFilterExport_WithoutFilterRun(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/filter/export", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
