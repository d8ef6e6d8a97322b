package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"docsum/internal/backend/cluster"
	"docsum/internal/backend/local"
	"docsum/internal/config"
	"docsum/internal/domain"
)

func init() { gin.SetMode(gin.TestMode) }

const testDocument = "The solar probe recorded unusual plasma readings near the corona. " +
	"Engineers reviewed the telemetry stream during the long night shift. " +
	"Plasma density spiked twice before the instruments were recalibrated. " +
	"The mission director praised the recovery plan in the morning briefing. " +
	"Recalibrated instruments confirmed the plasma readings were genuine."

func testRouter(t *testing.T, clusterBackend domain.Backend) *gin.Engine {
	t.Helper()
	cfg, err := config.Load("does-not-exist.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return NewRouter(NewHandler(cfg, local.NewPool(2), clusterBackend))
}

func postForm(t *testing.T, router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSummarizeText(t *testing.T) {
	rec := postForm(t, testRouter(t, nil), url.Values{
		"text":          {testDocument},
		"num_sentences": {"2"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Summary) != 2 {
		t.Errorf("summary length = %d, want 2", len(resp.Summary))
	}
	if resp.Method != "local" {
		t.Errorf("method = %q, want local", resp.Method)
	}
	if resp.SentencesProcessed != 5 {
		t.Errorf("sentences processed = %d, want 5", resp.SentencesProcessed)
	}
	if resp.TextStatistics != nil || resp.Timings != nil {
		t.Error("optional outputs present without being requested")
	}
}

func TestSummarizeWithStatisticsAndProfile(t *testing.T) {
	rec := postForm(t, testRouter(t, nil), url.Values{
		"text":               {testDocument},
		"num_sentences":      {"2"},
		"compute_statistics": {"true"},
		"profile":            {"true"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TextStatistics == nil || resp.TextStatistics.SentenceCount != 5 {
		t.Errorf("statistics = %+v", resp.TextStatistics)
	}
	if resp.Timings == nil {
		t.Error("timings missing with profile requested")
	}
}

func TestSummarizeRejectsBadParams(t *testing.T) {
	router := testRouter(t, nil)
	cases := []url.Values{
		{},                                  // neither text nor file
		{"text": {testDocument}, "num_sentences": {"0"}},
		{"text": {testDocument}, "num_sentences": {"abc"}},
		{"text": {testDocument}, "early_termination_factor": {"0.5"}},
		{"text": {testDocument}, "early_termination_factor": {"11"}},
		{"text": {testDocument}, "language": {"klingon"}},
		{"text": {testDocument}, "method": {"quantum"}},
	}
	for i, form := range cases {
		if rec := postForm(t, router, form); rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400 (body %s)", i, rec.Code, rec.Body.String())
		}
	}
}

func TestSummarizeClusterNotConfigured(t *testing.T) {
	rec := postForm(t, testRouter(t, nil), url.Values{
		"text":   {testDocument},
		"method": {"cluster"},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestSummarizeClusterUnreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	pool, err := cluster.New(cluster.Config{Workers: []string{dead.URL}, Timeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	rec := postForm(t, testRouter(t, pool), url.Values{
		"text":   {testDocument},
		"method": {"cluster"},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestSummarizeFileUpload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "doc.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(testDocument)); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("num_sentences", "1"); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Summary) != 1 {
		t.Errorf("summary length = %d, want 1", len(resp.Summary))
	}
}

func TestSummarizeUnsupportedUpload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "doc.pdf")
	fw.Write([]byte("%PDF"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthWithoutCluster(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestHealthDegradedCluster(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	pool, err := cluster.New(cluster.Config{Workers: []string{dead.URL}, Timeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testRouter(t, pool).ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "degraded" {
		t.Errorf("status field = %v, want degraded", body["status"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	testRouter(t, nil).ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
}
