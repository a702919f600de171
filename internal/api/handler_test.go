package api

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vcfready/vcfready/internal/assessment"
	"github.com/vcfready/vcfready/internal/blob"
	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
	"github.com/vcfready/vcfready/pkg/readiness"
)

func newTestServer(t *testing.T, blobs blob.Storage) http.Handler {
	t.Helper()
	svc := assessment.NewService(assessment.NewMemoryStore(10), blobs, nil, nil, nil)
	h := NewHandler(svc, zap.NewNop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return CORS(mux)
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func create(t *testing.T, srv http.Handler, pathID string) *assessment.Assessment {
	t.Helper()
	rec := do(t, srv, "POST", "/api/v1/assessments", `{"customer":"Acme","path_id":"`+pathID+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decode[*assessment.Assessment](t, rec)
}

func TestListPaths(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, "GET", "/api/v1/paths", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	paths := decode[[]pathResponse](t, rec)
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if paths[1].ID != catalog.PathBrownfield || len(paths[1].SubPaths) == 0 {
		t.Errorf("brownfield path = %+v", paths[1])
	}
	if paths[0].SubPaths == nil {
		t.Error("sub_paths should encode as an empty list, not null")
	}
}

func TestListQuestions(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := do(t, srv, "GET", "/api/v1/paths/path2/questions", "")
	base := decode[[]catalog.PrefixedQuestion](t, rec)
	for _, q := range base {
		if q.Prefix != catalog.PrefixGeneric {
			t.Fatalf("unexpected prefix %q without sub-paths", q.Prefix)
		}
	}

	rec = do(t, srv, "GET", "/api/v1/paths/path2/questions?subpath=nsx&subpath=vsphere", "")
	withSubs := decode[[]catalog.PrefixedQuestion](t, rec)
	if len(withSubs) <= len(base) {
		t.Fatalf("expected sub-path questions to be appended")
	}
	// vsphere precedes nsx in catalog order regardless of query order
	if got := withSubs[len(base)].Prefix; got != catalog.PrefixVSphere {
		t.Errorf("first sub-path prefix = %q, want vsphere", got)
	}

	rec = do(t, srv, "GET", "/api/v1/paths/path9/questions", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path: status %d, want 404", rec.Code)
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	srv := newTestServer(t, blob.NewLocalStorage(t.TempDir()))
	a := create(t, srv, catalog.PathBrownfield)
	base := "/api/v1/assessments/" + a.ID

	rec := do(t, srv, "PUT", base+"/answers/generic/g-powerflex", `{"answer":"yes"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("answer: status %d, body %s", rec.Code, rec.Body.String())
	}
	entry := decode[ledger.Entry](t, rec)
	if !strings.Contains(entry.Result, "-- Caution") {
		t.Errorf("entry result = %q", entry.Result)
	}

	rec = do(t, srv, "PUT", base+"/notes/generic/g-powerflex", `{"notes":"RPQ filed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("notes: status %d", rec.Code)
	}

	rec = do(t, srv, "PUT", base+"/subpaths/vsphere", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("select sub-path: status %d, body %s", rec.Code, rec.Body.String())
	}
	rec = do(t, srv, "PUT", base+"/answers/vsphere/vs-ver", `{"answer":"yes"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sub-path answer: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, srv, "GET", base+"/score", "")
	result := decode[readiness.Result](t, rec)
	if result.Answered != 2 || result.Score != 75 {
		t.Errorf("score = %d answered = %d, want 75 / 2", result.Score, result.Answered)
	}
	if result.Label != readiness.LabelNotReady {
		t.Errorf("label = %q", result.Label)
	}

	rec = do(t, srv, "DELETE", base+"/subpaths/vsphere", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("clear sub-path: status %d", rec.Code)
	}
	got := decode[*assessment.Assessment](t, rec)
	if got.Ledger.Len() != 1 || len(got.SubPaths) != 0 {
		t.Errorf("after clear: %d entries, sub-paths %v", got.Ledger.Len(), got.SubPaths)
	}

	rec = do(t, srv, "POST", base+"/reports", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("export: status %d, body %s", rec.Code, rec.Body.String())
	}
	rep := decode[assessment.Report](t, rec)
	if !strings.Contains(rep.Body, "Warnings (Action Required) - 1") {
		t.Errorf("report body missing warning section:\n%s", rep.Body)
	}

	rec = do(t, srv, "GET", "/api/v1/reports/"+rep.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get report: status %d", rec.Code)
	}
	if decode[assessment.Report](t, rec).ID != rep.ID {
		t.Error("fetched report has a different ID")
	}

	rec = do(t, srv, "DELETE", base, "")
	got = decode[*assessment.Assessment](t, rec)
	if got.PathID != "" || got.Ledger.Len() != 0 {
		t.Errorf("after reset: path %q, %d entries", got.PathID, got.Ledger.Len())
	}

	rec = do(t, srv, "PUT", base+"/path", `{"path_id":"path3"}`)
	if rec.Code != http.StatusOK || decode[*assessment.Assessment](t, rec).PathID != catalog.PathVCFUpgrade {
		t.Errorf("change path: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, srv, "GET", "/api/v1/assessments", "")
	if list := decode[[]*assessment.Assessment](t, rec); len(list) != 1 {
		t.Errorf("list returned %d assessments", len(list))
	}
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t, nil)
	a := create(t, srv, catalog.PathBrownfield)
	base := "/api/v1/assessments/" + a.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "missing assessment", method: "GET", path: "/api/v1/assessments/nope", want: http.StatusNotFound},
		{name: "unknown path on create", method: "POST", path: "/api/v1/assessments", body: `{"path_id":"path9"}`, want: http.StatusBadRequest},
		{name: "path required", method: "POST", path: "/api/v1/assessments", body: `{"customer":"x"}`, want: http.StatusBadRequest},
		{name: "unknown field", method: "POST", path: "/api/v1/assessments", body: `{"path":"path1"}`, want: http.StatusBadRequest},
		{name: "unknown question", method: "PUT", path: base + "/answers/generic/nope", body: `{"answer":"yes"}`, want: http.StatusBadRequest},
		{name: "invalid answer", method: "PUT", path: base + "/answers/generic/g-hw", body: `{"answer":"maybe"}`, want: http.StatusBadRequest},
		{name: "unselected sub-path", method: "PUT", path: base + "/answers/nsx/nsx-fed", body: `{"answer":"no"}`, want: http.StatusBadRequest},
		{name: "sub-path of another path", method: "PUT", path: base + "/subpaths/greenfield", want: http.StatusBadRequest},
		{name: "export without storage", method: "POST", path: base + "/reports", want: http.StatusServiceUnavailable},
		{name: "missing report", method: "GET", path: "/api/v1/reports/nope", want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, srv, tc.method, tc.path, tc.body)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestEvaluateLedger(t *testing.T) {
	srv := newTestServer(t, nil)
	body := `{
		"greenfield:gf-ntp": {"result": "NTP is not configured. Please configure NTP before you can deploy."},
		"greenfield:gf-backup": {"result": "Backups are in place."}
	}`

	rec := do(t, srv, "POST", "/api/v1/evaluate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	phrase := decode[readiness.Result](t, rec)
	if phrase.Score != 100 || phrase.Answered != 2 {
		t.Errorf("phrase score = %d answered = %d", phrase.Score, phrase.Answered)
	}

	rec = do(t, srv, "POST", "/api/v1/evaluate?classifier=bogus", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus classifier: status %d", rec.Code)
	}

	rec = do(t, srv, "POST", "/api/v1/evaluate", `{"no-colon": {}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad key: status %d", rec.Code)
	}
}

func TestEvaluateGzip(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(`{"p:a": {"result": "You cannot deploy VCF"}}`))
	gz.Close()

	req := httptest.NewRequest("POST", "/api/v1/evaluate", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	res := decode[readiness.Result](t, rec)
	if !res.HasBlocker || res.Score != 0 {
		t.Errorf("result = %+v, want blocker with score 0", res)
	}
}

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("api key required", func(t *testing.T) {
		h := APIKeyAuth("secret")(ok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status %d, want 401", rec.Code)
		}

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-API-Key", "secret")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusTeapot {
			t.Errorf("status %d with key", rec.Code)
		}
	})

	t.Run("empty key passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		APIKeyAuth("")(ok).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("status %d", rec.Code)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CORS(ok).ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("status %d", rec.Code)
		}
		if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PUT") {
			t.Error("PUT missing from allowed methods")
		}
	})

	t.Run("request logger keeps status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequestLogger(zap.NewNop())(ok).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("status %d", rec.Code)
		}
	})
}

func TestGetReportStaysInsideStorage(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "blobs")
	secret := `{"id":"outside","body":"outside base dir"}`
	if err := os.WriteFile(filepath.Join(root, "secret.json"), []byte(secret), 0o644); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	srv := newTestServer(t, blob.NewLocalStorage(base))

	for _, path := range []string{
		"/api/v1/reports/..%2f..%2fsecret",
		"/api/v1/reports/..%2F..%2Fsecret",
		"/api/v1/reports/not-a-uuid",
	} {
		rec := do(t, srv, "GET", path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "outside base dir") {
			t.Errorf("GET %s served a file outside the storage root", path)
		}
	}
}
