package page_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-page/internal/bootstrap"
	"resume-page/internal/shared/config"
)

const resumeJSON = `{
  "header": {
    "name": "Grace Hopper",
    "title": "Rear Admiral",
    "profileImage": "images/grace.jpg",
    "contact": {
      "email": "grace@example.com",
      "phone": "+1 555 0100",
      "linkedin": "https://www.linkedin.com/in/grace",
      "portfolio": "https://grace.example.com"
    }
  },
  "summary": "Invented the first compiler.",
  "skills": {"Languages": ["COBOL", "FLOW-MATIC"], "Hardware": ["Mark I"]},
  "experience": [
    {"title": "Programmer", "company": "Harvard", "period": "1944-1949", "responsibilities": ["Mark I"]},
    {"title": "Engineer", "company": "Remington Rand", "period": "1949-1967", "responsibilities": ["A-0"]}
  ],
  "education": [{"school": "Yale", "program": "PhD Mathematics", "period": "1934", "status": "Completed"}],
  "projects": [{"name": "COBOL", "description": "Business language", "technologies": ["Compilers"]}]
}`

func newRouter(t *testing.T, dataDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:               "0",
		Env:                "dev",
		CORSAllowOrigin:    []string{"http://localhost:5173"},
		ResumeSource:       config.SourceLocal,
		LocalDataDir:       dataDir,
		AccordionExclusive: true,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func writeResume(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "resume.json"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	return dir
}

func TestPageRendersSections(t *testing.T) {
	router := newRouter(t, writeResume(t, resumeJSON))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := resp.Body.String()
	last := -1
	for _, id := range []string{"home", "about", "skills", "experience", "education", "projects", "contact"} {
		idx := strings.Index(body, `<section id="`+id+`"`)
		if idx < 0 {
			t.Fatalf("missing section %s", id)
		}
		if idx < last {
			t.Fatalf("section %s out of order", id)
		}
		last = idx
	}
	for _, want := range []string{"Grace Hopper", "Remington Rand", `id="page-wiring"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestPageHonorsETag(t *testing.T) {
	router := newRouter(t, writeResume(t, resumeJSON))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	etag := resp.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotModified {
		t.Fatalf("expected status 304, got %d", resp.Code)
	}
}

func TestPageMissingFileRendersErrorView(t *testing.T) {
	router := newRouter(t, t.TempDir())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"Error Loading Resume Data", "resume.json file exists", "status 404"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
	if strings.Contains(body, `<section id="home"`) {
		t.Fatalf("error view must not contain sections")
	}
}

func TestPageMalformedJSONRendersErrorView(t *testing.T) {
	router := newRouter(t, writeResume(t, `{"header": `))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "parse resume json") {
		t.Fatalf("expected parse failure detail")
	}
}

func TestDocumentEndpointKeepsSkillOrder(t *testing.T) {
	router := newRouter(t, writeResume(t, resumeJSON))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"skills":{"Languages":["COBOL","FLOW-MATIC"],"Hardware":["Mark I"]}`) {
		t.Fatalf("skills not in source order: %s", body)
	}

	var doc struct {
		Header struct {
			Name string `json:"name"`
		} `json:"header"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Header.Name != "Grace Hopper" {
		t.Fatalf("unexpected name %q", doc.Header.Name)
	}
}

func TestDocumentEndpointUnavailable(t *testing.T) {
	router := newRouter(t, t.TempDir())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "data_unavailable" {
		t.Fatalf("unexpected code %q", body.Error.Code)
	}
	if body.Error.Details["status"] != float64(http.StatusNotFound) {
		t.Fatalf("unexpected status detail %v", body.Error.Details["status"])
	}
}
