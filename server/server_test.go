package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/engine"
	"github.com/aniruddha-beep/movie-suggestion/textsim"
)

type stubPoster struct{}

func (stubPoster) Fetch(_ context.Context, _ string) string { return "http://img.test/p.jpg" }

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cat := core.NewCatalog([]*core.Movie{
		{Title: "Dread Manor", OriginalLanguage: "en", LengthCat: core.LengthMedium,
			GenreList: []string{"Horror", "Thriller"}, VoteAverage: 7.2, Popularity: 30,
			ReleaseDate: "2001-10-01", Overview: "A haunted manor terrifies a family."},
		{Title: "Laugh Track", OriginalLanguage: "en", LengthCat: core.LengthShort,
			GenreList: []string{"Comedy"}, VoteAverage: 6.1, Popularity: 80,
			ReleaseDate: "2010-06-12", Overview: "A failing comedian becomes famous."},
	})
	e := &engine.Engine{
		Catalog: cat,
		Matrix:  textsim.Build(cat.Overviews()),
		Poster:  stubPoster{},
	}
	return NewRouter(NewHandler(e))
}

func TestRecommendEndpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"mood": "scary", "language": "en"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var results []engine.Recommendation
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Dread Manor" {
		t.Errorf("results = %+v, want only Dread Manor", results)
	}
	if results[0].Poster != "http://img.test/p.jpg" {
		t.Errorf("poster = %q", results[0].Poster)
	}
	if results[0].ReleaseDate != "2001-10-01" {
		t.Errorf("release_date = %q", results[0].ReleaseDate)
	}
}

// 空结果是合法响应：空 JSON 数组，HTTP 200。
func TestRecommendEndpoint_EmptyResult(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"language": "fr"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestRecommendEndpoint_BadBody(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHealthAndCORS(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/recommend", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}
}
