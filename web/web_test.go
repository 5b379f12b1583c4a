package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newWebRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler, err := NewHandler()
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func TestIndexPage(t *testing.T) {
	router := newWebRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.Contains(got, "text/html") {
		t.Fatalf("expected html content type, got %q", got)
	}
	if !strings.Contains(resp.Body.String(), `id="profile-form"`) {
		t.Fatalf("index page is missing the profile form")
	}
}

func TestProfilePageServedForAnyID(t *testing.T) {
	router := newWebRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/profile/not-a-real-id", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "/static/profile.js") {
		t.Fatalf("profile page is missing its script")
	}
}

func TestStaticAssetServed(t *testing.T) {
	router := newWebRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.Contains(got, "text/css") {
		t.Fatalf("expected css content type, got %q", got)
	}
}

func TestStaticAssetMissing(t *testing.T) {
	router := newWebRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
