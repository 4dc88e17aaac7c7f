package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cour-de-cassation/juritj-collect/pkg/web"
)

//go:embed testdata
var testFS embed.FS

func TestServeEmbeddedFile(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
	}{
		{"json", []byte(`{"ok":true}`), "application/json"},
		{"html", []byte(`<h1>hello</h1>`), "text/html"},
		{"plain", []byte("hello"), "text/plain"},
		{"empty", []byte{}, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := web.ServeEmbeddedFile(tt.data, tt.contentType)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/file", nil)
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rec.Code)
			}

			ct := rec.Header().Get("Content-Type")
			if ct != tt.contentType {
				t.Errorf("content-type: got %q, want %q", ct, tt.contentType)
			}

			if rec.Body.String() != string(tt.data) {
				t.Errorf("body: got %q, want %q", rec.Body.String(), string(tt.data))
			}
		})
	}
}

func TestPublicFile(t *testing.T) {
	handler := web.PublicFile(testFS, "testdata", "app.css")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/app.css", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "body { margin: 0; }\n" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestPublicFileMissing(t *testing.T) {
	handler := web.PublicFile(testFS, "testdata", "missing.css")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/missing.css", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routeList := web.PublicFileRoutes(testFS, "testdata", "app.css", "app.js")

	if len(routeList) != 2 {
		t.Fatalf("routes: got %d, want 2", len(routeList))
	}
	if routeList[0].Pattern != "/app.css" || routeList[1].Pattern != "/app.js" {
		t.Errorf("patterns: got %q, %q", routeList[0].Pattern, routeList[1].Pattern)
	}
	for _, route := range routeList {
		if route.Method != "GET" {
			t.Errorf("method for %s: got %q, want GET", route.Pattern, route.Method)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/app.js", nil)
	routeList[1].Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "console.log(\"ready\");\n" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestDistServer(t *testing.T) {
	handler := web.DistServer(testFS, "testdata", "/assets")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/assets/app.css", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "body { margin: 0; }\n" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}
