// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"intraasia/internal/catalog"
	"intraasia/internal/handlers"
	"intraasia/internal/mail"
	"intraasia/internal/store"
)

type emptyRows struct{}

func (emptyRows) ProductRows(context.Context) ([]store.ProductRow, error) { return nil, nil }
func (emptyRows) FeatureRows(context.Context) ([]store.FeatureRow, error) { return nil, nil }

type noopMailer struct{}

func (noopMailer) Send(context.Context, mail.Message) error { return nil }

func testRouter(t *testing.T, publicDir string) http.Handler {
	t.Helper()
	return New(
		handlers.NewCatalog(catalog.NewService(emptyRows{})),
		handlers.NewContact(noopMailer{}, handlers.ContactConfig{
			Recipients: []string{"sales@example.com"},
			Sender:     "site@example.com",
		}),
		handlers.NewImages(publicDir),
		nil,
		publicDir,
	)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestAPIRoutesRegistered(t *testing.T) {
	router := testRouter(t, t.TempDir())

	paths := []string{
		"/api/products",
		"/api/categories",
		"/api/categories/kitchen",
		"/api/categories/kitchen/ovens",
		"/api/hero-slides",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want 200", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("GET %s: content-type %q, want application/json", path, ct)
		}
	}
}

func TestContactRouteAcceptsOnlyPost(t *testing.T) {
	router := testRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/contact", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/contact: got %d, want 405", w.Code)
	}
}

func TestStaticFallthrough(t *testing.T) {
	publicDir := t.TempDir()
	logoDir := filepath.Join(publicDir, "brand-logos")
	if err := os.Mkdir(logoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(logoDir, "acme.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	router := testRouter(t, publicDir)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/brand-logos/acme.svg", nil))
	if w.Code != http.StatusOK {
		t.Errorf("static asset: got %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/brand-logos/missing.svg", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing asset: got %d, want 404", w.Code)
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	router := testRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q, want nosniff", got)
	}
}
