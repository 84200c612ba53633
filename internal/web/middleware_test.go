package web

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shxntanu/tinysql/internal/storage"
)

func setupTestTree(t *testing.T) (*storage.Tree, func()) {
	t.Helper()
	testFile := filepath.Join(t.TempDir(), "test.db")

	pager, err := storage.NewPager(testFile)
	if err != nil {
		t.Fatalf("NewPager failed: %v", err)
	}
	tree, err := storage.OpenTree(pager)
	if err != nil {
		t.Fatalf("OpenTree failed: %v", err)
	}

	return tree, func() { pager.Close() }
}

func TestWithTreeMiddleware(t *testing.T) {
	tree, cleanup := setupTestTree(t)
	defer cleanup()
	var mu sync.Mutex

	var gotTree *storage.Tree
	handler := WithTree(tree, &mu)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTree = GetTree(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotTree != tree {
		t.Error("expected the same tree instance from context")
	}
}

func TestGetTreeWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if GetTree(req) != nil {
		t.Error("expected nil tree when middleware was not applied")
	}
}

func TestRequireTreeRejectsWhenMissing(t *testing.T) {
	handlerCalled := false
	handler := RequireTree(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if handlerCalled {
		t.Error("handler should not have been called without a tree in context")
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
}

func TestRequireTreeAllowsWhenPresent(t *testing.T) {
	tree, cleanup := setupTestTree(t)
	defer cleanup()
	var mu sync.Mutex

	handlerCalled := false
	handler := WithTree(tree, &mu)(RequireTree(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !handlerCalled {
		t.Error("expected handler to be called when tree is present")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
