// Package web - tree access middleware.
//
// EDUCATIONAL NOTES:
// ------------------
// Context-based dependency injection is a common pattern for threading
// request-scoped (or, here, server-scoped) dependencies through a
// middleware chain:
//
// 1. Outer middleware injects the dependency into the request context.
// 2. Handlers retrieve it from context when needed.
// 3. Inner middleware can require it and fail fast if missing.
//
// This keeps handlers decoupled from global state and makes them easy
// to test against a tree opened on a temporary file.
package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/shxntanu/tinysql/internal/storage"
)

// contextKey is a custom type for context keys, to avoid collisions with
// keys set by other packages.
type contextKey string

const (
	treeKey contextKey = "tree"
	muKey   contextKey = "mu"
)

// WithTree returns middleware that injects tree and its guarding mutex
// into the request context.
func WithTree(tree *storage.Tree, mu *sync.Mutex) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), treeKey, tree)
			ctx = context.WithValue(ctx, muKey, mu)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTree retrieves the tree from the request context. Returns nil if
// WithTree was never applied.
func GetTree(r *http.Request) *storage.Tree {
	tree, ok := r.Context().Value(treeKey).(*storage.Tree)
	if !ok {
		return nil
	}
	return tree
}

// GetMutex retrieves the guarding mutex from the request context.
// Returns nil if WithTree was never applied.
func GetMutex(r *http.Request) *sync.Mutex {
	mu, ok := r.Context().Value(muKey).(*sync.Mutex)
	if !ok {
		return nil
	}
	return mu
}

// RequireTree returns 503 if no tree is available in the request
// context, instead of letting a handler nil-pointer panic.
func RequireTree(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetTree(r) == nil {
			http.Error(w, "database not available", http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
