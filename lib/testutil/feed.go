// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// FeedServer is an httptest server that answers GET requests from a
// fixed path → body table. Unknown paths get 404.
type FeedServer struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]string
	hits   map[string]int
}

// NewFeedServer starts a FeedServer and registers its shutdown with
// t.Cleanup.
func NewFeedServer(t *testing.T, routes map[string]string) *FeedServer {
	t.Helper()
	server := &FeedServer{
		routes: make(map[string]string, len(routes)),
		hits:   make(map[string]int),
	}
	for path, body := range routes {
		server.routes[path] = body
	}
	server.Server = httptest.NewServer(http.HandlerFunc(server.serve))
	t.Cleanup(server.Close)
	return server
}

func (server *FeedServer) serve(writer http.ResponseWriter, request *http.Request) {
	server.mu.Lock()
	server.hits[request.URL.Path]++
	body, ok := server.routes[request.URL.Path]
	server.mu.Unlock()

	if !ok {
		http.NotFound(writer, request)
		return
	}
	writer.Header().Set("Content-Type", "application/json")
	writer.Write([]byte(body))
}

// SetRoute replaces (or adds) the body served for path.
func (server *FeedServer) SetRoute(path, body string) {
	server.mu.Lock()
	defer server.mu.Unlock()
	server.routes[path] = body
}

// Hits returns how many requests have been served for path.
func (server *FeedServer) Hits(path string) int {
	server.mu.Lock()
	defer server.mu.Unlock()
	return server.hits[path]
}

// FeedDir writes each name → body entry into a fresh temporary
// directory and returns its path.
func FeedDir(t *testing.T, files map[string]string) string {
	t.Helper()
	directory := t.TempDir()
	for name, body := range files {
		path := filepath.Join(directory, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("writing feed fixture %s: %v", name, err)
		}
	}
	return directory
}
