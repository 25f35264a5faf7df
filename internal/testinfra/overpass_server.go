// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package testinfra

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// OverpassCapture is one captured Overpass request.
type OverpassCapture struct {
	Method string
	// Query is the Overpass QL text sent by the client.
	Query string
}

// MockOverpassServer is an HTTP server standing in for an Overpass API
// interpreter. It records every query and answers with a fixed response.
type MockOverpassServer struct {
	Server *httptest.Server

	mu       sync.Mutex
	captures []OverpassCapture
	status   int
	body     []byte
}

// NewMockOverpassServer starts a server answering 200 with body. It is closed
// when the test finishes.
func NewMockOverpassServer(t *testing.T, body string) *MockOverpassServer {
	t.Helper()

	m := &MockOverpassServer{status: http.StatusOK, body: []byte(body)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

func (m *MockOverpassServer) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()

	query := r.URL.Query().Get("data")
	if values, err := url.ParseQuery(string(raw)); err == nil && values.Get("data") != "" {
		query = values.Get("data")
	}

	m.mu.Lock()
	m.captures = append(m.captures, OverpassCapture{Method: r.Method, Query: query})
	status, body := m.status, m.body
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// URL returns the interpreter endpoint.
func (m *MockOverpassServer) URL() string {
	return m.Server.URL
}

// Respond changes the status and body of later responses.
func (m *MockOverpassServer) Respond(status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
	m.body = []byte(body)
}

// Captures returns the recorded requests.
func (m *MockOverpassServer) Captures() []OverpassCapture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OverpassCapture(nil), m.captures...)
}
