// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/chalkboard/registry"
)

// Clock is a controllable clock for liveness tests. Registry instances
// built on Clock.Now see time move only when the test calls Advance.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// NewTestRegistry returns a fresh registry on a controllable clock.
func NewTestRegistry(t *testing.T) (*registry.Registry, *Clock) {
	t.Helper()

	clock := NewClock(time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC))
	return registry.NewWithClock(clock.Now), clock
}

// CreateTestClassroom creates a classroom and fails the test on error.
func CreateTestClassroom(t *testing.T, reg *registry.Registry, code, name, adminName, adminID string) {
	t.Helper()

	if err := reg.Create(code, name, adminName, adminID); err != nil {
		t.Fatalf("Failed to create test classroom: %v", err)
	}
}

// JoinTestStudent joins a student and fails the test on error.
func JoinTestStudent(t *testing.T, reg *registry.Registry, code, userName, clientID string) {
	t.Helper()

	if _, err := reg.Join(code, userName, clientID); err != nil {
		t.Fatalf("Failed to join test student: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
