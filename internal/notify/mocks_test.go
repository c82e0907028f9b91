package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/ariel-frischer/hooknotify/internal/hooks"
)

// MockSender records every request and returns a configurable error.
type MockSender struct {
	mu sync.Mutex

	SendError error
	SendFunc  func(Request) error

	Requests []Request
}

// NewMockSender creates a mock sender that accepts everything
func NewMockSender() *MockSender {
	return &MockSender{Requests: make([]Request, 0)}
}

// WithSendError configures the mock to return an error on Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// WithSendFunc configures a custom send function
func (m *MockSender) WithSendFunc(fn func(Request) error) *MockSender {
	m.SendFunc = fn
	return m
}

// Send records the call and returns the configured error
func (m *MockSender) Send(_ context.Context, req Request) error {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	fn := m.SendFunc
	err := m.SendError
	m.mu.Unlock()

	if fn != nil {
		return fn(req)
	}
	return err
}

// Calls returns a copy of the recorded requests
func (m *MockSender) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request{}, m.Requests...)
}

// mockRegistrar records registrations and counts releases.
type mockRegistrar struct {
	mu            sync.Mutex
	registrations []hooks.Registration
	releases      int
	panicOnFirst  bool
}

func (r *mockRegistrar) Register(reg hooks.Registration) hooks.Unregister {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, reg)
	first := len(r.registrations) == 1

	return func() {
		r.mu.Lock()
		r.releases++
		r.mu.Unlock()
		if first && r.panicOnFirst {
			panic("release failed")
		}
	}
}

func (r *mockRegistrar) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.registrations))
	for _, reg := range r.registrations {
		names = append(names, reg.Name)
	}
	return names
}

func (r *mockRegistrar) releaseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releases
}

// Common test errors
var (
	ErrMockSend = errors.New("mock send error")
)
