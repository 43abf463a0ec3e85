package mqtt

import (
	"context"
	"fmt"
	"sync"

	"github.com/kilianp07/productionplan/core/publish"
)

// Publisher mirrors the core publish.Publisher interface.
type Publisher = publish.Publisher

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	Messages []publish.PlanMessage
	Fail     bool
	mu       sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishPlan records the message or returns an error if configured to fail.
func (m *MockPublisher) PublishPlan(ctx context.Context, msg publish.PlanMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

// Published returns a copy of the recorded messages.
func (m *MockPublisher) Published() []publish.PlanMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]publish.PlanMessage(nil), m.Messages...)
}
