package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	a, b := bus.Subscribe(), bus.Subscribe()
	bus.Publish("plan")
	assert.Equal(t, Event("plan"), <-a)
	assert.Equal(t, Event("plan"), <-b)

	bus.Unsubscribe(a)
	_, ok := <-a
	assert.False(t, ok)
	bus.Unsubscribe(a)
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := New(WithBuffer(1))
	sub := bus.Subscribe()
	bus.Publish(1)
	bus.Publish(2)
	assert.Equal(t, uint64(1), bus.Dropped())
	assert.Equal(t, Event(1), <-sub)
}

func TestBus_Close(t *testing.T) {
	bus := New()
	sub := bus.Subscribe()
	bus.Close()
	bus.Close()
	_, ok := <-sub
	assert.False(t, ok)

	require.NotPanics(t, func() {
		bus.Unsubscribe(sub)
		bus.Publish("late")
	})
	_, ok = <-bus.Subscribe()
	assert.False(t, ok)
}
