package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got []Event
	dispatcher.Subscribe(EventLoginSucceeded, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventLoginSucceeded,
		AccountID: "staff_1",
		Email:     "demo@iwil.com",
		Timestamp: time.Now(),
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	require.Len(t, got, 1)
	require.Equal(t, "staff_1", got[0].AccountID)
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := 0
	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		called++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventStaffRegistered}))
	require.Zero(t, called)
}

func TestDispatcherHandlerErrorsDoNotFailPublish(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		return errors.New("audit sink down")
	})
	second := false
	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventLoginFailed}))
	require.True(t, second)
}
