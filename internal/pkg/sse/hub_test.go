package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("E002")
	defer cleanup()

	hub.Publish("E002", Event{Event: EventChatMessage, Data: "hello"})

	select {
	case ev := <-ch:
		assert.Equal(t, EventChatMessage, ev.Event)
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubPublish_OtherUserUnaffected(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("E002")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("E003")
	defer cleanupB()

	hub.Publish("E002", Event{Event: EventChatMessage})

	assert.Len(t, chA, 1)
	assert.Len(t, chB, 0)
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("E002")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("E003")
	defer cleanupB()

	hub.PublishToMany([]string{"E002", "E003"}, Event{Event: EventChatMessage})

	evA := <-chA
	evB := <-chB
	assert.Equal(t, "E002", evA.UserID)
	assert.Equal(t, "E003", evB.UserID)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	chans := make([]chan Event, 0, 3)
	for _, id := range []string{"E002", "E003", "E004"} {
		ch, cleanup := hub.Subscribe(id)
		defer cleanup()
		chans = append(chans, ch)
	}

	hub.Broadcast(Event{Event: EventAnnouncement, Data: "office closed friday"})

	for _, ch := range chans {
		require.Len(t, ch, 1)
		ev := <-ch
		assert.Equal(t, EventAnnouncement, ev.Event)
	}
}

func TestHubSlowConsumerDropsEvents(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("E002")
	defer cleanup()

	// fill the buffer and then some; the hub must not block
	for i := 0; i < 32; i++ {
		hub.Publish("E002", Event{Event: EventChatMessage, Data: i})
	}

	assert.Equal(t, cap(ch), len(ch))
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanup1 := hub.Subscribe("E002")
	_, cleanup2 := hub.Subscribe("E002")
	assert.Equal(t, 2, hub.SubscriberCount("E002"))

	cleanup1()
	assert.Equal(t, 1, hub.SubscriberCount("E002"))

	cleanup2()
	assert.Equal(t, 0, hub.SubscriberCount("E002"))

	// publishing after cleanup is a no-op
	hub.Publish("E002", Event{Event: EventChatMessage})
}

func TestHubMultipleStreamsPerUser(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("E002")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("E002")
	defer cleanup2()

	hub.Publish("E002", Event{Event: EventChatMessage})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}
