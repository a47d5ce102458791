// Package sse fans out server-sent events to connected clients. Chat
// messages go to the two thread participants; announcements go to
// everyone with an open stream.
package sse

import (
	"sync"
)

// Event names used by the communication endpoints.
const (
	EventChatMessage  = "chat.message"
	EventAnnouncement = "announcement"
)

type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for a user and returns the event
// channel plus a cleanup function the caller must invoke on disconnect.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to every open stream of one user. Sends are
// non-blocking; a slow consumer drops events rather than stalling the hub.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishToMany delivers an event to each listed user.
func (h *Hub) PublishToMany(userIDs []string, event Event) {
	for _, userID := range userIDs {
		eventCopy := event
		eventCopy.UserID = userID
		h.Publish(userID, eventCopy)
	}
}

// Broadcast delivers an event to every connected user.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	userIDs := make([]string, 0, len(h.subscribers))
	for userID := range h.subscribers {
		userIDs = append(userIDs, userID)
	}
	h.mu.RUnlock()

	h.PublishToMany(userIDs, event)
}

// SubscriberCount reports the open streams for one user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
