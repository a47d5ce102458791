package chat

import (
	"sort"
	"time"
)

// Thread is a two-party conversation. The participant pair is stored
// sorted so either side resolves the same thread.
type Thread struct {
	ID           string
	ParticipantA string // lower employee ID
	ParticipantB string // higher employee ID
	CreatedAt    time.Time
}

type Message struct {
	ID       string
	ThreadID string
	SenderID string
	Body     string
	SentAt   time.Time
}

// ParticipantPair returns the two employee IDs in canonical (sorted)
// order.
func ParticipantPair(a, b string) (string, string) {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair[0], pair[1]
}
