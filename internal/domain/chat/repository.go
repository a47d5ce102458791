package chat

import (
	"context"
)

// ChatRepository defines data access for two-party threads. Threads are
// created lazily on the first message; messages are append-only.
type ChatRepository interface {
	// GetOrCreateThread resolves the thread for a canonical participant
	// pair, creating it when absent.
	GetOrCreateThread(ctx context.Context, participantA, participantB string) (Thread, error)

	// GetThread resolves an existing thread for a pair; nil when none.
	GetThread(ctx context.Context, participantA, participantB string) (*Thread, error)

	// AppendMessage stores a message on a thread.
	AppendMessage(ctx context.Context, msg Message) (Message, error)

	// ListMessages returns a thread's messages oldest-first.
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
}
