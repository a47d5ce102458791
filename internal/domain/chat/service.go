package chat

import (
	"context"
)

// ChatService covers two-party messaging. Employees talk to HR;
// reviewer roles can open a thread with anyone.
type ChatService interface {
	// Send appends a message to the thread between the caller and the
	// recipient, creating the thread on first contact.
	Send(ctx context.Context, req SendMessageRequest) (MessageResponse, error)

	// History returns the caller's thread with the given counterpart,
	// oldest message first. An empty thread is returned when the pair
	// has never talked.
	History(ctx context.Context, counterpartID string) (ThreadResponse, error)

	// Contacts lists the employee IDs the caller may message.
	Contacts(ctx context.Context) ([]ContactResponse, error)
}
