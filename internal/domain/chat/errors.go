package chat

import "errors"

var (
	ErrThreadNotFound  = errors.New("chat thread not found")
	ErrSelfThread      = errors.New("cannot open a chat thread with yourself")
	ErrNotParticipant  = errors.New("not a participant of this chat thread")
	ErrCounterpartGone = errors.New("chat counterpart not found")
)
