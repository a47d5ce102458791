// Package communication implements two-party chat and company-wide
// announcements, with live delivery over SSE.
package communication

import (
	"context"
	"errors"

	"github.com/hrmspro/hrms-backend-go/internal/domain/chat"
	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/sse"
)

type ChatServiceImpl struct {
	db *database.DB
	chat.ChatRepository
	user.UserRepository
	hub *sse.Hub
}

func NewChatService(db *database.DB, chatRepository chat.ChatRepository, userRepository user.UserRepository, hub *sse.Hub) chat.ChatService {
	return &ChatServiceImpl{
		db:             db,
		ChatRepository: chatRepository,
		UserRepository: userRepository,
		hub:            hub,
	}
}

// Send implements chat.ChatService. Employees can only reach reviewer
// roles; reviewers can reach anyone. Both sides of the thread get the
// message pushed over their event stream.
func (s *ChatServiceImpl) Send(ctx context.Context, req chat.SendMessageRequest) (chat.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return chat.MessageResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return chat.MessageResponse{}, err
	}

	if req.RecipientID == identity.EmployeeID {
		return chat.MessageResponse{}, chat.ErrSelfThread
	}

	recipient, err := s.GetByEmployeeID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return chat.MessageResponse{}, chat.ErrCounterpartGone
		}
		return chat.MessageResponse{}, err
	}

	if !identity.IsReviewer() && !recipient.IsReviewer() {
		return chat.MessageResponse{}, chat.ErrNotParticipant
	}

	thread, err := s.GetOrCreateThread(ctx, identity.EmployeeID, req.RecipientID)
	if err != nil {
		return chat.MessageResponse{}, err
	}

	msg, err := s.AppendMessage(ctx, chat.Message{
		ThreadID: thread.ID,
		SenderID: identity.EmployeeID,
		Body:     req.Body,
	})
	if err != nil {
		return chat.MessageResponse{}, err
	}

	resp := chat.NewMessageResponse(msg)
	s.hub.PublishToMany([]string{identity.EmployeeID, req.RecipientID}, sse.Event{
		Event: sse.EventChatMessage,
		Data:  resp,
	})

	return resp, nil
}

// History implements chat.ChatService.
func (s *ChatServiceImpl) History(ctx context.Context, counterpartID string) (chat.ThreadResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return chat.ThreadResponse{}, err
	}

	if counterpartID == identity.EmployeeID {
		return chat.ThreadResponse{}, chat.ErrSelfThread
	}

	thread, err := s.GetThread(ctx, identity.EmployeeID, counterpartID)
	if err != nil {
		return chat.ThreadResponse{}, err
	}
	if thread == nil {
		// Never talked before; an empty thread, not an error.
		return chat.ThreadResponse{Messages: []chat.MessageResponse{}}, nil
	}

	messages, err := s.ListMessages(ctx, thread.ID)
	if err != nil {
		return chat.ThreadResponse{}, err
	}

	responses := make([]chat.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, chat.NewMessageResponse(msg))
	}

	return chat.ThreadResponse{
		ThreadID: thread.ID,
		Messages: responses,
	}, nil
}

// Contacts implements chat.ChatService. Employees see the reviewer
// roles they can escalate to; reviewers see the whole directory.
func (s *ChatServiceImpl) Contacts(ctx context.Context) ([]chat.ContactResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if identity.IsReviewer() {
		users, err = s.List(ctx, user.DirectoryFilter{})
	} else {
		var reviewers []user.User
		for _, role := range []user.Role{user.RoleHR, user.RoleManager, user.RoleAdmin} {
			reviewers, err = s.List(ctx, user.DirectoryFilter{Role: string(role)})
			if err != nil {
				return nil, err
			}
			users = append(users, reviewers...)
		}
	}
	if err != nil {
		return nil, err
	}

	contacts := make([]chat.ContactResponse, 0, len(users))
	for _, u := range users {
		if u.EmployeeID == identity.EmployeeID {
			continue
		}
		contacts = append(contacts, chat.ContactResponse{
			EmployeeID: u.EmployeeID,
			FullName:   u.FullName,
			Role:       string(u.Role),
			Department: u.Department,
		})
	}

	return contacts, nil
}
