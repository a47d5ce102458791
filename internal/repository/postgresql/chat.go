package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmspro/hrms-backend-go/internal/domain/chat"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type chatRepositoryImpl struct {
	db *database.DB
}

func NewChatRepository(db *database.DB) chat.ChatRepository {
	return &chatRepositoryImpl{db: db}
}

// GetOrCreateThread implements chat.ChatRepository. Participants are
// stored in canonical order; the unique index on the pair plus
// ON CONFLICT DO NOTHING keeps racing first messages on one thread.
func (r *chatRepositoryImpl) GetOrCreateThread(ctx context.Context, participantA, participantB string) (chat.Thread, error) {
	q := GetQuerier(ctx, r.db)

	a, b := chat.ParticipantPair(participantA, participantB)

	insertQuery := `
		INSERT INTO chat_threads (participant_a, participant_b)
		VALUES ($1, $2)
		ON CONFLICT (participant_a, participant_b) DO NOTHING
		RETURNING id, participant_a, participant_b, created_at
	`

	var t chat.Thread
	err := q.QueryRow(ctx, insertQuery, a, b).Scan(&t.ID, &t.ParticipantA, &t.ParticipantB, &t.CreatedAt)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return chat.Thread{}, fmt.Errorf("failed to create chat thread: %w", err)
	}

	existing, err := r.GetThread(ctx, a, b)
	if err != nil {
		return chat.Thread{}, err
	}
	if existing == nil {
		return chat.Thread{}, chat.ErrThreadNotFound
	}

	return *existing, nil
}

// GetThread implements chat.ChatRepository.
func (r *chatRepositoryImpl) GetThread(ctx context.Context, participantA, participantB string) (*chat.Thread, error) {
	q := GetQuerier(ctx, r.db)

	a, b := chat.ParticipantPair(participantA, participantB)

	query := `
		SELECT id, participant_a, participant_b, created_at
		FROM chat_threads
		WHERE participant_a = $1 AND participant_b = $2
	`

	var t chat.Thread
	err := q.QueryRow(ctx, query, a, b).Scan(&t.ID, &t.ParticipantA, &t.ParticipantB, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat thread: %w", err)
	}

	return &t, nil
}

// AppendMessage implements chat.ChatRepository.
func (r *chatRepositoryImpl) AppendMessage(ctx context.Context, msg chat.Message) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO chat_messages (thread_id, sender_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, thread_id, sender_id, body, sent_at
	`

	var created chat.Message
	err := q.QueryRow(ctx, query, msg.ThreadID, msg.SenderID, msg.Body).Scan(
		&created.ID, &created.ThreadID, &created.SenderID, &created.Body, &created.SentAt,
	)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to append chat message: %w", err)
	}

	return created, nil
}

// ListMessages implements chat.ChatRepository.
func (r *chatRepositoryImpl) ListMessages(ctx context.Context, threadID string) ([]chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, thread_id, sender_id, body, sent_at
		FROM chat_messages
		WHERE thread_id = $1
		ORDER BY sent_at ASC
	`

	rows, err := q.Query(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.Body, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
