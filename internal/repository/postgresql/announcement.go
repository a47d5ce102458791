package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmspro/hrms-backend-go/internal/domain/announcement"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

// Publish implements announcement.AnnouncementRepository. Only one
// announcement is active at a time; the previous one is retired in the
// same transaction as the insert.
func (r *announcementRepositoryImpl) Publish(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	var created announcement.Announcement

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `UPDATE announcements SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
			return fmt.Errorf("failed to retire announcements: %w", err)
		}

		insertQuery := `
			INSERT INTO announcements (posted_by, message, is_active)
			VALUES ($1, $2, TRUE)
			RETURNING id, posted_by, message, is_active, posted_at
		`

		return q.QueryRow(txCtx, insertQuery, a.PostedBy, a.Message).Scan(
			&created.ID, &created.PostedBy, &created.Message, &created.IsActive, &created.PostedAt,
		)
	})
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to publish announcement: %w", err)
	}

	return created, nil
}

// Latest implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Latest(ctx context.Context) (*announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, posted_by, message, is_active, posted_at
		FROM announcements
		WHERE is_active = TRUE
		ORDER BY posted_at DESC
		LIMIT 1
	`

	var a announcement.Announcement
	err := q.QueryRow(ctx, query).Scan(&a.ID, &a.PostedBy, &a.Message, &a.IsActive, &a.PostedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest announcement: %w", err)
	}

	return &a, nil
}
