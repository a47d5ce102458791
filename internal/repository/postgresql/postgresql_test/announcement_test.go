package postgresql_test

import (
	"context"
	"testing"

	"github.com/hrmspro/hrms-backend-go/internal/domain/announcement"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementRepository_Publish(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	hr := createTestUser(t, db, "announcer", "H110", "hr")

	ctx := context.Background()
	repo := postgresql.NewAnnouncementRepository(db)

	first, err := repo.Publish(ctx, announcement.Announcement{
		PostedBy: hr.EmployeeID,
		Message:  "Office closed on Friday.",
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := repo.Publish(ctx, announcement.Announcement{
		PostedBy: hr.EmployeeID,
		Message:  "Office reopens Monday.",
	})
	require.NoError(t, err)

	// publishing retires the previous announcement
	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)

	var activeCount int
	err = db.QueryRow(ctx, "SELECT COUNT(*) FROM announcements WHERE is_active").Scan(&activeCount)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount)
}

func TestAnnouncementRepository_Latest_Empty(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	latest, err := postgresql.NewAnnouncementRepository(db).Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
}
