// Integration tests for the postgresql repositories. They need a real
// database with migrations/001_init.sql applied and are skipped unless
// TEST_DATABASE_URL is set.
package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/user"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/database"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn, 4, 1)
		if err != nil {
			panic("failed to connect to test database: " + err.Error())
		}
	})

	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"chat_messages", "chat_threads", "announcements",
		"leave_requests", "attendance_records", "users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, db *database.DB, username, employeeID string, role user.Role) user.User {
	t.Helper()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := postgresql.NewUserRepository(db)
	created, err := repo.Create(ctx, user.User{
		Username:     username,
		EmployeeID:   employeeID,
		FullName:     "Test " + username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
		Role:         role,
		JoinDate:     time.Now().AddDate(0, -1, 0),
	})
	require.NoError(t, err)
	return created
}
