package postgresql_test

import (
	"context"
	"sync"
	"testing"

	"github.com/hrmspro/hrms-backend-go/internal/domain/chat"
	"github.com/hrmspro/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_GetOrCreateThread(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	a := createTestUser(t, db, "chat.one", "E120", "employee")
	b := createTestUser(t, db, "chat.two", "H100", "hr")

	ctx := context.Background()
	repo := postgresql.NewChatRepository(db)

	t1, err := repo.GetOrCreateThread(ctx, a.EmployeeID, b.EmployeeID)
	require.NoError(t, err)
	assert.NotEmpty(t, t1.ID)

	// participant order does not matter; the pair maps to one thread
	t2, err := repo.GetOrCreateThread(ctx, b.EmployeeID, a.EmployeeID)
	require.NoError(t, err)
	assert.Equal(t, t1.ID, t2.ID)
}

func TestChatRepository_GetOrCreateThread_Concurrent(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	a := createTestUser(t, db, "race.one", "E121", "employee")
	b := createTestUser(t, db, "race.two", "H101", "hr")

	ctx := context.Background()
	repo := postgresql.NewChatRepository(db)

	const workers = 8
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(flip bool) {
			defer wg.Done()
			pa, pb := a.EmployeeID, b.EmployeeID
			if flip {
				pa, pb = pb, pa
			}
			thread, err := repo.GetOrCreateThread(ctx, pa, pb)
			require.NoError(t, err)
			ids <- thread.ID
		}(i%2 == 0)
	}
	wg.Wait()
	close(ids)

	seen := map[string]struct{}{}
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1, "racing first messages land on one thread")
}

func TestChatRepository_Messages(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	a := createTestUser(t, db, "msg.one", "E122", "employee")
	b := createTestUser(t, db, "msg.two", "H102", "hr")

	ctx := context.Background()
	repo := postgresql.NewChatRepository(db)

	thread, err := repo.GetOrCreateThread(ctx, a.EmployeeID, b.EmployeeID)
	require.NoError(t, err)

	for _, body := range []string{"hi", "hello", "need friday off"} {
		_, err := repo.AppendMessage(ctx, chat.Message{
			ThreadID: thread.ID,
			SenderID: a.EmployeeID,
			Body:     body,
		})
		require.NoError(t, err)
	}

	messages, err := repo.ListMessages(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "hi", messages[0].Body)
	assert.Equal(t, "need friday off", messages[2].Body)
}
