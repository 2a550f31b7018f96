package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/userauth/internal/outbox/domain"
	"github.com/allisson/userauth/internal/testutil"
)

func newPendingEvent(payload string) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: "user.created",
		Payload:   payload,
		Status:    domain.OutboxEventStatusPending,
		Retries:   0,
	}
}

func TestNewPostgreSQLOutboxEventRepository(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestPostgreSQLOutboxEventRepository_Create(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	event := newPendingEvent(`{"user_id": 1, "email": "john@example.com"}`)

	err := repo.Create(ctx, event)
	assert.NoError(t, err)

	events, err := repo.GetPendingEvents(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, event.EventType, events[0].EventType)
}

func TestPostgreSQLOutboxEventRepository_GetPendingEvents(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	event1 := newPendingEvent(`{"user_id": 1}`)
	event2 := newPendingEvent(`{"user_id": 2}`)

	err := repo.Create(ctx, event1)
	require.NoError(t, err)
	err = repo.Create(ctx, event2)
	require.NoError(t, err)

	// Ordered by creation time, oldest first
	events, err := repo.GetPendingEvents(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, event1.ID, events[0].ID)
	assert.Equal(t, event2.ID, events[1].ID)

	// Limit is respected
	events, err = repo.GetPendingEvents(ctx, 1, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, event1.ID, events[0].ID)
}

func TestPostgreSQLOutboxEventRepository_GetPendingEvents_RetryBackoff(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	fresh := newPendingEvent(`{"user_id": 1}`)
	retried := newPendingEvent(`{"user_id": 2}`)

	err := repo.Create(ctx, fresh)
	require.NoError(t, err)
	err = repo.Create(ctx, retried)
	require.NoError(t, err)

	retried.Retries = 1
	lastError := "connection refused"
	retried.LastError = &lastError
	err = repo.Update(ctx, retried)
	require.NoError(t, err)

	// A just-updated retried event stays out of the batch until the
	// backoff elapses
	events, err := repo.GetPendingEvents(ctx, 10, time.Hour)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, fresh.ID, events[0].ID)

	// Zero backoff makes it eligible immediately
	events, err = repo.GetPendingEvents(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPostgreSQLOutboxEventRepository_GetPendingEvents_Empty(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	events, err := repo.GetPendingEvents(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 0)
}

func TestPostgreSQLOutboxEventRepository_Update(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	event := newPendingEvent(`{"user_id": 1}`)

	err := repo.Create(ctx, event)
	require.NoError(t, err)

	now := time.Now()
	event.Status = domain.OutboxEventStatusProcessed
	event.ProcessedAt = &now

	err = repo.Update(ctx, event)
	assert.NoError(t, err)

	// Processed events are no longer pending
	events, err := repo.GetPendingEvents(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, events, 0)
}

func TestPostgreSQLOutboxEventRepository_Update_NonExistent(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOutboxEventRepository(db)
	ctx := context.Background()

	event := newPendingEvent(`{"user_id": 1}`)
	event.Status = domain.OutboxEventStatusProcessed

	// Updating a missing row affects nothing and returns no error
	err := repo.Update(ctx, event)
	assert.NoError(t, err)
}
