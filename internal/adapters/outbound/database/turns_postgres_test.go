//go:build integration

package database

import (
	"context"
	"database/sql"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a disposable Postgres container and returns a migrated database.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "weatherbot",
				"POSTGRES_PASSWORD": "weatherbot",
				"POSTGRES_DB":       "weatherbot",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbInit := &InitDB{
		Logger: log.New(io.Discard, "", 0),
		Driver: "postgres",
		DBUser: "weatherbot",
		DBPass: "weatherbot",
		DBHost: host,
		DBPort: port.Port(),
		DBName: "weatherbot",
	}
	_, err = dbInit.Initialize(ctx)
	require.NoError(t, err)
	t.Cleanup(dbInit.Close)

	db, err := depend.Resolve[*sql.DB]()
	require.NoError(t, err)
	return db
}

func TestTurnRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	sameInstant := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	tp := domain.NewMockCurrentTimeProvider(t)
	tp.EXPECT().Now().Return(sameInstant)

	repo := NewTurnRepository(db, Dialect_Postgres, tp)
	ctx := context.Background()

	_, err := repo.AppendTurn(ctx, "berlin", domain.ChatRole_User, "What's the weather in Berlin?", nil)
	require.NoError(t, err)
	_, err = repo.AppendTurn(ctx, "berlin", domain.ChatRole_Assistant, "It's 12°C and cloudy.", map[string]any{"model": "gpt-4o-mini", "total_tokens": 42})
	require.NoError(t, err)
	_, err = repo.AppendTurn(ctx, "tokyo", domain.ChatRole_User, "And Tokyo?", nil)
	require.NoError(t, err)

	turns, err := repo.ListTurns(ctx, "berlin")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.ChatRole_User, turns[0].Role)
	assert.Equal(t, domain.ChatRole_Assistant, turns[1].Role)
	assert.True(t, turns[0].CreatedAt.Equal(sameInstant))
	assert.Equal(t, "gpt-4o-mini", turns[1].Metadata["model"])
	assert.EqualValues(t, 42, turns[1].Metadata["total_tokens"])

	require.NoError(t, repo.DeleteSession(ctx, "berlin"))
	require.NoError(t, repo.DeleteSession(ctx, "berlin"))

	turns, err = repo.ListTurns(ctx, "berlin")
	require.NoError(t, err)
	assert.Empty(t, turns)

	turns, err = repo.ListTurns(ctx, "tokyo")
	require.NoError(t, err)
	assert.Len(t, turns, 1)
}
