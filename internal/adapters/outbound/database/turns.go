package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const turnsTable = "conversation_turns"

var turnFields = []string{
	"id",
	"session_id",
	"role",
	"content",
	"metadata",
	"created_at",
}

// TurnRepository persists conversation turns in a SQL database.
type TurnRepository struct {
	sb           squirrel.StatementBuilderType
	timeProvider domain.CurrentTimeProvider
}

// NewTurnRepository creates a new TurnRepository.
func NewTurnRepository(br squirrel.BaseRunner, dialect Dialect, timeProvider domain.CurrentTimeProvider) TurnRepository {
	return TurnRepository{
		sb:           squirrel.StatementBuilder.PlaceholderFormat(dialect.PlaceholderFormat()).RunWith(br),
		timeProvider: timeProvider,
	}
}

// AppendTurn creates and persists one immutable turn for the session.
func (r TurnRepository) AppendTurn(ctx context.Context, sessionID string, role domain.ChatRole, content string, metadata map[string]any) (domain.ConversationTurn, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("role", string(role)),
	))
	defer span.End()

	turn, err := domain.NewConversationTurn(sessionID, role, content, metadata, r.timeProvider.Now())
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConversationTurn{}, err
	}

	metadataJSON, err := marshalMetadata(turn.Metadata)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConversationTurn{}, err
	}

	_, err = r.sb.
		Insert(turnsTable).
		Columns(turnFields...).
		Values(
			turn.ID,
			turn.SessionID,
			turn.Role,
			turn.Content,
			metadataJSON,
			turn.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ConversationTurn{}, err
	}

	return turn, nil
}

// ListTurns retrieves all turns of the session in ascending creation order.
// Turns created at the same instant keep their insertion order.
func (r TurnRepository) ListTurns(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
	))
	defer span.End()

	rows, err := r.sb.
		Select(turnFields...).
		From(turnsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("created_at ASC", "seq ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	turns := []domain.ConversationTurn{}
	for rows.Next() {
		var (
			t            domain.ConversationTurn
			metadataJSON []byte
		)
		if err := rows.Scan(
			&t.ID,
			&t.SessionID,
			&t.Role,
			&t.Content,
			&metadataJSON,
			&t.CreatedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &t.Metadata); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		t.CreatedAt = t.CreatedAt.UTC()
		turns = append(turns, t)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("turns", len(turns)))
	return turns, nil
}

// DeleteSession removes all turns of the session.
func (r TurnRepository) DeleteSession(ctx context.Context, sessionID string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
	))
	defer span.End()

	_, err := r.sb.
		Delete(turnsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// marshalMetadata encodes metadata as JSON text, or NULL when there is none.
func marshalMetadata(metadata map[string]any) (any, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn metadata: %w", err)
	}
	return string(b), nil
}

// InitTurnRepository is a Symbiont initializer for TurnRepository.
type InitTurnRepository struct {
	DB           *sql.DB                    `resolve:""`
	Dialect      Dialect                    `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the TurnRepository in the dependency container.
func (r InitTurnRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TurnRepository](NewTurnRepository(r.DB, r.Dialect, r.TimeProvider))
	return ctx, nil
}
