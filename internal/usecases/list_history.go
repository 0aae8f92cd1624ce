package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListHistory defines the interface for reading the conversation of a session.
type ListHistory interface {
	Execute(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error)
}

// ListHistoryImpl implements the ListHistory use case.
type ListHistoryImpl struct {
	repo domain.TurnRepository
}

// NewListHistoryImpl creates a new ListHistoryImpl.
func NewListHistoryImpl(repo domain.TurnRepository) ListHistoryImpl {
	return ListHistoryImpl{repo: repo}
}

// Execute returns the turns of the session oldest first.
func (uc ListHistoryImpl) Execute(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
	))
	defer span.End()

	if strings.TrimSpace(sessionID) == "" {
		err := domain.NewValidationErr("session id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	turns, err := uc.repo.ListTurns(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return turns, nil
}

// InitListHistory is the initializer for the ListHistory use case.
type InitListHistory struct {
	Repo domain.TurnRepository `resolve:""`
}

// Initialize registers the ListHistory use case in the dependency container.
func (i InitListHistory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListHistory](NewListHistoryImpl(i.Repo))
	return ctx, nil
}
