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

// ClearHistory defines the interface for deleting the conversation of a session.
type ClearHistory interface {
	Execute(ctx context.Context, sessionID string) error
}

// ClearHistoryImpl implements the ClearHistory use case.
type ClearHistoryImpl struct {
	repo domain.TurnRepository
}

// NewClearHistoryImpl creates a new ClearHistoryImpl.
func NewClearHistoryImpl(repo domain.TurnRepository) ClearHistoryImpl {
	return ClearHistoryImpl{repo: repo}
}

// Execute deletes every turn of the session. Clearing an empty session succeeds.
func (uc ClearHistoryImpl) Execute(ctx context.Context, sessionID string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
	))
	defer span.End()

	if strings.TrimSpace(sessionID) == "" {
		err := domain.NewValidationErr("session id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err := uc.repo.DeleteSession(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitClearHistory is the initializer for the ClearHistory use case.
type InitClearHistory struct {
	Repo domain.TurnRepository `resolve:""`
}

// Initialize registers the ClearHistory use case in the dependency container.
func (i InitClearHistory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ClearHistory](NewClearHistoryImpl(i.Repo))
	return ctx, nil
}
