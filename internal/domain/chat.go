package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionID is the session used when none is provided.
const DefaultSessionID = "default"

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// IsStorable reports whether a turn with this role can be persisted in a conversation.
// Tool results only live inside a single assistant turn and are never stored.
func (r ChatRole) IsStorable() bool {
	switch r {
	case ChatRole_User, ChatRole_Assistant, ChatRole_System:
		return true
	}
	return false
}

// ConversationTurn represents one persisted message of a session.
type ConversationTurn struct {
	ID        uuid.UUID
	SessionID string
	Role      ChatRole
	Content   string
	Metadata  map[string]any
	CreatedAt time.Time
}

// NewConversationTurn validates the turn fields and creates a new immutable turn.
func NewConversationTurn(sessionID string, role ChatRole, content string, metadata map[string]any, createdAt time.Time) (ConversationTurn, error) {
	if strings.TrimSpace(sessionID) == "" {
		return ConversationTurn{}, NewValidationErr("session id cannot be empty")
	}
	if !role.IsStorable() {
		return ConversationTurn{}, NewValidationErr(fmt.Sprintf("invalid chat role %q: must be one of user, assistant, system", role))
	}

	return ConversationTurn{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: createdAt,
	}, nil
}

// TurnRepository defines the interface for conversation turn persistence.
type TurnRepository interface {
	// AppendTurn creates and persists one immutable turn for the session.
	AppendTurn(ctx context.Context, sessionID string, role ChatRole, content string, metadata map[string]any) (ConversationTurn, error)

	// ListTurns retrieves all turns of the session ordered by creation time.
	// Turns created at the same instant keep their insertion order.
	ListTurns(ctx context.Context, sessionID string) ([]ConversationTurn, error)

	// DeleteSession removes all turns of the session. Deleting an unknown session is a no-op.
	DeleteSession(ctx context.Context, sessionID string) error
}
