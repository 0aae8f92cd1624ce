package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListHistoryImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	turns := []domain.ConversationTurn{
		{SessionID: "default", Role: domain.ChatRole_User, Content: "Weather in Berlin?", CreatedAt: fixedTime},
		{SessionID: "default", Role: domain.ChatRole_Assistant, Content: "3.4°C and overcast.", CreatedAt: fixedTime.Add(time.Second)},
	}

	tests := map[string]struct {
		sessionID string
		setupMock func(repo *domain.MockTurnRepository)
		want      []domain.ConversationTurn
		wantErr   string
	}{
		"returns-turns": {
			sessionID: "default",
			setupMock: func(repo *domain.MockTurnRepository) {
				repo.EXPECT().ListTurns(mock.Anything, "default").Return(turns, nil).Once()
			},
			want: turns,
		},
		"empty-session": {
			sessionID: "nobody",
			setupMock: func(repo *domain.MockTurnRepository) {
				repo.EXPECT().ListTurns(mock.Anything, "nobody").Return([]domain.ConversationTurn{}, nil).Once()
			},
			want: []domain.ConversationTurn{},
		},
		"repository-error": {
			sessionID: "default",
			setupMock: func(repo *domain.MockTurnRepository) {
				repo.EXPECT().ListTurns(mock.Anything, "default").Return(nil, errors.New("db error")).Once()
			},
			wantErr: "db error",
		},
		"blank-session": {
			sessionID: "",
			setupMock: func(repo *domain.MockTurnRepository) {},
			wantErr:   "session id cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTurnRepository(t)
			tt.setupMock(repo)

			got, err := NewListHistoryImpl(repo).Execute(context.Background(), tt.sessionID)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClearHistoryImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		sessionID string
		setupMock func(repo *domain.MockTurnRepository)
		wantErr   string
	}{
		"deletes-session": {
			sessionID: "trip",
			setupMock: func(repo *domain.MockTurnRepository) {
				repo.EXPECT().DeleteSession(mock.Anything, "trip").Return(nil).Once()
			},
		},
		"repository-error": {
			sessionID: "trip",
			setupMock: func(repo *domain.MockTurnRepository) {
				repo.EXPECT().DeleteSession(mock.Anything, "trip").Return(errors.New("db error")).Once()
			},
			wantErr: "db error",
		},
		"blank-session": {
			sessionID: "  ",
			setupMock: func(repo *domain.MockTurnRepository) {},
			wantErr:   "session id cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTurnRepository(t)
			tt.setupMock(repo)

			err := NewClearHistoryImpl(repo).Execute(context.Background(), tt.sessionID)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHistoryInitializers(t *testing.T) {
	repo := domain.NewMockTurnRepository(t)

	_, err := InitListHistory{Repo: repo}.Initialize(context.Background())
	require.NoError(t, err)
	_, err = InitClearHistory{Repo: repo}.Initialize(context.Background())
	require.NoError(t, err)

	list, err := depend.Resolve[ListHistory]()
	require.NoError(t, err)
	assert.NotNil(t, list)

	clearUC, err := depend.Resolve[ClearHistory]()
	require.NoError(t, err)
	assert.NotNil(t, clearUC)
}
