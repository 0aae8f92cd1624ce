package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitTimeProvider_Initialize(t *testing.T) {
	_, err := InitTimeProvider{}.Initialize(context.Background())
	assert.NoError(t, err)

	tp, err := depend.Resolve[domain.CurrentTimeProvider]()
	assert.NoError(t, err)
	assert.IsType(t, UTCTimeProvider{}, tp)
}

func TestUTCTimeProvider_Now(t *testing.T) {
	now := UTCTimeProvider{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
