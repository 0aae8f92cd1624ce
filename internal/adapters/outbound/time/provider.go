package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UTCTimeProvider implements domain.CurrentTimeProvider with the wall clock in UTC.
// Turn timestamps are compared lexically by some SQL backends, so a single zone keeps them ordered.
type UTCTimeProvider struct{}

// Now returns the current time in UTC.
func (UTCTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitTimeProvider registers the UTCTimeProvider in the dependency container.
type InitTimeProvider struct{}

// Initialize registers the time provider.
func (InitTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCTimeProvider{})
	return ctx, nil
}
